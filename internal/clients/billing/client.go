package billing

import (
	"context"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/costexplorer"
	"github.com/aws/aws-sdk-go-v2/service/costexplorer/types"
	"github.com/pkg/errors"
)

const (
	dateLayout       = "2006-01-02"
	serviceDimension = "SERVICE"
	costMetric       = "UnblendedCost"
)

// ServiceCost is one (day, service) cell of the grouped Cost Explorer
// response.
type ServiceCost struct {
	Date    string
	Service string
	Amount  float64
}

type Client struct {
	api *costexplorer.Client
}

func New(awsCfg aws.Config) *Client {
	return &Client{api: costexplorer.NewFromConfig(awsCfg)}
}

// CostsByService queries daily unblended costs grouped by service for
// [start, end). The end date is exclusive, matching the API contract.
func (c *Client) CostsByService(ctx context.Context, start, end time.Time) ([]ServiceCost, error) {
	out, err := c.api.GetCostAndUsage(ctx, &costexplorer.GetCostAndUsageInput{
		TimePeriod: &types.DateInterval{
			Start: aws.String(start.Format(dateLayout)),
			End:   aws.String(end.Format(dateLayout)),
		},
		Granularity: types.GranularityDaily,
		Metrics:     []string{costMetric},
		GroupBy: []types.GroupDefinition{{
			Type: types.GroupDefinitionTypeDimension,
			Key:  aws.String(serviceDimension),
		}},
	})
	if err != nil {
		return nil, errors.Wrap(err, "get cost and usage")
	}

	costs := make([]ServiceCost, 0)
	for _, result := range out.ResultsByTime {
		if result.TimePeriod == nil {
			continue
		}
		date := aws.ToString(result.TimePeriod.Start)
		for _, group := range result.Groups {
			metric, ok := group.Metrics[costMetric]
			if !ok || len(group.Keys) == 0 {
				continue
			}
			amount, err := strconv.ParseFloat(aws.ToString(metric.Amount), 64)
			if err != nil {
				return nil, errors.Wrap(err, "parse cost amount")
			}
			costs = append(costs, ServiceCost{
				Date:    date,
				Service: group.Keys[0],
				Amount:  amount,
			})
		}
	}
	return costs, nil
}
