package cwlog

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatchlogs"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatchlogs/types"
	"github.com/pkg/errors"
)

const (
	streamPrefix = "expense-tracker-"
	streamLayout = "2006-01-02"
)

type config interface {
	LogGroup() string
}

// Client appends audit events to a CloudWatch Logs group, one stream
// per calendar day.
type Client struct {
	api   *cloudwatchlogs.Client
	group string
}

func New(awsCfg aws.Config, cfg config) *Client {
	return &Client{
		api:   cloudwatchlogs.NewFromConfig(awsCfg),
		group: cfg.LogGroup(),
	}
}

// EnsureGroup creates the log group, tolerating one that already exists.
func (c *Client) EnsureGroup(ctx context.Context) error {
	_, err := c.api.CreateLogGroup(ctx, &cloudwatchlogs.CreateLogGroupInput{
		LogGroupName: aws.String(c.group),
	})
	if err != nil && !alreadyExists(err) {
		return errors.Wrap(err, "create log group")
	}
	return nil
}

// PutEvent appends one event to today's stream, creating the stream on
// first use.
func (c *Client) PutEvent(ctx context.Context, message string) error {
	stream := streamPrefix + time.Now().Format(streamLayout)

	_, err := c.api.CreateLogStream(ctx, &cloudwatchlogs.CreateLogStreamInput{
		LogGroupName:  aws.String(c.group),
		LogStreamName: aws.String(stream),
	})
	if err != nil && !alreadyExists(err) {
		return errors.Wrap(err, "create log stream")
	}

	_, err = c.api.PutLogEvents(ctx, &cloudwatchlogs.PutLogEventsInput{
		LogGroupName:  aws.String(c.group),
		LogStreamName: aws.String(stream),
		LogEvents: []types.InputLogEvent{{
			Timestamp: aws.Int64(time.Now().UnixMilli()),
			Message:   aws.String(message),
		}},
	})
	return errors.Wrap(err, "put log events")
}

// Ping checks the log group is visible with the current credentials.
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.api.DescribeLogGroups(ctx, &cloudwatchlogs.DescribeLogGroupsInput{
		LogGroupNamePrefix: aws.String(c.group),
		Limit:              aws.Int32(1),
	})
	return errors.Wrap(err, "describe log groups")
}

func alreadyExists(err error) bool {
	var exists *types.ResourceAlreadyExistsException
	return errors.As(err, &exists)
}
