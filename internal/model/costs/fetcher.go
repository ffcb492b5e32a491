package costs

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/jinzhu/now"
	"github.com/opentracing/opentracing-go"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Ashwini-108/expense-tracker-aws/internal/clients/billing"
	"github.com/Ashwini-108/expense-tracker-aws/internal/logger"
)

const dateLayout = "2006-01-02"

type billingClient interface {
	CostsByService(ctx context.Context, start, end time.Time) ([]billing.ServiceCost, error)
}

type reportCache interface {
	GetCosts(key string) ([]byte, error)
	CacheCosts(key string, payload []byte) error
}

type DailyCost struct {
	Date   string  `json:"date"`
	Amount float64 `json:"amount"`
}

type CostReport struct {
	Start        string             `json:"start"`
	End          string             `json:"end"`
	DailyCosts   []DailyCost        `json:"daily_costs"`
	ServiceCosts map[string]float64 `json:"service_costs"`
	TotalCost    float64            `json:"total_cost"`
}

// Fetcher pulls billing data from Cost Explorer, with an optional
// memcached read-through cache in front of the API.
type Fetcher struct {
	client billingClient
	cache  reportCache
}

// NewFetcher builds a fetcher; cache may be nil to disable caching.
func NewFetcher(client billingClient, cache reportCache) *Fetcher {
	return &Fetcher{client: client, cache: cache}
}

// FetchCosts queries daily per-service costs for the daysBack days
// ending today and aggregates them into a report.
func (f *Fetcher) FetchCosts(ctx context.Context, daysBack int) (*CostReport, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "costs.fetch")
	defer span.Finish()

	if daysBack < 1 {
		return nil, errors.Errorf("days back must be positive, got %d", daysBack)
	}

	// Cost Explorer treats the end date as exclusive, so the range ends
	// at tomorrow's day boundary to include today.
	end := now.BeginningOfDay().AddDate(0, 0, 1)
	start := end.AddDate(0, 0, -daysBack)

	key := cacheKey(start, end)
	if report, ok := f.fromCache(key); ok {
		return report, nil
	}

	cells, err := f.client.CostsByService(ctx, start, end)
	if err != nil {
		return nil, errors.Wrap(err, "fetch costs")
	}

	report := buildReport(start, end, cells)
	f.toCache(key, report)
	return report, nil
}

func (f *Fetcher) fromCache(key string) (*CostReport, bool) {
	if f.cache == nil {
		return nil, false
	}
	payload, err := f.cache.GetCosts(key)
	if err != nil {
		return nil, false
	}
	var report CostReport
	if err = json.Unmarshal(payload, &report); err != nil {
		logger.Error("corrupt cached cost report", zap.String("key", key), zap.Error(err))
		return nil, false
	}
	return &report, true
}

func (f *Fetcher) toCache(key string, report *CostReport) {
	if f.cache == nil {
		return
	}
	payload, err := json.Marshal(report)
	if err != nil {
		return
	}
	if err = f.cache.CacheCosts(key, payload); err != nil {
		logger.Error("failed to cache cost report", zap.String("key", key), zap.Error(err))
	}
}

func buildReport(start, end time.Time, cells []billing.ServiceCost) *CostReport {
	report := &CostReport{
		Start:        start.Format(dateLayout),
		End:          end.Format(dateLayout),
		ServiceCosts: make(map[string]float64),
	}

	daily := make(map[string]float64)
	for _, cell := range cells {
		daily[cell.Date] += cell.Amount
		report.ServiceCosts[cell.Service] += cell.Amount
		report.TotalCost += cell.Amount
	}

	report.DailyCosts = make([]DailyCost, 0, len(daily))
	for date, amount := range daily {
		report.DailyCosts = append(report.DailyCosts, DailyCost{Date: date, Amount: amount})
	}
	sort.Slice(report.DailyCosts, func(i, j int) bool {
		return report.DailyCosts[i].Date < report.DailyCosts[j].Date
	})

	return report
}

func cacheKey(start, end time.Time) string {
	return fmt.Sprintf("costs:%s:%s", start.Format(dateLayout), end.Format(dateLayout))
}
