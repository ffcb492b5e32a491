package costs

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/jinzhu/now"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/Ashwini-108/expense-tracker-aws/internal/clients/billing"
)

type fakeBilling struct {
	cells []billing.ServiceCost
	err   error
	calls int
}

func (f *fakeBilling) CostsByService(_ context.Context, _, _ time.Time) ([]billing.ServiceCost, error) {
	f.calls++
	return f.cells, f.err
}

type fakeCache struct {
	items map[string][]byte
	gets  int
	sets  int
}

func newFakeCache() *fakeCache {
	return &fakeCache{items: make(map[string][]byte)}
}

func (f *fakeCache) GetCosts(key string) ([]byte, error) {
	f.gets++
	payload, ok := f.items[key]
	if !ok {
		return nil, errors.New("cache miss")
	}
	return payload, nil
}

func (f *fakeCache) CacheCosts(key string, payload []byte) error {
	f.sets++
	f.items[key] = payload
	return nil
}

func Test_OnFetchCosts_ShouldAggregatePerDayAndPerService(t *testing.T) {
	client := &fakeBilling{cells: []billing.ServiceCost{
		{Date: "2024-01-01", Service: "Amazon S3", Amount: 1.5},
		{Date: "2024-01-01", Service: "Amazon EC2", Amount: 2.5},
		{Date: "2024-01-02", Service: "Amazon S3", Amount: 0.5},
	}}
	fetcher := NewFetcher(client, nil)

	report, err := fetcher.FetchCosts(context.Background(), 7)

	assert.NoError(t, err)
	assert.Equal(t, []DailyCost{
		{Date: "2024-01-01", Amount: 4.0},
		{Date: "2024-01-02", Amount: 0.5},
	}, report.DailyCosts)
	assert.Equal(t, 2.0, report.ServiceCosts["Amazon S3"])
	assert.Equal(t, 2.5, report.ServiceCosts["Amazon EC2"])
	assert.Equal(t, 4.5, report.TotalCost)
}

func Test_OnFetchCostsAPIFailure_ShouldReturnError(t *testing.T) {
	client := &fakeBilling{err: errors.New("rate exceeded")}
	fetcher := NewFetcher(client, nil)

	_, err := fetcher.FetchCosts(context.Background(), 7)

	assert.Error(t, err)
}

func Test_OnNonPositiveDaysBack_ShouldReturnError(t *testing.T) {
	fetcher := NewFetcher(&fakeBilling{}, nil)

	_, err := fetcher.FetchCosts(context.Background(), 0)

	assert.Error(t, err)
}

func Test_OnSecondFetch_ShouldServeFromCache(t *testing.T) {
	client := &fakeBilling{cells: []billing.ServiceCost{
		{Date: "2024-01-01", Service: "Amazon S3", Amount: 1.0},
	}}
	cache := newFakeCache()
	fetcher := NewFetcher(client, cache)

	first, err := fetcher.FetchCosts(context.Background(), 7)
	assert.NoError(t, err)
	second, err := fetcher.FetchCosts(context.Background(), 7)
	assert.NoError(t, err)

	assert.Equal(t, 1, client.calls)
	assert.Equal(t, 1, cache.sets)
	assert.Equal(t, first.TotalCost, second.TotalCost)
	assert.Equal(t, first.DailyCosts, second.DailyCosts)
}

func Test_OnCorruptCacheEntry_ShouldFallBackToAPI(t *testing.T) {
	client := &fakeBilling{cells: []billing.ServiceCost{
		{Date: "2024-01-01", Service: "Amazon S3", Amount: 1.0},
	}}
	cache := newFakeCache()
	fetcher := NewFetcher(client, cache)

	end := now.BeginningOfDay().AddDate(0, 0, 1)
	cache.items[cacheKey(end.AddDate(0, 0, -7), end)] = []byte("not json")

	report, err := fetcher.FetchCosts(context.Background(), 7)

	assert.NoError(t, err)
	assert.Equal(t, 1, client.calls)
	assert.Equal(t, 1.0, report.TotalCost)
}

func Test_OnCachedPayload_ShouldRoundTripReport(t *testing.T) {
	report := buildReport(
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC),
		[]billing.ServiceCost{{Date: "2024-01-01", Service: "Amazon S3", Amount: 1.25}},
	)

	payload, err := json.Marshal(report)
	assert.NoError(t, err)

	var got CostReport
	assert.NoError(t, json.Unmarshal(payload, &got))
	assert.Equal(t, *report, got)
}
