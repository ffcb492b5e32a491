package cache

import (
	"go.uber.org/zap"

	"github.com/Ashwini-108/expense-tracker-aws/internal/logger"

	"github.com/bradfitz/gomemcache/memcache"
)

// Cost Explorer bills every query, so fetched reports are kept in
// memcached for a while and reused across CLI invocations.
const reportTTLSeconds = 6 * 60 * 60

type MemcacheClient struct {
	client *memcache.Client
}

type config interface {
	Hosts() []string
}

func NewMemcache(config config) (*MemcacheClient, error) {
	logger.Info("memcached hosts", zap.Strings("hosts", config.Hosts()))
	mc := memcache.New(config.Hosts()...)
	return &MemcacheClient{mc}, mc.Ping()
}

func (mc *MemcacheClient) CacheCosts(key string, payload []byte) error {
	logger.Info("cache cost report", zap.String("key", key))
	return mc.client.Set(&memcache.Item{
		Key:        key,
		Value:      payload,
		Expiration: reportTTLSeconds,
	})
}

func (mc *MemcacheClient) GetCosts(key string) ([]byte, error) {
	item, err := mc.client.Get(key)
	if err != nil {
		return nil, err
	}
	logger.Info("cost report found in cache", zap.String("key", key))
	return item.Value, nil
}
