package config

// Memcached is optional; when no hosts are configured the cost fetcher
// skips caching entirely.
type MemcachedConfig struct {
	NodeHosts []string `yaml:"hosts"`
}

func (s *MemcachedConfig) Hosts() []string {
	return s.NodeHosts
}

func (s *MemcachedConfig) Enabled() bool {
	return len(s.NodeHosts) > 0
}
