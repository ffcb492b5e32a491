package config

const defaultUserID = "default"

type AppConfig struct {
	// User keys the snapshot object; a real deployment would take this
	// from a login rather than config.
	User string `yaml:"user-id"`
}

func (c *AppConfig) UserID() string {
	if c.User == "" {
		return defaultUserID
	}
	return c.User
}
