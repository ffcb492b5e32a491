package config

const (
	defaultRegion   = "us-east-1"
	defaultLogGroup = "expense-tracker-logs"
)

type AWSConfig struct {
	AWSRegion  string `yaml:"region"`
	BucketName string `yaml:"bucket"`
	GroupName  string `yaml:"log-group"`
}

func (c *AWSConfig) Region() string {
	return c.AWSRegion
}

func (c *AWSConfig) Bucket() string {
	return c.BucketName
}

func (c *AWSConfig) LogGroup() string {
	return c.GroupName
}
