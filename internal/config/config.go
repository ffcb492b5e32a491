package config

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const configFile = "data/config.yaml"

type config struct {
	AWS       AWSConfig       `yaml:"aws"`
	App       AppConfig       `yaml:"app"`
	Memcached MemcachedConfig `yaml:"memcached"`
}

type Service struct {
	config config
}

// New reads the yaml config file when present and applies environment
// overrides on top. A missing file is fine; a missing bucket name is not.
func New() (*Service, error) {
	s := &Service{}

	rawYAML, err := os.ReadFile(configFile)
	if err == nil {
		if err = yaml.Unmarshal(rawYAML, &s.config); err != nil {
			return nil, errors.Wrap(err, "parsing yaml")
		}
	} else if !os.IsNotExist(err) {
		return nil, errors.Wrap(err, "reading config file")
	}

	s.config.applyEnv()
	if err = s.config.validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func (c *config) applyEnv() {
	if v := os.Getenv("AWS_REGION"); v != "" {
		c.AWS.AWSRegion = v
	}
	if v := os.Getenv("S3_BUCKET_NAME"); v != "" {
		c.AWS.BucketName = v
	}
	if v := os.Getenv("CLOUDWATCH_LOG_GROUP"); v != "" {
		c.AWS.GroupName = v
	}
	if v := os.Getenv("EXPENSE_USER_ID"); v != "" {
		c.App.User = v
	}
	if v := os.Getenv("MEMCACHED_HOSTS"); v != "" {
		c.Memcached.NodeHosts = strings.Split(v, ",")
	}
}

func (c *config) validate() error {
	if c.AWS.BucketName == "" {
		return errors.New("s3 bucket name is required (S3_BUCKET_NAME or aws.bucket)")
	}
	if c.AWS.AWSRegion == "" {
		c.AWS.AWSRegion = defaultRegion
	}
	if c.AWS.GroupName == "" {
		c.AWS.GroupName = defaultLogGroup
	}
	return nil
}

func (s *Service) AWS() *AWSConfig {
	return &s.config.AWS
}

func (s *Service) App() *AppConfig {
	return &s.config.App
}

func (s *Service) Memcached() *MemcachedConfig {
	return &s.config.Memcached
}
