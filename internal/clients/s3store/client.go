package s3store

import (
	"bytes"
	"context"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/pkg/errors"
)

// ErrNotFound is returned by GetObject when the object does not exist yet.
var ErrNotFound = errors.New("object not found")

type config interface {
	Bucket() string
}

type Client struct {
	api    *s3.Client
	bucket string
}

func New(awsCfg aws.Config, cfg config) *Client {
	return &Client{
		api:    s3.NewFromConfig(awsCfg),
		bucket: cfg.Bucket(),
	}
}

func (c *Client) PutObject(ctx context.Context, key string, body []byte) error {
	_, err := c.api.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(c.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String("application/json"),
	})
	return errors.Wrap(err, "put object")
}

func (c *Client) GetObject(ctx context.Context, key string) ([]byte, error) {
	out, err := c.api.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var noSuchKey *types.NoSuchKey
		if errors.As(err, &noSuchKey) {
			return nil, ErrNotFound
		}
		return nil, errors.Wrap(err, "get object")
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	return data, errors.Wrap(err, "read object body")
}

// Ping checks that the bucket exists and is reachable with the current
// credentials.
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.api.HeadBucket(ctx, &s3.HeadBucketInput{
		Bucket: aws.String(c.bucket),
	})
	return errors.Wrap(err, "head bucket")
}
