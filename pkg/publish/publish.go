package publish

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	"github.com/df07/go-sphere-tracer/pkg/core"
	"github.com/joho/godotenv"
)

// DefaultUploadTimeout bounds a single upload
const DefaultUploadTimeout = 30 * time.Second

// ErrNotConfigured is returned when no bucket is set
var ErrNotConfigured = errors.New("publish: no S3 bucket configured")

// Config holds the S3 destination for rendered images
type Config struct {
	Bucket    string
	Region    string
	Endpoint  string // Empty uses the AWS endpoint for Region
	AccessKey string
	SecretKey string
	Prefix    string // Prepended to every object key
	ACL       string // Canned ACL, e.g. "public-read"; empty leaves the bucket default
	Timeout   time.Duration
}

// Enabled reports whether uploads have somewhere to go
func (c Config) Enabled() bool {
	return c.Bucket != ""
}

// Helper to get environment variables with a default value.
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// ConfigFromEnv reads S3 settings from the environment. envFile, when
// non-empty, is loaded first; a missing file is not an error and never
// overrides variables that are already set.
func ConfigFromEnv(envFile string) Config {
	if envFile != "" {
		_ = godotenv.Load(envFile)
	}

	timeout := DefaultUploadTimeout
	if d, err := time.ParseDuration(os.Getenv("S3_TIMEOUT")); err == nil && d > 0 {
		timeout = d
	}

	return Config{
		Bucket:    os.Getenv("S3_BUCKET"),
		Region:    getEnv("S3_REGION", "us-east-1"),
		Endpoint:  os.Getenv("S3_ENDPOINT"),
		AccessKey: os.Getenv("S3_ACCESS_KEY"),
		SecretKey: os.Getenv("S3_SECRET_KEY"),
		Prefix:    os.Getenv("S3_PREFIX"),
		ACL:       os.Getenv("S3_ACL"),
		Timeout:   timeout,
	}
}

// S3Publisher uploads rendered images to an S3-compatible bucket
type S3Publisher struct {
	client s3iface.S3API
	config Config
	logger core.Logger
}

// NewS3Publisher creates a publisher with its own AWS session
func NewS3Publisher(config Config, logger core.Logger) (*S3Publisher, error) {
	if !config.Enabled() {
		return nil, ErrNotConfigured
	}

	s3Config := &aws.Config{
		Region: aws.String(config.Region),
	}
	if config.AccessKey != "" {
		s3Config.Credentials = credentials.NewStaticCredentials(config.AccessKey, config.SecretKey, "")
	}
	if config.Endpoint != "" {
		s3Config.Endpoint = aws.String(config.Endpoint)
		s3Config.S3ForcePathStyle = aws.Bool(true)
	}

	sess, err := session.NewSession(s3Config)
	if err != nil {
		return nil, fmt.Errorf("failed to create S3 session: %w", err)
	}

	return NewS3PublisherWithClient(s3.New(sess), config, logger), nil
}

// NewS3PublisherWithClient creates a publisher around an existing client
func NewS3PublisherWithClient(client s3iface.S3API, config Config, logger core.Logger) *S3Publisher {
	if config.Timeout <= 0 {
		config.Timeout = DefaultUploadTimeout
	}
	return &S3Publisher{client: client, config: config, logger: logger}
}

// Publish uploads data under key (after the configured prefix) and returns the full object key
func (p *S3Publisher) Publish(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, p.config.Timeout)
	defer cancel()

	fullKey := key
	if p.config.Prefix != "" {
		fullKey = path.Join(p.config.Prefix, key)
	}

	size := int64(len(data))
	input := &s3.PutObjectInput{
		Bucket:        aws.String(p.config.Bucket),
		Key:           aws.String(fullKey),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(size),
		ContentType:   aws.String(contentType),
	}
	if p.config.ACL != "" {
		input.ACL = aws.String(p.config.ACL)
	}

	if _, err := p.client.PutObjectWithContext(ctx, input); err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", fullKey, err)
	}

	if p.logger != nil {
		p.logger.Printf("Uploaded %s to S3 (%d bytes)\n", fullKey, size)
	}
	return fullKey, nil
}
