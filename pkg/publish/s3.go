package publish

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"

	"github.com/df07/go-raycaster/pkg/core"
)

// UploadTimeout bounds a single object upload
const UploadTimeout = 30 * time.Second

// ErrNoBucket is returned when an upload is requested without a destination bucket
var ErrNoBucket = errors.New("no S3 bucket configured")

// Config describes the S3 destination for rendered images
type Config struct {
	Bucket    string
	Region    string
	Endpoint  string // Optional, for S3-compatible stores
	Prefix    string // Key prefix, joined with the file name
	AccessKey string
	SecretKey string
}

// Uploader publishes rendered files to an S3 bucket
type Uploader struct {
	client s3iface.S3API
	config Config
	logger core.Logger
}

// NewUploader creates an uploader backed by a fresh AWS session.
// Static credentials are used when both keys are set; otherwise the default chain applies.
func NewUploader(cfg Config, logger core.Logger) (*Uploader, error) {
	if cfg.Bucket == "" {
		return nil, ErrNoBucket
	}

	awsConfig := &aws.Config{
		Region: aws.String(cfg.Region),
	}
	if cfg.AccessKey != "" && cfg.SecretKey != "" {
		awsConfig.Credentials = credentials.NewStaticCredentials(cfg.AccessKey, cfg.SecretKey, "")
	}
	if cfg.Endpoint != "" {
		awsConfig.Endpoint = aws.String(cfg.Endpoint)
		awsConfig.S3ForcePathStyle = aws.Bool(true)
	}

	sess, err := session.NewSession(awsConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create S3 session: %w", err)
	}
	return NewUploaderWithClient(s3.New(sess), cfg, logger), nil
}

// NewUploaderWithClient creates an uploader around an existing S3 client
func NewUploaderWithClient(client s3iface.S3API, cfg Config, logger core.Logger) *Uploader {
	if logger == nil {
		logger = core.NopLogger{}
	}
	return &Uploader{client: client, config: cfg, logger: logger}
}

// Key returns the object key a local file is stored under
func (u *Uploader) Key(localPath string) string {
	name := filepath.Base(localPath)
	if u.config.Prefix == "" {
		return name
	}
	return path.Join(strings.Trim(u.config.Prefix, "/"), name)
}

// UploadFile stores the file at localPath in the bucket and returns its key
func (u *Uploader) UploadFile(ctx context.Context, localPath string) (string, error) {
	file, err := os.Open(localPath)
	if err != nil {
		return "", fmt.Errorf("failed to open %s for upload: %w", localPath, err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return "", fmt.Errorf("failed to stat %s: %w", localPath, err)
	}

	ctx, cancel := context.WithTimeout(ctx, UploadTimeout)
	defer cancel()

	key := u.Key(localPath)
	size := info.Size()
	_, err = u.client.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(u.config.Bucket),
		Key:           aws.String(key),
		Body:          file,
		ContentLength: aws.Int64(size),
		ContentType:   aws.String(ContentType(localPath)),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", key, err)
	}

	u.logger.Printf("Uploaded %s to s3://%s (%d bytes)\n", key, u.config.Bucket, size)
	return key, nil
}

// ContentType maps output file extensions to MIME types
func ContentType(name string) string {
	lower := strings.ToLower(name)
	switch {
	case strings.HasSuffix(lower, ".ppm"):
		return "image/x-portable-pixmap"
	case strings.HasSuffix(lower, ".gz"):
		return "application/gzip"
	case strings.HasSuffix(lower, ".zst"):
		return "application/zstd"
	case strings.HasSuffix(lower, ".sz"):
		return "application/x-snappy-framed"
	case strings.HasSuffix(lower, ".png"):
		return "image/png"
	case strings.HasSuffix(lower, ".jpg"), strings.HasSuffix(lower, ".jpeg"):
		return "image/jpeg"
	default:
		return "application/octet-stream"
	}
}
