package storage

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/truemindlabs-dev/synora/pkg/cache"
	"github.com/truemindlabs-dev/synora/pkg/errors"
	"github.com/truemindlabs-dev/synora/pkg/observability"
)

// ============================================================================
// Amazon S3 backend
// ============================================================================

// S3 stores artifacts as public-read objects in an S3 bucket.
type S3 struct {
	client *s3.Client
	bucket string
	region string
}

var _ Backend = (*S3)(nil)

func newS3(_ context.Context, cfg Config) (*S3, error) {
	if cfg.S3Bucket == "" {
		return nil, errors.New(errors.ErrCodeStorage, "s3: bucket not configured")
	}
	region := cfg.S3Region
	if region == "" {
		region = "ap-southeast-1"
	}
	awsCfg := aws.Config{
		Region: region,
		Credentials: credentials.NewStaticCredentialsProvider(
			cfg.S3AccessKey, cfg.S3SecretKey, ""),
	}
	return &S3{
		client: s3.NewFromConfig(awsCfg),
		bucket: cfg.S3Bucket,
		region: region,
	}, nil
}

// Name implements Backend.
func (s *S3) Name() string { return "s3" }

// Save implements Backend. Transient upload failures are retried with
// backoff before the error is surfaced.
func (s *S3) Save(ctx context.Context, key string, data []byte) (string, error) {
	start := time.Now()
	name := objectName(key)
	err := cache.RetryWithBackoff(ctx, func() error {
		_, putErr := s.client.PutObject(ctx, &s3.PutObjectInput{
			Bucket:      aws.String(s.bucket),
			Key:         aws.String(name),
			Body:        bytes.NewReader(data),
			ContentType: aws.String("image/png"),
			ACL:         types.ObjectCannedACLPublicRead,
		})
		if putErr != nil {
			return cache.Retryable(putErr)
		}
		return nil
	})
	if err != nil {
		observability.Storage().OnError(ctx, "s3", "save", key, err)
		return "", wrapStorage("s3", err, "save", key)
	}
	observability.Storage().OnSave(ctx, "s3", key, len(data), time.Since(start))
	return s.URL(key), nil
}

// Delete implements Backend.
func (s *S3) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(objectName(key)),
	})
	if err != nil {
		observability.Storage().OnError(ctx, "s3", "delete", key, err)
		return wrapStorage("s3", err, "delete", key)
	}
	observability.Storage().OnDelete(ctx, "s3", key)
	return nil
}

// URL implements Backend.
func (s *S3) URL(key string) string {
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, objectName(key))
}
