package artifacts

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	log "github.com/sirupsen/logrus"
)

// S3Uploader stores artifacts in an S3 bucket
type S3Uploader struct {
	Client *s3.Client
	Bucket string
}

// NewS3Uploader initializes an S3 client from the default credential chain
func NewS3Uploader(ctx context.Context, region, bucket string) (*S3Uploader, error) {
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("unable to load SDK config: %w", err)
	}

	log.WithField("bucket", bucket).Info("S3 artifact mirror initialized")
	return &S3Uploader{Client: s3.NewFromConfig(cfg), Bucket: bucket}, nil
}

// Upload puts body under key
func (u *S3Uploader) Upload(ctx context.Context, key string, body []byte, contentType string) error {
	_, err := u.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.Bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("failed to upload file to S3: %w", err)
	}
	return nil
}
