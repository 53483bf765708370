package initializers

import (
	"context"

	"github.com/Kariqs/laptopzone-api/store"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"go.uber.org/zap"
)

// NewAssetUploader returns the S3 uploader, or nil when no bucket is configured.
func NewAssetUploader(ctx context.Context, cfg Config) (store.Uploader, error) {
	if cfg.S3Bucket == "" {
		zap.S().Warn("S3_BUCKET is not set; image uploads are disabled")
		return nil, nil
	}

	opts := []func(*config.LoadOptions) error{config.WithRegion(cfg.S3Region)}
	if cfg.S3AccessKeyID != "" && cfg.S3SecretAccessKey != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.S3AccessKeyID, cfg.S3SecretAccessKey, ""),
		))
	}
	awsCfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, err
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3Endpoint)
			o.UsePathStyle = true
		}
	})
	return store.NewS3Uploader(client, cfg.S3Bucket, cfg.AssetPublicBaseURL), nil
}
