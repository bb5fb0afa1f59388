package assetstore

import (
	"context"
	"fmt"
	"strings"
	"time"

	aws "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Config: parámetros explícitos; cmd/api los toma de internal/config.
type S3Config struct {
	Bucket          string
	Region          string // default us-east-1
	Endpoint        string // opcional (MinIO)
	Prefix          string // opcional, p.ej. "pets/"
	AccessKeyID     string // opcional; si no, default credentials chain
	SecretAccessKey string
	PathStyle       bool
	Expiry          time.Duration // default 15m
}

// S3 firma URLs GET sobre un bucket de imágenes.
type S3 struct {
	presign *s3.PresignClient
	bucket  string
	prefix  string
	expiry  time.Duration
}

func NewS3(ctx context.Context, cfg S3Config) (*S3, error) {
	if strings.TrimSpace(cfg.Bucket) == "" {
		return nil, fmt.Errorf("s3 bucket required")
	}
	region := cfg.Region
	if region == "" {
		region = "us-east-1"
	}

	loadOpts := []func(*config.LoadOptions) error{config.WithRegion(region)}
	if cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
		loadOpts = append(loadOpts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}
	awsCfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, err
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.PathStyle {
			o.UsePathStyle = true
		}
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})

	expiry := cfg.Expiry
	if expiry <= 0 {
		expiry = 15 * time.Minute
	}

	return &S3{
		presign: s3.NewPresignClient(client),
		bucket:  cfg.Bucket,
		prefix:  cfg.Prefix,
		expiry:  expiry,
	}, nil
}

func (s *S3) URL(ctx context.Context, ref string) (string, error) {
	key, err := objectKey(ref, ".png")
	if err != nil {
		return "", err
	}
	key = s.prefix + key

	out, err := s.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, func(po *s3.PresignOptions) { po.Expires = s.expiry })
	if err != nil {
		return "", fmt.Errorf("presign %s: %w", key, err)
	}
	return out.URL, nil
}
