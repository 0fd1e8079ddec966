package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinioOptions configures a MinioStorage.
type MinioOptions struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Region    string
	Bucket    string
	UseSSL    bool

	// PublicBase overrides the public URL base. When empty, URLs follow the
	// AWS virtual-hosted style https://<bucket>.s3.<region>.amazonaws.com.
	PublicBase string

	// EnsureBucket creates the bucket with a public-read policy when it is
	// missing. Meant for local MinIO; production buckets are provisioned out of band.
	EnsureBucket bool
}

// MinioStorage implements Storage using AWS S3 or any S3-compatible backend.
type MinioStorage struct {
	client     *minio.Client
	bucket     string
	publicBase string
}

// NewMinioStorage creates an S3 client and returns a ready-to-use MinioStorage.
// No request is made unless opts.EnsureBucket is set.
func NewMinioStorage(opts MinioOptions) (*MinioStorage, error) {
	client, err := minio.New(opts.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(opts.AccessKey, opts.SecretKey, ""),
		Secure: opts.UseSSL,
		Region: opts.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("create s3 client: %w", err)
	}

	if opts.EnsureBucket {
		if err := ensureBucket(context.Background(), client, opts.Bucket, opts.Region); err != nil {
			return nil, err
		}
	}

	publicBase := strings.TrimRight(opts.PublicBase, "/")
	if publicBase == "" {
		publicBase = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", opts.Bucket, opts.Region)
	}

	return &MinioStorage{
		client:     client,
		bucket:     opts.Bucket,
		publicBase: publicBase,
	}, nil
}

func ensureBucket(ctx context.Context, client *minio.Client, bucket, region string) error {
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return fmt.Errorf("check bucket existence: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{Region: region}); err != nil {
			return fmt.Errorf("create bucket %q: %w", bucket, err)
		}
		log.Printf("storage: created bucket %q", bucket)
	}

	if err := client.SetBucketPolicy(ctx, bucket, publicReadPolicy(bucket)); err != nil {
		return fmt.Errorf("set bucket policy: %w", err)
	}
	return nil
}

// Upload streams reader to the bucket under key. size must be the exact byte count
// (pass -1 only if the size is genuinely unknown — minio-go will buffer it).
func (s *MinioStorage) Upload(ctx context.Context, key string, reader io.Reader, size int64, opts UploadOptions) error {
	putOpts := minio.PutObjectOptions{
		ContentType: opts.ContentType,
	}
	if opts.PublicRead {
		// x-amz-* keys are sent as plain headers, not as x-amz-meta-*.
		putOpts.UserMetadata = map[string]string{"x-amz-acl": "public-read"}
	}

	_, err := s.client.PutObject(ctx, s.bucket, key, reader, size, putOpts)
	if err != nil {
		return fmt.Errorf("put object %q: %w", key, err)
	}
	return nil
}

// Delete removes the object at key from the bucket.
func (s *MinioStorage) Delete(ctx context.Context, key string) error {
	if err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("remove object %q: %w", key, err)
	}
	return nil
}

// PublicURL returns the browser-accessible URL for the given key.
// For AWS:        "https://devops-ammar.s3.eu-north-1.amazonaws.com/qr_codes/example_com.png"
// For local MinIO: "http://localhost:9000/devops-ammar/qr_codes/example_com.png"
func (s *MinioStorage) PublicURL(key string) string {
	return s.publicBase + "/" + key
}

// publicReadPolicy returns an S3 bucket policy JSON that allows anonymous GET on all objects.
func publicReadPolicy(bucket string) string {
	policy := map[string]interface{}{
		"Version": "2012-10-17",
		"Statement": []map[string]interface{}{
			{
				"Effect":    "Allow",
				"Principal": "*",
				"Action":    "s3:GetObject",
				"Resource":  fmt.Sprintf("arn:aws:s3:::%s/*", bucket),
			},
		},
	}
	b, _ := json.Marshal(policy)
	return string(b)
}
