// Package s3store publishes output files to an S3-compatible bucket.
package s3store

import (
	"context"
	"fmt"
	"path"
	"strings"
	"sync"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

type Config struct {
	Endpoint  string
	Region    string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
	// Prefix is prepended to every object key.
	Prefix string
}

type Store struct {
	client   *minio.Client
	bucket   string
	region   string
	prefix   string
	initOnce sync.Once
	initErr  error
}

func New(cfg Config) (*Store, error) {
	endpoint := strings.TrimSpace(cfg.Endpoint)
	if endpoint == "" {
		return nil, fmt.Errorf("s3: endpoint is required")
	}
	access := strings.TrimSpace(cfg.AccessKey)
	secret := strings.TrimSpace(cfg.SecretKey)
	if access == "" || secret == "" {
		return nil, fmt.Errorf("s3: access key and secret key are required")
	}
	bucket := strings.TrimSpace(cfg.Bucket)
	if bucket == "" {
		return nil, fmt.Errorf("s3: bucket is required")
	}
	region := strings.TrimSpace(cfg.Region)
	if region == "" {
		region = "us-east-1"
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(access, secret, ""),
		Secure: cfg.UseSSL,
		Region: region,
	})
	if err != nil {
		return nil, fmt.Errorf("s3: init client: %w", err)
	}

	return &Store{
		client: client,
		bucket: bucket,
		region: region,
		prefix: strings.Trim(strings.TrimSpace(cfg.Prefix), "/"),
	}, nil
}

// ensureBucket creates the bucket on first use. A failure is sticky.
func (s *Store) ensureBucket(ctx context.Context) error {
	s.initOnce.Do(func() {
		exists, err := s.client.BucketExists(ctx, s.bucket)
		if err != nil {
			s.initErr = err
			return
		}
		if exists {
			return
		}
		s.initErr = s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{Region: s.region})
	})
	return s.initErr
}

// Publish uploads localPath under the object key <prefix>/<name>.
func (s *Store) Publish(ctx context.Context, localPath, name string) error {
	if s == nil || s.client == nil {
		return fmt.Errorf("s3: store is nil")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("s3: object name is required")
	}
	if err := s.ensureBucket(ctx); err != nil {
		return fmt.Errorf("s3: ensure bucket: %w", err)
	}

	key := s.objectKey(name)
	ctype, cenc := contentHeaders(name)
	_, err := s.client.FPutObject(ctx, s.bucket, key, localPath, minio.PutObjectOptions{
		ContentType:     ctype,
		ContentEncoding: cenc,
	})
	if err != nil {
		return fmt.Errorf("s3: put %s: %w", key, err)
	}
	return nil
}

func (s *Store) String() string {
	return "s3://" + path.Join(s.bucket, s.prefix)
}

func (s *Store) objectKey(name string) string {
	name = strings.TrimLeft(name, "/")
	if s.prefix == "" {
		return name
	}
	return s.prefix + "/" + name
}

// contentHeaders picks Content-Type and Content-Encoding from the file name.
func contentHeaders(name string) (ctype, cenc string) {
	if base, ok := strings.CutSuffix(name, ".br"); ok {
		name = base
		cenc = "br"
	}
	switch path.Ext(name) {
	case ".jsonld":
		ctype = "application/ld+json"
	case ".nt":
		ctype = "application/n-triples"
	case ".csv":
		ctype = "text/csv"
	default:
		ctype = "application/octet-stream"
	}
	return ctype, cenc
}
