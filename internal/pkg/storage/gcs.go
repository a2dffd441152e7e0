package storage

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"
	"time"

	gcs "cloud.google.com/go/storage"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

// GCSStorage lists documents kept in a Google Cloud Storage bucket
type GCSStorage struct {
	client       *gcs.Client
	bucket       string
	publicDomain string
}

// NewGCSStorage connects with the given service account file, or with
// application default credentials when credentialsFile is empty.
func NewGCSStorage(ctx context.Context, bucket, credentialsFile, publicDomain string) (*GCSStorage, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	client, err := gcs.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create gcs client: %w", err)
	}

	return &GCSStorage{
		client:       client,
		bucket:       bucket,
		publicDomain: strings.TrimRight(publicDomain, "/"),
	}, nil
}

func (s *GCSStorage) List(ctx context.Context, prefix string) ([]ObjectInfo, error) {
	prefix = strings.TrimLeft(prefix, "/")

	objects := []ObjectInfo{}
	it := s.client.Bucket(s.bucket).Objects(ctx, &gcs.Query{Prefix: prefix})
	for {
		attrs, err := it.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list gcs objects under %q: %w", prefix, err)
		}
		// folder placeholders
		if strings.HasSuffix(attrs.Name, "/") {
			continue
		}
		objects = append(objects, ObjectInfo{
			Key:         attrs.Name,
			Name:        path.Base(attrs.Name),
			ContentType: attrs.ContentType,
			Size:        attrs.Size,
			UpdatedAt:   attrs.Updated.UTC(),
		})
	}

	return objects, nil
}

func (s *GCSStorage) GetURL(ctx context.Context, key string, expiry time.Duration) (string, error) {
	key = strings.TrimLeft(key, "/")
	if s.publicDomain != "" {
		return fmt.Sprintf("%s/%s", s.publicDomain, key), nil
	}
	if expiry <= 0 {
		return fmt.Sprintf("https://storage.googleapis.com/%s/%s", s.bucket, key), nil
	}

	url, err := s.client.Bucket(s.bucket).SignedURL(key, &gcs.SignedURLOptions{
		Method:  "GET",
		Expires: time.Now().Add(expiry),
		Scheme:  gcs.SigningSchemeV4,
	})
	if err != nil {
		return "", fmt.Errorf("failed to sign url for %q: %w", key, err)
	}
	return url, nil
}

func (s *GCSStorage) Close() error {
	return s.client.Close()
}
