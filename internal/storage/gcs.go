package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"time"

	gcs "cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

// GCSBackend кладёт объекты в бакет и открывает их на чтение всем.
type GCSBackend struct {
	client  *gcs.Client
	bucket  string
	timeout time.Duration
}

// NewGCSBackend проверяет всё сразу: файл ключа, клиента и доступ к бакету.
func NewGCSBackend(ctx context.Context, credentialsPath, bucket string, timeout time.Duration) (*GCSBackend, error) {
	bucket = NormalizeBucket(bucket)
	if bucket == "" {
		return nil, fmt.Errorf("%w: empty bucket name", ErrMisconfigured)
	}
	info, err := os.Stat(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("%w: credentials file: %v", ErrMisconfigured, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: credentials path %s is a directory", ErrMisconfigured, credentialsPath)
	}

	client, err := gcs.NewClient(ctx, option.WithCredentialsFile(credentialsPath))
	if err != nil {
		return nil, fmt.Errorf("%w: client: %v", ErrMisconfigured, err)
	}

	checkCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()
	if _, err := client.Bucket(bucket).Attrs(checkCtx); err != nil {
		client.Close()
		return nil, fmt.Errorf("%w: bucket %s: %v", ErrMisconfigured, bucket, err)
	}

	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &GCSBackend{client: client, bucket: bucket, timeout: timeout}, nil
}

func (b *GCSBackend) Kind() Kind { return KindRemote }

// Put читает загрузку целиком в память, пишет объект и выставляет AllUsers:READER.
func (b *GCSBackend) Put(ctx context.Context, object string, r io.Reader, contentType string) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read upload: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, b.timeout)
	defer cancel()

	obj := b.client.Bucket(b.bucket).Object(object)
	w := obj.NewWriter(ctx)
	w.ContentType = contentType
	if _, err := io.Copy(w, bytes.NewReader(data)); err != nil {
		cancel() // отмена контекста прерывает запись, недописанный объект не появится
		return "", fmt.Errorf("write object: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("close object: %w", err)
	}
	if err := obj.ACL().Set(ctx, gcs.AllUsers, gcs.RoleReader); err != nil {
		return "", fmt.Errorf("make public: %w", err)
	}
	return PublicURL(b.bucket, object), nil
}

// Close закрывает клиента.
func (b *GCSBackend) Close() error { return b.client.Close() }

// PublicURL — адрес публичного объекта в бакете.
func PublicURL(bucket, object string) string {
	return "https://storage.googleapis.com/" + bucket + "/" + object
}
