package dictionary

import (
	"context"
	"fmt"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

// GCS reads a newline-delimited word list stored as a Cloud Storage object.
type GCS struct {
	client *storage.Client
	bucket string
	object string
}

// NewGCS creates a storage client (with credentialsFile when set, otherwise
// application default credentials) and checks that the object exists.
func NewGCS(ctx context.Context, bucket, object, credentialsFile string) (*GCS, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}
	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCS storage client: %w", err)
	}
	if _, err := client.Bucket(bucket).Object(object).Attrs(ctx); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("gs://%s/%s: %w", bucket, object, err)
	}
	return &GCS{client: client, bucket: bucket, object: object}, nil
}

func (g *GCS) ExtractWords(ctx context.Context, length int) ([]string, error) {
	r, err := g.client.Bucket(g.bucket).Object(g.object).NewReader(ctx)
	if err != nil {
		return nil, fmt.Errorf("gs://%s/%s: %w", g.bucket, g.object, err)
	}
	defer r.Close()
	return scanWords(r, length)
}

// Close releases the client.
func (g *GCS) Close() error { return g.client.Close() }
