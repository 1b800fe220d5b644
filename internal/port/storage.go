package port

import (
	"context"
	"io"
)

// PutObjectInput describes one object written to the archive bucket.
type PutObjectInput struct {
	Key         string
	Body        io.Reader
	ContentType string
	Size        int64
}

// PutObjectOutput is the location of a stored object.
type PutObjectOutput struct {
	Bucket   string
	Key      string
	Location string
}

// ObjectStorage is the archive for generated registers.
type ObjectStorage interface {
	Put(ctx context.Context, input PutObjectInput) (*PutObjectOutput, error)
	PresignGet(ctx context.Context, key string) (string, error)
}
