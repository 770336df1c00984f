package model

import (
	"context"
	"io"
)

// DocumentStorage stores uploaded documents (resume files, employer licenses)
// under opaque keys. Callers never interpret the key's internal format.
type DocumentStorage interface {
	Upload(ctx context.Context, key string, reader io.Reader) error
	Download(ctx context.Context, key string) (io.ReadCloser, error)
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}
