package storage

import (
	"context"
	"io"
	"time"
)

// PhotoStorage is the blob backend for vehicle photos. The local
// implementation stands in for a cloud bucket; both hand out presigned
// URLs so the API never proxies image bytes on the happy path.
type PhotoStorage interface {
	// PresignedUploadURL returns a URL the client PUTs the image to.
	PresignedUploadURL(ctx context.Context, key string, contentType string, expiresIn time.Duration) (string, error)

	// PresignedDownloadURL returns a URL the image can be fetched from.
	PresignedDownloadURL(ctx context.Context, key string, expiresIn time.Duration) (string, error)

	// Exists reports whether the blob is present and its size.
	Exists(ctx context.Context, key string) (bool, int64, error)

	// Delete removes the blob. Deleting an absent blob is not an error.
	Delete(ctx context.Context, key string) error

	// Save and Open move raw bytes; only the local backend's HTTP
	// handler needs them. The token and sig are the credentials carried
	// by the presigned URL and are checked before any file I/O.
	Save(token, key string, r io.Reader) error
	Open(sig, key string) (io.ReadCloser, error)
}
