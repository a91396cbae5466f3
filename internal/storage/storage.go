package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
)

// Kind classifies what is being stored. Backends may use it to pick content
// handling; the document kind is forced for CVs regardless of declared MIME.
type Kind string

const (
	KindImage    Kind = "image"
	KindVideo    Kind = "video"
	KindDocument Kind = "document"
)

// StoredObject is returned by Store: a durable public URL plus the key that
// later serves as the deletion handle.
type StoredObject struct {
	URL string
	Key string
}

// Storage is the blob-store contract. Keys are "<folder>/<name>".
type Storage interface {
	Store(ctx context.Context, r io.Reader, folder, name string, kind Kind) (*StoredObject, error)
	Delete(ctx context.Context, key string, kind Kind) error
}

// Config holds storage configuration.
type Config struct {
	Type      string // local, s3, cloudflare_r2
	BasePath  string // local storage root
	BaseURL   string // public URL base
	Bucket    string // S3/R2
	Region    string // S3
	AccessKey string // S3/R2
	SecretKey string // S3/R2
	Endpoint  string // R2 or custom S3
}

// NewStorage creates a storage backend from configuration.
func NewStorage(cfg Config) (Storage, error) {
	switch cfg.Type {
	case "local":
		return NewLocalStorage(cfg)
	case "s3", "cloudflare_r2":
		return NewS3Storage(cfg)
	default:
		return nil, fmt.Errorf("unsupported storage type: %s", cfg.Type)
	}
}

// DeriveKey resolves the deletion handle for a previously stored object from
// its public URL and the folder convention it was stored under. The key is
// the folder joined with the URL's final path segment.
func DeriveKey(publicURL, folder string) string {
	trimmed := strings.TrimRight(publicURL, "/")
	name := path.Base(trimmed)
	if name == "." || name == "/" || name == "" {
		return ""
	}
	return folder + "/" + name
}
