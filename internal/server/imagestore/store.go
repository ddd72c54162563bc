// Package imagestore normalizes uploaded images and keeps them either on
// the local disk or in an S3-compatible bucket.
package imagestore

import (
	"context"
	"path"
	"strings"

	"github.com/google/uuid"
)

// Store saves images and hands back the public URL they are served from.
// Delete takes a URL previously returned by Put; URLs the store does not
// own are ignored.
type Store interface {
	Put(ctx context.Context, key string, img Image) (string, error)
	Delete(ctx context.Context, url string) error
}

// NewKey returns a fresh object key under prefix, e.g.
// "program/5f0c....jpg".
func NewKey(prefix, ext string) string {
	return path.Join(prefix, uuid.NewString()+ext)
}

// keyFromURL strips base from url. ok is false when url is not under base.
func keyFromURL(base, url string) (string, bool) {
	base = strings.TrimRight(base, "/") + "/"
	if !strings.HasPrefix(url, base) {
		return "", false
	}
	key := strings.TrimPrefix(url, base)
	return key, key != ""
}
