package imagestore

import (
	"context"
	"strings"

	"github.com/fundunity/cmsdash/internal/filex"
)

// UploadsPath is the URL path the HTTP API serves the local store under.
const UploadsPath = "/uploads"

// LocalStore writes images below Dir; the HTTP API serves Dir at
// UploadsPath.
type LocalStore struct {
	Dir     string
	baseURL string
}

// NewLocalStore creates dir if needed. publicBaseURL is the externally
// visible origin of the API, e.g. "http://localhost:8080".
func NewLocalStore(dir, publicBaseURL string) (*LocalStore, error) {
	abs, err := filex.EnsureDir(dir)
	if err != nil {
		return nil, err
	}
	return &LocalStore{
		Dir:     abs,
		baseURL: strings.TrimRight(publicBaseURL, "/") + UploadsPath,
	}, nil
}

func (s *LocalStore) Put(ctx context.Context, key string, img Image) (string, error) {
	if _, err := filex.WriteFile(s.Dir, key, img.Data); err != nil {
		return "", err
	}
	return s.baseURL + "/" + key, nil
}

func (s *LocalStore) Delete(ctx context.Context, url string) error {
	key, ok := keyFromURL(s.baseURL, url)
	if !ok {
		return nil
	}
	return filex.RemoveFile(s.Dir, key)
}
