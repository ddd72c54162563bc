package models

import (
	"fmt"
	"mime"
	"net/http"
	"os"
	"path/filepath"

	"github.com/fundunity/cmsdash/internal/common"
	"github.com/fundunity/cmsdash/internal/validation"
)

// StagedFile is a local image waiting to be uploaded with the next save.
type StagedFile struct {
	Name        string
	ContentType string
	Data        []byte
}

func (f *StagedFile) Size() int64 {
	if f == nil {
		return 0
	}
	return int64(len(f.Data))
}

// StageFile reads path and checks it is an image of at most 5MB.
func StageFile(path string) (*StagedFile, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if fi.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", common.ErrorValidation, path)
	}
	// checked before reading so oversized files are never loaded
	if fi.Size() > common.MaxImageSize {
		return nil, validation.Image(fi.Name(), "image/", fi.Size())
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	ct := mime.TypeByExtension(filepath.Ext(path))
	if ct == "" {
		ct = http.DetectContentType(data)
	}

	if err := validation.Image(fi.Name(), ct, int64(len(data))); err != nil {
		return nil, err
	}

	return &StagedFile{Name: fi.Name(), ContentType: ct, Data: data}, nil
}
