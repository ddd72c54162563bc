package validation

import (
	"strings"

	"github.com/fundunity/cmsdash/internal/common"
)

// Image rejects uploads larger than common.MaxImageSize or whose content
// type is not image/*.
func Image(name, contentType string, size int64) error {
	return New().
		Check(size > 0, "image", "file "+name+" is empty").
		Check(size <= common.MaxImageSize, "image", "file is too large, maximum is 5MB").
		Check(strings.HasPrefix(contentType, "image/"), "image", "file must be an image").
		Err()
}
