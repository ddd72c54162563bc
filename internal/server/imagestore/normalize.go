package imagestore

import (
	"bytes"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	"github.com/fundunity/cmsdash/internal/common"
)

// Image is an upload ready to be stored.
type Image struct {
	Data        []byte
	ContentType string
	Ext         string
}

// Normalize checks that data is a decodable image and scales it down to
// maxWidth when wider, keeping the aspect ratio. Images that fit are kept
// byte-for-byte. A maxWidth of zero disables resizing.
func Normalize(data []byte, maxWidth int) (Image, error) {
	if len(data) == 0 {
		return Image{}, fmt.Errorf("%w: empty image", common.ErrorValidation)
	}
	if len(data) > common.MaxImageSize {
		return Image{}, fmt.Errorf("%w: image exceeds %d bytes", common.ErrorValidation, common.MaxImageSize)
	}

	cfg, name, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return Image{}, fmt.Errorf("%w: not an image", common.ErrorValidation)
	}

	format, err := imaging.FormatFromExtension(name)
	if err != nil {
		return Image{}, fmt.Errorf("%w: unsupported image format %q", common.ErrorValidation, name)
	}

	out := Image{Data: data, ContentType: "image/" + name, Ext: extension(format)}
	if maxWidth <= 0 || cfg.Width <= maxWidth {
		return out, nil
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return Image{}, fmt.Errorf("%w: not an image", common.ErrorValidation)
	}

	resized := imaging.Resize(img, maxWidth, 0, imaging.Lanczos)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, resized, format); err != nil {
		return Image{}, fmt.Errorf("encode image: %w", err)
	}
	out.Data = buf.Bytes()
	return out, nil
}

func extension(f imaging.Format) string {
	switch f {
	case imaging.JPEG:
		return ".jpg"
	case imaging.PNG:
		return ".png"
	case imaging.GIF:
		return ".gif"
	case imaging.BMP:
		return ".bmp"
	case imaging.TIFF:
		return ".tiff"
	}
	return ""
}
