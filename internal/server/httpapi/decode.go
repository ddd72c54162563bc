package httpapi

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/fundunity/cmsdash/internal/common"
	"github.com/fundunity/cmsdash/internal/models"
	"github.com/gin-gonic/gin"
)

const imageField = "image"

func aboutUsFromForm(c *gin.Context) models.AboutUs {
	return models.AboutUs{Nama: c.PostForm("nama"), Description: c.PostForm("description")}
}

func sliderFromForm(c *gin.Context) models.SliderImage {
	return models.SliderImage{Title: c.PostForm("title"), Description: c.PostForm("description")}
}

func programFromForm(c *gin.Context) models.Program {
	return models.Program{Title: c.PostForm("title"), Description: c.PostForm("description")}
}

func partnerFromForm(c *gin.Context) models.Partner {
	return models.Partner{Name: c.PostForm("name")}
}

// formDecoder reads the text fields with fields and the optional "image"
// file part.
func formDecoder[T models.Record](fields func(c *gin.Context) T) decoder[T] {
	return func(c *gin.Context) (T, []byte, error) {
		rec := fields(c)
		image, err := readImage(c)
		return rec, image, err
	}
}

// readImage returns nil when the request carries no image part.
func readImage(c *gin.Context) ([]byte, error) {
	fh, err := c.FormFile(imageField)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: malformed multipart body", common.ErrorValidation)
	}
	if fh.Size > common.MaxImageSize {
		return nil, fmt.Errorf("%w: image exceeds %d bytes", common.ErrorValidation, common.MaxImageSize)
	}

	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return io.ReadAll(io.LimitReader(f, common.MaxImageSize+1))
}

// decodeTransaction reads a JSON transaction; a missing status means
// pending.
func decodeTransaction(c *gin.Context) (models.Transaction, []byte, error) {
	var t models.Transaction
	if err := c.ShouldBindJSON(&t); err != nil {
		return t, nil, fmt.Errorf("%w: malformed request body", common.ErrorValidation)
	}

	if t.Status == "" {
		t.Status = models.StatusPending
	} else {
		st, err := models.ParseTransactionStatus(string(t.Status))
		if err != nil {
			return t, nil, err
		}
		t.Status = st
	}
	return t, nil, nil
}
