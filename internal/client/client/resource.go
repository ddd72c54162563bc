package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strconv"
	"strings"

	"github.com/fundunity/cmsdash/internal/models"
)

// Encoding selects how a resource's bodies are sent.
type Encoding int

const (
	// EncodingMultipart sends text fields plus an optional "image" part.
	EncodingMultipart Encoding = iota
	// EncodingJSON sends the record as a JSON document.
	EncodingJSON
)

// Resource is the wire contract of one content collection.
type Resource struct {
	Name     string
	BaseURL  string
	Encoding Encoding
}

// ResourceClient is the CRUD client of one collection. Every content type
// shares it; the Resource descriptor decides the URLs and body encoding:
//
//	List      GET    {base}
//	Create    POST   {base}
//	Update    PUT    {base}/{id}
//	Delete    DELETE {base}/{id}
//
// Multipart resources send FormRecord.FormFields in order followed by an
// "image" part when a file is staged. JSON resources send the record, or its
// RequestBody when it has one, and never upload files. Failures are wrapped
// with the operation and resource name and still match the package errors.
type ResourceClient[T models.Record] struct {
	http *HTTPClient
	res  Resource
}

// NewResourceClient binds res to the shared transport h.
func NewResourceClient[T models.Record](h *HTTPClient, res Resource) *ResourceClient[T] {
	res.BaseURL = strings.TrimRight(res.BaseURL, "/")
	return &ResourceClient[T]{http: h, res: res}
}

func (c *ResourceClient[T]) itemURL(id int64) string {
	return c.res.BaseURL + "/" + strconv.FormatInt(id, 10)
}

// List returns the collection in server order.
func (c *ResourceClient[T]) List(ctx context.Context) ([]T, error) {
	var out []T
	if err := c.http.doJSON(ctx, http.MethodGet, c.res.BaseURL, nil, &out); err != nil {
		return nil, fmt.Errorf("list %s: %w", c.res.Name, err)
	}
	return out, nil
}

// Create sends a new record and returns what the server stored. The id of
// rec is never sent.
func (c *ResourceClient[T]) Create(ctx context.Context, rec T, img *models.StagedFile) (T, error) {
	out, err := c.send(ctx, http.MethodPost, c.res.BaseURL, rec, img)
	if err != nil {
		return out, fmt.Errorf("create %s: %w", c.res.Name, err)
	}
	return out, nil
}

// Update replaces record id. The image keeps its current value unless img
// is set.
func (c *ResourceClient[T]) Update(ctx context.Context, id int64, rec T, img *models.StagedFile) (T, error) {
	out, err := c.send(ctx, http.MethodPut, c.itemURL(id), rec, img)
	if err != nil {
		return out, fmt.Errorf("update %s %d: %w", c.res.Name, id, err)
	}
	return out, nil
}

// Delete removes record id. Success is decided by the status code alone.
func (c *ResourceClient[T]) Delete(ctx context.Context, id int64) error {
	if err := c.http.doJSON(ctx, http.MethodDelete, c.itemURL(id), nil, nil); err != nil {
		return fmt.Errorf("delete %s %d: %w", c.res.Name, id, err)
	}
	return nil
}

func (c *ResourceClient[T]) send(ctx context.Context, method, url string, rec T, img *models.StagedFile) (T, error) {
	var out T

	if c.res.Encoding == EncodingJSON {
		var in any = rec
		if b, ok := any(rec).(models.BodyRecord); ok {
			in = b.RequestBody()
		}
		err := c.http.doJSON(ctx, method, url, in, &out)
		return out, err
	}

	form, ok := any(rec).(models.FormRecord)
	if !ok {
		return out, fmt.Errorf("%T cannot be sent as multipart form", rec)
	}

	body, contentType, err := encodeMultipart(form.FormFields(), img)
	if err != nil {
		return out, err
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return out, err
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")

	err = c.http.do(req, &out)
	return out, err
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

// encodeMultipart writes fields in order, then the "image" part when img
// is non-nil.
func encodeMultipart(fields []models.Field, img *models.StagedFile) (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for _, f := range fields {
		if err := w.WriteField(f.Name, f.Value); err != nil {
			return nil, "", fmt.Errorf("write field %s: %w", f.Name, err)
		}
	}

	if img != nil {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition",
			fmt.Sprintf(`form-data; name="image"; filename="%s"`, quoteEscaper.Replace(img.Name)))
		ct := img.ContentType
		if ct == "" {
			ct = "application/octet-stream"
		}
		h.Set("Content-Type", ct)

		part, err := w.CreatePart(h)
		if err != nil {
			return nil, "", fmt.Errorf("create image part: %w", err)
		}
		if _, err := part.Write(img.Data); err != nil {
			return nil, "", fmt.Errorf("write image part: %w", err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return &buf, w.FormDataContentType(), nil
}
