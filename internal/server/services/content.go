package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/fundunity/cmsdash/internal/common"
	"github.com/fundunity/cmsdash/internal/logging"
	"github.com/fundunity/cmsdash/internal/models"
	"github.com/fundunity/cmsdash/internal/server/imagestore"
	"github.com/fundunity/cmsdash/internal/server/repositories/content"
)

// ImageAccess reads and replaces the image URL of a record.
type ImageAccess[T any] struct {
	Get func(T) string
	Set func(T, string) T
}

var (
	AboutUsImage = ImageAccess[models.AboutUs]{
		Get: func(r models.AboutUs) string { return r.ImageURL },
		Set: func(r models.AboutUs, u string) models.AboutUs { r.ImageURL = u; return r },
	}
	SliderImage = ImageAccess[models.SliderImage]{
		Get: func(r models.SliderImage) string { return r.ImageURL },
		Set: func(r models.SliderImage, u string) models.SliderImage { r.ImageURL = u; return r },
	}
	ProgramImage = ImageAccess[models.Program]{
		Get: func(r models.Program) string { return r.ImageURL },
		Set: func(r models.Program, u string) models.Program { r.ImageURL = u; return r },
	}
	PartnerImage = ImageAccess[models.Partner]{
		Get: func(r models.Partner) string { return r.ImageURL },
		Set: func(r models.Partner, u string) models.Partner { r.ImageURL = u; return r },
	}
)

// ContentService implements list/create/update/delete for one resource.
// Resources with images also own the stored files: a replaced or deleted
// record's image is removed from the store.
type ContentService[T models.Record] struct {
	name     string
	repo     content.Repository[T]
	store    imagestore.Store
	access   *ImageAccess[T]
	maxWidth int
	logger   logging.Logger
}

func NewContentService[T models.Record](name string, repo content.Repository[T], logger logging.Logger) *ContentService[T] {
	return &ContentService[T]{name: name, repo: repo, logger: logger.With("resource", name)}
}

// WithImages enables image handling. Uploads wider than maxWidth are
// scaled down.
func (s *ContentService[T]) WithImages(store imagestore.Store, access ImageAccess[T], maxWidth int) *ContentService[T] {
	s.store = store
	s.access = &access
	s.maxWidth = maxWidth
	return s
}

func (s *ContentService[T]) Name() string { return s.name }

// AcceptsImages reports whether WithImages was called.
func (s *ContentService[T]) AcceptsImages() bool { return s.access != nil }

func (s *ContentService[T]) List(ctx context.Context) ([]T, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrorInternal, err)
	}
	return items, nil
}

func (s *ContentService[T]) Get(ctx context.Context, id int64) (T, error) {
	rec, err := s.repo.Get(ctx, id)
	if err != nil {
		return rec, s.mapRepoError(err)
	}
	return rec, nil
}

// Create validates rec, stores the optional image and inserts the record.
// The image URL sent by the client is never trusted.
func (s *ContentService[T]) Create(ctx context.Context, rec T, image []byte) (T, error) {
	var zero T
	if err := rec.Validate(); err != nil {
		return zero, err
	}

	var url string
	if s.access != nil {
		rec = s.access.Set(rec, "")
		if image != nil {
			var err error
			if url, err = s.putImage(ctx, image); err != nil {
				return zero, err
			}
			rec = s.access.Set(rec, url)
		}
	}

	created, err := s.repo.Create(ctx, rec)
	if err != nil {
		s.dropImage(ctx, url)
		return zero, s.mapRepoError(err)
	}

	s.logger.Info(ctx, "record created", "id", created.GetID())
	return created, nil
}

// Update replaces the record. Without a new image the stored one is kept.
func (s *ContentService[T]) Update(ctx context.Context, id int64, rec T, image []byte) (T, error) {
	var zero T
	if err := rec.Validate(); err != nil {
		return zero, err
	}

	existing, err := s.repo.Get(ctx, id)
	if err != nil {
		return zero, s.mapRepoError(err)
	}

	var newURL, oldURL string
	if s.access != nil {
		oldURL = s.access.Get(existing)
		rec = s.access.Set(rec, oldURL)
		if image != nil {
			if newURL, err = s.putImage(ctx, image); err != nil {
				return zero, err
			}
			rec = s.access.Set(rec, newURL)
		}
	}

	updated, err := s.repo.Update(ctx, id, rec)
	if err != nil {
		s.dropImage(ctx, newURL)
		return zero, s.mapRepoError(err)
	}

	if newURL != "" {
		s.dropImage(ctx, oldURL)
	}

	s.logger.Info(ctx, "record updated", "id", id, "image_replaced", newURL != "")
	return updated, nil
}

func (s *ContentService[T]) Delete(ctx context.Context, id int64) error {
	existing, err := s.repo.Get(ctx, id)
	if err != nil {
		return s.mapRepoError(err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return s.mapRepoError(err)
	}

	if s.access != nil {
		s.dropImage(ctx, s.access.Get(existing))
	}

	s.logger.Info(ctx, "record deleted", "id", id)
	return nil
}

func (s *ContentService[T]) putImage(ctx context.Context, data []byte) (string, error) {
	img, err := imagestore.Normalize(data, s.maxWidth)
	if err != nil {
		return "", err
	}
	url, err := s.store.Put(ctx, imagestore.NewKey(s.name, img.Ext), img)
	if err != nil {
		return "", fmt.Errorf("%w: %w", common.ErrorInternal, err)
	}
	return url, nil
}

// dropImage removes an image that is no longer referenced. Failures are
// logged.
func (s *ContentService[T]) dropImage(ctx context.Context, url string) {
	if url == "" || s.store == nil {
		return
	}
	if err := s.store.Delete(ctx, url); err != nil {
		s.logger.Warn(ctx, "image cleanup failed", "url", url, "error", err)
	}
}

func (s *ContentService[T]) mapRepoError(err error) error {
	if errors.Is(err, common.ErrorNotFound) {
		return err
	}
	return fmt.Errorf("%w: %w", common.ErrorInternal, err)
}
