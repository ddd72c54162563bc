// Package content stores the records of the content resources. One generic
// implementation per backend serves every record type; the per-type SQL
// mapping lives in a Schema.
package content

import (
	"context"

	"github.com/fundunity/cmsdash/internal/models"
)

// Repository persists records of one type. Missing ids yield
// common.ErrorNotFound.
type Repository[T models.Record] interface {
	List(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id int64) (T, error)
	Create(ctx context.Context, rec T) (T, error)
	Update(ctx context.Context, id int64, rec T) (T, error)
	Delete(ctx context.Context, id int64) error
}
