// Package repomanager bundles the repositories of the content API behind one
// handle, backed either by PostgreSQL or by process memory.
package repomanager

import (
	"context"

	"github.com/fundunity/cmsdash/internal/models"
	"github.com/fundunity/cmsdash/internal/server/repositories/content"
	"github.com/fundunity/cmsdash/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(ctx context.Context) error
	Users() users.Repository
	AboutUs() content.Repository[models.AboutUs]
	Sliders() content.Repository[models.SliderImage]
	Programs() content.Repository[models.Program]
	Partners() content.Repository[models.Partner]
	Transactions() content.Repository[models.Transaction]
	Close() error
}
