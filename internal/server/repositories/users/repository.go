package users

import (
	"context"

	"github.com/fundunity/cmsdash/internal/server/models"
)

// Repository stores admin accounts. Lookups of unknown users return
// common.ErrorNotFound; duplicate emails return common.ErrorAlreadyExists.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
}
