package session

import (
	"context"
	"database/sql"

	"github.com/fundunity/cmsdash/internal/client/repositories/metadata"
	"github.com/fundunity/cmsdash/internal/dbx"
)

// Storage keys of the persisted session.
const (
	KeyToken = "token"
	KeyUser  = "user"
)

// Storage persists the session between console runs.
type Storage interface {
	Save(ctx context.Context, token string, user []byte) error
	// Load returns empty values when nothing is stored.
	Load(ctx context.Context) (token string, user []byte, err error)
	SaveUser(ctx context.Context, user []byte) error
	Clear(ctx context.Context) error
}

// SQLStorage keeps the session in the metadata table.
type SQLStorage struct {
	db   *sql.DB
	repo metadata.Repository
}

func NewSQLStorage(db *sql.DB) *SQLStorage {
	return &SQLStorage{db: db, repo: metadata.NewSQLiteRepository(db)}
}

// Save writes both keys in one transaction.
func (s *SQLStorage) Save(ctx context.Context, token string, user []byte) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, KeyToken, []byte(token)); err != nil {
			return err
		}
		return repo.Set(ctx, KeyUser, user)
	})
}

func (s *SQLStorage) SaveUser(ctx context.Context, user []byte) error {
	return s.repo.Set(ctx, KeyUser, user)
}

func (s *SQLStorage) Load(ctx context.Context) (string, []byte, error) {
	token, err := s.repo.Get(ctx, KeyToken)
	if err != nil {
		return "", nil, err
	}
	user, err := s.repo.Get(ctx, KeyUser)
	if err != nil {
		return "", nil, err
	}
	return string(token), user, nil
}

func (s *SQLStorage) Clear(ctx context.Context) error {
	return s.repo.Delete(ctx, KeyToken, KeyUser)
}
