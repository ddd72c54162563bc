package repomanager

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/fundunity/cmsdash/internal/models"
	"github.com/fundunity/cmsdash/internal/server/migrations"
	"github.com/fundunity/cmsdash/internal/server/repositories/content"
	"github.com/fundunity/cmsdash/internal/server/repositories/users"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// PostgresRepositoryManager vends PostgreSQL-backed repositories sharing
// one connection pool.
type PostgresRepositoryManager struct {
	db *sql.DB
}

func (m *PostgresRepositoryManager) Users() users.Repository {
	return users.NewPostgresRepository(m.db)
}

func (m *PostgresRepositoryManager) AboutUs() content.Repository[models.AboutUs] {
	return content.NewPostgresRepository(m.db, content.AboutUsSchema)
}

func (m *PostgresRepositoryManager) Sliders() content.Repository[models.SliderImage] {
	return content.NewPostgresRepository(m.db, content.SliderSchema)
}

func (m *PostgresRepositoryManager) Programs() content.Repository[models.Program] {
	return content.NewPostgresRepository(m.db, content.ProgramSchema)
}

func (m *PostgresRepositoryManager) Partners() content.Repository[models.Partner] {
	return content.NewPostgresRepository(m.db, content.PartnerSchema)
}

func (m *PostgresRepositoryManager) Transactions() content.Repository[models.Transaction] {
	return content.NewPostgresRepository(m.db, content.TransactionSchema)
}

func (m *PostgresRepositoryManager) Close() error {
	return m.db.Close()
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// sqlOpen is a seam for testing sql.Open.
var sqlOpen = sql.Open

// RunMigrations sets up goose with the embedded migrations and runs them
// against the manager's database.
func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	if err := gooseUpContext(ctx, m.db, "."); err != nil {
		return err
	}
	return nil
}

// NewPostgresRepositoryManager opens dsn with the pgx driver, checks the
// connection and applies migrations.
func NewPostgresRepositoryManager(ctx context.Context, dsn string) (RepositoryManager, error) {
	db, err := sqlOpen("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db ping error: %w", err)
	}

	m := &PostgresRepositoryManager{db: db}
	if err := m.RunMigrations(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration error: %w", err)
	}

	return m, nil
}
