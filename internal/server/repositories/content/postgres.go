package content

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/fundunity/cmsdash/internal/common"
	"github.com/fundunity/cmsdash/internal/dbx"
	"github.com/fundunity/cmsdash/internal/models"
)

type PostgresRepository[T models.Record] struct {
	db     dbx.DBTX
	schema Schema[T]
}

func NewPostgresRepository[T models.Record](db dbx.DBTX, schema Schema[T]) *PostgresRepository[T] {
	return &PostgresRepository[T]{db: db, schema: schema}
}

func (r *PostgresRepository[T]) selectList() string {
	return "id, " + strings.Join(r.schema.Columns, ", ")
}

func (r *PostgresRepository[T]) List(ctx context.Context) ([]T, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY id`, r.selectList(), r.schema.Table)

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := []T{}
	for rows.Next() {
		rec, err := r.schema.Scan(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository[T]) Get(ctx context.Context, id int64) (T, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE id = $1`, r.selectList(), r.schema.Table)

	rec, err := r.schema.Scan(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		var zero T
		if errors.Is(err, sql.ErrNoRows) {
			return zero, common.ErrorNotFound
		}
		return zero, fmt.Errorf("db error: %w", err)
	}
	return rec, nil
}

func (r *PostgresRepository[T]) Create(ctx context.Context, rec T) (T, error) {
	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES (%s) RETURNING id`,
		r.schema.Table, strings.Join(r.schema.Columns, ", "), dbx.Placeholders(1, len(r.schema.Columns)))

	var id int64
	if err := r.db.QueryRowContext(ctx, query, r.schema.Values(rec)...).Scan(&id); err != nil {
		var zero T
		return zero, fmt.Errorf("db error: %w", err)
	}

	return r.schema.WithID(rec, id), nil
}

func (r *PostgresRepository[T]) Update(ctx context.Context, id int64, rec T) (T, error) {
	n := len(r.schema.Columns)
	query := fmt.Sprintf(`UPDATE %s SET %s WHERE id = $%d`,
		r.schema.Table, dbx.Assignments(r.schema.Columns, 1), n+1)

	args := append(r.schema.Values(rec), id)
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("db error: %w", err)
	}
	if err := checkAffected(res); err != nil {
		var zero T
		return zero, err
	}

	return r.schema.WithID(rec, id), nil
}

func (r *PostgresRepository[T]) Delete(ctx context.Context, id int64) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, r.schema.Table)

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return checkAffected(res)
}

func checkAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}
