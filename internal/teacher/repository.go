package teacher

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository defines methods for accessing the teacher directory.
type Repository interface {
	GetByUsername(ctx context.Context, username string) (*Teacher, error)
	List(ctx context.Context) ([]*Teacher, error)
	Create(ctx context.Context, t *Teacher) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

// NewPgxRepository creates a Repository implementation using pgxpool.
func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) GetByUsername(ctx context.Context, username string) (*Teacher, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select("username", "display_name", "created_at").
		From("public.teachers").
		Where(squirrel.Eq{"username": username}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get teacher query failed: %w", err)
	}

	row := r.pool.QueryRow(ctx, query, args...)

	var t Teacher
	if err := row.Scan(&t.Username, &t.DisplayName, &t.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get teacher failed: %w", err)
	}
	return &t, nil
}

func (r *pgxRepository) List(ctx context.Context) ([]*Teacher, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select("username", "display_name", "created_at").
		From("public.teachers").
		OrderBy("username ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list teachers query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list teachers failed: %w", err)
	}
	defer rows.Close()

	var result []*Teacher
	for rows.Next() {
		var t Teacher
		if err := rows.Scan(&t.Username, &t.DisplayName, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan teacher failed: %w", err)
		}
		result = append(result, &t)
	}

	return result, rows.Err()
}

func (r *pgxRepository) Create(ctx context.Context, t *Teacher) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.teachers").
		Columns("username", "display_name").
		Values(t.Username, t.DisplayName).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create teacher query failed: %w", err)
	}

	if err := r.pool.QueryRow(ctx, query, args...).Scan(&t.CreatedAt); err != nil {
		var e *pgconn.PgError
		if errors.As(err, &e) && e.Code == pgerrcode.UniqueViolation {
			return ErrUsernameTaken
		}
		return fmt.Errorf("create teacher failed: %w", err)
	}
	return nil
}
