package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/schoolpad/schoolpad-backend/internal/model"
)

// ClassRepository handles class data access.
type ClassRepository struct {
	pool *pgxpool.Pool
}

// NewClassRepository creates a new ClassRepository.
func NewClassRepository(pool *pgxpool.Pool) *ClassRepository {
	return &ClassRepository{pool: pool}
}

// Create inserts a new class.
func (r *ClassRepository) Create(ctx context.Context, c *model.Class) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	err := r.pool.QueryRow(ctx,
		`INSERT INTO classes (id, standard, section)
		 VALUES ($1, $2, $3)
		 RETURNING created_at`,
		c.ID, c.Standard, c.Section,
	).Scan(&c.CreatedAt)
	return translateErr(err)
}

// GetByID retrieves a class by its id.
func (r *ClassRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Class, error) {
	c := &model.Class{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, standard, section, created_at FROM classes WHERE id = $1`, id,
	).Scan(&c.ID, &c.Standard, &c.Section, &c.CreatedAt)
	if err != nil {
		return nil, translateErr(err)
	}
	return c, nil
}

// GetByStandardSection retrieves a class by its unique (standard, section) pair.
func (r *ClassRepository) GetByStandardSection(ctx context.Context, standard int, section string) (*model.Class, error) {
	c := &model.Class{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, standard, section, created_at
		 FROM classes WHERE standard = $1 AND section = $2`, standard, section,
	).Scan(&c.ID, &c.Standard, &c.Section, &c.CreatedAt)
	if err != nil {
		return nil, translateErr(err)
	}
	return c, nil
}

// List retrieves all classes.
func (r *ClassRepository) List(ctx context.Context) ([]model.Class, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, standard, section, created_at FROM classes ORDER BY standard, section`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var classes []model.Class
	for rows.Next() {
		var c model.Class
		if err := rows.Scan(&c.ID, &c.Standard, &c.Section, &c.CreatedAt); err != nil {
			return nil, err
		}
		classes = append(classes, c)
	}
	return classes, rows.Err()
}

// Delete removes a class by its id.
func (r *ClassRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM classes WHERE id = $1`, id)
	if err != nil {
		return translateErr(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
