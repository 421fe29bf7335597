package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/schoolpad/schoolpad-backend/internal/model"
)

// NoticeRepository handles notice data access.
type NoticeRepository struct {
	pool *pgxpool.Pool
}

// NewNoticeRepository creates a new NoticeRepository.
func NewNoticeRepository(pool *pgxpool.Pool) *NoticeRepository {
	return &NoticeRepository{pool: pool}
}

// Create inserts a new notice.
func (r *NoticeRepository) Create(ctx context.Context, n *model.Notice) error {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	err := r.pool.QueryRow(ctx,
		`INSERT INTO notices (id, title, description, created_by, class_id, standard)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING created_at`,
		n.ID, n.Title, n.Description, n.CreatedBy, n.ClassID, n.Standard,
	).Scan(&n.CreatedAt)
	return translateErr(err)
}

// GetByID retrieves a notice by its id.
func (r *NoticeRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Notice, error) {
	n := &model.Notice{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, title, description, created_by, class_id, standard, created_at
		 FROM notices WHERE id = $1`, id,
	).Scan(&n.ID, &n.Title, &n.Description, &n.CreatedBy, &n.ClassID, &n.Standard, &n.CreatedAt)
	if err != nil {
		return nil, translateErr(err)
	}
	return n, nil
}

// List retrieves all notices, newest first.
func (r *NoticeRepository) List(ctx context.Context) ([]model.Notice, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, title, description, created_by, class_id, standard, created_at
		 FROM notices ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notices []model.Notice
	for rows.Next() {
		var n model.Notice
		if err := rows.Scan(&n.ID, &n.Title, &n.Description, &n.CreatedBy, &n.ClassID, &n.Standard, &n.CreatedAt); err != nil {
			return nil, err
		}
		notices = append(notices, n)
	}
	return notices, rows.Err()
}

// Delete removes a notice by its id.
func (r *NoticeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM notices WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
