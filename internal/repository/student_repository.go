package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/schoolpad/schoolpad-backend/internal/model"
)

// StudentProfileRow is one bulk-fetched student profile joined with its
// account, feeding the student roster view.
type StudentProfileRow struct {
	FullName   string
	Email      string
	ClassID    uuid.UUID
	RollNumber int
}

// StudentRepository handles student profile data access.
type StudentRepository struct {
	pool *pgxpool.Pool
}

// NewStudentRepository creates a new StudentRepository.
func NewStudentRepository(pool *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{pool: pool}
}

// CreateProfile inserts a student profile.
func (r *StudentRepository) CreateProfile(ctx context.Context, p *model.StudentProfile) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	_, err := r.pool.Exec(ctx,
		`INSERT INTO students (id, user_id, class_id, roll_number)
		 VALUES ($1, $2, $3, $4)`,
		p.ID, p.UserID, p.ClassID, p.RollNumber)
	return translateErr(err)
}

// GetProfileByUserID retrieves the student profile attached to an account.
func (r *StudentRepository) GetProfileByUserID(ctx context.Context, userID uuid.UUID) (*model.StudentProfile, error) {
	p := &model.StudentProfile{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, user_id, class_id, roll_number FROM students WHERE user_id = $1`, userID,
	).Scan(&p.ID, &p.UserID, &p.ClassID, &p.RollNumber)
	if err != nil {
		return nil, translateErr(err)
	}
	return p, nil
}

// ListProfileRows bulk-fetches all student profiles joined with accounts,
// one round trip for the roster view.
func (r *StudentRepository) ListProfileRows(ctx context.Context) ([]StudentProfileRow, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT u.full_name, u.email, st.class_id, st.roll_number
		 FROM students st
		 JOIN users u ON u.id = st.user_id
		 ORDER BY u.full_name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var profiles []StudentProfileRow
	for rows.Next() {
		var p StudentProfileRow
		if err := rows.Scan(&p.FullName, &p.Email, &p.ClassID, &p.RollNumber); err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	return profiles, rows.Err()
}
