package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/schoolpad/schoolpad-backend/internal/model"
)

// TeacherProfileRow is one bulk-fetched teacher profile joined with its
// account and subject, feeding the roster views.
type TeacherProfileRow struct {
	TeacherID uuid.UUID
	FullName  string
	Email     string
	Subject   string
}

// TeacherRepository handles teacher profile and teacher-class link data access.
type TeacherRepository struct {
	pool *pgxpool.Pool
}

// NewTeacherRepository creates a new TeacherRepository.
func NewTeacherRepository(pool *pgxpool.Pool) *TeacherRepository {
	return &TeacherRepository{pool: pool}
}

// CreateProfile inserts a teacher profile.
func (r *TeacherRepository) CreateProfile(ctx context.Context, p *model.TeacherProfile) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	_, err := r.pool.Exec(ctx,
		`INSERT INTO teachers (id, user_id, subject_id) VALUES ($1, $2, $3)`,
		p.ID, p.UserID, p.SubjectID)
	return translateErr(err)
}

// GetProfileByUserID retrieves the teacher profile attached to an account.
func (r *TeacherRepository) GetProfileByUserID(ctx context.Context, userID uuid.UUID) (*model.TeacherProfile, error) {
	p := &model.TeacherProfile{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, user_id, subject_id FROM teachers WHERE user_id = $1`, userID,
	).Scan(&p.ID, &p.UserID, &p.SubjectID)
	if err != nil {
		return nil, translateErr(err)
	}
	return p, nil
}

// CreateLink inserts a teacher-class link.
func (r *TeacherRepository) CreateLink(ctx context.Context, l *model.TeacherClassLink) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	_, err := r.pool.Exec(ctx,
		`INSERT INTO teacher_classes (id, teacher_id, class_id, is_class_teacher)
		 VALUES ($1, $2, $3, $4)`,
		l.ID, l.TeacherID, l.ClassID, l.IsClassTeacher)
	return translateErr(err)
}

// GetLink retrieves the link for a (teacher, class) pair.
func (r *TeacherRepository) GetLink(ctx context.Context, teacherID, classID uuid.UUID) (*model.TeacherClassLink, error) {
	l := &model.TeacherClassLink{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, teacher_id, class_id, is_class_teacher
		 FROM teacher_classes WHERE teacher_id = $1 AND class_id = $2`,
		teacherID, classID,
	).Scan(&l.ID, &l.TeacherID, &l.ClassID, &l.IsClassTeacher)
	if err != nil {
		return nil, translateErr(err)
	}
	return l, nil
}

// ListLinksByClass retrieves all links for one class, insertion order.
func (r *TeacherRepository) ListLinksByClass(ctx context.Context, classID uuid.UUID) ([]model.TeacherClassLink, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, teacher_id, class_id, is_class_teacher
		 FROM teacher_classes WHERE class_id = $1 ORDER BY created_at`, classID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanLinks(rows)
}

// ListLinks retrieves every teacher-class link in one round trip. Ordering
// by creation time keeps "first seen" deterministic for the roster views.
func (r *TeacherRepository) ListLinks(ctx context.Context) ([]model.TeacherClassLink, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, teacher_id, class_id, is_class_teacher
		 FROM teacher_classes ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanLinks(rows)
}

// ListProfileRows bulk-fetches all teacher profiles joined with account and
// subject, one round trip for the roster views.
func (r *TeacherRepository) ListProfileRows(ctx context.Context) ([]TeacherProfileRow, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT t.id, u.full_name, u.email, s.name
		 FROM teachers t
		 JOIN users u ON u.id = t.user_id
		 JOIN subjects s ON s.id = t.subject_id
		 ORDER BY u.full_name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var profiles []TeacherProfileRow
	for rows.Next() {
		var p TeacherProfileRow
		if err := rows.Scan(&p.TeacherID, &p.FullName, &p.Email, &p.Subject); err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	return profiles, rows.Err()
}

func scanLinks(rows pgx.Rows) ([]model.TeacherClassLink, error) {
	var links []model.TeacherClassLink
	for rows.Next() {
		var l model.TeacherClassLink
		if err := rows.Scan(&l.ID, &l.TeacherID, &l.ClassID, &l.IsClassTeacher); err != nil {
			return nil, err
		}
		links = append(links, l)
	}
	return links, rows.Err()
}
