package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/schoolpad/schoolpad-backend/internal/model"
	"github.com/schoolpad/schoolpad-backend/internal/repository"
)

// AssignmentService enforces the relationship invariants of the school
// graph: teacher↔subject, teacher↔class and student↔class. Each operation
// validates its preconditions in a fixed order, then performs a single
// insert, so a failed precondition never leaves partial state.
type AssignmentService struct {
	users    UserStore
	subjects SubjectStore
	classes  ClassStore
	teachers TeacherStore
	students StudentStore
}

// NewAssignmentService creates a new AssignmentService.
func NewAssignmentService(users UserStore, subjects SubjectStore, classes ClassStore, teachers TeacherStore, students StudentStore) *AssignmentService {
	return &AssignmentService{
		users:    users,
		subjects: subjects,
		classes:  classes,
		teachers: teachers,
		students: students,
	}
}

// AssignSubject creates the teacher profile binding an account to a
// subject. The duplicate check runs first: a duplicate implies prior
// existence, so it beats not-found when both would apply. Then the account
// must exist with role teacher, and the subject must exist.
func (s *AssignmentService) AssignSubject(ctx context.Context, userID, subjectID uuid.UUID) (*model.TeacherProfile, error) {
	_, err := s.teachers.GetProfileByUserID(ctx, userID)
	if err == nil {
		return nil, ErrConflict
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, asNotFound(err)
	}
	if !user.Role.Is(model.RoleTeacher) {
		return nil, ErrNotFound
	}

	if _, err := s.subjects.GetByID(ctx, subjectID); err != nil {
		return nil, asNotFound(err)
	}

	profile := &model.TeacherProfile{UserID: userID, SubjectID: subjectID}
	if err := s.teachers.CreateProfile(ctx, profile); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrConflict
		}
		return nil, err
	}
	return profile, nil
}

// AssignClass links an existing teacher profile to a class. The profile is
// a hard prerequisite: assigning a subject first is what creates it, and
// this operation never creates one implicitly.
func (s *AssignmentService) AssignClass(ctx context.Context, userID, classID uuid.UUID, isClassTeacher bool) (*model.TeacherClassLink, error) {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return nil, asNotFound(err)
	}

	profile, err := s.teachers.GetProfileByUserID(ctx, userID)
	if err != nil {
		return nil, asNotFound(err)
	}

	if _, err := s.classes.GetByID(ctx, classID); err != nil {
		return nil, asNotFound(err)
	}

	if _, err := s.teachers.GetLink(ctx, profile.ID, classID); err == nil {
		return nil, ErrConflict
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	link := &model.TeacherClassLink{
		TeacherID:      profile.ID,
		ClassID:        classID,
		IsClassTeacher: isClassTeacher,
	}
	if err := s.teachers.CreateLink(ctx, link); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrConflict
		}
		return nil, err
	}
	return link, nil
}

// TeacherOfClass returns the teacher-class links of a class. The class
// must exist and hold at least one link.
func (s *AssignmentService) TeacherOfClass(ctx context.Context, classID uuid.UUID) ([]model.TeacherClassLink, error) {
	if _, err := s.classes.GetByID(ctx, classID); err != nil {
		return nil, asNotFound(err)
	}

	links, err := s.teachers.ListLinksByClass(ctx, classID)
	if err != nil {
		return nil, err
	}
	if len(links) == 0 {
		return nil, ErrNotFound
	}
	return links, nil
}

// AssignStudentClass creates the student profile binding an account to a
// class with a roll number. This is a one-time assignment, not an update:
// an existing profile is a conflict regardless of the target class.
func (s *AssignmentService) AssignStudentClass(ctx context.Context, userID, classID uuid.UUID, rollNumber int) (*model.StudentProfile, error) {
	_, err := s.students.GetProfileByUserID(ctx, userID)
	if err == nil {
		return nil, ErrConflict
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return nil, asNotFound(err)
	}

	if _, err := s.classes.GetByID(ctx, classID); err != nil {
		return nil, asNotFound(err)
	}

	profile := &model.StudentProfile{
		UserID:     userID,
		ClassID:    classID,
		RollNumber: rollNumber,
	}
	if err := s.students.CreateProfile(ctx, profile); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrConflict
		}
		return nil, err
	}
	return profile, nil
}

func asNotFound(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return ErrNotFound
	}
	return err
}
