package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/schoolpad/schoolpad-backend/internal/model"
	"github.com/schoolpad/schoolpad-backend/internal/repository"
)

// In-memory store fakes. They mirror the repository contract: misses are
// repository.ErrNotFound, unique rejections are repository.ErrDuplicate.

type fakeUserStore struct {
	users []model.User
}

func (f *fakeUserStore) Create(_ context.Context, u *model.User) error {
	for _, existing := range f.users {
		if strings.EqualFold(existing.Email, u.Email) {
			return repository.ErrDuplicate
		}
	}
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	f.users = append(f.users, *u)
	return nil
}

func (f *fakeUserStore) GetByID(_ context.Context, id uuid.UUID) (*model.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			out := u
			return &out, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUserStore) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range f.users {
		if strings.EqualFold(u.Email, email) {
			out := u
			return &out, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUserStore) List(_ context.Context) ([]model.User, error) {
	return append([]model.User(nil), f.users...), nil
}

func (f *fakeUserStore) Delete(_ context.Context, id uuid.UUID) error {
	for i, u := range f.users {
		if u.ID == id {
			f.users = append(f.users[:i], f.users[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

type fakeClassStore struct {
	classes []model.Class
}

func (f *fakeClassStore) Create(_ context.Context, c *model.Class) error {
	for _, existing := range f.classes {
		if existing.Standard == c.Standard && existing.Section == c.Section {
			return repository.ErrDuplicate
		}
	}
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	f.classes = append(f.classes, *c)
	return nil
}

func (f *fakeClassStore) GetByID(_ context.Context, id uuid.UUID) (*model.Class, error) {
	for _, c := range f.classes {
		if c.ID == id {
			out := c
			return &out, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeClassStore) GetByStandardSection(_ context.Context, standard int, section string) (*model.Class, error) {
	for _, c := range f.classes {
		if c.Standard == standard && c.Section == section {
			out := c
			return &out, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeClassStore) List(_ context.Context) ([]model.Class, error) {
	return append([]model.Class(nil), f.classes...), nil
}

func (f *fakeClassStore) Delete(_ context.Context, id uuid.UUID) error {
	for i, c := range f.classes {
		if c.ID == id {
			f.classes = append(f.classes[:i], f.classes[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

type fakeSubjectStore struct {
	subjects []model.Subject
}

func (f *fakeSubjectStore) Create(_ context.Context, s *model.Subject) error {
	for _, existing := range f.subjects {
		if strings.EqualFold(existing.Name, s.Name) {
			return repository.ErrDuplicate
		}
	}
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	f.subjects = append(f.subjects, *s)
	return nil
}

func (f *fakeSubjectStore) GetByID(_ context.Context, id uuid.UUID) (*model.Subject, error) {
	for _, s := range f.subjects {
		if s.ID == id {
			out := s
			return &out, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeSubjectStore) GetByName(_ context.Context, name string) (*model.Subject, error) {
	for _, s := range f.subjects {
		if strings.EqualFold(s.Name, name) {
			out := s
			return &out, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeSubjectStore) List(_ context.Context) ([]model.Subject, error) {
	return append([]model.Subject(nil), f.subjects...), nil
}

func (f *fakeSubjectStore) Delete(_ context.Context, id uuid.UUID) error {
	for i, s := range f.subjects {
		if s.ID == id {
			f.subjects = append(f.subjects[:i], f.subjects[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

type fakeTeacherStore struct {
	profiles    []model.TeacherProfile
	links       []model.TeacherClassLink
	profileRows []repository.TeacherProfileRow
}

func (f *fakeTeacherStore) CreateProfile(_ context.Context, p *model.TeacherProfile) error {
	for _, existing := range f.profiles {
		if existing.UserID == p.UserID {
			return repository.ErrDuplicate
		}
	}
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	f.profiles = append(f.profiles, *p)
	return nil
}

func (f *fakeTeacherStore) GetProfileByUserID(_ context.Context, userID uuid.UUID) (*model.TeacherProfile, error) {
	for _, p := range f.profiles {
		if p.UserID == userID {
			out := p
			return &out, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeTeacherStore) CreateLink(_ context.Context, l *model.TeacherClassLink) error {
	for _, existing := range f.links {
		if existing.TeacherID == l.TeacherID && existing.ClassID == l.ClassID {
			return repository.ErrDuplicate
		}
	}
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	f.links = append(f.links, *l)
	return nil
}

func (f *fakeTeacherStore) GetLink(_ context.Context, teacherID, classID uuid.UUID) (*model.TeacherClassLink, error) {
	for _, l := range f.links {
		if l.TeacherID == teacherID && l.ClassID == classID {
			out := l
			return &out, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeTeacherStore) ListLinksByClass(_ context.Context, classID uuid.UUID) ([]model.TeacherClassLink, error) {
	var out []model.TeacherClassLink
	for _, l := range f.links {
		if l.ClassID == classID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (f *fakeTeacherStore) ListLinks(_ context.Context) ([]model.TeacherClassLink, error) {
	return append([]model.TeacherClassLink(nil), f.links...), nil
}

func (f *fakeTeacherStore) ListProfileRows(_ context.Context) ([]repository.TeacherProfileRow, error) {
	return append([]repository.TeacherProfileRow(nil), f.profileRows...), nil
}

type fakeStudentStore struct {
	profiles    []model.StudentProfile
	profileRows []repository.StudentProfileRow
}

func (f *fakeStudentStore) CreateProfile(_ context.Context, p *model.StudentProfile) error {
	for _, existing := range f.profiles {
		if existing.UserID == p.UserID {
			return repository.ErrDuplicate
		}
	}
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	f.profiles = append(f.profiles, *p)
	return nil
}

func (f *fakeStudentStore) GetProfileByUserID(_ context.Context, userID uuid.UUID) (*model.StudentProfile, error) {
	for _, p := range f.profiles {
		if p.UserID == userID {
			out := p
			return &out, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeStudentStore) ListProfileRows(_ context.Context) ([]repository.StudentProfileRow, error) {
	return append([]repository.StudentProfileRow(nil), f.profileRows...), nil
}

type fakeNoticeStore struct {
	notices []model.Notice
}

func (f *fakeNoticeStore) Create(_ context.Context, n *model.Notice) error {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	f.notices = append(f.notices, *n)
	return nil
}

func (f *fakeNoticeStore) GetByID(_ context.Context, id uuid.UUID) (*model.Notice, error) {
	for _, n := range f.notices {
		if n.ID == id {
			out := n
			return &out, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeNoticeStore) List(_ context.Context) ([]model.Notice, error) {
	return append([]model.Notice(nil), f.notices...), nil
}

func (f *fakeNoticeStore) Delete(_ context.Context, id uuid.UUID) error {
	for i, n := range f.notices {
		if n.ID == id {
			f.notices = append(f.notices[:i], f.notices[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}
