package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/schoolpad/schoolpad-backend/internal/model"
	"github.com/schoolpad/schoolpad-backend/internal/repository"
)

type rosterFixture struct {
	svc      *RosterService
	teachers *fakeTeacherStore
	students *fakeStudentStore
	classes  *fakeClassStore
}

func newRosterFixture() *rosterFixture {
	f := &rosterFixture{
		teachers: &fakeTeacherStore{},
		students: &fakeStudentStore{},
		classes:  &fakeClassStore{},
	}
	f.svc = NewRosterService(f.teachers, f.students, f.classes, nil, zerolog.Nop())
	return f
}

func (f *rosterFixture) addClass(t *testing.T, standard int, section string) *model.Class {
	t.Helper()
	class := &model.Class{Standard: standard, Section: section}
	if err := f.classes.Create(context.Background(), class); err != nil {
		t.Fatalf("Create class: %v", err)
	}
	return class
}

func (f *rosterFixture) addTeacher(name, email, subject string) uuid.UUID {
	teacherID := uuid.New()
	f.teachers.profileRows = append(f.teachers.profileRows, repository.TeacherProfileRow{
		TeacherID: teacherID,
		FullName:  name,
		Email:     email,
		Subject:   subject,
	})
	return teacherID
}

func (f *rosterFixture) addLink(teacherID, classID uuid.UUID, flagged bool) {
	f.teachers.links = append(f.teachers.links, model.TeacherClassLink{
		ID:             uuid.New(),
		TeacherID:      teacherID,
		ClassID:        classID,
		IsClassTeacher: flagged,
	})
}

func (f *rosterFixture) addStudent(name, email string, classID uuid.UUID, roll int) {
	f.students.profileRows = append(f.students.profileRows, repository.StudentProfileRow{
		FullName:   name,
		Email:      email,
		ClassID:    classID,
		RollNumber: roll,
	})
}

func TestListTeachersOneRowPerLink(t *testing.T) {
	f := newRosterFixture()
	classA := f.addClass(t, 8, "A")
	classB := f.addClass(t, 9, "B")
	teacherID := f.addTeacher("Meena Iyer", "meena@school.test", "Mathematics")
	f.addLink(teacherID, classA.ID, true)
	f.addLink(teacherID, classB.ID, false)

	rows, err := f.svc.ListTeachers(context.Background())
	if err != nil {
		t.Fatalf("ListTeachers: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	for _, row := range rows {
		if row.FullName != "Meena Iyer" || row.Subject != "Mathematics" {
			t.Errorf("row identity = %q/%q, want Meena Iyer/Mathematics", row.FullName, row.Subject)
		}
		if row.Standard == nil || row.Section == nil {
			t.Errorf("row %+v has null class fields", row)
		}
	}
}

func TestListTeachersNoLinks(t *testing.T) {
	f := newRosterFixture()
	f.addTeacher("Meena Iyer", "meena@school.test", "Mathematics")

	rows, err := f.svc.ListTeachers(context.Background())
	if err != nil {
		t.Fatalf("ListTeachers: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}
	row := rows[0]
	if row.Standard != nil || row.Section != nil {
		t.Errorf("unassigned teacher row = %+v, want null class fields", row)
	}
	if row.IsClassTeacher {
		t.Error("unassigned teacher row flagged as class teacher")
	}
}

func TestListStudents(t *testing.T) {
	f := newRosterFixture()
	class := f.addClass(t, 8, "A")
	teacherID := f.addTeacher("Meena Iyer", "meena@school.test", "Mathematics")
	f.addLink(teacherID, class.ID, true)
	f.addStudent("Ravi Kumar", "ravi@school.test", class.ID, 12)

	rows, err := f.svc.ListStudents(context.Background())
	if err != nil {
		t.Fatalf("ListStudents: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}
	row := rows[0]
	if row.Standard != 8 || row.Section != "A" || row.RollNumber != 12 {
		t.Errorf("row = %+v, want class 8A roll 12", row)
	}
	if row.ClassTeacher == nil || *row.ClassTeacher != "Meena Iyer" {
		t.Errorf("class teacher = %v, want Meena Iyer", row.ClassTeacher)
	}
}

func TestListStudentsFlaggedTeacherWins(t *testing.T) {
	f := newRosterFixture()
	class := f.addClass(t, 8, "A")
	first := f.addTeacher("Meena Iyer", "meena@school.test", "Mathematics")
	flagged := f.addTeacher("Arjun Rao", "arjun@school.test", "Science")
	f.addLink(first, class.ID, false)
	f.addLink(flagged, class.ID, true)
	f.addStudent("Ravi Kumar", "ravi@school.test", class.ID, 12)

	rows, err := f.svc.ListStudents(context.Background())
	if err != nil {
		t.Fatalf("ListStudents: %v", err)
	}
	if rows[0].ClassTeacher == nil || *rows[0].ClassTeacher != "Arjun Rao" {
		t.Errorf("class teacher = %v, want the flagged teacher Arjun Rao", rows[0].ClassTeacher)
	}
}

func TestListStudentsUnflaggedFallback(t *testing.T) {
	f := newRosterFixture()
	class := f.addClass(t, 8, "A")
	teacherID := f.addTeacher("Meena Iyer", "meena@school.test", "Mathematics")
	f.addLink(teacherID, class.ID, false)
	f.addStudent("Ravi Kumar", "ravi@school.test", class.ID, 12)

	rows, err := f.svc.ListStudents(context.Background())
	if err != nil {
		t.Fatalf("ListStudents: %v", err)
	}

	// An unflagged link still yields a name rather than null.
	if rows[0].ClassTeacher == nil || *rows[0].ClassTeacher != "Meena Iyer" {
		t.Errorf("class teacher = %v, want fallback Meena Iyer", rows[0].ClassTeacher)
	}
}

func TestListStudentsNoLinks(t *testing.T) {
	f := newRosterFixture()
	class := f.addClass(t, 8, "A")
	f.addStudent("Ravi Kumar", "ravi@school.test", class.ID, 12)

	rows, err := f.svc.ListStudents(context.Background())
	if err != nil {
		t.Fatalf("ListStudents: %v", err)
	}
	if rows[0].ClassTeacher != nil {
		t.Errorf("class teacher = %q, want nil for a class with no links", *rows[0].ClassTeacher)
	}
}
