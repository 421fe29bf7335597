package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/schoolpad/schoolpad-backend/internal/config"
	"github.com/schoolpad/schoolpad-backend/internal/model"
)

const rosterTTL = 30 * time.Second

// RosterService computes the read-only roster projections. Each view is
// assembled from a bounded number of bulk fetches, never one query per
// row, and served through a short-lived cache.
type RosterService struct {
	teachers TeacherStore
	students StudentStore
	classes  ClassStore
	rdb      *redis.Client
	log      zerolog.Logger
}

// NewRosterService creates a new RosterService. rdb may be nil, which
// disables the cache.
func NewRosterService(teachers TeacherStore, students StudentStore, classes ClassStore, rdb *redis.Client, log zerolog.Logger) *RosterService {
	return &RosterService{
		teachers: teachers,
		students: students,
		classes:  classes,
		rdb:      rdb,
		log:      log.With().Str("component", "roster_service").Logger(),
	}
}

// ListTeachers flattens the teacher graph into one row per teacher-class
// link. A teacher with no links still emits one row with null class fields,
// so the row count per teacher is max(1, links).
func (s *RosterService) ListTeachers(ctx context.Context) ([]model.TeacherRow, error) {
	key := config.CacheKey.TeacherRosterKey()
	if cached, ok := s.fromCache(ctx, key, &[]model.TeacherRow{}); ok {
		return *cached.(*[]model.TeacherRow), nil
	}

	profiles, err := s.teachers.ListProfileRows(ctx)
	if err != nil {
		return nil, err
	}
	links, err := s.teachers.ListLinks(ctx)
	if err != nil {
		return nil, err
	}
	classes, err := s.classes.List(ctx)
	if err != nil {
		return nil, err
	}

	classByID := make(map[uuid.UUID]model.Class, len(classes))
	for _, c := range classes {
		classByID[c.ID] = c
	}
	linksByTeacher := make(map[uuid.UUID][]model.TeacherClassLink)
	for _, l := range links {
		linksByTeacher[l.TeacherID] = append(linksByTeacher[l.TeacherID], l)
	}

	rows := make([]model.TeacherRow, 0, len(profiles))
	for _, p := range profiles {
		teacherLinks := linksByTeacher[p.TeacherID]
		if len(teacherLinks) == 0 {
			rows = append(rows, model.TeacherRow{
				FullName: p.FullName,
				Email:    p.Email,
				Subject:  p.Subject,
			})
			continue
		}
		for _, l := range teacherLinks {
			row := model.TeacherRow{
				FullName:       p.FullName,
				Email:          p.Email,
				Subject:        p.Subject,
				IsClassTeacher: l.IsClassTeacher,
			}
			if c, ok := classByID[l.ClassID]; ok {
				standard := c.Standard
				section := c.Section
				row.Standard = &standard
				row.Section = &section
			}
			rows = append(rows, row)
		}
	}

	s.toCache(ctx, key, rows)
	return rows, nil
}

// ListStudents flattens student profiles into roster rows, resolving each
// class's teacher display name: the link flagged is_class_teacher wins,
// otherwise the first link seen for the class, otherwise null.
func (s *RosterService) ListStudents(ctx context.Context) ([]model.StudentRow, error) {
	key := config.CacheKey.StudentRosterKey()
	if cached, ok := s.fromCache(ctx, key, &[]model.StudentRow{}); ok {
		return *cached.(*[]model.StudentRow), nil
	}

	profiles, err := s.students.ListProfileRows(ctx)
	if err != nil {
		return nil, err
	}
	links, err := s.teachers.ListLinks(ctx)
	if err != nil {
		return nil, err
	}
	teacherRows, err := s.teachers.ListProfileRows(ctx)
	if err != nil {
		return nil, err
	}
	classes, err := s.classes.List(ctx)
	if err != nil {
		return nil, err
	}

	classByID := make(map[uuid.UUID]model.Class, len(classes))
	for _, c := range classes {
		classByID[c.ID] = c
	}
	teacherName := make(map[uuid.UUID]string, len(teacherRows))
	for _, t := range teacherRows {
		teacherName[t.TeacherID] = t.FullName
	}

	// Per class: the flagged link wins, else the first seen in this fetch.
	classTeacher := make(map[uuid.UUID]uuid.UUID)
	classFlagged := make(map[uuid.UUID]bool)
	for _, l := range links {
		if classFlagged[l.ClassID] {
			continue
		}
		if _, seen := classTeacher[l.ClassID]; !seen || l.IsClassTeacher {
			classTeacher[l.ClassID] = l.TeacherID
			classFlagged[l.ClassID] = l.IsClassTeacher
		}
	}

	rows := make([]model.StudentRow, 0, len(profiles))
	for _, p := range profiles {
		row := model.StudentRow{
			FullName:   p.FullName,
			Email:      p.Email,
			RollNumber: p.RollNumber,
		}
		if c, ok := classByID[p.ClassID]; ok {
			row.Standard = c.Standard
			row.Section = c.Section
		}
		if teacherID, ok := classTeacher[p.ClassID]; ok {
			if name, ok := teacherName[teacherID]; ok {
				row.ClassTeacher = &name
			}
		}
		rows = append(rows, row)
	}

	s.toCache(ctx, key, rows)
	return rows, nil
}

func (s *RosterService) fromCache(ctx context.Context, key string, dst any) (any, bool) {
	if s.rdb == nil {
		return nil, false
	}
	raw, err := s.rdb.Get(ctx, key).Result()
	if err != nil {
		return nil, false
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		return nil, false
	}
	return dst, true
}

func (s *RosterService) toCache(ctx context.Context, key string, rows any) {
	if s.rdb == nil {
		return
	}
	raw, err := json.Marshal(rows)
	if err != nil {
		return
	}
	if err := s.rdb.Set(ctx, key, raw, rosterTTL).Err(); err != nil {
		s.log.Warn().Err(err).Msg("roster cache write failed")
	}
}
