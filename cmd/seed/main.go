package main

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/schoolpad/schoolpad-backend/internal/config"
	"github.com/schoolpad/schoolpad-backend/internal/database"
	"github.com/schoolpad/schoolpad-backend/internal/logger"
	"github.com/schoolpad/schoolpad-backend/internal/model"
	"github.com/schoolpad/schoolpad-backend/internal/repository"
	"github.com/schoolpad/schoolpad-backend/internal/service"
)

var subjectNames = []string{
	"Mathematics",
	"Science",
	"English",
	"Hindi",
	"Social Studies",
	"Computer Science",
}

func main() {
	cfg := config.Load()
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	userRepo := repository.NewUserRepository(pool)
	classRepo := repository.NewClassRepository(pool)
	subjectRepo := repository.NewSubjectRepository(pool)
	teacherRepo := repository.NewTeacherRepository(pool)
	studentRepo := repository.NewStudentRepository(pool)

	tokenService := service.NewTokenService(cfg)
	authService := service.NewAuthService(tokenService, userRepo, cfg.BcryptCost)

	fmt.Println("=== Seeding Demo Data ===")

	// Subjects
	subjects := make([]model.Subject, 0, len(subjectNames))
	for _, name := range subjectNames {
		s := model.Subject{Name: name}
		if err := subjectRepo.Create(ctx, &s); err != nil {
			log.Fatal().Err(err).Str("subject", name).Msg("Failed to create subject")
		}
		subjects = append(subjects, s)
	}
	fmt.Printf("Created %d subjects\n", len(subjects))

	// Classes: standards 6-10, sections A and B
	var classes []model.Class
	for standard := 6; standard <= 10; standard++ {
		for _, section := range []string{"A", "B"} {
			c := model.Class{Standard: standard, Section: section}
			if err := classRepo.Create(ctx, &c); err != nil {
				log.Fatal().Err(err).Int("standard", standard).Str("section", section).Msg("Failed to create class")
			}
			classes = append(classes, c)
		}
	}
	fmt.Printf("Created %d classes\n", len(classes))

	// Accounts: one admin, one teacher per subject, three students per class.
	// A single multi-row COPY inserts them all.
	hash, err := authService.HashPassword("password123")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to hash password")
	}

	users := []model.User{{
		ID:           uuid.New(),
		FullName:     "Seed Admin",
		Email:        "admin@schoolpad.test",
		PasswordHash: hash,
		Role:         model.RoleAdmin,
	}}

	teacherUsers := make([]model.User, 0, len(subjects))
	for i := range subjects {
		u := model.User{
			ID:           uuid.New(),
			FullName:     fmt.Sprintf("Teacher %02d", i+1),
			Email:        fmt.Sprintf("teacher%02d@schoolpad.test", i+1),
			PasswordHash: hash,
			Role:         model.RoleTeacher,
		}
		teacherUsers = append(teacherUsers, u)
		users = append(users, u)
	}

	studentUsers := make([]model.User, 0, len(classes)*3)
	for i := range classes {
		for j := 0; j < 3; j++ {
			u := model.User{
				ID:           uuid.New(),
				FullName:     fmt.Sprintf("Student %02d-%d", i+1, j+1),
				Email:        fmt.Sprintf("student%02d_%d@schoolpad.test", i+1, j+1),
				PasswordHash: hash,
				Role:         model.RoleStudent,
			}
			studentUsers = append(studentUsers, u)
			users = append(users, u)
		}
	}

	inserted, err := userRepo.CopyUsers(ctx, users)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to bulk insert accounts")
	}
	fmt.Printf("Created %d accounts\n", inserted)

	// Teacher profiles and class links
	for i, u := range teacherUsers {
		profile := model.TeacherProfile{UserID: u.ID, SubjectID: subjects[i].ID}
		if err := teacherRepo.CreateProfile(ctx, &profile); err != nil {
			log.Fatal().Err(err).Str("teacher", u.Email).Msg("Failed to create teacher profile")
		}
		// Each teacher takes two classes; the first link is flagged.
		for j := 0; j < 2; j++ {
			class := classes[(i*2+j)%len(classes)]
			link := model.TeacherClassLink{
				TeacherID:      profile.ID,
				ClassID:        class.ID,
				IsClassTeacher: j == 0,
			}
			if err := teacherRepo.CreateLink(ctx, &link); err != nil {
				log.Fatal().Err(err).Str("teacher", u.Email).Msg("Failed to link class")
			}
		}
	}
	fmt.Printf("Assigned %d teacher profiles\n", len(teacherUsers))

	// Student profiles
	for i, u := range studentUsers {
		profile := model.StudentProfile{
			UserID:     u.ID,
			ClassID:    classes[i/3].ID,
			RollNumber: i%3 + 1,
		}
		if err := studentRepo.CreateProfile(ctx, &profile); err != nil {
			log.Fatal().Err(err).Str("student", u.Email).Msg("Failed to create student profile")
		}
	}
	fmt.Printf("Assigned %d student profiles\n", len(studentUsers))

	fmt.Println("Done.")
}
