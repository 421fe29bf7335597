package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/schoolpad/schoolpad-backend/internal/config"
	"github.com/schoolpad/schoolpad-backend/internal/handler"
	"github.com/schoolpad/schoolpad-backend/internal/middleware"
	"github.com/schoolpad/schoolpad-backend/internal/model"
	"github.com/schoolpad/schoolpad-backend/internal/response"
	"github.com/schoolpad/schoolpad-backend/internal/service"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Auth         *handler.AuthHandler
	Account      *handler.AccountHandler
	Class        *handler.ClassHandler
	Subject      *handler.SubjectHandler
	Assignment   *handler.AssignmentHandler
	Notice       *handler.NoticeHandler
	Roster       *handler.RosterHandler
	NoticeStream *handler.NoticeStreamHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
// Every mutating or admin-listing route chains RequireAuth before
// RequireRoles; the teacher-of-class lookup is deliberately open.
func SetupRouter(
	authService *service.AuthService,
	handlers *Handlers,
	cfg *config.Config,
) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	// ─── CORS ──────────────────────────────────────────────────────────
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Apply request ID middleware globally so every response includes metadata.
	router.Use(response.RequestIDMiddleware())

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})

	// ─── 1. Auth Group ─────────────────────────────────────────────────
	auth := router.Group("/api/v1/auth")
	{
		auth.POST("/login", handlers.Auth.Login)
		auth.GET("/me", middleware.RequireAuth(authService), handlers.Auth.Me)
	}

	// ─── 2. Open Lookups ───────────────────────────────────────────────
	// Who teaches a class is readable without credentials.
	router.GET("/api/v1/classes/:id/teachers", handlers.Assignment.TeacherOfClass)

	// ─── 3. Admin Group (auth + admin role) ────────────────────────────
	adminAPI := router.Group("/api/v1/admin")
	adminAPI.Use(
		middleware.RequireAuth(authService),
		middleware.RequireRoles(authService, model.RoleAdmin),
	)
	{
		// Account management
		adminAPI.POST("/teachers", handlers.Account.RegisterTeacher)
		adminAPI.POST("/students", handlers.Account.RegisterStudent)
		adminAPI.GET("/users", handlers.Account.ListUsers)
		adminAPI.DELETE("/users/:id", handlers.Account.DeleteUser)

		// Class management
		adminAPI.GET("/classes", handlers.Class.ListClasses)
		adminAPI.POST("/classes", handlers.Class.CreateClass)
		adminAPI.DELETE("/classes/:id", handlers.Class.DeleteClass)

		// Subject management
		adminAPI.GET("/subjects", handlers.Subject.ListSubjects)
		adminAPI.POST("/subjects", handlers.Subject.CreateSubject)
		adminAPI.DELETE("/subjects/:id", handlers.Subject.DeleteSubject)

		// Relationship assignment
		adminAPI.POST("/assign-subject", handlers.Assignment.AssignSubject)
		adminAPI.POST("/assign-class", handlers.Assignment.AssignClass)
		adminAPI.POST("/assign-student-class", handlers.Assignment.AssignStudentClass)

		// Roster projections
		adminAPI.GET("/roster/teachers", handlers.Roster.ListTeachers)
		adminAPI.GET("/roster/students", handlers.Roster.ListStudents)
	}

	// ─── 4. Notices (auth; role checks per route) ──────────────────────
	notices := router.Group("/api/v1/notices")
	notices.Use(middleware.RequireAuth(authService))
	{
		notices.POST("",
			middleware.RequireRoles(authService, model.RoleAdmin, model.RoleTeacher),
			handlers.Notice.CreateNotice,
		)
		notices.GET("",
			middleware.RequireRoles(authService, model.RoleAdmin, model.RoleTeacher),
			handlers.Notice.ListNotices,
		)
		// Deletion has no role restriction beyond authentication.
		notices.DELETE("/:id", handlers.Notice.DeleteNotice)
	}

	// ─── 5. WebSocket Group ────────────────────────────────────────────
	ws := router.Group("/ws/v1")
	ws.Use(middleware.RequireAuth(authService))
	{
		ws.GET("/notices/stream", handlers.NoticeStream.Stream)
	}

	return router
}
