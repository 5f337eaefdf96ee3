package app

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campusware/school-backend/internal/announcement"
	"github.com/campusware/school-backend/internal/api"
	"github.com/campusware/school-backend/internal/teacher"
)

// Config holds the dependencies and settings required to start the
// application.
type Config struct {
	IsProduction bool
	ProdOrigins  string
	DBPool       *pgxpool.Pool
}

// Container holds the initialized components that are needed externally.
type Container struct {
	Router         *gin.Engine
	TeacherService teacher.Service
	AnnService     announcement.Service
}

// NewContainer wires repositories, services and the router once at process
// start. Repositories are passed in explicitly; nothing reaches for the
// pool as an ambient global.
func NewContainer(cfg Config) *Container {
	// Teacher Directory Module
	teacherRepo := teacher.NewPgxRepository(cfg.DBPool)
	teacherService := teacher.NewService(teacherRepo)

	// Announcement Module
	annRepo := announcement.NewPgxRepository(cfg.DBPool)
	annService := announcement.NewService(annRepo, teacherService)

	router := api.NewRouter(api.Config{
		IsProduction:   cfg.IsProduction,
		ProdOrigins:    cfg.ProdOrigins,
		AnnService:     annService,
		TeacherService: teacherService,
	})

	return &Container{
		Router:         router,
		TeacherService: teacherService,
		AnnService:     annService,
	}
}
