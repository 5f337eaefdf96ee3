package api

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/campusware/school-backend/internal/announcement"
	annHttp "github.com/campusware/school-backend/internal/announcement/http"
	"github.com/campusware/school-backend/internal/auth"
	"github.com/campusware/school-backend/internal/teacher"
	teacherHttp "github.com/campusware/school-backend/internal/teacher/http"
)

// Config holds everything the router needs to assemble the HTTP surface.
type Config struct {
	IsProduction   bool
	ProdOrigins    string
	AnnService     announcement.Service
	TeacherService teacher.Service
}

// NewRouter initializes the HTTP router engine.
// It is responsible for assembling middleware (CORS, Logger, Auth) and
// registering routes for the announcement and teacher modules.
func NewRouter(cfg Config) *gin.Engine {
	r := gin.New()

	// Logger logs request information to the console; Recovery captures
	// panics and returns a 500 instead of killing the process.
	r.Use(gin.Logger(), gin.Recovery())

	// Configure CORS (Cross-Origin Resource Sharing).
	corsConfig := cors.DefaultConfig()
	if cfg.IsProduction && cfg.ProdOrigins != "" {
		corsConfig.AllowOrigins = strings.Split(cfg.ProdOrigins, ",")
	} else {
		corsConfig.AllowOrigins = []string{
			"http://localhost:8081", // Swagger
		}
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type"}
	r.Use(cors.New(corsConfig))

	// teacherAuth: resolves teacher_username against the directory.
	teacherAuth := auth.TeacherRequired(cfg.TeacherService)

	annHandler := annHttp.NewHandler(cfg.AnnService)
	teacherHandler := teacherHttp.NewHandler(cfg.TeacherService)

	annHttp.RegisterRoutes(&r.RouterGroup, annHandler, teacherAuth)
	teacherHttp.RegisterRoutes(&r.RouterGroup, teacherHandler, teacherAuth)

	return r
}
