package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/inkwell/blog-api/docs"
	"github.com/inkwell/blog-api/internal/api/handler"
	"github.com/inkwell/blog-api/internal/api/middleware"
	"github.com/inkwell/blog-api/internal/core/domain"
	"github.com/inkwell/blog-api/internal/core/ports"
	"github.com/inkwell/blog-api/internal/core/service"
	"github.com/inkwell/blog-api/internal/infrastructure/config"
	mongorepo "github.com/inkwell/blog-api/internal/infrastructure/db/mongo"
	redisdb "github.com/inkwell/blog-api/internal/infrastructure/db/redis"
	"github.com/inkwell/blog-api/internal/infrastructure/http/handlers"
)

// Deps carries the process-wide resources the router wires together. All of
// them are constructed once at startup and read-only afterwards.
type Deps struct {
	DB        *mongo.Database
	Redis     *redis.Client
	Cfg       *config.Config
	FileStore ports.FileStore
	Activity  ports.ActivitySink
	UploadDir string
	Log       zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("blog"))

	// --- Dependencies ---
	var denylist ports.TokenDenylist
	if d.Redis != nil {
		denylist = redisdb.NewTokenDenylist(d.Redis)
	}

	userRepo := mongorepo.NewUserRepository(d.DB)
	postRepo := mongorepo.NewPostRepository(d.DB)

	codec := service.NewTokenCodec(d.Cfg.JWTSecret, d.Cfg.TokenTTL, denylist)
	authService := service.NewAuthService(userRepo, codec, denylist, d.Log)
	postService := service.NewPostService(postRepo, d.Activity, d.Log)
	uploadService := service.NewUploadService(d.FileStore, d.Log)

	authHandler := handler.NewAuthHandler(authService)
	postHandler := handler.NewPostHandler(postService)
	uploadHandler := handler.NewUploadHandler(uploadService)
	adminHandler := handler.NewAdminHandler(authService)

	requireAuth := middleware.Auth(codec)
	requireAdmin := middleware.RequireRoles(domain.RoleAdmin)

	// --- Auth routes ---
	e.POST("/api/auth/register", authHandler.Register)
	e.POST("/api/auth/login", authHandler.Login)
	e.POST("/api/auth/logout", authHandler.Logout, requireAuth)

	// --- Post & comment routes ---
	e.POST("/api/posts", postHandler.Create, requireAuth)
	e.GET("/api/posts", postHandler.List)
	e.GET("/api/posts/:id", postHandler.Get)
	e.PUT("/api/posts/:id", postHandler.Update, requireAuth)
	e.DELETE("/api/posts/:id", postHandler.Delete, requireAuth)
	e.POST("/api/posts/:id/comments", postHandler.AddComment, requireAuth)
	e.DELETE("/api/posts/:id/comments/:commentId", postHandler.DeleteComment, requireAuth)

	// --- Upload ---
	e.POST("/api/upload", uploadHandler.Upload)
	e.Static("/uploads", d.UploadDir)

	// --- Admin surface ---
	e.GET("/api/admin/users", adminHandler.ListUsers, requireAuth, requireAdmin)

	// --- Health probes (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(d.DB, d.Redis)

	e.GET("/", healthHandler.Root)
	e.GET("/health", healthHandler.Liveness)            // is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // are mongo and redis reachable?

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
