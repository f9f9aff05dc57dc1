package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/mikan-studio/portfolio-api/docs"
	"github.com/mikan-studio/portfolio-api/internal/api/handler"
	"github.com/mikan-studio/portfolio-api/internal/api/middleware"
	"github.com/mikan-studio/portfolio-api/internal/core/domain"
	"github.com/mikan-studio/portfolio-api/internal/core/ports"
	"github.com/mikan-studio/portfolio-api/internal/core/service"
	"github.com/mikan-studio/portfolio-api/internal/infrastructure/config"
	mongodb "github.com/mikan-studio/portfolio-api/internal/infrastructure/db/mongo"
	redisdb "github.com/mikan-studio/portfolio-api/internal/infrastructure/db/redis"
	"github.com/mikan-studio/portfolio-api/internal/infrastructure/queue"
)

// Dependencies carries the externally-constructed collaborators the router
// wires into handlers.
type Dependencies struct {
	Config   *config.Config
	DB       *mongo.Database
	Redis    *redis.Client
	Blobs    ports.BlobStore
	Notifier ports.Notifier
	Cleanup  *queue.CleanupDispatcher
	Logger   zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger, deps.Config.IsDevelopment())

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization, echo.HeaderOrigin, echo.HeaderAccept},
	}))
	e.Use(echoprometheus.NewMiddleware("portfolio"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(deps.DB)
	careerRepo := mongodb.NewCareerRepository(deps.DB)
	projectRepo := mongodb.NewProjectRepository(deps.DB)
	denylist := redisdb.NewDenylist(deps.Redis)

	tokenService := service.NewTokenService(deps.Config.JWTSecret, service.DefaultTokenTTL)
	authService := service.NewAuthService(userRepo, tokenService, denylist, deps.Logger)
	careerService := service.NewCareerService(careerRepo, deps.Logger)
	projectService := service.NewProjectService(projectRepo, deps.Blobs, deps.Cleanup, deps.Logger)
	applicationService := service.NewApplicationService(deps.Blobs, deps.Notifier, deps.Logger)

	authHandler := handler.NewAuthHandler(authService)
	careerHandler := handler.NewCareerHandler(careerService, applicationService)
	projectHandler := handler.NewProjectHandler(projectService)

	protect := middleware.Auth(tokenService, userRepo, denylist)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- Auth routes ---
	auth := e.Group("/api/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/logout", authHandler.Logout, protect)
	auth.GET("/users", authHandler.ListUsers, protect, adminOnly)

	// --- Career routes (listing and applying are public) ---
	careers := e.Group("/api/careers")
	careers.GET("", careerHandler.List)
	careers.POST("", careerHandler.Create, protect)
	careers.PUT("/:id", careerHandler.Update, protect)
	careers.DELETE("/:id", careerHandler.Delete, protect)
	careers.POST("/apply", careerHandler.Apply)

	// --- Project routes (listing is public) ---
	projects := e.Group("/api/projects")
	projects.GET("", projectHandler.List)
	projects.POST("", projectHandler.Create, protect)
	projects.PUT("/:id", projectHandler.Update, protect)
	projects.DELETE("/:id", projectHandler.Delete, protect)

	// --- Operational endpoints ---
	healthHandler := handler.NewHealthHandler(deps.Config.Env)
	readinessHandler := handler.NewReadinessHandler(deps.DB, deps.Redis)

	e.GET("/", healthHandler.Root)
	e.GET("/health", healthHandler.Liveness)           // liveness  - is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness - are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
