package api

import (
	"net/http"
	"sync"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/thevittavardhan/backend/internal/api/handler"
	"github.com/thevittavardhan/backend/internal/api/middleware"
	"github.com/thevittavardhan/backend/internal/core/ports"
)

// RouterDeps bundles everything the HTTP surface needs.
type RouterDeps struct {
	Auth        ports.AuthService
	Submissions ports.SubmissionService
	Admin       ports.AdminService
	Content     ports.ContentRepository
	Tokens      ports.TokenService
	Limiter     middleware.Allower
	Mongo       *mongo.Database
	Redis       *redis.Client
	Log         zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps RouterDeps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	promMW, promHandler := prometheusMetrics()
	e.Use(promMW)

	e.GET("/metrics", promHandler)

	// --- Health probes (no auth, no rate limit) ---
	health := handler.NewHealthHandler(deps.Mongo, deps.Redis)
	e.GET("/health", health.Liveness)
	e.GET("/health/ready", health.Readiness)

	e.GET("/", banner)

	// --- Public API, rate limited per client IP ---
	api := e.Group("/api", middleware.RateLimit(deps.Limiter, deps.Log))

	authHandler := handler.NewAuthHandler(deps.Auth)
	api.POST("/login", authHandler.LoginUser)
	api.POST("/admin/login", authHandler.LoginAdmin)

	submissions := handler.NewSubmissionHandler(deps.Submissions)
	api.POST("/contact", submissions.Contact)
	api.POST("/careers", submissions.Career)

	content := handler.NewContentHandler(deps.Content)
	api.GET("/blogs", content.Blogs)
	api.GET("/testimonials", content.Testimonials)
	api.GET("/clients", content.Clients)

	// --- Protected admin surface ---
	admin := api.Group("/admin", middleware.Auth(deps.Tokens))
	adminHandler := handler.NewAdminHandler(deps.Admin)
	admin.GET("/contacts", adminHandler.ListContacts)
	admin.PUT("/contacts/:id", adminHandler.UpdateContactStatus)
	admin.DELETE("/contacts/:id", adminHandler.DeleteContact)
	admin.GET("/careers", adminHandler.ListCareers)
	admin.PUT("/careers/:id", adminHandler.UpdateCareerStatus)
	admin.DELETE("/careers/:id", adminHandler.DeleteCareer)
	admin.GET("/analytics", adminHandler.Analytics)

	return e
}

var (
	promOnce    sync.Once
	promMW      echo.MiddlewareFunc
	promHandler echo.HandlerFunc
)

// prometheusMetrics builds the echoprometheus middleware exactly once.
// The collectors live in the default registry, which rejects a second
// registration when more than one router is constructed in-process.
func prometheusMetrics() (echo.MiddlewareFunc, echo.HandlerFunc) {
	promOnce.Do(func() {
		promMW = echoprometheus.NewMiddleware("vittavardhan")
		promHandler = echoprometheus.NewHandler()
	})
	return promMW, promHandler
}

// banner answers GET / with a short service description so a browser hit on
// the bare host shows something useful.
func banner(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"message": "Vitta Vardhan API is running",
		"version": "1.0.0",
		"endpoints": map[string]string{
			"contact":      "POST /api/contact",
			"careers":      "POST /api/careers",
			"blogs":        "GET /api/blogs",
			"testimonials": "GET /api/testimonials",
			"clients":      "GET /api/clients",
			"login":        "POST /api/login",
			"admin":        "POST /api/admin/login",
			"health":       "GET /health",
		},
	})
}
