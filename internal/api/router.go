package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/greenhouse/plants-api/docs"
	"github.com/greenhouse/plants-api/internal/api/handler"
	"github.com/greenhouse/plants-api/internal/api/middleware"
	"github.com/greenhouse/plants-api/internal/core/domain"
	"github.com/greenhouse/plants-api/internal/core/service"
	mongodb "github.com/greenhouse/plants-api/internal/infrastructure/db/mongo"
	redisdb "github.com/greenhouse/plants-api/internal/infrastructure/db/redis"
	"github.com/greenhouse/plants-api/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
//
// Route admission policy lives here, not in handlers: the auth group runs
// behind the cookie-channel resolver plus the guest gate, API routes behind
// the bearer-channel resolver plus RequireAuth, and role gates always come
// after RequireAuth so a role check never sees an anonymous caller.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("plants"))

	// --- Dependencies ---
	tokens := service.NewTokenService(cfg.JWTSecret, cfg.ServerHost, cfg.TokenTTL)

	authRepo := mongodb.NewAuthRepository(db)
	orderRepo := mongodb.NewOrderRepository(db)
	plantRepo := mongodb.NewPlantRepository(db)
	categoryRepo := mongodb.NewCategoryRepository(db)
	statsCache := redisdb.NewStatsCache(rdb)

	authService := service.NewAuthService(authRepo, tokens)
	orderService := service.NewOrderService(orderRepo, plantRepo, log)
	plantService := service.NewPlantService(plantRepo, categoryRepo, log)
	categoryService := service.NewCategoryService(categoryRepo)
	dashboardService := service.NewDashboardService(plantRepo, orderRepo, authRepo, statsCache, log)

	authHandler := handler.NewAuthHandler(authService, tokens.TTL())
	orderHandler := handler.NewOrderHandler(orderService)
	plantHandler := handler.NewPlantHandler(plantService)
	categoryHandler := handler.NewCategoryHandler(categoryService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)

	resolveBearer := middleware.ResolveBearer(tokens)
	resolveCookie := middleware.ResolveCookie(tokens)
	requireAuth := middleware.RequireAuth()
	adminOnly := middleware.RequireRole(domain.RoleAdmin)
	clientOnly := middleware.RequireRole(domain.RoleClient)

	// --- Auth routes (browser channel: cookie in, cookie out) ---
	auth := e.Group("/auth", resolveCookie)
	auth.POST("/signup", authHandler.Signup, middleware.RequireGuest())
	auth.POST("/login", authHandler.Login, middleware.RequireGuest())
	auth.POST("/logout", authHandler.Logout)

	// --- API routes (bearer channel) ---
	e.GET("/user", authHandler.Me, resolveBearer, requireAuth)
	e.GET("/statistics", dashboardHandler.Statistics, resolveBearer, requireAuth, adminOnly)

	plants := e.Group("/plants", resolveBearer, requireAuth)
	plants.GET("", plantHandler.List)
	plants.GET("/:slug", plantHandler.Get)
	plants.POST("", plantHandler.Create, adminOnly)
	plants.PUT("/:slug", plantHandler.Update, adminOnly)
	plants.DELETE("/:slug", plantHandler.Delete, adminOnly)

	orders := e.Group("/orders", resolveBearer, requireAuth)
	orders.GET("", orderHandler.List)
	orders.GET("/:id", orderHandler.Get)
	orders.POST("", orderHandler.Create, clientOnly)
	orders.PUT("/:id", orderHandler.Update)

	categories := e.Group("/categories", resolveBearer, requireAuth, adminOnly)
	categories.GET("", categoryHandler.List)
	categories.GET("/:id", categoryHandler.Get)
	categories.POST("", categoryHandler.Create)
	categories.PUT("/:id", categoryHandler.Update)
	categories.DELETE("/:id", categoryHandler.Delete)

	// --- Operational endpoints (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
