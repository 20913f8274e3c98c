package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/sbilibin2017/gw-todo/docs"
	"github.com/sbilibin2017/gw-todo/internal/handlers"
	"github.com/sbilibin2017/gw-todo/internal/jwt"
	"github.com/sbilibin2017/gw-todo/internal/logger"
	"github.com/sbilibin2017/gw-todo/internal/middlewares"
	"github.com/sbilibin2017/gw-todo/internal/repositories"
	"github.com/sbilibin2017/gw-todo/internal/services"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title gw-todo API
// @version 1.0.0
// @description Todo list service with bearer token authentication
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, logLevel, jwtSecret, jwtExpMinutes, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel,
		jwtSecret, jwtExpMinutes,
	); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Version: %s\nCommit: %s\nBuild: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns
// the application, logging, and JWT configuration.
func parseConfig(path string) (
	appHost, appPort, logLevel string,
	jwtSecretKey string, jwtExpMinutes int,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "8080")
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// JWT config
	jwtSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if jwtExpMinutes, err = strconv.Atoi(getEnv("JWT_EXP_MINUTES", "30")); err != nil {
		return
	}

	return
}

// newRouter wires services into handlers and mounts them on a chi router.
// Every /todos and /users route requires a bearer token.
func newRouter(
	authService *services.AuthService,
	todoService *services.TodoService,
	tokener middlewares.Tokener,
) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)

	// Public routes
	r.Get("/", handlers.NewIndexHandler())
	r.Post("/register", handlers.NewRegisterHandler(authService))
	r.Post("/token", handlers.NewTokenHandler(authService))
	r.Get("/docs/*", httpSwagger.Handler(httpSwagger.URL("/docs/doc.json")))

	// Protected routes
	r.Group(func(r chi.Router) {
		r.Use(middlewares.AuthMiddleware(tokener, authService))

		r.Get("/users/me", handlers.NewMeHandler(authService))

		r.Route("/todos", func(r chi.Router) {
			r.Get("/", handlers.NewListTodosHandler(todoService))
			r.Post("/", handlers.NewCreateTodoHandler(todoService))
			r.Get("/{id}", handlers.NewGetTodoHandler(todoService))
			r.Put("/{id}", handlers.NewUpdateTodoHandler(todoService))
			r.Delete("/{id}", handlers.NewDeleteTodoHandler(todoService))
		})
	})

	return r
}

// run initializes the logger, stores, services and HTTP server,
// and handles graceful shutdown.
func run(ctx context.Context,
	appHost, appPort, logLevel string,
	jwtSecretKey string, jwtExpMinutes int,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Initialize JWT service
	tokens := jwt.New(
		jwt.WithSecretKey(jwtSecretKey),
		jwt.WithExpiration(time.Duration(jwtExpMinutes)*time.Minute),
	)

	// Initialize in-memory stores
	userRepo := repositories.NewUserMemoryRepository()
	todoRepo := repositories.NewTodoMemoryRepository()

	// Initialize services
	authService := services.NewAuthService(userRepo, userRepo, tokens)
	todoService := services.NewTodoService(todoRepo, todoRepo)

	docs.SwaggerInfo.Host = fmt.Sprintf("%s:%s", appHost, appPort)

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: newRouter(authService, todoService, tokens),
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", appHost, appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
