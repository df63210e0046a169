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
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"github.com/sbilibin2017/gw-social/docs"
	"github.com/sbilibin2017/gw-social/internal/handlers"
	"github.com/sbilibin2017/gw-social/internal/jwt"
	"github.com/sbilibin2017/gw-social/internal/logger"
	"github.com/sbilibin2017/gw-social/internal/middlewares"
	"github.com/sbilibin2017/gw-social/internal/migrations"
	"github.com/sbilibin2017/gw-social/internal/repositories"
	"github.com/sbilibin2017/gw-social/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

type config struct {
	AppHost     string
	AppPort     string
	LogLevel    string
	LogFile     string
	CORSOrigins []string

	PGHost         string
	PGPort         int
	PGUser         string
	PGPassword     string
	PGDB           string
	PGMaxOpenConns int
	PGMaxIdleConns int

	JWTSecretKey string
	JWTExp       time.Duration

	FeedLimit int
}

func (c config) dsn() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.PGUser, c.PGPassword, c.PGHost, c.PGPort, c.PGDB)
}

// @title gw-social API
// @version 1.0.0
// @description Minimal social network: users, posts, comments, likes and follows
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
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

// parseConfig loads environment variables from a file, when present, and
// returns the application, database, logging, JWT and feed configuration.
func parseConfig(path string) (cfg config, err error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	cfg.AppHost = getEnv("APP_HOST", "localhost")
	cfg.AppPort = getEnv("APP_PORT", "8080")
	cfg.LogLevel = getEnv("APP_LOG_LEVEL", "info")
	cfg.LogFile = getEnv("APP_LOG_FILE", "")
	for _, origin := range strings.Split(getEnv("CORS_ALLOWED_ORIGINS", "*"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSOrigins = append(cfg.CORSOrigins, origin)
		}
	}

	// PostgreSQL config
	cfg.PGHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.PGUser = getEnv("POSTGRES_USER", "user")
	cfg.PGPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.PGDB = getEnv("POSTGRES_DB", "social")
	if cfg.PGPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return cfg, fmt.Errorf("POSTGRES_PORT: %w", err)
	}
	if cfg.PGMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return cfg, fmt.Errorf("POSTGRES_MAX_OPEN_CONNS: %w", err)
	}
	if cfg.PGMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return cfg, fmt.Errorf("POSTGRES_MAX_IDLE_CONNS: %w", err)
	}

	// JWT config
	cfg.JWTSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	jwtExpSecond, err := strconv.Atoi(getEnv("JWT_EXP_SECOND", "3600"))
	if err != nil {
		return cfg, fmt.Errorf("JWT_EXP_SECOND: %w", err)
	}
	cfg.JWTExp = time.Duration(jwtExpSecond) * time.Second

	// Feed config
	if cfg.FeedLimit, err = strconv.Atoi(getEnv("FEED_LIMIT", strconv.Itoa(services.DefaultFeedLimit))); err != nil {
		return cfg, fmt.Errorf("FEED_LIMIT: %w", err)
	}

	return cfg, nil
}

// run initializes the logger and the database, applies the schema and
// serves HTTP until a shutdown signal arrives.
func run(ctx context.Context, cfg config) error {
	var logOpts []logger.Option
	if cfg.LogFile != "" {
		logOpts = append(logOpts, logger.WithFile(cfg.LogFile))
	}
	if err := logger.Initialize(cfg.LogLevel, logOpts...); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	logger.Log.Infow("connecting to PostgreSQL", "host", cfg.PGHost, "port", cfg.PGPort, "db", cfg.PGDB)
	db, err := sqlx.ConnectContext(ctx, "pgx", cfg.dsn())
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.PGMaxOpenConns)
	db.SetMaxIdleConns(cfg.PGMaxIdleConns)

	if err := migrations.Apply(ctx, db); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}

	docs.SwaggerInfo.Host = fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort)

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort),
		Handler:           newRouter(db, cfg),
		ReadHeaderTimeout: 5 * time.Second,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s", srv.Addr)
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

// newRouter wires repositories, services and handlers into the route table.
func newRouter(db *sqlx.DB, cfg config) http.Handler {
	tokens := jwt.New(jwt.WithSecretKey(cfg.JWTSecretKey), jwt.WithExpiration(cfg.JWTExp))

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	postReadRepo := repositories.NewPostReadRepository(db)
	postWriteRepo := repositories.NewPostWriteRepository(db)
	commentReadRepo := repositories.NewCommentReadRepository(db)
	commentWriteRepo := repositories.NewCommentWriteRepository(db)
	likeReadRepo := repositories.NewLikeReadRepository(db, middlewares.GetTxFromContext)
	likeWriteRepo := repositories.NewLikeWriteRepository(db, middlewares.GetTxFromContext)
	followReadRepo := repositories.NewFollowReadRepository(db)
	followWriteRepo := repositories.NewFollowWriteRepository(db)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, tokens)
	userService := services.NewUserService(userReadRepo, postReadRepo, followReadRepo, followWriteRepo)
	postService := services.NewPostService(
		postWriteRepo, postReadRepo,
		commentWriteRepo, commentReadRepo,
		likeReadRepo, likeWriteRepo,
		cfg.FeedLimit,
	)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.RealIP)
	r.Use(middlewares.LoggingMiddleware)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.New(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
		ExposedHeaders: []string{"X-Request-ID"},
	}).Handler)

	r.Route("/api", func(r chi.Router) {
		// Public routes
		r.Post("/register", handlers.NewRegisterHandler(authService))
		r.Post("/login", handlers.NewLoginHandler(authService))
		r.Get("/users/{userId}", handlers.NewGetProfileHandler(userService))

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(middlewares.AuthMiddleware(tokens))

			r.Post("/users/follow", handlers.NewFollowHandler(userService))
			r.Delete("/users/{followedId}/unfollow", handlers.NewUnfollowHandler(userService))
			r.Get("/users/{userId}/is-following", handlers.NewIsFollowingHandler(userService))

			r.Get("/posts/feed", handlers.NewFeedHandler(postService))
			r.Post("/posts", handlers.NewCreatePostHandler(postService))
			r.Get("/posts/{postId}", handlers.NewGetPostHandler(postService))
			r.Post("/posts/{postId}/comments", handlers.NewCommentHandler(postService))
			r.With(middlewares.TxMiddleware(db)).Post("/posts/{postId}/like", handlers.NewLikeHandler(postService))
			r.Get("/posts/{postId}/like-status", handlers.NewLikeStatusHandler(postService))
		})
	})

	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	return r
}
