package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/config"
	appHTTP "github.com/cmlabs-hris/attendance-backend-go/internal/handler/http"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/attendance-backend-go/internal/repository/postgresql"
	redisRepo "github.com/cmlabs-hris/attendance-backend-go/internal/repository/redis"
	attendanceService "github.com/cmlabs-hris/attendance-backend-go/internal/service/attendance"
	serviceAuth "github.com/cmlabs-hris/attendance-backend-go/internal/service/auth"
	permissionService "github.com/cmlabs-hris/attendance-backend-go/internal/service/permission"
	userService "github.com/cmlabs-hris/attendance-backend-go/internal/service/user"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 30 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start HTTP server",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL(), database.PoolOptions{
		MaxConns: cfg.Database.MaxConns,
		MinConns: cfg.Database.MinConns,
	})
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer db.Close()

	revoked, closeStore, err := newRevocationStore(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	defer closeStore()

	JWTService, err := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, revoked)
	if err != nil {
		return err
	}

	userRepo := postgresql.NewUserRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	permissionRepo := postgresql.NewPermissionRepository(db)

	authSvc := serviceAuth.NewAuthService(userRepo, JWTService)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, userRepo)
	permissionSvc := permissionService.NewPermissionService(permissionRepo)
	userSvc := userService.NewUserService(userRepo)

	router := appHTTP.NewRouter(
		slog.Default(),
		cfg.App.AllowedOrigins,
		JWTService,
		userRepo,
		appHTTP.NewAuthHandler(authSvc),
		appHTTP.NewAttendanceHandler(attendanceSvc),
		appHTTP.NewPermissionHandler(permissionSvc),
		appHTTP.NewUserHandler(userSvc),
	)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       time.Minute,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("Starting HTTP server", "address", server.Addr, "env", cfg.App.Env)
		serverErr <- server.ListenAndServe()
	}()

	select {
	case err := <-serverErr:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
		slog.Info("Shutting down HTTP server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server shutdown error", "error", err)
		return err
	}

	slog.Info("Server stopped")
	return nil
}

// newRevocationStore picks Redis when REDIS_ADDR is set and process memory otherwise.
func newRevocationStore(ctx context.Context, cfg config.RedisConfig) (jwt.RevocationStore, func(), error) {
	if cfg.Addr == "" {
		slog.Warn("REDIS_ADDR not set, revoked tokens are kept in memory")
		return jwt.NewMemoryRevocationStore(), func() {}, nil
	}

	client, err := redisRepo.NewClient(ctx, cfg.Addr, cfg.Password, cfg.DB)
	if err != nil {
		return nil, nil, fmt.Errorf("connect redis: %w", err)
	}

	return redisRepo.NewRevocationStore(client), func() {
		if err := client.Close(); err != nil {
			slog.Error("Redis close error", "error", err)
		}
	}, nil
}

