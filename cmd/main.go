package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"google.golang.org/grpc/reflection"

	"github.com/dtroode/authkeeper/internal/api/admin"
	grpcctx "github.com/dtroode/authkeeper/internal/api/grpc/context"
	"github.com/dtroode/authkeeper/internal/api/grpc/router"
	grpcServer "github.com/dtroode/authkeeper/internal/api/grpc/server"
	"github.com/dtroode/authkeeper/internal/config"
	"github.com/dtroode/authkeeper/internal/logger"
	"github.com/dtroode/authkeeper/internal/metrics"
	"github.com/dtroode/authkeeper/internal/model"
	"github.com/dtroode/authkeeper/internal/notify"
	"github.com/dtroode/authkeeper/internal/password"
	directory "github.com/dtroode/authkeeper/internal/repository/memory"
	"github.com/dtroode/authkeeper/internal/repository/postgres"
	"github.com/dtroode/authkeeper/internal/server"
	"github.com/dtroode/authkeeper/internal/service"
	"github.com/dtroode/authkeeper/internal/storage/file"
	"github.com/dtroode/authkeeper/internal/storage/memory"
	redisStore "github.com/dtroode/authkeeper/internal/storage/redis"
	"github.com/dtroode/authkeeper/internal/token"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

const (
	refreshNamespace = "refresh"
	resetNamespace   = "reset"
)

// pingFunc adapts a function to model.Pinger.
type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

// infra holds lazily opened shared clients.
type infra struct {
	cfg *config.Config
	db  *postgres.Connection
	rdb *redis.Client
}

func (i *infra) openPostgres(ctx context.Context) (*postgres.Connection, error) {
	if i.db == nil {
		db, err := postgres.NewConnection(ctx, i.cfg.Database.DSN)
		if err != nil {
			return nil, err
		}
		i.db = db
	}
	return i.db, nil
}

func (i *infra) openRedis(ctx context.Context) (*redis.Client, error) {
	if i.rdb == nil {
		rdb := redis.NewClient(&redis.Options{
			Addr:     i.cfg.Redis.Addr,
			Password: i.cfg.Redis.Password,
			DB:       i.cfg.Redis.DB,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			_ = rdb.Close()
			return nil, fmt.Errorf("failed to reach redis: %w", err)
		}
		i.rdb = rdb
	}
	return i.rdb, nil
}

func (i *infra) close() {
	if i.db != nil {
		_ = i.db.Close()
	}
	if i.rdb != nil {
		_ = i.rdb.Close()
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.NewWithFormat(os.Stdout, cfg.LogLevel, cfg.LogFormat)

	deps := &infra{cfg: cfg}
	defer deps.close()

	checks := make(map[string]model.Pinger)

	users, roles, err := openDirectory(ctx, cfg, deps, checks)
	if err != nil {
		logger.Fatal("failed to initialize directory", "error", err)
	}

	refreshTokens, resetTokens, err := openTokenStores(ctx, cfg, deps, checks)
	if err != nil {
		logger.Fatal("failed to initialize token stores", "error", err)
	}

	notifier, err := openNotifier(ctx, cfg, deps, checks, logger)
	if err != nil {
		logger.Fatal("failed to initialize reset notifier", "error", err)
	}

	m := metrics.New()
	tokenManager := token.NewJWT(cfg.JWT.Secret, cfg.JWT.AccessTTL, token.WithIssuer(cfg.JWT.Issuer))
	secrets := token.RandomSecret{}

	tokenService := service.NewTokenService(tokenManager, refreshTokens, secrets, cfg.Tokens.RefreshTTL, logger)
	authService := service.NewAuth(
		users,
		roles,
		tokenService,
		resetTokens,
		password.NewBcrypt(cfg.Bcrypt.Cost),
		secrets,
		tokenManager,
		service.Policy{ResetTTL: cfg.Tokens.ResetTTL, DefaultRole: cfg.Authz.DefaultRole},
		logger,
		service.WithAuthRecorder(m),
	)
	accessService := service.NewAccess(users, roles, logger, service.WithAccessRecorder(m))

	r := router.New(
		authService,
		accessService,
		tokenService,
		notifier,
		grpcctx.NewManager(),
		cfg.Authz.AdminRole,
		router.Limits{LoginAttempts: cfg.RateLimit.LoginAttempts, LoginWindow: cfg.RateLimit.LoginWindow},
		logger,
		router.WithInterceptors(m.UnaryServerInterceptor()),
	)
	s := r.Register()
	reflection.Register(s)
	grpcSrv := grpcServer.NewGRPCServer(s, fmt.Sprintf(":%s", cfg.GRPC.Port))
	adminSrv := admin.NewServer(cfg.HTTP.Addr, m.Handler(), checks, logger)

	var grpcLayer model.SecurityLayer
	if cfg.GRPC.EnableHTTPS {
		grpcLayer = server.NewTLSListener(cfg.GRPC.CertFileName, cfg.GRPC.PrivateKeyFileName)
	} else {
		grpcLayer = server.NewPlainListener()
	}

	servers := []struct {
		srv   model.Server
		layer model.SecurityLayer
	}{
		{grpcSrv, grpcLayer},
		{adminSrv, server.NewPlainListener()},
	}

	var wg sync.WaitGroup
	for _, s := range servers {
		wg.Add(1)
		go func(s model.Server, sl model.SecurityLayer) {
			defer wg.Done()
			logger.Info("Starting server on", "address", s.Address())
			if err := s.Start(sl); err != nil {
				logger.Error("failed to start server", "error", err, "address", s.Address())
				stop()
			}
		}(s.srv, s.layer)
	}

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	for _, s := range servers {
		if err := s.srv.Stop(shutdownCtx); err != nil {
			logger.Error("error during server shutdown", "error", err, "address", s.srv.Address())
		}
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

func openDirectory(ctx context.Context, cfg *config.Config, deps *infra, checks map[string]model.Pinger) (model.UserStore, model.RoleStore, error) {
	switch cfg.Directory.Backend {
	case config.BackendPostgres:
		db, err := deps.openPostgres(ctx)
		if err != nil {
			return nil, nil, err
		}
		checks["directory"] = db
		return postgres.NewUserRepository(db), postgres.NewRoleRepository(db), nil
	default:
		roles := directory.NewRoleRepository(directory.DefaultRoles()...)
		return directory.NewUserRepository(roles), roles, nil
	}
}

func openTokenStores(ctx context.Context, cfg *config.Config, deps *infra, checks map[string]model.Pinger) (model.TokenStore, model.TokenStore, error) {
	var refresh, reset interface {
		model.TokenStore
		model.Pinger
	}

	switch cfg.Tokens.Backend {
	case config.BackendFile:
		var err error
		if refresh, err = file.NewStore(filepath.Join(cfg.Tokens.FileDir, refreshNamespace)); err != nil {
			return nil, nil, err
		}
		if reset, err = file.NewStore(filepath.Join(cfg.Tokens.FileDir, resetNamespace)); err != nil {
			return nil, nil, err
		}
	case config.BackendRedis:
		rdb, err := deps.openRedis(ctx)
		if err != nil {
			return nil, nil, err
		}
		refresh = redisStore.NewStore(rdb, cfg.Redis.Prefix+":"+refreshNamespace)
		reset = redisStore.NewStore(rdb, cfg.Redis.Prefix+":"+resetNamespace)
	case config.BackendPostgres:
		db, err := deps.openPostgres(ctx)
		if err != nil {
			return nil, nil, err
		}
		refresh = postgres.NewTokenRepository(db, refreshNamespace)
		reset = postgres.NewTokenRepository(db, resetNamespace)
	default:
		refresh = memory.NewStore()
		reset = memory.NewStore()
	}

	checks["refresh_tokens"] = refresh
	checks["reset_tokens"] = reset
	return refresh, reset, nil
}

func openNotifier(ctx context.Context, cfg *config.Config, deps *infra, checks map[string]model.Pinger, logger *logger.Logger) (model.ResetNotifier, error) {
	if cfg.Notify.Backend != config.BackendRedis {
		return notify.NewDiscard(logger), nil
	}

	rdb, err := deps.openRedis(ctx)
	if err != nil {
		return nil, err
	}
	checks["reset_notifier"] = pingFunc(func(ctx context.Context) error {
		return rdb.Ping(ctx).Err()
	})
	return notify.NewStream(rdb, cfg.Notify.Stream, cfg.Notify.MaxLen), nil
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
