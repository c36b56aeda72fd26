package router

import (
	"context"
	"time"

	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/auth"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/selector"
	"google.golang.org/grpc"

	"github.com/dtroode/authkeeper/internal/api/grpc/authapi"
	"github.com/dtroode/authkeeper/internal/api/grpc/handler"
	"github.com/dtroode/authkeeper/internal/api/grpc/middleware"
	"github.com/dtroode/authkeeper/internal/logger"
	"github.com/dtroode/authkeeper/internal/model"
)

// Limits configures login throttling.
type Limits struct {
	LoginAttempts int
	LoginWindow   time.Duration
}

// Router represents a gRPC router for the credential lifecycle services.
// It manages gRPC service registration and middleware configuration.
type Router struct {
	authService    handler.AuthService
	accessService  handler.AccessService
	tokenService   middleware.TokenService
	notifier       model.ResetNotifier
	contextManager model.ContextManager
	adminRole      string
	limits         Limits
	interceptors   []grpc.UnaryServerInterceptor
	logger         *logger.Logger
}

// Option configures Router.
type Option func(*Router)

// WithInterceptors appends unary interceptors that run after logging and
// before rate limiting and authentication.
func WithInterceptors(i ...grpc.UnaryServerInterceptor) Option {
	return func(r *Router) { r.interceptors = append(r.interceptors, i...) }
}

// New creates new gRPC Router instance.
func New(
	authService handler.AuthService,
	accessService handler.AccessService,
	tokenService middleware.TokenService,
	notifier model.ResetNotifier,
	contextManager model.ContextManager,
	adminRole string,
	limits Limits,
	logger *logger.Logger,
	opts ...Option,
) *Router {
	r := &Router{
		authService:    authService,
		accessService:  accessService,
		tokenService:   tokenService,
		notifier:       notifier,
		contextManager: contextManager,
		adminRole:      adminRole,
		limits:         limits,
		logger:         logger,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// publicMethods can be called without an access token.
var publicMethods = map[string]struct{}{
	authapi.Auth_Register_FullMethodName:              {},
	authapi.Auth_Login_FullMethodName:                 {},
	authapi.Auth_InitiatePasswordReset_FullMethodName: {},
	authapi.Auth_CompletePasswordReset_FullMethodName: {},
}

func authSkip(_ context.Context, c interceptors.CallMeta) bool {
	_, public := publicMethods[c.FullMethod()]
	return !public
}

// Register registers all gRPC services and middleware.
//
// Returns the configured gRPC server instance.
func (r *Router) Register() *grpc.Server {
	logging := middleware.NewLogging(r.logger)
	authenticate := middleware.NewAuthenticate(r.tokenService, r.contextManager, r.logger)
	rateLimit := middleware.NewRateLimit(
		r.limits.LoginAttempts,
		r.limits.LoginWindow,
		[]string{authapi.Auth_Login_FullMethodName},
		r.logger,
	)

	chain := []grpc.UnaryServerInterceptor{logging.HandleGRPC}
	chain = append(chain, r.interceptors...)
	chain = append(chain,
		rateLimit.HandleGRPC,
		selector.UnaryServerInterceptor(
			auth.UnaryServerInterceptor(authenticate.AuthFunc),
			selector.MatchFunc(authSkip),
		),
	)

	s := grpc.NewServer(grpc.ChainUnaryInterceptor(chain...))
	r.registerAuthRoutes(s)
	r.registerAccessRoutes(s)

	return s
}

func (r *Router) registerAuthRoutes(server *grpc.Server) {
	authHandler := handler.NewAuth(r.authService, r.notifier, r.contextManager, r.logger)
	authapi.RegisterAuthServer(server, authHandler)
}

func (r *Router) registerAccessRoutes(server *grpc.Server) {
	accessHandler := handler.NewAccess(r.accessService, r.contextManager, r.adminRole, r.logger)
	authapi.RegisterAccessServer(server, accessHandler)
}
