package middleware

import (
	"context"
	"net"
	"sync"
	"time"

	"golang.org/x/time/rate"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"

	"github.com/dtroode/authkeeper/internal/logger"
)

type bucket struct {
	lim  *rate.Limiter
	seen time.Time
}

// RateLimit throttles selected methods with a token bucket per peer address.
// A successful call refills the caller's bucket.
type RateLimit struct {
	methods map[string]struct{}
	limit   rate.Limit
	burst   int
	idle    time.Duration
	now     func() time.Time
	logger  *logger.Logger

	mu        sync.Mutex
	buckets   map[string]*bucket
	lastPrune time.Time
}

// RateLimitOption configures RateLimit.
type RateLimitOption func(*RateLimit)

// WithRateLimitClock replaces time.Now.
func WithRateLimitClock(now func() time.Time) RateLimitOption {
	return func(r *RateLimit) { r.now = now }
}

// NewRateLimit allows attempts calls per window for every peer calling one
// of methods.
func NewRateLimit(attempts int, window time.Duration, methods []string, logger *logger.Logger, opts ...RateLimitOption) *RateLimit {
	r := &RateLimit{
		methods: make(map[string]struct{}, len(methods)),
		limit:   rate.Every(window / time.Duration(attempts)),
		burst:   attempts,
		idle:    5 * window,
		now:     time.Now,
		logger:  logger,
		buckets: make(map[string]*bucket),
	}
	for _, m := range methods {
		r.methods[m] = struct{}{}
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// HandleGRPC rejects throttled calls with ResourceExhausted.
func (r *RateLimit) HandleGRPC(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	if _, ok := r.methods[info.FullMethod]; !ok {
		return handler(ctx, req)
	}

	key := peerKey(ctx)
	if !r.allow(key) {
		r.logger.Warn("RateLimit middleware: request throttled",
			"method", info.FullMethod,
			"peer", key)
		return nil, status.Error(codes.ResourceExhausted, "too many attempts, try again later")
	}

	resp, err := handler(ctx, req)
	if err == nil {
		r.reset(key)
	}
	return resp, err
}

func (r *RateLimit) allow(key string) bool {
	now := r.now()

	r.mu.Lock()
	defer r.mu.Unlock()

	r.prune(now)

	b, ok := r.buckets[key]
	if !ok {
		b = &bucket{lim: rate.NewLimiter(r.limit, r.burst)}
		r.buckets[key] = b
	}
	b.seen = now
	return b.lim.AllowN(now, 1)
}

func (r *RateLimit) reset(key string) {
	r.mu.Lock()
	delete(r.buckets, key)
	r.mu.Unlock()
}

// prune drops buckets idle for longer than r.idle. Caller holds r.mu.
func (r *RateLimit) prune(now time.Time) {
	if now.Sub(r.lastPrune) < r.idle {
		return
	}
	r.lastPrune = now
	for k, b := range r.buckets {
		if now.Sub(b.seen) > r.idle {
			delete(r.buckets, k)
		}
	}
}

func peerKey(ctx context.Context) string {
	p, ok := peer.FromContext(ctx)
	if !ok || p.Addr == nil {
		return "unknown"
	}
	host, _, err := net.SplitHostPort(p.Addr.String())
	if err != nil {
		return p.Addr.String()
	}
	return host
}
