package main

import (
	"context"
	"fmt"
	"log"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"buf.build/go/protovalidate"
	"github.com/redis/go-redis/v9"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/PaulBabatuyi/campusnet-gRPC/internal/auth"
	"github.com/PaulBabatuyi/campusnet-gRPC/internal/config"
	"github.com/PaulBabatuyi/campusnet-gRPC/internal/logger"
	"github.com/PaulBabatuyi/campusnet-gRPC/internal/messaging"
	"github.com/PaulBabatuyi/campusnet-gRPC/internal/middleware"
	"github.com/PaulBabatuyi/campusnet-gRPC/internal/realtime"
	"github.com/PaulBabatuyi/campusnet-gRPC/internal/social"
	v1 "github.com/PaulBabatuyi/campusnet-gRPC/proto/campus/v1"
)

func main() {
	// Read configuration from .env files and the environment
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	lg := logger.New(cfg.Debug, logger.RollbarOptions{
		Token:       cfg.RollbarToken,
		Environment: cfg.Env,
	})
	if c, ok := lg.(interface{ Close() }); ok {
		defer c.Close()
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	a, err := newApp(ctx, cfg, lg)
	if err != nil {
		log.Fatalf("failed to start: %v", err)
	}
	defer a.close()

	// Listen and serve
	listenAddr := fmt.Sprintf(":%s", cfg.Port)
	lis, err := net.Listen("tcp", listenAddr)
	if err != nil {
		log.Fatalf("failed to listen: %v", err)
	}

	go func() {
		lg.Info("gRPC server listening", "addr", listenAddr, "storage", cfg.Storage, "env", cfg.Env)
		if err := a.grpc.Serve(lis); err != nil {
			log.Fatalf("gRPC server exit: %v", err)
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	lg.Info("shutting down gRPC server")
	a.health.Shutdown()
	a.grpc.GracefulStop()
}

// app is a fully wired server and the resources it owns.
type app struct {
	grpc    *grpc.Server
	health  *health.Server
	cleanup []func()
}

func (a *app) close() {
	for i := len(a.cleanup) - 1; i >= 0; i-- {
		a.cleanup[i]()
	}
}

// newApp builds storage, the realtime hub, the domain services and the gRPC
// server from cfg. Extra server options are appended after the defaults.
func newApp(ctx context.Context, cfg *config.Config, lg logger.Logger, extra ...grpc.ServerOption) (*app, error) {
	a := &app{}
	ok := false
	defer func() {
		if !ok {
			a.close()
		}
	}()

	// Initialize storage
	var be *backend
	switch cfg.Storage {
	case config.StorageMemory:
		lg.Warn("using in-memory storage; data is lost on restart")
		be = memoryBackend()
	default:
		var err error
		be, err = mongoBackend(ctx, cfg.MongoURI, cfg.MongoDatabase)
		if err != nil {
			return nil, err
		}
	}
	a.cleanup = append(a.cleanup, func() {
		cctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = be.close(cctx)
	})

	// Realtime fan-out. With Redis, inserts travel through pub/sub so every
	// instance delivers them; without it the local hub is the publisher.
	hub := realtime.NewHub(0)
	var pub realtime.Publisher = hub
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPassword})
		if err := rdb.Ping(ctx).Err(); err != nil {
			_ = rdb.Close()
			return nil, fmt.Errorf("failed to ping redis: %w", err)
		}
		relay := realtime.NewRedisRelay(rdb, cfg.RedisChannelPrefix, hub, lg)
		rctx, cancel := context.WithCancel(ctx)
		// serving starts only after the pattern subscription is confirmed
		if err := relay.Start(rctx); err != nil {
			cancel()
			_ = rdb.Close()
			return nil, err
		}
		a.cleanup = append(a.cleanup, func() {
			cancel()
			<-relay.Done()
			_ = rdb.Close()
		})
		pub = relay
	}

	// Token manager. JWT_KEYS enables key rotation, JWT_SECRET is the single
	// key fallback.
	var jwtMgr *auth.JWTManager
	if len(cfg.JWTKeys) > 0 {
		jwtMgr = auth.NewJWTManagerFromKeys(cfg.JWTKeys, cfg.JWTActiveKid, cfg.TokenTTL)
	} else {
		jwtMgr = auth.NewJWTManager(cfg.JWTSecret, cfg.TokenTTL)
	}

	provider := auth.NewProvider(be.auth, jwtMgr, cfg.AdminEmails, lg)
	msgs := messaging.NewService(be.conversations, be.messages, be.profiles, pub, hub, lg)
	soc := social.NewService(be.social, lg)

	// SignUp/SignIn are limited per email (small burst for quick retries),
	// SendMessage per signed-in user.
	authLimiter := middleware.NewLimiterStore(cfg.RateLimitRPM, 3, time.Minute)
	msgLimiter := middleware.NewLimiterStore(cfg.MessageRateLimitRPM, 10, time.Minute)
	a.cleanup = append(a.cleanup, authLimiter.Stop, msgLimiter.Stop)
	rules := map[string]middleware.Rule{
		v1.CampusService_SignUp_FullMethodName:      {Store: authLimiter, Key: middleware.KeyByEmail},
		v1.CampusService_SignIn_FullMethodName:      {Store: authLimiter, Key: middleware.KeyByEmail},
		v1.CampusService_SendMessage_FullMethodName: {Store: msgLimiter, Key: middleware.KeyBySession},
	}

	var serverOpts []grpc.ServerOption

	// If TLS certs are configured, create server credentials and require TLS
	if cfg.TLSCert != "" && cfg.TLSKey != "" {
		creds, err := credentials.NewServerTLSFromFile(cfg.TLSCert, cfg.TLSKey)
		if err != nil {
			return nil, fmt.Errorf("failed to load TLS certs: %w", err)
		}
		serverOpts = append(serverOpts, grpc.Creds(creds))
	}

	// Request shape rules come from the buf.validate annotations in campus.proto.
	validator, err := protovalidate.New()
	if err != nil {
		return nil, fmt.Errorf("failed to build request validator: %w", err)
	}

	// logging -> error mapping -> auth -> rate limit -> validation -> handler
	serverOpts = append(serverOpts,
		grpc.ChainUnaryInterceptor(
			loggingUnaryInterceptor(lg),
			errorUnaryInterceptor(lg),
			authUnaryInterceptor(provider),
			middleware.RateLimitUnaryInterceptor(rules),
			middleware.ValidateUnaryInterceptor(validator),
		),
		grpc.ChainStreamInterceptor(
			loggingStreamInterceptor(lg),
			errorStreamInterceptor(lg),
			authStreamInterceptor(provider),
			middleware.ValidateStreamInterceptor(validator),
		),
	)
	serverOpts = append(serverOpts, extra...)

	a.grpc = grpc.NewServer(serverOpts...)
	registerService(a.grpc, newServer(provider, msgs, soc, lg))

	a.health = health.NewServer()
	healthpb.RegisterHealthServer(a.grpc, a.health)
	a.health.SetServingStatus(v1.CampusService_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_SERVING)
	a.health.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)

	ok = true
	return a, nil
}
