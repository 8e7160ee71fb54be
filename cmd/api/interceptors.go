package main

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/PaulBabatuyi/campusnet-gRPC/internal/auth"
	"github.com/PaulBabatuyi/campusnet-gRPC/internal/logger"
	v1 "github.com/PaulBabatuyi/campusnet-gRPC/proto/campus/v1"
)

// Methods that can be called without a session.
var publicMethods = map[string]bool{
	v1.CampusService_SignUp_FullMethodName: true,
	v1.CampusService_SignIn_FullMethodName: true,
}

// Methods outside the campus service (health checks) skip auth.
func needsSession(fullMethod string) bool {
	if !strings.HasPrefix(fullMethod, "/"+v1.CampusService_ServiceDesc.ServiceName+"/") {
		return false
	}
	return !publicMethods[fullMethod]
}

// bearerToken extracts the token from the authorization metadata.
func bearerToken(ctx context.Context) (string, error) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return "", status.Errorf(codes.Unauthenticated, "missing metadata")
	}
	authHeaders := md.Get("authorization")
	if len(authHeaders) == 0 {
		return "", status.Errorf(codes.Unauthenticated, "missing authorization header")
	}

	token := strings.TrimSpace(strings.TrimPrefix(authHeaders[0], "Bearer"))
	if token == "" {
		return "", status.Errorf(codes.Unauthenticated, "invalid token")
	}
	return token, nil
}

// authenticate resolves the caller's session and attaches it to ctx.
func authenticate(ctx context.Context, p *auth.Provider) (context.Context, error) {
	token, err := bearerToken(ctx)
	if err != nil {
		return nil, err
	}
	sess, err := p.Load(ctx, token)
	if err != nil {
		return nil, err
	}
	return auth.WithSession(ctx, sess), nil
}

// authUnaryInterceptor enforces a live session for every method except
// SignUp and SignIn.
func authUnaryInterceptor(p *auth.Provider) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		if !needsSession(info.FullMethod) {
			return handler(ctx, req)
		}
		ctx, err := authenticate(ctx, p)
		if err != nil {
			return nil, err
		}
		return handler(ctx, req)
	}
}

// authStreamInterceptor is the stream equivalent of authUnaryInterceptor.
func authStreamInterceptor(p *auth.Provider) grpc.StreamServerInterceptor {
	return func(srv interface{}, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		if !needsSession(info.FullMethod) {
			return handler(srv, ss)
		}
		ctx, err := authenticate(ss.Context(), p)
		if err != nil {
			return err
		}
		return handler(srv, grpcmiddlewareServerStream{ServerStream: ss, ctx: ctx})
	}
}

// errorUnaryInterceptor turns service errors into gRPC statuses. Internal
// causes are logged and never sent to the client.
func errorUnaryInterceptor(log logger.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		resp, err := handler(ctx, req)
		if err != nil {
			return nil, mapError(log, info.FullMethod, err)
		}
		return resp, nil
	}
}

func errorStreamInterceptor(log logger.Logger) grpc.StreamServerInterceptor {
	return func(srv interface{}, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		if err := handler(srv, ss); err != nil {
			return mapError(log, info.FullMethod, err)
		}
		return nil
	}
}

func mapError(log logger.Logger, method string, err error) error {
	st := toStatus(err)
	if status.Code(st) == codes.Internal {
		log.Error("request failed", "method", method, "err", err)
	}
	return st
}

// loggingUnaryInterceptor tags each call with a request id and logs its
// outcome.
func loggingUnaryInterceptor(log logger.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		start := time.Now()
		id := uuid.NewString()
		_ = grpc.SetHeader(ctx, metadata.Pairs("x-request-id", id))

		resp, err := handler(ctx, req)
		log.Info("rpc", "request_id", id, "method", info.FullMethod,
			"code", status.Code(err).String(), "duration", time.Since(start))
		return resp, err
	}
}

func loggingStreamInterceptor(log logger.Logger) grpc.StreamServerInterceptor {
	return func(srv interface{}, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		start := time.Now()
		id := uuid.NewString()
		_ = ss.SetHeader(metadata.Pairs("x-request-id", id))
		log.Debug("stream opened", "request_id", id, "method", info.FullMethod)

		err := handler(srv, ss)
		log.Info("stream", "request_id", id, "method", info.FullMethod,
			"code", status.Code(err).String(), "duration", time.Since(start))
		return err
	}
}

// grpcmiddlewareServerStream wraps grpc.ServerStream to override Context()
type grpcmiddlewareServerStream struct {
	grpc.ServerStream
	ctx context.Context
}

// Context returns the wrapped context (with the session)
func (g grpcmiddlewareServerStream) Context() context.Context { return g.ctx }

// sessionFrom returns the session the auth interceptor attached.
func sessionFrom(ctx context.Context) (*auth.Session, error) {
	sess, ok := auth.FromContext(ctx)
	if !ok {
		return nil, status.Errorf(codes.Unauthenticated, "unauthenticated")
	}
	return sess, nil
}
