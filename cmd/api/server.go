package main

import (
	"google.golang.org/grpc"

	"github.com/PaulBabatuyi/campusnet-gRPC/internal/auth"
	"github.com/PaulBabatuyi/campusnet-gRPC/internal/logger"
	"github.com/PaulBabatuyi/campusnet-gRPC/internal/messaging"
	"github.com/PaulBabatuyi/campusnet-gRPC/internal/social"
	v1 "github.com/PaulBabatuyi/campusnet-gRPC/proto/campus/v1"
)

// Server implements campus.v1.CampusService on top of the domain services.
type Server struct {
	v1.UnimplementedCampusServiceServer
	auth   *auth.Provider
	msgs   *messaging.Service
	social *social.Service
	log    logger.Logger
}

// newServer returns a ready-to-use Server wired with the domain services.
func newServer(authp *auth.Provider, msgs *messaging.Service, soc *social.Service, log logger.Logger) *Server {
	return &Server{auth: authp, msgs: msgs, social: soc, log: log}
}

// registerService registers the CampusService on the given gRPC server.
func registerService(s *grpc.Server, srv *Server) {
	v1.RegisterCampusServiceServer(s, srv)
}
