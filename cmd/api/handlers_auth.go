package main

import (
	"context"

	"github.com/PaulBabatuyi/campusnet-gRPC/internal/auth"
	v1 "github.com/PaulBabatuyi/campusnet-gRPC/proto/campus/v1"
)

// SignUp creates an account with its profile and role and signs it in.
func (s *Server) SignUp(ctx context.Context, req *v1.SignUpRequest) (*v1.AuthResponse, error) {
	sess, err := s.auth.SignUp(ctx, auth.SignUpInput{
		Email:      req.GetEmail(),
		Password:   req.GetPassword(),
		FullName:   req.GetFullName(),
		Role:       req.GetRole(),
		Department: req.GetDepartment(),
		Year:       req.GetYear(),
		Subject:    req.GetSubject(),
	})
	if err != nil {
		return nil, err
	}
	s.log.Info("account created", "user_id", sess.UserID.Hex(), "role", req.GetRole())
	return toAuthResponse(sess, true), nil
}

// SignIn verifies the password and returns a fresh session token.
func (s *Server) SignIn(ctx context.Context, req *v1.SignInRequest) (*v1.AuthResponse, error) {
	sess, err := s.auth.SignIn(ctx, req.GetEmail(), req.GetPassword())
	if err != nil {
		return nil, err
	}
	return toAuthResponse(sess, true), nil
}

func (s *Server) SignOut(ctx context.Context, _ *v1.Empty) (*v1.Empty, error) {
	sess, err := sessionFrom(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.auth.SignOut(ctx, sess); err != nil {
		return nil, err
	}
	return &v1.Empty{}, nil
}

// Me returns the caller's session without its token.
func (s *Server) Me(ctx context.Context, _ *v1.Empty) (*v1.AuthResponse, error) {
	sess, err := sessionFrom(ctx)
	if err != nil {
		return nil, err
	}
	return toAuthResponse(sess, false), nil
}
