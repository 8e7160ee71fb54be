package middleware

import (
	"context"
	"testing"

	"buf.build/go/protovalidate"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/proto"

	v1 "github.com/PaulBabatuyi/campusnet-gRPC/proto/campus/v1"
)

func newValidator(t *testing.T) protovalidate.Validator {
	t.Helper()
	v, err := protovalidate.New()
	if err != nil {
		t.Fatalf("protovalidate: %v", err)
	}
	return v
}

func badRequestFields(t *testing.T, err error) map[string]bool {
	t.Helper()
	st, _ := status.FromError(err)
	if st.Code() != codes.InvalidArgument {
		t.Fatalf("expected InvalidArgument, got %v", err)
	}
	fields := map[string]bool{}
	for _, d := range st.Details() {
		if br, ok := d.(*errdetails.BadRequest); ok {
			for _, fv := range br.GetFieldViolations() {
				fields[fv.GetField()] = true
			}
		}
	}
	return fields
}

func TestValidateUnaryInterceptor(t *testing.T) {
	intercept := ValidateUnaryInterceptor(newValidator(t))
	info := &grpc.UnaryServerInfo{FullMethod: v1.CampusService_SignUp_FullMethodName}
	called := false
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		called = true
		return &v1.Empty{}, nil
	}

	bad := &v1.SignUpRequest{
		Email:      "not-an-email",
		Password:   "123",
		FullName:   "Ada",
		Role:       "janitor",
		Department: "history",
	}
	_, err := intercept(context.Background(), bad, info, handler)
	fields := badRequestFields(t, err)
	for _, f := range []string{"email", "password", "role", "department"} {
		if !fields[f] {
			t.Fatalf("expected violation on %s, got %v", f, fields)
		}
	}
	if called {
		t.Fatalf("handler ran for an invalid request")
	}

	good := &v1.SignUpRequest{Email: "ada@campus.edu", Password: "secret1", FullName: "Ada", Role: "student"}
	if _, err := intercept(context.Background(), good, info, handler); err != nil {
		t.Fatalf("valid request rejected: %v", err)
	}
	if !called {
		t.Fatalf("handler not called")
	}
}

func TestValidateIDsAndOptionalFields(t *testing.T) {
	intercept := ValidateUnaryInterceptor(newValidator(t))
	info := &grpc.UnaryServerInfo{FullMethod: v1.CampusService_UpdateProfile_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) { return &v1.Empty{}, nil }

	_, err := intercept(context.Background(), &v1.ConversationRequest{ConversationId: "xyz"}, info, handler)
	if fields := badRequestFields(t, err); !fields["conversation_id"] {
		t.Fatalf("expected conversation_id violation, got %v", fields)
	}

	// unset optional fields are not checked; a cleared department is allowed
	id := "65a1b2c3d4e5f60718293a4b"
	if _, err := intercept(context.Background(), &v1.UpdateProfileRequest{UserId: id}, info, handler); err != nil {
		t.Fatalf("empty update rejected: %v", err)
	}
	if _, err := intercept(context.Background(), &v1.UpdateProfileRequest{UserId: id, Department: proto.String("")}, info, handler); err != nil {
		t.Fatalf("cleared department rejected: %v", err)
	}
	_, err = intercept(context.Background(), &v1.UpdateProfileRequest{UserId: id, Year: proto.String("XX")}, info, handler)
	if fields := badRequestFields(t, err); !fields["year"] {
		t.Fatalf("expected year violation, got %v", fields)
	}

	_, err = intercept(context.Background(), &v1.UpdateEventRequest{EventId: id}, info, handler)
	if fields := badRequestFields(t, err); !fields["event"] {
		t.Fatalf("expected missing event violation, got %v", fields)
	}
}

type recvStream struct {
	grpc.ServerStream
	msg proto.Message
}

func (s *recvStream) Context() context.Context     { return context.Background() }
func (s *recvStream) SetHeader(metadata.MD) error  { return nil }
func (s *recvStream) SendHeader(metadata.MD) error { return nil }
func (s *recvStream) SetTrailer(metadata.MD)       {}
func (s *recvStream) SendMsg(interface{}) error    { return nil }
func (s *recvStream) RecvMsg(m interface{}) error {
	proto.Merge(m.(proto.Message), s.msg)
	return nil
}

func TestValidateStreamInterceptor(t *testing.T) {
	intercept := ValidateStreamInterceptor(newValidator(t))
	info := &grpc.StreamServerInfo{FullMethod: v1.CampusService_OpenConversation_FullMethodName, IsServerStream: true}
	handler := func(srv interface{}, ss grpc.ServerStream) error {
		return ss.RecvMsg(new(v1.ConversationRequest))
	}

	err := intercept(nil, &recvStream{msg: &v1.ConversationRequest{ConversationId: "nope"}}, info, handler)
	if fields := badRequestFields(t, err); !fields["conversation_id"] {
		t.Fatalf("expected conversation_id violation, got %v", fields)
	}
	ok := &recvStream{msg: &v1.ConversationRequest{ConversationId: "65a1b2c3d4e5f60718293a4b"}}
	if err := intercept(nil, ok, info, handler); err != nil {
		t.Fatalf("valid stream request rejected: %v", err)
	}
}
