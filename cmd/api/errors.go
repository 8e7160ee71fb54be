package main

import (
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/PaulBabatuyi/campusnet-gRPC/internal/apperr"
)

// toStatus maps service errors onto gRPC status codes. Errors outside the
// apperr taxonomy become Internal with a generic message; the cause is only
// logged.
func toStatus(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}

	var verr *apperr.ValidationError
	switch {
	case errors.As(err, &verr):
		st := status.New(codes.InvalidArgument, verr.Error())
		if len(verr.Fields) == 0 {
			return st.Err()
		}
		br := &errdetails.BadRequest{}
		for _, f := range verr.Fields {
			br.FieldViolations = append(br.FieldViolations, &errdetails.BadRequest_FieldViolation{
				Field:       f.Field,
				Description: f.Error,
			})
		}
		if detailed, derr := st.WithDetails(br); derr == nil {
			st = detailed
		}
		return st.Err()
	case errors.Is(err, apperr.ErrNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, apperr.ErrConflict):
		return status.Error(codes.AlreadyExists, err.Error())
	case errors.Is(err, apperr.ErrForbidden):
		return status.Error(codes.PermissionDenied, err.Error())
	case errors.Is(err, apperr.ErrUnauthenticated):
		return status.Error(codes.Unauthenticated, err.Error())
	}
	return status.Error(codes.Internal, "internal server error")
}

// parseID decodes a hex id from a request field.
func parseID(field, hex string) (bson.ObjectID, error) {
	id, err := bson.ObjectIDFromHex(hex)
	if err != nil {
		return bson.NilObjectID, apperr.NewValidationError("invalid "+field,
			apperr.FieldError{Field: field, Error: "must be a valid id"})
	}
	return id, nil
}
