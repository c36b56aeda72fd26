package handler

import (
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dtroode/authkeeper/internal/model"
)

// handleError maps domain errors to gRPC statuses. Authentication failures
// keep their generic sentinel message.
func handleError(err error) error {
	var verr *model.ValidationError
	switch {
	case errors.As(err, &verr):
		return status.Error(codes.InvalidArgument, verr.Error())
	case errors.Is(err, model.ErrInvalidCredentials):
		return status.Error(codes.Unauthenticated, model.ErrInvalidCredentials.Error())
	case errors.Is(err, model.ErrInvalidRefreshToken):
		return status.Error(codes.Unauthenticated, model.ErrInvalidRefreshToken.Error())
	case errors.Is(err, model.ErrInvalidOrExpiredToken):
		return status.Error(codes.Unauthenticated, model.ErrInvalidOrExpiredToken.Error())
	case errors.Is(err, model.ErrInvalidAccessToken):
		return status.Error(codes.Unauthenticated, model.ErrInvalidAccessToken.Error())
	case errors.Is(err, model.ErrUserNotFound):
		return status.Error(codes.NotFound, model.ErrUserNotFound.Error())
	case errors.Is(err, model.ErrRoleNotFound):
		return status.Error(codes.NotFound, model.ErrRoleNotFound.Error())
	case errors.Is(err, model.ErrPermissionDenied):
		return status.Error(codes.PermissionDenied, model.ErrPermissionDenied.Error())
	case errors.Is(err, model.ErrStorageUnavailable):
		return status.Error(codes.Unavailable, "service temporarily unavailable")
	default:
		return status.Error(codes.Internal, "internal server error")
	}
}
