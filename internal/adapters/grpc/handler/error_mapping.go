package handler

import (
	"context"
	"errors"
	"os"

	"github.com/ogurasousui/codex-org-analyzer/internal/core/employee"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func toStatusError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	case errors.Is(err, employee.ErrReportingCycle),
		errors.Is(err, employee.ErrMalformedRecord),
		errors.Is(err, employee.ErrInvalidID),
		errors.Is(err, employee.ErrInvalidSalary):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, os.ErrNotExist):
		return status.Error(codes.NotFound, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
