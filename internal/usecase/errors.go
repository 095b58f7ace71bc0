package usecase

import (
	"context"

	"go-recruitment-tracker/pkg/apperror"
	"go-recruitment-tracker/pkg/logger"
	"go-recruitment-tracker/pkg/validation"
)

const invalidDataMessage = "The given data was invalid."

// internalError logs the cause and returns an Internal error carrying the
// operation message.
func internalError(ctx context.Context, message string, err error) error {
	logger.FromContext(ctx).Error(message, "error", err)
	return apperror.Internalf(message, err)
}

func validationError(errs validation.Errors) error {
	return apperror.Validation(invalidDataMessage, errs)
}
