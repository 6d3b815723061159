package service

import (
	"errors"

	apperrors "path-of-sharing/internal/common/errors"
	"path-of-sharing/internal/features/giveaway/repository"
)

// giveawayError converts a repository error for giveaway id into an AppError.
func giveawayError(err error, id, operation string) error {
	if errors.Is(err, repository.ErrGiveawayNotFound) {
		return apperrors.NewGiveawayNotFoundError(id)
	}
	if _, ok := apperrors.AsAppError(err); ok {
		return err
	}
	return apperrors.NewDatabaseError(operation, err).WithContext("giveaway_id", id)
}
