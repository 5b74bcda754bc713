package serviceimpl

import (
	"github.com/sathvik89/Taskease/domain/apperrors"
	"github.com/sathvik89/Taskease/domain/models"
)

// requireIdentity short-circuits before any data access.
func requireIdentity(identity *models.Identity) error {
	if !identity.Valid() {
		return apperrors.ErrUnauthorized
	}
	return nil
}
