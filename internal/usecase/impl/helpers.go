// Package impl contains the application-specific business rules implementations.
package impl

import (
	domainerrors "adminpanel/internal/domain/errors"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// parseID turns a path or flag value into an ObjectID before anything is
// sent to the API.
func parseID(hex string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil || id.IsZero() {
		return primitive.NilObjectID, errors.Wrapf(domainerrors.ErrInvalidID, "id %q", hex)
	}

	return id, nil
}

// mergeValidation folds extra field failures into err, which may be nil or
// a *ValidationError. Any other error is returned unchanged.
func mergeValidation(err error, extra *domainerrors.ValidationError) error {
	if err == nil {
		return extra.OrNil()
	}

	var validationErr *domainerrors.ValidationError
	if !errors.As(err, &validationErr) {
		return err
	}
	if extra != nil {
		for field, msg := range extra.Fields {
			validationErr.Add(field, msg)
		}
	}

	return validationErr
}
