package validate

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/michael0127/starplan-matcher/internal/utils/errs"
)

var v = validator.New(validator.WithRequiredStructEnabled())

// Struct validates a request payload against its `validate` tags.
func Struct(s any) error {
	if err := v.Struct(s); err != nil {
		return fmt.Errorf("%w: %v", errs.ErrValidation, err)
	}

	return nil
}

// TaskID checks the opaque processor correlation token. The processor issues
// UUIDs, so anything else is rejected before we spend a network round trip.
func TaskID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w: task id must be a uuid", errs.ErrValidation)
	}

	return nil
}
