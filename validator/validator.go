package validator

import (
	"time"

	"github.com/GivenCloud/Hotel-Manager/constants"
	"github.com/GivenCloud/Hotel-Manager/errors"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateBookingBatch checks the shape of a batch request before it reaches
// the admission engine: a non-empty id list, both dates present in ISO form,
// and check-out strictly after check-in. The engine itself only applies
// business rules.
func ValidateBookingBatch(ids []uint, checkInDate, checkOutDate string) error {
	if len(ids) == 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField, "id list must not be empty", errors.ErrInvalidInput)
	}

	if err := validate.Var(checkInDate, "required,datetime=2006-01-02"); err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "checkInDate must be a YYYY-MM-DD date", err)
	}
	if err := validate.Var(checkOutDate, "required,datetime=2006-01-02"); err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "checkOutDate must be a YYYY-MM-DD date", err)
	}

	checkIn, err := time.Parse(constants.DateLayout, checkInDate)
	if err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "invalid checkInDate", err)
	}
	checkOut, err := time.Parse(constants.DateLayout, checkOutDate)
	if err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "invalid checkOutDate", err)
	}

	if !checkOut.After(checkIn) {
		return errors.NewAppError(errors.ErrCodeValidation, "checkOutDate must be after checkInDate", nil)
	}

	return nil
}

// ValidateIDList checks a plain id batch (service associations carry no dates)
func ValidateIDList(ids []uint) error {
	if len(ids) == 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField, "id list must not be empty", errors.ErrInvalidInput)
	}
	return nil
}
