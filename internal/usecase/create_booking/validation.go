package create_booking

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"massageshop/internal/domain"
	"massageshop/pkg/types"
)

var validate = validator.New()

// validateRequest прогоняет форматные проверки по тегам validate
func validateRequest(req *Request) error {
	if err := validate.Struct(req); err != nil {
		var errs validator.ValidationErrors
		if errors.As(err, &errs) && len(errs) > 0 {
			fe := errs[0]
			return fmt.Errorf("%w: field %s failed on %s", ErrInvalidInput, fe.Field(), fe.Tag())
		}
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return nil
}

// parseDate разбирает дату бронирования и проверяет, что она не в прошлом
func parseDate(raw string, now time.Time) (time.Time, error) {
	date, err := time.Parse(domain.DateFormat, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: expected format %s", ErrInvalidDate, domain.DateFormat)
	}

	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if date.Before(nowOnly) {
		return time.Time{}, fmt.Errorf("%w: date is in the past", ErrInvalidDate)
	}

	return date, nil
}

// parseStartTime разбирает время начала
func parseStartTime(raw string) (types.TimeString, error) {
	st, err := types.NewTimeStringFromString(raw)
	if err != nil {
		return "", fmt.Errorf("%w: expected format HH:MM", ErrInvalidTime)
	}
	return st, nil
}
