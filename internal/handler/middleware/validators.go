package middleware

import (
	"tutor-booking/internal/domain/booking"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterBookingValidators adds the enum tags used by booking request DTOs.
func RegisterBookingValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	if err := v.RegisterValidation("classsize", func(fl validator.FieldLevel) bool {
		return booking.ClassSize(fl.Field().String()).IsValid()
	}); err != nil {
		return err
	}
	if err := v.RegisterValidation("classduration", func(fl validator.FieldLevel) bool {
		return booking.Duration(fl.Field().String()).IsValid()
	}); err != nil {
		return err
	}
	return v.RegisterValidation("classformat", func(fl validator.FieldLevel) bool {
		return booking.Format(fl.Field().String()).IsValid()
	})
}
