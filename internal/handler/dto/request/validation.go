package request

import (
	"errors"
	"reflect"
	"strings"

	"car-rental-api/internal/domain/car"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var errUnexpectedValidator = errors.New("binding validator is not go-playground/validator")

// RegisterValidators adds the custom tags used by request DTOs to gin's validator.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errUnexpectedValidator
	}

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return v.RegisterValidation("carsize", validateCarSize)
}

func validateCarSize(fl validator.FieldLevel) bool {
	return car.Size(fl.Field().String()).IsValid()
}

// ValidationDetails maps each failing field to the rule it broke. Nil for non-validation errors.
func ValidationDetails(err error) map[string]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	details := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		details[fe.Field()] = fe.Tag()
	}
	return details
}
