package validator

import (
	stderrors "errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/smartproperty-service/internal/pkg/errors"
)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())
	_ = validate.RegisterValidation("latitude_range", func(fl validator.FieldLevel) bool {
		v := fl.Field().Float()
		return v >= -90 && v <= 90
	})
	_ = validate.RegisterValidation("longitude_range", func(fl validator.FieldLevel) bool {
		v := fl.Field().Float()
		return v >= -180 && v <= 180
	})
}

// Validate - валидация структуры.
// Ошибки валидации возвращаются как INVALID_REQUEST с перечнем полей.
func Validate(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !stderrors.As(err, &fieldErrs) {
		return errors.ErrInvalidRequest.WithMessage(err.Error())
	}

	fields := make(map[string]interface{}, len(fieldErrs))
	names := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		fields[fe.Field()] = fe.Tag()
		names = append(names, fe.Field())
	}

	return errors.ErrInvalidRequest.
		WithMessage("Invalid request parameters: " + strings.Join(names, ", ")).
		WithDetails(map[string]interface{}{"fields": fields})
}
