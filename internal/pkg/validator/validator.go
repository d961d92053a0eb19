package validator

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// Report failures under the field's json name, not the Go name.
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.Split(field.Tag.Get("json"), ",")[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// Validate runs struct-tag validation and returns one human-readable
// message per failing field, keyed by the field's json name. nil means
// the value is valid.
func Validate(v interface{}) map[string]string {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	messages := make(map[string]string)
	for _, fieldError := range err.(validator.ValidationErrors) {
		messages[fieldError.Field()] = message(fieldError)
	}
	return messages
}

func message(fieldError validator.FieldError) string {
	switch fieldError.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return "must be at least " + fieldError.Param() + " characters"
	default:
		return "is invalid"
	}
}
