package handlers

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/mrifkiw/contact-management/internal/apierr"
)

func init() {
	// Report violations under the json field names ("first_name"), not the
	// Go struct field names.
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	}
}

// bindingError converts a gin binding failure into the 400 validation
// envelope. Violations are collected per field, one message per broken rule.
func bindingError(err error) *apierr.Error {
	var violations validator.ValidationErrors
	if !errors.As(err, &violations) {
		return apierr.Validation(map[string][]string{"message": {"invalid request body"}})
	}
	fields := make(map[string][]string, len(violations))
	for _, violation := range violations {
		field := violation.Field()
		fields[field] = append(fields[field], fieldMessage(violation))
	}
	return apierr.Validation(fields)
}

func fieldMessage(violation validator.FieldError) string {
	label := strings.ReplaceAll(violation.Field(), "_", " ")
	switch violation.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required.", label)
	case "max":
		return fmt.Sprintf("The %s field must not be greater than %s characters.", label, violation.Param())
	case "email":
		return fmt.Sprintf("The %s field must be a valid email address.", label)
	default:
		return fmt.Sprintf("The %s field is invalid.", label)
	}
}
