package engine

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator wraps the validator instance
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a validator that reports fields by their json names
func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return &Validator{validate: v}
}

// ValidateStruct validates a struct using tags
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.validate.Struct(s)
}

// FormatValidationError turns validation errors into one user-facing line
// that names fields without leaking Go struct names
func FormatValidationError(err error) string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err.Error()
	}

	msgs := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		field := e.Field()
		switch e.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf(ValMsgRequired, field))
		case "gt":
			msgs = append(msgs, fmt.Sprintf(ValMsgPositive, field))
		case "min", "max":
			msgs = append(msgs, fmt.Sprintf(ValMsgRange, field))
		case "ltefield":
			msgs = append(msgs, fmt.Sprintf(ValMsgOrder, field, strings.ToLower(e.Param())))
		default:
			msgs = append(msgs, fmt.Sprintf(ValMsgInvalid, field))
		}
	}
	return strings.Join(msgs, "; ")
}
