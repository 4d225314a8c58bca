package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/yigit/devacademy/internal/pkg/apperrors"
)

// Validation rule values
var (
	// MinPasswordLength applies to registration and password change
	MinPasswordLength = 6

	// MaxNameLength bounds language names and course titles
	MaxNameLength = 255

	// Difficulties lists the accepted course difficulty values, in order
	Difficulties = []string{"Beginner", "Easy", "Intermediate", "Advanced", "Expert"}

	// DifficultyMessage is returned when a course difficulty is not one of Difficulties
	DifficultyMessage = "Invalid difficulty value. It must be one of: " + strings.Join(Difficulties, ", ")
)

var validate = newValidator()

// Messages lets a request type override the message of a failed rule.
// Keys are "<field>.<tag>" (field as named in json/form) or just "<tag>";
// a %s verb in the message receives the field name.
type Messages interface {
	ValidationMessages() map[string]string
}

func newValidator() *validator.Validate {
	v := validator.New()

	// report fields by their wire name
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "form"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return fld.Name
	})

	_ = v.RegisterValidation("difficulty", func(fl validator.FieldLevel) bool {
		return IsDifficulty(fl.Field().String())
	})

	return v
}

// IsDifficulty reports whether value is an accepted course difficulty.
func IsDifficulty(value string) bool {
	for _, d := range Difficulties {
		if d == value {
			return true
		}
	}
	return false
}

// Struct validates obj and returns a validation error describing the first
// failed field, or nil.
func Struct(obj interface{}) error {
	err := validate.Struct(obj)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) || len(fieldErrors) == 0 {
		return apperrors.NewValidationError(err.Error())
	}

	var overrides map[string]string
	if m, ok := obj.(Messages); ok {
		overrides = m.ValidationMessages()
	}

	details := make(map[string]interface{}, len(fieldErrors))
	for _, fe := range fieldErrors {
		details[fe.Field()] = fe.Tag()
	}

	return apperrors.NewCustomError(apperrors.ErrValidationFailed, FormatFieldError(fieldErrors[0], overrides)).WithDetails(details)
}

// FormatFieldError creates a human-readable message for a failed rule
func FormatFieldError(e validator.FieldError, overrides map[string]string) string {
	for _, key := range []string{e.Field() + "." + e.Tag(), e.Tag()} {
		if msg, ok := overrides[key]; ok {
			if strings.Contains(msg, "%s") {
				return fmt.Sprintf(msg, e.Field())
			}
			return msg
		}
	}

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("Error: The field '%s' is required.", e.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters long", e.Field(), e.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters long", e.Field(), e.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", e.Field(), e.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", e.Field(), e.Param())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", e.Field())
	case "difficulty":
		return DifficultyMessage
	default:
		return fmt.Sprintf("%s validation failed: %s", e.Field(), e.Tag())
	}
}
