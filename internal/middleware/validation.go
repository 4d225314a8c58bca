package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/gin-gonic/gin"
	"github.com/yigit/devacademy/internal/pkg/apperrors"
)

// TypeMessages maps a JSON field to the message used when it has the wrong type
type TypeMessages map[string]string

// BindJSON decodes the request body into obj. Malformed bodies and fields of
// the wrong type become validation errors; rule checks are left to the services.
func BindJSON(c *gin.Context, obj interface{}, messages TypeMessages) error {
	if err := c.ShouldBindJSON(obj); err != nil {
		// an empty body is left to the required-field rules
		if errors.Is(err, io.EOF) {
			return nil
		}
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			if msg, ok := messages[typeErr.Field]; ok {
				return apperrors.NewValidationError(msg)
			}
			return apperrors.NewValidationError(fmt.Sprintf("The %s must be a %s", typeErr.Field, typeErr.Type.String()))
		}
		return apperrors.NewValidationError("Invalid request format")
	}
	return nil
}

// BindForm decodes a multipart or urlencoded form into obj
func BindForm(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBind(obj); err != nil {
		return apperrors.NewValidationError("Invalid form data")
	}
	return nil
}
