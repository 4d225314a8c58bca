package helpers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yigit/devacademy/internal/pkg/apperrors"
)

const (
	DefaultLimit  = 5
	MaxLimit      = 20
	DefaultOffset = 0
)

// Pagination errors
var (
	ErrInvalidPagination = apperrors.NewValidationError("Invalid limit or offset values.")
	ErrLimitTooLarge     = apperrors.NewValidationError("Limit cannot be greater than 20.")
)

// Page is a validated limit/offset window.
type Page struct {
	Limit  uint64
	Offset uint64
}

// ParseLimitOffset validates raw limit and offset values.
// Empty values fall back to the defaults; limit must be 1..20 and offset >= 0.
func ParseLimitOffset(limitStr, offsetStr string) (Page, error) {
	limit := int64(DefaultLimit)
	offset := int64(DefaultOffset)

	var err error
	if s := strings.TrimSpace(limitStr); s != "" {
		if limit, err = strconv.ParseInt(s, 10, 64); err != nil {
			return Page{}, ErrInvalidPagination
		}
	}
	if s := strings.TrimSpace(offsetStr); s != "" {
		if offset, err = strconv.ParseInt(s, 10, 64); err != nil {
			return Page{}, ErrInvalidPagination
		}
	}

	if limit <= 0 || offset < 0 {
		return Page{}, ErrInvalidPagination
	}
	if limit > MaxLimit {
		return Page{}, ErrLimitTooLarge
	}

	return Page{Limit: uint64(limit), Offset: uint64(offset)}, nil
}

// ParsePaginationParams extracts and validates limit/offset query parameters
func ParsePaginationParams(c *gin.Context) (Page, error) {
	return ParseLimitOffset(c.Query("limit"), c.Query("offset"))
}
