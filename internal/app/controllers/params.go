package controllers

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yigit/devacademy/internal/pkg/apperrors"
)

// parseIDParam reads a positive numeric route parameter
func parseIDParam(ctx *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.NewValidationError(fmt.Sprintf("Invalid %s", strings.ReplaceAll(name, "_", " ")))
	}
	return id, nil
}

func parseStudentID(ctx *gin.Context) (int64, error) {
	return parseIDParam(ctx, "student_id")
}

// optionalFile returns the uploaded file of field, or nil when none was sent
func optionalFile(ctx *gin.Context, field string) (*multipart.FileHeader, error) {
	file, err := ctx.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, apperrors.NewValidationError("Invalid form data")
	}
	return file, nil
}

// publicBaseURL is the configured public URL, or scheme://host of the request
func publicBaseURL(ctx *gin.Context, configured string) string {
	if configured != "" {
		return strings.TrimRight(configured, "/")
	}

	scheme := "http"
	if ctx.Request.TLS != nil || ctx.GetHeader("X-Forwarded-Proto") == "https" {
		scheme = "https"
	}
	return scheme + "://" + ctx.Request.Host
}
