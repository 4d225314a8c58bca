// Package controllers handles HTTP request handling
package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/devacademy/internal/app/models/dto"
	"github.com/yigit/devacademy/internal/app/services"
	"github.com/yigit/devacademy/internal/middleware"
	"github.com/yigit/devacademy/internal/pkg/apperrors"
	"github.com/yigit/devacademy/internal/pkg/auth"
)

// AuthController handles authentication related operations
type AuthController struct {
	authService services.AuthService
	cookies     auth.CookiePolicy
	baseURL     string
	logger      zerolog.Logger
}

// NewAuthController creates a new AuthController.
// baseURL prefixes profile picture links; when empty the request host is used.
func NewAuthController(authService services.AuthService, cookies auth.CookiePolicy, baseURL string, logger zerolog.Logger) *AuthController {
	return &AuthController{
		authService: authService,
		cookies:     cookies,
		baseURL:     baseURL,
		logger:      logger,
	}
}

// Register handles student registration
// @Summary Register a new student
// @Description Creates a student account. The profile picture is optional and must be a JPG, PNG or WEBP image.
// @Tags auth
// @Accept multipart/form-data
// @Produce json
// @Param name formData string true "Name"
// @Param surnames formData string true "Surnames"
// @Param email formData string true "Email"
// @Param password formData string true "Password (min 6 characters)"
// @Param passwordConfirm formData string true "Password confirmation"
// @Param age formData integer true "Age (18 or older)"
// @Param nationality formData string false "Nationality"
// @Param phone_number formData string false "Phone number"
// @Param languages formData string false "Language ids, e.g. [1,2]"
// @Param profile_picture formData file false "Profile picture"
// @Success 201 {object} dto.APIResponse{data=dto.StudentResponse} "Student registered"
// @Failure 400 {object} dto.ErrorResponse "Missing field, invalid value or email already registered"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /auth/students/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req dto.RegisterRequest
	if err := middleware.BindForm(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	picture, err := optionalFile(ctx, "profile_picture")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	student, err := c.authService.Register(ctx.Request.Context(), &req, picture)
	if err != nil {
		c.logger.Warn().Err(err).Str("email", req.Email).Msg("Registration failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(
		dto.NewStudentResponse(student, publicBaseURL(ctx, c.baseURL)),
		"Student registered successfully",
	))
}

// Login handles student login
// @Summary Student login
// @Description Checks the credentials and stores a session token in the auth_token_<end_token> cookie. The suffix is returned in the end_token header and body.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.APIResponse{data=dto.SessionResponse} "Login successful"
// @Header 200 {string} end_token "Session cookie suffix"
// @Failure 400 {object} dto.ErrorResponse "Email or password missing"
// @Failure 401 {object} dto.ErrorResponse "Wrong password"
// @Failure 404 {object} dto.ErrorResponse "Email not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /auth/students/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := middleware.BindJSON(ctx, &req, nil); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	session, err := c.authService.Login(ctx.Request.Context(), &req)
	if err != nil {
		c.logger.Warn().Err(err).Str("email", req.Email).Msg("Login failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.startSession(ctx, session)
	c.logger.Info().Int64("studentID", session.Student.ID).Msg("Student logged in")

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(c.sessionResponse(ctx, session), "Login successful"))
}

// ChangePassword handles password changes
// @Summary Change password
// @Description Replaces the password of an active student after checking the current one
// @Tags auth
// @Accept json
// @Produce json
// @Param student_id path int true "Student ID"
// @Param request body dto.ChangePasswordRequest true "Current and new password"
// @Success 200 {object} dto.APIResponse "Password updated"
// @Failure 400 {object} dto.ErrorResponse "Missing, unchanged, too short or incorrect password"
// @Failure 404 {object} dto.ErrorResponse "Student not found or inactive"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /auth/students/{student_id} [patch]
func (c *AuthController) ChangePassword(ctx *gin.Context) {
	studentID, err := parseStudentID(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	var req dto.ChangePasswordRequest
	if err := middleware.BindJSON(ctx, &req, nil); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if err := c.authService.ChangePassword(ctx.Request.Context(), studentID, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int64("studentID", studentID).Msg("Password changed")
	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Password updated successfully"))
}

// RefreshToken handles session refresh
// @Summary Refresh session token
// @Description Exchanges the session selected by the end_token header for a new token under a new cookie suffix
// @Tags auth
// @Produce json
// @Param student_id path string true "Student ID"
// @Param end_token header string true "Session cookie suffix"
// @Success 200 {object} dto.APIResponse{data=dto.SessionResponse} "Token refreshed"
// @Failure 400 {object} dto.ErrorResponse "end_token header missing"
// @Failure 401 {object} dto.ErrorResponse "Cookie missing, invalid or expired token"
// @Failure 403 {object} dto.ErrorResponse "Token belongs to another student"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /auth/students/refresh_token/{student_id} [post]
func (c *AuthController) RefreshToken(ctx *gin.Context) {
	_, token, err := middleware.SessionToken(ctx)
	if errors.Is(err, apperrors.ErrMissingSessionIdentifier) {
		middleware.HandleAPIError(ctx, err)
		return
	}

	// a missing cookie leaves token empty and is reported by the service
	session, err := c.authService.Refresh(ctx.Request.Context(), token, ctx.Param("student_id"))
	if err != nil {
		c.logger.Warn().Err(err).Str("studentID", ctx.Param("student_id")).Msg("Token refresh failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.startSession(ctx, session)
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(c.sessionResponse(ctx, session), "Token refreshed successfully"))
}

// Logout handles session logout
// @Summary Logout
// @Description Expires the session cookie selected by the end_token header
// @Tags auth
// @Produce json
// @Param end_token header string true "Session cookie suffix"
// @Success 200 {object} dto.APIResponse "Logged out"
// @Failure 400 {object} dto.ErrorResponse "end_token header missing"
// @Router /auth/students/logout [post]
func (c *AuthController) Logout(ctx *gin.Context) {
	suffix, _, err := middleware.SessionToken(ctx)
	if errors.Is(err, apperrors.ErrMissingSessionIdentifier) {
		middleware.HandleAPIError(ctx, err)
		return
	}

	http.SetCookie(ctx.Writer, c.cookies.ExpiredCookie(suffix))
	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Logged out successfully"))
}

func (c *AuthController) startSession(ctx *gin.Context, session *services.Session) {
	http.SetCookie(ctx.Writer, c.cookies.SessionCookie(session.Suffix, session.Token, time.Now()))
	ctx.Header(auth.SessionHeader, session.Suffix)
}

func (c *AuthController) sessionResponse(ctx *gin.Context, session *services.Session) *dto.SessionResponse {
	return &dto.SessionResponse{
		Student:    dto.NewStudentResponse(session.Student, publicBaseURL(ctx, c.baseURL)),
		EndToken:   session.Suffix,
		CookieName: auth.CookieName(session.Suffix),
		ExpiresIn:  int64(session.ExpiresIn / time.Second),
	}
}
