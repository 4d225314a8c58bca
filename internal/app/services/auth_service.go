package services

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"github.com/yigit/devacademy/internal/app/models"
	"github.com/yigit/devacademy/internal/app/models/dto"
	"github.com/yigit/devacademy/internal/pkg/apperrors"
	"github.com/yigit/devacademy/internal/pkg/auth"
	"github.com/yigit/devacademy/internal/pkg/filestorage"
	"github.com/yigit/devacademy/internal/pkg/helpers"
	"github.com/yigit/devacademy/internal/pkg/validation"
)

// ProfilePictureDir is the upload sub directory of profile pictures
const ProfilePictureDir = "profile_pictures"

// Auth errors with the messages clients rely on
var (
	ErrPasswordMismatch    = apperrors.NewValidationError("Password and confirm password do not match")
	ErrPasswordTooShort    = apperrors.NewValidationError(fmt.Sprintf("Password should be at least %d characters long", validation.MinPasswordLength))
	ErrPasswordUnchanged   = apperrors.NewValidationError("New password should be different than old password.")
	ErrIncorrectPassword   = apperrors.NewValidationError("Incorrect old password.")
	ErrInvalidAge          = apperrors.NewValidationError("The age must be a number.")
	ErrInvalidLanguageList = apperrors.NewValidationError("Languages must be a list of language ids.")
	ErrEmailNotFound       = apperrors.NewResourceNotFoundError("Email not found")
	ErrWrongCredentials    = apperrors.NewCustomError(apperrors.ErrInvalidCredentials, "Password or email invalid")
	ErrInactiveStudent     = apperrors.NewResourceNotFoundError("Student not found or is inactive.")
	ErrSessionInvalid      = apperrors.NewCustomError(apperrors.ErrTokenInvalid, "Authentication failed: Invalid or expired token.")
)

// Session is a freshly issued token and the cookie suffix it is stored under
type Session struct {
	Student   *models.Student // Nil on refresh
	Token     string
	Suffix    string
	ExpiresIn time.Duration
}

// AuthService defines the interface for authentication operations
type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest, picture *multipart.FileHeader) (*models.Student, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*Session, error)
	ChangePassword(ctx context.Context, studentID int64, req *dto.ChangePasswordRequest) error
	Refresh(ctx context.Context, token string, studentID string) (*Session, error)
}

// authServiceImpl implements the AuthService interface
type authServiceImpl struct {
	students    StudentStore
	tokens      TokenService
	fileStorage filestorage.FileStorage
	logger      zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	students StudentStore,
	tokens TokenService,
	fileStorage filestorage.FileStorage,
	logger zerolog.Logger,
) AuthService {
	return &authServiceImpl{
		students:    students,
		tokens:      tokens,
		fileStorage: fileStorage,
		logger:      logger,
	}
}

// Register validates the form, stores the optional picture and creates the
// student. The picture is removed again when the student cannot be stored.
func (s *authServiceImpl) Register(ctx context.Context, req *dto.RegisterRequest, picture *multipart.FileHeader) (*models.Student, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}
	if req.Password != req.PasswordConfirm {
		return nil, ErrPasswordMismatch
	}
	if utf8.RuneCountInString(req.Password) < validation.MinPasswordLength {
		return nil, ErrPasswordTooShort
	}

	age, err := strconv.Atoi(strings.TrimSpace(req.Age))
	if err != nil {
		return nil, ErrInvalidAge
	}
	languages, ok := helpers.ParseIntList(req.Languages...)
	if !ok {
		return nil, ErrInvalidLanguageList
	}

	digest, err := auth.HashPassword(req.Password)
	if err != nil {
		s.logger.Error().Err(err).Msg("Error hashing password")
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	student := &models.Student{
		Name:        strings.TrimSpace(req.Name),
		Surnames:    strings.TrimSpace(req.Surnames),
		Email:       strings.TrimSpace(req.Email),
		Password:    digest,
		Age:         age,
		Nationality: helpers.NullIfEmpty(req.Nationality),
		PhoneNumber: helpers.NullIfEmpty(req.PhoneNumber),
		Languages:   languages,
	}

	staged, err := stageUpload(s.fileStorage, picture, s.logger)
	if err != nil {
		return nil, err
	}
	if staged != "" {
		student.ProfilePicture = &staged
	}

	if err := s.students.Create(ctx, student); err != nil {
		discardUpload(s.fileStorage, staged, s.logger)
		return nil, err
	}

	s.logger.Info().Int64("studentID", student.ID).Msg("Student registered")
	return student, nil
}

// Login checks the credentials of an active student and issues a session
func (s *authServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*Session, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	student, err := s.students.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return nil, ErrEmailNotFound
		}
		return nil, err
	}

	if !auth.CheckPassword(student.Password, req.Password) {
		return nil, ErrWrongCredentials
	}

	session, err := s.issue(studentClaims(student))
	if err != nil {
		return nil, err
	}
	session.Student = student
	return session, nil
}

// ChangePassword replaces the password of an active student after checking the old one
func (s *authServiceImpl) ChangePassword(ctx context.Context, studentID int64, req *dto.ChangePasswordRequest) error {
	if err := validation.Struct(req); err != nil {
		return err
	}
	if req.Password == req.NewPassword {
		return ErrPasswordUnchanged
	}
	if utf8.RuneCountInString(req.NewPassword) < validation.MinPasswordLength {
		return ErrPasswordTooShort
	}

	student, err := s.students.GetByID(ctx, studentID)
	if err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return ErrInactiveStudent
		}
		return err
	}

	if !auth.CheckPassword(student.Password, req.Password) {
		return ErrIncorrectPassword
	}

	digest, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return fmt.Errorf("error hashing password: %w", err)
	}

	if err := s.students.UpdatePassword(ctx, studentID, digest); err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return ErrInactiveStudent
		}
		return err
	}
	return nil
}

// Refresh exchanges a valid token of studentID for a new one under a new suffix
func (s *authServiceImpl) Refresh(_ context.Context, token string, studentID string) (*Session, error) {
	if token == "" {
		return nil, apperrors.NewCustomError(apperrors.ErrTokenNotFound, "Authentication failed: No token provided.")
	}

	refreshed, _, err := s.tokens.Refresh(token, studentID)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidToken) {
			return nil, ErrSessionInvalid
		}
		return nil, err
	}

	suffix, err := auth.NewSessionSuffix()
	if err != nil {
		return nil, err
	}
	return &Session{Token: refreshed, Suffix: suffix, ExpiresIn: s.tokens.TokenTTL()}, nil
}

func (s *authServiceImpl) issue(claims auth.Claims) (*Session, error) {
	ttl := s.tokens.TokenTTL()
	token, err := s.tokens.Issue(claims, ttl)
	if err != nil {
		return nil, err
	}

	suffix, err := auth.NewSessionSuffix()
	if err != nil {
		return nil, err
	}
	return &Session{Token: token, Suffix: suffix, ExpiresIn: ttl}, nil
}

// studentClaims is the token payload of a student: the account without its password
func studentClaims(student *models.Student) auth.Claims {
	return auth.Claims{
		auth.IdentityClaim: student.ID,
		"name":             student.Name,
		"surnames":         student.Surnames,
		"email":            student.Email,
		"profile_picture":  student.ProfilePicture,
		"languages":        student.Languages,
		"nationality":      student.Nationality,
		"phone_number":     student.PhoneNumber,
		"is_active":        student.IsActive,
	}
}

// stageUpload saves an optional profile picture and returns its relative path
func stageUpload(storage filestorage.FileStorage, picture *multipart.FileHeader, lgr zerolog.Logger) (string, error) {
	if picture == nil || storage == nil {
		return "", nil
	}
	info, err := storage.SaveImage(picture, ProfilePictureDir)
	if err != nil {
		lgr.Warn().Err(err).Str("filename", picture.Filename).Msg("Profile picture rejected")
		return "", err
	}
	if info == nil {
		return "", nil
	}
	return info.Path, nil
}

// discardUpload removes a staged file; failures are only logged
func discardUpload(storage filestorage.FileStorage, path string, lgr zerolog.Logger) {
	if path == "" || storage == nil {
		return
	}
	if err := storage.DeleteFile(path); err != nil {
		lgr.Error().Err(err).Str("path", path).Msg("Failed to remove uploaded file")
	}
}
