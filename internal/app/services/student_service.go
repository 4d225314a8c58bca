package services

import (
	"context"
	"mime/multipart"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/yigit/devacademy/internal/app/models"
	"github.com/yigit/devacademy/internal/app/models/dto"
	"github.com/yigit/devacademy/internal/pkg/apperrors"
	"github.com/yigit/devacademy/internal/pkg/filestorage"
	"github.com/yigit/devacademy/internal/pkg/helpers"
	"github.com/yigit/devacademy/internal/pkg/validation"
)

// ErrEmptyUpdate is returned when an update request carries no field
var ErrEmptyUpdate = apperrors.NewValidationError("No fields provided for update.")

// StudentService defines the interface for student operations
type StudentService interface {
	GetAllStudents(ctx context.Context) ([]*models.Student, error)
	GetStudentsPage(ctx context.Context, page helpers.Page) ([]*models.Student, error)
	GetStudentByID(ctx context.Context, id int64) (*models.Student, error)
	GetStudentByEmail(ctx context.Context, email string) (*models.Student, error)
	UpdateStudent(ctx context.Context, id int64, req *dto.UpdateStudentRequest, picture *multipart.FileHeader) (*models.Student, error)
	DeactivateStudent(ctx context.Context, id int64) error
	DeleteStudent(ctx context.Context, id int64) error
}

// studentServiceImpl implements the StudentService interface
type studentServiceImpl struct {
	students    StudentStore
	fileStorage filestorage.FileStorage
	logger      zerolog.Logger
}

// NewStudentService creates a new StudentService
func NewStudentService(students StudentStore, fileStorage filestorage.FileStorage, logger zerolog.Logger) StudentService {
	return &studentServiceImpl{
		students:    students,
		fileStorage: fileStorage,
		logger:      logger,
	}
}

// GetAllStudents lists active students; an empty result is reported as not found.
func (s *studentServiceImpl) GetAllStudents(ctx context.Context) ([]*models.Student, error) {
	students, err := s.students.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(students) == 0 {
		return nil, apperrors.ErrNoStudents
	}
	return students, nil
}

func (s *studentServiceImpl) GetStudentsPage(ctx context.Context, page helpers.Page) ([]*models.Student, error) {
	if page.Limit == 0 || page.Limit > helpers.MaxLimit {
		return nil, helpers.ErrInvalidPagination
	}
	students, err := s.students.ListPage(ctx, page)
	if err != nil {
		return nil, err
	}
	if len(students) == 0 {
		return nil, apperrors.ErrNoStudentsInPage
	}
	return students, nil
}

func (s *studentServiceImpl) GetStudentByID(ctx context.Context, id int64) (*models.Student, error) {
	if id <= 0 {
		return nil, apperrors.ErrStudentNotFound
	}
	return s.students.GetByID(ctx, id)
}

func (s *studentServiceImpl) GetStudentByEmail(ctx context.Context, email string) (*models.Student, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, apperrors.NewValidationError("Email is required")
	}
	return s.students.GetByEmail(ctx, email)
}

// UpdateStudent applies the fields present in req and, when given, replaces
// the profile picture. The previous picture is removed only after the row
// points at the new one.
func (s *studentServiceImpl) UpdateStudent(ctx context.Context, id int64, req *dto.UpdateStudentRequest, picture *multipart.FileHeader) (*models.Student, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	patch, err := buildStudentPatch(req)
	if err != nil {
		return nil, err
	}

	staged, err := stageUpload(s.fileStorage, picture, s.logger)
	if err != nil {
		return nil, err
	}
	if staged != "" {
		patch.ProfilePicture = &staged
	}

	if patch.IsEmpty() {
		return nil, ErrEmptyUpdate
	}

	result, err := s.students.Update(ctx, id, patch)
	if err != nil {
		discardUpload(s.fileStorage, staged, s.logger)
		return nil, err
	}

	if staged != "" {
		previous := helpers.StringValue(result.Previous.ProfilePicture)
		if previous != "" && previous != staged {
			discardUpload(s.fileStorage, previous, s.logger)
		}
	}

	s.logger.Info().Int64("studentID", id).Strs("changed", result.Changed).Msg("Student updated")
	return result.Student, nil
}

// buildStudentPatch converts the form into a patch, parsing the numeric fields
func buildStudentPatch(req *dto.UpdateStudentRequest) (models.StudentPatch, error) {
	patch := models.StudentPatch{
		Name:        trimmed(req.Name),
		Surnames:    trimmed(req.Surnames),
		Email:       trimmed(req.Email),
		Nationality: req.Nationality,
		PhoneNumber: req.PhoneNumber,
	}

	if req.Age != nil {
		age, err := strconv.Atoi(strings.TrimSpace(*req.Age))
		if err != nil {
			return patch, ErrInvalidAge
		}
		patch.Age = &age
	}

	if req.Languages != nil {
		languages, ok := helpers.ParseIntList(req.Languages...)
		if !ok {
			return patch, ErrInvalidLanguageList
		}
		patch.Languages = &languages
	}

	return patch, nil
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}

// DeactivateStudent soft-deletes a student; the email becomes free again
func (s *studentServiceImpl) DeactivateStudent(ctx context.Context, id int64) error {
	if err := s.students.Deactivate(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Int64("studentID", id).Msg("Student deactivated")
	return nil
}

// DeleteStudent removes the student row and its profile picture
func (s *studentServiceImpl) DeleteStudent(ctx context.Context, id int64) error {
	picture, err := s.students.Delete(ctx, id)
	if err != nil {
		return err
	}
	discardUpload(s.fileStorage, helpers.StringValue(picture), s.logger)
	s.logger.Info().Int64("studentID", id).Msg("Student deleted")
	return nil
}
