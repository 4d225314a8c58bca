package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/yigit/devacademy/internal/app/models"
	"github.com/yigit/devacademy/internal/app/models/dto"
	"github.com/yigit/devacademy/internal/pkg/apperrors"
)

// ErrInvalidCourseParam is returned for a course id path segment that is not a positive number
var ErrInvalidCourseParam = apperrors.NewValidationError("A valid course ID is required in the URL parameters.")

// EnrollmentService defines the interface for enrollment operations
type EnrollmentService interface {
	Enroll(ctx context.Context, studentID, courseID int64) (*models.Enrollment, error)
	GetStudentCourses(ctx context.Context, studentID int64) ([]*models.EnrolledCourse, error)
	RemoveAllCourses(ctx context.Context, studentID int64) (int64, error)
	RemoveCourse(ctx context.Context, studentID, courseID int64) error
}

// enrollmentServiceImpl implements the EnrollmentService interface
type enrollmentServiceImpl struct {
	enrollments EnrollmentStore
	logger      zerolog.Logger
}

// NewEnrollmentService creates a new EnrollmentService
func NewEnrollmentService(enrollments EnrollmentStore, logger zerolog.Logger) EnrollmentService {
	return &enrollmentServiceImpl{
		enrollments: enrollments,
		logger:      logger,
	}
}

// Enroll adds a course to a student. Enrolling twice is a conflict.
func (s *enrollmentServiceImpl) Enroll(ctx context.Context, studentID, courseID int64) (*models.Enrollment, error) {
	if courseID <= 0 {
		return nil, apperrors.NewValidationError(dto.EnrollCourseIDMessage)
	}

	enrollment, err := s.enrollments.Enroll(ctx, studentID, courseID)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Int64("studentID", studentID).Int64("courseID", courseID).Msg("Student enrolled")
	return enrollment, nil
}

func (s *enrollmentServiceImpl) GetStudentCourses(ctx context.Context, studentID int64) ([]*models.EnrolledCourse, error) {
	return s.enrollments.ListCourses(ctx, studentID)
}

// RemoveAllCourses clears the enrollments of a student and returns how many were removed
func (s *enrollmentServiceImpl) RemoveAllCourses(ctx context.Context, studentID int64) (int64, error) {
	return s.enrollments.RemoveAll(ctx, studentID)
}

// RemoveCourse removes one enrollment. Not being enrolled and an unknown
// course are both not found, with different messages.
func (s *enrollmentServiceImpl) RemoveCourse(ctx context.Context, studentID, courseID int64) error {
	if courseID <= 0 {
		return ErrInvalidCourseParam
	}

	status, err := s.enrollments.Remove(ctx, studentID, courseID)
	if err != nil {
		return err
	}

	switch status {
	case models.RemovalDeleted:
		return nil
	case models.RemovalNotEnrolled:
		return apperrors.ErrNotEnrolled
	case models.RemovalNoCourse:
		return apperrors.NewResourceNotFoundError(fmt.Sprintf("The course with ID %d does not exist.", courseID))
	default:
		return fmt.Errorf("unexpected enrollment removal status %q", status)
	}
}
