package services

import (
	"context"

	"github.com/yigit/devacademy/internal/app/models"
	"github.com/yigit/devacademy/internal/app/models/dto"
	"github.com/yigit/devacademy/internal/pkg/apperrors"
	"github.com/yigit/devacademy/internal/pkg/validation"
)

var ErrCoursePriceRequired = apperrors.NewValidationError("The price value is required")

// CourseService defines the interface for course operations
type CourseService interface {
	CreateCourse(ctx context.Context, req *dto.CreateCourseRequest) (*models.Course, error)
	GetAllCourses(ctx context.Context) ([]*models.Course, error)
	GetCourseByID(ctx context.Context, id int64) (*models.Course, error)
}

// courseServiceImpl implements the CourseService interface
type courseServiceImpl struct {
	courses CourseStore
}

// NewCourseService creates a new CourseService
func NewCourseService(courses CourseStore) CourseService {
	return &courseServiceImpl{courses: courses}
}

// CreateCourse validates the request and stores the course.
// Title and description are stripped of markup.
func (s *courseServiceImpl) CreateCourse(ctx context.Context, req *dto.CreateCourseRequest) (*models.Course, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	// zero counts as a missing price
	if *req.Price == 0 {
		return nil, ErrCoursePriceRequired
	}

	title := sanitizeText(req.Title)
	if title == "" {
		return nil, apperrors.NewValidationError("The title value is required")
	}

	course := &models.Course{
		Title:      title,
		Difficulty: models.Difficulty(req.Difficulty),
		Price:      *req.Price,
		LanguageID: *req.LanguageID,
	}
	if req.Description != nil {
		if description := sanitizeText(*req.Description); description != "" {
			course.Description = &description
		}
	}

	if err := s.courses.Create(ctx, course); err != nil {
		return nil, err
	}
	return course, nil
}

func (s *courseServiceImpl) GetAllCourses(ctx context.Context) ([]*models.Course, error) {
	return s.courses.List(ctx)
}

func (s *courseServiceImpl) GetCourseByID(ctx context.Context, id int64) (*models.Course, error) {
	if id <= 0 {
		return nil, apperrors.ErrCourseNotFound
	}
	return s.courses.GetByID(ctx, id)
}
