package controllers

import (
	"context"
	"mime/multipart"

	"github.com/yigit/devacademy/internal/app/models"
	"github.com/yigit/devacademy/internal/app/models/dto"
	"github.com/yigit/devacademy/internal/app/services"
	"github.com/yigit/devacademy/internal/pkg/apperrors"
	"github.com/yigit/devacademy/internal/pkg/helpers"
)

type fakeAuthService struct {
	session      *services.Session
	err          error
	registered   *dto.RegisterRequest
	picture      *multipart.FileHeader
	refreshToken string
	refreshID    string
}

func (f *fakeAuthService) Register(_ context.Context, req *dto.RegisterRequest, picture *multipart.FileHeader) (*models.Student, error) {
	f.registered, f.picture = req, picture
	if f.err != nil {
		return nil, f.err
	}
	return &models.Student{ID: 1, Name: req.Name, Email: req.Email, IsActive: true}, nil
}

func (f *fakeAuthService) Login(context.Context, *dto.LoginRequest) (*services.Session, error) {
	return f.session, f.err
}

func (f *fakeAuthService) ChangePassword(context.Context, int64, *dto.ChangePasswordRequest) error {
	return f.err
}

func (f *fakeAuthService) Refresh(_ context.Context, token string, studentID string) (*services.Session, error) {
	f.refreshToken, f.refreshID = token, studentID
	if token == "" {
		return nil, apperrors.NewCustomError(apperrors.ErrTokenNotFound, "Authentication failed: No token provided.")
	}
	return f.session, f.err
}

type fakeStudentService struct {
	students []*models.Student
	page     helpers.Page
	err      error
}

func (f *fakeStudentService) GetAllStudents(context.Context) ([]*models.Student, error) {
	return f.students, f.err
}

func (f *fakeStudentService) GetStudentsPage(_ context.Context, page helpers.Page) ([]*models.Student, error) {
	f.page = page
	return f.students, f.err
}

func (f *fakeStudentService) GetStudentByID(_ context.Context, id int64) (*models.Student, error) {
	for _, s := range f.students {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, apperrors.ErrStudentNotFound
}

func (f *fakeStudentService) GetStudentByEmail(_ context.Context, email string) (*models.Student, error) {
	for _, s := range f.students {
		if s.Email == email {
			return s, nil
		}
	}
	return nil, apperrors.ErrStudentNotFound
}

func (f *fakeStudentService) UpdateStudent(_ context.Context, id int64, req *dto.UpdateStudentRequest, _ *multipart.FileHeader) (*models.Student, error) {
	student, err := f.GetStudentByID(context.Background(), id)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		student.Name = *req.Name
	}
	return student, nil
}

func (f *fakeStudentService) DeactivateStudent(context.Context, int64) error { return f.err }

func (f *fakeStudentService) DeleteStudent(context.Context, int64) error { return f.err }

type fakeLanguageService struct {
	languages []*models.Language
	err       error
}

func (f *fakeLanguageService) CreateLanguage(_ context.Context, req *dto.LanguageRequest) (*models.Language, error) {
	if f.err != nil {
		return nil, f.err
	}
	language := &models.Language{ID: int64(len(f.languages) + 1), Name: req.Name}
	f.languages = append(f.languages, language)
	return language, nil
}

func (f *fakeLanguageService) GetAllLanguages(context.Context) ([]*models.Language, error) {
	if f.languages == nil {
		return []*models.Language{}, nil
	}
	return f.languages, nil
}

func (f *fakeLanguageService) GetLanguageByID(_ context.Context, id int64) (*models.Language, error) {
	for _, l := range f.languages {
		if l.ID == id {
			return l, nil
		}
	}
	return nil, apperrors.ErrLanguageNotFound
}

func (f *fakeLanguageService) UpdateLanguage(ctx context.Context, id int64, req *dto.LanguageRequest) (*models.Language, error) {
	language, err := f.GetLanguageByID(ctx, id)
	if err != nil {
		return nil, err
	}
	language.Name = req.Name
	return language, nil
}

func (f *fakeLanguageService) DeleteLanguage(context.Context, int64) error { return f.err }

type fakeCourseService struct {
	created *dto.CreateCourseRequest
}

func (f *fakeCourseService) CreateCourse(_ context.Context, req *dto.CreateCourseRequest) (*models.Course, error) {
	f.created = req
	return &models.Course{ID: 1, Title: req.Title, Difficulty: models.Difficulty(req.Difficulty)}, nil
}

func (f *fakeCourseService) GetAllCourses(context.Context) ([]*models.Course, error) {
	return []*models.Course{}, nil
}

func (f *fakeCourseService) GetCourseByID(context.Context, int64) (*models.Course, error) {
	return nil, apperrors.ErrCourseNotFound
}

type fakeEnrollmentService struct {
	studentID int64
	courseID  int64
	removed   int64
	removeErr error
}

func (f *fakeEnrollmentService) Enroll(_ context.Context, studentID, courseID int64) (*models.Enrollment, error) {
	f.studentID, f.courseID = studentID, courseID
	if courseID <= 0 {
		return nil, apperrors.NewValidationError(dto.EnrollCourseIDMessage)
	}
	return &models.Enrollment{StudentID: studentID, CourseID: courseID}, nil
}

func (f *fakeEnrollmentService) GetStudentCourses(_ context.Context, studentID int64) ([]*models.EnrolledCourse, error) {
	f.studentID = studentID
	return []*models.EnrolledCourse{}, nil
}

func (f *fakeEnrollmentService) RemoveAllCourses(_ context.Context, studentID int64) (int64, error) {
	f.studentID = studentID
	return f.removed, nil
}

func (f *fakeEnrollmentService) RemoveCourse(_ context.Context, studentID, courseID int64) error {
	f.studentID, f.courseID = studentID, courseID
	return f.removeErr
}
