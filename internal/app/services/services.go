package services

import (
	"context"
	"html"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yigit/devacademy/internal/app/models"
	"github.com/yigit/devacademy/internal/app/repositories"
	"github.com/yigit/devacademy/internal/pkg/auth"
	"github.com/yigit/devacademy/internal/pkg/helpers"
)

// Services defined in this package:
// - AuthService: registration, login, password change and token refresh
// - StudentService: student reads, partial updates and deletion
// - LanguageService: programming language catalog
// - CourseService: course creation and reads
// - EnrollmentService: student course enrollments

// StudentStore is the student persistence used by the services
type StudentStore interface {
	Create(ctx context.Context, student *models.Student) error
	List(ctx context.Context) ([]*models.Student, error)
	ListPage(ctx context.Context, page helpers.Page) ([]*models.Student, error)
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	GetByEmail(ctx context.Context, email string) (*models.Student, error)
	Update(ctx context.Context, id int64, patch models.StudentPatch) (*repositories.StudentUpdate, error)
	UpdatePassword(ctx context.Context, id int64, digest string) error
	Deactivate(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) (*string, error)
}

// LanguageStore is the programming language persistence used by the services
type LanguageStore interface {
	Create(ctx context.Context, name string) (*models.Language, error)
	List(ctx context.Context) ([]*models.Language, error)
	GetByID(ctx context.Context, id int64) (*models.Language, error)
	Rename(ctx context.Context, id int64, name string) (*models.Language, error)
	Delete(ctx context.Context, id int64) error
}

// CourseStore is the course persistence used by the services
type CourseStore interface {
	Create(ctx context.Context, course *models.Course) error
	List(ctx context.Context) ([]*models.Course, error)
	GetByID(ctx context.Context, id int64) (*models.Course, error)
}

// EnrollmentStore is the enrollment persistence used by the services
type EnrollmentStore interface {
	Enroll(ctx context.Context, studentID, courseID int64) (*models.Enrollment, error)
	ListCourses(ctx context.Context, studentID int64) ([]*models.EnrolledCourse, error)
	RemoveAll(ctx context.Context, studentID int64) (int64, error)
	Remove(ctx context.Context, studentID, courseID int64) (models.RemovalStatus, error)
}

// TokenService issues and refreshes session tokens
type TokenService interface {
	Issue(claims auth.Claims, ttl time.Duration) (string, error)
	Refresh(token, expectedID string) (string, auth.Claims, error)
	TokenTTL() time.Duration
}

var (
	_ StudentStore    = (*repositories.StudentRepository)(nil)
	_ LanguageStore   = (*repositories.LanguageRepository)(nil)
	_ CourseStore     = (*repositories.CourseRepository)(nil)
	_ EnrollmentStore = (*repositories.EnrollmentRepository)(nil)
	_ TokenService    = (*auth.JWTService)(nil)
)

var textPolicy = bluemonday.StrictPolicy()

// sanitizeText strips markup from free text and trims it. Entities the policy
// escapes are decoded again; values are stored as plain text.
func sanitizeText(s string) string {
	return strings.TrimSpace(html.UnescapeString(textPolicy.Sanitize(s)))
}
