package routes

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/devacademy/internal/app/controllers"
	"github.com/yigit/devacademy/internal/app/models"
	"github.com/yigit/devacademy/internal/middleware"
	"github.com/yigit/devacademy/internal/pkg/auth"
)

type stubEnrollments struct{ studentID int64 }

func (s *stubEnrollments) Enroll(_ context.Context, studentID, courseID int64) (*models.Enrollment, error) {
	s.studentID = studentID
	return &models.Enrollment{StudentID: studentID, CourseID: courseID}, nil
}

func (s *stubEnrollments) GetStudentCourses(_ context.Context, studentID int64) ([]*models.EnrolledCourse, error) {
	s.studentID = studentID
	return []*models.EnrolledCourse{}, nil
}

func (s *stubEnrollments) RemoveAllCourses(context.Context, int64) (int64, error) { return 0, nil }

func (s *stubEnrollments) RemoveCourse(context.Context, int64, int64) error { return nil }

type stubPinger struct{ err error }

func (p stubPinger) Ping(context.Context) error { return p.err }

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter(t *testing.T, enrollments *stubEnrollments) (*gin.Engine, *auth.JWTService) {
	t.Helper()
	jwtService := auth.NewJWTService(auth.JWTConfig{SecretKey: "test-secret", AccessTokenExp: time.Hour, TokenIssuer: "devacademy"})

	router := gin.New()
	SetupRouter(router,
		controllers.NewAuthController(nil, auth.CookiePolicy{}, "", zerolog.Nop()),
		controllers.NewStudentController(nil, "", zerolog.Nop()),
		controllers.NewLanguageController(nil),
		controllers.NewCourseController(nil),
		controllers.NewEnrollmentController(enrollments),
		middleware.NewAuthMiddleware(jwtService),
	)
	return router, jwtService
}

func withSession(t *testing.T, req *http.Request, jwtService *auth.JWTService, studentID int64) *http.Request {
	t.Helper()
	token, err := jwtService.Issue(auth.Claims{auth.IdentityClaim: studentID}, time.Hour)
	require.NoError(t, err)
	req.Header.Set(auth.SessionHeader, "4821")
	req.AddCookie(&http.Cookie{Name: auth.CookieName("4821"), Value: token})
	return req
}

func TestEnrollmentRoutesRequireOwnSession(t *testing.T) {
	enrollments := &stubEnrollments{}
	router, jwtService := newTestRouter(t, enrollments)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, withSession(t, httptest.NewRequest(http.MethodGet, "/api/students/7/courses", nil), jwtService, 7))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(7), enrollments.studentID)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, withSession(t, httptest.NewRequest(http.MethodGet, "/api/students/8/courses", nil), jwtService, 7))
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/students/7/courses", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAccountRoutesAreGated(t *testing.T) {
	router, jwtService := newTestRouter(t, &stubEnrollments{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/api/students/7", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, withSession(t, httptest.NewRequest(http.MethodDelete, "/api/students/7/account", nil), jwtService, 9))
	assert.Equal(t, http.StatusForbidden, w.Code)

	other := auth.NewJWTService(auth.JWTConfig{SecretKey: "other-secret"})
	w = httptest.NewRecorder()
	router.ServeHTTP(w, withSession(t, httptest.NewRequest(http.MethodDelete, "/api/students/7", nil), other, 7))
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestSetupOps(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "profile_pictures"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "profile_pictures", "a.png"), []byte("png"), 0o644))

	router := gin.New()
	SetupOps(router, stubPinger{}, middleware.NewMetrics(), dir)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/uploads/profile_pictures/a.png", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "png", w.Body.String())

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	down := gin.New()
	SetupOps(down, stubPinger{err: errors.New("connection refused")}, nil, dir)
	w = httptest.NewRecorder()
	down.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
