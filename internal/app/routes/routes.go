package routes

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yigit/devacademy/internal/app/controllers"
	"github.com/yigit/devacademy/internal/app/models/dto"
	"github.com/yigit/devacademy/internal/middleware"
	"github.com/yigit/devacademy/internal/pkg/auth"
	"github.com/yigit/devacademy/internal/pkg/filestorage"
)

// Pinger reports whether the database answers
type Pinger interface {
	Ping(ctx context.Context) error
}

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	studentController *controllers.StudentController,
	languageController *controllers.LanguageController,
	courseController *controllers.CourseController,
	enrollmentController *controllers.EnrollmentController,
	authMiddleware *middleware.AuthMiddleware,
) {
	api := router.Group("/api")

	// The session must belong to the student in the path
	ownerOnly := authMiddleware.Session(middleware.SessionOptions{ParamKey: "student_id"})
	// Same check, plus the id is kept in the context for the handler
	ownerWithID := authMiddleware.Session(middleware.SessionOptions{ParamKey: "student_id", DecodedKey: auth.IdentityClaim})

	// --- Auth routes ---
	students := api.Group("/auth/students")
	{
		students.POST("/register", authController.Register)
		students.POST("/login", authController.Login)
		students.POST("/logout", authController.Logout)
		students.POST("/refresh_token/:student_id", authController.RefreshToken)
		students.PATCH("/:student_id", authController.ChangePassword)
	}

	// --- Language catalog ---
	languages := api.Group("/languages")
	{
		languages.GET("", languageController.GetAllLanguages)
		languages.GET("/:id", languageController.GetLanguageByID)
		languages.POST("", languageController.CreateLanguage)
		languages.PATCH("/:id", languageController.UpdateLanguage)
		languages.DELETE("/:id", languageController.DeleteLanguage)
	}

	// --- Courses ---
	courses := api.Group("/courses")
	{
		courses.GET("", courseController.GetAllCourses)
		courses.GET("/:id", courseController.GetCourseByID)
		courses.POST("", courseController.CreateCourse)
	}

	// --- Student accounts and enrollments ---
	accounts := api.Group("/students")
	{
		accounts.GET("", studentController.GetAllStudents)
		accounts.GET("/batch", studentController.GetStudentsBatch)
		accounts.GET("/email/:email", studentController.GetStudentByEmail)
		accounts.GET("/:student_id", studentController.GetStudentByID)

		accounts.PUT("/:student_id", ownerOnly, studentController.UpdateStudent)
		accounts.DELETE("/:student_id", ownerOnly, studentController.DeactivateStudent)
		accounts.DELETE("/:student_id/account", ownerOnly, studentController.DeleteStudent)

		accounts.POST("/:student_id", ownerWithID, enrollmentController.Enroll)
		accounts.GET("/:student_id/courses", ownerWithID, enrollmentController.GetStudentCourses)
		accounts.DELETE("/:student_id/courses", ownerWithID, enrollmentController.RemoveAllCourses)
		accounts.DELETE("/:student_id/courses/:course_id", ownerWithID, enrollmentController.RemoveCourse)
	}
}

// SetupOps registers the health, metrics and static upload endpoints
func SetupOps(router *gin.Engine, db Pinger, metrics *middleware.Metrics, uploadDir string) {
	router.GET("/health", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := db.Ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, dto.APIResponse{
				Success:   false,
				Data:      gin.H{"status": "unavailable", "database": "down"},
				Timestamp: time.Now(),
			})
			return
		}
		c.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{"status": "ok", "database": "up"}, ""))
	})

	if metrics != nil {
		router.GET("/metrics", metrics.Handler())
	}

	router.Static("/"+filestorage.URLPrefix, uploadDir)
}
