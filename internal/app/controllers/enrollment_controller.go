package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yigit/devacademy/internal/app/models"
	"github.com/yigit/devacademy/internal/app/models/dto"
	"github.com/yigit/devacademy/internal/app/services"
	"github.com/yigit/devacademy/internal/middleware"
	"github.com/yigit/devacademy/internal/pkg/auth"
)

var enrollTypeMessages = middleware.TypeMessages{"courseId": dto.EnrollCourseIDMessage}

// EnrollmentController handles the courses of the authenticated student
type EnrollmentController struct {
	enrollmentService services.EnrollmentService
}

// NewEnrollmentController creates a new EnrollmentController
func NewEnrollmentController(enrollmentService services.EnrollmentService) *EnrollmentController {
	return &EnrollmentController{enrollmentService: enrollmentService}
}

// authStudentID is the id placed in the context by the session gate
func authStudentID(ctx *gin.Context) (int64, bool) {
	id, ok := middleware.AuthID(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, auth.ErrForbidden)
	}
	return id, ok
}

// Enroll godoc
// @Summary Enroll in a course
// @Tags enrollments
// @Accept json
// @Produce json
// @Param student_id path int true "Student ID"
// @Param end_token header string true "Session cookie suffix"
// @Param request body dto.EnrollRequest true "Course to enroll in"
// @Success 201 {object} dto.APIResponse{data=models.Enrollment}
// @Failure 400 {object} dto.ErrorResponse "Invalid course id or already enrolled"
// @Failure 403 {object} dto.ErrorResponse "Session does not own the account"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /students/{student_id} [post]
func (c *EnrollmentController) Enroll(ctx *gin.Context) {
	studentID, ok := authStudentID(ctx)
	if !ok {
		return
	}

	var req dto.EnrollRequest
	if err := middleware.BindJSON(ctx, &req, enrollTypeMessages); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	var courseID int64
	if req.CourseID != nil {
		courseID = *req.CourseID
	}

	enrollment, err := c.enrollmentService.Enroll(ctx.Request.Context(), studentID, courseID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(enrollment, "Course added to student successfully"))
}

// GetStudentCourses godoc
// @Summary List enrolled courses
// @Tags enrollments
// @Produce json
// @Param student_id path int true "Student ID"
// @Param end_token header string true "Session cookie suffix"
// @Success 200 {object} dto.APIResponse{data=dto.EnrolledCoursesResponse}
// @Failure 403 {object} dto.ErrorResponse "Session does not own the account"
// @Router /students/{student_id}/courses [get]
func (c *EnrollmentController) GetStudentCourses(ctx *gin.Context) {
	studentID, ok := authStudentID(ctx)
	if !ok {
		return
	}

	courses, err := c.enrollmentService.GetStudentCourses(ctx.Request.Context(), studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.EnrolledCoursesResponse{Courses: courses}, ""))
}

// RemoveAllCourses godoc
// @Summary Leave all courses
// @Tags enrollments
// @Produce json
// @Param student_id path int true "Student ID"
// @Param end_token header string true "Session cookie suffix"
// @Success 200 {object} dto.APIResponse{data=dto.RemoveAllEnrollmentsResponse}
// @Failure 403 {object} dto.ErrorResponse "Session does not own the account"
// @Router /students/{student_id}/courses [delete]
func (c *EnrollmentController) RemoveAllCourses(ctx *gin.Context) {
	studentID, ok := authStudentID(ctx)
	if !ok {
		return
	}

	count, err := c.enrollmentService.RemoveAllCourses(ctx.Request.Context(), studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(
		dto.RemoveAllEnrollmentsResponse{CoursesRemovedCount: count},
		"All courses removed from student",
	))
}

// RemoveCourse godoc
// @Summary Leave a course
// @Tags enrollments
// @Produce json
// @Param student_id path int true "Student ID"
// @Param course_id path int true "Course ID"
// @Param end_token header string true "Session cookie suffix"
// @Success 200 {object} dto.APIResponse{data=dto.EnrollmentRemovalResponse}
// @Failure 400 {object} dto.ErrorResponse "Invalid course id"
// @Failure 403 {object} dto.ErrorResponse "Session does not own the account"
// @Failure 404 {object} dto.ErrorResponse "Not enrolled, or no such course"
// @Router /students/{student_id}/courses/{course_id} [delete]
func (c *EnrollmentController) RemoveCourse(ctx *gin.Context) {
	studentID, ok := authStudentID(ctx)
	if !ok {
		return
	}

	courseID, err := strconv.ParseInt(ctx.Param("course_id"), 10, 64)
	if err != nil || courseID <= 0 {
		middleware.HandleAPIError(ctx, services.ErrInvalidCourseParam)
		return
	}

	if err := c.enrollmentService.RemoveCourse(ctx.Request.Context(), studentID, courseID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(
		dto.EnrollmentRemovalResponse{CourseID: courseID, Status: models.RemovalDeleted},
		"Course removed from student",
	))
}
