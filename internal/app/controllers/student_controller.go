package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/devacademy/internal/app/models/dto"
	"github.com/yigit/devacademy/internal/app/services"
	"github.com/yigit/devacademy/internal/middleware"
	"github.com/yigit/devacademy/internal/pkg/helpers"
)

// StudentController handles student account endpoints
type StudentController struct {
	studentService services.StudentService
	baseURL        string
	logger         zerolog.Logger
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService services.StudentService, baseURL string, logger zerolog.Logger) *StudentController {
	return &StudentController{
		studentService: studentService,
		baseURL:        baseURL,
		logger:         logger,
	}
}

// GetAllStudents godoc
// @Summary List students
// @Description Lists all active students
// @Tags students
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.StudentResponse}
// @Failure 404 {object} dto.ErrorResponse "No users found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students [get]
func (c *StudentController) GetAllStudents(ctx *gin.Context) {
	students, err := c.studentService.GetAllStudents(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewStudentResponses(students, publicBaseURL(ctx, c.baseURL)), ""))
}

// GetStudentsBatch godoc
// @Summary List a page of students
// @Description Lists active students ordered by id. limit defaults to 5 (max 20), offset to 0.
// @Tags students
// @Produce json
// @Param limit query int false "Page size" minimum(1) maximum(20) default(5)
// @Param offset query int false "Rows to skip" minimum(0) default(0)
// @Success 200 {object} dto.APIResponse{data=dto.PaginatedResponse{items=[]dto.StudentResponse}}
// @Failure 400 {object} dto.ErrorResponse "Invalid limit or offset"
// @Failure 404 {object} dto.ErrorResponse "No accounts found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/batch [get]
func (c *StudentController) GetStudentsBatch(ctx *gin.Context) {
	page, err := helpers.ParsePaginationParams(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	students, err := c.studentService.GetStudentsPage(ctx.Request.Context(), page)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.PaginatedResponse{
		Items: dto.NewStudentResponses(students, publicBaseURL(ctx, c.baseURL)),
		Pagination: dto.PaginationInfo{
			Limit:  page.Limit,
			Offset: page.Offset,
			Count:  len(students),
		},
	}, ""))
}

// GetStudentByID godoc
// @Summary Get a student
// @Tags students
// @Produce json
// @Param student_id path int true "Student ID"
// @Success 200 {object} dto.APIResponse{data=dto.StudentResponse}
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{student_id} [get]
func (c *StudentController) GetStudentByID(ctx *gin.Context) {
	id, err := parseStudentID(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	student, err := c.studentService.GetStudentByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewStudentResponse(student, publicBaseURL(ctx, c.baseURL)), ""))
}

// GetStudentByEmail godoc
// @Summary Find a student by email
// @Tags students
// @Produce json
// @Param email path string true "Email"
// @Success 200 {object} dto.APIResponse{data=dto.StudentResponse}
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/email/{email} [get]
func (c *StudentController) GetStudentByEmail(ctx *gin.Context) {
	student, err := c.studentService.GetStudentByEmail(ctx.Request.Context(), ctx.Param("email"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewStudentResponse(student, publicBaseURL(ctx, c.baseURL)), ""))
}

// UpdateStudent godoc
// @Summary Update a student
// @Description Partial update; absent fields are left unchanged. A new profile picture replaces the previous one.
// @Tags students
// @Accept multipart/form-data
// @Produce json
// @Param student_id path int true "Student ID"
// @Param end_token header string true "Session cookie suffix"
// @Param name formData string false "Name"
// @Param surnames formData string false "Surnames"
// @Param email formData string false "Email"
// @Param age formData integer false "Age"
// @Param nationality formData string false "Nationality"
// @Param phone_number formData string false "Phone number"
// @Param languages formData string false "Language ids, e.g. [1,2]"
// @Param profile_picture formData file false "Profile picture"
// @Success 200 {object} dto.APIResponse{data=dto.StudentResponse}
// @Failure 400 {object} dto.ErrorResponse "Invalid field or empty update"
// @Failure 403 {object} dto.ErrorResponse "Session does not own the account"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{student_id} [put]
func (c *StudentController) UpdateStudent(ctx *gin.Context) {
	id, err := parseStudentID(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	var req dto.UpdateStudentRequest
	if err := middleware.BindForm(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	picture, err := optionalFile(ctx, "profile_picture")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	student, err := c.studentService.UpdateStudent(ctx.Request.Context(), id, &req, picture)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(
		dto.NewStudentResponse(student, publicBaseURL(ctx, c.baseURL)),
		"Student updated successfully",
	))
}

// DeactivateStudent godoc
// @Summary Deactivate a student
// @Description Soft delete: the account stays stored but is no longer listed nor able to log in
// @Tags students
// @Produce json
// @Param student_id path int true "Student ID"
// @Param end_token header string true "Session cookie suffix"
// @Success 200 {object} dto.APIResponse
// @Failure 403 {object} dto.ErrorResponse "Session does not own the account"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{student_id} [delete]
func (c *StudentController) DeactivateStudent(ctx *gin.Context) {
	id, err := parseStudentID(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if err := c.studentService.DeactivateStudent(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Student deactivated successfully"))
}

// DeleteStudent godoc
// @Summary Delete a student account
// @Description Removes the account, its enrollments and its profile picture
// @Tags students
// @Produce json
// @Param student_id path int true "Student ID"
// @Param end_token header string true "Session cookie suffix"
// @Success 200 {object} dto.APIResponse
// @Failure 403 {object} dto.ErrorResponse "Session does not own the account"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{student_id}/account [delete]
func (c *StudentController) DeleteStudent(ctx *gin.Context) {
	id, err := parseStudentID(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if err := c.studentService.DeleteStudent(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	c.logger.Info().Int64("studentID", id).Msg("Student account deleted")
	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Student account deleted successfully"))
}
