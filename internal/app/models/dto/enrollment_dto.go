package dto

import "github.com/yigit/devacademy/internal/app/models"

// EnrollRequest enrolls the authenticated student in a course
type EnrollRequest struct {
	CourseID *int64 `json:"courseId" validate:"required,gt=0" example:"3"`
}

func (EnrollRequest) ValidationMessages() map[string]string {
	return map[string]string{
		"required": EnrollCourseIDMessage,
		"gt":       EnrollCourseIDMessage,
	}
}

// EnrollCourseIDMessage is returned when courseId is missing or not a positive number
const EnrollCourseIDMessage = "The 'course_id' is required and must be a valid ID."

// EnrolledCoursesResponse lists a student's courses
type EnrolledCoursesResponse struct {
	Courses []*models.EnrolledCourse `json:"courses"`
}

// RemoveAllEnrollmentsResponse reports a bulk removal
type RemoveAllEnrollmentsResponse struct {
	CoursesRemovedCount int64 `json:"courses_removed_count" example:"2"`
}

// EnrollmentRemovalResponse reports a single removal
type EnrollmentRemovalResponse struct {
	CourseID int64                `json:"course_id" example:"3"`
	Status   models.RemovalStatus `json:"status" example:"deleted"`
}
