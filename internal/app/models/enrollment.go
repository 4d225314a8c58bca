package models

import "time"

// Enrollment links a student to a course ('student_courses' table)
type Enrollment struct {
	StudentID      int64     `json:"student_id" db:"student_id"`
	CourseID       int64     `json:"course_id" db:"course_id"`
	EnrollmentDate time.Time `json:"enrollment_date" db:"enrollment_date"`
}

// EnrolledCourse is a course as seen from a student's enrollment list
type EnrolledCourse struct {
	CourseID       int64      `json:"course_id" db:"course_id"`
	Title          string     `json:"title" db:"title"`
	Description    *string    `json:"description" db:"description"`
	Difficulty     Difficulty `json:"difficulty" db:"difficulty"`
	Price          float64    `json:"price" db:"price"`
	LanguageID     int64      `json:"language_id" db:"language_id"`
	LanguageName   string     `json:"language_name" db:"language_name"`
	EnrollmentDate time.Time  `json:"enrollment_date" db:"enrollment_date"`
}

// RemovalStatus is the outcome of removing one enrollment
type RemovalStatus string

const (
	RemovalDeleted     RemovalStatus = "deleted"
	RemovalNotEnrolled RemovalStatus = "not_enrolled"
	RemovalNoCourse    RemovalStatus = "no_course"
)
