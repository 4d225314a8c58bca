package repositories

import (
	"github.com/Masterminds/squirrel"
	"github.com/yigit/devacademy/internal/db"
)

// Constraint names the repositories translate into domain errors
const (
	constraintStudentEmail     = "students_email_active_key"
	constraintAdultAge         = "chk_age_adult"
	constraintLanguageName     = "programming_languages_name_key"
	constraintEnrollmentCourse = "student_courses_course_id_fkey"
)

// Repositories holds all the repository instances
type Repositories struct {
	StudentRepository    *StudentRepository
	LanguageRepository   *LanguageRepository
	CourseRepository     *CourseRepository
	EnrollmentRepository *EnrollmentRepository
}

// NewRepositories initializes all repositories
func NewRepositories(database db.DBTX) *Repositories {
	return &Repositories{
		StudentRepository:    NewStudentRepository(database),
		LanguageRepository:   NewLanguageRepository(database),
		CourseRepository:     NewCourseRepository(database),
		EnrollmentRepository: NewEnrollmentRepository(database),
	}
}

func statementBuilder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}
