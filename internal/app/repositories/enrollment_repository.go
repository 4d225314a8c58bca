package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/yigit/devacademy/internal/app/models"
	"github.com/yigit/devacademy/internal/db"
	"github.com/yigit/devacademy/internal/pkg/apperrors"
	"github.com/yigit/devacademy/internal/pkg/dberrors"
	"github.com/yigit/devacademy/internal/pkg/logger"
)

// ErrEnrollmentCourseMissing is returned when enrolling in a course that does not exist
var ErrEnrollmentCourseMissing = apperrors.NewResourceNotFoundError("Enrollment error: The course with the provided ID does not exist.")

// removeEnrollmentSQL deletes one enrollment and reports what happened in the
// same statement: deleted, not_enrolled (course exists) or no_course.
const removeEnrollmentSQL = `
WITH deleted AS (
	DELETE FROM student_courses
	WHERE student_id = $1 AND course_id = $2
	RETURNING course_id
)
SELECT
	CASE
		WHEN EXISTS (SELECT 1 FROM deleted) THEN 'deleted'
		WHEN EXISTS (SELECT 1 FROM courses WHERE course_id = $2) THEN 'not_enrolled'
		ELSE 'no_course'
	END AS status`

// EnrollmentRepository handles student_courses database operations
type EnrollmentRepository struct {
	db db.DBTX
	sb squirrel.StatementBuilderType
}

// NewEnrollmentRepository creates a new EnrollmentRepository
func NewEnrollmentRepository(database db.DBTX) *EnrollmentRepository {
	return &EnrollmentRepository{
		db: database,
		sb: statementBuilder(),
	}
}

// Enroll adds a (student, course) pair. A second enrollment of the same pair
// is a conflict; an unknown course is not found.
func (r *EnrollmentRepository) Enroll(ctx context.Context, studentID, courseID int64) (*models.Enrollment, error) {
	sql, args, err := r.sb.Insert("student_courses").
		Columns("student_id", "course_id").
		Values(studentID, courseID).
		Suffix("RETURNING enrollment_date").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build enroll query: %w", err)
	}

	enrollment := &models.Enrollment{StudentID: studentID, CourseID: courseID}
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&enrollment.EnrollmentDate); err != nil {
		switch {
		case dberrors.IsUniqueViolation(err):
			return nil, apperrors.ErrAlreadyEnrolled
		case dberrors.IsForeignKeyViolation(err) && dberrors.ConstraintName(err) == constraintEnrollmentCourse:
			return nil, ErrEnrollmentCourseMissing
		case dberrors.IsForeignKeyViolation(err):
			return nil, apperrors.ErrStudentNotFound
		}
		logger.Error().Err(err).Int64("studentID", studentID).Int64("courseID", courseID).Msg("Error enrolling student")
		return nil, fmt.Errorf("error enrolling student: %w", err)
	}
	return enrollment, nil
}

// ListCourses returns the courses of a student, most recent enrollment first
func (r *EnrollmentRepository) ListCourses(ctx context.Context, studentID int64) ([]*models.EnrolledCourse, error) {
	sql, args, err := r.sb.Select(
		"c.course_id", "c.title", "c.description", "c.difficulty::text", "c.price::float8",
		"c.language_id", "pl.name AS language_name", "sc.enrollment_date",
	).
		From("student_courses sc").
		Join("courses c ON sc.course_id = c.course_id").
		Join("programming_languages pl ON c.language_id = pl.language_id").
		Where(squirrel.Eq{"sc.student_id": studentID}).
		OrderBy("sc.enrollment_date DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list enrollments query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("studentID", studentID).Msg("Error retrieving student courses")
		return nil, fmt.Errorf("error querying student courses: %w", err)
	}
	defer rows.Close()

	courses := []*models.EnrolledCourse{}
	for rows.Next() {
		c := &models.EnrolledCourse{}
		if err := rows.Scan(&c.CourseID, &c.Title, &c.Description, &c.Difficulty, &c.Price,
			&c.LanguageID, &c.LanguageName, &c.EnrollmentDate); err != nil {
			logger.Error().Err(err).Msg("Error scanning enrolled course row")
			return nil, fmt.Errorf("error scanning enrolled course row: %w", err)
		}
		courses = append(courses, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating enrolled course rows: %w", err)
	}
	return courses, nil
}

// RemoveAll deletes every enrollment of a student and returns how many there were
func (r *EnrollmentRepository) RemoveAll(ctx context.Context, studentID int64) (int64, error) {
	sql, args, err := r.sb.Delete("student_courses").
		Where(squirrel.Eq{"student_id": studentID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build remove enrollments query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("studentID", studentID).Msg("Error deleting all student course enrollments")
		return 0, fmt.Errorf("error removing enrollments: %w", err)
	}
	return tag.RowsAffected(), nil
}

// Remove deletes one enrollment atomically and reports the outcome
func (r *EnrollmentRepository) Remove(ctx context.Context, studentID, courseID int64) (models.RemovalStatus, error) {
	var status string
	if err := r.db.QueryRow(ctx, removeEnrollmentSQL, studentID, courseID).Scan(&status); err != nil {
		logger.Error().Err(err).Int64("studentID", studentID).Int64("courseID", courseID).Msg("Error removing course enrollment")
		return "", fmt.Errorf("error removing enrollment: %w", err)
	}
	return models.RemovalStatus(status), nil
}
