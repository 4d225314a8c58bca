package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/devacademy/internal/app/models"
	"github.com/yigit/devacademy/internal/db"
	"github.com/yigit/devacademy/internal/pkg/apperrors"
	"github.com/yigit/devacademy/internal/pkg/dberrors"
	"github.com/yigit/devacademy/internal/pkg/logger"
)

// CourseRepository handles course database operations
type CourseRepository struct {
	db db.DBTX
	sb squirrel.StatementBuilderType
}

// NewCourseRepository creates a new CourseRepository
func NewCourseRepository(database db.DBTX) *CourseRepository {
	return &CourseRepository{
		db: database,
		sb: statementBuilder(),
	}
}

// Create inserts a course and fills in its id and creation time.
// An unknown language_id is a validation error.
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	sql, args, err := r.sb.Insert("courses").
		Columns("title", "description", "difficulty", "price", "language_id").
		Values(course.Title, course.Description,
			squirrel.Expr("?::course_difficulty", string(course.Difficulty)),
			course.Price, course.LanguageID).
		Suffix("RETURNING course_id, created_at").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create course SQL")
		return fmt.Errorf("failed to build create course query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&course.ID, &course.CreatedAt); err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrInvalidLanguageRef
		}
		logger.Error().Err(err).Str("title", course.Title).Msg("Error executing create course query")
		return fmt.Errorf("error creating course: %w", err)
	}
	return nil
}

func (r *CourseRepository) selectCourses() squirrel.SelectBuilder {
	return r.sb.Select(
		"c.course_id", "c.title", "c.description", "c.difficulty::text", "c.price::float8",
		"c.language_id", "pl.name", "c.created_at",
	).
		From("courses c").
		Join("programming_languages pl ON pl.language_id = c.language_id")
}

func scanCourse(row pgx.Row) (*models.Course, error) {
	c := &models.Course{}
	err := row.Scan(&c.ID, &c.Title, &c.Description, &c.Difficulty, &c.Price,
		&c.LanguageID, &c.LanguageName, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// List returns all courses with their language name
func (r *CourseRepository) List(ctx context.Context) ([]*models.Course, error) {
	sql, args, err := r.selectCourses().OrderBy("c.course_id ASC").ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list courses SQL")
		return nil, fmt.Errorf("failed to build list courses query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list courses query")
		return nil, fmt.Errorf("error querying courses: %w", err)
	}
	defer rows.Close()

	courses := []*models.Course{}
	for rows.Next() {
		course, err := scanCourse(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning course row")
			return nil, fmt.Errorf("error scanning course row: %w", err)
		}
		courses = append(courses, course)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating course rows: %w", err)
	}
	return courses, nil
}

// GetByID retrieves a course by ID
func (r *CourseRepository) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	sql, args, err := r.selectCourses().
		Where(squirrel.Eq{"c.course_id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get course query: %w", err)
	}

	course, err := scanCourse(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		logger.Error().Err(err).Int64("courseID", id).Msg("Error scanning course row")
		return nil, fmt.Errorf("error getting course by ID: %w", err)
	}
	return course, nil
}
