package repositories

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/devacademy/internal/app/models"
	"github.com/yigit/devacademy/internal/db"
	"github.com/yigit/devacademy/internal/pkg/apperrors"
	"github.com/yigit/devacademy/internal/pkg/dberrors"
	"github.com/yigit/devacademy/internal/pkg/helpers"
	"github.com/yigit/devacademy/internal/pkg/logger"
)

var studentColumns = []string{
	"student_id", "name", "surnames", "email", "password", "profile_picture",
	"age", "nationality", "phone_number", "languages", "is_active", "created_at",
}

// StudentUpdate is the outcome of a partial update
type StudentUpdate struct {
	Student  *models.Student // Row after the update
	Previous *models.Student // Row before the update
	Changed  []string        // Columns written, sorted
}

// StudentRepository handles student database operations
type StudentRepository struct {
	db db.DBTX
	sb squirrel.StatementBuilderType
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(database db.DBTX) *StudentRepository {
	return &StudentRepository{
		db: database,
		sb: statementBuilder(),
	}
}

func scanStudent(row pgx.Row) (*models.Student, error) {
	s := &models.Student{}
	err := row.Scan(
		&s.ID, &s.Name, &s.Surnames, &s.Email, &s.Password, &s.ProfilePicture,
		&s.Age, &s.Nationality, &s.PhoneNumber, &s.Languages, &s.IsActive, &s.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// translateStudentWriteError maps constraint violations of inserts and updates
func translateStudentWriteError(err error) error {
	switch {
	case dberrors.IsDuplicateConstraintError(err, constraintStudentEmail):
		return apperrors.ErrEmailAlreadyExists
	case dberrors.IsCheckConstraintError(err, constraintAdultAge):
		return apperrors.ErrUnderage
	case dberrors.IsUniqueViolation(err):
		return apperrors.NewConflictError("A student with these details already exists.")
	}
	return nil
}

// Create inserts a student and fills in its id and creation time
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	languages := student.Languages
	if languages == nil {
		languages = []int32{}
	}

	sql, args, err := r.sb.Insert("students").
		Columns("profile_picture", "name", "surnames", "email", "password", "age", "nationality", "phone_number", "languages").
		Values(student.ProfilePicture, student.Name, student.Surnames, student.Email, student.Password,
			student.Age, student.Nationality, student.PhoneNumber, languages).
		Suffix("RETURNING student_id, is_active, created_at").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create student SQL")
		return fmt.Errorf("failed to build create student query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&student.ID, &student.IsActive, &student.CreatedAt)
	if err != nil {
		if domainErr := translateStudentWriteError(err); domainErr != nil {
			return domainErr
		}
		logger.Error().Err(err).Str("email", student.Email).Msg("Error executing create student query")
		return fmt.Errorf("error creating student: %w", err)
	}

	student.Languages = languages
	return nil
}

func (r *StudentRepository) activeStudents() squirrel.SelectBuilder {
	return r.sb.Select(studentColumns...).
		From("students").
		Where("is_active = TRUE")
}

func (r *StudentRepository) queryStudents(ctx context.Context, query squirrel.SelectBuilder) ([]*models.Student, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list students SQL")
		return nil, fmt.Errorf("failed to build list students query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list students query")
		return nil, fmt.Errorf("error querying students: %w", err)
	}
	defer rows.Close()

	students := []*models.Student{}
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning student row")
			return nil, fmt.Errorf("error scanning student row: %w", err)
		}
		students = append(students, student)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating student rows")
		return nil, fmt.Errorf("error iterating student rows: %w", err)
	}

	return students, nil
}

// List returns every active student
func (r *StudentRepository) List(ctx context.Context) ([]*models.Student, error) {
	return r.queryStudents(ctx, r.activeStudents().OrderBy("student_id ASC"))
}

// ListPage returns one limit/offset window of active students
func (r *StudentRepository) ListPage(ctx context.Context, page helpers.Page) ([]*models.Student, error) {
	return r.queryStudents(ctx, r.activeStudents().
		OrderBy("student_id ASC").
		Limit(page.Limit).
		Offset(page.Offset))
}

func (r *StudentRepository) getOne(ctx context.Context, where squirrel.Sqlizer) (*models.Student, error) {
	sql, args, err := r.activeStudents().Where(where).Limit(1).ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get student SQL")
		return nil, fmt.Errorf("failed to build get student query: %w", err)
	}

	student, err := scanStudent(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		logger.Error().Err(err).Msg("Error scanning student row")
		return nil, fmt.Errorf("error getting student: %w", err)
	}
	return student, nil
}

// GetByID returns an active student
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	return r.getOne(ctx, squirrel.Eq{"student_id": id})
}

// GetByEmail returns the active student owning email (case-sensitive)
func (r *StudentRepository) GetByEmail(ctx context.Context, email string) (*models.Student, error) {
	return r.getOne(ctx, squirrel.Eq{"email": email})
}

// Update applies the fields of patch that differ from the stored row.
// Nothing is written when no field changed.
func (r *StudentRepository) Update(ctx context.Context, id int64, patch models.StudentPatch) (*StudentUpdate, error) {
	current, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	changes := patch.Changes(current)
	result := &StudentUpdate{Student: current, Previous: current, Changed: []string{}}
	if len(changes) == 0 {
		return result, nil
	}

	for column := range changes {
		result.Changed = append(result.Changed, column)
	}
	sort.Strings(result.Changed)

	sql, args, err := r.sb.Update("students").
		SetMap(changes).
		Where(squirrel.Eq{"student_id": id}).
		Where("is_active = TRUE").
		Suffix("RETURNING " + strings.Join(studentColumns, ", ")).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update student SQL")
		return nil, fmt.Errorf("failed to build update student query: %w", err)
	}

	updated, err := scanStudent(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		if domainErr := translateStudentWriteError(err); domainErr != nil {
			return nil, domainErr
		}
		logger.Error().Err(err).Int64("studentID", id).Strs("columns", result.Changed).Msg("Error executing update student query")
		return nil, fmt.Errorf("error updating student: %w", err)
	}

	result.Student = updated
	return result, nil
}

// UpdatePassword stores a new password digest for an active student
func (r *StudentRepository) UpdatePassword(ctx context.Context, id int64, digest string) error {
	sql, args, err := r.sb.Update("students").
		Set("password", digest).
		Where(squirrel.Eq{"student_id": id}).
		Where("is_active = TRUE").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update password query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("studentID", id).Msg("Error updating student password")
		return fmt.Errorf("error updating password: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}
	return nil
}

// Deactivate soft-deletes an active student
func (r *StudentRepository) Deactivate(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Update("students").
		Set("is_active", false).
		Set("deactivated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"student_id": id}).
		Where("is_active = TRUE").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build deactivate student query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("studentID", id).Msg("Error deactivating student")
		return fmt.Errorf("error deactivating student: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}
	return nil
}

// Delete removes a student row and returns its profile picture path, if any.
// Enrollments go with it (ON DELETE CASCADE).
func (r *StudentRepository) Delete(ctx context.Context, id int64) (*string, error) {
	sql, args, err := r.sb.Delete("students").
		Where(squirrel.Eq{"student_id": id}).
		Suffix("RETURNING profile_picture").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build delete student query: %w", err)
	}

	var picture *string
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&picture); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		logger.Error().Err(err).Int64("studentID", id).Msg("Error deleting student")
		return nil, fmt.Errorf("error deleting student: %w", err)
	}
	return picture, nil
}
