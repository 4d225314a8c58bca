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

// LanguageRepository handles programming language database operations
type LanguageRepository struct {
	db db.DBTX
	sb squirrel.StatementBuilderType
}

// NewLanguageRepository creates a new LanguageRepository
func NewLanguageRepository(database db.DBTX) *LanguageRepository {
	return &LanguageRepository{
		db: database,
		sb: statementBuilder(),
	}
}

// Create inserts a language
func (r *LanguageRepository) Create(ctx context.Context, name string) (*models.Language, error) {
	sql, args, err := r.sb.Insert("programming_languages").
		Columns("name").
		Values(name).
		Suffix("RETURNING language_id, name").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create language SQL")
		return nil, fmt.Errorf("failed to build create language query: %w", err)
	}

	language := &models.Language{}
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&language.ID, &language.Name); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.ErrLanguageExists
		}
		logger.Error().Err(err).Str("name", name).Msg("Error executing create language query")
		return nil, fmt.Errorf("error creating language: %w", err)
	}
	return language, nil
}

// EnsureExists inserts name unless a language with that name exists.
// It reports whether a row was inserted.
func (r *LanguageRepository) EnsureExists(ctx context.Context, name string) (bool, error) {
	sql, args, err := r.sb.Insert("programming_languages").
		Columns("name").
		Values(name).
		Suffix("ON CONFLICT (name) DO NOTHING").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build ensure language query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("name", name).Msg("Error ensuring language")
		return false, fmt.Errorf("error ensuring language: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// List returns all languages ordered by id
func (r *LanguageRepository) List(ctx context.Context) ([]*models.Language, error) {
	sql, args, err := r.sb.Select("language_id", "name").
		From("programming_languages").
		OrderBy("language_id ASC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list languages SQL")
		return nil, fmt.Errorf("failed to build list languages query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list languages query")
		return nil, fmt.Errorf("error querying languages: %w", err)
	}
	defer rows.Close()

	languages := []*models.Language{}
	for rows.Next() {
		language := &models.Language{}
		if err := rows.Scan(&language.ID, &language.Name); err != nil {
			logger.Error().Err(err).Msg("Error scanning language row")
			return nil, fmt.Errorf("error scanning language row: %w", err)
		}
		languages = append(languages, language)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating language rows")
		return nil, fmt.Errorf("error iterating language rows: %w", err)
	}

	return languages, nil
}

// GetByID retrieves a language by ID
func (r *LanguageRepository) GetByID(ctx context.Context, id int64) (*models.Language, error) {
	sql, args, err := r.sb.Select("language_id", "name").
		From("programming_languages").
		Where(squirrel.Eq{"language_id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get language query: %w", err)
	}

	language := &models.Language{}
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&language.ID, &language.Name); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrLanguageNotFound
		}
		logger.Error().Err(err).Int64("languageID", id).Msg("Error scanning language row")
		return nil, fmt.Errorf("error getting language by ID: %w", err)
	}
	return language, nil
}

// Rename changes the name of a language
func (r *LanguageRepository) Rename(ctx context.Context, id int64, name string) (*models.Language, error) {
	sql, args, err := r.sb.Update("programming_languages").
		Set("name", name).
		Where(squirrel.Eq{"language_id": id}).
		Suffix("RETURNING language_id, name").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build rename language query: %w", err)
	}

	language := &models.Language{}
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&language.ID, &language.Name); err != nil {
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			return nil, apperrors.ErrLanguageNotFound
		case dberrors.IsDuplicateConstraintError(err, constraintLanguageName):
			return nil, apperrors.ErrLanguageExists
		}
		logger.Error().Err(err).Int64("languageID", id).Msg("Error renaming language")
		return nil, fmt.Errorf("error renaming language: %w", err)
	}
	return language, nil
}

// Delete removes a language that no course references
func (r *LanguageRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("programming_languages").
		Where(squirrel.Eq{"language_id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete language query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrLanguageInUse
		}
		logger.Error().Err(err).Int64("languageID", id).Msg("Error deleting language")
		return fmt.Errorf("error deleting language: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrLanguageNotFound
	}
	return nil
}
