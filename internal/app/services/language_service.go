package services

import (
	"context"

	"github.com/yigit/devacademy/internal/app/models"
	"github.com/yigit/devacademy/internal/app/models/dto"
	"github.com/yigit/devacademy/internal/pkg/apperrors"
	"github.com/yigit/devacademy/internal/pkg/validation"
)

// ErrLanguageNameRequired is returned when a language name is blank after sanitizing
var ErrLanguageNameRequired = apperrors.NewValidationError("Name language is required")

// LanguageService defines the interface for programming language operations
type LanguageService interface {
	CreateLanguage(ctx context.Context, req *dto.LanguageRequest) (*models.Language, error)
	GetAllLanguages(ctx context.Context) ([]*models.Language, error)
	GetLanguageByID(ctx context.Context, id int64) (*models.Language, error)
	UpdateLanguage(ctx context.Context, id int64, req *dto.LanguageRequest) (*models.Language, error)
	DeleteLanguage(ctx context.Context, id int64) error
}

// languageServiceImpl implements the LanguageService interface
type languageServiceImpl struct {
	languages LanguageStore
}

// NewLanguageService creates a new LanguageService
func NewLanguageService(languages LanguageStore) LanguageService {
	return &languageServiceImpl{languages: languages}
}

func (s *languageServiceImpl) languageName(req *dto.LanguageRequest) (string, error) {
	if err := validation.Struct(req); err != nil {
		return "", err
	}
	name := sanitizeText(req.Name)
	if name == "" {
		return "", ErrLanguageNameRequired
	}
	return name, nil
}

func (s *languageServiceImpl) CreateLanguage(ctx context.Context, req *dto.LanguageRequest) (*models.Language, error) {
	name, err := s.languageName(req)
	if err != nil {
		return nil, err
	}
	return s.languages.Create(ctx, name)
}

func (s *languageServiceImpl) GetAllLanguages(ctx context.Context) ([]*models.Language, error) {
	return s.languages.List(ctx)
}

func (s *languageServiceImpl) GetLanguageByID(ctx context.Context, id int64) (*models.Language, error) {
	if id <= 0 {
		return nil, apperrors.ErrLanguageNotFound
	}
	return s.languages.GetByID(ctx, id)
}

func (s *languageServiceImpl) UpdateLanguage(ctx context.Context, id int64, req *dto.LanguageRequest) (*models.Language, error) {
	name, err := s.languageName(req)
	if err != nil {
		return nil, err
	}
	if id <= 0 {
		return nil, apperrors.ErrLanguageNotFound
	}
	return s.languages.Rename(ctx, id, name)
}

func (s *languageServiceImpl) DeleteLanguage(ctx context.Context, id int64) error {
	if id <= 0 {
		return apperrors.ErrLanguageNotFound
	}
	return s.languages.Delete(ctx, id)
}
