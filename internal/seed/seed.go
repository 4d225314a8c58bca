package seed

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
)

// DefaultLanguages are created at start-up when missing
var DefaultLanguages = []string{
	"JavaScript",
	"TypeScript",
	"Python",
	"Java",
	"Go",
	"Rust",
	"C#",
	"PHP",
}

// LanguageStore is the part of the language repository the seeder needs
type LanguageStore interface {
	EnsureExists(ctx context.Context, name string) (bool, error)
}

// CreateDefaultData inserts the default programming languages that don't exist yet.
// Every name is attempted; failures are collected and returned together.
func CreateDefaultData(ctx context.Context, languages LanguageStore, lgr zerolog.Logger) error {
	lgr.Info().Msg("Checking/Creating default data (Programming languages)...")
	var finalErr error

	created := 0
	for _, name := range DefaultLanguages {
		inserted, err := languages.EnsureExists(ctx, name)
		if err != nil {
			lgr.Error().Err(err).Str("language", name).Msg("Error creating default language")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		if inserted {
			created++
			lgr.Debug().Str("language", name).Msg("Default language created")
		}
	}

	lgr.Info().Int("created", created).Msg("Default data check/creation finished.")
	return finalErr
}
