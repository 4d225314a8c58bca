package models

import "time"

// Difficulty is the level of a course (Postgres enum course_difficulty)
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "Beginner"
	DifficultyEasy         Difficulty = "Easy"
	DifficultyIntermediate Difficulty = "Intermediate"
	DifficultyAdvanced     Difficulty = "Advanced"
	DifficultyExpert       Difficulty = "Expert"
)

// Course represents a course teaching one programming language.
type Course struct {
	ID           int64      `json:"course_id" db:"course_id" example:"3"`
	Title        string     `json:"title" db:"title" example:"Go for backend developers"`
	Description  *string    `json:"description" db:"description"` // Nullable
	Difficulty   Difficulty `json:"difficulty" db:"difficulty" example:"Intermediate"`
	Price        float64    `json:"price" db:"price" example:"49.99"`
	LanguageID   int64      `json:"language_id" db:"language_id" example:"1"`
	LanguageName string     `json:"language_name,omitempty" db:"language_name"` // Populated on joined reads
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`
}
