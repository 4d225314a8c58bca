package models

// Language is an entry of the programming language catalog
type Language struct {
	ID   int64  `json:"language_id" db:"language_id" example:"1"`
	Name string `json:"name" db:"name" example:"Go"`
}
