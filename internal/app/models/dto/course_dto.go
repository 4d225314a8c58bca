package dto

// CreateCourseRequest is the JSON body of a course creation.
// Numeric fields are pointers so that a missing value differs from zero.
type CreateCourseRequest struct {
	Title       string   `json:"title" validate:"required,max=255" example:"Go for backend developers"`
	Description *string  `json:"description" example:"From zero to production services"`
	Difficulty  string   `json:"difficulty" validate:"required,difficulty" example:"Intermediate" enums:"Beginner,Easy,Intermediate,Advanced,Expert"`
	Price       *float64 `json:"price" validate:"required,gte=0" example:"49.99"`
	LanguageID  *int64   `json:"language_id" validate:"required,gt=0" example:"1"`
}

func (CreateCourseRequest) ValidationMessages() map[string]string {
	return map[string]string{
		"required":       "The %s value is required",
		"language_id.gt": "The language_id value is required",
		"price.gte":      "The price must be a positive number",
	}
}
