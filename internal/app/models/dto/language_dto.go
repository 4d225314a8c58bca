package dto

// LanguageRequest creates or renames a programming language
type LanguageRequest struct {
	Name string `json:"name" validate:"required,max=255" example:"Go"`
}

func (LanguageRequest) ValidationMessages() map[string]string {
	return map[string]string{"name.required": "Name language is required"}
}
