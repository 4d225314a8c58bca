package dto

// RegisterRequest is the multipart form of a student registration.
// Field order is the order required fields are reported in.
type RegisterRequest struct {
	Name            string   `form:"name" validate:"required"`
	Surnames        string   `form:"surnames" validate:"required"`
	Email           string   `form:"email" validate:"required"`
	Password        string   `form:"password" validate:"required"`
	Age             string   `form:"age" validate:"required"`
	PasswordConfirm string   `form:"passwordConfirm" validate:"required"`
	Nationality     string   `form:"nationality"`
	PhoneNumber     string   `form:"phone_number"`
	Languages       []string `form:"languages"`
}

// LoginRequest represents the login credentials
type LoginRequest struct {
	Email    string `json:"email" validate:"required" example:"ada@example.com"`
	Password string `json:"password" validate:"required" example:"secret1"`
}

func (LoginRequest) ValidationMessages() map[string]string {
	return map[string]string{"required": "Email and password are required."}
}

// ChangePasswordRequest carries the current and the new password
type ChangePasswordRequest struct {
	Password    string `json:"password" validate:"required" example:"secret1"`
	NewPassword string `json:"newPassword" validate:"required" example:"secret2"`
}

func (ChangePasswordRequest) ValidationMessages() map[string]string {
	return map[string]string{"required": "Both old password and new passwords are required."}
}

// SessionResponse is returned by login and refresh next to the session cookie
type SessionResponse struct {
	Student    *StudentResponse `json:"student,omitempty"`
	EndToken   string           `json:"end_token" example:"4821"`
	CookieName string           `json:"cookie_name" example:"auth_token_4821"`
	ExpiresIn  int64            `json:"expires_in" example:"3600"` // seconds
}
