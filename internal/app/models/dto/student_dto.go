package dto

import (
	"time"

	"github.com/yigit/devacademy/internal/app/models"
	"github.com/yigit/devacademy/internal/pkg/filestorage"
)

// UpdateStudentRequest is the multipart form of a partial student update.
// Absent fields are left unchanged.
type UpdateStudentRequest struct {
	Name        *string  `form:"name" validate:"omitempty,min=1,max=255"`
	Surnames    *string  `form:"surnames" validate:"omitempty,min=1,max=255"`
	Email       *string  `form:"email" validate:"omitempty,email"`
	Age         *string  `form:"age"`
	Nationality *string  `form:"nationality"`
	PhoneNumber *string  `form:"phone_number"`
	Languages   []string `form:"languages"`
}

// StudentResponse is the public view of a student account
type StudentResponse struct {
	ID             int64     `json:"student_id" example:"7"`
	Name           string    `json:"name" example:"Ada"`
	Surnames       string    `json:"surnames" example:"Lovelace"`
	Email          string    `json:"email" example:"ada@example.com"`
	ProfilePicture *string   `json:"profile_picture" example:"http://localhost:3000/uploads/profile_pictures/0b6e.png"`
	Age            int       `json:"age" example:"28"`
	Nationality    *string   `json:"nationality" example:"British"`
	PhoneNumber    *string   `json:"phone_number" example:"+44 20 7946 0000"`
	Languages      []int32   `json:"languages"`
	IsActive       bool      `json:"is_active" example:"true"`
	CreatedAt      time.Time `json:"created_at"`
}

// NewStudentResponse builds the response of a student, rendering the
// profile picture as an absolute URL on baseURL.
func NewStudentResponse(s *models.Student, baseURL string) *StudentResponse {
	if s == nil {
		return nil
	}

	languages := s.Languages
	if languages == nil {
		languages = []int32{}
	}

	resp := &StudentResponse{
		ID:          s.ID,
		Name:        s.Name,
		Surnames:    s.Surnames,
		Email:       s.Email,
		Age:         s.Age,
		Nationality: s.Nationality,
		PhoneNumber: s.PhoneNumber,
		Languages:   languages,
		IsActive:    s.IsActive,
		CreatedAt:   s.CreatedAt,
	}
	if s.ProfilePicture != nil && *s.ProfilePicture != "" {
		url := filestorage.PublicURL(baseURL, *s.ProfilePicture)
		resp.ProfilePicture = &url
	}
	return resp
}

// NewStudentResponses converts a list of students
func NewStudentResponses(students []*models.Student, baseURL string) []*StudentResponse {
	out := make([]*StudentResponse, 0, len(students))
	for _, s := range students {
		out = append(out, NewStudentResponse(s, baseURL))
	}
	return out
}
