package models

import (
	"slices"
	"time"
)

// Student defines the student model based on the 'students' table
type Student struct {
	ID             int64      `json:"student_id" db:"student_id" example:"7"`
	Name           string     `json:"name" db:"name" example:"Ada"`
	Surnames       string     `json:"surnames" db:"surnames" example:"Lovelace Byron"`
	Email          string     `json:"email" db:"email" example:"ada@example.com"`
	Password       string     `json:"-" db:"password"`                      // bcrypt digest, never serialized
	ProfilePicture *string    `json:"profile_picture" db:"profile_picture"` // Relative path in the upload store
	Age            int        `json:"age" db:"age" example:"28"`            // At least 18
	Nationality    *string    `json:"nationality" db:"nationality"`         // Nullable
	PhoneNumber    *string    `json:"phone_number" db:"phone_number"`       // Nullable
	Languages      []int32    `json:"languages" db:"languages"`             // Programming language ids
	IsActive       bool       `json:"is_active" db:"is_active"`             // False once soft-deleted
	DeactivatedAt  *time.Time `json:"deactivated_at,omitempty" db:"deactivated_at"`
	CreatedAt      time.Time  `json:"created_at" db:"created_at"`
}

// StudentPatch is a partial update of a student. Nil fields are left alone;
// the repository writes only the fields that differ from the stored row.
type StudentPatch struct {
	Name           *string
	Surnames       *string
	Email          *string
	Age            *int
	Nationality    *string
	PhoneNumber    *string
	ProfilePicture *string
	Languages      *[]int32
}

// IsEmpty reports whether the patch sets no field at all
func (p StudentPatch) IsEmpty() bool {
	return p.Name == nil && p.Surnames == nil && p.Email == nil && p.Age == nil &&
		p.Nationality == nil && p.PhoneNumber == nil && p.ProfilePicture == nil && p.Languages == nil
}

// Changes returns the column values of the patch that differ from current.
func (p StudentPatch) Changes(current *Student) map[string]interface{} {
	changes := map[string]interface{}{}

	setString := func(column string, value *string, stored string) {
		if value != nil && *value != stored {
			changes[column] = *value
		}
	}
	setNullable := func(column string, value *string, stored *string) {
		if value != nil && (stored == nil || *value != *stored) {
			changes[column] = *value
		}
	}

	setString("name", p.Name, current.Name)
	setString("surnames", p.Surnames, current.Surnames)
	setString("email", p.Email, current.Email)
	setNullable("nationality", p.Nationality, current.Nationality)
	setNullable("phone_number", p.PhoneNumber, current.PhoneNumber)
	setNullable("profile_picture", p.ProfilePicture, current.ProfilePicture)

	if p.Age != nil && *p.Age != current.Age {
		changes["age"] = *p.Age
	}
	if p.Languages != nil && !slices.Equal(*p.Languages, current.Languages) {
		changes["languages"] = *p.Languages
	}

	return changes
}
