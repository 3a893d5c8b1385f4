package models

import "time"

// User carries only the profile fields the booking views and search need.
// Credentials and authentication live outside this service.
type User struct {
	ID           string `gorm:"type:uuid;primaryKey" json:"id"`
	FullName     string `gorm:"not null" json:"full_name"`
	Email        string `gorm:"not null;uniqueIndex" json:"email"`
	PhoneNumber  string `json:"phone_number,omitempty"`
	Role         string `gorm:"type:varchar(10);not null;default:'user'" json:"role"`
	ProfileImage string `json:"profile_image,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
