// File: internal/user/model.go
package user

import (
	"time"
)

// AccountType partitions users into the two sides of the marketplace.
type AccountType string

const (
	AccountClient     AccountType = "client"
	AccountFreelancer AccountType = "freelancer"
)

// Profile is the user-profile document, keyed by the identity UID.
// One profile per identity, created immediately after the identity itself.
type Profile struct {
	ID          string      `firestore:"id" json:"id"`
	Email       string      `firestore:"email" json:"email"`
	DisplayName string      `firestore:"displayName" json:"display_name"`
	AccountType AccountType `firestore:"accountType" json:"account_type"`
	AvatarURL   string      `firestore:"avatarUrl,omitempty" json:"avatar_url,omitempty"`
	Expertise   string      `firestore:"expertise,omitempty" json:"expertise,omitempty"`
	Title       string      `firestore:"title,omitempty" json:"title,omitempty"`
	Bio         string      `firestore:"bio,omitempty" json:"bio,omitempty"`
	Phone       string      `firestore:"phone,omitempty" json:"phone,omitempty"`
	Rating      float64     `firestore:"rating,omitempty" json:"rating,omitempty"`
	Verified    bool        `firestore:"verified" json:"verified"`
	CreatedAt   time.Time   `firestore:"createdAt" json:"created_at"`
}

// --- DTOs for screen-level requests ---

// RegisterRequest is validated locally before any network call is made.
type RegisterRequest struct {
	Email         string `validate:"required,email"`
	Password      string `validate:"required,min=6,max=72"`
	DisplayName   string `validate:"required,max=100"`
	AccountType   string `validate:"required,oneof=client freelancer"`
	AcceptedTerms bool   `validate:"eq=true"`
}

// UpdateProfileRequest carries the fields the edit-profile screens may change.
type UpdateProfileRequest struct {
	DisplayName string `validate:"required,max=100"`
	AvatarURL   string `validate:"omitempty,url"`
	Expertise   string `validate:"omitempty,max=200"`
	Title       string `validate:"omitempty,max=150"`
	Bio         string `validate:"omitempty,max=2000"`
	Phone       string `validate:"omitempty,max=50"`
}
