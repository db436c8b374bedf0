// File: internal/listing/model.go
package listing

import (
	"time"
)

// Listing is a freelancer's service offering, stored as one document.
type Listing struct {
	ID           string    `firestore:"id" json:"id"`
	FreelancerID string    `firestore:"freelancerId" json:"freelancer_id"`
	Title        string    `firestore:"title" json:"title"`
	Slug         string    `firestore:"slug" json:"slug"`
	Description  string    `firestore:"description" json:"description"`
	Category     string    `firestore:"category" json:"category"`
	Price        float64   `firestore:"price" json:"price"`
	DeliveryDays int       `firestore:"deliveryDays" json:"delivery_days"`
	ImageURL     string    `firestore:"imageUrl,omitempty" json:"image_url,omitempty"`
	IsActive     bool      `firestore:"isActive" json:"is_active"`
	CreatedAt    time.Time `firestore:"createdAt" json:"created_at"`
	ExpiresAt    time.Time `firestore:"expiresAt" json:"expires_at"`
}

// SearchParams is the search-filter bag carried by the search screen.
type SearchParams struct {
	Category string
	Keyword  string
	MaxPrice float64
	Limit    int
}

// --- DTOs for screen-level requests ---

// CreateListingRequest is validated locally before any document write.
type CreateListingRequest struct {
	Title        string  `validate:"required,max=150"`
	Description  string  `validate:"required,max=5000"`
	Category     string  `validate:"required,max=100"`
	Price        float64 `validate:"required,gt=0"`
	DeliveryDays int     `validate:"required,gt=0"`
	ImageURL     string  `validate:"omitempty,url"`
}

// UpdateListingRequest carries the editable listing fields.
type UpdateListingRequest struct {
	Title        string  `validate:"required,max=150"`
	Description  string  `validate:"required,max=5000"`
	Category     string  `validate:"required,max=100"`
	Price        float64 `validate:"required,gt=0"`
	DeliveryDays int     `validate:"required,gt=0"`
	ImageURL     string  `validate:"omitempty,url"`
	IsActive     bool
}
