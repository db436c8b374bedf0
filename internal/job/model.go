// File: internal/job/model.go
package job

import "time"

// Status is the lifecycle state of a job request.
type Status string

const (
	StatusPending  Status = "pending"
	StatusAccepted Status = "accepted"
	StatusDeclined Status = "declined"
)

// Request is a client's job offer to a freelancer. Each request is its own
// document: two clients offering the same freelancer produce two independent
// records, each retaining its own client id and offered price.
type Request struct {
	ID           string    `firestore:"id" json:"id"`
	ClientID     string    `firestore:"clientId" json:"client_id"`
	ClientName   string    `firestore:"clientName" json:"client_name"`
	FreelancerID string    `firestore:"freelancerId" json:"freelancer_id"`
	ListingID    string    `firestore:"listingId,omitempty" json:"listing_id,omitempty"`
	Title        string    `firestore:"title" json:"title"`
	Description  string    `firestore:"description" json:"description"`
	OfferedPrice float64   `firestore:"offeredPrice" json:"offered_price"`
	Status       Status    `firestore:"status" json:"status"`
	CreatedAt    time.Time `firestore:"createdAt" json:"created_at"`
}

// Stats summarizes a freelancer's requests for the dashboard screen.
type Stats struct {
	Pending  int `json:"pending"`
	Accepted int `json:"accepted"`
	Declined int `json:"declined"`
}

// SendRequest is validated locally before the document write.
type SendRequest struct {
	FreelancerID string  `validate:"required"`
	ListingID    string  `validate:"omitempty"`
	Title        string  `validate:"required,max=150"`
	Description  string  `validate:"required,max=5000"`
	OfferedPrice float64 `validate:"required,gt=0"`
}
