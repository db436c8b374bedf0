// File: internal/user/repository.go
package user

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"worklink_app/internal/common"
)

const profilesCollection = "profiles"

// Repository defines data access for profile documents.
type Repository interface {
	Create(ctx context.Context, profile *Profile) error
	FindByID(ctx context.Context, uid string) (*Profile, error)
	Update(ctx context.Context, profile *Profile) error
}

// FirestoreRepository implements Repository against the document store.
type FirestoreRepository struct {
	client *firestore.Client
}

var _ Repository = (*FirestoreRepository)(nil)

// NewFirestoreRepository creates a new profile repository.
func NewFirestoreRepository(client *firestore.Client) *FirestoreRepository {
	return &FirestoreRepository{client: client}
}

func (r *FirestoreRepository) Create(ctx context.Context, profile *Profile) error {
	_, err := r.client.Collection(profilesCollection).Doc(profile.ID).Create(ctx, profile)
	if err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return common.ErrConflict.WithDetails("A profile already exists for this identity.")
		}
		return fmt.Errorf("failed to create profile document: %w", err)
	}
	return nil
}

func (r *FirestoreRepository) FindByID(ctx context.Context, uid string) (*Profile, error) {
	snap, err := r.client.Collection(profilesCollection).Doc(uid).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("failed to read profile document: %w", err)
	}

	var profile Profile
	if err := snap.DataTo(&profile); err != nil {
		return nil, fmt.Errorf("failed to decode profile document: %w", err)
	}
	return &profile, nil
}

func (r *FirestoreRepository) Update(ctx context.Context, profile *Profile) error {
	_, err := r.client.Collection(profilesCollection).Doc(profile.ID).Set(ctx, profile)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return common.ErrNotFound
		}
		return fmt.Errorf("failed to update profile document: %w", err)
	}
	return nil
}
