// File: internal/listing/repository.go
package listing

import (
	"context"
	"fmt"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"worklink_app/internal/common"
)

const listingsCollection = "listings"

// Repository defines data access for listing documents.
type Repository interface {
	Create(ctx context.Context, l *Listing) error
	FindByID(ctx context.Context, id string) (*Listing, error)
	Update(ctx context.Context, l *Listing) error
	Delete(ctx context.Context, id string) error
	FindByFreelancer(ctx context.Context, freelancerID string) ([]Listing, error)
	FindActive(ctx context.Context, limit int) ([]Listing, error)
	Search(ctx context.Context, params SearchParams) ([]Listing, error)
	FindExpired(ctx context.Context, now time.Time) ([]Listing, error)
}

// FirestoreRepository implements Repository against the document store.
//
// The freelancer, search, and expiry queries combine an equality filter with
// an order-by on another field; each requires a pre-declared composite index.
type FirestoreRepository struct {
	client *firestore.Client
}

var _ Repository = (*FirestoreRepository)(nil)

// NewFirestoreRepository creates a new listing repository.
func NewFirestoreRepository(client *firestore.Client) *FirestoreRepository {
	return &FirestoreRepository{client: client}
}

func (r *FirestoreRepository) Create(ctx context.Context, l *Listing) error {
	_, err := r.client.Collection(listingsCollection).Doc(l.ID).Create(ctx, l)
	if err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return common.ErrConflict.WithDetails("A listing with this id already exists.")
		}
		return fmt.Errorf("failed to create listing document: %w", err)
	}
	return nil
}

func (r *FirestoreRepository) FindByID(ctx context.Context, id string) (*Listing, error) {
	snap, err := r.client.Collection(listingsCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("failed to read listing document: %w", err)
	}

	var l Listing
	if err := snap.DataTo(&l); err != nil {
		return nil, fmt.Errorf("failed to decode listing document: %w", err)
	}
	return &l, nil
}

func (r *FirestoreRepository) Update(ctx context.Context, l *Listing) error {
	_, err := r.client.Collection(listingsCollection).Doc(l.ID).Set(ctx, l)
	if err != nil {
		return fmt.Errorf("failed to update listing document: %w", err)
	}
	return nil
}

func (r *FirestoreRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection(listingsCollection).Doc(id).Delete(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete listing document: %w", err)
	}
	return nil
}

func (r *FirestoreRepository) FindByFreelancer(ctx context.Context, freelancerID string) ([]Listing, error) {
	q := r.client.Collection(listingsCollection).
		Where("freelancerId", "==", freelancerID).
		OrderBy("createdAt", firestore.Desc)
	return r.collect(ctx, q)
}

func (r *FirestoreRepository) FindActive(ctx context.Context, limit int) ([]Listing, error) {
	q := r.client.Collection(listingsCollection).
		Where("isActive", "==", true).
		OrderBy("createdAt", firestore.Desc).
		Limit(limit)
	return r.collect(ctx, q)
}

func (r *FirestoreRepository) Search(ctx context.Context, params SearchParams) ([]Listing, error) {
	q := r.client.Collection(listingsCollection).Where("isActive", "==", true)
	if params.Category != "" {
		q = q.Where("category", "==", params.Category)
	}
	if params.MaxPrice > 0 {
		q = q.Where("price", "<=", params.MaxPrice)
	}
	q = q.OrderBy("price", firestore.Asc)
	if params.Limit > 0 {
		q = q.Limit(params.Limit)
	}

	results, err := r.collect(ctx, q)
	if err != nil {
		return nil, err
	}
	if params.Keyword == "" {
		return results, nil
	}

	// Keyword narrowing happens client-side; the document store has no
	// substring filter.
	filtered := results[:0]
	for _, l := range results {
		if containsFold(l.Title, params.Keyword) || containsFold(l.Description, params.Keyword) {
			filtered = append(filtered, l)
		}
	}
	return filtered, nil
}

func (r *FirestoreRepository) FindExpired(ctx context.Context, now time.Time) ([]Listing, error) {
	q := r.client.Collection(listingsCollection).
		Where("isActive", "==", true).
		Where("expiresAt", "<", now)
	return r.collect(ctx, q)
}

func (r *FirestoreRepository) collect(ctx context.Context, q firestore.Query) ([]Listing, error) {
	iter := q.Documents(ctx)
	defer iter.Stop()

	var listings []Listing
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate listing query: %w", err)
		}
		var l Listing
		if err := snap.DataTo(&l); err != nil {
			return nil, fmt.Errorf("failed to decode listing document: %w", err)
		}
		listings = append(listings, l)
	}
	return listings, nil
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
