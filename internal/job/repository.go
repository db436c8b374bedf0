// File: internal/job/repository.go
package job

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"worklink_app/internal/common"
)

const requestsCollection = "job_requests"

// Repository defines data access for job-request documents.
type Repository interface {
	Create(ctx context.Context, req *Request) error
	FindByID(ctx context.Context, id string) (*Request, error)
	UpdateStatus(ctx context.Context, id string, status Status) error
	FindByFreelancer(ctx context.Context, freelancerID string, status Status) ([]Request, error)
	FindByClient(ctx context.Context, clientID string) ([]Request, error)
}

// FirestoreRepository implements Repository against the document store.
// The by-freelancer and by-client queries order by creation time and need
// composite indexes.
type FirestoreRepository struct {
	client *firestore.Client
}

var _ Repository = (*FirestoreRepository)(nil)

// NewFirestoreRepository creates a new job-request repository.
func NewFirestoreRepository(client *firestore.Client) *FirestoreRepository {
	return &FirestoreRepository{client: client}
}

func (r *FirestoreRepository) Create(ctx context.Context, req *Request) error {
	_, err := r.client.Collection(requestsCollection).Doc(req.ID).Create(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to create job request document: %w", err)
	}
	return nil
}

func (r *FirestoreRepository) FindByID(ctx context.Context, id string) (*Request, error) {
	snap, err := r.client.Collection(requestsCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("failed to read job request document: %w", err)
	}

	var req Request
	if err := snap.DataTo(&req); err != nil {
		return nil, fmt.Errorf("failed to decode job request document: %w", err)
	}
	return &req, nil
}

func (r *FirestoreRepository) UpdateStatus(ctx context.Context, id string, newStatus Status) error {
	_, err := r.client.Collection(requestsCollection).Doc(id).Update(ctx, []firestore.Update{
		{Path: "status", Value: string(newStatus)},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return common.ErrNotFound
		}
		return fmt.Errorf("failed to update job request status: %w", err)
	}
	return nil
}

func (r *FirestoreRepository) FindByFreelancer(ctx context.Context, freelancerID string, filter Status) ([]Request, error) {
	q := r.client.Collection(requestsCollection).Where("freelancerId", "==", freelancerID)
	if filter != "" {
		q = q.Where("status", "==", string(filter))
	}
	q = q.OrderBy("createdAt", firestore.Desc)
	return r.collect(ctx, q)
}

func (r *FirestoreRepository) FindByClient(ctx context.Context, clientID string) ([]Request, error) {
	q := r.client.Collection(requestsCollection).
		Where("clientId", "==", clientID).
		OrderBy("createdAt", firestore.Desc)
	return r.collect(ctx, q)
}

func (r *FirestoreRepository) collect(ctx context.Context, q firestore.Query) ([]Request, error) {
	iter := q.Documents(ctx)
	defer iter.Stop()

	var requests []Request
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate job request query: %w", err)
		}
		var req Request
		if err := snap.DataTo(&req); err != nil {
			return nil, fmt.Errorf("failed to decode job request document: %w", err)
		}
		requests = append(requests, req)
	}
	return requests, nil
}
