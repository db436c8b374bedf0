// File: internal/listing/service.go
package listing

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"go.uber.org/zap"

	"worklink_app/internal/common"
	"worklink_app/internal/config"
)

// Service owns listing lifecycle and queries.
type Service struct {
	repo   Repository
	cfg    *config.Config
	logger *zap.Logger
}

// NewService creates a new listing service.
func NewService(repo Repository, cfg *config.Config, logger *zap.Logger) *Service {
	return &Service{
		repo:   repo,
		cfg:    cfg,
		logger: logger.Named("listing"),
	}
}

// Create validates and stores a new listing. New listings are active by
// default and expire after the configured lifespan.
func (s *Service) Create(ctx context.Context, freelancerID string, req CreateListingRequest) (*Listing, error) {
	if err := common.CheckStruct(req); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	l := &Listing{
		ID:           uuid.New().String(),
		FreelancerID: freelancerID,
		Title:        req.Title,
		Slug:         slug.Make(req.Title),
		Description:  req.Description,
		Category:     req.Category,
		Price:        req.Price,
		DeliveryDays: req.DeliveryDays,
		ImageURL:     req.ImageURL,
		IsActive:     true,
		CreatedAt:    now,
		ExpiresAt:    now.AddDate(0, 0, s.cfg.DefaultListingLifespanDays),
	}

	if err := s.repo.Create(ctx, l); err != nil {
		s.logger.Error("Failed to create listing", zap.Error(err), zap.String("freelancerID", freelancerID))
		return nil, err
	}

	s.logger.Info("Listing created", zap.String("listingID", l.ID), zap.String("freelancerID", freelancerID))
	return l, nil
}

// Update applies an edit-listing submission. Only the owner may edit.
func (s *Service) Update(ctx context.Context, freelancerID, listingID string, req UpdateListingRequest) (*Listing, error) {
	if err := common.CheckStruct(req); err != nil {
		return nil, err
	}

	l, err := s.repo.FindByID(ctx, listingID)
	if err != nil {
		return nil, err
	}
	if l.FreelancerID != freelancerID {
		return nil, common.ErrForbidden.WithDetails("Only the listing owner may edit it.")
	}

	l.Title = req.Title
	l.Slug = slug.Make(req.Title)
	l.Description = req.Description
	l.Category = req.Category
	l.Price = req.Price
	l.DeliveryDays = req.DeliveryDays
	l.ImageURL = req.ImageURL
	l.IsActive = req.IsActive

	if err := s.repo.Update(ctx, l); err != nil {
		s.logger.Error("Failed to update listing", zap.Error(err), zap.String("listingID", listingID))
		return nil, err
	}
	return l, nil
}

// Delete removes a listing. Only the owner may delete.
func (s *Service) Delete(ctx context.Context, freelancerID, listingID string) error {
	l, err := s.repo.FindByID(ctx, listingID)
	if err != nil {
		return err
	}
	if l.FreelancerID != freelancerID {
		return common.ErrForbidden.WithDetails("Only the listing owner may delete it.")
	}
	return s.repo.Delete(ctx, listingID)
}

// Get fetches a single listing.
func (s *Service) Get(ctx context.Context, listingID string) (*Listing, error) {
	return s.repo.FindByID(ctx, listingID)
}

// MyListings returns a freelancer's own listings, newest first.
func (s *Service) MyListings(ctx context.Context, freelancerID string) ([]Listing, error) {
	return s.repo.FindByFreelancer(ctx, freelancerID)
}

// Search runs the client-side search with the given filter bag.
func (s *Service) Search(ctx context.Context, params SearchParams) ([]Listing, error) {
	return s.repo.Search(ctx, params)
}

// LoadHomeFeed fetches the home-screen feed, racing the read against the
// configured timeout. On timeout the screen renders with an empty feed
// rather than an error.
func (s *Service) LoadHomeFeed(ctx context.Context, limit int) []Listing {
	feed, ok, err := common.RaceTimeout(ctx, s.cfg.FeedLoadTimeout, []Listing(nil), func(ctx context.Context) ([]Listing, error) {
		return s.repo.FindActive(ctx, limit)
	})
	if err != nil {
		s.logger.Error("Home feed load failed", zap.Error(err))
		return nil
	}
	if !ok {
		s.logger.Warn("Home feed load timed out, rendering empty feed")
		return nil
	}
	return feed
}

// ExpireListings deactivates every active listing past its expiry. Run by
// the background job.
func (s *Service) ExpireListings(ctx context.Context) (int, error) {
	expired, err := s.repo.FindExpired(ctx, time.Now().UTC())
	if err != nil {
		return 0, err
	}

	count := 0
	for i := range expired {
		l := &expired[i]
		l.IsActive = false
		if err := s.repo.Update(ctx, l); err != nil {
			s.logger.Error("Failed to deactivate expired listing", zap.Error(err), zap.String("listingID", l.ID))
			continue
		}
		count++
	}
	return count, nil
}
