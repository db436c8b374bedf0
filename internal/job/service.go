// File: internal/job/service.go
package job

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"worklink_app/internal/common"
	"worklink_app/internal/config"
)

// Service owns job-request lifecycle and the dashboard stats load.
type Service struct {
	repo   Repository
	cfg    *config.Config
	logger *zap.Logger
}

// NewService creates a new job service.
func NewService(repo Repository, cfg *config.Config, logger *zap.Logger) *Service {
	return &Service{
		repo:   repo,
		cfg:    cfg,
		logger: logger.Named("job"),
	}
}

// Send validates and stores a new job request from a client to a freelancer.
func (s *Service) Send(ctx context.Context, clientID, clientName string, req SendRequest) (*Request, error) {
	if err := common.CheckStruct(req); err != nil {
		return nil, err
	}
	if req.FreelancerID == clientID {
		return nil, common.ErrInvalidInput.WithDetails("You cannot send a job request to yourself.")
	}

	request := &Request{
		ID:           uuid.New().String(),
		ClientID:     clientID,
		ClientName:   clientName,
		FreelancerID: req.FreelancerID,
		ListingID:    req.ListingID,
		Title:        req.Title,
		Description:  req.Description,
		OfferedPrice: req.OfferedPrice,
		Status:       StatusPending,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, request); err != nil {
		s.logger.Error("Failed to create job request", zap.Error(err),
			zap.String("clientID", clientID), zap.String("freelancerID", req.FreelancerID))
		return nil, err
	}

	s.logger.Info("Job request sent",
		zap.String("requestID", request.ID),
		zap.String("clientID", clientID),
		zap.String("freelancerID", req.FreelancerID),
	)
	return request, nil
}

// Pending returns a freelancer's pending requests, newest first.
func (s *Service) Pending(ctx context.Context, freelancerID string) ([]Request, error) {
	return s.repo.FindByFreelancer(ctx, freelancerID, StatusPending)
}

// SentByClient returns every request a client has sent.
func (s *Service) SentByClient(ctx context.Context, clientID string) ([]Request, error) {
	return s.repo.FindByClient(ctx, clientID)
}

// Get fetches a single request.
func (s *Service) Get(ctx context.Context, id string) (*Request, error) {
	return s.repo.FindByID(ctx, id)
}

// Respond records the freelancer's accept/decline decision. Only the
// addressed freelancer may respond, and only while the request is pending.
func (s *Service) Respond(ctx context.Context, freelancerID, requestID string, accept bool) error {
	request, err := s.repo.FindByID(ctx, requestID)
	if err != nil {
		return err
	}
	if request.FreelancerID != freelancerID {
		return common.ErrForbidden.WithDetails("Only the addressed freelancer may respond.")
	}
	if request.Status != StatusPending {
		return common.ErrConflict.WithDetails("This request has already been answered.")
	}

	newStatus := StatusDeclined
	if accept {
		newStatus = StatusAccepted
	}
	return s.repo.UpdateStatus(ctx, requestID, newStatus)
}

// DashboardStats loads a freelancer's request counts, racing the reads
// against the configured timeout. On timeout the dashboard renders zeroed
// stats rather than an error.
func (s *Service) DashboardStats(ctx context.Context, freelancerID string) Stats {
	stats, ok, err := common.RaceTimeout(ctx, s.cfg.StatsLoadTimeout, Stats{}, func(ctx context.Context) (Stats, error) {
		all, err := s.repo.FindByFreelancer(ctx, freelancerID, "")
		if err != nil {
			return Stats{}, err
		}
		var out Stats
		for _, req := range all {
			switch req.Status {
			case StatusPending:
				out.Pending++
			case StatusAccepted:
				out.Accepted++
			case StatusDeclined:
				out.Declined++
			}
		}
		return out, nil
	})
	if err != nil {
		s.logger.Error("Dashboard stats load failed", zap.Error(err), zap.String("freelancerID", freelancerID))
		return Stats{}
	}
	if !ok {
		s.logger.Warn("Dashboard stats load timed out, rendering defaults", zap.String("freelancerID", freelancerID))
		return Stats{}
	}
	return stats
}
