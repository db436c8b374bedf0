// File: internal/user/service.go
package user

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"worklink_app/internal/common"
	"worklink_app/internal/identity"
)

// AuthGateway is the slice of the identity provider the user service needs.
// *identity.FirebaseProvider satisfies it.
type AuthGateway interface {
	SignUp(ctx context.Context, email, password string) (*identity.Session, error)
	DeleteIdentity(ctx context.Context, uid string) error
	SendVerificationEmail(ctx context.Context) error
	DeleteAccount(ctx context.Context) error
}

// Service owns profile lifecycle: the two-phase registration saga, profile
// reads and edits, and account deletion.
type Service struct {
	repo   Repository
	auth   AuthGateway
	logger *zap.Logger
}

// NewService creates a new user service.
func NewService(repo Repository, auth AuthGateway, logger *zap.Logger) *Service {
	return &Service{
		repo:   repo,
		auth:   auth,
		logger: logger.Named("user"),
	}
}

// Register creates an identity at the auth provider and then the matching
// profile document. If the profile write fails, the just-created identity is
// deleted so no orphaned authentication record survives, and the original
// error is surfaced.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*Profile, *identity.Session, error) {
	if err := common.CheckStruct(req); err != nil {
		return nil, nil, err
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	session, err := s.auth.SignUp(ctx, email, req.Password)
	if err != nil {
		return nil, nil, err
	}

	profile := &Profile{
		ID:          session.UID,
		Email:       email,
		DisplayName: req.DisplayName,
		AccountType: AccountType(req.AccountType),
		Verified:    false,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, profile); err != nil {
		s.logger.Error("Profile creation failed after identity creation, compensating",
			zap.Error(err), zap.String("uid", session.UID))
		if delErr := s.auth.DeleteIdentity(ctx, session.UID); delErr != nil {
			// The identity is now orphaned; nothing more we can do locally.
			s.logger.Error("Compensating identity deletion failed",
				zap.Error(delErr), zap.String("uid", session.UID))
		}
		return nil, nil, err
	}

	if err := s.auth.SendVerificationEmail(ctx); err != nil {
		// Best effort: the verification screen can re-send.
		s.logger.Warn("Failed to send verification email after registration",
			zap.Error(err), zap.String("uid", session.UID))
	}

	s.logger.Info("User registered", zap.String("uid", session.UID), zap.String("accountType", req.AccountType))
	return profile, session, nil
}

// GetProfile fetches the profile document for an identity.
func (s *Service) GetProfile(ctx context.Context, uid string) (*Profile, error) {
	return s.repo.FindByID(ctx, uid)
}

// DisplayName resolves an identity's display name.
func (s *Service) DisplayName(ctx context.Context, uid string) (string, error) {
	profile, err := s.repo.FindByID(ctx, uid)
	if err != nil {
		return "", err
	}
	return profile.DisplayName, nil
}

// UpdateProfile applies an edit-profile submission.
func (s *Service) UpdateProfile(ctx context.Context, uid string, req UpdateProfileRequest) (*Profile, error) {
	if err := common.CheckStruct(req); err != nil {
		return nil, err
	}

	profile, err := s.repo.FindByID(ctx, uid)
	if err != nil {
		return nil, err
	}

	profile.DisplayName = req.DisplayName
	profile.AvatarURL = req.AvatarURL
	profile.Expertise = req.Expertise
	profile.Title = req.Title
	profile.Bio = req.Bio
	profile.Phone = req.Phone

	if err := s.repo.Update(ctx, profile); err != nil {
		s.logger.Error("Failed to update profile", zap.Error(err), zap.String("uid", uid))
		return nil, err
	}
	return profile, nil
}

// DeleteAccount removes the identity behind the current session at the
// provider. The profile document and the user's listings and conversations
// are left in place as soft orphans; only the authentication record goes
// away.
func (s *Service) DeleteAccount(ctx context.Context) error {
	if err := s.auth.DeleteAccount(ctx); err != nil {
		return err
	}
	s.logger.Info("Account deleted; profile document left orphaned")
	return nil
}
