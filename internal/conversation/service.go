// File: internal/conversation/service.go
package conversation

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"worklink_app/internal/common"
)

// NameResolver resolves a display name for an identity. Used for the
// best-effort participant-name backfill.
type NameResolver interface {
	DisplayName(ctx context.Context, uid string) (string, error)
}

// Service owns conversation lifecycle and message flow.
type Service struct {
	repo   Repository
	names  NameResolver
	logger *zap.Logger
}

// NewService creates a new conversation service. names may be nil, in which
// case missing participant names are never backfilled.
func NewService(repo Repository, names NameResolver, logger *zap.Logger) *Service {
	return &Service{
		repo:   repo,
		names:  names,
		logger: logger.Named("conversation"),
	}
}

// GetOrCreate returns the one conversation for the unordered pair
// (selfID, otherID), creating it on first contact. Calling it twice with the
// same pair, in either order, yields the same conversation id.
func (s *Service) GetOrCreate(ctx context.Context, selfID, selfName, otherID, otherName string) (*Conversation, error) {
	if selfID == otherID {
		return nil, common.ErrInvalidInput.WithDetails("You cannot start a conversation with yourself.")
	}

	existing, err := s.repo.FindByParticipants(ctx, selfID, otherID)
	if err == nil {
		s.backfillNames(ctx, existing)
		return existing, nil
	}
	if !errors.Is(err, common.ErrNotFound) {
		return nil, err
	}

	now := time.Now().UTC()
	c := &Conversation{
		ID:           uuid.New().String(),
		Participants: []string{selfID, otherID},
		ParticipantNames: map[string]string{
			selfID:  selfName,
			otherID: otherName,
		},
		UnreadCounts: map[string]int64{
			selfID:  0,
			otherID: 0,
		},
		LastMessageAt: now,
		CreatedAt:     now,
	}

	if err := s.repo.Create(ctx, c); err != nil {
		s.logger.Error("Failed to create conversation", zap.Error(err),
			zap.String("selfID", selfID), zap.String("otherID", otherID))
		return nil, err
	}
	s.logger.Info("Conversation created", zap.String("conversationID", c.ID))
	return c, nil
}

// Send stores a message and updates the conversation atomically: preview
// fields move forward and the recipient's unread counter is incremented with
// the store's increment primitive, so concurrent sends from both sides
// cannot lose an update.
func (s *Service) Send(ctx context.Context, convID, senderID, text string) (*Message, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, common.ErrInvalidInput.WithDetails("Message text must not be empty.")
	}

	c, err := s.repo.FindByID(ctx, convID)
	if err != nil {
		return nil, err
	}
	if !c.HasParticipant(senderID) {
		return nil, common.ErrForbidden.WithDetails("Only a participant may send messages.")
	}
	recipientID := c.Counterpart(senderID)

	msg := &Message{
		ID:       uuid.New().String(),
		SenderID: senderID,
		Text:     text,
		SentAt:   time.Now().UTC(),
	}

	if err := s.repo.AppendMessage(ctx, convID, msg, recipientID); err != nil {
		s.logger.Error("Failed to send message", zap.Error(err), zap.String("conversationID", convID))
		return nil, err
	}
	return msg, nil
}

// MarkRead zeroes the opener's unread counter for one conversation. The
// other participant's counter is untouched.
func (s *Service) MarkRead(ctx context.Context, convID, uid string) error {
	return s.repo.MarkRead(ctx, convID, uid)
}

// Messages returns a conversation's messages, oldest first.
func (s *Service) Messages(ctx context.Context, convID string, limit int) ([]Message, error) {
	return s.repo.Messages(ctx, convID, limit)
}

// backfillNames fills missing participant display names. Best effort: any
// failure is logged and the conversation proceeds with a blank name.
func (s *Service) backfillNames(ctx context.Context, c *Conversation) {
	if s.names == nil {
		return
	}
	for _, uid := range c.Participants {
		if c.ParticipantNames[uid] != "" {
			continue
		}
		name, err := s.names.DisplayName(ctx, uid)
		if err != nil || name == "" {
			s.logger.Warn("Participant name backfill failed",
				zap.String("conversationID", c.ID), zap.String("uid", uid), zap.Error(err))
			continue
		}
		if c.ParticipantNames == nil {
			c.ParticipantNames = make(map[string]string)
		}
		c.ParticipantNames[uid] = name
		if err := s.repo.SetParticipantName(ctx, c.ID, uid, name); err != nil {
			s.logger.Warn("Failed to persist backfilled participant name",
				zap.String("conversationID", c.ID), zap.String("uid", uid), zap.Error(err))
		}
	}
}
