// File: internal/conversation/repository.go
package conversation

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"worklink_app/internal/common"
)

const (
	conversationsCollection = "conversations"
	messagesSubcollection   = "messages"
)

// Repository defines data access for conversation documents.
type Repository interface {
	Create(ctx context.Context, c *Conversation) error
	FindByID(ctx context.Context, id string) (*Conversation, error)
	FindByParticipants(ctx context.Context, a, b string) (*Conversation, error)
	// AppendMessage atomically stores the message, updates the
	// conversation preview fields, and increments the recipient's unread
	// counter. Concurrent sends must not lose increments.
	AppendMessage(ctx context.Context, convID string, msg *Message, recipientID string) error
	// MarkRead zeroes one participant's unread counter, leaving the
	// other's untouched.
	MarkRead(ctx context.Context, convID, uid string) error
	Messages(ctx context.Context, convID string, limit int) ([]Message, error)
	SetParticipantName(ctx context.Context, convID, uid, name string) error
	// Watch delivers the full current conversation set for uid on first
	// receive and again on every change, until ctx is cancelled.
	Watch(ctx context.Context, uid string) (<-chan []Conversation, error)
}

// FirestoreRepository implements Repository against the document store.
type FirestoreRepository struct {
	client *firestore.Client
}

var _ Repository = (*FirestoreRepository)(nil)

// NewFirestoreRepository creates a new conversation repository.
func NewFirestoreRepository(client *firestore.Client) *FirestoreRepository {
	return &FirestoreRepository{client: client}
}

func (r *FirestoreRepository) Create(ctx context.Context, c *Conversation) error {
	_, err := r.client.Collection(conversationsCollection).Doc(c.ID).Create(ctx, c)
	if err != nil {
		return fmt.Errorf("failed to create conversation document: %w", err)
	}
	return nil
}

func (r *FirestoreRepository) FindByID(ctx context.Context, id string) (*Conversation, error) {
	snap, err := r.client.Collection(conversationsCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("failed to read conversation document: %w", err)
	}

	var c Conversation
	if err := snap.DataTo(&c); err != nil {
		return nil, fmt.Errorf("failed to decode conversation document: %w", err)
	}
	return &c, nil
}

func (r *FirestoreRepository) FindByParticipants(ctx context.Context, a, b string) (*Conversation, error) {
	// array-contains allows one filter value; the second participant is
	// matched client-side over the handful of conversations a holds.
	iter := r.client.Collection(conversationsCollection).
		Where("participants", "array-contains", a).
		Documents(ctx)
	defer iter.Stop()

	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate conversation query: %w", err)
		}
		var c Conversation
		if err := snap.DataTo(&c); err != nil {
			return nil, fmt.Errorf("failed to decode conversation document: %w", err)
		}
		if c.HasParticipant(b) {
			return &c, nil
		}
	}
	return nil, common.ErrNotFound
}

func (r *FirestoreRepository) AppendMessage(ctx context.Context, convID string, msg *Message, recipientID string) error {
	convRef := r.client.Collection(conversationsCollection).Doc(convID)
	msgRef := convRef.Collection(messagesSubcollection).Doc(msg.ID)

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		if _, err := tx.Get(convRef); err != nil {
			return err
		}
		if err := tx.Create(msgRef, msg); err != nil {
			return err
		}
		return tx.Update(convRef, []firestore.Update{
			{Path: "lastMessage", Value: msg.Text},
			{Path: "lastMessageAt", Value: msg.SentAt},
			{FieldPath: firestore.FieldPath{"unreadCounts", recipientID}, Value: firestore.Increment(1)},
		})
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return common.ErrNotFound
		}
		return fmt.Errorf("failed to append message: %w", err)
	}
	return nil
}

func (r *FirestoreRepository) MarkRead(ctx context.Context, convID, uid string) error {
	_, err := r.client.Collection(conversationsCollection).Doc(convID).Update(ctx, []firestore.Update{
		{FieldPath: firestore.FieldPath{"unreadCounts", uid}, Value: int64(0)},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return common.ErrNotFound
		}
		return fmt.Errorf("failed to mark conversation read: %w", err)
	}
	return nil
}

func (r *FirestoreRepository) Messages(ctx context.Context, convID string, limit int) ([]Message, error) {
	q := r.client.Collection(conversationsCollection).Doc(convID).
		Collection(messagesSubcollection).
		OrderBy("sentAt", firestore.Asc)
	if limit > 0 {
		q = q.Limit(limit)
	}

	iter := q.Documents(ctx)
	defer iter.Stop()

	var messages []Message
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate message query: %w", err)
		}
		var m Message
		if err := snap.DataTo(&m); err != nil {
			return nil, fmt.Errorf("failed to decode message document: %w", err)
		}
		messages = append(messages, m)
	}
	return messages, nil
}

func (r *FirestoreRepository) SetParticipantName(ctx context.Context, convID, uid, name string) error {
	_, err := r.client.Collection(conversationsCollection).Doc(convID).Update(ctx, []firestore.Update{
		{FieldPath: firestore.FieldPath{"participantNames", uid}, Value: name},
	})
	if err != nil {
		return fmt.Errorf("failed to set participant name: %w", err)
	}
	return nil
}

func (r *FirestoreRepository) Watch(ctx context.Context, uid string) (<-chan []Conversation, error) {
	snapIter := r.client.Collection(conversationsCollection).
		Where("participants", "array-contains", uid).
		Snapshots(ctx)

	ch := make(chan []Conversation)
	go func() {
		defer close(ch)
		defer snapIter.Stop()
		for {
			qs, err := snapIter.Next()
			if err != nil {
				// Cancelled subscription or terminal stream error.
				return
			}
			docs, err := qs.Documents.GetAll()
			if err != nil {
				continue
			}
			convs := make([]Conversation, 0, len(docs))
			for _, snap := range docs {
				var c Conversation
				if err := snap.DataTo(&c); err != nil {
					continue
				}
				convs = append(convs, c)
			}
			select {
			case ch <- convs:
			case <-ctx.Done():
				return
			}
		}
	}()
	return ch, nil
}
