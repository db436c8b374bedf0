// File: internal/conversation/model.go
package conversation

import "time"

// Conversation is one thread between exactly two identities. At most one
// conversation exists per unordered pair, enforced by a lookup before
// create. UnreadCounts maps participant id to that participant's unread
// message count.
type Conversation struct {
	ID               string            `firestore:"id" json:"id"`
	Participants     []string          `firestore:"participants" json:"participants"`
	ParticipantNames map[string]string `firestore:"participantNames" json:"participant_names"`
	LastMessage      string            `firestore:"lastMessage,omitempty" json:"last_message,omitempty"`
	LastMessageAt    time.Time         `firestore:"lastMessageAt" json:"last_message_at"`
	UnreadCounts     map[string]int64  `firestore:"unreadCounts" json:"unread_counts"`
	CreatedAt        time.Time         `firestore:"createdAt" json:"created_at"`
}

// UnreadFor returns the unread count for one participant.
func (c *Conversation) UnreadFor(uid string) int64 {
	if c.UnreadCounts == nil {
		return 0
	}
	return c.UnreadCounts[uid]
}

// Counterpart returns the other participant's id, or "" when uid is not a
// participant.
func (c *Conversation) Counterpart(uid string) string {
	for _, p := range c.Participants {
		if p != uid {
			return p
		}
	}
	return ""
}

// HasParticipant reports whether uid is one of the two participants.
func (c *Conversation) HasParticipant(uid string) bool {
	for _, p := range c.Participants {
		if p == uid {
			return true
		}
	}
	return false
}

// Message is one chat message, stored in the conversation's subcollection.
type Message struct {
	ID       string    `firestore:"id" json:"id"`
	SenderID string    `firestore:"senderId" json:"sender_id"`
	Text     string    `firestore:"text" json:"text"`
	SentAt   time.Time `firestore:"sentAt" json:"sent_at"`
}
