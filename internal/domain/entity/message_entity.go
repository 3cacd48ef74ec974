package entity

import "time"

// Message is a direct message between two users. IsRead never flips back to false.
type Message struct {
	ID         string    `json:"id"`
	Content    string    `json:"content"`
	SenderID   string    `json:"senderId"`
	ReceiverID string    `json:"receiverId"`
	Timestamp  time.Time `json:"timestamp"`
	IsRead     bool      `json:"isRead"`
	ImageURI   string    `json:"imageUri,omitempty"`
}

// SendMessageRequest is the input of a send.
type SendMessageRequest struct {
	Content    string `json:"content"`
	ReceiverID string `json:"receiverId"`
	ImageURI   string `json:"imageUri,omitempty"`
}

// Conversation aggregates the thread with one counterpart.
// The conversation id is the counterpart's user id.
type Conversation struct {
	ID          string    `json:"id"`
	Participant User      `json:"participant"`
	LastMessage Message   `json:"lastMessage"`
	UnreadCount int       `json:"unreadCount"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ConversationList is returned by the conversations listing.
type ConversationList struct {
	Conversations []Conversation `json:"conversations"`
	Total         int            `json:"total"`
}

// Counterpart returns the other side of the message relative to viewerID.
func (m Message) Counterpart(viewerID string) string {
	if m.SenderID == viewerID {
		return m.ReceiverID
	}
	return m.SenderID
}

// Involves reports whether both users take part in the message.
func (m Message) Involves(a, b string) bool {
	return (m.SenderID == a && m.ReceiverID == b) || (m.SenderID == b && m.ReceiverID == a)
}
