package storage

import (
	"context"
	"sort"

	"github.com/oksasatya/creator-commerce/internal/domain/entity"
	"github.com/oksasatya/creator-commerce/internal/domain/repository"
	"github.com/oksasatya/creator-commerce/internal/infrastructure/kvstore"
)

type MessageRepository struct {
	messages collection[entity.Message]
	users    repository.UserRepository
	profiles repository.ProfileRepository
}

func NewMessageRepository(db *DB, users repository.UserRepository, profiles repository.ProfileRepository) *MessageRepository {
	return &MessageRepository{
		messages: newCollection[entity.Message](db, kvstore.KeyMessages, nil),
		users:    users,
		profiles: profiles,
	}
}

// ListConversations groups the viewer's messages by counterpart, newest first.
func (r *MessageRepository) ListConversations(ctx context.Context) ([]entity.Conversation, error) {
	viewer := r.messages.db.viewerID(ctx)
	byPeer := make(map[string]*entity.Conversation)
	var order []string

	for _, m := range r.messages.all(ctx) {
		if m.SenderID != viewer && m.ReceiverID != viewer {
			continue
		}
		peer := m.Counterpart(viewer)
		conv, ok := byPeer[peer]
		if !ok {
			conv = &entity.Conversation{ID: peer}
			byPeer[peer] = conv
			order = append(order, peer)
		}
		if !m.Timestamp.Before(conv.LastMessage.Timestamp) {
			conv.LastMessage = m
			conv.UpdatedAt = m.Timestamp
		}
		if m.ReceiverID == viewer && !m.IsRead {
			conv.UnreadCount++
		}
	}

	out := make([]entity.Conversation, 0, len(order))
	for _, peer := range order {
		conv := byPeer[peer]
		conv.Participant = r.participant(ctx, peer)
		out = append(out, *conv)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].UpdatedAt.After(out[j].UpdatedAt) })
	return out, nil
}

// ListMessages returns the thread with one counterpart, oldest first.
func (r *MessageRepository) ListMessages(ctx context.Context, counterpartID string) ([]entity.Message, error) {
	viewer := r.messages.db.viewerID(ctx)
	var out []entity.Message
	for _, m := range r.messages.all(ctx) {
		if m.Involves(viewer, counterpartID) {
			out = append(out, m)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Timestamp.Before(out[j].Timestamp) })
	return out, nil
}

func (r *MessageRepository) Send(ctx context.Context, req entity.SendMessageRequest) (entity.Message, error) {
	db := r.messages.db
	m := entity.Message{
		ID:         db.NewID(),
		Content:    req.Content,
		SenderID:   db.viewerID(ctx),
		ReceiverID: req.ReceiverID,
		Timestamp:  db.Now(),
		ImageURI:   req.ImageURI,
	}
	err := r.messages.mutate(ctx, func(items []entity.Message) ([]entity.Message, error) {
		return append(items, m), nil
	})
	if err != nil {
		return entity.Message{}, err
	}
	return m, nil
}

// MarkAsRead is monotonic: a read message stays read. Only the receiver
// can mark a message; anyone else gets ErrNotFound.
func (r *MessageRepository) MarkAsRead(ctx context.Context, messageID string) error {
	viewer := r.messages.db.viewerID(ctx)
	return r.messages.mutate(ctx, func(items []entity.Message) ([]entity.Message, error) {
		i, ok := find(items, func(m entity.Message) bool { return m.ID == messageID && m.ReceiverID == viewer })
		if !ok {
			return nil, repository.ErrNotFound
		}
		items[i].IsRead = true
		return items, nil
	})
}

func (r *MessageRepository) participant(ctx context.Context, id string) entity.User {
	if r.users != nil {
		if u, err := r.users.GetByID(ctx, id); err == nil && u != nil {
			return *u
		}
	}
	if r.profiles != nil {
		if p, err := r.profiles.GetByID(ctx, id); err == nil && p != nil {
			return entity.User{ID: p.ID, Name: p.Name, Avatar: p.Avatar, Username: p.Handle, Specialty: p.Category}
		}
	}
	return entity.User{ID: id}
}

var _ repository.MessageRepository = (*MessageRepository)(nil)
