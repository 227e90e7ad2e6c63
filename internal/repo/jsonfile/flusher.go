package jsonfile

import (
	"context"
	"fmt"

	"github.com/Brooklyn-808/friendr/internal/domain/model"
)

type ProfileSource interface {
	Export() []model.Profile
}

type LikeSource interface {
	Export() map[string][]string
}

type SeenSource interface {
	Export() map[string][]string
}

type NotificationSource interface {
	Export() map[string][]model.Notification
}

type ConversationSource interface {
	Export() map[string][]model.Message
}

// Flusher assembles the current in-memory state into a Snapshot and hands it
// to the store. Services call Flush after every mutation; if it fails they
// roll the mutation back, so durable and in-memory state never diverge.
type Flusher struct {
	store         *Store
	profiles      ProfileSource
	likes         LikeSource
	seen          SeenSource
	notifications NotificationSource
	conversations ConversationSource
}

type Sources struct {
	Profiles      ProfileSource
	Likes         LikeSource
	Seen          SeenSource
	Notifications NotificationSource
	Conversations ConversationSource
}

func NewFlusher(store *Store, src Sources) *Flusher {
	return &Flusher{
		store:         store,
		profiles:      src.Profiles,
		likes:         src.Likes,
		seen:          src.Seen,
		notifications: src.Notifications,
		conversations: src.Conversations,
	}
}

func (f *Flusher) Flush(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if f.store == nil {
		return fmt.Errorf("snapshot store is nil")
	}

	snap := EmptySnapshot()
	if f.profiles != nil {
		snap.Profiles = f.profiles.Export()
	}
	if f.likes != nil {
		snap.Likes = f.likes.Export()
	}
	if f.seen != nil {
		snap.Seen = f.seen.Export()
	}
	if f.notifications != nil {
		snap.Notifications = f.notifications.Export()
	}
	if f.conversations != nil {
		snap.Conversations = f.conversations.Export()
	}

	return f.store.Save(snap)
}
