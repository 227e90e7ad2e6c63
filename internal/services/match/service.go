package match

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Brooklyn-808/friendr/internal/domain/model"
	"github.com/Brooklyn-808/friendr/internal/pkg/keylock"
)

var (
	ErrValidation         = errors.New("validation error")
	ErrUnknownProfile     = errors.New("unknown profile")
	ErrSelfLike           = errors.New("cannot like own profile")
	ErrNotMatched         = errors.New("users are not matched")
	ErrEmptyMessage       = errors.New("message text is empty")
	ErrNotFound           = errors.New("notification not found")
	ErrStorageUnavailable = errors.New("storage unavailable")
)

type TooFastError struct {
	RetryAfterSec int64
}

func (e TooFastError) Error() string {
	return "too fast"
}

func (e TooFastError) RetryAfter() int64 {
	if e.RetryAfterSec <= 0 {
		return 1
	}
	return e.RetryAfterSec
}

func IsTooFast(err error) (*TooFastError, bool) {
	var tf TooFastError
	if errors.As(err, &tf) {
		return &tf, true
	}
	return nil, false
}

type ProfileStore interface {
	Get(id string) (model.Profile, bool)
	Exists(id string) bool
	List() []model.Profile
}

type LikeGraph interface {
	RecordLike(liker, liked string) (added, newMatch bool)
	RemoveLike(liker, liked string)
	Likes(liker, liked string) bool
	IsMatch(a, b string) bool
	MatchesFor(user string) []string
	LikedBy(user string) []string
}

type SeenStore interface {
	Mark(user, candidate string) bool
	Unmark(user, candidate string)
	Has(user, candidate string) bool
	Reset(user string) []string
	RestoreUser(user string, candidates []string)
}

type NotificationQueue interface {
	Enqueue(user string, n model.Notification)
	Remove(user, id string)
	Dismiss(user, id string) bool
	Undismiss(user, id string)
	Pending(user string) []model.Notification
}

type ConversationStore interface {
	Append(a, b string, msg model.Message) model.Message
	TruncateLast(a, b string)
	History(a, b string) []model.Message
}

type Persister interface {
	Flush(ctx context.Context) error
}

type RateLimiter interface {
	AllowLike(ctx context.Context, userID string) (int64, bool, error)
}

// Service orchestrates the match-and-messaging flow. Every mutation follows
// the same shape: acquire the keyed lock, mutate the in-memory stores, flush
// the snapshot, and roll the mutation back if the flush fails.
type Service struct {
	profiles      ProfileStore
	likes         LikeGraph
	seen          SeenStore
	notifications NotificationQueue
	conversations ConversationStore
	persister     Persister
	limiter       RateLimiter
	locks         *keylock.Map
	newID         func() string
	now           func() time.Time
}

type Dependencies struct {
	Profiles      ProfileStore
	Likes         LikeGraph
	Seen          SeenStore
	Notifications NotificationQueue
	Conversations ConversationStore
	Persister     Persister
	RateLimiter   RateLimiter
}

type LikeResult struct {
	NewMatch bool
}

func NewService(deps Dependencies) *Service {
	return &Service{
		profiles:      deps.Profiles,
		likes:         deps.Likes,
		seen:          deps.Seen,
		notifications: deps.Notifications,
		conversations: deps.Conversations,
		persister:     deps.Persister,
		limiter:       deps.RateLimiter,
		locks:         keylock.New(),
		newID:         uuid.NewString,
		now:           time.Now,
	}
}

// Like records user→target. When the target already likes the user back,
// the call creates the match and enqueues exactly one "matched" notification
// for each side. An unreciprocated like stays silent: the target learns
// nothing until the interest is mutual.
func (s *Service) Like(ctx context.Context, userID, targetID string) (LikeResult, error) {
	if err := s.checkDeps(); err != nil {
		return LikeResult{}, err
	}
	if userID == "" || targetID == "" {
		return LikeResult{}, ErrValidation
	}
	if userID == targetID {
		return LikeResult{}, ErrSelfLike
	}

	if s.limiter != nil {
		retryAfter, allowed, err := s.limiter.AllowLike(ctx, userID)
		if err != nil {
			return LikeResult{}, fmt.Errorf("consume like rate limit: %w", err)
		}
		if !allowed {
			return LikeResult{}, TooFastError{RetryAfterSec: retryAfter}
		}
	}

	user, ok := s.profiles.Get(userID)
	if !ok {
		return LikeResult{}, ErrUnknownProfile
	}
	target, ok := s.profiles.Get(targetID)
	if !ok {
		return LikeResult{}, ErrUnknownProfile
	}

	unlock := s.locks.LockPair(userID, targetID)
	defer unlock()

	added, newMatch := s.likes.RecordLike(userID, targetID)
	if !added {
		// Idempotent repeat: nothing changed, nothing to persist.
		return LikeResult{}, nil
	}

	var userNotifID, targetNotifID string
	if newMatch {
		now := s.now().UTC()
		userNotifID = s.newID()
		s.notifications.Enqueue(userID, model.Notification{
			ID:        userNotifID,
			Text:      fmt.Sprintf("You matched with %s!", target.DisplayName),
			CreatedAt: now,
		})
		targetNotifID = s.newID()
		s.notifications.Enqueue(targetID, model.Notification{
			ID:        targetNotifID,
			Text:      fmt.Sprintf("You matched with %s!", user.DisplayName),
			CreatedAt: now,
		})
	}

	if err := s.persister.Flush(ctx); err != nil {
		// Revert by id: the pair lock does not cover the queues, so a like
		// sharing one participant may have appended behind our entries.
		if newMatch {
			s.notifications.Remove(targetID, targetNotifID)
			s.notifications.Remove(userID, userNotifID)
		}
		s.likes.RemoveLike(userID, targetID)
		return LikeResult{}, fmt.Errorf("flush like: %w: %w", ErrStorageUnavailable, err)
	}

	return LikeResult{NewMatch: newMatch}, nil
}

// Skip marks the candidate as seen for the user. It has no reciprocal
// effect and no notification.
func (s *Service) Skip(ctx context.Context, userID, candidateID string) error {
	if err := s.checkDeps(); err != nil {
		return err
	}
	if userID == "" || candidateID == "" {
		return ErrValidation
	}
	if userID == candidateID {
		return ErrValidation
	}
	if !s.profiles.Exists(userID) || !s.profiles.Exists(candidateID) {
		return ErrUnknownProfile
	}

	unlock := s.locks.Lock(userID)
	defer unlock()

	if added := s.seen.Mark(userID, candidateID); !added {
		return nil
	}

	if err := s.persister.Flush(ctx); err != nil {
		s.seen.Unmark(userID, candidateID)
		return fmt.Errorf("flush skip: %w: %w", ErrStorageUnavailable, err)
	}

	return nil
}

// ResetSeen clears the user's skip history so the candidate feed starts
// over.
func (s *Service) ResetSeen(ctx context.Context, userID string) error {
	if err := s.checkDeps(); err != nil {
		return err
	}
	if userID == "" {
		return ErrValidation
	}
	if !s.profiles.Exists(userID) {
		return ErrUnknownProfile
	}

	unlock := s.locks.Lock(userID)
	defer unlock()

	prev := s.seen.Reset(userID)
	if len(prev) == 0 {
		return nil
	}

	if err := s.persister.Flush(ctx); err != nil {
		s.seen.RestoreUser(userID, prev)
		return fmt.Errorf("flush seen reset: %w: %w", ErrStorageUnavailable, err)
	}

	return nil
}

// Candidates lists profiles the user can still swipe on: everyone except
// themselves, skipped profiles, profiles they already liked, and existing
// matches. Order follows profile creation order and is stable across calls.
func (s *Service) Candidates(_ context.Context, userID string) ([]model.Profile, error) {
	if err := s.checkDeps(); err != nil {
		return nil, err
	}
	if userID == "" {
		return nil, ErrValidation
	}
	if !s.profiles.Exists(userID) {
		return nil, ErrUnknownProfile
	}

	all := s.profiles.List()
	out := make([]model.Profile, 0, len(all))
	for _, p := range all {
		if p.ID == userID {
			continue
		}
		if s.seen.Has(userID, p.ID) {
			continue
		}
		if s.likes.Likes(userID, p.ID) {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

// Matches returns the ids currently mutually matched with the user.
func (s *Service) Matches(_ context.Context, userID string) ([]string, error) {
	if err := s.checkDeps(); err != nil {
		return nil, err
	}
	if userID == "" {
		return nil, ErrValidation
	}
	if !s.profiles.Exists(userID) {
		return nil, ErrUnknownProfile
	}
	return s.likes.MatchesFor(userID), nil
}

// Liked returns the profiles the user has liked, reciprocated or not, in
// profile creation order. A liked profile that was since removed is skipped.
func (s *Service) Liked(_ context.Context, userID string) ([]model.Profile, error) {
	if err := s.checkDeps(); err != nil {
		return nil, err
	}
	if userID == "" {
		return nil, ErrValidation
	}
	if !s.profiles.Exists(userID) {
		return nil, ErrUnknownProfile
	}

	liked := make(map[string]struct{})
	for _, id := range s.likes.LikedBy(userID) {
		liked[id] = struct{}{}
	}

	out := make([]model.Profile, 0, len(liked))
	for _, p := range s.profiles.List() {
		if _, ok := liked[p.ID]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

// SendMessage appends to the pair's conversation. Messaging requires a
// current mutual match and non-blank text; the stored message comes back
// with its server-assigned timestamp so the caller can render it without
// re-reading.
func (s *Service) SendMessage(ctx context.Context, senderID, peerID, text string) (model.Message, error) {
	if err := s.checkDeps(); err != nil {
		return model.Message{}, err
	}
	if senderID == "" || peerID == "" {
		return model.Message{}, ErrValidation
	}
	if !s.profiles.Exists(senderID) || !s.profiles.Exists(peerID) {
		return model.Message{}, ErrUnknownProfile
	}
	if !s.likes.IsMatch(senderID, peerID) {
		return model.Message{}, ErrNotMatched
	}
	if strings.TrimSpace(text) == "" {
		return model.Message{}, ErrEmptyMessage
	}

	unlock := s.locks.LockPair(senderID, peerID)
	defer unlock()

	stored := s.conversations.Append(senderID, peerID, model.Message{
		ID:       s.newID(),
		SenderID: senderID,
		Text:     text,
		SentAt:   s.now().UTC(),
	})

	if err := s.persister.Flush(ctx); err != nil {
		s.conversations.TruncateLast(senderID, peerID)
		return model.Message{}, fmt.Errorf("flush message: %w: %w", ErrStorageUnavailable, err)
	}

	return stored, nil
}

// History returns the pair's conversation, oldest first, as a snapshot.
func (s *Service) History(_ context.Context, userID, peerID string) ([]model.Message, error) {
	if err := s.checkDeps(); err != nil {
		return nil, err
	}
	if userID == "" || peerID == "" {
		return nil, ErrValidation
	}
	if !s.profiles.Exists(userID) || !s.profiles.Exists(peerID) {
		return nil, ErrUnknownProfile
	}
	if !s.likes.IsMatch(userID, peerID) {
		return nil, ErrNotMatched
	}
	return s.conversations.History(userID, peerID), nil
}

// Notifications returns the user's pending notifications, oldest first.
func (s *Service) Notifications(_ context.Context, userID string) ([]model.Notification, error) {
	if err := s.checkDeps(); err != nil {
		return nil, err
	}
	if userID == "" {
		return nil, ErrValidation
	}
	if !s.profiles.Exists(userID) {
		return nil, ErrUnknownProfile
	}
	return s.notifications.Pending(userID), nil
}

// DismissNotification soft-deletes one notification; a dismissed entry
// never reappears.
func (s *Service) DismissNotification(ctx context.Context, userID, notificationID string) error {
	if err := s.checkDeps(); err != nil {
		return err
	}
	if userID == "" || notificationID == "" {
		return ErrValidation
	}
	if !s.profiles.Exists(userID) {
		return ErrUnknownProfile
	}

	unlock := s.locks.Lock(userID)
	defer unlock()

	if ok := s.notifications.Dismiss(userID, notificationID); !ok {
		return ErrNotFound
	}

	if err := s.persister.Flush(ctx); err != nil {
		s.notifications.Undismiss(userID, notificationID)
		return fmt.Errorf("flush dismiss: %w: %w", ErrStorageUnavailable, err)
	}

	return nil
}

func (s *Service) checkDeps() error {
	if s.profiles == nil || s.likes == nil || s.seen == nil ||
		s.notifications == nil || s.conversations == nil || s.persister == nil {
		return fmt.Errorf("match dependencies are not configured")
	}
	return nil
}
