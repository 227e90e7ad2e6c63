package memory

import (
	"sync"
	"time"

	"github.com/Brooklyn-808/friendr/internal/domain/model"
	"github.com/Brooklyn-808/friendr/internal/domain/rules"
)

// ConversationRepo owns one message log per unordered user pair. Every
// access goes through rules.PairKey, so there is exactly one log per pair no
// matter which side initiated.
type ConversationRepo struct {
	mu   sync.RWMutex
	logs map[string][]model.Message
}

func NewConversationRepo() *ConversationRepo {
	return &ConversationRepo{logs: map[string][]model.Message{}}
}

// Append stores the message at the tail of the pair's log. Timestamps are
// server-assigned and strictly monotonic within a conversation: if the clock
// has not advanced past the previous message, the new one is nudged forward
// a nanosecond.
func (r *ConversationRepo) Append(a, b string, msg model.Message) model.Message {
	key := rules.PairKey(a, b)

	r.mu.Lock()
	defer r.mu.Unlock()

	log := r.logs[key]
	if n := len(log); n > 0 && !msg.SentAt.After(log[n-1].SentAt) {
		msg.SentAt = log[n-1].SentAt.Add(time.Nanosecond)
	}
	r.logs[key] = append(log, msg)
	return msg
}

// TruncateLast drops the most recent message of the pair. Used only to roll
// back a failed flush.
func (r *ConversationRepo) TruncateLast(a, b string) {
	key := rules.PairKey(a, b)

	r.mu.Lock()
	defer r.mu.Unlock()

	log := r.logs[key]
	if len(log) == 0 {
		return
	}
	log = log[:len(log)-1]
	if len(log) == 0 {
		delete(r.logs, key)
		return
	}
	r.logs[key] = log
}

// History returns the pair's messages oldest first, as a copy detached from
// the live log.
func (r *ConversationRepo) History(a, b string) []model.Message {
	key := rules.PairKey(a, b)

	r.mu.RLock()
	defer r.mu.RUnlock()

	log := r.logs[key]
	out := make([]model.Message, len(log))
	copy(out, log)
	return out
}

func (r *ConversationRepo) Export() map[string][]model.Message {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string][]model.Message, len(r.logs))
	for key, log := range r.logs {
		copied := make([]model.Message, len(log))
		copy(copied, log)
		out[key] = copied
	}
	return out
}

func (r *ConversationRepo) Restore(logs map[string][]model.Message) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.logs = make(map[string][]model.Message, len(logs))
	for key, log := range logs {
		copied := make([]model.Message, len(log))
		copy(copied, log)
		r.logs[key] = copied
	}
}
