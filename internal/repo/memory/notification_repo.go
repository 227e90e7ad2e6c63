package memory

import (
	"sync"

	"github.com/Brooklyn-808/friendr/internal/domain/model"
)

// NotificationRepo owns the per-user notification queues. Dismissal is a
// soft delete: the entry stays in the log but never reappears in Pending.
type NotificationRepo struct {
	mu     sync.RWMutex
	queues map[string][]model.Notification
}

func NewNotificationRepo() *NotificationRepo {
	return &NotificationRepo{queues: map[string][]model.Notification{}}
}

func (r *NotificationRepo) Enqueue(user string, n model.Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.queues[user] = append(r.queues[user], n)
}

// Remove deletes the entry with the given id. Used only to roll back a
// failed flush; removal by id keeps the revert exact even when another
// writer appended to the queue after the enqueue being reverted.
func (r *NotificationRepo) Remove(user, id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	queue := r.queues[user]
	for i := range queue {
		if queue[i].ID != id {
			continue
		}
		queue = append(queue[:i], queue[i+1:]...)
		if len(queue) == 0 {
			delete(r.queues, user)
			return
		}
		r.queues[user] = queue
		return
	}
}

// Dismiss marks the notification with the given id as dismissed. It reports
// false when the id is unknown or the entry was already dismissed.
func (r *NotificationRepo) Dismiss(user, id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	queue := r.queues[user]
	for i := range queue {
		if queue[i].ID != id {
			continue
		}
		if queue[i].Dismissed {
			return false
		}
		queue[i].Dismissed = true
		return true
	}
	return false
}

// Undismiss reverts a Dismiss. Used only to roll back a failed flush.
func (r *NotificationRepo) Undismiss(user, id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	queue := r.queues[user]
	for i := range queue {
		if queue[i].ID == id {
			queue[i].Dismissed = false
			return
		}
	}
}

// Pending returns the user's non-dismissed notifications, oldest first, as a
// copy detached from the live queue.
func (r *NotificationRepo) Pending(user string) []model.Notification {
	r.mu.RLock()
	defer r.mu.RUnlock()

	queue := r.queues[user]
	out := make([]model.Notification, 0, len(queue))
	for _, n := range queue {
		if !n.Dismissed {
			out = append(out, n)
		}
	}
	return out
}

func (r *NotificationRepo) Export() map[string][]model.Notification {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string][]model.Notification, len(r.queues))
	for user, queue := range r.queues {
		copied := make([]model.Notification, len(queue))
		copy(copied, queue)
		out[user] = copied
	}
	return out
}

func (r *NotificationRepo) Restore(queues map[string][]model.Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.queues = make(map[string][]model.Notification, len(queues))
	for user, queue := range queues {
		copied := make([]model.Notification, len(queue))
		copy(copied, queue)
		r.queues[user] = copied
	}
}
