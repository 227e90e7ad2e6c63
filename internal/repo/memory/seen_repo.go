package memory

import (
	"sort"
	"sync"
)

// SeenRepo owns the per-user skipped-candidate sets. Skipping is one-sided
// and durable; an explicit reset makes the candidate feed restartable.
type SeenRepo struct {
	mu   sync.RWMutex
	seen map[string]map[string]struct{}
}

func NewSeenRepo() *SeenRepo {
	return &SeenRepo{seen: map[string]map[string]struct{}{}}
}

func (r *SeenRepo) Mark(user, candidate string) (added bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	set, ok := r.seen[user]
	if !ok {
		set = map[string]struct{}{}
		r.seen[user] = set
	}
	if _, dup := set[candidate]; dup {
		return false
	}
	set[candidate] = struct{}{}
	return true
}

// Unmark deletes one entry. Used only to roll back a failed flush.
func (r *SeenRepo) Unmark(user, candidate string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if set, ok := r.seen[user]; ok {
		delete(set, candidate)
		if len(set) == 0 {
			delete(r.seen, user)
		}
	}
}

func (r *SeenRepo) Has(user, candidate string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.seen[user][candidate]
	return ok
}

// Reset clears the user's seen set and returns the previous entries so the
// caller can restore them if the durable flush fails.
func (r *SeenRepo) Reset(user string) []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	set, ok := r.seen[user]
	if !ok {
		return nil
	}
	prev := make([]string, 0, len(set))
	for candidate := range set {
		prev = append(prev, candidate)
	}
	sort.Strings(prev)
	delete(r.seen, user)
	return prev
}

func (r *SeenRepo) RestoreUser(user string, candidates []string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(candidates) == 0 {
		delete(r.seen, user)
		return
	}
	set := make(map[string]struct{}, len(candidates))
	for _, c := range candidates {
		set[c] = struct{}{}
	}
	r.seen[user] = set
}

func (r *SeenRepo) Export() map[string][]string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string][]string, len(r.seen))
	for user, set := range r.seen {
		ids := make([]string, 0, len(set))
		for candidate := range set {
			ids = append(ids, candidate)
		}
		sort.Strings(ids)
		out[user] = ids
	}
	return out
}

func (r *SeenRepo) Restore(seen map[string][]string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.seen = make(map[string]map[string]struct{}, len(seen))
	for user, ids := range seen {
		set := make(map[string]struct{}, len(ids))
		for _, candidate := range ids {
			set[candidate] = struct{}{}
		}
		r.seen[user] = set
	}
}
