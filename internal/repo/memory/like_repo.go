package memory

import (
	"sort"
	"sync"
)

// LikeRepo owns the directed like graph. Matches are derived: a pair is
// matched iff both directions are present.
type LikeRepo struct {
	mu    sync.RWMutex
	likes map[string]map[string]struct{}
}

func NewLikeRepo() *LikeRepo {
	return &LikeRepo{likes: map[string]map[string]struct{}{}}
}

// RecordLike adds the liker→liked edge. It is idempotent: a repeated like
// reports added=false and never reports a match a second time. newMatch is
// true only on the call that completes the second direction.
func (r *LikeRepo) RecordLike(liker, liked string) (added, newMatch bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	set, ok := r.likes[liker]
	if !ok {
		set = map[string]struct{}{}
		r.likes[liker] = set
	}
	if _, dup := set[liked]; dup {
		return false, false
	}
	set[liked] = struct{}{}

	_, reciprocal := r.likes[liked][liker]
	return true, reciprocal
}

// RemoveLike deletes one edge. Used only to roll back a failed flush.
func (r *LikeRepo) RemoveLike(liker, liked string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if set, ok := r.likes[liker]; ok {
		delete(set, liked)
		if len(set) == 0 {
			delete(r.likes, liker)
		}
	}
}

func (r *LikeRepo) Likes(liker, liked string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.likes[liker][liked]
	return ok
}

// LikedBy returns the ids the user has liked, reciprocated or not, sorted so
// the order is stable within one call.
func (r *LikeRepo) LikedBy(user string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, 0, len(r.likes[user]))
	for liked := range r.likes[user] {
		out = append(out, liked)
	}
	sort.Strings(out)
	return out
}

func (r *LikeRepo) IsMatch(a, b string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if _, ok := r.likes[a][b]; !ok {
		return false
	}
	_, ok := r.likes[b][a]
	return ok
}

// MatchesFor returns the ids mutually matched with user, sorted so the order
// is stable within one call.
func (r *LikeRepo) MatchesFor(user string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, 0)
	for liked := range r.likes[user] {
		if _, back := r.likes[liked][user]; back {
			out = append(out, liked)
		}
	}
	sort.Strings(out)
	return out
}

func (r *LikeRepo) Export() map[string][]string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string][]string, len(r.likes))
	for liker, set := range r.likes {
		ids := make([]string, 0, len(set))
		for liked := range set {
			ids = append(ids, liked)
		}
		sort.Strings(ids)
		out[liker] = ids
	}
	return out
}

func (r *LikeRepo) Restore(likes map[string][]string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.likes = make(map[string]map[string]struct{}, len(likes))
	for liker, ids := range likes {
		set := make(map[string]struct{}, len(ids))
		for _, liked := range ids {
			set[liked] = struct{}{}
		}
		r.likes[liker] = set
	}
}
