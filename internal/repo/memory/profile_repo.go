package memory

import (
	"fmt"
	"sync"

	"github.com/Brooklyn-808/friendr/internal/domain/model"
)

// ProfileRepo owns the profile mapping. Listing preserves creation order so
// candidate feeds stay stable across calls.
type ProfileRepo struct {
	mu    sync.RWMutex
	byID  map[string]model.Profile
	order []string
}

func NewProfileRepo() *ProfileRepo {
	return &ProfileRepo{byID: map[string]model.Profile{}}
}

func (r *ProfileRepo) Insert(p model.Profile) error {
	if p.ID == "" {
		return fmt.Errorf("profile id is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[p.ID]; exists {
		return fmt.Errorf("profile %s already exists", p.ID)
	}
	r.byID[p.ID] = p
	r.order = append(r.order, p.ID)
	return nil
}

// Replace overwrites an existing profile and returns the previous value so
// the caller can restore it if the durable flush fails.
func (r *ProfileRepo) Replace(p model.Profile) (model.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	prev, exists := r.byID[p.ID]
	if !exists {
		return model.Profile{}, fmt.Errorf("profile %s does not exist", p.ID)
	}
	r.byID[p.ID] = p
	return prev, nil
}

// Remove deletes a profile. Used only to roll back a failed create flush;
// profiles are never deleted in normal operation.
func (r *ProfileRepo) Remove(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.byID, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}

func (r *ProfileRepo) Get(id string) (model.Profile, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[id]
	return p, ok
}

func (r *ProfileRepo) Exists(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.byID[id]
	return ok
}

func (r *ProfileRepo) List() []model.Profile {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Profile, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out
}

func (r *ProfileRepo) Export() []model.Profile {
	return r.List()
}

func (r *ProfileRepo) Restore(profiles []model.Profile) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byID = make(map[string]model.Profile, len(profiles))
	r.order = make([]string, 0, len(profiles))
	for _, p := range profiles {
		if _, dup := r.byID[p.ID]; dup {
			continue
		}
		r.byID[p.ID] = p
		r.order = append(r.order, p.ID)
	}
}
