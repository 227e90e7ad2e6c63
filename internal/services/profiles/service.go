package profiles

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Brooklyn-808/friendr/internal/domain/model"
	"github.com/Brooklyn-808/friendr/internal/domain/rules"
	"github.com/Brooklyn-808/friendr/internal/pkg/validate"
)

var (
	ErrValidation         = errors.New("validation error")
	ErrUnknownProfile     = errors.New("unknown profile")
	ErrStorageUnavailable = errors.New("storage unavailable")
)

type ProfileStore interface {
	Insert(p model.Profile) error
	Replace(p model.Profile) (model.Profile, error)
	Remove(id string)
	Get(id string) (model.Profile, bool)
	List() []model.Profile
}

type Persister interface {
	Flush(ctx context.Context) error
}

type Service struct {
	store     ProfileStore
	persister Persister
	newID     func() string
	now       func() time.Time
}

type Input struct {
	DisplayName string
	Age         int
	Interests   []string
	Bio         string
}

func NewService(store ProfileStore, persister Persister) *Service {
	return &Service{
		store:     store,
		persister: persister,
		newID:     uuid.NewString,
		now:       time.Now,
	}
}

// Create registers a new profile and assigns its immutable id.
func (s *Service) Create(ctx context.Context, in Input) (model.Profile, error) {
	if s.store == nil || s.persister == nil {
		return model.Profile{}, fmt.Errorf("profiles dependencies are not configured")
	}

	normalized, err := normalizeAndValidate(in)
	if err != nil {
		return model.Profile{}, err
	}

	now := s.now().UTC()
	profile := model.Profile{
		ID:          s.newID(),
		DisplayName: normalized.DisplayName,
		Age:         normalized.Age,
		Interests:   normalized.Interests,
		Bio:         normalized.Bio,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.store.Insert(profile); err != nil {
		return model.Profile{}, fmt.Errorf("insert profile: %w", err)
	}
	if err := s.persister.Flush(ctx); err != nil {
		s.store.Remove(profile.ID)
		return model.Profile{}, fmt.Errorf("flush profile create: %w: %w", ErrStorageUnavailable, err)
	}

	return profile, nil
}

// Update rewrites the owner's mutable fields. The id and creation time never
// change.
func (s *Service) Update(ctx context.Context, userID string, in Input) (model.Profile, error) {
	if s.store == nil || s.persister == nil {
		return model.Profile{}, fmt.Errorf("profiles dependencies are not configured")
	}

	existing, ok := s.store.Get(userID)
	if !ok {
		return model.Profile{}, ErrUnknownProfile
	}

	normalized, err := normalizeAndValidate(in)
	if err != nil {
		return model.Profile{}, err
	}

	updated := existing
	updated.DisplayName = normalized.DisplayName
	updated.Age = normalized.Age
	updated.Interests = normalized.Interests
	updated.Bio = normalized.Bio
	updated.UpdatedAt = s.now().UTC()

	prev, err := s.store.Replace(updated)
	if err != nil {
		return model.Profile{}, fmt.Errorf("replace profile: %w", err)
	}
	if err := s.persister.Flush(ctx); err != nil {
		if _, restoreErr := s.store.Replace(prev); restoreErr != nil {
			return model.Profile{}, fmt.Errorf("restore profile after failed flush: %w", restoreErr)
		}
		return model.Profile{}, fmt.Errorf("flush profile update: %w: %w", ErrStorageUnavailable, err)
	}

	return updated, nil
}

func (s *Service) Get(_ context.Context, id string) (model.Profile, error) {
	if s.store == nil {
		return model.Profile{}, fmt.Errorf("profile store is nil")
	}

	profile, ok := s.store.Get(id)
	if !ok {
		return model.Profile{}, ErrUnknownProfile
	}
	return profile, nil
}

func (s *Service) List(_ context.Context) ([]model.Profile, error) {
	if s.store == nil {
		return nil, fmt.Errorf("profile store is nil")
	}
	return s.store.List(), nil
}

func normalizeAndValidate(in Input) (Input, error) {
	if !validate.Required(in.DisplayName) {
		return Input{}, fmt.Errorf("display name is required: %w", ErrValidation)
	}
	name := strings.TrimSpace(in.DisplayName)
	if len(name) > rules.MaxDisplayNameLen {
		return Input{}, fmt.Errorf("display name too long: %w", ErrValidation)
	}
	if in.Age < rules.MinAge || in.Age > rules.MaxAge {
		return Input{}, fmt.Errorf("age out of range: %w", ErrValidation)
	}
	bio := strings.TrimSpace(in.Bio)
	if len(bio) > rules.MaxBioLen {
		return Input{}, fmt.Errorf("bio too long: %w", ErrValidation)
	}
	interests := rules.NormalizeInterests(in.Interests)
	if len(interests) > rules.MaxInterests {
		return Input{}, fmt.Errorf("too many interests: %w", ErrValidation)
	}

	return Input{
		DisplayName: name,
		Age:         in.Age,
		Interests:   interests,
		Bio:         bio,
	}, nil
}
