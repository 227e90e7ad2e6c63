package profiles

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/Brooklyn-808/friendr/internal/repo/memory"
)

type persisterStub struct {
	err error
}

func (p *persisterStub) Flush(_ context.Context) error {
	return p.err
}

func TestCreateAssignsIDAndNormalizesInput(t *testing.T) {
	repo := memory.NewProfileRepo()
	svc := NewService(repo, &persisterStub{})

	profile, err := svc.Create(context.Background(), Input{
		DisplayName: "  Alice ",
		Age:         29,
		Interests:   []string{"Jazz", "jazz", " Climbing"},
		Bio:         "hello",
	})
	if err != nil {
		t.Fatalf("create profile: %v", err)
	}
	if profile.ID == "" {
		t.Fatalf("expected assigned id")
	}
	if profile.DisplayName != "Alice" {
		t.Fatalf("display name not trimmed: %q", profile.DisplayName)
	}
	if len(profile.Interests) != 2 || profile.Interests[0] != "climbing" || profile.Interests[1] != "jazz" {
		t.Fatalf("interests not normalized: %v", profile.Interests)
	}
	if profile.CreatedAt.IsZero() || profile.CreatedAt != profile.UpdatedAt {
		t.Fatalf("unexpected timestamps: %s / %s", profile.CreatedAt, profile.UpdatedAt)
	}

	stored, ok := repo.Get(profile.ID)
	if !ok || stored.DisplayName != "Alice" {
		t.Fatalf("profile not stored: %+v", stored)
	}
}

func TestCreateValidation(t *testing.T) {
	svc := NewService(memory.NewProfileRepo(), &persisterStub{})
	ctx := context.Background()

	tests := []struct {
		name string
		in   Input
	}{
		{name: "blank name", in: Input{DisplayName: "  ", Age: 25}},
		{name: "underage", in: Input{DisplayName: "Kid", Age: 17}},
		{name: "implausible age", in: Input{DisplayName: "Elder", Age: 130}},
		{name: "oversized bio", in: Input{DisplayName: "Talker", Age: 30, Bio: strings.Repeat("x", 2000)}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Create(ctx, tc.in); !errors.Is(err, ErrValidation) {
				t.Fatalf("expected ErrValidation, got %v", err)
			}
		})
	}
}

func TestCreateRollsBackWhenFlushFails(t *testing.T) {
	repo := memory.NewProfileRepo()
	persister := &persisterStub{err: errors.New("disk full")}
	svc := NewService(repo, persister)

	_, err := svc.Create(context.Background(), Input{DisplayName: "Alice", Age: 29})
	if !errors.Is(err, ErrStorageUnavailable) {
		t.Fatalf("expected ErrStorageUnavailable, got %v", err)
	}
	if got := repo.List(); len(got) != 0 {
		t.Fatalf("profile survived a failed flush: %+v", got)
	}
}

func TestUpdateKeepsIDAndCreationTime(t *testing.T) {
	repo := memory.NewProfileRepo()
	svc := NewService(repo, &persisterStub{})
	ctx := context.Background()

	created, err := svc.Create(ctx, Input{DisplayName: "Alice", Age: 29})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := svc.Update(ctx, created.ID, Input{DisplayName: "Alicia", Age: 30, Bio: "new bio"})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.ID != created.ID {
		t.Fatalf("id changed on update: %s vs %s", updated.ID, created.ID)
	}
	if !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Fatalf("creation time changed on update")
	}
	if updated.DisplayName != "Alicia" || updated.Age != 30 {
		t.Fatalf("update not applied: %+v", updated)
	}
}

func TestUpdateUnknownProfile(t *testing.T) {
	svc := NewService(memory.NewProfileRepo(), &persisterStub{})

	_, err := svc.Update(context.Background(), "ghost", Input{DisplayName: "Ghost", Age: 30})
	if !errors.Is(err, ErrUnknownProfile) {
		t.Fatalf("expected ErrUnknownProfile, got %v", err)
	}
}

func TestUpdateRollsBackWhenFlushFails(t *testing.T) {
	repo := memory.NewProfileRepo()
	persister := &persisterStub{}
	svc := NewService(repo, persister)
	ctx := context.Background()

	created, err := svc.Create(ctx, Input{DisplayName: "Alice", Age: 29})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	persister.err = errors.New("disk full")
	if _, err := svc.Update(ctx, created.ID, Input{DisplayName: "Alicia", Age: 30}); !errors.Is(err, ErrStorageUnavailable) {
		t.Fatalf("expected ErrStorageUnavailable, got %v", err)
	}

	stored, _ := repo.Get(created.ID)
	if stored.DisplayName != "Alice" {
		t.Fatalf("failed flush left partial update: %+v", stored)
	}
}
