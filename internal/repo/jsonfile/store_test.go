package jsonfile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Brooklyn-808/friendr/internal/domain/model"
)

func TestLoadReturnsEmptySnapshotWhenFileMissing(t *testing.T) {
	store, err := NewStore(filepath.Join(t.TempDir(), "data", "snapshot.json"))
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	snap, err := store.Load()
	if err != nil {
		t.Fatalf("load missing snapshot: %v", err)
	}
	if len(snap.Profiles) != 0 {
		t.Fatalf("expected no profiles, got %d", len(snap.Profiles))
	}
	if snap.Likes == nil || snap.Seen == nil || snap.Notifications == nil || snap.Conversations == nil {
		t.Fatalf("expected initialized maps in empty snapshot")
	}
}

func TestSaveThenLoadRoundTrip(t *testing.T) {
	store, err := NewStore(filepath.Join(t.TempDir(), "snapshot.json"))
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	snap := EmptySnapshot()
	snap.Profiles = append(snap.Profiles, model.Profile{
		ID:          "u1",
		DisplayName: "Alice",
		Age:         29,
		Interests:   []string{"climbing", "jazz"},
		Bio:         "hi",
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	snap.Likes["u1"] = []string{"u2"}
	snap.Seen["u1"] = []string{"u3"}
	snap.Notifications["u2"] = []model.Notification{{ID: "n1", Text: "hello", CreatedAt: now}}
	snap.Conversations["u1|u2"] = []model.Message{{ID: "m1", SenderID: "u1", Text: "hey", SentAt: now}}

	if err := store.Save(snap); err != nil {
		t.Fatalf("save snapshot: %v", err)
	}

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("load snapshot: %v", err)
	}
	if len(loaded.Profiles) != 1 || loaded.Profiles[0].DisplayName != "Alice" {
		t.Fatalf("unexpected profiles after round trip: %+v", loaded.Profiles)
	}
	if len(loaded.Likes["u1"]) != 1 || loaded.Likes["u1"][0] != "u2" {
		t.Fatalf("unexpected likes after round trip: %+v", loaded.Likes)
	}
	if len(loaded.Conversations["u1|u2"]) != 1 || loaded.Conversations["u1|u2"][0].Text != "hey" {
		t.Fatalf("unexpected conversations after round trip: %+v", loaded.Conversations)
	}
}

func TestSaveLeavesNoTempFilesBehind(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(filepath.Join(dir, "snapshot.json"))
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	for i := 0; i < 3; i++ {
		if err := store.Save(EmptySnapshot()); err != nil {
			t.Fatalf("save #%d: %v", i+1, err)
		}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), ".snapshot-") {
			t.Fatalf("leftover temp file: %s", e.Name())
		}
	}
	if len(entries) != 1 {
		t.Fatalf("expected only snapshot.json, got %d entries", len(entries))
	}
}

func TestLoadRejectsCorruptSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshot.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatalf("write corrupt file: %v", err)
	}

	store, err := NewStore(path)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	if _, err := store.Load(); err == nil {
		t.Fatalf("expected error for corrupt snapshot")
	}
}
