package jsonfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/Brooklyn-808/friendr/internal/domain/model"
)

// Snapshot is the full durable record set: everything the service must be
// able to recover after a restart. It is loaded once at process start and
// rewritten atomically after every committed mutation.
type Snapshot struct {
	Profiles      []model.Profile                 `json:"profiles"`
	Likes         map[string][]string             `json:"likes"`
	Seen          map[string][]string             `json:"seen"`
	Notifications map[string][]model.Notification `json:"notifications"`
	Conversations map[string][]model.Message      `json:"conversations"`
}

func EmptySnapshot() Snapshot {
	return Snapshot{
		Profiles:      []model.Profile{},
		Likes:         map[string][]string{},
		Seen:          map[string][]string{},
		Notifications: map[string][]model.Notification{},
		Conversations: map[string][]model.Message{},
	}
}

type Store struct {
	mu   sync.Mutex
	path string
}

func NewStore(path string) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("snapshot path is required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, fmt.Errorf("create snapshot directory: %w", err)
	}
	return &Store{path: path}, nil
}

// Load reads the snapshot from disk. A missing file is not an error: the
// process starts with an empty record set.
func (s *Store) Load() (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return EmptySnapshot(), nil
		}
		return Snapshot{}, fmt.Errorf("read snapshot file: %w", err)
	}

	snap := EmptySnapshot()
	if err := json.Unmarshal(data, &snap); err != nil {
		return Snapshot{}, fmt.Errorf("unmarshal snapshot: %w", err)
	}
	if snap.Likes == nil {
		snap.Likes = map[string][]string{}
	}
	if snap.Seen == nil {
		snap.Seen = map[string][]string{}
	}
	if snap.Notifications == nil {
		snap.Notifications = map[string][]model.Notification{}
	}
	if snap.Conversations == nil {
		snap.Conversations = map[string][]model.Message{}
	}

	return snap, nil
}

// Save replaces the snapshot atomically: write to a temp file in the same
// directory, fsync, then rename over the old file. A crash mid-write leaves
// the previous snapshot intact, never a truncated one.
func (s *Store) Save(snap Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".snapshot-*.json")
	if err != nil {
		return fmt.Errorf("create temp snapshot: %w", err)
	}
	tmpName := tmp.Name()

	cleanup := func() {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
	}

	if _, err := tmp.Write(data); err != nil {
		cleanup()
		return fmt.Errorf("write temp snapshot: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		cleanup()
		return fmt.Errorf("sync temp snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("close temp snapshot: %w", err)
	}
	if err := os.Chmod(tmpName, 0o600); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("chmod temp snapshot: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("replace snapshot: %w", err)
	}

	return nil
}

func (s *Store) Path() string {
	return s.path
}
