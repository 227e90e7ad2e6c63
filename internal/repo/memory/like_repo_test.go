package memory

import "testing"

func TestRecordLikeIsIdempotent(t *testing.T) {
	repo := NewLikeRepo()

	added, newMatch := repo.RecordLike("alice", "bob")
	if !added || newMatch {
		t.Fatalf("first like: added=%v newMatch=%v", added, newMatch)
	}

	added, newMatch = repo.RecordLike("alice", "bob")
	if added || newMatch {
		t.Fatalf("repeated like must be a no-op: added=%v newMatch=%v", added, newMatch)
	}

	exported := repo.Export()
	if len(exported["alice"]) != 1 {
		t.Fatalf("expected a single edge after duplicate like, got %v", exported["alice"])
	}
}

func TestRecordLikeReportsNewMatchExactlyOnce(t *testing.T) {
	repo := NewLikeRepo()

	if _, newMatch := repo.RecordLike("alice", "bob"); newMatch {
		t.Fatalf("one-sided like must not be a match")
	}
	if repo.IsMatch("alice", "bob") {
		t.Fatalf("is_match must be false before reciprocation")
	}

	_, newMatch := repo.RecordLike("bob", "alice")
	if !newMatch {
		t.Fatalf("reciprocal like must create the match")
	}
	if !repo.IsMatch("alice", "bob") || !repo.IsMatch("bob", "alice") {
		t.Fatalf("is_match must hold in both argument orders")
	}

	if _, newMatch := repo.RecordLike("bob", "alice"); newMatch {
		t.Fatalf("repeated like must not report the match again")
	}
}

func TestMatchesForReturnsOnlyMutualLikes(t *testing.T) {
	repo := NewLikeRepo()
	repo.RecordLike("alice", "bob")
	repo.RecordLike("bob", "alice")
	repo.RecordLike("alice", "carol")
	repo.RecordLike("dave", "alice")

	got := repo.MatchesFor("alice")
	if len(got) != 1 || got[0] != "bob" {
		t.Fatalf("unexpected matches for alice: %v", got)
	}
	if got := repo.MatchesFor("carol"); len(got) != 0 {
		t.Fatalf("carol must have no matches, got %v", got)
	}
}

func TestLikedByReturnsAllOutgoingEdges(t *testing.T) {
	repo := NewLikeRepo()
	repo.RecordLike("alice", "carol")
	repo.RecordLike("alice", "bob")
	repo.RecordLike("bob", "alice")
	repo.RecordLike("dave", "alice")

	got := repo.LikedBy("alice")
	if len(got) != 2 || got[0] != "bob" || got[1] != "carol" {
		t.Fatalf("unexpected liked ids for alice: %v", got)
	}
	if got := repo.LikedBy("carol"); len(got) != 0 {
		t.Fatalf("carol has liked nobody, got %v", got)
	}
}

func TestRemoveLikeRevertsMatchState(t *testing.T) {
	repo := NewLikeRepo()
	repo.RecordLike("alice", "bob")
	repo.RecordLike("bob", "alice")

	repo.RemoveLike("bob", "alice")
	if repo.IsMatch("alice", "bob") {
		t.Fatalf("match must disappear after edge removal")
	}
	if !repo.Likes("alice", "bob") {
		t.Fatalf("unrelated edge must survive removal")
	}
}

func TestLikeRepoExportRestoreRoundTrip(t *testing.T) {
	repo := NewLikeRepo()
	repo.RecordLike("alice", "bob")
	repo.RecordLike("bob", "alice")

	restored := NewLikeRepo()
	restored.Restore(repo.Export())

	if !restored.IsMatch("alice", "bob") {
		t.Fatalf("match lost across export/restore")
	}
}
