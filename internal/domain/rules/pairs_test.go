package rules

import "testing"

func TestPairKeyIsOrderIndependent(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want string
	}{
		{name: "already ordered", a: "alice", b: "bob", want: "alice|bob"},
		{name: "reversed", a: "bob", b: "alice", want: "alice|bob"},
		{name: "uuid-like ids", a: "f1c2", b: "0a9d", want: "0a9d|f1c2"},
		{name: "same id", a: "carol", b: "carol", want: "carol|carol"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := PairKey(tc.a, tc.b); got != tc.want {
				t.Fatalf("unexpected pair key: got %q want %q", got, tc.want)
			}
			if PairKey(tc.a, tc.b) != PairKey(tc.b, tc.a) {
				t.Fatalf("pair key is not symmetric for %q/%q", tc.a, tc.b)
			}
		})
	}
}

func TestNormalizeInterestsDeduplicatesAndSorts(t *testing.T) {
	got := NormalizeInterests([]string{" Hiking", "music", "hiking", "", "Music "})
	want := []string{"hiking", "music"}
	if len(got) != len(want) {
		t.Fatalf("unexpected interests: %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("unexpected interests order: got %v want %v", got, want)
		}
	}
}
