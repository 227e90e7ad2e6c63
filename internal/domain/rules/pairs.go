package rules

// PairKey returns the canonical key for an unordered pair of user ids.
// The same key comes back regardless of argument order, so every structure
// addressed by a pair (conversations, pair locks) has exactly one entry per
// pair.
func PairKey(a, b string) string {
	if b < a {
		a, b = b, a
	}
	return a + "|" + b
}
