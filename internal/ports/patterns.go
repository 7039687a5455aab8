package ports

// Prefilter reports which patterns occur anywhere in a text using a single
// multi-pattern pass (Aho-Corasick). It lets a batch search skip the
// per-pattern KMP scan for patterns that cannot match.
type Prefilter interface {
	// Present returns one flag per pattern, true when the pattern occurs in
	// text. Empty patterns are reported present so the caller's own
	// validation sees them. Text and patterns are compared byte for byte
	// (caller folds case).
	Present(text string, patterns []string) []bool
}
