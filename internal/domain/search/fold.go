package search

import "unicode"

// FoldRunes lowercases every code point. The mapping is one rune to one rune,
// so indices into the folded copy are valid against the original.
func FoldRunes(s []rune) []rune {
	out := make([]rune, len(s))
	for i, r := range s {
		out[i] = unicode.ToLower(r)
	}
	return out
}

// FoldBytes lowercases ASCII letters only. Non-ASCII bytes are left alone so
// byte offsets stay identical.
func FoldBytes(s []byte) []byte {
	out := make([]byte, len(s))
	for i, b := range s {
		if 'A' <= b && b <= 'Z' {
			b += 'a' - 'A'
		}
		out[i] = b
	}
	return out
}
