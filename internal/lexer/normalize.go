package lexer

import "golang.org/x/text/unicode/norm"

// normalize applies Unicode NFC normalization to identifier and string
// literal text, grounded on the teacher's internal/lexer/normalize.go.
// TSX source may mix precomposed and decomposed forms of the same
// identifier (e.g. combining diacritics); without this, two spellings
// of what a human reads as one identifier would compare unequal.
func normalize(s string) string {
	if norm.NFC.IsNormalString(s) {
		return s
	}
	return norm.NFC.String(s)
}
