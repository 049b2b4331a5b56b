// Package keywords implements the deterministic resume/job-description
// keyword matching engine: tokenization, stop-word filtering, set-based
// overlap scoring and score labeling.
package keywords

import (
	"iter"
	"strings"
	"unicode"
	"unicode/utf8"
)

// MinTokenLength is the shortest token kept; "ai" and "ml" must survive.
const MinTokenLength = 2

// strings.ToLower folds U+0130 to a bare "i"; full case mapping keeps the dot.
var dottedCapitalI = strings.NewReplacer("\u0130", "i\u0307")

// Tokens yields the normalized tokens of text in order of appearance.
//
// The text is lower-cased and split into word runs (letters, digits and
// underscores). A run is emitted only when it consists entirely of ASCII
// letters and is at least MinTokenLength long, so "k8s", "python3" and
// "snake_case" produce nothing while "C++" produces nothing and "Go-lang"
// produces "go" and "lang".
//
// U+0130 (dotted capital I) lower-cases to "i" followed by a combining dot
// above, which is not a word character, so "İstanbul" yields "stanbul".
func Tokens(text string) iter.Seq[string] {
	return func(yield func(string) bool) {
		lowered := strings.ToLower(dottedCapitalI.Replace(text))

		start := -1
		asciiOnly := true
		for i, r := range lowered {
			if isWordRune(r) {
				if start < 0 {
					start = i
					asciiOnly = true
				}
				if r < 'a' || r > 'z' {
					asciiOnly = false
				}
				continue
			}
			if start >= 0 {
				if asciiOnly && i-start >= MinTokenLength {
					if !yield(lowered[start:i]) {
						return
					}
				}
				start = -1
			}
		}
		if start >= 0 && asciiOnly && len(lowered)-start >= MinTokenLength {
			yield(lowered[start:])
		}
	}
}

// Tokenize collects Tokens into a slice.
func Tokenize(text string) []string {
	var out []string
	for tok := range Tokens(text) {
		out = append(out, tok)
	}
	return out
}

// isWordRune reports whether r continues a word, using the Unicode notion of
// a word character (letters, numbers and the underscore).
func isWordRune(r rune) bool {
	if r == '_' {
		return true
	}
	if r < utf8.RuneSelf {
		return ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z') || ('0' <= r && r <= '9')
	}
	return unicode.IsLetter(r) || unicode.IsNumber(r)
}
