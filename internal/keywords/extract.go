package keywords

import "sort"

// Set is an unordered collection of unique keywords.
type Set map[string]struct{}

// NewSet builds a Set from words as given (no normalization).
func NewSet(words ...string) Set {
	s := make(Set, len(words))
	for _, w := range words {
		s[w] = struct{}{}
	}
	return s
}

// Has reports whether word is in the set.
func (s Set) Has(word string) bool {
	_, ok := s[word]
	return ok
}

// Len returns the number of keywords.
func (s Set) Len() int {
	return len(s)
}

// Sorted returns the keywords in lexicographic order. Never nil.
func (s Set) Sorted() []string {
	out := make([]string, 0, len(s))
	for w := range s {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}

// Extractor turns text into a keyword Set using a fixed stop-word vocabulary.
// It holds no mutable state and is safe for concurrent use.
type Extractor struct {
	stopWords StopWords
}

// NewExtractor creates an extractor filtering the given stop words.
func NewExtractor(stopWords StopWords) *Extractor {
	return &Extractor{stopWords: stopWords}
}

// StopWords returns the vocabulary used by the extractor.
func (e *Extractor) StopWords() StopWords {
	return e.stopWords
}

// Extract returns the deduplicated tokens of text that are not stop words.
func (e *Extractor) Extract(text string) Set {
	out := make(Set)
	for tok := range Tokens(text) {
		if e.stopWords.Contains(tok) {
			continue
		}
		out[tok] = struct{}{}
	}
	return out
}

// Extract uses the default stop-word vocabulary.
func Extract(text string) Set {
	return NewExtractor(DefaultStopWords()).Extract(text)
}
