package keywords

import (
	"bufio"
	_ "embed"
	"sort"
	"strings"
	"sync"
)

//go:embed stopwords.txt
var stopWordsData string

// StopWords is an immutable set of terms excluded from keyword sets.
// The zero value is an empty set.
type StopWords struct {
	words map[string]struct{}
}

// DefaultStopWords returns the canonical vocabulary shipped in stopwords.txt.
// It is parsed once and shared; callers cannot mutate it.
var DefaultStopWords = sync.OnceValue(func() StopWords {
	return ParseStopWords(stopWordsData)
})

// ParseStopWords reads one word per line, skipping blank lines and lines
// starting with '#'. Words are lower-cased and trimmed.
func ParseStopWords(data string) StopWords {
	words := make(map[string]struct{})
	scanner := bufio.NewScanner(strings.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words[strings.ToLower(line)] = struct{}{}
	}
	return StopWords{words: words}
}

// NewStopWords builds a set from the given words.
func NewStopWords(words ...string) StopWords {
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		if w = normalizeWord(w); w != "" {
			m[w] = struct{}{}
		}
	}
	return StopWords{words: m}
}

// Contains reports whether token is a stop word.
func (s StopWords) Contains(token string) bool {
	_, ok := s.words[token]
	return ok
}

// Len returns the number of stop words.
func (s StopWords) Len() int {
	return len(s.words)
}

// With returns a copy of s with add included and remove excluded.
// Removals win over additions of the same word.
func (s StopWords) With(add, remove []string) StopWords {
	m := make(map[string]struct{}, len(s.words)+len(add))
	for w := range s.words {
		m[w] = struct{}{}
	}
	for _, w := range add {
		if w = normalizeWord(w); w != "" {
			m[w] = struct{}{}
		}
	}
	for _, w := range remove {
		delete(m, normalizeWord(w))
	}
	return StopWords{words: m}
}

// Words returns the vocabulary sorted lexicographically.
func (s StopWords) Words() []string {
	out := make([]string, 0, len(s.words))
	for w := range s.words {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}

func normalizeWord(w string) string {
	return strings.ToLower(strings.TrimSpace(w))
}
