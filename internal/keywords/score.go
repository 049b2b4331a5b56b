package keywords

import "math"

// MatchResult is the outcome of comparing a resume keyword set against a
// job description keyword set.
//
// Matched and Missing partition the job description keywords.
type MatchResult struct {
	Score   float64
	Matched Set
	Missing Set
}

// Score computes the percentage of job description keywords present in the
// resume. An empty job description scores 0 with empty Matched and Missing.
func Score(resume, jd Set) MatchResult {
	res := MatchResult{Matched: make(Set), Missing: make(Set)}
	if len(jd) == 0 {
		return res
	}

	for w := range jd {
		if resume.Has(w) {
			res.Matched[w] = struct{}{}
		} else {
			res.Missing[w] = struct{}{}
		}
	}

	res.Score = RoundScore(float64(len(res.Matched)) * 100 / float64(len(jd)))
	return res
}

// RoundScore rounds to two decimal places, ties to even, so 14.375 becomes
// 14.38 and 30.625 becomes 30.62.
func RoundScore(v float64) float64 {
	return math.RoundToEven(v*100) / 100
}
