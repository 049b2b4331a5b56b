package keywords

// ScoreLabel is the human-readable category of a match score.
type ScoreLabel string

// Score label constants, highest band first.
const (
	LabelExcellent        ScoreLabel = "Excellent Match"
	LabelGood             ScoreLabel = "Good Match"
	LabelFair             ScoreLabel = "Fair Match"
	LabelNeedsImprovement ScoreLabel = "Needs Improvement"
	LabelPoor             ScoreLabel = "Poor Match"
)

// Labels lists every label from best to worst.
var Labels = []ScoreLabel{
	LabelExcellent,
	LabelGood,
	LabelFair,
	LabelNeedsImprovement,
	LabelPoor,
}

// Label maps a score to its band. Lower bounds are inclusive.
func Label(score float64) ScoreLabel {
	switch {
	case score >= 80:
		return LabelExcellent
	case score >= 60:
		return LabelGood
	case score >= 40:
		return LabelFair
	case score >= 20:
		return LabelNeedsImprovement
	default:
		return LabelPoor
	}
}

// String implements fmt.Stringer.
func (l ScoreLabel) String() string {
	return string(l)
}
