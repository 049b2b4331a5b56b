// Package optimizer rewrites resume bullets and measures semantic skill gaps
// with a hosted language model.
package optimizer

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"text/template"

	"go.uber.org/zap"
)

var (
	ErrEmptyBullet = errors.New("bullet point cannot be empty")
	ErrEmptyInput  = errors.New("resume and job description text cannot be empty")
	ErrUnavailable = errors.New("language model unavailable")
)

// RewriteTemperature favors varied phrasing over determinism.
const RewriteTemperature float32 = 0.7

// Generator is the model backend used by the Optimizer.
type Generator interface {
	Generate(ctx context.Context, prompt string, temperature float32) (string, error)
	Embed(ctx context.Context, texts []string) ([][]float32, error)
}

// Optimizer rewrites bullets and scores semantic similarity.
type Optimizer struct {
	gen Generator
	log *zap.Logger
}

// New creates an optimizer backed by gen.
func New(gen Generator, log *zap.Logger) *Optimizer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Optimizer{gen: gen, log: log}
}

var bulletPrompt = template.Must(template.New("bullet").Parse(`Role: Expert Executive Resume Writer
Task: Rewrite the following bullet point to better align with the job description.
Target Keywords: {{.Keywords}}
Job Context: {{.JobContext}}
Original Bullet: {{.Bullet}}

Instructions:
- Maintain factual accuracy - do not fabricate metrics or achievements
- Focus on quantifiable impact and measurable outcomes
- Incorporate target keywords naturally where appropriate
- Use strong action verbs
- Keep the bullet concise (one to two lines)

Rewritten Bullet:`))

// BuildBulletPrompt renders the rewrite prompt.
func BuildBulletPrompt(bullet, jdContext string, keywords []string) (string, error) {
	kw := "None specified"
	if len(keywords) > 0 {
		kw = strings.Join(keywords, ", ")
	}

	var b strings.Builder
	err := bulletPrompt.Execute(&b, struct {
		Keywords, JobContext, Bullet string
	}{kw, jdContext, bullet})
	if err != nil {
		return "", err
	}
	return b.String(), nil
}

// OptimizeBullet rewrites bullet to align with the job context and keywords.
func (o *Optimizer) OptimizeBullet(ctx context.Context, bullet, jdContext string, keywords []string) (string, error) {
	if strings.TrimSpace(bullet) == "" {
		return "", ErrEmptyBullet
	}

	prompt, err := BuildBulletPrompt(bullet, jdContext, keywords)
	if err != nil {
		return "", fmt.Errorf("build prompt: %w", err)
	}

	out, err := o.gen.Generate(ctx, prompt, RewriteTemperature)
	if err != nil {
		o.log.Warn("bullet rewrite failed", zap.Error(err))
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	o.log.Debug("bullet rewritten", zap.Int("keywords", len(keywords)))
	return strings.TrimSpace(out), nil
}

// SkillGap returns the cosine similarity of the resume and job description
// embeddings. Lower values mean a larger gap.
func (o *Optimizer) SkillGap(ctx context.Context, resumeText, jdText string) (float64, error) {
	if strings.TrimSpace(resumeText) == "" || strings.TrimSpace(jdText) == "" {
		return 0, ErrEmptyInput
	}

	vecs, err := o.gen.Embed(ctx, []string{resumeText, jdText})
	if err != nil {
		o.log.Warn("embedding failed", zap.Error(err))
		return 0, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if len(vecs) != 2 {
		return 0, fmt.Errorf("%w: expected 2 embeddings, got %d", ErrUnavailable, len(vecs))
	}

	return CosineSimilarity(vecs[0], vecs[1]), nil
}

// CosineSimilarity returns the cosine of the angle between a and b, or 0
// when either is zero-length or the dimensions differ.
func CosineSimilarity(a, b []float32) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}

	var dot, na, nb float64
	for i := range a {
		x, y := float64(a[i]), float64(b[i])
		dot += x * y
		na += x * x
		nb += y * y
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}
