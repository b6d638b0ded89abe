// Package matching ranks catalog records against a student profile. It is
// the only scoring implementation: the API server and the CLI fallback path
// both call into it.
package matching

import (
	"strings"
	"unicode/utf8"

	"github.com/artem13815/scholarship/pkg/nlp"
	"github.com/artem13815/scholarship/pkg/scholarship"
)

// Weights of each criterion. They add up to MaxScore before jitter.
const (
	AmountWeight    = 20.0
	FieldWeight     = 30.0
	CategoryWeight  = 25.0
	InterestWeight  = 25.0
	JitterRange     = 3.0
	MaxScore        = 100.0
	minFieldWordLen = 4
)

// Breakdown is the per-criterion contribution to a score.
type Breakdown struct {
	Amount     float64
	Field      float64
	Categories float64
	Interests  float64
	Jitter     float64
}

// Total sums the parts and clamps the result to [0, MaxScore].
func (b Breakdown) Total() float64 {
	return clamp(b.Amount+b.Field+b.Categories+b.Interests+b.Jitter, 0, MaxScore)
}

// Scorer computes relevance scores. The zero value is not usable; build one
// with NewScorer.
type Scorer struct {
	rnd RandomSource
}

// NewScorer returns a Scorer drawing tie-break jitter from rnd.
// A nil rnd falls back to RuntimeSource.
func NewScorer(rnd RandomSource) *Scorer {
	if rnd == nil {
		rnd = RuntimeSource()
	}
	return &Scorer{rnd: rnd}
}

// Score returns the relevance of s for p in [0, 100].
func (sc *Scorer) Score(s scholarship.Scholarship, p scholarship.Profile) float64 {
	return sc.Explain(s, p).Total()
}

// Explain returns the individual contributions behind Score.
// Only the record name is matched against profile keywords.
func (sc *Scorer) Explain(s scholarship.Scholarship, p scholarship.Profile) Breakdown {
	name := strings.ToLower(s.Name)
	b := Breakdown{
		Amount:     amountScore(s.AmountValue(), p.DesiredAmount),
		Field:      fieldScore(name, p.FieldOfStudy),
		Categories: tagScore(name, p.SpecialCategories, CategoryKeywords, CategoryWeight),
		Interests:  tagScore(name, p.Interests, InterestKeywords, InterestWeight),
	}
	b.Jitter = sc.rnd.Float64() * JitterRange
	return b
}

func amountScore(amount int64, desired string) float64 {
	if desired == "" {
		return 0
	}
	if InBracket(desired, amount) {
		return AmountWeight
	}
	return 0
}

// fieldScore awards the full weight when any word of the field of study
// longer than three characters (runes, not bytes) occurs in the name.
func fieldScore(name, fieldOfStudy string) float64 {
	if name == "" {
		return 0
	}
	for _, w := range nlp.Words(fieldOfStudy) {
		if utf8.RuneCountInString(w) >= minFieldWordLen && strings.Contains(name, w) {
			return FieldWeight
		}
	}
	return 0
}

// tagScore is weight times the share of tags with at least one keyword
// present in name. Unknown tags count in the denominator only.
func tagScore(name string, tags []string, table map[string][]string, weight float64) float64 {
	if len(tags) == 0 || name == "" {
		return 0
	}
	matched := 0
	for _, tag := range tags {
		if nlp.ContainsAny(name, table[tag]) {
			matched++
		}
	}
	return min(weight, float64(matched)/float64(len(tags))*weight)
}

func clamp(v, lo, hi float64) float64 {
	return max(lo, min(v, hi))
}
