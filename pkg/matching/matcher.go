package matching

import (
	"sort"

	"github.com/artem13815/scholarship/pkg/scholarship"
)

// MinRelevance is the lowest score a record may have and still be returned.
const MinRelevance = 30.0

// Match scores every record, keeps those at or above MinRelevance and
// returns them best first. records is not modified. Ties keep catalog order.
func (sc *Scorer) Match(records []scholarship.Scholarship, p scholarship.Profile) []scholarship.Scored {
	out := make([]scholarship.Scored, 0, len(records))
	for _, r := range records {
		score := sc.Score(r, p)
		if score < MinRelevance {
			continue
		}
		out = append(out, scholarship.Scored{Scholarship: r, RelevanceScore: score})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].RelevanceScore > out[j].RelevanceScore
	})
	return out
}

// Match is a convenience wrapper around NewScorer(rnd).Match.
func Match(records []scholarship.Scholarship, p scholarship.Profile, rnd RandomSource) []scholarship.Scored {
	return NewScorer(rnd).Match(records, p)
}
