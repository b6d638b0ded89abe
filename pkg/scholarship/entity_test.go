package scholarship

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in   string
		want int64
	}{
		{"$7,500", 7500},
		{"$1,000", 1000},
		{AmountVaries, 0},
		{"", 0},
		{"up to a lot", 0},
		{"$99999999999999999999999", 0},
		{"750", 750},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ParseAmount(tc.in), tc.in)
	}
}

func TestParseDeadline(t *testing.T) {
	d, ok := ParseDeadline("May 31, 2025", time.UTC)
	require.True(t, ok)
	assert.Equal(t, time.Date(2025, time.May, 31, 0, 0, 0, 0, time.UTC), d)

	_, ok = ParseDeadline(DeadlineVaries, time.UTC)
	assert.False(t, ok)
	_, ok = ParseDeadline("2025-05-31", time.UTC)
	assert.False(t, ok)
	_, ok = ParseDeadline("", nil)
	assert.False(t, ok)
}

func TestWithIDIsStable(t *testing.T) {
	a := Scholarship{Name: "SoFi Scholarship Giveaway", Source: "Scholarships.com"}.WithID()
	b := Scholarship{Name: " SoFi Scholarship Giveaway ", Source: "Scholarships.com"}.WithID()
	assert.NotEqual(t, uuid.Nil, a.ID)
	assert.Equal(t, a.ID, b.ID)

	fixed := uuid.New()
	c := Scholarship{ID: fixed, Name: "x"}.WithID()
	assert.Equal(t, fixed, c.ID)
}

func TestScoredPromotesRecordMethods(t *testing.T) {
	s := Scored{Scholarship: Scholarship{Name: "A", Amount: "$2,500", Deadline: DeadlineVaries}, RelevanceScore: 42}
	assert.Equal(t, int64(2500), s.AmountValue())
	assert.True(t, s.HasFlexibleDeadline())
	assert.Equal(t, "A", s.Key())
}
