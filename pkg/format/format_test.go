package format

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/scholarship/pkg/matching"
	"github.com/artem13815/scholarship/pkg/scholarship"
)

func TestFormatAmount(t *testing.T) {
	cases := []struct {
		in    string
		text  string
		value int64
		class string
	}{
		{"$750", "$750", 750, AmountSmall},
		{"$1,000", "$1,000", 1000, AmountMedium},
		{"$5,000", "$5,000", 5000, AmountLarge},
		{"$10,000", "$10,000", 10000, AmountVeryLarge},
		{"25000", "$25,000", 25000, AmountVeryLarge},
		{scholarship.AmountVaries, scholarship.AmountVaries, 0, AmountUnknown},
		{"TBD", "$0", 0, AmountSmall},
	}
	for _, tc := range cases {
		got := FormatAmount(tc.in)
		assert.Equal(t, tc.text, got.Text, tc.in)
		assert.Equal(t, tc.value, got.Value, tc.in)
		assert.Equal(t, tc.class, got.Class, tc.in)
	}
	assert.Equal(t, "TBD", DisplayAmount("TBD"))
	assert.Equal(t, "$2,500", DisplayAmount("2500"))
}

func TestFormatDeadline(t *testing.T) {
	now := time.Date(2025, time.May, 1, 9, 0, 0, 0, time.UTC)

	v := FormatDeadline("May 10, 2025", now)
	assert.Equal(t, DeadlineUrgent, v.Class)
	require.NotNil(t, v.DaysLeft)
	assert.Equal(t, 8, *v.DaysLeft)
	assert.Equal(t, "8 days left!", v.Text)
	assert.Equal(t, "8 days left! (May 10, 2025)", v.FullText)

	v = FormatDeadline("May 31, 2025", now)
	assert.Equal(t, DeadlineUpcoming, v.Class)
	assert.Equal(t, "29 days left", v.Text)

	v = FormatDeadline("September 15, 2025", now)
	assert.Equal(t, DeadlineFuture, v.Class)
	assert.Equal(t, "Sep 15, 2025", v.Text)
	assert.Equal(t, "September 15, 2025", v.FullText)

	v = FormatDeadline(scholarship.DeadlineVaries, now)
	assert.Equal(t, DeadlineUnknown, v.Class)
	assert.Nil(t, v.DaysLeft)
	assert.Equal(t, scholarship.DeadlineVaries, v.Text)

	v = FormatDeadline("soon-ish", now)
	assert.Equal(t, DeadlineUnknown, v.Class)
	assert.Equal(t, "soon-ish", v.Text)
}

func TestPastDeadlineIsUrgent(t *testing.T) {
	now := time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC)
	v := FormatDeadline("May 31, 2025", now)
	assert.Equal(t, DeadlineUrgent, v.Class)
	assert.Equal(t, -31, *v.DaysLeft)
}

func TestDaysBetweenAcrossDSTShift(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// Clocks spring forward on March 9, 2025; the span is 263 hours.
	now := time.Date(2025, time.March, 9, 0, 0, 0, 0, ny)
	assert.Equal(t, 11, DaysBetween(now, time.Date(2025, time.March, 20, 0, 0, 0, 0, ny)))

	v := FormatDeadline("March 20, 2025", now)
	require.NotNil(t, v.DaysLeft)
	assert.Equal(t, 11, *v.DaysLeft)

	// Part of a day still does not count.
	assert.Equal(t, 10, DaysBetween(now.Add(30*time.Minute), time.Date(2025, time.March, 20, 0, 0, 0, 0, ny)))
	assert.Equal(t, -2, DaysBetween(time.Date(2025, time.March, 11, 0, 0, 0, 0, ny), now))
}

func TestMatcherOutputRoundTripsThroughFormatting(t *testing.T) {
	now := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	records := []scholarship.Scholarship{
		{Name: "Engineering STEM Excellence Award", Amount: "$7,500", Deadline: "May 31, 2025"},
		{Name: "Engineering Futures", Amount: "$12,000", Deadline: "June 15, 2025"},
		{Name: "Engineering Open Call", Amount: scholarship.AmountVaries, Deadline: scholarship.DeadlineVaries},
	}
	p := scholarship.Profile{FieldOfStudy: "engineering"}

	got := matching.Match(records, p, matching.NewSeededSource(1))
	require.Len(t, got, 3)
	for _, s := range got {
		assert.Equal(t, s.Amount, FormatAmount(s.Amount).Text)
		assert.Equal(t, s.Deadline, FormatDeadline(s.Deadline, now).FullText)
	}
}
