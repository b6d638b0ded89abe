package format

import (
	"fmt"
	"time"

	"github.com/artem13815/scholarship/pkg/scholarship"
)

// Deadline classes.
const (
	DeadlineUnknown  = "deadline-unknown"
	DeadlineUrgent   = "deadline-urgent"
	DeadlineUpcoming = "deadline-upcoming"
	DeadlineFuture   = "deadline-future"
)

const (
	urgentDays   = 14
	upcomingDays = 30
	shortLayout  = "Jan 2, 2006"
)

// DeadlineView is the display form of a deadline. DaysLeft is nil when the
// deadline is unknown.
type DeadlineView struct {
	Text     string `json:"text"`
	FullText string `json:"fullText,omitempty"`
	Class    string `json:"class"`
	DaysLeft *int   `json:"daysLeft"`
}

// FormatDeadline describes how close deadline is relative to now.
// Unparseable text is shown as-is with the unknown class.
func FormatDeadline(deadline string, now time.Time) DeadlineView {
	d, ok := scholarship.ParseDeadline(deadline, now.Location())
	if !ok {
		return DeadlineView{Text: deadline, FullText: deadline, Class: DeadlineUnknown}
	}
	days := DaysBetween(now, d)
	switch {
	case days <= urgentDays:
		return DeadlineView{
			Text:     fmt.Sprintf("%d days left!", days),
			FullText: fmt.Sprintf("%d days left! (%s)", days, d.Format(shortLayout)),
			Class:    DeadlineUrgent,
			DaysLeft: &days,
		}
	case days <= upcomingDays:
		return DeadlineView{
			Text:     fmt.Sprintf("%d days left", days),
			FullText: fmt.Sprintf("%d days left (%s)", days, d.Format(shortLayout)),
			Class:    DeadlineUpcoming,
			DaysLeft: &days,
		}
	default:
		return DeadlineView{
			Text:     d.Format(shortLayout),
			FullText: d.Format(scholarship.DeadlineLayout),
			Class:    DeadlineFuture,
			DaysLeft: &days,
		}
	}
}

// DaysBetween counts whole days from a to b, truncated toward zero. Days are
// calendar days in a's location, so a DST shift does not eat one.
func DaysBetween(a, b time.Time) int {
	b = b.In(a.Location())
	days := civilDay(b) - civilDay(a)
	ca, cb := clock(a), clock(b)
	switch {
	case days > 0 && cb < ca:
		days--
	case days < 0 && cb > ca:
		days++
	}
	return days
}

// civilDay numbers the calendar date of t independent of its zone.
func civilDay(t time.Time) int {
	y, m, d := t.Date()
	return int(time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Unix() / 86400)
}

func clock(t time.Time) time.Duration {
	h, m, s := t.Clock()
	return time.Duration(h)*time.Hour + time.Duration(m)*time.Minute + time.Duration(s)*time.Second + time.Duration(t.Nanosecond())
}
