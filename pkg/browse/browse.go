// Package browse narrows and reorders a result list the way an end user
// does from the results page.
package browse

import (
	"fmt"
	"sort"
	"time"
)

// Amount filters.
const (
	AmountAll       = "all"
	AmountSmall     = "small"
	AmountMedium    = "medium"
	AmountLarge     = "large"
	AmountVeryLarge = "very-large"
)

// Deadline filters.
const (
	DeadlineAll      = "all"
	DeadlineUrgent   = "urgent"
	DeadlineUpcoming = "upcoming"
	DeadlineFuture   = "future"
)

// Sort orders.
const (
	SortRelevance = "relevance"
	SortAmount    = "amount"
	SortDeadline  = "deadline"
)

// Item is what browse needs from a record. scholarship.Scholarship and
// scholarship.Scored both satisfy it.
type Item interface {
	AmountValue() int64
	DeadlineDate(loc *time.Location) (time.Time, bool)
	HasFlexibleDeadline() bool
	Key() string
}

// Query describes the filters and order to apply. Empty strings mean "all"
// and "relevance". Favorites is consulted only when FavoritesOnly is set.
type Query struct {
	Amount        string
	Deadline      string
	Sort          string
	FavoritesOnly bool
	Favorites     map[string]struct{}
	Now           time.Time
}

// Validate rejects unknown filter and sort values.
func (q Query) Validate() error {
	switch q.Amount {
	case "", AmountAll, AmountSmall, AmountMedium, AmountLarge, AmountVeryLarge:
	default:
		return fmt.Errorf("unknown amount filter %q", q.Amount)
	}
	switch q.Deadline {
	case "", DeadlineAll, DeadlineUrgent, DeadlineUpcoming, DeadlineFuture:
	default:
		return fmt.Errorf("unknown deadline filter %q", q.Deadline)
	}
	switch q.Sort {
	case "", SortRelevance, SortAmount, SortDeadline:
	default:
		return fmt.Errorf("unknown sort order %q", q.Sort)
	}
	return nil
}

// Apply returns a filtered, sorted copy of items.
func Apply[T Item](items []T, q Query) []T {
	now := q.Now
	if now.IsZero() {
		now = time.Now()
	}
	out := make([]T, 0, len(items))
	for _, it := range items {
		if !amountOK(it.AmountValue(), q.Amount) {
			continue
		}
		if !deadlineOK(it, q.Deadline, now) {
			continue
		}
		if q.FavoritesOnly {
			if _, ok := q.Favorites[it.Key()]; !ok {
				continue
			}
		}
		out = append(out, it)
	}

	switch q.Sort {
	case SortAmount:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].AmountValue() > out[j].AmountValue()
		})
	case SortDeadline:
		loc := now.Location()
		sort.SliceStable(out, func(i, j int) bool {
			return deadlineRank(out[i], loc).Before(deadlineRank(out[j], loc))
		})
	}
	return out
}

func amountOK(v int64, filter string) bool {
	switch filter {
	case "", AmountAll:
		return true
	case AmountSmall:
		return v < 1000
	case AmountMedium:
		return v >= 1000 && v < 5000
	case AmountLarge:
		return v >= 5000 && v < 20000
	case AmountVeryLarge:
		return v >= 20000
	default:
		return false
	}
}

func deadlineOK(it Item, filter string, now time.Time) bool {
	if filter == "" || filter == DeadlineAll {
		return true
	}
	if it.HasFlexibleDeadline() {
		return true
	}
	d, ok := it.DeadlineDate(now.Location())
	if !ok {
		return false
	}
	oneMonth := now.AddDate(0, 1, 0)
	threeMonths := now.AddDate(0, 3, 0)
	switch filter {
	case DeadlineUrgent:
		return !d.After(oneMonth)
	case DeadlineUpcoming:
		return d.After(oneMonth) && !d.After(threeMonths)
	case DeadlineFuture:
		return d.After(threeMonths)
	default:
		return false
	}
}

// Unparseable deadlines sort after dated ones, flexible ones last of all.
var (
	unparsedRank = time.Date(9998, 1, 1, 0, 0, 0, 0, time.UTC)
	flexibleRank = time.Date(9999, 1, 1, 0, 0, 0, 0, time.UTC)
)

func deadlineRank(it Item, loc *time.Location) time.Time {
	if it.HasFlexibleDeadline() {
		return flexibleRank
	}
	if d, ok := it.DeadlineDate(loc); ok {
		return d
	}
	return unparsedRank
}
