package scholarship

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/artem13815/scholarship/pkg/nlp"
)

const (
	// AmountVaries stands in for an unspecified award amount.
	AmountVaries = "Amount Varies"
	// DeadlineVaries stands in for an unspecified deadline.
	DeadlineVaries = "Deadline Varies"
	// DeadlineLayout is the only accepted textual deadline format.
	DeadlineLayout = "January 2, 2006"
)

// idSpace namespaces deterministic record ids derived from name and source.
var idSpace = uuid.MustParse("5b1f8c2e-6a0d-4f4e-9a57-1c3d2e8b7f60")

// Scholarship is a catalog record.
type Scholarship struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name" yaml:"name"`
	Amount      string    `json:"amount" yaml:"amount"`
	Deadline    string    `json:"deadline" yaml:"deadline"`
	Link        string    `json:"link,omitempty" yaml:"link"`
	Source      string    `json:"source" yaml:"source"`
	Description string    `json:"description,omitempty" yaml:"description"`
	Eligibility string    `json:"eligibility,omitempty" yaml:"eligibility"`
}

// Scored is a record annotated with its relevance for one profile.
type Scored struct {
	Scholarship
	RelevanceScore float64 `json:"relevanceScore"`
}

// Profile is what a student submits for matching. Only FieldOfStudy,
// DesiredAmount, SpecialCategories and Interests take part in scoring.
type Profile struct {
	Name              string   `json:"name,omitempty" yaml:"name"`
	Email             string   `json:"email,omitempty" yaml:"email"`
	FieldOfStudy      string   `json:"fieldOfStudy" yaml:"fieldOfStudy"`
	GPA               string   `json:"gpa,omitempty" yaml:"gpa"`
	Location          string   `json:"location,omitempty" yaml:"location"`
	IncomeLevel       string   `json:"incomeLevel,omitempty" yaml:"incomeLevel"`
	SpecialCategories []string `json:"specialCategories" yaml:"specialCategories"`
	Interests         []string `json:"interests" yaml:"interests"`
	DesiredAmount     string   `json:"desiredAmount" yaml:"desiredAmount"`
}

// Repository is the catalog store. ListAll returns every record in catalog
// order; ReplaceAll swaps the whole catalog for items.
type Repository interface {
	ListAll(ctx context.Context) ([]Scholarship, error)
	ReplaceAll(ctx context.Context, items []Scholarship) error
}

// NewID returns the stable id of a record with the given name and source.
func NewID(name, source string) uuid.UUID {
	return uuid.NewSHA1(idSpace, []byte(strings.TrimSpace(name)+"\x00"+strings.TrimSpace(source)))
}

// WithID fills in a missing id.
func (s Scholarship) WithID() Scholarship {
	if s.ID == uuid.Nil {
		s.ID = NewID(s.Name, s.Source)
	}
	return s
}

// ParseAmount turns an amount string into a whole number. The sentinel,
// text without digits and values that overflow all resolve to 0.
func ParseAmount(amount string) int64 {
	if amount == AmountVaries {
		return 0
	}
	digits := nlp.DigitsOnly(amount)
	if digits == "" {
		return 0
	}
	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// ParseDeadline parses a deadline in loc. ok is false for the sentinel and
// for anything not in DeadlineLayout.
func ParseDeadline(deadline string, loc *time.Location) (t time.Time, ok bool) {
	if deadline == DeadlineVaries || strings.TrimSpace(deadline) == "" {
		return time.Time{}, false
	}
	if loc == nil {
		loc = time.Local
	}
	t, err := time.ParseInLocation(DeadlineLayout, strings.TrimSpace(deadline), loc)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// AmountValue is the numeric amount of the record.
func (s Scholarship) AmountValue() int64 { return ParseAmount(s.Amount) }

// DeadlineDate is the parsed deadline of the record.
func (s Scholarship) DeadlineDate(loc *time.Location) (time.Time, bool) {
	return ParseDeadline(s.Deadline, loc)
}

// HasFlexibleDeadline reports whether the record uses the deadline sentinel.
func (s Scholarship) HasFlexibleDeadline() bool { return s.Deadline == DeadlineVaries }

// Key identifies the record in a favorites set.
func (s Scholarship) Key() string { return s.Name }
