package main

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"

	"github.com/artem13815/scholarship/pkg/matching"
	"github.com/artem13815/scholarship/pkg/scholarship"
)

type option struct {
	ID    string
	Label string
}

var (
	categoryOptions = []option{
		{"first-gen", "First Generation Student"},
		{"minority", "Underrepresented Minority"},
		{"veteran", "Veteran/Military"},
		{"international", "International Student"},
		{"athlete", "Student Athlete"},
		{"disability", "Student with Disability"},
		{"lgbtq", "LGBTQ+"},
	}
	interestOptions = []option{
		{"stem", "STEM"},
		{"arts", "Arts & Humanities"},
		{"business", "Business"},
		{"healthcare", "Healthcare"},
		{"education", "Education"},
		{"social-sciences", "Social Sciences"},
		{"law", "Law"},
	}
	incomeOptions = []option{
		{"", "Prefer not to say"},
		{"low", "Low Income (Below $30,000)"},
		{"middle-low", "Middle-Low Income ($30,000 - $60,000)"},
		{"middle", "Middle Income ($60,000 - $90,000)"},
		{"middle-high", "Middle-High Income ($90,000 - $120,000)"},
		{"high", "High Income (Above $120,000)"},
	}
	amountLabels = map[string]string{
		matching.BracketSmall:     "Small Grants (Up to $1,000)",
		matching.BracketMedium:    "Medium Scholarships ($1,000 - $5,000)",
		matching.BracketLarge:     "Large Scholarships ($5,000 - $10,000)",
		matching.BracketVeryLarge: "Very Large Scholarships (Above $10,000)",
		matching.BracketFullRide:  "Full Tuition Scholarships",
	}
	amountOptions = bracketOptions()
)

const doneLabel = "Done"

// bracketOptions offers "any amount" followed by every scoring bracket.
func bracketOptions() []option {
	opts := []option{{"", "Any Amount"}}
	for _, b := range matching.Brackets {
		label, ok := amountLabels[b]
		if !ok {
			label = b
		}
		opts = append(opts, option{b, label})
	}
	return opts
}

// asker is the subset of terminal interaction the form needs.
type asker interface {
	Ask(label string, validate func(string) error) (string, error)
	Choose(label string, items []string) (int, error)
}

type terminal struct{}

func (terminal) Ask(label string, validate func(string) error) (string, error) {
	p := promptui.Prompt{Label: label, Validate: validate}
	return p.Run()
}

func (terminal) Choose(label string, items []string) (int, error) {
	s := promptui.Select{Label: label, Items: items, Size: len(items)}
	i, _, err := s.Run()
	return i, err
}

// collectProfile walks the user through the three form steps: basic info,
// academic details and preferences.
func collectProfile(a asker) (scholarship.Profile, error) {
	var p scholarship.Profile
	var err error

	// Basic info.
	if p.Name, err = a.Ask("Full name", nil); err != nil {
		return p, err
	}
	if p.Email, err = a.Ask("Email", validateEmail); err != nil {
		return p, err
	}
	if p.Location, err = a.Ask("Location (state or country)", nil); err != nil {
		return p, err
	}

	// Academic details.
	if p.FieldOfStudy, err = a.Ask("Field of study", required("field of study")); err != nil {
		return p, err
	}
	if p.GPA, err = a.Ask("GPA (0.0 - 4.0, optional)", validateGPA); err != nil {
		return p, err
	}

	// Preferences.
	if p.IncomeLevel, err = chooseOne(a, "Income level", incomeOptions); err != nil {
		return p, err
	}
	if p.SpecialCategories, err = chooseMany(a, "Special categories", categoryOptions); err != nil {
		return p, err
	}
	if p.Interests, err = chooseMany(a, "Interests", interestOptions); err != nil {
		return p, err
	}
	if p.DesiredAmount, err = chooseOne(a, "Desired amount", amountOptions); err != nil {
		return p, err
	}

	p.Name = strings.TrimSpace(p.Name)
	p.Email = strings.TrimSpace(p.Email)
	p.Location = strings.TrimSpace(p.Location)
	p.FieldOfStudy = strings.TrimSpace(p.FieldOfStudy)
	p.GPA = strings.TrimSpace(p.GPA)
	return p, nil
}

func chooseOne(a asker, label string, opts []option) (string, error) {
	labels := make([]string, len(opts))
	for i, o := range opts {
		labels[i] = o.Label
	}
	i, err := a.Choose(label, labels)
	if err != nil {
		return "", err
	}
	return opts[i].ID, nil
}

// chooseMany toggles options until the user picks Done. Order of selection
// is kept.
func chooseMany(a asker, label string, opts []option) ([]string, error) {
	picked := []string{}
	for {
		labels := make([]string, 0, len(opts)+1)
		labels = append(labels, doneLabel)
		for _, o := range opts {
			box := "[ ]"
			if slices.Contains(picked, o.ID) {
				box = "[x]"
			}
			labels = append(labels, box+" "+o.Label)
		}
		i, err := a.Choose(label, labels)
		if err != nil {
			return nil, err
		}
		if i == 0 {
			return picked, nil
		}
		id := opts[i-1].ID
		if slices.Contains(picked, id) {
			picked = slices.DeleteFunc(picked, func(s string) bool { return s == id })
		} else {
			picked = append(picked, id)
		}
	}
}

func required(what string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", what)
		}
		return nil
	}
}

func validateEmail(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if at := strings.Index(s, "@"); at < 1 || at == len(s)-1 {
		return errors.New("not an email address")
	}
	return nil
}

func validateGPA(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 || v > 4 {
		return errors.New("GPA must be a number between 0.0 and 4.0")
	}
	return nil
}
