package main

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/scholarship/pkg/matching"
)

// scripted answers prompts in order.
type scripted struct {
	answers []string
	choices []int
}

func (s *scripted) Ask(_ string, validate func(string) error) (string, error) {
	if len(s.answers) == 0 {
		return "", errors.New("no more answers")
	}
	a := s.answers[0]
	s.answers = s.answers[1:]
	if validate != nil {
		if err := validate(a); err != nil {
			return "", err
		}
	}
	return a, nil
}

func (s *scripted) Choose(_ string, items []string) (int, error) {
	if len(s.choices) == 0 {
		return 0, errors.New("no more choices")
	}
	c := s.choices[0]
	s.choices = s.choices[1:]
	if c >= len(items) {
		return 0, errors.New("choice out of range")
	}
	return c, nil
}

func TestCollectProfile(t *testing.T) {
	a := &scripted{
		answers: []string{" Ada ", "ada@example.com", "CA", "Computer Engineering", "3.8"},
		choices: []int{
			1,       // income: low
			1, 4, 0, // categories: first-gen, international, done
			1, 1, 4, 0, // interests: stem on, stem off, healthcare, done
			3, // amount: large
		},
	}
	p, err := collectProfile(a)
	require.NoError(t, err)

	assert.Equal(t, "Ada", p.Name)
	assert.Equal(t, "Computer Engineering", p.FieldOfStudy)
	assert.Equal(t, "low", p.IncomeLevel)
	assert.Equal(t, []string{"first-gen", "international"}, p.SpecialCategories)
	assert.Equal(t, []string{"healthcare"}, p.Interests)
	assert.Equal(t, matching.BracketLarge, p.DesiredAmount)
}

func TestCollectProfileStopsOnInvalidInput(t *testing.T) {
	a := &scripted{answers: []string{"Ada", "not-an-email"}}
	_, err := collectProfile(a)
	assert.Error(t, err)
}

func TestValidators(t *testing.T) {
	assert.NoError(t, validateEmail(""))
	assert.NoError(t, validateEmail("a@b.co"))
	assert.Error(t, validateEmail("@b.co"))
	assert.Error(t, validateEmail("a@"))

	assert.NoError(t, validateGPA(""))
	assert.NoError(t, validateGPA("4.0"))
	assert.Error(t, validateGPA("4.5"))
	assert.Error(t, validateGPA("abc"))

	assert.Error(t, required("field")(" "))
}

func TestAmountOptionsCoverEveryBracket(t *testing.T) {
	require.Len(t, amountOptions, len(matching.Brackets)+1)
	assert.Empty(t, amountOptions[0].ID)
	for i, b := range matching.Brackets {
		assert.Equal(t, b, amountOptions[i+1].ID)
		assert.NotEqual(t, b, amountOptions[i+1].Label, "bracket %s has no label", b)
	}
}
