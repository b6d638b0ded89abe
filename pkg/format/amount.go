// Package format renders record fields for display.
package format

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/artem13815/scholarship/pkg/nlp"
	"github.com/artem13815/scholarship/pkg/scholarship"
)

// Amount classes, smallest to largest.
const (
	AmountUnknown   = "amount-unknown"
	AmountSmall     = "amount-small"
	AmountMedium    = "amount-medium"
	AmountLarge     = "amount-large"
	AmountVeryLarge = "amount-very-large"
)

var printer = message.NewPrinter(language.AmericanEnglish)

// AmountView is the display form of an amount.
type AmountView struct {
	Text  string `json:"text"`
	Value int64  `json:"value"`
	Class string `json:"class"`
}

// FormatAmount renders amount as "$12,345" and classifies its size.
func FormatAmount(amount string) AmountView {
	if amount == scholarship.AmountVaries {
		return AmountView{Text: scholarship.AmountVaries, Value: 0, Class: AmountUnknown}
	}
	value := scholarship.ParseAmount(amount)
	return AmountView{
		Text:  Dollars(value),
		Value: value,
		Class: amountClass(value),
	}
}

// Dollars formats n with a dollar sign and US thousands separators.
func Dollars(n int64) string {
	return printer.Sprintf("$%d", n)
}

// DisplayAmount is FormatAmount(amount).Text, except that text with no
// digits at all is returned unchanged.
func DisplayAmount(amount string) string {
	if amount != scholarship.AmountVaries && nlp.DigitsOnly(amount) == "" {
		return amount
	}
	return FormatAmount(amount).Text
}

func amountClass(v int64) string {
	switch {
	case v >= 10000:
		return AmountVeryLarge
	case v >= 5000:
		return AmountLarge
	case v >= 1000:
		return AmountMedium
	default:
		return AmountSmall
	}
}
