package matching

// Amount bracket labels accepted in Profile.DesiredAmount.
const (
	BracketSmall     = "small"
	BracketMedium    = "medium"
	BracketLarge     = "large"
	BracketVeryLarge = "very-large"
	BracketFullRide  = "full-ride"
)

// Brackets lists the labels in ascending order.
var Brackets = []string{BracketSmall, BracketMedium, BracketLarge, BracketVeryLarge, BracketFullRide}

// InBracket reports whether amount falls into the named bracket.
// Brackets overlap at the top: anything above 20000 is both very-large and
// full-ride. Unknown labels never match.
func InBracket(bracket string, amount int64) bool {
	switch bracket {
	case BracketSmall:
		return amount <= 1000
	case BracketMedium:
		return amount > 1000 && amount <= 5000
	case BracketLarge:
		return amount > 5000 && amount <= 10000
	case BracketVeryLarge:
		return amount > 10000
	case BracketFullRide:
		return amount > 20000
	default:
		return false
	}
}
