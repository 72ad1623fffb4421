package card

import (
	"fmt"
	"strings"
)

// Describe names a card without terminal colors, e.g. "red 7" or "wild(blue)".
func Describe(card Card) string {
	if card == nil {
		return "none"
	}
	if card.Wild() {
		if card.Color() == nil {
			return string(card.Symbol())
		}
		return fmt.Sprintf("%s(%s)", card.Symbol(), card.Color().Name())
	}
	return fmt.Sprintf("%s %s", card.Color().Name(), card.Symbol())
}

func DescribeAll(cards []Card) string {
	names := make([]string, 0, len(cards))
	for _, card := range cards {
		names = append(names, Describe(card))
	}
	return "[" + strings.Join(names, ", ") + "]"
}
