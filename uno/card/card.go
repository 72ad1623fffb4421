package card

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ratel-online/uno/uno/card/action"
	"github.com/ratel-online/uno/uno/card/color"
)

type Card interface {
	Symbol() Symbol
	// Color is nil for a wild card that has not been bound yet.
	Color() color.Color
	Wild() bool
	Action() bool
	Actions() []action.Action
	Equal(other Card) bool
	// Copy returns the card as it was dealt, dropping any bound color.
	Copy() Card
	String() string
}

type Symbol string

const (
	Skip         Symbol = "skip"
	Reverse      Symbol = "reverse"
	DrawTwo      Symbol = "draw-2"
	Wild         Symbol = "wild"
	WildDrawFour Symbol = "wild-draw-4"
)

func NumberSymbol(number int) Symbol {
	return Symbol(strconv.Itoa(number))
}

func (s Symbol) Wild() bool {
	return strings.HasPrefix(string(s), string(Wild))
}

func (s Symbol) Action() bool {
	switch s {
	case Skip, Reverse, DrawTwo, WildDrawFour:
		return true
	}
	return false
}

// Number returns the face value of a number symbol.
func (s Symbol) Number() (int, bool) {
	if len(s) != 1 || s[0] < '0' || s[0] > '9' {
		return 0, false
	}
	return int(s[0] - '0'), true
}

func ParseSymbol(text string) (Symbol, error) {
	symbol := Symbol(strings.ToLower(strings.TrimSpace(text)))
	if _, ok := symbol.Number(); ok {
		return symbol, nil
	}
	switch symbol {
	case Skip, Reverse, DrawTwo, Wild, WildDrawFour:
		return symbol, nil
	}
	return "", fmt.Errorf("invalid symbol '%s'", text)
}

// NewCard builds the card of the given kind. Wild symbols take a nil color.
func NewCard(cardColor color.Color, symbol Symbol) Card {
	if number, ok := symbol.Number(); ok {
		return NewNumberCard(cardColor, number)
	}
	switch symbol {
	case Skip:
		return NewSkipCard(cardColor)
	case Reverse:
		return NewReverseCard(cardColor)
	case DrawTwo:
		return NewDrawTwoCard(cardColor)
	case Wild:
		mustBeColorless(cardColor)
		return NewWildCard()
	case WildDrawFour:
		mustBeColorless(cardColor)
		return NewWildDrawFourCard()
	}
	panic(fmt.Sprintf("card: unknown symbol '%s'", symbol))
}

func mustHaveColor(cardColor color.Color, symbol Symbol) {
	if cardColor == nil {
		panic(fmt.Sprintf("card: %s card needs a color", symbol))
	}
}

func mustBeColorless(cardColor color.Color) {
	if cardColor != nil {
		panic("card: wild cards are dealt without a color")
	}
}

// sameKind reports whether two non-wild cards share color and symbol.
func sameKind(c Card, other Card) bool {
	return other != nil && !other.Wild() && c.Symbol() == other.Symbol() && c.Color() == other.Color()
}

func sameWild(c Card, other Card) bool {
	return other != nil && c.Symbol() == other.Symbol()
}
