package card

import (
	"fmt"

	"github.com/ratel-online/uno/uno/card/action"
	"github.com/ratel-online/uno/uno/card/color"
)

// ColoredCard is a wild card whose color has been chosen. Binding happens once:
// a ColoredCard cannot be bound again, and Copy hands back the unbound wild.
type ColoredCard struct {
	card  Card
	color color.Color
}

func NewColoredCard(card Card, color color.Color) ColoredCard {
	if card == nil || !card.Wild() {
		panic(fmt.Sprintf("card: cannot bind a color to %v", card))
	}
	if card.Color() != nil {
		panic(fmt.Sprintf("card: %s already has color %s", card.Symbol(), card.Color().Name()))
	}
	if color == nil {
		panic("card: cannot bind an empty color")
	}
	return ColoredCard{
		card:  card,
		color: color,
	}
}

// Bound reports whether card is a wild card carrying a chosen color.
func Bound(card Card) bool {
	_, bound := card.(ColoredCard)
	return bound
}

func (c ColoredCard) Symbol() Symbol {
	return c.card.Symbol()
}

func (c ColoredCard) Actions() []action.Action {
	return c.card.Actions()
}

func (c ColoredCard) Action() bool {
	return c.card.Action()
}

func (c ColoredCard) Wild() bool {
	return true
}

func (c ColoredCard) Color() color.Color {
	return c.color
}

func (c ColoredCard) Equal(other Card) bool {
	return c.card.Equal(other)
}

func (c ColoredCard) Copy() Card {
	return c.card.Copy()
}

func (c ColoredCard) String() string {
	return c.color.Paint(fmt.Sprintf("%s(%s)", c.card.Symbol(), c.color.Name()))
}
