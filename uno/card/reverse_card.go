package card

import (
	"github.com/ratel-online/uno/uno/card/action"
	"github.com/ratel-online/uno/uno/card/color"
)

type ReverseCard struct {
	color color.Color
}

func NewReverseCard(color color.Color) ReverseCard {
	mustHaveColor(color, Reverse)
	return ReverseCard{color: color}
}

func (c ReverseCard) Symbol() Symbol {
	return Reverse
}

func (c ReverseCard) Actions() []action.Action {
	return []action.Action{
		action.NewReverseTurnsAction(),
	}
}

func (c ReverseCard) Action() bool {
	return true
}

func (c ReverseCard) Wild() bool {
	return false
}

func (c ReverseCard) Color() color.Color {
	return c.color
}

func (c ReverseCard) Equal(other Card) bool {
	return sameKind(c, other)
}

func (c ReverseCard) Copy() Card {
	return c
}

func (c ReverseCard) String() string {
	return c.color.Paint("<=>")
}
