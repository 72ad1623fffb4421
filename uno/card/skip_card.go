package card

import (
	"github.com/ratel-online/uno/uno/card/action"
	"github.com/ratel-online/uno/uno/card/color"
)

type SkipCard struct {
	color color.Color
}

func NewSkipCard(color color.Color) SkipCard {
	mustHaveColor(color, Skip)
	return SkipCard{color: color}
}

func (c SkipCard) Symbol() Symbol {
	return Skip
}

func (c SkipCard) Actions() []action.Action {
	return []action.Action{
		action.NewSkipTurnAction(),
	}
}

func (c SkipCard) Action() bool {
	return true
}

func (c SkipCard) Wild() bool {
	return false
}

func (c SkipCard) Color() color.Color {
	return c.color
}

func (c SkipCard) Equal(other Card) bool {
	return sameKind(c, other)
}

func (c SkipCard) Copy() Card {
	return c
}

func (c SkipCard) String() string {
	return c.color.Paint("(/)")
}
