package card

import (
	"github.com/ratel-online/uno/uno/card/action"
	"github.com/ratel-online/uno/uno/card/color"
)

type DrawTwoCard struct {
	color color.Color
}

func NewDrawTwoCard(color color.Color) DrawTwoCard {
	mustHaveColor(color, DrawTwo)
	return DrawTwoCard{color: color}
}

func (c DrawTwoCard) Symbol() Symbol {
	return DrawTwo
}

func (c DrawTwoCard) Actions() []action.Action {
	return []action.Action{
		action.NewSkipTurnAction(),
		action.NewDrawCardsAction(2),
	}
}

func (c DrawTwoCard) Action() bool {
	return true
}

func (c DrawTwoCard) Wild() bool {
	return false
}

func (c DrawTwoCard) Color() color.Color {
	return c.color
}

func (c DrawTwoCard) Equal(other Card) bool {
	return sameKind(c, other)
}

func (c DrawTwoCard) Copy() Card {
	return c
}

func (c DrawTwoCard) String() string {
	return c.color.Paint("+2!")
}
