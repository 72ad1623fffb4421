package card

import (
	"github.com/ratel-online/uno/uno/card/action"
	"github.com/ratel-online/uno/uno/card/color"
)

type WildDrawFourCard struct{}

func NewWildDrawFourCard() WildDrawFourCard {
	return WildDrawFourCard{}
}

func (c WildDrawFourCard) Symbol() Symbol {
	return WildDrawFour
}

func (c WildDrawFourCard) Actions() []action.Action {
	return []action.Action{
		action.NewSkipTurnAction(),
		action.NewDrawCardsAction(4),
	}
}

func (c WildDrawFourCard) Action() bool {
	return true
}

func (c WildDrawFourCard) Wild() bool {
	return true
}

func (c WildDrawFourCard) Color() color.Color {
	return nil
}

func (c WildDrawFourCard) Equal(other Card) bool {
	return sameWild(c, other)
}

func (c WildDrawFourCard) Copy() Card {
	return c
}

func (c WildDrawFourCard) String() string {
	return color.Wild("+4!")
}
