package card

import (
	"github.com/ratel-online/uno/uno/card/action"
	"github.com/ratel-online/uno/uno/card/color"
)

type WildCard struct{}

func NewWildCard() WildCard {
	return WildCard{}
}

func (c WildCard) Symbol() Symbol {
	return Wild
}

func (c WildCard) Actions() []action.Action {
	return []action.Action{}
}

func (c WildCard) Action() bool {
	return false
}

func (c WildCard) Wild() bool {
	return true
}

func (c WildCard) Color() color.Color {
	return nil
}

func (c WildCard) Equal(other Card) bool {
	return sameWild(c, other)
}

func (c WildCard) Copy() Card {
	return c
}

func (c WildCard) String() string {
	return color.Wild("(*)")
}
