package card

import (
	"fmt"

	"github.com/ratel-online/uno/uno/card/action"
	"github.com/ratel-online/uno/uno/card/color"
)

type NumberCard struct {
	color  color.Color
	number int
}

func NewNumberCard(color color.Color, number int) NumberCard {
	if number < 0 || number > 9 {
		panic(fmt.Sprintf("card: number %d out of range", number))
	}
	mustHaveColor(color, NumberSymbol(number))
	return NumberCard{
		color:  color,
		number: number,
	}
}

func (c NumberCard) Symbol() Symbol {
	return NumberSymbol(c.number)
}

func (c NumberCard) Actions() []action.Action {
	return []action.Action{}
}

func (c NumberCard) Action() bool {
	return false
}

func (c NumberCard) Wild() bool {
	return false
}

func (c NumberCard) Color() color.Color {
	return c.color
}

func (c NumberCard) Equal(other Card) bool {
	return sameKind(c, other)
}

func (c NumberCard) Copy() Card {
	return c
}

func (c NumberCard) Number() int {
	return c.number
}

func (c NumberCard) String() string {
	return c.color.Paintf("[%d]", c.number)
}
