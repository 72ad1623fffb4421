package player

import (
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/game"
	"github.com/ratel-online/uno/uno/rng"
)

type randomStrategy struct {
	gen rng.Generator
}

// NewRandomStrategy plays any legal card and picks any color.
func NewRandomStrategy(gen rng.Generator) game.Strategy {
	return &randomStrategy{gen: gen}
}

func (s *randomStrategy) SelectCard(legalCards []card.Card, _ card.Card) (card.Card, error) {
	selected := legalCards[rng.Choice(s.gen, len(legalCards))]
	return bind(selected, s.SelectColor)
}

func (s *randomStrategy) SelectColor() (color.Color, error) {
	return randomColor(s.gen), nil
}
