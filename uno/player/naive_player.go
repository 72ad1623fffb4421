package player

import (
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/game"
	"github.com/ratel-online/uno/uno/rng"
)

type naiveStrategy struct {
	gen rng.Generator
}

func NewNaiveStrategy(gen rng.Generator) game.Strategy {
	return &naiveStrategy{gen: gen}
}

func (s *naiveStrategy) SelectCard(legalCards []card.Card, _ card.Card) (card.Card, error) {
	return bind(legalCards[0], s.SelectColor)
}

func (s *naiveStrategy) SelectColor() (color.Color, error) {
	return randomColor(s.gen), nil
}
