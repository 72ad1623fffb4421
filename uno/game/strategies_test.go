package game_test

import (
	"errors"

	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/game"
)

// firstLegalStrategy always plays the first legal card and binds wilds to its color.
type firstLegalStrategy struct {
	color   color.Color
	decline bool
}

func (s *firstLegalStrategy) SelectCard(legalCards []card.Card, _ card.Card) (card.Card, error) {
	if s.decline {
		return nil, nil
	}
	selected := legalCards[0]
	if selected.Wild() {
		return card.NewColoredCard(selected, s.color), nil
	}
	return selected, nil
}

func (s *firstLegalStrategy) SelectColor() (color.Color, error) {
	return s.color, nil
}

// watchingStrategy plays like firstLegalStrategy and records what the game
// tells an observing seat.
type watchingStrategy struct {
	firstLegalStrategy
	noMatch []card.Card
	state   func() game.State
}

func (s *watchingStrategy) NoLegalCards(topCard card.Card) {
	s.noMatch = append(s.noMatch, topCard)
}

func (s *watchingStrategy) ObserveState(state func() game.State) {
	s.state = state
}

// fixedStrategy returns the same answers no matter what it is offered.
type fixedStrategy struct {
	card  card.Card
	color color.Color
	err   error
}

func (s *fixedStrategy) SelectCard([]card.Card, card.Card) (card.Card, error) {
	return s.card, s.err
}

func (s *fixedStrategy) SelectColor() (color.Color, error) {
	return s.color, s.err
}

var errStrategyFailed = errors.New("strategy failed")

// unshuffled makes the Fisher-Yates pass swap every card with itself.
type unshuffled struct{}

func (unshuffled) Intn(n int) int {
	return n - 1
}
