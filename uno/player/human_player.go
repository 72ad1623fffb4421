package player

import (
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/game"
	"github.com/ratel-online/uno/uno/msg"
	"github.com/ratel-online/uno/uno/ui"
)

type humanStrategy struct {
	name    string
	console *ui.Console
	hand    handHolder
	state   func() game.State
}

// NewHumanStrategy asks whoever sits at the console. They may decline to play
// and draw instead.
func NewHumanStrategy(name string, console *ui.Console) game.Strategy {
	return &humanStrategy{name: name, console: console}
}

func (s *humanStrategy) observe(holder handHolder) {
	s.hand = holder
}

func (s *humanStrategy) ObserveState(state func() game.State) {
	s.state = state
}

func (s *humanStrategy) SelectCard(legalCards []card.Card, topCard card.Card) (card.Card, error) {
	s.console.Print(msg.Message.HumanPlayerTurnStarted(s.name, s.table(topCard)))

	selected, err := s.console.PromptCardSelection(legalCards)
	if err != nil {
		return nil, err
	}
	return bind(selected, s.SelectColor)
}

func (s *humanStrategy) SelectColor() (color.Color, error) {
	return s.console.PromptColor()
}

func (s *humanStrategy) NoLegalCards(topCard card.Card) {
	s.console.Print(msg.Message.HumanPlayerHasNoMatchingCardsInHand(s.name, topCard, s.cards()))
}

func (s *humanStrategy) table(topCard card.Card) game.State {
	if s.state != nil {
		return s.state()
	}
	return game.State{LastPlayedCard: topCard, CurrentPlayerHand: s.cards()}
}

func (s *humanStrategy) cards() []card.Card {
	if s.hand == nil {
		return nil
	}
	return s.hand.Hand()
}
