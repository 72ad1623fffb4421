package game

import (
	"fmt"

	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
)

// Strategy makes a player's decisions. Calls may block, for example while a human
// is typing; the game waits for them.
type Strategy interface {
	// SelectCard returns one of legalCards, or nil to draw instead. A wild card
	// must be returned with its color bound (see card.NewColoredCard).
	SelectCard(legalCards []card.Card, topCard card.Card) (card.Card, error)
	SelectColor() (color.Color, error)
}

// NoMatchObserver is implemented by strategies that want to hear about turns
// that start without a legal card, since SelectCard is not called for them.
type NoMatchObserver interface {
	NoLegalCards(topCard card.Card)
}

// StateObserver is implemented by strategies that show the table to whoever
// plays the seat. New hands them a view of the game as their seat sees it.
type StateObserver interface {
	ObserveState(state func() State)
}

type Player struct {
	name     string
	hand     *Hand
	strategy Strategy
}

func NewPlayer(name string, strategy Strategy) *Player {
	if strategy == nil {
		panic(fmt.Sprintf("player %s: nil strategy", name))
	}
	return &Player{
		name:     name,
		hand:     NewHand(),
		strategy: strategy,
	}
}

func (p *Player) Name() string {
	return p.name
}

func (p *Player) Hand() []card.Card {
	return p.hand.Cards()
}

func (p *Player) Size() int {
	return p.hand.Size()
}

func (p *Player) NoCards() bool {
	return p.hand.Empty()
}

func (p *Player) Count(searchedCard card.Card) int {
	return p.hand.Count(searchedCard)
}

func (p *Player) Take(cards []card.Card) {
	if len(cards) == 0 {
		panic(fmt.Sprintf("player %s: take of no cards", p.name))
	}
	p.hand.AddCards(cards)
}

func (p *Player) SelectColor() (color.Color, error) {
	chosenColor, err := p.strategy.SelectColor()
	if err != nil {
		return nil, fmt.Errorf("%s selecting a color: %w", p.name, err)
	}
	if chosenColor == nil {
		return nil, fmt.Errorf("%w%s selected no color", consts.ErrorsIllegalPlay, p.name)
	}
	return chosenColor, nil
}

// Play asks the strategy for a card among the legal ones in playableCards (the
// whole hand when empty) and removes it from the hand. It returns nil when no
// card is legal or the strategy declines.
func (p *Player) Play(topCard card.Card, playableCards []card.Card) (card.Card, error) {
	wholeHand := len(playableCards) == 0
	if wholeHand {
		playableCards = p.hand.Cards()
	}

	legalCards := LegalCards(playableCards, topCard)
	if len(legalCards) == 0 {
		if observer, ok := p.strategy.(NoMatchObserver); ok && wholeHand {
			observer.NoLegalCards(topCard)
		}
		return nil, nil
	}

	selectedCard, err := p.strategy.SelectCard(legalCards, topCard)
	if err != nil {
		return nil, fmt.Errorf("%s selecting a card: %w", p.name, err)
	}
	if selectedCard == nil {
		return nil, nil
	}
	if !contains(legalCards, selectedCard) {
		return nil, fmt.Errorf("%w%s is not in %s's legal cards %s", consts.ErrorsIllegalPlay, card.Describe(selectedCard), p.name, card.DescribeAll(legalCards))
	}
	if selectedCard.Wild() && selectedCard.Color() == nil {
		return nil, fmt.Errorf("%w%s played %s without choosing a color", consts.ErrorsIllegalPlay, p.name, card.Describe(selectedCard))
	}
	if !p.hand.RemoveCard(selectedCard) {
		return nil, fmt.Errorf("%w%s is not in %s's hand", consts.ErrorsIllegalPlay, card.Describe(selectedCard), p.name)
	}
	return selectedCard, nil
}

func contains(cards []card.Card, searchedCard card.Card) bool {
	for _, card := range cards {
		if card.Equal(searchedCard) {
			return true
		}
	}
	return false
}
