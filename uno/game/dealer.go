package game

import (
	"fmt"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/rng"
)

// Dealer owns the deck and the discard pile and is the only way cards leave them.
type Dealer struct {
	deck *Deck
	pile *Pile

	players      int
	initialCards int
}

func NewDealer(players int, initialCards int, gen rng.Generator) *Dealer {
	return &Dealer{
		deck:         NewDeck(gen),
		pile:         NewPile(),
		players:      players,
		initialCards: initialCards,
	}
}

func (d *Dealer) Deck() *Deck {
	return d.deck
}

func (d *Dealer) Pile() *Pile {
	return d.pile
}

// Draw takes amount cards from the deck. When the deck runs short, the rest of it
// is drawn, the discard pile is recycled into the deck and the remainder is drawn
// from the refilled deck.
func (d *Dealer) Draw(amount int) ([]card.Card, error) {
	if amount <= 0 {
		panic(fmt.Sprintf("dealer: cannot draw %d cards", amount))
	}
	available := d.deck.Len()
	if amount <= available {
		return d.deck.Draw(amount)
	}

	recyclable := d.pile.Len() - 1
	if recyclable < 0 {
		recyclable = 0
	}
	if available+recyclable < amount {
		return nil, fmt.Errorf("%w(%d requested, %d in deck, %d recyclable)", consts.ErrorsDeckExhausted, amount, available, recyclable)
	}

	cards := make([]card.Card, 0, amount)
	if available > 0 {
		remaining, err := d.deck.Draw(available)
		if err != nil {
			return nil, err
		}
		cards = append(cards, remaining...)
	}

	recycled := d.pile.Recycle()
	log.Infof("recycling discard pile, %d cards go back into the deck\n", len(recycled))
	d.deck.Refill(recycled)

	rest, err := d.deck.Draw(amount - available)
	if err != nil {
		return nil, err
	}
	return append(cards, rest...), nil
}

// Discard puts card on top of the pile. Legality is checked by the caller.
func (d *Dealer) Discard(card card.Card) {
	if card == nil {
		panic("dealer: discard of a nil card")
	}
	d.pile.Add(card)
}

func (d *Dealer) Top() (card.Card, error) {
	top := d.pile.Top()
	if top == nil {
		return nil, consts.ErrorsEmptyPile
	}
	return top, nil
}

// DrawInitialHands deals a full hand to each seat in turn: the first seat gets
// its cards before the second seat gets any.
func (d *Dealer) DrawInitialHands() ([][]card.Card, error) {
	hands := make([][]card.Card, 0, d.players)
	for seat := 0; seat < d.players; seat++ {
		hand, err := d.Draw(d.initialCards)
		if err != nil {
			return nil, err
		}
		hands = append(hands, hand)
	}
	return hands, nil
}

func (d *Dealer) FlipInitialCard() (card.Card, error) {
	cards, err := d.Draw(1)
	if err != nil {
		return nil, err
	}
	d.Discard(cards[0])
	return cards[0], nil
}
