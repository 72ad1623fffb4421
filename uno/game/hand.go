package game

import (
	"github.com/ratel-online/uno/uno/card"
)

// Hand is an unordered multiset of cards. Equal cards may appear several times.
type Hand struct {
	cards []card.Card
}

func NewHand() *Hand {
	return &Hand{cards: make([]card.Card, 0, 7)}
}

func (h *Hand) AddCards(cards []card.Card) {
	h.cards = append(h.cards, cards...)
}

func (h *Hand) Cards() []card.Card {
	cards := make([]card.Card, len(h.cards))
	copy(cards, h.cards)
	return cards
}

func (h *Hand) Count(searchedCard card.Card) int {
	count := 0
	for _, cardInHand := range h.cards {
		if cardInHand.Equal(searchedCard) {
			count++
		}
	}
	return count
}

func (h *Hand) Empty() bool {
	return len(h.cards) == 0
}

// RemoveCard removes a single card equal to the given one and reports whether
// there was one. The remaining cards keep their order.
func (h *Hand) RemoveCard(card card.Card) bool {
	for index, cardInHand := range h.cards {
		if cardInHand.Equal(card) {
			h.cards = append(h.cards[:index], h.cards[index+1:]...)
			return true
		}
	}
	return false
}

func (h *Hand) Size() int {
	return len(h.cards)
}
