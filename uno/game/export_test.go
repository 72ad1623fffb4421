package game

import (
	"fmt"

	"github.com/ratel-online/uno/uno/card"
)

// StackDeck moves cards to the front of the deck, in order, so they are drawn first.
func StackDeck(g *Game, cards ...card.Card) {
	deck := g.dealer.deck
	stacked := make([]card.Card, 0, len(deck.cards))
	rest := deck.cards
	for _, wanted := range cards {
		found := false
		for i, candidate := range rest {
			if candidate.Equal(wanted) {
				stacked = append(stacked, candidate)
				rest = append(rest[:i:i], rest[i+1:]...)
				found = true
				break
			}
		}
		if !found {
			panic(fmt.Sprintf("stack deck: %s is not in the deck", card.Describe(wanted)))
		}
	}
	deck.cards = append(stacked, rest...)
}
