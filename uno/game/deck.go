package game

import (
	"fmt"

	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/rng"
)

// Deck is the face-down draw pile. The top of the deck is the front of cards.
type Deck struct {
	cards []card.Card
	gen   rng.Generator
}

func NewDeck(gen rng.Generator) *Deck {
	deck := &Deck{gen: gen}
	deck.Refill(GenerateDefaultDeck())
	return deck
}

func (d *Deck) Draw(amount int) ([]card.Card, error) {
	if amount <= 0 {
		panic(fmt.Sprintf("deck: cannot draw %d cards", amount))
	}
	if len(d.cards) < amount {
		return nil, fmt.Errorf("%w(%d requested, %d left)", consts.ErrorsInsufficientCards, amount, len(d.cards))
	}
	cards := make([]card.Card, amount)
	copy(cards, d.cards[:amount])
	d.cards = d.cards[amount:]
	return cards, nil
}

// Refill puts cards back into an empty deck and shuffles it.
func (d *Deck) Refill(cards []card.Card) {
	if len(d.cards) != 0 {
		panic(fmt.Sprintf("deck: refill with %d cards still in the deck", len(d.cards)))
	}
	d.cards = append(make([]card.Card, 0, len(cards)), cards...)
	shuffleCards(d.gen, d.cards)
}

func (d *Deck) Len() int {
	return len(d.cards)
}

func (d *Deck) Cards() []card.Card {
	cards := make([]card.Card, len(d.cards))
	copy(cards, d.cards)
	return cards
}

// GenerateDefaultDeck returns the 108 standard cards, unshuffled.
func GenerateDefaultDeck() []card.Card {
	cards := make([]card.Card, 0, consts.DeckSize)
	for _, cardColor := range color.All {
		cards = append(cards, createColorCards(cardColor)...)
	}
	cards = append(cards, createBlackCards()...)
	return cards
}

func createColorCards(cardColor color.Color) []card.Card {
	cards := []card.Card{card.NewNumberCard(cardColor, 0)}

	for number := 1; number <= 9; number++ {
		numberCard := card.NewNumberCard(cardColor, number)
		cards = append(cards, numberCard, numberCard)
	}

	skipCard := card.NewSkipCard(cardColor)
	reverseCard := card.NewReverseCard(cardColor)
	drawTwoCard := card.NewDrawTwoCard(cardColor)

	return append(cards,
		skipCard, skipCard,
		reverseCard, reverseCard,
		drawTwoCard, drawTwoCard,
	)
}

func createBlackCards() []card.Card {
	wildCard := card.NewWildCard()
	wildDrawFourCard := card.NewWildDrawFourCard()

	return []card.Card{
		wildCard, wildCard, wildCard, wildCard,
		wildDrawFourCard, wildDrawFourCard, wildDrawFourCard, wildDrawFourCard,
	}
}

func shuffleCards(gen rng.Generator, cards []card.Card) {
	rng.Shuffle(gen, len(cards), func(i, j int) { cards[i], cards[j] = cards[j], cards[i] })
}
