package player

import (
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/game"
	"github.com/ratel-online/uno/uno/rng"
)

// goodStrategy plays the card that leaves the most of its hand playable and
// names the color it holds most of.
type goodStrategy struct {
	gen  rng.Generator
	hand handHolder
}

func NewGoodStrategy(gen rng.Generator) game.Strategy {
	return &goodStrategy{gen: gen}
}

func (s *goodStrategy) observe(holder handHolder) {
	s.hand = holder
}

func (s *goodStrategy) SelectCard(legalCards []card.Card, _ card.Card) (card.Card, error) {
	hand := s.currentHand(legalCards)

	mostDiscardableCardIndex := 0
	maxSpareCards := 0
	for cardIndex, playableCard := range legalCards {
		spareCards := 0
		for _, handCard := range hand {
			if game.Playable(handCard, playableCard) {
				spareCards++
			}
		}
		if spareCards > maxSpareCards {
			maxSpareCards = spareCards
			mostDiscardableCardIndex = cardIndex
		}
	}

	return bind(legalCards[mostDiscardableCardIndex], s.SelectColor)
}

func (s *goodStrategy) SelectColor() (color.Color, error) {
	hand := s.currentHand(nil)
	if len(hand) == 0 {
		return randomColor(s.gen), nil
	}

	colorCounts := make(map[color.Color]int)
	for _, handCard := range hand {
		if handCard.Color() == nil {
			for _, anyColor := range color.All {
				colorCounts[anyColor]++
			}
		} else {
			colorCounts[handCard.Color()]++
		}
	}

	var (
		mostFrequentColor       color.Color
		mostFrequentColorAmount int
	)
	for _, availableColor := range color.All {
		if colorCounts[availableColor] > mostFrequentColorAmount {
			mostFrequentColorAmount = colorCounts[availableColor]
			mostFrequentColor = availableColor
		}
	}
	return mostFrequentColor, nil
}

func (s *goodStrategy) currentHand(fallback []card.Card) []card.Card {
	if s.hand == nil {
		return fallback
	}
	return s.hand.Hand()
}
