package game

import (
	"github.com/ratel-online/uno/uno/card"
)

// Playable reports whether candidateCard matches lastPlayedCard by symbol or color,
// or is a plain wild. A wild draw four never matches; LegalCards decides when it
// may be played.
func Playable(candidateCard card.Card, lastPlayedCard card.Card) bool {
	switch candidateCard.Symbol() {
	case card.Wild:
		return true
	case card.WildDrawFour:
		return false
	}
	return candidateCard.Symbol() == lastPlayedCard.Symbol() || sameColor(candidateCard, lastPlayedCard)
}

// LegalCards filters cards down to the ones that may be played on lastPlayedCard.
// Wild draw fours are legal only when none of the cards shares the top card's
// color. Duplicates are kept.
func LegalCards(cards []card.Card, lastPlayedCard card.Card) []card.Card {
	var (
		legalCards        []card.Card
		wildDrawFourCards []card.Card
		colorMatches      int
	)

	for _, candidateCard := range cards {
		if candidateCard.Symbol() == card.WildDrawFour {
			wildDrawFourCards = append(wildDrawFourCards, candidateCard)
			continue
		}
		if Playable(candidateCard, lastPlayedCard) {
			legalCards = append(legalCards, candidateCard)
		}
		if sameColor(candidateCard, lastPlayedCard) {
			colorMatches++
		}
	}

	if colorMatches == 0 {
		legalCards = append(legalCards, wildDrawFourCards...)
	}
	return legalCards
}

func sameColor(candidateCard card.Card, lastPlayedCard card.Card) bool {
	return candidateCard.Color() != nil && candidateCard.Color() == lastPlayedCard.Color()
}
