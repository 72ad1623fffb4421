package game

import (
	"github.com/ratel-online/uno/uno/card"
)

// Pile is the discard pile. Its last card is the top card every play is judged
// against.
type Pile struct {
	cards []card.Card
}

func NewPile() *Pile {
	return &Pile{cards: make([]card.Card, 0, 54)}
}

func (p *Pile) Add(card card.Card) {
	p.cards = append(p.cards, card)
}

func (p *Pile) Cards() []card.Card {
	cards := make([]card.Card, len(p.cards))
	copy(cards, p.cards)
	return cards
}

func (p *Pile) Len() int {
	return len(p.cards)
}

func (p *Pile) ReplaceTop(card card.Card) {
	if len(p.cards) == 0 {
		panic("pile: no top card to replace")
	}
	p.cards[len(p.cards)-1] = card
}

func (p *Pile) Top() card.Card {
	pileSize := len(p.cards)
	if pileSize == 0 {
		return nil
	}
	return p.cards[pileSize-1]
}

// Recycle takes every card but the top one off the pile and returns fresh copies
// of them, so bound wild cards go back to being colorless.
func (p *Pile) Recycle() []card.Card {
	if len(p.cards) == 0 {
		panic("pile: recycle of an empty pile")
	}
	top := p.cards[len(p.cards)-1]
	recycled := make([]card.Card, 0, len(p.cards)-1)
	for _, discarded := range p.cards[:len(p.cards)-1] {
		recycled = append(recycled, discarded.Copy())
	}
	p.cards = append(make([]card.Card, 0, 54), top)
	return recycled
}
