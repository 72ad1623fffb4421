package player

import (
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/rng"
)

// handHolder is the read-only view of a seat some strategies play from.
type handHolder interface {
	Hand() []card.Card
}

// handObserver is implemented by strategies that need to see their own hand.
type handObserver interface {
	observe(holder handHolder)
}

func randomColor(gen rng.Generator) color.Color {
	return color.All[rng.Choice(gen, len(color.All))]
}

// bind gives a wild card the color chosen by pickColor.
func bind(selected card.Card, pickColor func() (color.Color, error)) (card.Card, error) {
	if selected == nil || !selected.Wild() || card.Bound(selected) {
		return selected, nil
	}
	chosenColor, err := pickColor()
	if err != nil {
		return nil, err
	}
	return card.NewColoredCard(selected, chosenColor), nil
}
