package event

import (
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
)

type FirstCardPlayedPayload struct {
	Card card.Card
}

type CardPlayedPayload struct {
	PlayerName string
	Card       card.Card
	// Drawn is set when the card was drawn this very turn.
	Drawn bool
}

type ColorPickedPayload struct {
	PlayerName string
	Color      color.Color
}

type PlayerPassedPayload struct {
	PlayerName string
}

type CardsDrawnPayload struct {
	PlayerName string
	Cards      []card.Card
}

type TurnSkippedPayload struct {
	PlayerName string
}

// TurnOrderReversedPayload carries the turn on which the direction flipped, 0 when
// the first card did it.
type TurnOrderReversedPayload struct {
	Turn int
}

// UnoCalledPayload is emitted when a player is down to a single card.
type UnoCalledPayload struct {
	PlayerName string
}

type GameWonPayload struct {
	PlayerName string
	Turn       int
}

type (
	FirstCardPlayedListener interface {
		OnFirstCardPlayed(FirstCardPlayedPayload)
	}
	CardPlayedListener interface {
		OnCardPlayed(CardPlayedPayload)
	}
	ColorPickedListener interface {
		OnColorPicked(ColorPickedPayload)
	}
	PlayerPassedListener interface {
		OnPlayerPassed(PlayerPassedPayload)
	}
	CardsDrawnListener interface {
		OnCardsDrawn(CardsDrawnPayload)
	}
	TurnSkippedListener interface {
		OnTurnSkipped(TurnSkippedPayload)
	}
	TurnOrderReversedListener interface {
		OnTurnOrderReversed(TurnOrderReversedPayload)
	}
	UnoCalledListener interface {
		OnUnoCalled(UnoCalledPayload)
	}
	GameWonListener interface {
		OnGameWon(GameWonPayload)
	}
)
