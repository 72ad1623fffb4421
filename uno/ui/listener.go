package ui

import (
	"github.com/ratel-online/uno/uno/event"
	"github.com/ratel-online/uno/uno/msg"
)

// ConsoleListener narrates a game on a Console. Cards drawn by the human seat are
// shown face up, everyone else's are only counted.
type ConsoleListener struct {
	console   *Console
	humanName string
}

func NewConsoleListener(console *Console, humanName string) *ConsoleListener {
	return &ConsoleListener{console: console, humanName: humanName}
}

func (l *ConsoleListener) OnFirstCardPlayed(payload event.FirstCardPlayedPayload) {
	l.console.Print(msg.Message.FirstCardPlayed(payload.Card))
}

func (l *ConsoleListener) OnCardPlayed(payload event.CardPlayedPayload) {
	if payload.Drawn {
		l.console.Print(msg.Message.PlayerDrewAndPlayedCard(payload.PlayerName, payload.Card))
		return
	}
	l.console.Print(msg.Message.PlayerPlayedCard(payload.PlayerName, payload.Card))
}

func (l *ConsoleListener) OnColorPicked(payload event.ColorPickedPayload) {
	l.console.Print(msg.Message.PlayerPickedColor(payload.PlayerName, payload.Color))
}

func (l *ConsoleListener) OnPlayerPassed(payload event.PlayerPassedPayload) {
	l.console.Print(msg.Message.PlayerPassed(payload.PlayerName))
}

func (l *ConsoleListener) OnCardsDrawn(payload event.CardsDrawnPayload) {
	if payload.PlayerName == l.humanName {
		l.console.Print(msg.Message.HumanPlayerDrewCards(payload.Cards))
		return
	}
	l.console.Print(msg.Message.PlayerDrewCards(payload.PlayerName, payload.Cards))
}

func (l *ConsoleListener) OnTurnSkipped(payload event.TurnSkippedPayload) {
	l.console.Print(msg.Message.PlayerTurnSkipped(payload.PlayerName))
}

func (l *ConsoleListener) OnTurnOrderReversed(event.TurnOrderReversedPayload) {
	l.console.Print(msg.Message.TurnOrderReversed())
}

func (l *ConsoleListener) OnUnoCalled(payload event.UnoCalledPayload) {
	l.console.Print(msg.Message.PlayerCalledUno(payload.PlayerName))
}

func (l *ConsoleListener) OnGameWon(payload event.GameWonPayload) {
	l.console.Print(msg.Message.WinnerFound(payload.PlayerName, payload.Turn))
}
