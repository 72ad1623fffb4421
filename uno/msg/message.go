package msg

import (
	"fmt"
	"strings"

	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
)

var Message = MessageWriter{}

type MessageWriter struct{}

func (m MessageWriter) FirstCardPlayed(card card.Card) string {
	return sprintfln("First card is %s", card)
}

func (m MessageWriter) GameStarted(playerNames []string) string {
	return sprintfln("Players: %s", strings.Join(playerNames, ", "))
}

func (m MessageWriter) HumanPlayerDrewCards(cards []card.Card) string {
	return sprintfln("You drew %s!", cards)
}

func (m MessageWriter) HumanPlayerHasNoMatchingCardsInHand(playerName string, lastPlayedCard card.Card, hand []card.Card) string {
	return sprintlns([]string{
		sprintf("%s, none of your cards match %s!", playerName, lastPlayedCard),
		sprintf("Your hand is %s", hand),
	})
}

// HumanPlayerTurnStarted greets the human seat with a view of the table.
func (m MessageWriter) HumanPlayerTurnStarted(playerName string, table fmt.Stringer) string {
	return sprintlns([]string{
		sprintf("It's your turn, %s!", playerName),
		table.String(),
	})
}

func (m MessageWriter) PlayerCalledUno(playerName string) string {
	return sprintfln("%s: Uno!", playerName)
}

func (m MessageWriter) PlayerDrewAndPlayedCard(playerName string, card card.Card) string {
	return sprintfln("%s drew and played %s!", playerName, card)
}

func (m MessageWriter) PlayerDrewCards(playerName string, cards []card.Card) string {
	if len(cards) == 1 {
		return sprintfln("%s drew a card!", playerName)
	}
	return sprintfln("%s drew %d cards!", playerName, len(cards))
}

func (m MessageWriter) PlayerPassed(playerName string) string {
	return sprintfln("%s passed!", playerName)
}

func (m MessageWriter) PlayerPickedColor(playerName string, color color.Color) string {
	return sprintfln("%s picked color %s!", playerName, color)
}

func (m MessageWriter) PlayerPlayedCard(playerName string, card card.Card) string {
	return sprintfln("%s played %s!", playerName, card)
}

func (m MessageWriter) PlayerTurnSkipped(playerName string) string {
	return sprintfln("%s's turn skipped!", playerName)
}

func (m MessageWriter) TurnOrderReversed() string {
	return sprintln("Turn order has been reversed!")
}

func (m MessageWriter) Welcome() string {
	return sprintfln(
		"WELCOME TO %s%s%s",
		color.Red.Paint("U"),
		color.Yellow.Paint("N"),
		color.Blue.Paint("O"),
	)
}

func (m MessageWriter) WinnerFound(playerName string, turn int) string {
	return sprintfln("%s wins after %d turns!", playerName, turn)
}

func sprintf(format string, args ...interface{}) string {
	return fmt.Sprintf(format, args...)
}

func sprintfln(format string, args ...interface{}) string {
	return sprintln(fmt.Sprintf(format, args...))
}

func sprintlns(lines []string) string {
	return sprintln(strings.Join(lines, "\n"))
}

func sprintln(args ...interface{}) string {
	return fmt.Sprintln(args...)
}
