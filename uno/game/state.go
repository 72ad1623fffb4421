package game

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/ratel-online/uno/uno/card"
)

// State is what a player gets to see of the game.
type State struct {
	GameID            uuid.UUID
	Turn              int
	Reversed          bool
	LastPlayedCard    card.Card
	PlayedCards       []card.Card
	DeckSize          int
	CurrentPlayerHand []card.Card
	PlayerSequence    []string
	PlayerHandCounts  map[string]int
}

func (g *Game) ExtractState(player *Player) State {
	playerSequence := make([]string, 0, g.players.Len())
	playerHandCounts := make(map[string]int, g.players.Len())

	g.players.ForEach(func(player *Player) {
		playerSequence = append(playerSequence, player.Name())
		playerHandCounts[player.Name()] = player.Size()
	})

	var hand []card.Card
	if player != nil {
		hand = player.Hand()
	}

	return State{
		GameID:            g.id,
		Turn:              g.players.Turn(),
		Reversed:          g.players.Reversed(),
		LastPlayedCard:    g.dealer.Pile().Top(),
		PlayedCards:       g.dealer.Pile().Cards(),
		DeckSize:          g.dealer.Deck().Len(),
		CurrentPlayerHand: hand,
		PlayerSequence:    playerSequence,
		PlayerHandCounts:  playerHandCounts,
	}
}

func (s State) String() string {
	var lines []string
	lines = append(lines, fmt.Sprintf("Last played card is %s", s.LastPlayedCard))

	// A State built without a game has no seats to list.
	if len(s.PlayerSequence) > 0 {
		var playerStatuses []string
		for _, playerName := range s.PlayerSequence {
			playerStatus := fmt.Sprintf("%s (%d card(s))", playerName, s.PlayerHandCounts[playerName])
			playerStatuses = append(playerStatuses, playerStatus)
		}
		direction := "clockwise"
		if s.Reversed {
			direction = "counterclockwise"
		}
		lines = append(lines, fmt.Sprintf("Turn order (%s): %s", direction, strings.Join(playerStatuses, ", ")))
		lines = append(lines, fmt.Sprintf("Deck: %d card(s), discard pile: %d card(s)", s.DeckSize, len(s.PlayedCards)))
	}

	lines = append(lines, fmt.Sprintf("Your hand is %s", s.CurrentPlayerHand))

	return strings.Join(lines, "\n")
}
