package game

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/event"
	"github.com/ratel-online/uno/uno/rng"
)

type Phase int

const (
	PhaseDealing Phase = iota
	PhaseFirstCard
	PhaseTurn
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseDealing:
		return "dealing"
	case PhaseFirstCard:
		return "first card"
	case PhaseTurn:
		return "turn"
	case PhaseGameOver:
		return "game over"
	}
	return fmt.Sprintf("phase(%d)", int(p))
}

// Options are options for creating a new game
type Options struct {
	InitialCards int
	// Generator shuffles the deck. A time seeded one is used when nil.
	Generator rng.Generator
}

// DefaultOptions returns the default options
func DefaultOptions() Options {
	return Options{
		InitialCards: consts.InitialCards,
	}
}

type Game struct {
	id      uuid.UUID
	players *PlayerIterator
	dealer  *Dealer
	events  *event.Bus
	phase   Phase
	winner  *Player
}

// New seats players in the given order. It needs 2 to 5 players with distinct names.
func New(players []*Player, options Options) (*Game, error) {
	if len(players) < consts.MinPlayers || len(players) > consts.MaxPlayers {
		return nil, fmt.Errorf("%w(expected %d-%d players, got %d)", consts.ErrorsGamePlayersInvalid, consts.MinPlayers, consts.MaxPlayers, len(players))
	}
	seen := make(map[string]bool, len(players))
	for _, player := range players {
		if seen[player.Name()] {
			return nil, fmt.Errorf("%w(%s)", consts.ErrorsPlayerNameDuplicated, player.Name())
		}
		seen[player.Name()] = true
	}
	if options.InitialCards <= 0 {
		options.InitialCards = consts.InitialCards
	}
	if options.Generator == nil {
		options.Generator = rng.New(0)
	}

	g := &Game{
		id:      uuid.New(),
		players: newPlayerIterator(players),
		dealer:  NewDealer(len(players), options.InitialCards, options.Generator),
		events:  event.NewBus(),
		phase:   PhaseDealing,
	}
	for _, player := range players {
		if observer, ok := player.strategy.(StateObserver); ok {
			seat := player
			observer.ObserveState(func() State { return g.ExtractState(seat) })
		}
	}
	return g, nil
}

func (g *Game) ID() uuid.UUID {
	return g.id
}

func (g *Game) Players() *PlayerIterator {
	return g.players
}

func (g *Game) Dealer() *Dealer {
	return g.dealer
}

func (g *Game) Events() *event.Bus {
	return g.events
}

func (g *Game) Phase() Phase {
	return g.phase
}

// Winner is nil until the game is over.
func (g *Game) Winner() *Player {
	return g.winner
}

func (g *Game) Current() *Player {
	return g.players.Current()
}

func (g *Game) GetPlayerCards(name string) []card.Card {
	player := g.players.Get(name)
	if player == nil {
		return nil
	}
	return player.Hand()
}

// Run plays a whole game and returns the winner.
func (g *Game) Run() (*Player, error) {
	names := make([]string, 0, g.players.Len())
	g.players.ForEach(func(player *Player) {
		names = append(names, player.Name())
	})
	g.logf("game started, players %s", strings.Join(names, ", "))

	if err := g.Deal(); err != nil {
		return nil, err
	}
	if err := g.PlayFirstCard(); err != nil {
		return nil, err
	}
	for {
		winner, err := g.PlayTurn()
		if err != nil {
			return nil, err
		}
		if winner != nil {
			return winner, nil
		}
	}
}

func (g *Game) Deal() error {
	if err := g.expectPhase(PhaseDealing); err != nil {
		return err
	}
	hands, err := g.dealer.DrawInitialHands()
	if err != nil {
		return err
	}
	seat := 0
	g.players.ForEach(func(player *Player) {
		g.deal(player, hands[seat])
		seat++
	})
	g.phase = PhaseFirstCard
	return nil
}

// PlayFirstCard flips the opening card. Seat 0 picks the color of a wild card,
// and an action card takes effect before anyone's turn.
func (g *Game) PlayFirstCard() error {
	if err := g.expectPhase(PhaseFirstCard); err != nil {
		return err
	}
	firstCard, err := g.dealer.FlipInitialCard()
	if err != nil {
		return err
	}
	g.events.FirstCardPlayed.Emit(event.FirstCardPlayedPayload{
		Card: firstCard,
	})

	if firstCard.Wild() {
		chooser := g.players.First()
		chosenColor, err := chooser.SelectColor()
		if err != nil {
			return err
		}
		firstCard = card.NewColoredCard(firstCard, chosenColor)
		g.dealer.Pile().ReplaceTop(firstCard)
		g.events.ColorPicked.Emit(event.ColorPickedPayload{
			PlayerName: chooser.Name(),
			Color:      chosenColor,
		})
	}

	g.phase = PhaseTurn
	g.logTurn()
	if firstCard.Action() {
		return g.PerformCardActions(firstCard)
	}
	return nil
}

// PlayTurn lets the next player play. It returns the winner when that play empties
// their hand.
func (g *Game) PlayTurn() (*Player, error) {
	if g.phase == PhaseGameOver {
		return g.winner, consts.ErrorsGameOver
	}
	if err := g.expectPhase(PhaseTurn); err != nil {
		return nil, err
	}

	player := g.players.Next()
	topCard, err := g.dealer.Top()
	if err != nil {
		return nil, err
	}

	playedCard, err := player.Play(topCard, nil)
	if err != nil {
		return nil, err
	}

	drawn := false
	if playedCard == nil {
		extraCards, err := g.dealer.Draw(1)
		if err != nil {
			return nil, err
		}
		g.deal(player, extraCards)
		playedCard, err = player.Play(topCard, extraCards)
		if err != nil {
			return nil, err
		}
		drawn = true
	}

	if playedCard == nil {
		g.events.PlayerPassed.Emit(event.PlayerPassedPayload{
			PlayerName: player.Name(),
		})
		g.logTurn()
		return nil, nil
	}

	g.dealer.Discard(playedCard)
	g.events.CardPlayed.Emit(event.CardPlayedPayload{
		PlayerName: player.Name(),
		Card:       playedCard,
		Drawn:      drawn,
	})
	if playedCard.Wild() {
		g.events.ColorPicked.Emit(event.ColorPickedPayload{
			PlayerName: player.Name(),
			Color:      playedCard.Color(),
		})
	}

	if player.NoCards() {
		g.phase = PhaseGameOver
		g.winner = player
		g.events.GameWon.Emit(event.GameWonPayload{
			PlayerName: player.Name(),
			Turn:       g.players.Turn(),
		})
		g.logf("game over, %s won on turn %d", player.Name(), g.players.Turn())
		return player, nil
	}
	if player.Size() == 1 {
		g.events.UnoCalled.Emit(event.UnoCalledPayload{
			PlayerName: player.Name(),
		})
	}

	g.logTurn()
	if playedCard.Action() {
		if err := g.PerformCardActions(playedCard); err != nil {
			return nil, err
		}
	}
	return nil, nil
}

func (g *Game) deal(player *Player, cards []card.Card) {
	player.Take(cards)
	g.events.CardsDrawn.Emit(event.CardsDrawnPayload{
		PlayerName: player.Name(),
		Cards:      cards,
	})
}

func (g *Game) expectPhase(phase Phase) error {
	if g.phase != phase {
		return fmt.Errorf("%w(expected %s, game is in %s)", consts.ErrorsPhaseInvalid, phase, g.phase)
	}
	return nil
}

func (g *Game) logTurn() {
	currentName := "initial"
	if current := g.players.Current(); current != nil {
		currentName = current.Name()
	}
	g.logf("turn=%d player=%s top=%s deck=%d pile=%d",
		g.players.Turn(),
		currentName,
		card.Describe(g.dealer.Pile().Top()),
		g.dealer.Deck().Len(),
		g.dealer.Pile().Len(),
	)
}

func (g *Game) logf(format string, args ...interface{}) {
	log.Infof("[uno %s] %s\n", g.id, fmt.Sprintf(format, args...))
}
