package game

import (
	"fmt"

	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/action"
	"github.com/ratel-online/uno/uno/event"
)

// PerformCardActions applies the effects of a card that just landed on the pile.
// Draw penalties do not stack: the penalized player draws and loses the turn.
func (g *Game) PerformCardActions(playedCard card.Card) error {
	if playedCard.Wild() && playedCard.Color() == nil {
		return fmt.Errorf("%w%s resolved without a color", consts.ErrorsIllegalPlay, card.Describe(playedCard))
	}
	for _, cardAction := range playedCard.Actions() {
		switch cardAction := cardAction.(type) {
		case action.DrawCardsAction:
			player := g.players.Current()
			cards, err := g.dealer.Draw(cardAction.Amount())
			if err != nil {
				return err
			}
			g.deal(player, cards)
		case action.ReverseTurnsAction:
			g.players.Reverse()
			g.events.TurnOrderReversed.Emit(event.TurnOrderReversedPayload{
				Turn: g.players.Turn(),
			})
		case action.SkipTurnAction:
			skippedPlayer := g.players.Skip()
			g.events.TurnSkipped.Emit(event.TurnSkippedPayload{
				PlayerName: skippedPlayer.Name(),
			})
		default:
			return fmt.Errorf("unknown card action %v", cardAction)
		}
	}
	return nil
}
