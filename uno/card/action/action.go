// Package action describes the side effects an action card has on the turn order
// and on the players' hands once it lands on the discard pile.
package action

import "fmt"

type Action interface {
	fmt.Stringer
}

// DrawCardsAction makes the current player take cards from the dealer.
type DrawCardsAction struct {
	amount int
}

func NewDrawCardsAction(amount int) Action {
	return DrawCardsAction{amount: amount}
}

func (a DrawCardsAction) Amount() int {
	return a.amount
}

func (a DrawCardsAction) String() string {
	return fmt.Sprintf("draw %d", a.amount)
}

// ReverseTurnsAction flips the traversal direction without consuming a turn.
type ReverseTurnsAction struct{}

func NewReverseTurnsAction() Action {
	return ReverseTurnsAction{}
}

func (ReverseTurnsAction) String() string {
	return "reverse"
}

// SkipTurnAction advances the turn order past one player.
type SkipTurnAction struct{}

func NewSkipTurnAction() Action {
	return SkipTurnAction{}
}

func (SkipTurnAction) String() string {
	return "skip"
}
