package consts

const (
	MinPlayers = 2
	MaxPlayers = 5

	InitialCards = 7
	DeckSize     = 108
)

type Error struct {
	Code int
	Msg  string
	Exit bool
}

func (e Error) Error() string {
	return e.Msg
}

func NewErr(code int, exit bool, msg string) Error {
	return Error{Code: code, Exit: exit, Msg: msg}
}

var (
	ErrorsGamePlayersInvalid   = NewErr(1, true, "Game players invalid. ")
	ErrorsPlayerNameDuplicated = NewErr(1, true, "Player name duplicated. ")
	ErrorsInputInvalid         = NewErr(1, false, "Input invalid. ")

	// ErrorsInsufficientCards is returned by a deck asked for more cards than it holds.
	ErrorsInsufficientCards = NewErr(2, false, "Insufficient cards in deck. ")
	// ErrorsDeckExhausted means deck and discard pile together cannot cover a draw.
	ErrorsDeckExhausted = NewErr(2, true, "Deck exhausted. ")
	ErrorsEmptyPile     = NewErr(2, true, "Discard pile is empty. ")

	// ErrorsIllegalPlay is a strategy contract violation.
	ErrorsIllegalPlay  = NewErr(3, true, "Illegal play. ")
	ErrorsGameOver     = NewErr(3, false, "Game is over. ")
	ErrorsPhaseInvalid = NewErr(3, true, "Game phase invalid. ")
)
