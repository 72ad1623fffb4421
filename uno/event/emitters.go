package event

type firstCardPlayedEmitter []FirstCardPlayedListener

func (e *firstCardPlayedEmitter) AddListener(listener FirstCardPlayedListener) {
	*e = append(*e, listener)
}

func (e firstCardPlayedEmitter) Emit(payload FirstCardPlayedPayload) {
	for _, listener := range e {
		listener.OnFirstCardPlayed(payload)
	}
}

type cardPlayedEmitter []CardPlayedListener

func (e *cardPlayedEmitter) AddListener(listener CardPlayedListener) {
	*e = append(*e, listener)
}

func (e cardPlayedEmitter) Emit(payload CardPlayedPayload) {
	for _, listener := range e {
		listener.OnCardPlayed(payload)
	}
}

type colorPickedEmitter []ColorPickedListener

func (e *colorPickedEmitter) AddListener(listener ColorPickedListener) {
	*e = append(*e, listener)
}

func (e colorPickedEmitter) Emit(payload ColorPickedPayload) {
	for _, listener := range e {
		listener.OnColorPicked(payload)
	}
}

type playerPassedEmitter []PlayerPassedListener

func (e *playerPassedEmitter) AddListener(listener PlayerPassedListener) {
	*e = append(*e, listener)
}

func (e playerPassedEmitter) Emit(payload PlayerPassedPayload) {
	for _, listener := range e {
		listener.OnPlayerPassed(payload)
	}
}

type cardsDrawnEmitter []CardsDrawnListener

func (e *cardsDrawnEmitter) AddListener(listener CardsDrawnListener) {
	*e = append(*e, listener)
}

func (e cardsDrawnEmitter) Emit(payload CardsDrawnPayload) {
	for _, listener := range e {
		listener.OnCardsDrawn(payload)
	}
}

type turnSkippedEmitter []TurnSkippedListener

func (e *turnSkippedEmitter) AddListener(listener TurnSkippedListener) {
	*e = append(*e, listener)
}

func (e turnSkippedEmitter) Emit(payload TurnSkippedPayload) {
	for _, listener := range e {
		listener.OnTurnSkipped(payload)
	}
}

type turnOrderReversedEmitter []TurnOrderReversedListener

func (e *turnOrderReversedEmitter) AddListener(listener TurnOrderReversedListener) {
	*e = append(*e, listener)
}

func (e turnOrderReversedEmitter) Emit(payload TurnOrderReversedPayload) {
	for _, listener := range e {
		listener.OnTurnOrderReversed(payload)
	}
}

type unoCalledEmitter []UnoCalledListener

func (e *unoCalledEmitter) AddListener(listener UnoCalledListener) {
	*e = append(*e, listener)
}

func (e unoCalledEmitter) Emit(payload UnoCalledPayload) {
	for _, listener := range e {
		listener.OnUnoCalled(payload)
	}
}

type gameWonEmitter []GameWonListener

func (e *gameWonEmitter) AddListener(listener GameWonListener) {
	*e = append(*e, listener)
}

func (e gameWonEmitter) Emit(payload GameWonPayload) {
	for _, listener := range e {
		listener.OnGameWon(payload)
	}
}
