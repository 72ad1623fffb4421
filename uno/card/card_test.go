package card_test

import (
	"testing"

	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/action"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/stretchr/testify/require"
)

func TestEqual(t *testing.T) {
	scenarios := []struct {
		description string
		a           card.Card
		b           card.Card
		expected    bool
	}{
		{"same_number_same_color", card.NewNumberCard(color.Red, 1), card.NewNumberCard(color.Red, 1), true},
		{"same_number_other_color", card.NewNumberCard(color.Green, 1), card.NewNumberCard(color.Red, 1), false},
		{"other_number_same_color", card.NewNumberCard(color.Blue, 2), card.NewNumberCard(color.Blue, 3), false},
		{"reverse_same_color", card.NewReverseCard(color.Green), card.NewReverseCard(color.Green), true},
		{"reverse_other_color", card.NewReverseCard(color.Yellow), card.NewReverseCard(color.Green), false},
		{"skip_same_color", card.NewSkipCard(color.Yellow), card.NewSkipCard(color.Yellow), true},
		{"skip_other_color", card.NewSkipCard(color.Blue), card.NewSkipCard(color.Yellow), false},
		{"skip_and_reverse", card.NewSkipCard(color.Blue), card.NewReverseCard(color.Blue), false},
		{"draw_two_and_number", card.NewDrawTwoCard(color.Red), card.NewNumberCard(color.Red, 2), false},
		{"wild_and_wild", card.NewWildCard(), card.NewWildCard(), true},
		{"wild_draw_four_and_wild", card.NewWildDrawFourCard(), card.NewWildCard(), false},
		{"wild_and_bound_wild", card.NewWildCard(), card.NewColoredCard(card.NewWildCard(), color.Red), true},
		{"bound_wilds_with_other_colors", card.NewColoredCard(card.NewWildCard(), color.Blue), card.NewColoredCard(card.NewWildCard(), color.Red), true},
		{"bound_wild_draw_four_and_wild", card.NewColoredCard(card.NewWildDrawFourCard(), color.Blue), card.NewWildCard(), false},
		{"bound_wild_and_number_of_same_color", card.NewColoredCard(card.NewWildCard(), color.Blue), card.NewNumberCard(color.Blue, 4), false},
	}

	for _, scenario := range scenarios {
		t.Run(scenario.description, func(t *testing.T) {
			require.Equal(t, scenario.expected, scenario.a.Equal(scenario.b))
			require.Equal(t, scenario.expected, scenario.b.Equal(scenario.a))
		})
	}
}

func TestFlags(t *testing.T) {
	scenarios := []struct {
		card   card.Card
		wild   bool
		action bool
	}{
		{card.NewNumberCard(color.Red, 0), false, false},
		{card.NewSkipCard(color.Red), false, true},
		{card.NewReverseCard(color.Red), false, true},
		{card.NewDrawTwoCard(color.Red), false, true},
		{card.NewWildCard(), true, false},
		{card.NewWildDrawFourCard(), true, true},
		{card.NewColoredCard(card.NewWildCard(), color.Red), true, false},
		{card.NewColoredCard(card.NewWildDrawFourCard(), color.Red), true, true},
	}

	for _, scenario := range scenarios {
		t.Run(string(scenario.card.Symbol()), func(t *testing.T) {
			require.Equal(t, scenario.wild, scenario.card.Wild())
			require.Equal(t, scenario.wild, scenario.card.Symbol().Wild())
			require.Equal(t, scenario.action, scenario.card.Action())
			require.Equal(t, scenario.action, scenario.card.Symbol().Action())
			require.Equal(t, scenario.action, len(scenario.card.Actions()) > 0)
		})
	}
}

func TestActions(t *testing.T) {
	require.Equal(t, []action.Action{
		action.NewSkipTurnAction(),
		action.NewDrawCardsAction(2),
	}, card.NewDrawTwoCard(color.Green).Actions())
	require.Equal(t, []action.Action{
		action.NewSkipTurnAction(),
		action.NewDrawCardsAction(4),
	}, card.NewColoredCard(card.NewWildDrawFourCard(), color.Green).Actions())
	require.Equal(t, []action.Action{action.NewReverseTurnsAction()}, card.NewReverseCard(color.Red).Actions())
	require.Empty(t, card.NewWildCard().Actions())
}

func TestCopy(t *testing.T) {
	t.Run("bound_wild_forgets_its_color", func(t *testing.T) {
		bound := card.NewColoredCard(card.NewWildCard(), color.Yellow)
		copied := bound.Copy()
		require.Nil(t, copied.Color())
		require.Equal(t, card.NewWildCard(), copied)
		require.False(t, card.Bound(copied))
	})

	t.Run("colored_cards_keep_their_color", func(t *testing.T) {
		original := card.NewSkipCard(color.Blue)
		require.Equal(t, original, original.Copy())
	})
}

func TestNewColoredCard(t *testing.T) {
	t.Run("binds_a_color_once", func(t *testing.T) {
		bound := card.NewColoredCard(card.NewWildDrawFourCard(), color.Red)
		require.Equal(t, color.Red, bound.Color())
		require.Equal(t, card.WildDrawFour, bound.Symbol())
		require.True(t, card.Bound(bound))
		require.Panics(t, func() { card.NewColoredCard(bound, color.Blue) })
	})

	t.Run("rejects_colored_cards", func(t *testing.T) {
		require.Panics(t, func() { card.NewColoredCard(card.NewNumberCard(color.Red, 3), color.Blue) })
	})

	t.Run("rejects_empty_color", func(t *testing.T) {
		require.Panics(t, func() { card.NewColoredCard(card.NewWildCard(), nil) })
	})
}

func TestNewCard(t *testing.T) {
	require.Equal(t, card.NewNumberCard(color.Red, 7), card.NewCard(color.Red, "7"))
	require.Equal(t, card.NewDrawTwoCard(color.Blue), card.NewCard(color.Blue, card.DrawTwo))
	require.Equal(t, card.NewWildDrawFourCard(), card.NewCard(nil, card.WildDrawFour))
	require.Panics(t, func() { card.NewCard(nil, "5") })
	require.Panics(t, func() { card.NewCard(color.Red, card.Wild) })
	require.Panics(t, func() { card.NewNumberCard(color.Red, 10) })
}

func TestParseSymbol(t *testing.T) {
	symbol, err := card.ParseSymbol(" Draw-2 ")
	require.NoError(t, err)
	require.Equal(t, card.DrawTwo, symbol)

	symbol, err = card.ParseSymbol("0")
	require.NoError(t, err)
	require.Equal(t, card.NumberSymbol(0), symbol)

	_, err = card.ParseSymbol("10")
	require.Error(t, err)
}

func TestString(t *testing.T) {
	color.DisableOutputColors()
	require.Equal(t, "[7]", card.NewNumberCard(color.Red, 7).String())
	require.Equal(t, "+2!", card.NewDrawTwoCard(color.Red).String())
	require.Equal(t, "(*)", card.NewWildCard().String())
	require.Equal(t, "wild-draw-4(blue)", card.NewColoredCard(card.NewWildDrawFourCard(), color.Blue).String())
}

func TestDescribe(t *testing.T) {
	require.Equal(t, "red 7", card.Describe(card.NewNumberCard(color.Red, 7)))
	require.Equal(t, "green draw-2", card.Describe(card.NewDrawTwoCard(color.Green)))
	require.Equal(t, "wild", card.Describe(card.NewWildCard()))
	require.Equal(t, "wild-draw-4(yellow)", card.Describe(card.NewColoredCard(card.NewWildDrawFourCard(), color.Yellow)))
	require.Equal(t, "none", card.Describe(nil))
	require.Equal(t, "[blue skip, wild]", card.DescribeAll([]card.Card{card.NewSkipCard(color.Blue), card.NewWildCard()}))
}
