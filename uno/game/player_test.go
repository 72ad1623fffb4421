package game_test

import (
	"testing"

	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlay(t *testing.T) {
	topCard := card.NewNumberCard(color.Blue, 7)

	t.Run("removes_exactly_one_instance_of_the_played_card", func(t *testing.T) {
		player := game.NewPlayer("A", &firstLegalStrategy{color: color.Red})
		player.Take([]card.Card{
			card.NewNumberCard(color.Red, 3),
			card.NewNumberCard(color.Blue, 2),
			card.NewNumberCard(color.Blue, 2),
		})

		played, err := player.Play(topCard, nil)
		require.NoError(t, err)
		assert.Equal(t, card.NewNumberCard(color.Blue, 2), played)
		assert.Equal(t, []card.Card{
			card.NewNumberCard(color.Red, 3),
			card.NewNumberCard(color.Blue, 2),
		}, player.Hand())
	})

	t.Run("returns_nothing_without_legal_cards", func(t *testing.T) {
		player := game.NewPlayer("A", &fixedStrategy{card: card.NewNumberCard(color.Red, 3)})
		player.Take([]card.Card{card.NewNumberCard(color.Red, 3)})

		played, err := player.Play(topCard, nil)
		require.NoError(t, err)
		assert.Nil(t, played)
		assert.Equal(t, 1, player.Size())
	})

	t.Run("only_offers_the_given_playable_cards", func(t *testing.T) {
		drawn := card.NewNumberCard(color.Blue, 9)
		player := game.NewPlayer("A", &firstLegalStrategy{color: color.Red})
		player.Take([]card.Card{card.NewNumberCard(color.Blue, 1), drawn})

		played, err := player.Play(topCard, []card.Card{drawn})
		require.NoError(t, err)
		assert.Equal(t, drawn, played)
		assert.Equal(t, []card.Card{card.NewNumberCard(color.Blue, 1)}, player.Hand())
	})

	t.Run("the_strategy_may_decline", func(t *testing.T) {
		player := game.NewPlayer("A", &firstLegalStrategy{decline: true})
		player.Take([]card.Card{card.NewNumberCard(color.Blue, 1)})

		played, err := player.Play(topCard, nil)
		require.NoError(t, err)
		assert.Nil(t, played)
		assert.Equal(t, 1, player.Size())
	})

	t.Run("binds_the_color_of_a_wild_card", func(t *testing.T) {
		player := game.NewPlayer("A", &firstLegalStrategy{color: color.Green})
		player.Take([]card.Card{card.NewWildCard()})

		played, err := player.Play(topCard, nil)
		require.NoError(t, err)
		assert.Equal(t, card.NewColoredCard(card.NewWildCard(), color.Green), played)
		assert.True(t, player.NoCards())
	})

	scenarios := []struct {
		description string
		hand        []card.Card
		selected    card.Card
	}{
		{
			description: "rejects_a_card_that_is_not_legal",
			hand:        []card.Card{card.NewNumberCard(color.Blue, 1), card.NewNumberCard(color.Red, 3)},
			selected:    card.NewNumberCard(color.Red, 3),
		},
		{
			description: "rejects_a_card_that_is_not_in_hand",
			hand:        []card.Card{card.NewNumberCard(color.Blue, 1)},
			selected:    card.NewNumberCard(color.Blue, 4),
		},
		{
			description: "rejects_a_wild_card_without_a_color",
			hand:        []card.Card{card.NewWildCard()},
			selected:    card.NewWildCard(),
		},
	}
	for _, scenario := range scenarios {
		t.Run(scenario.description, func(t *testing.T) {
			player := game.NewPlayer("A", &fixedStrategy{card: scenario.selected})
			player.Take(scenario.hand)

			played, err := player.Play(topCard, nil)
			require.ErrorIs(t, err, consts.ErrorsIllegalPlay)
			assert.Nil(t, played)
			assert.Equal(t, scenario.hand, player.Hand())
		})
	}

	t.Run("passes_strategy_errors_on", func(t *testing.T) {
		player := game.NewPlayer("A", &fixedStrategy{err: errStrategyFailed})
		player.Take([]card.Card{card.NewNumberCard(color.Blue, 1)})

		_, err := player.Play(topCard, nil)
		require.ErrorIs(t, err, errStrategyFailed)
	})
}

func TestSelectColor(t *testing.T) {
	t.Run("returns_the_strategy_color", func(t *testing.T) {
		player := game.NewPlayer("A", &fixedStrategy{color: color.Yellow})
		selected, err := player.SelectColor()
		require.NoError(t, err)
		assert.Equal(t, color.Yellow, selected)
	})

	t.Run("rejects_no_color", func(t *testing.T) {
		player := game.NewPlayer("A", &fixedStrategy{})
		_, err := player.SelectColor()
		require.ErrorIs(t, err, consts.ErrorsIllegalPlay)
	})
}

func TestNewPlayerPanicsWithoutStrategy(t *testing.T) {
	require.Panics(t, func() { game.NewPlayer("A", nil) })
}

func TestTakePanicsWithoutCards(t *testing.T) {
	player := game.NewPlayer("A", &fixedStrategy{})
	require.Panics(t, func() { player.Take(nil) })
}
