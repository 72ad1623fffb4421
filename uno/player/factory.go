package player

import (
	"fmt"

	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/game"
	"github.com/ratel-online/uno/uno/rng"
	"github.com/ratel-online/uno/uno/ui"
)

const (
	StrategyRandom = "random"
	StrategyNaive  = "naive"
	StrategyGood   = "good"
)

var botNames = []string{
	"Annie", "Braum", "Caitlyn", "Draven",
	"Ezreal", "Fiora", "Graves", "Heimerdinger",
	"Ivern", "Jinx", "Kled", "Lulu",
	"Malphite", "Nunu", "Orianna", "Poppy",
	"Qiyana", "Rakan", "Shaco", "Twisted Fate",
	"Udyr", "Veigar", "Wukong", "Xayah",
	"Yuumi", "Zoe",
}

func NewStrategy(strategyName string, gen rng.Generator) (game.Strategy, error) {
	switch strategyName {
	case StrategyRandom:
		return NewRandomStrategy(gen), nil
	case StrategyNaive:
		return NewNaiveStrategy(gen), nil
	case StrategyGood:
		return NewGoodStrategy(gen), nil
	}
	return nil, fmt.Errorf("%wunknown strategy '%s'", consts.ErrorsInputInvalid, strategyName)
}

// CreatePlayers seats numberOfPlayers players in random order. When humanName is
// set, one of the seats is played from console; bots use strategyName.
func CreatePlayers(numberOfPlayers int, humanName string, strategyName string, gen rng.Generator, console *ui.Console) ([]*game.Player, error) {
	if numberOfPlayers < consts.MinPlayers || numberOfPlayers > consts.MaxPlayers {
		return nil, fmt.Errorf("%w(expected %d-%d players, got %d)", consts.ErrorsGamePlayersInvalid, consts.MinPlayers, consts.MaxPlayers, numberOfPlayers)
	}

	players := make([]*game.Player, 0, numberOfPlayers)
	if humanName != "" {
		if console == nil {
			return nil, fmt.Errorf("%whuman player %s needs a console", consts.ErrorsInputInvalid, humanName)
		}
		players = append(players, newPlayer(humanName, NewHumanStrategy(humanName, console)))
	}

	bots, err := generateBots(numberOfPlayers-len(players), humanName, strategyName, gen)
	if err != nil {
		return nil, err
	}
	players = append(players, bots...)

	rng.Shuffle(gen, len(players), func(i, j int) { players[i], players[j] = players[j], players[i] })
	return players, nil
}

func generateBots(amount int, humanName string, strategyName string, gen rng.Generator) ([]*game.Player, error) {
	names := make([]string, 0, len(botNames))
	for _, botName := range botNames {
		if botName != humanName {
			names = append(names, botName)
		}
	}
	rng.Shuffle(gen, len(names), func(i, j int) { names[i], names[j] = names[j], names[i] })

	bots := make([]*game.Player, 0, amount)
	for _, botName := range names[:amount] {
		strategy, err := NewStrategy(strategyName, gen)
		if err != nil {
			return nil, err
		}
		bots = append(bots, newPlayer(botName, strategy))
	}
	return bots, nil
}

func newPlayer(name string, strategy game.Strategy) *game.Player {
	player := game.NewPlayer(name, strategy)
	if observer, ok := strategy.(handObserver); ok {
		observer.observe(player)
	}
	return player
}
