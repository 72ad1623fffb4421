package game

import (
	"github.com/awesome-cap/hashmap"
)

// PlayerIterator is the turn order: a fixed seating of players and a cursor that
// can change direction.
type PlayerIterator struct {
	lookup func(name string) *Player
	cycler *Cycler
}

func newPlayerIterator(players []*Player) *PlayerIterator {
	playerNames := make([]string, 0, len(players))
	playerMap := hashmap.New()
	for _, player := range players {
		playerNames = append(playerNames, player.Name())
		playerMap.Set(player.Name(), player)
	}
	return &PlayerIterator{
		lookup: func(name string) *Player {
			if v, ok := playerMap.Get(name); ok {
				return v.(*Player)
			}
			return nil
		},
		cycler: NewCycler(playerNames),
	}
}

func (i *PlayerIterator) Get(name string) *Player {
	return i.lookup(name)
}

// Current returns the player last returned by Next, or nil before the first turn.
func (i *PlayerIterator) Current() *Player {
	name, ok := i.cycler.Current()
	if !ok {
		return nil
	}
	return i.Get(name)
}

// First returns the player in seat 0 without consuming a turn.
func (i *PlayerIterator) First() *Player {
	return i.Get(i.cycler.First())
}

// ForEach visits the players in seating order, regardless of direction.
func (i *PlayerIterator) ForEach(function func(player *Player)) {
	i.cycler.ForEach(func(name string) {
		function(i.Get(name))
	})
}

func (i *PlayerIterator) Len() int {
	return i.cycler.Len()
}

func (i *PlayerIterator) Next() *Player {
	return i.Get(i.cycler.Next())
}

func (i *PlayerIterator) Players() []*Player {
	players := make([]*Player, 0, i.Len())
	i.ForEach(func(player *Player) {
		players = append(players, player)
	})
	return players
}

func (i *PlayerIterator) Reverse() {
	i.cycler.Reverse()
}

func (i *PlayerIterator) Reversed() bool {
	return i.cycler.Reversed()
}

// Skip moves past the next player and returns them.
func (i *PlayerIterator) Skip() *Player {
	return i.Next()
}

func (i *PlayerIterator) Turn() int {
	return i.cycler.Turn()
}
