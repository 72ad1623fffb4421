package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/config"
	"github.com/ratel-online/uno/uno/game"
	"github.com/ratel-online/uno/uno/msg"
	"github.com/ratel-online/uno/uno/player"
	"github.com/ratel-online/uno/uno/rng"
	"github.com/ratel-online/uno/uno/ui"
)

func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Println("main", err)
			async.PrintStackTrace(err)
			os.Exit(2)
		}
	}()

	flags := newFlagSet()
	_ = flags.Parse(os.Args[1:])

	cfg, err := loadConfig(flags)
	if err != nil {
		log.Error(err)
		os.Exit(1)
	}
	if flags.Lookup("no-color").Value.String() == "true" {
		color.DisableOutputColors()
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	log.Infof("seed %d, run again with -seed %d to replay this game\n", cfg.Seed, cfg.Seed)

	winner, err := run(cfg)
	if err != nil {
		log.Error(err)
		os.Exit(1)
	}
	log.Infof("%s won\n", winner.Name())
}

func newFlagSet() *flag.FlagSet {
	flags := flag.NewFlagSet("uno", flag.ExitOnError)
	flags.String("config", "", "path to a yaml config file")
	flags.Int("players", 0, "number of players, 2 to 5")
	flags.Int64("seed", 0, "seed of the game, 0 picks one from the clock")
	flags.String("human", "", "name of the human player, empty for bots only")
	flags.String("strategy", "", "bot strategy: random, naive or good")
	flags.Duration("delay", 0, "pause after every console message")
	flags.Bool("no-color", false, "disable colored output")
	return flags
}

// loadConfig applies the flags given on the command line over the config file and
// environment, then validates the result.
func loadConfig(flags *flag.FlagSet) (config.Config, error) {
	cfg, err := config.Load(flags.Lookup("config").Value.String())
	if err != nil {
		return cfg, err
	}

	flags.Visit(func(f *flag.Flag) {
		getter, ok := f.Value.(flag.Getter)
		if !ok {
			return
		}
		switch value := getter.Get().(type) {
		case int:
			if f.Name == "players" {
				cfg.Players = value
			}
		case int64:
			if f.Name == "seed" {
				cfg.Seed = value
			}
		case string:
			switch f.Name {
			case "human":
				cfg.Human = value
			case "strategy":
				cfg.Strategy = value
			}
		case time.Duration:
			if f.Name == "delay" {
				cfg.Delay = value
			}
		}
	})
	return cfg, cfg.Validate()
}

func run(cfg config.Config) (*game.Player, error) {
	gen := rng.New(cfg.Seed)
	console := ui.NewConsole(os.Stdin, color.Stdout, cfg.Delay)
	console.Print(msg.Message.Welcome())

	players, err := player.CreatePlayers(cfg.Players, cfg.Human, cfg.Strategy, gen, console)
	if err != nil {
		return nil, err
	}
	g, err := game.New(players, game.Options{InitialCards: cfg.InitialCards, Generator: gen})
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(players))
	for _, p := range players {
		names = append(names, p.Name())
	}
	console.Print(msg.Message.GameStarted(names))
	g.Events().AddListener(ui.NewConsoleListener(console, cfg.Human))

	return g.Run()
}
