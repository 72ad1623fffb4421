package config

import (
	"fmt"
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/ratel-online/uno/consts"
	"gopkg.in/yaml.v2"
)

// Config describes one game run. Values come from the defaults, then the config
// file, then UNO_* environment variables.
type Config struct {
	Players      int           `yaml:"players" envconfig:"players"`
	InitialCards int           `yaml:"initialCards" envconfig:"initial_cards"`
	Seed         int64         `yaml:"seed" envconfig:"seed"`
	Human        string        `yaml:"human" envconfig:"human"`
	Strategy     string        `yaml:"strategy" envconfig:"strategy"`
	Delay        time.Duration `yaml:"delay" envconfig:"delay"`
}

func Default() Config {
	return Config{
		Players:      4,
		InitialCards: consts.InitialCards,
		Strategy:     "random",
	}
}

// Load reads the configuration. An empty path skips the file. The result is not
// validated so that later overrides can still fix a bad value.
func Load(path string) (Config, error) {
	config := Default()

	if path != "" {
		file, err := os.Open(path)
		if err != nil {
			return config, err
		}
		defer file.Close()

		if err := yaml.NewDecoder(file).Decode(&config); err != nil {
			return config, fmt.Errorf("decoding %s: %w", path, err)
		}
	}

	err := envconfig.Process("uno", &config)
	return config, err
}

func (c Config) Validate() error {
	if c.Players < consts.MinPlayers || c.Players > consts.MaxPlayers {
		return fmt.Errorf("%w(expected %d-%d players, got %d)", consts.ErrorsGamePlayersInvalid, consts.MinPlayers, consts.MaxPlayers, c.Players)
	}
	if c.InitialCards < 1 {
		return fmt.Errorf("%winitial cards must be positive, got %d", consts.ErrorsInputInvalid, c.InitialCards)
	}
	if c.Delay < 0 {
		return fmt.Errorf("%wdelay must not be negative, got %s", consts.ErrorsInputInvalid, c.Delay)
	}
	return nil
}
