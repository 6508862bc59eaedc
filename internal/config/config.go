package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds everything the process reads from its environment.
// Table rules (bet limits, payout multipliers) are deliberately not
// here; they are fixed in the game package.
type Config struct {
	Server struct {
		Addr          string
		AllowedOrigin string
	}
	Game struct {
		StartingCash int
	}
	Database struct {
		Path string
	}
	Log struct {
		Level string
	}
}

// Load reads configuration from an optional YAML file and the
// environment (prefix POKER, e.g. POKER_SERVER_ADDR), falling back to
// defaults. A missing file is only an error when a path was given
// explicitly.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.allowedorigin", "http://localhost:5173")
	v.SetDefault("game.startingcash", 100)
	v.SetDefault("database.path", "./data/threecard.db")
	v.SetDefault("log.level", "info")

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("POKER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if path != "" {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &c, nil
}
