package config

import (
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURI string `env:"SQLITE_URI"`
	Address     string `env:"RUN_ADDRESS" envDefault:"localhost:8080"`
	LogLvl      string `env:"LOG_LVL"     envDefault:"info"`
}

// New resolves configuration from the environment, loading a .env file first
// when one exists. The database URI falls back to a file in the user's home
// directory when SQLITE_URI is unset.
func New() *Config {
	godotenv.Load()

	cfg := &Config{}
	env.Parse(cfg)

	if cfg.DatabaseURI == "" {
		cfg.DatabaseURI = "file://" + DefaultDBPath()
	}

	return cfg
}

func DefaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".ultimate.db")
}
