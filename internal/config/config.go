// Package config loads gateway settings from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the server settings
type Config struct {
	Port         string        `env:"PORT" envDefault:"3000"`
	DBPath       string        `env:"DB_PATH"` // empty keeps the dataset in memory
	UserAgent    string        `env:"USER_AGENT" envDefault:"BobBot OSRS API - @yourdiscord"`
	HiscoresURL  string        `env:"HISCORES_URL" envDefault:"https://secure.runescape.com/m=hiscore_oldschool"`
	WikiAPIURL   string        `env:"WIKI_API_URL" envDefault:"https://oldschool.runescape.wiki/api.php"`
	WikiPageURL  string        `env:"WIKI_PAGE_URL" envDefault:"https://oldschool.runescape.wiki/w/"`
	PricesAPIURL string        `env:"PRICES_API_URL" envDefault:"https://prices.runescape.wiki/api/v1/osrs"`
	HTTPTimeout  time.Duration `env:"HTTP_TIMEOUT" envDefault:"15s"`
	LogLevel     string        `env:"LOG_LEVEL" envDefault:"info"`
	CORSOrigins  []string      `env:"CORS_ORIGINS" envDefault:"*" envSeparator:","`
}

// Load reads envFile (if it exists) into the process environment and then
// parses Config from it. Variables already set win over the file.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &cfg, nil
}
