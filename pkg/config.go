package pkg

import (
	"encoding/json"
	"fmt"
	"io/ioutil"

	"github.com/qnkhuat/hangterm/pkg/gui"
)

type Config struct {
	Nickname   string         `json:"nickname"`
	Theme      string         `json:"theme"`
	Difficulty string         `json:"difficulty"`
	Themes     []gui.ThemeHex `json:"themes"`
}

func DefaultConfig() Config {
	return Config{
		Theme:      gui.ThemeBasic.Name,
		Difficulty: "easy",
	}
}

// LoadConfig reads a JSON config file over the defaults. An empty path
// returns the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := ioutil.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}
