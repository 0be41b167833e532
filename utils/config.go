package utils

import (
	"encoding/json"
	"github.com/pkg/errors"
	"os"
	"time"
)

// Config holds the configuration for the game
type Config struct {
	FrameRate           time.Duration `json:"frame_rate"`
	MaxGenerations      int           `json:"max_generations"`
	AutoReseed          bool          `json:"auto_reseed"`
	StagnationWindow    int           `json:"stagnation_window"`
	StagnationThreshold int           `json:"stagnation_threshold"`
	UseParallel         bool          `json:"use_parallel"`
	UseMemoryPool       bool          `json:"use_memory_pool"`
	ViewportWidth       int           `json:"viewport_width"`
	ViewportHeight      int           `json:"viewport_height"`
	FollowLife          bool          `json:"follow_life"`
	RandomDensity       float64       `json:"random_density"`
	SavePath            string        `json:"save_path"`
	LoadPath            string        `json:"load_path"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		FrameRate:           150 * time.Millisecond,
		MaxGenerations:      1000,
		AutoReseed:          true,
		StagnationWindow:    3,
		StagnationThreshold: 5,
		UseParallel:         true,
		UseMemoryPool:       true,
		ViewportWidth:       60,
		ViewportHeight:      30,
		FollowLife:          true,
		RandomDensity:       0.15,
		SavePath:            "",
		LoadPath:            "",
	}
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}
