// Package config loads the demo program's settings from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Demo holds settings for cmd/eventdemo.
type Demo struct {
	// Scenario is a YAML or JSON scenario file. Empty runs the built-in one.
	Scenario string `env:"EVENTDEMO_SCENARIO"`
	Verbose  bool   `env:"EVENTDEMO_VERBOSE" envDefault:"false"`
	Strict   bool   `env:"EVENTDEMO_STRICT" envDefault:"false"`
	Trace    bool   `env:"EVENTDEMO_TRACE" envDefault:"false"`
	// SuggestDistance bounds "did you mean" suggestions in strict mode.
	SuggestDistance int `env:"EVENTDEMO_SUGGEST_DISTANCE" envDefault:"3"`
}

// LoadDemo parses Demo from the environment.
func LoadDemo() (Demo, error) {
	cfg, err := env.ParseAs[Demo]()
	if err != nil {
		return Demo{}, fmt.Errorf("load demo config: %w", err)
	}
	if cfg.SuggestDistance < 0 {
		return Demo{}, fmt.Errorf("EVENTDEMO_SUGGEST_DISTANCE must be >= 0, got %d", cfg.SuggestDistance)
	}
	return cfg, nil
}
