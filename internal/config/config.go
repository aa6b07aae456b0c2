// Package config provides YAML-based configuration loading and validation
// for the crawler game.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/vovakirdan/tui-crawler/internal/core"
)

// ErrInvalid is returned (wrapped) by Validate for any rejected value.
var ErrInvalid = errors.New("config: invalid")

// reservedKeys are handled by the frontends and can never move the player.
var reservedKeys = map[string]bool{
	"q":      true,
	"ctrl+c": true,
	"esc":    true,
}

// CrawlerConfig contains all configuration for a crawler session.
type CrawlerConfig struct {
	Surface  SurfaceConfig  `yaml:"surface"`
	Loop     LoopConfig     `yaml:"loop"`
	Movement MovementConfig `yaml:"movement"`
	Player   EntityConfig   `yaml:"player"`
	Ogre     EntityConfig   `yaml:"ogre"`
	Messages MessagesConfig `yaml:"messages"`
	Display  DisplayConfig  `yaml:"display"`
}

// SurfaceConfig defines the drawing surface size in pixels.
type SurfaceConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// LoopConfig defines the fixed-tick scheduler.
type LoopConfig struct {
	TickIntervalMS int  `yaml:"tick_interval_ms"`
	HaltOnWin      bool `yaml:"halt_on_win"`
}

// MovementConfig defines the step size and key bindings.
type MovementConfig struct {
	Step int                 `yaml:"step"`
	Keys map[string][]string `yaml:"keys"` // direction name -> key identifiers
}

// EntityConfig defines an entity's initial rectangle and color.
type EntityConfig struct {
	X      int    `yaml:"x"`
	Y      int    `yaml:"y"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Color  string `yaml:"color"`
}

// MessagesConfig defines the status texts.
type MessagesConfig struct {
	Win string `yaml:"win"`
}

// DisplayConfig defines how surface pixels map to terminal cells.
type DisplayConfig struct {
	CellWidth  int `yaml:"cell_width"`
	CellHeight int `yaml:"cell_height"`
}

// TickInterval returns the tick period as a duration.
func (c CrawlerConfig) TickInterval() time.Duration {
	return time.Duration(c.Loop.TickIntervalMS) * time.Millisecond
}

// Runtime returns the frontend-facing runtime settings.
func (c CrawlerConfig) Runtime() core.RuntimeConfig {
	return core.RuntimeConfig{
		TickInterval: c.TickInterval(),
		HaltOnWin:    c.Loop.HaltOnWin,
		CellW:        c.Display.CellWidth,
		CellH:        c.Display.CellHeight,
	}
}

// Bindings resolves the key table into key identifier -> direction.
func (c CrawlerConfig) Bindings() (map[string]core.Direction, error) {
	bindings := make(map[string]core.Direction)
	for name, keys := range c.Movement.Keys {
		dir, err := core.ParseDirection(name)
		if err != nil {
			return nil, fmt.Errorf("%w: movement.keys: %v", ErrInvalid, err)
		}
		for _, k := range keys {
			if k == "" {
				return nil, fmt.Errorf("%w: movement.keys.%s: empty key", ErrInvalid, name)
			}
			if reservedKeys[k] {
				return nil, fmt.Errorf("%w: movement.keys.%s: %q is reserved for quit", ErrInvalid, name, k)
			}
			if prev, dup := bindings[k]; dup && prev != dir {
				return nil, fmt.Errorf("%w: movement.keys: %q bound to both %s and %s", ErrInvalid, k, prev, dir)
			}
			bindings[k] = dir
		}
	}
	return bindings, nil
}

// Validate checks the configuration and returns the first problem found.
func (c CrawlerConfig) Validate() error {
	var problems []string

	if c.Surface.Width <= 0 || c.Surface.Height <= 0 {
		problems = append(problems, fmt.Sprintf("surface must be positive, got %dx%d", c.Surface.Width, c.Surface.Height))
	}
	if c.Loop.TickIntervalMS <= 0 {
		problems = append(problems, fmt.Sprintf("loop.tick_interval_ms must be positive, got %d", c.Loop.TickIntervalMS))
	}
	if c.Movement.Step <= 0 {
		problems = append(problems, fmt.Sprintf("movement.step must be positive, got %d", c.Movement.Step))
	}
	if c.Display.CellWidth <= 0 || c.Display.CellHeight <= 0 {
		problems = append(problems, fmt.Sprintf("display cell size must be positive, got %dx%d", c.Display.CellWidth, c.Display.CellHeight))
	}
	if c.Display.CellHeight%2 != 0 {
		problems = append(problems, fmt.Sprintf("display.cell_height must be even, got %d", c.Display.CellHeight))
	}
	problems = append(problems, c.Player.problems("player")...)
	problems = append(problems, c.Ogre.problems("ogre")...)

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(problems, "; "))
	}

	bindings, err := c.Bindings()
	if err != nil {
		return err
	}
	for _, dir := range core.Directions {
		if !hasDirection(bindings, dir) {
			return fmt.Errorf("%w: movement.keys: no key bound to %s", ErrInvalid, dir)
		}
	}
	return nil
}

func (e EntityConfig) problems(name string) []string {
	var out []string
	if e.Width <= 0 || e.Height <= 0 {
		out = append(out, fmt.Sprintf("%s size must be positive, got %dx%d", name, e.Width, e.Height))
	}
	if !core.Color(e.Color).Valid() {
		out = append(out, fmt.Sprintf("%s.color %q is not a known color", name, e.Color))
	}
	return out
}

func hasDirection(bindings map[string]core.Direction, dir core.Direction) bool {
	for _, d := range bindings {
		if d == dir {
			return true
		}
	}
	return false
}
