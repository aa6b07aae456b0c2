package config

import (
	_ "embed"
)

//go:embed defaults/crawler.yaml
var defaultCrawlerYAML []byte

// DefaultCrawlerConfig returns the built-in crawler configuration.
func DefaultCrawlerConfig() CrawlerConfig {
	return CrawlerConfig{
		Surface: SurfaceConfig{
			Width:  640,
			Height: 384,
		},
		Loop: LoopConfig{
			TickIntervalMS: 60,
			HaltOnWin:      false,
		},
		Movement: MovementConfig{
			Step: 10,
			Keys: map[string][]string{
				"up":    {"w", "W", "up"},
				"down":  {"s", "S", "down"},
				"left":  {"a", "A", "left"},
				"right": {"d", "D", "right"},
			},
		},
		Player: EntityConfig{
			X:      10,
			Y:      10,
			Width:  16,
			Height: 16,
			Color:  "lightsteelblue",
		},
		Ogre: EntityConfig{
			X:      200,
			Y:      50,
			Width:  32,
			Height: 48,
			Color:  "#bada55",
		},
		Messages: MessagesConfig{
			Win: "You win!",
		},
		Display: DisplayConfig{
			CellWidth:  8,
			CellHeight: 16,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultCrawlerYAML
}
