// internal/defs/loader.go
package defs

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
)

// LoadStoryLevels reads a campaign file that replaces the embedded one.
func LoadStoryLevels(path string) ([]StoryLevel, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read story levels file: %w", err)
	}

	levels, err := ParseStoryLevels(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	log.Info().Str("path", path).Int("levels", len(levels)).Msg("loaded story levels")
	return levels, nil
}
