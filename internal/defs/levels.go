// internal/defs/levels.go
package defs

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

// StoryLevel is the immutable template of one story level.
type StoryLevel struct {
	Level      int      `yaml:"level"`
	Title      string   `yaml:"title"`
	Dialogue   []string `yaml:"dialogue"`
	EnemyCount int      `yaml:"enemy_count"`
	Boss       bool     `yaml:"boss"`
}

//go:embed levels.yaml
var levelsYAML []byte

// storyLevels is parsed once from the embedded campaign.
var storyLevels []StoryLevel

func init() {
	levels, err := ParseStoryLevels(levelsYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded levels.yaml: %v", err))
	}
	storyLevels = levels
}

// ParseStoryLevels decodes and validates a campaign definition.
func ParseStoryLevels(data []byte) ([]StoryLevel, error) {
	var levels []StoryLevel
	if err := yaml.Unmarshal(data, &levels); err != nil {
		return nil, fmt.Errorf("failed to unmarshal story levels: %w", err)
	}
	if len(levels) == 0 {
		return nil, fmt.Errorf("story has no levels")
	}
	for i, l := range levels {
		if l.Level != i+1 {
			return nil, fmt.Errorf("level #%d is numbered %d, want %d", i, l.Level, i+1)
		}
		if l.EnemyCount < 0 {
			return nil, fmt.Errorf("level %d: negative enemy_count %d", l.Level, l.EnemyCount)
		}
	}
	return levels, nil
}

// StoryLevels returns a deep copy of the embedded campaign, safe to mutate.
func StoryLevels() []StoryLevel {
	return CloneLevels(storyLevels)
}

// CloneLevels deep-copies templates so a run never touches the originals.
func CloneLevels(levels []StoryLevel) []StoryLevel {
	out := make([]StoryLevel, len(levels))
	for i, l := range levels {
		out[i] = l
		out[i].Dialogue = append([]string(nil), l.Dialogue...)
	}
	return out
}
