// internal/defs/attack_patterns.go
package defs

import (
	"image/color"
	"math"

	"cosmic-drifter/internal/config"
)

// SpecialKind is what a boss does on every BossSpecialEvery-th shot.
type SpecialKind int

const (
	SpecialBigShot SpecialKind = iota
	SpecialLaser
)

// BossAttackPattern holds everything a boss needs to attack on a given level.
type BossAttackPattern struct {
	BulletColor color.RGBA
	BorderColor color.RGBA
	HasBorder   bool

	// Volley is the list of aim offsets (radians) of a regular shot.
	Volley []float64

	Special SpecialKind
	// SpecialVolley is used by SpecialBigShot.
	SpecialVolley []float64
	// Reinforcements standard enemies join the laser special.
	Reinforcements int
}

var (
	yellow = color.RGBA{255, 255, 0, 255}
	red    = color.RGBA{255, 0, 0, 255}
	orange = color.RGBA{255, 165, 0, 255}
	black  = color.RGBA{0, 0, 0, 255}
)

// BossAttackPatterns is keyed by level. Levels past the table reuse the last entry.
var BossAttackPatterns = map[int]BossAttackPattern{
	1: {BulletColor: yellow, Volley: []float64{0}, Special: SpecialBigShot, SpecialVolley: []float64{0}},
	2: {BulletColor: red, Volley: []float64{-0.15, 0.15}, Special: SpecialBigShot, SpecialVolley: []float64{-0.2, 0.2}},
	3: {BulletColor: orange, Volley: []float64{0, -0.25, 0.25}, Special: SpecialLaser},
	4: {BulletColor: black, BorderColor: red, HasBorder: true, Volley: []float64{0, -0.25, 0.25}, Special: SpecialLaser, Reinforcements: config.BossReinforcements},
}

// BossPatternFor returns the pattern of a level, clamped to the table range.
func BossPatternFor(level int) BossAttackPattern {
	maxLevel := 0
	for l := range BossAttackPatterns {
		if l > maxLevel {
			maxLevel = l
		}
	}
	if level > maxLevel {
		level = maxLevel
	}
	if level < 1 {
		level = 1
	}
	return BossAttackPatterns[level]
}

// BossFireCooldown is the pause between boss shots. It shrinks by
// BossCooldownPerLevel each level and never drops below MinBossFireCooldown.
func BossFireCooldown(level int) float64 {
	return math.Max(config.BossBaseFireCooldown-float64(level)*config.BossCooldownPerLevel, config.MinBossFireCooldown)
}
