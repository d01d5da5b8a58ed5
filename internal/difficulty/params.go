// Package difficulty supplies endless-mode tuning parameters from an advisor
// that is polled off the simulation goroutine.
package difficulty

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidParams is returned for advisor answers that cannot be applied.
var ErrInvalidParams = errors.New("invalid difficulty parameters")

// Request carries the run statistics the advisor bases its answer on.
type Request struct {
	PlayerScore       int     `json:"playerScore"`
	Level             int     `json:"level"`
	EnemiesDefeated   int     `json:"enemiesDefeated"`
	PowerUpsCollected int     `json:"powerUpsCollected"`
	GameTime          float64 `json:"gameTime"`

	RunID string `json:"-"`
}

// Params are multipliers applied by the spawn director.
type Params struct {
	SpawnRate        float64 `json:"enemySpawnRate"`
	AttackPower      float64 `json:"enemyAttackPower"`
	Speed            float64 `json:"enemySpeed"`
	PowerUpFrequency float64 `json:"powerUpFrequency"`
}

// Defaults are in effect before the first answer and after any failure.
func Defaults() Params {
	return Params{SpawnRate: 1, AttackPower: 1, Speed: 1, PowerUpFrequency: 0.1}
}

// Validate requires every value to be a positive finite number.
func (p Params) Validate() error {
	fields := []struct {
		name string
		v    float64
	}{
		{"enemySpawnRate", p.SpawnRate},
		{"enemyAttackPower", p.AttackPower},
		{"enemySpeed", p.Speed},
		{"powerUpFrequency", p.PowerUpFrequency},
	}
	for _, f := range fields {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) || f.v <= 0 {
			return fmt.Errorf("%w: %s = %v", ErrInvalidParams, f.name, f.v)
		}
	}
	return nil
}

// Snapshot is what the simulation publishes every step.
type Snapshot struct {
	Request
	Playing bool
}
