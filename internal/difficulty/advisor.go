package difficulty

import (
	"context"
	"math"
)

// Advisor answers a difficulty request. Implementations may block; callers
// bound them with the context.
type Advisor interface {
	Advise(ctx context.Context, req Request) (Params, error)
}

// AdvisorFunc adapts a function to Advisor.
type AdvisorFunc func(ctx context.Context, req Request) (Params, error)

func (f AdvisorFunc) Advise(ctx context.Context, req Request) (Params, error) {
	return f(ctx, req)
}

// Heuristic is a local advisor: strong play raises spawn rate, enemy speed and
// attack power and makes power-ups rarer.
type Heuristic struct{}

func (Heuristic) Advise(ctx context.Context, req Request) (Params, error) {
	if err := ctx.Err(); err != nil {
		return Params{}, err
	}

	minutes := math.Max(req.GameTime/60, 0.5)
	killRate := float64(req.EnemiesDefeated) / minutes
	skill := 0.5 + float64(req.PlayerScore)/2000 + killRate/40 + float64(req.PowerUpsCollected)*0.05
	skill = clamp(skill, 0.5, 3)

	return Params{
		SpawnRate:        skill,
		AttackPower:      clamp(0.75+0.25*skill, 0.75, 1.5),
		Speed:            clamp(0.8+0.2*skill, 0.8, 1.6),
		PowerUpFrequency: clamp(0.3/skill, 0.05, 0.5),
	}, nil
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
