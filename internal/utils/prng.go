// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"
)

// PRNGService — обертка над генератором случайных чисел,
// чтобы симуляция могла работать с предсказуемым (seeded) рандомом.
type PRNGService struct {
	rng *rand.Rand
}

// NewPRNGService создает сервис с указанным сидом.
// Если сид равен 0, используется текущее время.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNGService{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Intn возвращает случайное целое число в диапазоне [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// Float64 возвращает случайное число в диапазоне [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// Range возвращает случайное число в диапазоне [min, max).
func (s *PRNGService) Range(min, max float64) float64 {
	return min + s.rng.Float64()*(max-min)
}

// Chance возвращает true с вероятностью p.
func (s *PRNGService) Chance(p float64) bool {
	return s.rng.Float64() < p
}

// Sign возвращает -1 или 1 с равной вероятностью.
func (s *PRNGService) Sign() float64 {
	if s.rng.Intn(2) == 0 {
		return -1
	}
	return 1
}
