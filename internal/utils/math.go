// internal/utils/math.go
package utils

import "math"

// Normalize приводит вектор к единичной длине; нулевой вектор остаётся нулевым
func Normalize(dx, dy float64) (float64, float64) {
	length := math.Hypot(dx, dy)
	if length == 0 {
		return 0, 0
	}
	return dx / length, dy / length
}

// Distance — евклидово расстояние между двумя точками
func Distance(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}

// AngleTo возвращает угол направления из (fromX, fromY) на (toX, toY) в радианах
func AngleTo(fromX, fromY, toX, toY float64) float64 {
	return math.Atan2(toY-fromY, toX-fromX)
}

// Direction — единичный вектор для угла
func Direction(angle float64) (float64, float64) {
	return math.Cos(angle), math.Sin(angle)
}

// CirclesOverlap — проверка пересечения окружностей (строго меньше суммы радиусов)
func CirclesOverlap(x1, y1, r1, x2, y2, r2 float64) bool {
	return Distance(x1, y1, x2, y2) < r1+r2
}

// Clamp ограничивает значение отрезком [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
