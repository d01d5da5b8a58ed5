// internal/component/wave.go
package component

// Wave — изменяемое состояние текущего уровня, клонированное из шаблона
type Wave struct {
	Level          int
	EnemiesToSpawn int  // оставшаяся квота рядовых врагов
	Boss           bool // уровень заканчивается боссом
	BossSpawned    bool // босс уже появлялся на этом уровне
	BossFight      bool // босс жив, рядовой спавн подавлен
	Completed      bool // уровень без босса уже закрыт
}

// QuotaExhausted — все рядовые враги уровня уже выпущены
func (w *Wave) QuotaExhausted() bool {
	return w.EnemiesToSpawn <= 0
}
