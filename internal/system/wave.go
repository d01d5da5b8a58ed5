// internal/system/wave.go
package system

import (
	"cosmic-drifter/internal/component"
	"cosmic-drifter/internal/entity"
	"cosmic-drifter/internal/event"
	"cosmic-drifter/internal/types"
)

// WaveSystem следит за ходом сюжетного уровня: выпускает босса, когда квота
// исчерпана и поле чисто, и закрывает уровень без босса. Уровень с боссом
// закрывает подбор лекарства.
type WaveSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	spawner         *SpawnSystem
}

func NewWaveSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, spawner *SpawnSystem) *WaveSystem {
	return &WaveSystem{ecs: ecs, eventDispatcher: eventDispatcher, spawner: spawner}
}

func (s *WaveSystem) Update(wave *component.Wave) {
	if wave == nil || s.spawner.mode != component.ModeStory {
		return
	}
	if s.spawner.BossDue(wave) {
		s.spawner.SpawnBoss(wave)
		return
	}
	if wave.Completed {
		return
	}
	bossless := !wave.Boss && wave.QuotaExhausted() && s.ecs.Enemies.Len() == 0
	// лекарство улетело за край: уровень всё равно закрывается, но без зачёта
	cureLost := wave.Boss && wave.BossSpawned && !wave.BossFight && !s.cureOnField()
	if bossless || cureLost {
		wave.Completed = true
		s.eventDispatcher.Dispatch(event.Event{Type: event.LevelCompleted, Data: wave.Level})
	}
}

func (s *WaveSystem) cureOnField() bool {
	found := false
	s.ecs.PowerUps.Each(func(_ types.EntityID, pu *component.PowerUp) bool {
		found = pu.Type == component.Cure
		return !found
	})
	return found
}
