package render

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"cosmic-drifter/internal/component"
	"cosmic-drifter/internal/config"
)

type fakeHUD struct {
	mode          component.Mode
	score, level  int
	cures         int
	health, max   int
	timer         int
	notice        component.Notification
	noticeVisible bool
	title, line   string
}

func (f fakeHUD) Phase() component.Phase { return component.PhasePlaying }
func (f fakeHUD) Mode() component.Mode { return f.mode }
func (f fakeHUD) Score() int { return f.score }
func (f fakeHUD) Level() int { return f.level }
func (f fakeHUD) TotalLevels() int { return 5 }
func (f fakeHUD) Cures() int { return f.cures }
func (f fakeHUD) PlayerHealth() (int, int) { return f.health, f.max }
func (f fakeHUD) PowerUpTimer() int { return f.timer }
func (f fakeHUD) Dialogue() (string, string) { return f.title, f.line }
func (f fakeHUD) Notice() (component.Notification, bool) {
	return f.notice, f.noticeVisible
}

func TestProjectHUD_Story(t *testing.T) {
	v := ProjectHUD(fakeHUD{
		mode: component.ModeStory, score: 140, level: 3, cures: 2,
		health: 55, max: 100, timer: 7,
		notice:        component.Notification{Message: "Boss Incoming!", Kind: component.NoticeBoss, TTL: 0.5},
		noticeVisible: true,
	})

	assert.InDelta(t, 0.55, v.HealthFraction, 1e-9)
	assert.Equal(t, "55 / 100", v.Health)
	assert.Equal(t, "140", v.Score)
	assert.Equal(t, "Level 3", v.Level)
	assert.Equal(t, "2 / 4", v.Cures)
	assert.Equal(t, "Power-Up Time: 7s", v.PowerUpTimer)
	assert.Equal(t, "Boss Incoming!", v.Notice)
	assert.Equal(t, config.NoticeBossColor, v.NoticeColor)
}

func TestProjectHUD_EndlessHidesStoryFields(t *testing.T) {
	v := ProjectHUD(fakeHUD{
		mode: component.ModeEndless, health: 0, max: 100,
		notice: component.Notification{Message: "stale"},
	})

	assert.Equal(t, "Endless", v.Level)
	assert.Empty(t, v.Cures)
	assert.Empty(t, v.PowerUpTimer)
	assert.Empty(t, v.Notice)
	assert.Zero(t, v.HealthFraction)
}

func TestProjectHUD_PowerUpNoticeColor(t *testing.T) {
	v := ProjectHUD(fakeHUD{
		max:           100,
		notice:        component.Notification{Message: "Weapon Upgrade!", Kind: component.NoticePowerUp, TTL: 1},
		noticeVisible: true,
	})
	assert.Equal(t, config.NoticePowerColor, v.NoticeColor)
}
