package defs

import (
	"os"
	"path/filepath"
	"testing"

	"cosmic-drifter/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedCampaign(t *testing.T) {
	levels := StoryLevels()
	require.Len(t, levels, 5)
	assert.Equal(t, "The Anomaly", levels[0].Title)
	assert.Equal(t, 10, levels[0].EnemyCount)
	assert.True(t, levels[3].Boss)
	assert.False(t, levels[4].Boss)
	assert.Zero(t, levels[4].EnemyCount)
}

func TestStoryLevelsReturnsIndependentCopies(t *testing.T) {
	a := StoryLevels()
	a[0].Dialogue[0] = "changed"
	a[0].EnemyCount = 99

	b := StoryLevels()
	assert.NotEqual(t, "changed", b[0].Dialogue[0])
	assert.Equal(t, 10, b[0].EnemyCount)
}

func TestParseStoryLevelsRejectsBadNumbering(t *testing.T) {
	_, err := ParseStoryLevels([]byte("- level: 2\n  title: x\n"))
	assert.Error(t, err)

	_, err = ParseStoryLevels([]byte("[]"))
	assert.Error(t, err)

	_, err = ParseStoryLevels([]byte("- level: 1\n  enemy_count: -1\n"))
	assert.Error(t, err)
}

func TestLoadStoryLevels(t *testing.T) {
	path := filepath.Join(t.TempDir(), "levels.yaml")
	require.NoError(t, os.WriteFile(path, []byte("- level: 1\n  title: Solo\n  enemy_count: 3\n  boss: true\n"), 0o644))

	levels, err := LoadStoryLevels(path)
	require.NoError(t, err)
	require.Len(t, levels, 1)
	assert.Equal(t, "Solo", levels[0].Title)

	_, err = LoadStoryLevels(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestEnemyScaling(t *testing.T) {
	assert.Equal(t, 1, StandardEnemyHealth(1))
	assert.Equal(t, 1, StandardEnemyHealth(2))
	assert.Equal(t, 3, StandardEnemyHealth(3))
	assert.Equal(t, 4, StandardEnemyHealth(7))

	assert.Nil(t, StandardEnemyVolley(1))
	assert.Len(t, StandardEnemyVolley(3), 1)
	assert.Len(t, StandardEnemyVolley(4), 2)

	assert.Equal(t, 20, BossHealth(1))
	assert.Equal(t, 80, BossHealth(2))
	assert.Equal(t, "boss3", BossVisualFor(3).Sprite)
	assert.Empty(t, BossVisualFor(9).Sprite)
}

func TestBossPatternTable(t *testing.T) {
	assert.Equal(t, SpecialBigShot, BossPatternFor(1).Special)
	assert.Len(t, BossPatternFor(2).SpecialVolley, 2)
	assert.Equal(t, SpecialLaser, BossPatternFor(3).Special)
	assert.Zero(t, BossPatternFor(3).Reinforcements)
	assert.Equal(t, config.BossReinforcements, BossPatternFor(4).Reinforcements)
	assert.Equal(t, BossPatternFor(4), BossPatternFor(12))
	assert.Equal(t, BossPatternFor(1), BossPatternFor(0))
}

func TestBossFireCooldownHasFloor(t *testing.T) {
	assert.InDelta(t, 1.4, BossFireCooldown(1), 1e-9)
	assert.InDelta(t, 1.1, BossFireCooldown(4), 1e-9)
	assert.Equal(t, config.MinBossFireCooldown, BossFireCooldown(15))
	assert.Equal(t, config.MinBossFireCooldown, BossFireCooldown(100))
}
