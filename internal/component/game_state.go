// internal/component/game_state.go
package component

import "fmt"

// Phase — фаза забега. В каждый момент активна ровно одна.
type Phase int

const (
	PhaseLoading Phase = iota
	PhaseMenu
	PhaseLevelTransition
	PhasePlaying
	PhasePaused
	PhaseGameOver
	PhaseStoryEnd
)

var phaseNames = [...]string{"loading", "menu", "levelTransition", "playing", "paused", "gameOver", "storyEnd"}

func (p Phase) String() string {
	if int(p) < len(phaseNames) {
		return phaseNames[p]
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

// Mode — режим забега, выбирается один раз
type Mode int

const (
	ModeStory Mode = iota
	ModeEndless
)

func (m Mode) String() string {
	if m == ModeEndless {
		return "endless"
	}
	return "story"
}

// ParseMode разбирает значение флага -mode
func ParseMode(s string) (Mode, error) {
	switch s {
	case "story":
		return ModeStory, nil
	case "endless":
		return ModeEndless, nil
	}
	return ModeStory, fmt.Errorf("unknown mode %q (want story or endless)", s)
}
