// internal/sound/sound_board.go
package sound

import (
	"bytes"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/rs/zerolog/log"

	"cosmic-drifter/internal/event"
)

const (
	CueShoot     = "shoot"
	CueExplosion = "explosion"
	CueMusic     = "music"
)

// Source — откуда берутся декодированные PCM-данные
type Source interface {
	Sound(name string) ([]byte, bool)
}

// voice — то, что умеет проигрываться с начала
type voice interface {
	Rewind() error
	Play()
}

// loopVoice — бесконечная дорожка, которую можно ставить на паузу
type loopVoice interface {
	Play()
	Pause()
	IsPlaying() bool
}

// SoundBoard проигрывает короткие звуковые сигналы по игровым событиям
// и фоновую музыку по кругу. Отсутствующий звук пропускается молча.
type SoundBoard struct {
	source   Source
	newVoice func(pcm []byte) voice
	newLoop  func(pcm []byte) (loopVoice, error)

	mu      sync.Mutex
	voices  map[string]voice
	music   loopVoice
	musicOn bool
	muted   bool
}

// NewSoundBoard создаёт пульт поверх аудиоконтекста ebiten.
func NewSoundBoard(ctx *audio.Context, source Source) *SoundBoard {
	if ctx == nil {
		panic("audio context cannot be nil")
	}
	board := newSoundBoard(source, func(pcm []byte) voice {
		return ctx.NewPlayerFromBytes(pcm)
	})
	board.newLoop = func(pcm []byte) (loopVoice, error) {
		loop := audio.NewInfiniteLoop(bytes.NewReader(pcm), int64(len(pcm)))
		player, err := ctx.NewPlayer(loop)
		if err != nil {
			return nil, err
		}
		return player, nil
	}
	return board
}

func newSoundBoard(source Source, newVoice func(pcm []byte) voice) *SoundBoard {
	return &SoundBoard{
		source:   source,
		newVoice: newVoice,
		voices:   make(map[string]voice),
	}
}

// Attach подписывает пульт на события, у которых есть звук.
func (s *SoundBoard) Attach(d *event.Dispatcher) {
	d.SubscribeAll(s, event.PlayerFired, event.BossDefeated, event.PlayerDied)
}

func (s *SoundBoard) OnEvent(e event.Event) {
	switch e.Type {
	case event.PlayerFired:
		s.Play(CueShoot)
	case event.BossDefeated, event.PlayerDied:
		s.Play(CueExplosion)
	}
}

// Play проигрывает сигнал с начала.
func (s *SoundBoard) Play(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.muted {
		return
	}
	v, ok := s.voices[name]
	if !ok {
		pcm, found := s.source.Sound(name)
		if !found {
			return
		}
		v = s.newVoice(pcm)
		s.voices[name] = v
	}
	if err := v.Rewind(); err != nil {
		log.Warn().Err(err).Str("cue", name).Msg("rewind failed")
		return
	}
	v.Play()
}

// StartMusic включает фоновую дорожку. При выключенном звуке она
// начнёт играть, когда звук вернут.
func (s *SoundBoard) StartMusic() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.musicOn = true
	s.resumeMusic()
}

func (s *SoundBoard) resumeMusic() {
	if !s.musicOn || s.muted || s.newLoop == nil {
		return
	}
	if s.music == nil {
		pcm, found := s.source.Sound(CueMusic)
		if !found {
			return
		}
		loop, err := s.newLoop(pcm)
		if err != nil {
			log.Warn().Err(err).Msg("music player failed")
			s.musicOn = false
			return
		}
		s.music = loop
	}
	if !s.music.IsPlaying() {
		s.music.Play()
	}
}

func (s *SoundBoard) applyMute() {
	if s.muted {
		if s.music != nil {
			s.music.Pause()
		}
		return
	}
	s.resumeMusic()
}

// ToggleMute переключает звук и возвращает новое состояние.
func (s *SoundBoard) ToggleMute() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.muted = !s.muted
	s.applyMute()
	return s.muted
}

func (s *SoundBoard) SetMuted(muted bool) {
	s.mu.Lock()
	s.muted = muted
	s.applyMute()
	s.mu.Unlock()
}

func (s *SoundBoard) Muted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.muted
}
