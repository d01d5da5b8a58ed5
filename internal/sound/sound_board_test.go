package sound

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"cosmic-drifter/internal/event"
)

type mapSource map[string][]byte

func (m mapSource) Sound(name string) ([]byte, bool) {
	pcm, ok := m[name]
	return pcm, ok
}

type fakeVoice struct {
	plays     int
	rewinds   int
	rewindErr error
}

func (v *fakeVoice) Rewind() error { v.rewinds++; return v.rewindErr }
func (v *fakeVoice) Play()         { v.plays++ }

func newTestBoard(src Source) (*SoundBoard, map[string]*fakeVoice) {
	created := map[string]*fakeVoice{}
	board := newSoundBoard(src, func(pcm []byte) voice {
		v := &fakeVoice{}
		created[string(pcm)] = v
		return v
	})
	return board, created
}

func TestSoundBoard_PlaysAndReusesVoice(t *testing.T) {
	board, voices := newTestBoard(mapSource{CueShoot: []byte("shoot-pcm")})

	board.Play(CueShoot)
	board.Play(CueShoot)

	assert.Len(t, voices, 1)
	assert.Equal(t, 2, voices["shoot-pcm"].plays)
	assert.Equal(t, 2, voices["shoot-pcm"].rewinds)
}

func TestSoundBoard_MissingSoundIsSkipped(t *testing.T) {
	board, voices := newTestBoard(mapSource{})

	assert.NotPanics(t, func() { board.Play(CueExplosion) })
	assert.Empty(t, voices)
}

func TestSoundBoard_MuteSilences(t *testing.T) {
	board, voices := newTestBoard(mapSource{CueShoot: []byte("s")})

	assert.True(t, board.ToggleMute())
	board.Play(CueShoot)
	assert.Empty(t, voices)

	assert.False(t, board.ToggleMute())
	board.Play(CueShoot)
	assert.Equal(t, 1, voices["s"].plays)
}

func TestSoundBoard_RewindErrorSkipsPlay(t *testing.T) {
	v := &fakeVoice{rewindErr: errors.New("closed")}
	board := newSoundBoard(mapSource{CueShoot: []byte("s")}, func([]byte) voice { return v })

	board.Play(CueShoot)
	assert.Zero(t, v.plays)
}

func TestSoundBoard_EventsMapToCues(t *testing.T) {
	board, voices := newTestBoard(mapSource{CueShoot: []byte("s"), CueExplosion: []byte("e")})
	d := event.NewDispatcher()
	board.Attach(d)

	d.Dispatch(event.Event{Type: event.PlayerFired})
	d.Dispatch(event.Event{Type: event.BossDefeated})
	d.Dispatch(event.Event{Type: event.PlayerDied})
	d.Dispatch(event.Event{Type: event.EnemyDestroyed}) // без звука

	assert.Equal(t, 1, voices["s"].plays)
	assert.Equal(t, 2, voices["e"].plays)
}

type fakeLoop struct {
	playing bool
	plays   int
	pauses  int
}

func (l *fakeLoop) Play()           { l.playing = true; l.plays++ }
func (l *fakeLoop) Pause()          { l.playing = false; l.pauses++ }
func (l *fakeLoop) IsPlaying() bool { return l.playing }

func newMusicBoard(src Source) (*SoundBoard, *fakeLoop, *int) {
	loop := &fakeLoop{}
	created := 0
	board, _ := newTestBoard(src)
	board.newLoop = func([]byte) (loopVoice, error) {
		created++
		return loop, nil
	}
	return board, loop, &created
}

func TestSoundBoard_MusicLoopsAndFollowsMute(t *testing.T) {
	board, loop, created := newMusicBoard(mapSource{CueMusic: []byte("m")})

	board.StartMusic()
	board.StartMusic()
	assert.True(t, loop.playing)
	assert.Equal(t, 1, loop.plays)
	assert.Equal(t, 1, *created)

	assert.True(t, board.ToggleMute())
	assert.False(t, loop.playing)

	assert.False(t, board.ToggleMute())
	assert.True(t, loop.playing)

	board.SetMuted(true)
	assert.False(t, loop.playing)
	assert.Equal(t, 1, *created)
}

func TestSoundBoard_MusicWaitsForUnmute(t *testing.T) {
	board, loop, created := newMusicBoard(mapSource{CueMusic: []byte("m")})
	board.SetMuted(true)

	board.StartMusic()
	assert.Zero(t, *created)

	board.SetMuted(false)
	assert.True(t, loop.playing)
}

func TestSoundBoard_MuteBeforeMusicDoesNotStartIt(t *testing.T) {
	board, loop, created := newMusicBoard(mapSource{CueMusic: []byte("m")})

	board.ToggleMute()
	board.ToggleMute()
	assert.Zero(t, *created)
	assert.False(t, loop.playing)
}

func TestSoundBoard_MissingMusicIsSkipped(t *testing.T) {
	board, _, created := newMusicBoard(mapSource{})

	assert.NotPanics(t, board.StartMusic)
	assert.Zero(t, *created)
}

func TestSoundBoard_MusicPlayerErrorDisablesMusic(t *testing.T) {
	board, _ := newTestBoard(mapSource{CueMusic: []byte("m")})
	attempts := 0
	board.newLoop = func([]byte) (loopVoice, error) {
		attempts++
		return nil, errors.New("no device")
	}

	board.StartMusic()
	board.ToggleMute()
	board.ToggleMute()
	assert.Equal(t, 1, attempts)
}
