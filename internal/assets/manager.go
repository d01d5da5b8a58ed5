// internal/assets/manager.go
package assets

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/png"
	"io"
	"io/fs"
	"sync"
	"sync/atomic"

	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// SampleRate общий для всех звуков и аудиоконтекста.
const SampleRate = 44100

const maxParallelLoads = 4

// Kind — вид ресурса
type Kind int

const (
	KindImage Kind = iota
	KindSound
)

// Resource — именованный файл в каталоге ресурсов
type Resource struct {
	Name string
	Path string
	Kind Kind
}

// DefaultResources — всё, что игра пытается загрузить. Любой файл может
// отсутствовать: картинки заменяются фигурами, звуки пропускаются.
var DefaultResources = []Resource{
	{Name: "player", Path: "spaceship.png", Kind: KindImage},
	{Name: "enemy", Path: "enemy.png", Kind: KindImage},
	{Name: "boss1", Path: "boss1.png", Kind: KindImage},
	{Name: "boss2", Path: "boss2.png", Kind: KindImage},
	{Name: "boss3", Path: "boss3.png", Kind: KindImage},
	{Name: "boss4", Path: "boss4.png", Kind: KindImage},
	{Name: "explosion", Path: "explosion.png", Kind: KindImage},
	{Name: "shoot", Path: "shoot.wav", Kind: KindSound},
	{Name: "explosion", Path: "explosion.wav", Kind: KindSound},
	{Name: "music", Path: "backgroundmusic.wav", Kind: KindSound},
}

// Manager загружает ресурсы параллельно и помнит, какие не удались.
// Картинки хранятся декодированными; в текстуры их переводит отрисовка.
type Manager struct {
	fsys      fs.FS
	resources []Resource

	mu     sync.RWMutex
	images map[string]image.Image
	sounds map[string][]byte // PCM, 16 бит, стерео, SampleRate
	failed map[string]error

	settled atomic.Int32
	started atomic.Bool
	done    chan struct{}
}

// NewManager создает менеджер поверх файловой системы ресурсов.
func NewManager(fsys fs.FS, resources []Resource) *Manager {
	if fsys == nil {
		panic("asset filesystem cannot be nil")
	}
	return &Manager{
		fsys:      fsys,
		resources: append([]Resource(nil), resources...),
		images:    make(map[string]image.Image),
		sounds:    make(map[string][]byte),
		failed:    make(map[string]error),
		done:      make(chan struct{}),
	}
}

// Load запускает загрузку в фоне. Повторный вызов ничего не делает.
func (m *Manager) Load(ctx context.Context) {
	if !m.started.CompareAndSwap(false, true) {
		return
	}
	go func() {
		g, ctx := errgroup.WithContext(ctx)
		g.SetLimit(maxParallelLoads)
		for _, r := range m.resources {
			r := r
			g.Go(func() error {
				m.loadSingle(ctx, r)
				return nil
			})
		}
		_ = g.Wait()
		log.Info().Int("total", len(m.resources)).Int("failed", len(m.Failed())).Msg("assets settled")
		close(m.done)
	}()
}

// loadSingle безопасно загружает один ресурс; ошибка только помечает его.
func (m *Manager) loadSingle(ctx context.Context, r Resource) {
	defer m.settled.Add(1)

	err := ctx.Err()
	if err == nil {
		err = m.decode(r)
	}
	if err != nil {
		log.Warn().Err(err).Str("asset", r.Name).Str("path", r.Path).Msg("asset unavailable, using fallback")
		m.mu.Lock()
		m.failed[key(r)] = err
		m.mu.Unlock()
		return
	}
	log.Debug().Str("asset", r.Name).Msg("asset loaded")
}

func (m *Manager) decode(r Resource) error {
	data, err := fs.ReadFile(m.fsys, r.Path)
	if err != nil {
		return fmt.Errorf("read %s: %w", r.Path, err)
	}

	switch r.Kind {
	case KindImage:
		img, _, err := image.Decode(bytes.NewReader(data))
		if err != nil {
			return fmt.Errorf("decode image %s: %w", r.Path, err)
		}
		m.mu.Lock()
		m.images[r.Name] = img
		m.mu.Unlock()
	case KindSound:
		stream, err := wav.DecodeWithSampleRate(SampleRate, bytes.NewReader(data))
		if err != nil {
			return fmt.Errorf("decode sound %s: %w", r.Path, err)
		}
		pcm, err := io.ReadAll(stream)
		if err != nil {
			return fmt.Errorf("read sound %s: %w", r.Path, err)
		}
		m.mu.Lock()
		m.sounds[r.Name] = pcm
		m.mu.Unlock()
	default:
		return fmt.Errorf("unknown asset kind %d", r.Kind)
	}
	return nil
}

// Progress — сколько ресурсов определилось (успехом или ошибкой) из общего числа.
func (m *Manager) Progress() (settled, total int) {
	return int(m.settled.Load()), len(m.resources)
}

// Done — все ресурсы определились.
func (m *Manager) Done() bool {
	select {
	case <-m.done:
		return true
	default:
		return false
	}
}

// Wait блокирует до завершения загрузки или отмены ctx.
func (m *Manager) Wait(ctx context.Context) error {
	select {
	case <-m.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Image возвращает декодированную картинку по имени.
func (m *Manager) Image(name string) (image.Image, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	img, ok := m.images[name]
	return img, ok
}

// Sound возвращает PCM звука по имени.
func (m *Manager) Sound(name string) ([]byte, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	pcm, ok := m.sounds[name]
	return pcm, ok
}

// Failed — копия ошибок по ресурсам вида "image:player".
func (m *Manager) Failed() map[string]error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make(map[string]error, len(m.failed))
	for k, v := range m.failed {
		out[k] = v
	}
	return out
}

func key(r Resource) string {
	if r.Kind == KindSound {
		return "sound:" + r.Name
	}
	return "image:" + r.Name
}
