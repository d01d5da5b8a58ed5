package difficulty

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultsAreValid(t *testing.T) {
	d := Defaults()
	assert.Equal(t, Params{SpawnRate: 1, AttackPower: 1, Speed: 1, PowerUpFrequency: 0.1}, d)
	assert.NoError(t, d.Validate())
}

func TestValidateRejectsNonPositive(t *testing.T) {
	cases := []Params{
		{SpawnRate: 0, AttackPower: 1, Speed: 1, PowerUpFrequency: 0.1},
		{SpawnRate: 1, AttackPower: -1, Speed: 1, PowerUpFrequency: 0.1},
		{SpawnRate: 1, AttackPower: 1, Speed: math.NaN(), PowerUpFrequency: 0.1},
		{SpawnRate: 1, AttackPower: 1, Speed: 1, PowerUpFrequency: math.Inf(1)},
	}
	for _, c := range cases {
		assert.ErrorIs(t, c.Validate(), ErrInvalidParams)
	}
}

func TestHeuristicScalesWithSkill(t *testing.T) {
	ctx := context.Background()
	novice, err := Heuristic{}.Advise(ctx, Request{GameTime: 60})
	require.NoError(t, err)
	expert, err := Heuristic{}.Advise(ctx, Request{PlayerScore: 3000, EnemiesDefeated: 300, PowerUpsCollected: 5, GameTime: 300})
	require.NoError(t, err)

	assert.NoError(t, novice.Validate())
	assert.NoError(t, expert.Validate())
	assert.Greater(t, expert.SpawnRate, novice.SpawnRate)
	assert.Greater(t, expert.Speed, novice.Speed)
	assert.Less(t, expert.PowerUpFrequency, novice.PowerUpFrequency)
	assert.LessOrEqual(t, expert.SpawnRate, 3.0)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = Heuristic{}.Advise(cancelled, Request{})
	assert.Error(t, err)
}

func TestHTTPAdvisorRoundTrip(t *testing.T) {
	srv := httptest.NewServer(NewHandler(Heuristic{}))
	defer srv.Close()

	client := NewHTTPAdvisor(srv.URL+"/", srv.Client())
	req := Request{PlayerScore: 500, Level: 1, EnemiesDefeated: 50, GameTime: 120, RunID: "run-1"}
	got, err := client.Advise(context.Background(), req)
	require.NoError(t, err)

	want, _ := Heuristic{}.Advise(context.Background(), req)
	assert.InDelta(t, want.SpawnRate, got.SpawnRate, 1e-9)
	assert.InDelta(t, want.PowerUpFrequency, got.PowerUpFrequency, 1e-9)
}

func TestHTTPAdvisorSendsWireFormat(t *testing.T) {
	var body map[string]interface{}
	var runID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		runID = r.Header.Get("X-Run-ID")
		_ = json.NewDecoder(r.Body).Decode(&body)
		_, _ = w.Write([]byte(`{"enemySpawnRate":2,"enemyAttackPower":1.5,"enemySpeed":1.2,"powerUpFrequency":0.2}`))
	}))
	defer srv.Close()

	got, err := NewHTTPAdvisor(srv.URL, nil).Advise(context.Background(), Request{PlayerScore: 40, Level: 1, EnemiesDefeated: 4, PowerUpsCollected: 1, GameTime: 12.5, RunID: "abc"})
	require.NoError(t, err)
	assert.Equal(t, Params{SpawnRate: 2, AttackPower: 1.5, Speed: 1.2, PowerUpFrequency: 0.2}, got)
	assert.Equal(t, "abc", runID)
	assert.Equal(t, 40.0, body["playerScore"])
	assert.Equal(t, 4.0, body["enemiesDefeated"])
	assert.Equal(t, 1.0, body["powerUpsCollected"])
	assert.Equal(t, 12.5, body["gameTime"])
	assert.NotContains(t, body, "RunID")
}

func TestHTTPAdvisorFailures(t *testing.T) {
	cases := map[string]http.HandlerFunc{
		"status": func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		},
		"garbage": func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte("not json"))
		},
		"zero": func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"enemySpawnRate":0,"enemyAttackPower":1,"enemySpeed":1,"powerUpFrequency":0.1}`))
		},
	}
	for name, h := range cases {
		t.Run(name, func(t *testing.T) {
			srv := httptest.NewServer(h)
			defer srv.Close()
			_, err := NewHTTPAdvisor(srv.URL, srv.Client()).Advise(context.Background(), Request{})
			assert.Error(t, err)
		})
	}
}

func TestHandlerRoutes(t *testing.T) {
	h := NewHandler(AdvisorFunc(func(context.Context, Request) (Params, error) {
		return Params{}, errors.New("model offline")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/difficulty", strings.NewReader(`{"playerScore":1}`)))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/difficulty", strings.NewReader(`{`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/difficulty", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestPollerPostsDefaultsOnFailure(t *testing.T) {
	var calls atomic.Int32
	p := NewPoller(AdvisorFunc(func(context.Context, Request) (Params, error) {
		calls.Add(1)
		return Params{}, errors.New("unreachable")
	}), 5*time.Millisecond, time.Second)
	p.Publish(Snapshot{Request: Request{PlayerScore: 10}, Playing: true})
	p.Start(context.Background())
	defer p.Stop()

	select {
	case got := <-p.Updates():
		assert.Equal(t, Defaults(), got)
	case <-time.After(2 * time.Second):
		t.Fatal("no update from poller")
	}
	assert.GreaterOrEqual(t, calls.Load(), int32(1))
}

func TestPollerSkipsWhileNotPlaying(t *testing.T) {
	var calls atomic.Int32
	p := NewPoller(AdvisorFunc(func(context.Context, Request) (Params, error) {
		calls.Add(1)
		return Defaults(), nil
	}), 2*time.Millisecond, time.Second)
	p.Publish(Snapshot{Playing: false})
	p.Start(context.Background())
	time.Sleep(30 * time.Millisecond)
	p.Stop()

	assert.Zero(t, calls.Load())
	select {
	case <-p.Updates():
		t.Fatal("unexpected update")
	default:
	}
}

func TestPollerLatestValueWins(t *testing.T) {
	p := NewPoller(Heuristic{}, time.Hour, time.Second)
	p.post(Params{SpawnRate: 1, AttackPower: 1, Speed: 1, PowerUpFrequency: 1})
	p.post(Params{SpawnRate: 2, AttackPower: 1, Speed: 1, PowerUpFrequency: 1})

	got := <-p.Updates()
	assert.Equal(t, 2.0, got.SpawnRate)
}

func TestPollerStopIsIdempotent(t *testing.T) {
	p := NewPoller(Heuristic{}, time.Millisecond, time.Second)
	p.Stop() // not started
	q := NewPoller(Heuristic{}, time.Millisecond, time.Second)
	q.Start(context.Background())
	q.Stop()
	q.Stop()
}
