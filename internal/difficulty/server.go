package difficulty

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"
)

type handler struct {
	advisor Advisor
}

// NewHandler exposes an Advisor over HTTP:
//
//	POST /v1/difficulty  Request -> Params
//	GET  /healthz
func NewHandler(advisor Advisor) http.Handler {
	h := &handler{advisor: advisor}
	r := mux.NewRouter()
	r.HandleFunc(advisePath, h.advise).Methods(http.MethodPost)
	r.HandleFunc("/healthz", h.health).Methods(http.MethodGet)
	return r
}

func (h *handler) advise(w http.ResponseWriter, r *http.Request) {
	var req Request
	if err := json.NewDecoder(io.LimitReader(r.Body, maxBodySize)).Decode(&req); err != nil {
		http.Error(w, "malformed request: "+err.Error(), http.StatusBadRequest)
		return
	}
	req.RunID = r.Header.Get(runIDHeader)

	params, err := h.advisor.Advise(r.Context(), req)
	if err == nil {
		err = params.Validate()
	}
	if err != nil {
		log.Error().Err(err).Str("run", req.RunID).Msg("advisor failed")
		http.Error(w, "advisor unavailable", http.StatusServiceUnavailable)
		return
	}

	log.Debug().
		Str("run", req.RunID).
		Int("score", req.PlayerScore).
		Float64("spawnRate", params.SpawnRate).
		Msg("advised")

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(params); err != nil {
		log.Warn().Err(err).Msg("write advisor response")
	}
}

func (h *handler) health(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
