// Package server exposes the calculation engine and share codec over a
// small JSON API for the UI collaborator.
package server

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"

	"immoforecast/internal/optimizer"
	"immoforecast/internal/results"
	"immoforecast/internal/share"
	"immoforecast/internal/simulation"
	"immoforecast/internal/stress"
	"immoforecast/pkg/constants"
)

type handler struct {
	logger      *zap.Logger
	engine      *results.Engine
	optimizer   *optimizer.Runner
	maxBodySize int64
	version     string
}

// NewHandler constructs the HTTP handler that serves the simulation API.
func NewHandler(logger *zap.Logger, maxBodySize int64, version string) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if maxBodySize <= 0 {
		maxBodySize = constants.DefaultMaxBodySizeBytes
	}
	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{
		logger:      logger,
		engine:      results.NewEngine(logger),
		optimizer:   optimizer.NewRunner(logger),
		maxBodySize: maxBodySize,
		version:     trimmedVersion,
	}

	mux := http.NewServeMux()

	// Simulation API endpoints
	mux.HandleFunc("/api/simulate", h.handleSimulate)
	mux.HandleFunc("/api/stress", h.handleStress)
	mux.HandleFunc("/api/optimize", h.handleOptimize)

	// Share codec endpoints
	mux.HandleFunc("/api/share/encode", h.handleShareEncode)
	mux.HandleFunc("/api/share/decode", h.handleShareDecode)

	// Version endpoint for UI metadata
	mux.HandleFunc("/api/version", h.handleVersion)

	return mux
}

type errorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Warn("failed to encode response",
			zap.String("op", "server.writeJSON"),
			zap.Error(err),
		)
	}
}

func (h *handler) writeError(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, errorResponse{Status: status, Message: message})
}

// decodeBody reads a size-capped JSON request body into dst.
func (h *handler) decodeBody(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	if h.maxBodySize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxBodySize)
	}
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return err
	}
	return nil
}

func (h *handler) handleSimulate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.writeError(w, http.StatusMethodNotAllowed, http.StatusText(http.StatusMethodNotAllowed))
		return
	}

	start := time.Now()
	var input simulation.Input
	if err := h.decodeBody(w, r, &input); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	result := h.engine.Calculate(input)
	h.logger.Debug("simulate request served",
		zap.String("op", "server.handleSimulate"),
		zap.Duration("duration", time.Since(start)),
	)
	h.writeJSON(w, http.StatusOK, result)
}

func (h *handler) handleStress(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.writeError(w, http.StatusMethodNotAllowed, http.StatusText(http.StatusMethodNotAllowed))
		return
	}

	var input simulation.Input
	if err := h.decodeBody(w, r, &input); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	scenarios := stress.Run(h.engine, input)
	h.writeJSON(w, http.StatusOK, scenarios)
}

// optimizeRequest names the field to search over with the wire name it
// carries in simulation payloads.
type optimizeRequest struct {
	Field  string           `json:"field"`
	Target float64          `json:"target"`
	Data   simulation.Input `json:"data"`
}

func (h *handler) handleOptimize(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.writeError(w, http.StatusMethodNotAllowed, http.StatusText(http.StatusMethodNotAllowed))
		return
	}

	var req optimizeRequest
	if err := h.decodeBody(w, r, &req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	var summary optimizer.Summary
	var err error
	switch req.Field {
	case "prixAchat":
		summary, err = h.optimizer.MaxPurchasePrice(req.Data, req.Target)
	case "loyers":
		summary, err = h.optimizer.MinUnitRent(req.Data, req.Target)
	default:
		h.writeError(w, http.StatusBadRequest, "unknown optimization field: "+req.Field)
		return
	}
	if err != nil {
		h.writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	h.writeJSON(w, http.StatusOK, summary)
}

type encodeResponse struct {
	Token string `json:"token"`
}

func (h *handler) handleShareEncode(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.writeError(w, http.StatusMethodNotAllowed, http.StatusText(http.StatusMethodNotAllowed))
		return
	}

	var sim simulation.Simulation
	if err := h.decodeBody(w, r, &sim); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	token, err := share.Encode(sim)
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, "failed to encode simulation")
		return
	}
	h.writeJSON(w, http.StatusOK, encodeResponse{Token: token})
}

type decodeRequest struct {
	Token string `json:"token"`
}

func (h *handler) handleShareDecode(w http.ResponseWriter, r *http.Request) {
	var token string
	switch r.Method {
	case http.MethodGet:
		token = r.URL.Query().Get("token")
	case http.MethodPost:
		var req decodeRequest
		if err := h.decodeBody(w, r, &req); err != nil {
			h.writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
			return
		}
		token = req.Token
	default:
		h.writeError(w, http.StatusMethodNotAllowed, http.StatusText(http.StatusMethodNotAllowed))
		return
	}

	sim, err := share.Decode(token)
	if err != nil {
		if errors.Is(err, share.ErrInvalidToken) {
			// All decode failures are one rejection outcome; detail would
			// leak validator structure to an adversary for no caller gain.
			h.writeError(w, http.StatusUnprocessableEntity, "invalid share token")
			return
		}
		h.writeError(w, http.StatusInternalServerError, "failed to decode share token")
		return
	}
	h.writeJSON(w, http.StatusOK, sim)
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.writeError(w, http.StatusMethodNotAllowed, http.StatusText(http.StatusMethodNotAllowed))
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]string{"version": h.version})
}
