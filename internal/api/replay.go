package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/lukev/innovation_server/internal/export"
	"github.com/lukev/innovation_server/internal/game"
	"github.com/lukev/innovation_server/internal/replay"
)

// ReplayHandler serves the replay REST API: saving live games, stepping
// through recorded ones, validating determinism, and board snapshots.
type ReplayHandler struct {
	manager *replay.ReplayManager
	games   *game.Manager
}

func NewReplayHandler(manager *replay.ReplayManager, games *game.Manager) *ReplayHandler {
	return &ReplayHandler{manager: manager, games: games}
}

func (h *ReplayHandler) RegisterRoutes(router *mux.Router) {
	s := router.PathPrefix("/api/replay").Subrouter()
	s.HandleFunc("/save", h.handleSave).Methods("POST")
	s.HandleFunc("/start", h.handleStart).Methods("POST")
	s.HandleFunc("/next", h.handleNext).Methods("POST")
	s.HandleFunc("/back", h.handleBack).Methods("POST")
	s.HandleFunc("/jump", h.handleJump).Methods("POST")
	s.HandleFunc("/state", h.handleState).Methods("GET")
	s.HandleFunc("/validate", h.handleValidate).Methods("POST")
	s.HandleFunc("/svg", h.handleSVG).Methods("GET")
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

// handleSave copies a live game's record into the replay directory.
func (h *ReplayHandler) handleSave(w http.ResponseWriter, r *http.Request) {
	var req struct {
		GameID string `json:"gameId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	record, ok := h.games.GetRecord(req.GameID)
	if !ok {
		writeError(w, http.StatusNotFound, fmt.Errorf("game %s not found", req.GameID))
		return
	}
	if err := h.manager.SaveRecord(record); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"gameId": req.GameID, "entries": len(record.Log)})
}

func (h *ReplayHandler) handleStart(w http.ResponseWriter, r *http.Request) {
	var req struct {
		GameID  string `json:"gameId"`
		Restart bool   `json:"restart"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	session, err := h.manager.StartReplay(req.GameID, req.Restart)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"gameId":       session.GameID,
		"currentIndex": session.Simulator.CurrentIndex,
		"totalEntries": len(session.Simulator.Record.Log),
	})
}

func (h *ReplayHandler) session(w http.ResponseWriter, r *http.Request) *replay.ReplaySession {
	gameID := r.URL.Query().Get("gameId")
	if gameID == "" {
		var req struct {
			GameID string `json:"gameId"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err == nil {
			gameID = req.GameID
		}
	}

	session := h.manager.GetSession(gameID)
	if session == nil {
		writeError(w, http.StatusNotFound, fmt.Errorf("session not found"))
		return nil
	}
	return session
}

func (h *ReplayHandler) handleNext(w http.ResponseWriter, r *http.Request) {
	session := h.session(w, r)
	if session == nil {
		return
	}
	if err := session.Simulator.StepForward(); err != nil {
		writeError(w, http.StatusConflict, err)
		return
	}
	h.writeSimulatorState(w, session)
}

func (h *ReplayHandler) handleBack(w http.ResponseWriter, r *http.Request) {
	session := h.session(w, r)
	if session == nil {
		return
	}
	if err := session.Simulator.StepBackward(); err != nil {
		writeError(w, http.StatusConflict, err)
		return
	}
	h.writeSimulatorState(w, session)
}

func (h *ReplayHandler) handleJump(w http.ResponseWriter, r *http.Request) {
	var req struct {
		GameID string `json:"gameId"`
		Index  int    `json:"index"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	session := h.manager.GetSession(req.GameID)
	if session == nil {
		writeError(w, http.StatusNotFound, fmt.Errorf("session not found"))
		return
	}
	if err := session.Simulator.JumpTo(req.Index); err != nil {
		writeError(w, http.StatusConflict, err)
		return
	}
	h.writeSimulatorState(w, session)
}

func (h *ReplayHandler) handleState(w http.ResponseWriter, r *http.Request) {
	session := h.session(w, r)
	if session == nil {
		return
	}
	h.writeSimulatorState(w, session)
}

func (h *ReplayHandler) writeSimulatorState(w http.ResponseWriter, session *replay.ReplaySession) {
	state := session.Simulator.GetState()
	writeJSON(w, http.StatusOK, map[string]any{
		"gameId":       session.GameID,
		"currentIndex": session.Simulator.CurrentIndex,
		"totalEntries": len(session.Simulator.Record.Log),
		"state":        game.SerializeStateWithRevision(state, session.GameID, session.Simulator.CurrentIndex),
	})
}

// handleValidate replays a stored record from scratch and reports every
// invariant or determinism violation.
func (h *ReplayHandler) handleValidate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		GameID         string `json:"gameId"`
		ExpectChecksum string `json:"expectChecksum,omitempty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	record, err := h.manager.LoadRecord(req.GameID)
	if err != nil {
		writeError(w, http.StatusNotFound, err)
		return
	}
	report, err := replay.ValidateRecord(record, req.ExpectChecksum)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

// handleSVG renders the current replay position as a board snapshot.
func (h *ReplayHandler) handleSVG(w http.ResponseWriter, r *http.Request) {
	session := h.session(w, r)
	if session == nil {
		return
	}

	opts := export.DefaultSVGOptions()
	opts.Title = fmt.Sprintf("Innovation - %s @ %d", session.GameID, session.Simulator.CurrentIndex)
	out, err := export.ExportSVG(session.Simulator.GetState(), opts)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	_, _ = w.Write(out)
}
