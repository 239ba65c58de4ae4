package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"tempo/internal/models"
	"tempo/internal/storage"
)

type SessionPayload struct {
	ID        string  `json:"id"`
	ProjectID string  `json:"project_id"`
	StartTime string  `json:"start_time"`
	EndTime   *string `json:"end_time,omitempty"`
	Duration  int64   `json:"duration"`
	Notes     *string `json:"notes,omitempty"`
	CreatedAt string  `json:"created_at"`
}

type SessionPatchPayload struct {
	EndTime  *string `json:"end_time,omitempty"`
	Duration *int64  `json:"duration,omitempty"`
	Notes    *string `json:"notes,omitempty"`
}

func sessionPayloadFromRecord(record *storage.SessionRecord) SessionPayload {
	return SessionPayload{
		ID:        record.ID,
		ProjectID: record.ProjectID,
		StartTime: record.StartTime,
		EndTime:   record.EndTime,
		Duration:  record.Duration,
		Notes:     record.Notes,
		CreatedAt: record.CreatedAt,
	}
}

// ListProjectSessions returns a project's sessions, start time descending.
func (h *Handler) ListProjectSessions(w http.ResponseWriter, r *http.Request) {
	projectID := chi.URLParam(r, "id")

	records, err := h.storage.Sessions().ListByProject(r.Context(), projectID)
	if err != nil {
		log.Printf("list sessions error: %v", err)
		jsonError(w, http.StatusInternalServerError, errCodeInternalError, "internal server error")
		return
	}

	payloads := make([]SessionPayload, 0, len(records))
	for _, record := range records {
		payloads = append(payloads, sessionPayloadFromRecord(record))
	}
	jsonOK(w, payloads)
}

// DeleteProjectSessions removes all of a project's session rows. Called
// before the project row itself is deleted.
func (h *Handler) DeleteProjectSessions(w http.ResponseWriter, r *http.Request) {
	projectID := chi.URLParam(r, "id")

	if err := h.storage.Sessions().DeleteByProject(r.Context(), projectID); err != nil {
		log.Printf("delete sessions error: %v", err)
		jsonError(w, http.StatusInternalServerError, errCodeInternalError, "internal server error")
		return
	}
	jsonNoContent(w)
}

// CreateSession inserts a completed session row.
func (h *Handler) CreateSession(w http.ResponseWriter, r *http.Request) {
	var payload SessionPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		jsonError(w, http.StatusBadRequest, errCodeBadRequest, "invalid request body")
		return
	}

	if payload.ID == "" || payload.ProjectID == "" || payload.StartTime == "" {
		jsonError(w, http.StatusBadRequest, errCodeValidationFailed, "id, project_id and start_time are required")
		return
	}

	record := &storage.SessionRecord{
		ID:        payload.ID,
		ProjectID: payload.ProjectID,
		StartTime: payload.StartTime,
		EndTime:   payload.EndTime,
		Duration:  payload.Duration,
		Notes:     payload.Notes,
		CreatedAt: payload.CreatedAt,
	}
	if record.CreatedAt == "" {
		record.CreatedAt = record.StartTime
	}

	if err := h.storage.Sessions().Create(r.Context(), record); err != nil {
		log.Printf("create session error: %v", err)
		jsonError(w, http.StatusInternalServerError, errCodeInternalError, "internal server error")
		return
	}

	jsonCreated(w, sessionPayloadFromRecord(record))
}

// GetSession returns one session row; used as the existence probe by the
// client's project sync.
func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	record, err := h.storage.Sessions().GetByID(r.Context(), id)
	if errors.Is(err, models.ErrSessionNotFound) {
		jsonError(w, http.StatusNotFound, errCodeNotFound, "session not found")
		return
	}
	if err != nil {
		log.Printf("get session error: %v", err)
		jsonError(w, http.StatusInternalServerError, errCodeInternalError, "internal server error")
		return
	}

	jsonOK(w, sessionPayloadFromRecord(record))
}

// UpdateSession applies a partial field patch to a session row.
func (h *Handler) UpdateSession(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var patch SessionPatchPayload
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		jsonError(w, http.StatusBadRequest, errCodeBadRequest, "invalid request body")
		return
	}

	record, err := h.storage.Sessions().GetByID(r.Context(), id)
	if errors.Is(err, models.ErrSessionNotFound) {
		jsonError(w, http.StatusNotFound, errCodeNotFound, "session not found")
		return
	}
	if err != nil {
		log.Printf("get session error: %v", err)
		jsonError(w, http.StatusInternalServerError, errCodeInternalError, "internal server error")
		return
	}

	if patch.EndTime != nil {
		record.EndTime = patch.EndTime
	}
	if patch.Duration != nil {
		record.Duration = *patch.Duration
	}
	if patch.Notes != nil {
		record.Notes = patch.Notes
	}

	if err := h.storage.Sessions().Update(r.Context(), record); err != nil {
		log.Printf("update session error: %v", err)
		jsonError(w, http.StatusInternalServerError, errCodeInternalError, "internal server error")
		return
	}

	jsonOK(w, sessionPayloadFromRecord(record))
}
