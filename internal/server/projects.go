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

// Wire types. Field names match the table columns; timestamps are
// ISO-8601 strings and are stored untouched.

type ProjectPayload struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	TotalTime   int64   `json:"total_time"`
	RatePerHour int64   `json:"rate_per_hour"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

type ProjectPatchPayload struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	TotalTime   *int64  `json:"total_time,omitempty"`
	RatePerHour *int64  `json:"rate_per_hour,omitempty"`
	UpdatedAt   string  `json:"updated_at"`
}

func payloadFromRecord(record *storage.ProjectRecord) ProjectPayload {
	return ProjectPayload{
		ID:          record.ID,
		Name:        record.Name,
		Description: record.Description,
		TotalTime:   record.TotalTime,
		RatePerHour: record.RatePerHour,
		CreatedAt:   record.CreatedAt,
		UpdatedAt:   record.UpdatedAt,
	}
}

// ListProjects returns all projects, creation descending.
func (h *Handler) ListProjects(w http.ResponseWriter, r *http.Request) {
	records, err := h.storage.Projects().List(r.Context())
	if err != nil {
		log.Printf("list projects error: %v", err)
		jsonError(w, http.StatusInternalServerError, errCodeInternalError, "internal server error")
		return
	}

	payloads := make([]ProjectPayload, 0, len(records))
	for _, record := range records {
		payloads = append(payloads, payloadFromRecord(record))
	}
	jsonOK(w, payloads)
}

// CreateProject inserts a new project row.
func (h *Handler) CreateProject(w http.ResponseWriter, r *http.Request) {
	var payload ProjectPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		jsonError(w, http.StatusBadRequest, errCodeBadRequest, "invalid request body")
		return
	}

	if payload.ID == "" || payload.CreatedAt == "" {
		jsonError(w, http.StatusBadRequest, errCodeValidationFailed, "id and created_at are required")
		return
	}
	if err := models.ValidateProjectName(payload.Name); err != nil {
		jsonError(w, http.StatusBadRequest, errCodeValidationFailed, err.Error())
		return
	}
	if payload.Description != nil {
		if err := models.ValidateDescription(*payload.Description); err != nil {
			jsonError(w, http.StatusBadRequest, errCodeValidationFailed, err.Error())
			return
		}
	}
	if err := models.ValidateRate(payload.RatePerHour); err != nil {
		jsonError(w, http.StatusBadRequest, errCodeValidationFailed, err.Error())
		return
	}

	record := &storage.ProjectRecord{
		ID:          payload.ID,
		Name:        payload.Name,
		Description: payload.Description,
		TotalTime:   payload.TotalTime,
		RatePerHour: payload.RatePerHour,
		CreatedAt:   payload.CreatedAt,
		UpdatedAt:   payload.UpdatedAt,
	}
	if record.UpdatedAt == "" {
		record.UpdatedAt = record.CreatedAt
	}

	if err := h.storage.Projects().Create(r.Context(), record); err != nil {
		log.Printf("create project error: %v", err)
		jsonError(w, http.StatusInternalServerError, errCodeInternalError, "internal server error")
		return
	}

	jsonCreated(w, payloadFromRecord(record))
}

// UpdateProject applies a partial field patch to a project row.
func (h *Handler) UpdateProject(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var patch ProjectPatchPayload
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		jsonError(w, http.StatusBadRequest, errCodeBadRequest, "invalid request body")
		return
	}

	record, err := h.storage.Projects().GetByID(r.Context(), id)
	if errors.Is(err, models.ErrProjectNotFound) {
		jsonError(w, http.StatusNotFound, errCodeNotFound, "project not found")
		return
	}
	if err != nil {
		log.Printf("get project error: %v", err)
		jsonError(w, http.StatusInternalServerError, errCodeInternalError, "internal server error")
		return
	}

	if patch.Name != nil {
		if err := models.ValidateProjectName(*patch.Name); err != nil {
			jsonError(w, http.StatusBadRequest, errCodeValidationFailed, err.Error())
			return
		}
		record.Name = *patch.Name
	}
	if patch.Description != nil {
		if err := models.ValidateDescription(*patch.Description); err != nil {
			jsonError(w, http.StatusBadRequest, errCodeValidationFailed, err.Error())
			return
		}
		record.Description = patch.Description
	}
	if patch.TotalTime != nil {
		record.TotalTime = *patch.TotalTime
	}
	if patch.RatePerHour != nil {
		if err := models.ValidateRate(*patch.RatePerHour); err != nil {
			jsonError(w, http.StatusBadRequest, errCodeValidationFailed, err.Error())
			return
		}
		record.RatePerHour = *patch.RatePerHour
	}
	if patch.UpdatedAt != "" {
		record.UpdatedAt = patch.UpdatedAt
	}

	if err := h.storage.Projects().Update(r.Context(), record); err != nil {
		log.Printf("update project error: %v", err)
		jsonError(w, http.StatusInternalServerError, errCodeInternalError, "internal server error")
		return
	}

	jsonOK(w, payloadFromRecord(record))
}

// DeleteProject removes a project row. Idempotent: deleting an absent id
// succeeds.
func (h *Handler) DeleteProject(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.storage.Projects().Delete(r.Context(), id); err != nil {
		log.Printf("delete project error: %v", err)
		jsonError(w, http.StatusInternalServerError, errCodeInternalError, "internal server error")
		return
	}
	jsonNoContent(w)
}
