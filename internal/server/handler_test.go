package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"tempo/internal/models"
	"tempo/internal/storage"
)

// Mock repositories

type mockProjectRepo struct {
	records   []*storage.ProjectRecord
	createErr error
	listErr   error
	updateErr error
	deleteErr error
}

func (m *mockProjectRepo) Create(ctx context.Context, record *storage.ProjectRecord) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.records = append(m.records, record)
	return nil
}

func (m *mockProjectRepo) GetByID(ctx context.Context, id string) (*storage.ProjectRecord, error) {
	for _, record := range m.records {
		if record.ID == id {
			return record, nil
		}
	}
	return nil, models.ErrProjectNotFound
}

func (m *mockProjectRepo) List(ctx context.Context) ([]*storage.ProjectRecord, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.records, nil
}

func (m *mockProjectRepo) Update(ctx context.Context, record *storage.ProjectRecord) error {
	return m.updateErr
}

func (m *mockProjectRepo) Delete(ctx context.Context, id string) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	kept := m.records[:0]
	for _, record := range m.records {
		if record.ID != id {
			kept = append(kept, record)
		}
	}
	m.records = kept
	return nil
}

type mockSessionRepo struct {
	records []*storage.SessionRecord
}

func (m *mockSessionRepo) Create(ctx context.Context, record *storage.SessionRecord) error {
	m.records = append(m.records, record)
	return nil
}

func (m *mockSessionRepo) GetByID(ctx context.Context, id string) (*storage.SessionRecord, error) {
	for _, record := range m.records {
		if record.ID == id {
			return record, nil
		}
	}
	return nil, models.ErrSessionNotFound
}

func (m *mockSessionRepo) ListByProject(ctx context.Context, projectID string) ([]*storage.SessionRecord, error) {
	var out []*storage.SessionRecord
	for _, record := range m.records {
		if record.ProjectID == projectID {
			out = append(out, record)
		}
	}
	return out, nil
}

func (m *mockSessionRepo) Update(ctx context.Context, record *storage.SessionRecord) error {
	for i := range m.records {
		if m.records[i].ID == record.ID {
			m.records[i] = record
			return nil
		}
	}
	return models.ErrSessionNotFound
}

func (m *mockSessionRepo) DeleteByProject(ctx context.Context, projectID string) error {
	kept := m.records[:0]
	for _, record := range m.records {
		if record.ProjectID != projectID {
			kept = append(kept, record)
		}
	}
	m.records = kept
	return nil
}

type mockStorage struct {
	projects *mockProjectRepo
	sessions *mockSessionRepo
}

func newMockStorage() *mockStorage {
	return &mockStorage{
		projects: &mockProjectRepo{},
		sessions: &mockSessionRepo{},
	}
}

func (m *mockStorage) Projects() storage.ProjectRepository { return m.projects }
func (m *mockStorage) Sessions() storage.SessionRepository { return m.sessions }
func (m *mockStorage) Close() error                        { return nil }

func serve(store *mockStorage, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	NewHandler(store).Routes().ServeHTTP(rec, req)
	return rec
}

func TestCreateProjectValidation(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{
			"valid",
			`{"id":"p1","name":"Website","rate_per_hour":5000,"created_at":"2024-03-15T09:00:00Z"}`,
			http.StatusCreated,
		},
		{
			"missing id",
			`{"name":"Website","created_at":"2024-03-15T09:00:00Z"}`,
			http.StatusBadRequest,
		},
		{
			"name too short",
			`{"id":"p1","name":"x","created_at":"2024-03-15T09:00:00Z"}`,
			http.StatusBadRequest,
		},
		{
			"rate out of range",
			`{"id":"p1","name":"Website","rate_per_hour":100001,"created_at":"2024-03-15T09:00:00Z"}`,
			http.StatusBadRequest,
		},
		{
			"description too long",
			`{"id":"p1","name":"Website","description":"` + strings.Repeat("x", 201) + `","created_at":"2024-03-15T09:00:00Z"}`,
			http.StatusBadRequest,
		},
		{
			"malformed json",
			`{`,
			http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(newMockStorage(), "POST", "/api/projects", tt.body)
			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d (body %s)", rec.Code, tt.wantStatus, rec.Body.String())
			}
		})
	}
}

func TestListProjects(t *testing.T) {
	store := newMockStorage()
	store.projects.records = []*storage.ProjectRecord{
		{ID: "p1", Name: "Website", CreatedAt: "2024-03-15T09:00:00Z", UpdatedAt: "2024-03-15T09:00:00Z"},
	}

	rec := serve(store, "GET", "/api/projects", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var envelope struct {
		Data []ProjectPayload `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(envelope.Data) != 1 || envelope.Data[0].ID != "p1" {
		t.Errorf("unexpected payload: %+v", envelope.Data)
	}
}

func TestUpdateProjectPatchSemantics(t *testing.T) {
	store := newMockStorage()
	desc := "old desc"
	store.projects.records = []*storage.ProjectRecord{
		{ID: "p1", Name: "Website", Description: &desc, TotalTime: 1000, RatePerHour: 5000,
			CreatedAt: "2024-03-15T09:00:00Z", UpdatedAt: "2024-03-15T09:00:00Z"},
	}

	rec := serve(store, "PATCH", "/api/projects/p1",
		`{"total_time":9000,"updated_at":"2024-03-16T09:00:00Z"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %s)", rec.Code, rec.Body.String())
	}

	record := store.projects.records[0]
	if record.TotalTime != 9000 {
		t.Errorf("TotalTime = %d, want 9000", record.TotalTime)
	}
	if record.Name != "Website" || record.Description == nil || *record.Description != "old desc" {
		t.Error("absent patch fields must leave columns unchanged")
	}
	if record.UpdatedAt != "2024-03-16T09:00:00Z" {
		t.Errorf("UpdatedAt = %s, not stamped", record.UpdatedAt)
	}
}

func TestUpdateProjectRejectsLongDescription(t *testing.T) {
	store := newMockStorage()
	desc := "old desc"
	store.projects.records = []*storage.ProjectRecord{
		{ID: "p1", Name: "Website", Description: &desc,
			CreatedAt: "2024-03-15T09:00:00Z", UpdatedAt: "2024-03-15T09:00:00Z"},
	}

	body := `{"description":"` + strings.Repeat("x", 201) + `"}`
	rec := serve(store, "PATCH", "/api/projects/p1", body)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if *store.projects.records[0].Description != "old desc" {
		t.Error("rejected patch must leave the column unchanged")
	}
}

func TestUpdateProjectNotFound(t *testing.T) {
	rec := serve(newMockStorage(), "PATCH", "/api/projects/missing", `{"total_time":1}`)
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestDeleteProjectIdempotent(t *testing.T) {
	store := newMockStorage()
	store.projects.records = []*storage.ProjectRecord{
		{ID: "p1", Name: "Website", CreatedAt: "2024-03-15T09:00:00Z"},
	}

	rec := serve(store, "DELETE", "/api/projects/p1", "")
	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", rec.Code)
	}
	if len(store.projects.records) != 0 {
		t.Error("project should be removed")
	}

	rec = serve(store, "DELETE", "/api/projects/p1", "")
	if rec.Code != http.StatusNoContent {
		t.Errorf("repeat delete status = %d, want 204 (idempotent)", rec.Code)
	}
}

func TestSessionRoundTrip(t *testing.T) {
	store := newMockStorage()

	rec := serve(store, "POST", "/api/sessions",
		`{"id":"s1","project_id":"p1","start_time":"2024-03-15T09:00:00Z","end_time":"2024-03-15T10:00:00Z","duration":3600000}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d, want 201 (body %s)", rec.Code, rec.Body.String())
	}

	rec = serve(store, "GET", "/api/sessions/s1", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("get status = %d, want 200", rec.Code)
	}

	rec = serve(store, "PATCH", "/api/sessions/s1", `{"notes":"standup prep"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("patch status = %d, want 200", rec.Code)
	}
	if store.sessions.records[0].Notes == nil || *store.sessions.records[0].Notes != "standup prep" {
		t.Error("notes patch not applied")
	}
	if store.sessions.records[0].Duration != 3600000 {
		t.Error("absent patch fields must leave columns unchanged")
	}

	rec = serve(store, "GET", "/api/sessions/missing", "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("missing get status = %d, want 404", rec.Code)
	}
}

func TestListProjectSessions(t *testing.T) {
	store := newMockStorage()
	store.sessions.records = []*storage.SessionRecord{
		{ID: "s1", ProjectID: "p1", StartTime: "2024-03-15T09:00:00Z"},
		{ID: "s2", ProjectID: "p2", StartTime: "2024-03-15T10:00:00Z"},
	}

	rec := serve(store, "GET", "/api/projects/p1/sessions", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var envelope struct {
		Data []SessionPayload `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(envelope.Data) != 1 || envelope.Data[0].ID != "s1" {
		t.Errorf("unexpected payload: %+v", envelope.Data)
	}
}
