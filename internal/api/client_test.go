package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"tempo/internal/models"
)

func writeData(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"data": data})
}

func TestLoadProjects(t *testing.T) {
	createdAt := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	startTime := time.Date(2024, 3, 2, 9, 0, 0, 0, time.UTC)
	endTime := startTime.Add(90 * time.Minute)

	mux := chi.NewRouter()
	mux.Get("/api/projects", func(w http.ResponseWriter, r *http.Request) {
		desc := "client work"
		writeData(w, []projectRow{
			{
				ID:          "p1",
				Name:        "Website",
				Description: &desc,
				TotalTime:   5400000,
				RatePerHour: 5000,
				CreatedAt:   formatTimestamp(createdAt),
				UpdatedAt:   formatTimestamp(createdAt),
			},
		})
	})
	mux.Get("/api/projects/p1/sessions", func(w http.ResponseWriter, r *http.Request) {
		end := formatTimestamp(endTime)
		notes := "initial layout"
		writeData(w, []sessionRow{
			{
				ID:        "s1",
				ProjectID: "p1",
				StartTime: formatTimestamp(startTime),
				EndTime:   &end,
				Duration:  5400000,
				Notes:     &notes,
				CreatedAt: formatTimestamp(endTime),
			},
		})
	})

	server := httptest.NewServer(mux)
	defer server.Close()

	client := NewClient(server.URL)
	projects, err := client.LoadProjects()
	if err != nil {
		t.Fatalf("LoadProjects() error = %v", err)
	}

	if len(projects) != 1 {
		t.Fatalf("got %d projects, want 1", len(projects))
	}
	p := projects[0]
	if p.Name != "Website" || p.Description != "client work" || p.TotalTime != 5400000 {
		t.Errorf("unexpected project: %+v", p)
	}
	if !p.CreatedAt.Equal(createdAt) {
		t.Errorf("CreatedAt = %v, want %v", p.CreatedAt, createdAt)
	}
	if len(p.Sessions) != 1 {
		t.Fatalf("got %d sessions, want 1", len(p.Sessions))
	}
	s := p.Sessions[0]
	if s.ID != "s1" || s.Duration != 5400000 || s.Notes != "initial layout" {
		t.Errorf("unexpected session: %+v", s)
	}
	if s.EndTime == nil || !s.EndTime.Equal(endTime) {
		t.Errorf("EndTime = %v, want %v", s.EndTime, endTime)
	}
	if s.IsActive {
		t.Error("loaded sessions must never be active")
	}
}

func TestLoadProjectsServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]string{"code": "INTERNAL_ERROR", "message": "boom"},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	if _, err := client.LoadProjects(); err == nil {
		t.Fatal("expected error from failing server")
	}
}

func TestDeleteProjectOrdering(t *testing.T) {
	var calls []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, r.Method+" "+r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	if err := client.DeleteProject("p1"); err != nil {
		t.Fatalf("DeleteProject() error = %v", err)
	}

	want := []string{
		"DELETE /api/projects/p1/sessions",
		"DELETE /api/projects/p1",
	}
	if len(calls) != len(want) {
		t.Fatalf("got calls %v, want %v", calls, want)
	}
	for i := range want {
		if calls[i] != want[i] {
			t.Errorf("call %d = %q, want %q (sessions must be deleted before the project)", i, calls[i], want[i])
		}
	}
}

func TestGetSessionNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.GetSession("missing")
	if !errors.Is(err, models.ErrSessionNotFound) {
		t.Fatalf("err = %v, want ErrSessionNotFound", err)
	}
}

func TestSyncProjectUpserts(t *testing.T) {
	startTime := time.Date(2024, 3, 2, 9, 0, 0, 0, time.UTC)
	end := startTime.Add(time.Hour)

	var inserted, updated []string
	mux := chi.NewRouter()
	mux.Patch("/api/projects/p1", func(w http.ResponseWriter, r *http.Request) {
		writeData(w, nil)
	})
	mux.Get("/api/sessions/{id}", func(w http.ResponseWriter, r *http.Request) {
		if chi.URLParam(r, "id") == "existing" {
			writeData(w, sessionRow{
				ID:        "existing",
				ProjectID: "p1",
				StartTime: formatTimestamp(startTime),
				Duration:  1000,
				CreatedAt: formatTimestamp(startTime),
			})
			return
		}
		w.WriteHeader(http.StatusNotFound)
	})
	mux.Patch("/api/sessions/{id}", func(w http.ResponseWriter, r *http.Request) {
		updated = append(updated, chi.URLParam(r, "id"))
		writeData(w, nil)
	})
	mux.Post("/api/sessions", func(w http.ResponseWriter, r *http.Request) {
		var row sessionRow
		json.NewDecoder(r.Body).Decode(&row)
		inserted = append(inserted, row.ID)
		w.WriteHeader(http.StatusCreated)
		writeData(w, nil)
	})

	server := httptest.NewServer(mux)
	defer server.Close()

	project := &models.Project{
		ID:          "p1",
		Name:        "Website",
		TotalTime:   7200000,
		RatePerHour: 5000,
		CreatedAt:   startTime,
		Sessions: []models.TimeSession{
			{ID: "existing", ProjectID: "p1", StartTime: startTime, EndTime: &end, Duration: 3600000},
			{ID: "fresh", ProjectID: "p1", StartTime: startTime, EndTime: &end, Duration: 3600000},
		},
	}

	client := NewClient(server.URL)
	if err := client.SyncProject(project); err != nil {
		t.Fatalf("SyncProject() error = %v", err)
	}

	if len(updated) != 1 || updated[0] != "existing" {
		t.Errorf("updated = %v, want [existing]", updated)
	}
	if len(inserted) != 1 || inserted[0] != "fresh" {
		t.Errorf("inserted = %v, want [fresh]", inserted)
	}
}

func TestProjectRowRoundTrip(t *testing.T) {
	createdAt := time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC)
	original := &models.Project{
		ID:          "p1",
		Name:        "Website",
		Description: "client work",
		TotalTime:   5400000,
		RatePerHour: 5000,
		CreatedAt:   createdAt,
		Sessions:    []models.TimeSession{{ID: "s1"}},
	}

	row := projectToRow(original, time.Now())
	got, err := projectFromRow(row)
	if err != nil {
		t.Fatalf("projectFromRow() error = %v", err)
	}

	if got.ID != original.ID || got.Name != original.Name ||
		got.Description != original.Description ||
		got.TotalTime != original.TotalTime ||
		got.RatePerHour != original.RatePerHour ||
		!got.CreatedAt.Equal(original.CreatedAt) {
		t.Errorf("round trip changed project: got %+v, want %+v", got, original)
	}
	if len(got.Sessions) != 0 {
		t.Error("sessions must be empty after conversion; they are loaded separately")
	}
}
