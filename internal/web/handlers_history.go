package web

import (
	"net/http"
	"strconv"

	"github.com/regression1607/meridian-frontend-sub000/internal/core"
	"github.com/regression1607/meridian-frontend-sub000/internal/logging"
)

// maxHistoryLimit caps the limit query parameter.
const maxHistoryLimit = 500

type historyResponse struct {
	Imports []core.ImportEntry `json:"imports"`
}

type healthResponse struct {
	Status    string                   `json:"status"`
	Templates int                      `json:"templates"`
	Imports   core.ImportLimiterStatus `json:"imports"`
}

// handleHistory lists recent imports, optionally for one template.
//
//	GET /api/history?template=student&limit=20
func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	template := r.URL.Query().Get("template")

	limit, err := historyLimit(r.URL.Query().Get("limit"))
	if err != nil {
		fail(w, r, err)
		return
	}

	entries, err := s.service.History(r.Context(), template, limit)
	if err != nil {
		fail(w, r, err)
		return
	}
	if entries == nil {
		entries = []core.ImportEntry{}
	}
	writeJSON(w, r, historyResponse{Imports: entries})
}

func historyLimit(raw string) (int, error) {
	if raw == "" {
		return core.DefaultHistoryLimit, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, &requestError{
			msg:    "limit",
			fields: map[string]string{"limit": "limit must be a positive number"},
		}
	}
	return min(n, maxHistoryLimit), nil
}

// handleHealth reports liveness and import limiter load.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, healthResponse{
		Status:    "ok",
		Templates: core.TemplateCount(),
		Imports:   s.service.LimiterStatus(),
	})
}

// handleDashboard renders the landing page. A failing history store
// leaves the recent imports table empty.
func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	logger := logging.FromContext(r.Context())

	history, err := s.service.History(r.Context(), "", 10)
	if err != nil {
		logger.Error("dashboard history", "error", err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	data := dashboardData{
		Templates: s.service.Templates(),
		History:   history,
		Limiter:   s.service.LimiterStatus(),
	}
	if err := Dashboard(data).Render(r.Context(), w); err != nil {
		logger.Error("render dashboard", "error", err)
	}
}
