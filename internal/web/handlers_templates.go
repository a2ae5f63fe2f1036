package web

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/regression1607/meridian-frontend-sub000/internal/core"
	"github.com/regression1607/meridian-frontend-sub000/internal/logging"
)

type templatesResponse struct {
	Templates []core.Template `json:"templates"`
}

// handleListTemplates returns every registered template.
func (s *Server) handleListTemplates(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, templatesResponse{Templates: s.service.Templates()})
}

// handleGetTemplate returns one template's columns and examples.
func (s *Server) handleGetTemplate(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	tpl, ok := core.Get(name)
	if !ok {
		fail(w, r, fmt.Errorf("%w: %s", errUnknownTemplate, name))
		return
	}
	writeJSON(w, r, tpl)
}

// handleDownloadTemplate serves the CSV import template for a name.
func (s *Server) handleDownloadTemplate(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	filename, content, err := core.TemplateCSV(name)
	if err != nil {
		fail(w, r, err)
		return
	}

	logging.FromContext(r.Context()).Info("template downloaded", "template", name)
	writeCSV(w, r, filename, content)
}
