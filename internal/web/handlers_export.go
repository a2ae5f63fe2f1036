package web

import (
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/regression1607/meridian-frontend-sub000/internal/core"
	"github.com/regression1607/meridian-frontend-sub000/internal/logging"
)

type transformResponse struct {
	Users []core.User `json:"users"`
}

// handleExport renders arbitrary records as a CSV download.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	var req exportRequest
	if err := decodeRequest(w, r, &req); err != nil {
		fail(w, r, err)
		return
	}
	if err := validateRequest(req); err != nil {
		fail(w, r, err)
		return
	}

	content := s.service.Export(req.Data, req.Headers)
	writeCSV(w, r, core.DownloadFileName(req.Filename), content)
}

// handleExportUsers flattens API users of one role into a CSV download
// using the role's template columns.
func (s *Server) handleExportUsers(w http.ResponseWriter, r *http.Request) {
	var req exportUsersRequest
	if err := decodeRequest(w, r, &req); err != nil {
		fail(w, r, err)
		return
	}
	req.Role = chi.URLParam(r, "role")
	if err := validateRequest(req); err != nil {
		fail(w, r, err)
		return
	}

	filename := req.Filename
	if filename == "" {
		filename = req.Role + "_export"
	}

	content := s.service.ExportUsers(req.Users, req.Role)
	writeCSV(w, r, core.DownloadFileName(filename), content)
}

// handleTransform turns parsed rows of one role into nested users.
func (s *Server) handleTransform(w http.ResponseWriter, r *http.Request) {
	var req transformRequest
	if err := decodeRequest(w, r, &req); err != nil {
		fail(w, r, err)
		return
	}
	req.Role = chi.URLParam(r, "role")
	if err := validateRequest(req); err != nil {
		fail(w, r, err)
		return
	}

	writeJSON(w, r, transformResponse{Users: core.TransformCSVToUserData(req.Rows, req.Role)})
}

// writeCSV sends content as a CSV attachment.
func writeCSV(w http.ResponseWriter, r *http.Request, filename, content string) {
	w.Header().Set("Content-Type", core.CSVContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	if _, err := io.WriteString(w, content); err != nil {
		logging.FromContext(r.Context()).Error("write csv", "file", filename, "error", err)
	}
}
