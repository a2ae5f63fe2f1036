package web

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/regression1607/meridian-frontend-sub000/internal/core"
)

const (
	// uploadOverhead allows for multipart boundaries and headers on top
	// of the file itself.
	uploadOverhead = 1 << 20

	// uploadMemory is how much of a multipart form is kept in memory.
	uploadMemory = 10 << 20
)

// validateResponse is the body returned by POST /api/validate/{name}.
type validateResponse struct {
	Parse      core.ParseResult      `json:"parse"`
	Validation core.ValidationResult `json:"validation"`
}

// handleParse parses an uploaded file without validating it.
func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	file, name, err := s.formFile(w, r)
	if err != nil {
		fail(w, r, err)
		return
	}
	defer file.Close()

	result, err := s.service.Parse(r.Context(), name, file)
	if err != nil {
		fail(w, r, err)
		return
	}
	writeJSON(w, r, result)
}

// handleValidate parses and validates an upload against a template.
// An unknown template is reported inside the validation result.
func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	template := chi.URLParam(r, "name")

	file, name, err := s.formFile(w, r)
	if err != nil {
		fail(w, r, err)
		return
	}
	defer file.Close()

	parsed, validation, err := s.service.Validate(r.Context(), template, name, file)
	if err != nil {
		fail(w, r, err)
		return
	}
	writeJSON(w, r, validateResponse{Parse: parsed, Validation: validation})
}

// handleImport runs a full import under the import limiter and records
// it in history.
func (s *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	template := chi.URLParam(r, "name")

	file, name, err := s.formFile(w, r)
	if err != nil {
		fail(w, r, err)
		return
	}
	defer file.Close()

	report, err := s.service.Import(r.Context(), core.ImportRequest{
		Template: template,
		FileName: name,
		Reader:   file,
	})
	if err != nil {
		s.metrics.observeFailure(err)
		fail(w, r, err)
		return
	}
	s.metrics.observeImport(report.Entry)
	writeJSON(w, r, report)
}

// formFile reads the "file" field of a multipart upload.
func (s *Server) formFile(w http.ResponseWriter, r *http.Request) (multipart.File, string, error) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxFileSize()+uploadOverhead)

	if err := r.ParseMultipartForm(uploadMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, "", fmt.Errorf("%w: request body exceeds %d bytes", core.ErrFileTooLarge, tooLarge.Limit)
		}
		return nil, "", fmt.Errorf("%w: %v", errInvalidForm, err)
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, "", core.ErrNoFile
		}
		return nil, "", fmt.Errorf("%w: %v", errInvalidForm, err)
	}
	return file, header.Filename, nil
}

func (s *Server) maxFileSize() int64 {
	if s.cfg.Import.MaxFileSize > 0 {
		return s.cfg.Import.MaxFileSize
	}
	return core.MaxFileSize
}
