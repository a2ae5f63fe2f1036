package core

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/regression1607/meridian-frontend-sub000/internal/logging"
)

// DefaultImportTimeout is the maximum duration for a single import.
const DefaultImportTimeout = 2 * time.Minute

// ServiceConfig tunes a Service. Zero values select the package defaults.
type ServiceConfig struct {
	MaxFileSize   int64
	MaxConcurrent int
	MaxWait       time.Duration
	Timeout       time.Duration
}

// Service ties the CSV engine to import limiting and history.
type Service struct {
	limiter     *ImportLimiter
	history     ImportLog
	maxFileSize int64
	timeout     time.Duration
	now         func() time.Time
}

// ImportRequest is one uploaded file to import against a template.
type ImportRequest struct {
	Template string
	FileName string
	Reader   io.Reader
}

// ImportReport is everything an import produced. Users is only filled
// for valid files of a user role.
type ImportReport struct {
	Entry      ImportEntry      `json:"entry"`
	Parse      ParseResult      `json:"parse"`
	Validation ValidationResult `json:"validation"`
	Users      []User           `json:"users,omitempty"`
}

// NewService creates a Service recording imports in history.
// A nil history keeps a MemoryImportLog.
func NewService(history ImportLog, cfg ServiceConfig) *Service {
	if history == nil {
		history = NewMemoryImportLog(0)
	}
	if cfg.MaxFileSize <= 0 {
		cfg.MaxFileSize = MaxFileSize
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultImportTimeout
	}
	return &Service{
		limiter:     NewImportLimiter(cfg.MaxConcurrent, cfg.MaxWait),
		history:     history,
		maxFileSize: cfg.MaxFileSize,
		timeout:     cfg.Timeout,
		now:         time.Now,
	}
}

// Templates returns every registered template.
func (s *Service) Templates() []Template {
	return All()
}

// Parse reads and parses an uploaded file without validating it.
func (s *Service) Parse(ctx context.Context, fileName string, r io.Reader) (ParseResult, error) {
	text, err := ReadCSVFile(ctx, fileName, r, s.maxFileSize)
	if err != nil {
		return ParseResult{}, err
	}
	return ParseCSV(text), nil
}

// Validate reads and parses an uploaded file, then validates it against
// the named template.
func (s *Service) Validate(ctx context.Context, template, fileName string, r io.Reader) (ParseResult, ValidationResult, error) {
	parsed, err := s.Parse(ctx, fileName, r)
	if err != nil {
		return ParseResult{}, ValidationResult{}, err
	}
	return parsed, ValidateCSVFormat(parsed.Headers, parsed.Data, template), nil
}

// Import parses and validates one file under the import limiter and
// records the outcome in history. Data-quality problems are reported in
// the returned ImportReport; only unreadable input, a full limiter or a
// cancelled context produce an error.
func (s *Service) Import(ctx context.Context, req ImportRequest) (*ImportReport, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if err := s.limiter.Acquire(ctx); err != nil {
		return nil, err
	}
	defer s.limiter.Release()

	start := s.now()
	logger := logging.FromContext(ctx).With("template", req.Template, "file", req.FileName)
	if ip := ClientIPFromContext(ctx); ip != "" {
		logger = logger.With("ip", ip, "user_agent", UserAgentFromContext(ctx))
	}

	parsed, validation, err := s.Validate(ctx, req.Template, req.FileName, req.Reader)
	if err != nil {
		logger.Warn("import rejected", "error", err)
		return nil, err
	}

	report := &ImportReport{
		Parse:      parsed,
		Validation: validation,
	}

	status := importStatus(parsed, validation)
	if status == StatusValid && IsUserRole(req.Template) {
		report.Users = TransformCSVToUserData(parsed.Data, req.Template)
	}

	report.Entry = ImportEntry{
		ID:        uuid.New().String(),
		Template:  req.Template,
		FileName:  req.FileName,
		Status:    status,
		Rows:      len(parsed.Data),
		Errors:    len(parsed.Errors) + len(validation.Errors),
		Warnings:  len(validation.Warnings),
		Duration:  s.now().Sub(start),
		CreatedAt: start.UTC(),
	}

	if err := s.history.Record(ctx, report.Entry); err != nil {
		logger.Error("failed to record import history", "import_id", report.Entry.ID, "error", err)
	}

	logger.Info("import processed",
		"import_id", report.Entry.ID,
		"status", status,
		"rows", report.Entry.Rows,
		"errors", report.Entry.Errors,
		"warnings", report.Entry.Warnings,
	)

	return report, nil
}

// importStatus classifies a processed file. A file with no usable data
// rows is rejected; any parse or validation error makes it invalid.
func importStatus(parsed ParseResult, validation ValidationResult) ImportStatus {
	switch {
	case len(parsed.Data) == 0:
		return StatusRejected
	case len(parsed.Errors) > 0 || !validation.Valid:
		return StatusInvalid
	default:
		return StatusValid
	}
}

// Export renders records as CSV under the given headers.
func (s *Service) Export(records []Record, headers []string) string {
	return GenerateCSV(records, headers)
}

// ExportUsers flattens API users of one role into CSV. The headers are
// the role template's columns.
func (s *Service) ExportUsers(users []User, role string) string {
	records, headers := TransformUserDataToCSV(users, role)
	return GenerateCSV(records, headers)
}

// History lists recent imports, newest first.
func (s *Service) History(ctx context.Context, template string, limit int) ([]ImportEntry, error) {
	entries, err := s.history.List(ctx, template, limit)
	if err != nil {
		return nil, fmt.Errorf("import history: %w", err)
	}
	return entries, nil
}

// LimiterStatus reports the import limiter for health checks.
func (s *Service) LimiterStatus() ImportLimiterStatus {
	return s.limiter.Status()
}

// Drain waits for in-flight imports to finish or ctx to end.
func (s *Service) Drain(ctx context.Context) error {
	return s.limiter.WaitForDrain(ctx)
}
