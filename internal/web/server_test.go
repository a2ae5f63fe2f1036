package web

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/regression1607/meridian-frontend-sub000/internal/config"
	"github.com/regression1607/meridian-frontend-sub000/internal/core"
	_ "github.com/regression1607/meridian-frontend-sub000/internal/core/tables"
)

func newTestServer(t *testing.T, mutate func(*config.Config)) *Server {
	t.Helper()

	cfg, err := config.LoadFrom(func(string) (string, bool) { return "", false })
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	cfg.Rate.Enabled = false
	if mutate != nil {
		mutate(cfg)
	}

	svc := core.NewService(nil, core.ServiceConfig{
		MaxFileSize:   cfg.Import.MaxFileSize,
		MaxConcurrent: cfg.Import.MaxConcurrent,
		MaxWait:       cfg.Import.MaxWaitTime,
	})
	srv := NewServer(svc, cfg)
	t.Cleanup(func() {
		for _, rl := range srv.limiters {
			rl.stop()
		}
	})
	return srv
}

func serve(srv *Server, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)
	return rec
}

func uploadRequest(t *testing.T, path, fileName, content string) *http.Request {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile("file", fileName)
	if err != nil {
		t.Fatalf("CreateFormFile: %v", err)
	}
	if _, err := io.WriteString(fw, content); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close multipart: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, path, &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func jsonRequest(t *testing.T, path string, v any) *http.Request {
	t.Helper()

	body, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	if err := json.NewDecoder(rec.Body).Decode(&v); err != nil {
		t.Fatalf("decode response: %v\nbody: %s", err, rec.Body.String())
	}
	return v
}

func TestListTemplates(t *testing.T) {
	srv := newTestServer(t, nil)

	rec := serve(srv, httptest.NewRequest(http.MethodGet, "/api/templates", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	got := decodeBody[templatesResponse](t, rec)
	if len(got.Templates) != core.TemplateCount() {
		t.Errorf("got %d templates, want %d", len(got.Templates), core.TemplateCount())
	}
}

func TestGetTemplate(t *testing.T) {
	srv := newTestServer(t, nil)

	t.Run("known", func(t *testing.T) {
		rec := serve(srv, httptest.NewRequest(http.MethodGet, "/api/templates/student", nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
		got := decodeBody[core.Template](t, rec)
		if diff := cmp.Diff(core.UserColumns(core.RoleStudent), got.Headers); diff != "" {
			t.Errorf("headers mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("unknown", func(t *testing.T) {
		rec := serve(srv, httptest.NewRequest(http.MethodGet, "/api/templates/alien", nil))
		if rec.Code != http.StatusNotFound {
			t.Fatalf("status = %d, want 404", rec.Code)
		}
		if got := decodeBody[ErrorResponse](t, rec); got.Code != "TPL001" {
			t.Errorf("code = %q, want TPL001", got.Code)
		}
	})
}

func TestDownloadTemplate(t *testing.T) {
	srv := newTestServer(t, nil)

	rec := serve(srv, httptest.NewRequest(http.MethodGet, "/api/templates/attendance/download", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if got := rec.Header().Get("Content-Type"); got != core.CSVContentType {
		t.Errorf("Content-Type = %q, want %q", got, core.CSVContentType)
	}
	wantDisposition := `attachment; filename="attendance_import_template.csv"`
	if got := rec.Header().Get("Content-Disposition"); got != wantDisposition {
		t.Errorf("Content-Disposition = %q, want %q", got, wantDisposition)
	}

	_, wantBody, err := core.TemplateCSV("attendance")
	if err != nil {
		t.Fatalf("TemplateCSV: %v", err)
	}
	if rec.Body.String() != wantBody {
		t.Errorf("body = %q, want %q", rec.Body.String(), wantBody)
	}
}

func TestDownloadTemplate_Unknown(t *testing.T) {
	srv := newTestServer(t, nil)

	rec := serve(srv, httptest.NewRequest(http.MethodGet, "/api/templates/alien/download", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	if got := decodeBody[ErrorResponse](t, rec); got.Code != "TPL001" {
		t.Errorf("code = %q, want TPL001", got.Code)
	}
}

func TestParse(t *testing.T) {
	srv := newTestServer(t, nil)

	rec := serve(srv, uploadRequest(t, "/api/parse", "people.csv", "Name,Email\nAnn,ann@example.com\n"))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	got := decodeBody[core.ParseResult](t, rec)
	want := core.ParseResult{
		Headers: []string{"name", "email"},
		Data:    []core.Row{{"name": "Ann", "email": "ann@example.com"}},
		Errors:  []string{},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ParseResult mismatch (-want +got):\n%s", diff)
	}
}

func TestUploadErrors(t *testing.T) {
	tests := []struct {
		name       string
		maxSize    int64
		req        func(t *testing.T) *http.Request
		wantStatus int
		wantCode   string
	}{
		{
			name: "not a csv",
			req: func(t *testing.T) *http.Request {
				return uploadRequest(t, "/api/parse", "people.xlsx", "a,b\n1,2")
			},
			wantStatus: http.StatusBadRequest,
			wantCode:   "FILE002",
		},
		{
			name: "no file field",
			req: func(t *testing.T) *http.Request {
				var body bytes.Buffer
				mw := multipart.NewWriter(&body)
				_ = mw.WriteField("note", "hello")
				_ = mw.Close()
				req := httptest.NewRequest(http.MethodPost, "/api/parse", &body)
				req.Header.Set("Content-Type", mw.FormDataContentType())
				return req
			},
			wantStatus: http.StatusBadRequest,
			wantCode:   "FILE003",
		},
		{
			name: "not multipart",
			req: func(t *testing.T) *http.Request {
				return httptest.NewRequest(http.MethodPost, "/api/parse", strings.NewReader("a,b"))
			},
			wantStatus: http.StatusBadRequest,
			wantCode:   "FILE004",
		},
		{
			name:    "file too large",
			maxSize: 8,
			req: func(t *testing.T) *http.Request {
				return uploadRequest(t, "/api/parse", "big.csv", "name,email\nAnn,ann@example.com")
			},
			wantStatus: http.StatusRequestEntityTooLarge,
			wantCode:   "FILE001",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestServer(t, func(cfg *config.Config) {
				if tt.maxSize > 0 {
					cfg.Import.MaxFileSize = tt.maxSize
				}
			})

			rec := serve(srv, tt.req(t))
			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d: %s", rec.Code, tt.wantStatus, rec.Body.String())
			}
			if got := decodeBody[ErrorResponse](t, rec); got.Code != tt.wantCode {
				t.Errorf("code = %q, want %q", got.Code, tt.wantCode)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	srv := newTestServer(t, nil)

	t.Run("missing required columns", func(t *testing.T) {
		rec := serve(srv, uploadRequest(t, "/api/validate/student", "s.csv", "firstName,lastName\nAnn,Lee"))
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
		got := decodeBody[validateResponse](t, rec)
		if got.Validation.Valid {
			t.Error("Valid = true, want false")
		}
		if len(got.Validation.Errors) == 0 {
			t.Error("expected validation errors")
		}
	})

	t.Run("unknown template is a soft failure", func(t *testing.T) {
		rec := serve(srv, uploadRequest(t, "/api/validate/alien", "s.csv", "a,b\n1,2"))
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
		got := decodeBody[validateResponse](t, rec)
		if got.Validation.Valid {
			t.Error("Valid = true, want false")
		}
	})
}

func TestImportAndHistory(t *testing.T) {
	srv := newTestServer(t, nil)

	_, content, err := core.TemplateCSV(core.RoleStudent)
	if err != nil {
		t.Fatalf("TemplateCSV: %v", err)
	}

	rec := serve(srv, uploadRequest(t, "/api/import/student", "students.csv", content))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	report := decodeBody[core.ImportReport](t, rec)
	if report.Entry.Status != core.StatusValid {
		t.Errorf("status = %q, want %q (errors: %v)", report.Entry.Status, core.StatusValid, report.Validation.Errors)
	}
	if len(report.Users) != 1 {
		t.Fatalf("got %d users, want 1", len(report.Users))
	}
	if got := report.Users[0].Profile.FirstName; got != "John" {
		t.Errorf("first name = %q, want John", got)
	}

	rec = serve(srv, httptest.NewRequest(http.MethodGet, "/api/history?template=student&limit=5", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("history status = %d, want 200", rec.Code)
	}
	history := decodeBody[historyResponse](t, rec)
	if len(history.Imports) != 1 || history.Imports[0].ID != report.Entry.ID {
		t.Errorf("history = %+v, want the import %s", history.Imports, report.Entry.ID)
	}

	rec = serve(srv, httptest.NewRequest(http.MethodGet, "/api/history?template=teacher", nil))
	if got := decodeBody[historyResponse](t, rec); len(got.Imports) != 0 {
		t.Errorf("teacher history = %d entries, want 0", len(got.Imports))
	}
}

func TestMetrics(t *testing.T) {
	srv := newTestServer(t, nil)

	_, content, _ := core.TemplateCSV(core.RoleStudent)
	serve(srv, uploadRequest(t, "/api/import/student", "students.csv", content))
	serve(srv, uploadRequest(t, "/api/import/student", "students.txt", content))

	rec := serve(srv, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	body := rec.Body.String()
	for _, want := range []string{
		`csv_imports_total{status="valid",template="student"} 1`,
		`csv_import_rows_total{template="student"} 1`,
		`csv_import_failures_total{code="` + core.MapError(core.ErrNotCSV).Code + `"} 1`,
		`csv_imports_active 0`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("metrics missing %q", want)
		}
	}

	t.Run("disabled", func(t *testing.T) {
		srv := newTestServer(t, func(cfg *config.Config) { cfg.Server.MetricsEnabled = false })
		if rec := serve(srv, httptest.NewRequest(http.MethodGet, "/metrics", nil)); rec.Code != http.StatusNotFound {
			t.Errorf("status = %d, want 404", rec.Code)
		}
	})
}

func TestTemplateLabel(t *testing.T) {
	if got := templateLabel(core.RoleStudent); got != core.RoleStudent {
		t.Errorf("templateLabel(student) = %q", got)
	}
	if got := templateLabel("../../etc"); got != "unknown" {
		t.Errorf("templateLabel(unregistered) = %q, want unknown", got)
	}
}

func TestHistory_BadLimit(t *testing.T) {
	srv := newTestServer(t, nil)

	for _, limit := range []string{"abc", "0", "-3"} {
		t.Run(limit, func(t *testing.T) {
			rec := serve(srv, httptest.NewRequest(http.MethodGet, "/api/history?limit="+limit, nil))
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", rec.Code)
			}
			got := decodeBody[ErrorResponse](t, rec)
			if got.Code != "VAL001" {
				t.Errorf("code = %q, want VAL001", got.Code)
			}
			if got.Fields["limit"] == "" {
				t.Errorf("fields = %v, want a limit message", got.Fields)
			}
		})
	}
}

func TestHistoryLimit(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{"", core.DefaultHistoryLimit},
		{"7", 7},
		{"100000", maxHistoryLimit},
	}
	for _, tt := range tests {
		got, err := historyLimit(tt.raw)
		if err != nil {
			t.Fatalf("historyLimit(%q): %v", tt.raw, err)
		}
		if got != tt.want {
			t.Errorf("historyLimit(%q) = %d, want %d", tt.raw, got, tt.want)
		}
	}
}

func TestExport(t *testing.T) {
	srv := newTestServer(t, nil)

	req := jsonRequest(t, "/api/export", map[string]any{
		"filename": "report",
		"headers":  []string{"name", "address.city", "score"},
		"data": []map[string]any{
			{"name": "Ann", "address": map[string]any{"city": "Oslo, NO"}, "score": 42},
			{"name": `Bob "B"`, "score": nil},
		},
	})

	rec := serve(srv, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	if got := rec.Header().Get("Content-Disposition"); got != `attachment; filename="report.csv"` {
		t.Errorf("Content-Disposition = %q", got)
	}

	want := "name,address.city,score\nAnn,\"Oslo, NO\",42\n\"Bob \"\"B\"\"\",,"
	if got := rec.Body.String(); got != want {
		t.Errorf("body = %q, want %q", got, want)
	}
}

func TestExport_InvalidRequest(t *testing.T) {
	srv := newTestServer(t, nil)

	tests := []struct {
		name      string
		body      map[string]any
		wantField string
	}{
		{"missing filename", map[string]any{"headers": []string{"a"}}, "filename"},
		{"filename with slash", map[string]any{"filename": "../x", "headers": []string{"a"}}, "filename"},
		{"no headers", map[string]any{"filename": "x", "headers": []string{}}, "headers"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(srv, jsonRequest(t, "/api/export", tt.body))
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", rec.Code)
			}
			got := decodeBody[ErrorResponse](t, rec)
			if got.Code != "VAL001" {
				t.Errorf("code = %q, want VAL001", got.Code)
			}
			if got.Fields[tt.wantField] == "" {
				t.Errorf("fields = %v, want a %q message", got.Fields, tt.wantField)
			}
		})
	}
}

func TestExport_MalformedJSON(t *testing.T) {
	srv := newTestServer(t, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/export", strings.NewReader("{not json"))
	rec := serve(srv, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if got := decodeBody[ErrorResponse](t, rec); got.Code != "VAL001" {
		t.Errorf("code = %q, want VAL001", got.Code)
	}
}

func TestExportUsers(t *testing.T) {
	srv := newTestServer(t, nil)

	users := []core.User{{
		Email:   "jane@example.com",
		Role:    core.RoleStaff,
		Profile: core.Profile{FirstName: "Jane", LastName: "Roe"},
		StaffData: &core.StaffData{
			EmployeeID:  "EMP9",
			Designation: "Clerk",
		},
	}}

	rec := serve(srv, jsonRequest(t, "/api/export/staff", map[string]any{"users": users}))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	if got := rec.Header().Get("Content-Disposition"); got != `attachment; filename="staff_export.csv"` {
		t.Errorf("Content-Disposition = %q", got)
	}

	parsed := core.ParseCSV(rec.Body.String())
	if len(parsed.Data) != 1 {
		t.Fatalf("exported %d rows, want 1", len(parsed.Data))
	}
	round := core.TransformCSVToUserData(parsed.Data, core.RoleStaff)
	if diff := cmp.Diff(users, round); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestExportUsers_InvalidRole(t *testing.T) {
	srv := newTestServer(t, nil)

	rec := serve(srv, jsonRequest(t, "/api/export/alien", map[string]any{"users": []core.User{}}))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	got := decodeBody[ErrorResponse](t, rec)
	if !strings.Contains(got.Fields["role"], "student") {
		t.Errorf("fields = %v, want a role message", got.Fields)
	}
}

func TestTransform(t *testing.T) {
	srv := newTestServer(t, nil)

	rows := []core.Row{{
		"firstname":   "Sam",
		"lastname":    "Stone",
		"email":       "sam@example.com",
		"employeeid":  "T7",
		"subjects":    "Math; Physics",
		"joiningdate": "2020-08-01",
		"city":        "Leeds",
	}}

	rec := serve(srv, jsonRequest(t, "/api/transform/teacher", map[string]any{"rows": rows}))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	got := decodeBody[transformResponse](t, rec)
	if len(got.Users) != 1 {
		t.Fatalf("got %d users, want 1", len(got.Users))
	}
	u := got.Users[0]
	if u.TeacherData == nil || u.TeacherData.EmployeeID != "T7" {
		t.Fatalf("teacher data = %+v", u.TeacherData)
	}
	if diff := cmp.Diff([]string{"Math", "Physics"}, u.TeacherData.Subjects); diff != "" {
		t.Errorf("subjects mismatch (-want +got):\n%s", diff)
	}
	if u.Profile.Address.City != "Leeds" {
		t.Errorf("city = %q, want Leeds", u.Profile.Address.City)
	}
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t, nil)

	rec := serve(srv, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	got := decodeBody[healthResponse](t, rec)
	if got.Status != "ok" || got.Templates != core.TemplateCount() {
		t.Errorf("health = %+v", got)
	}
	if got.Imports.MaxConcurrent != 5 {
		t.Errorf("max concurrent = %d, want 5", got.Imports.MaxConcurrent)
	}
}

func TestDashboard(t *testing.T) {
	srv := newTestServer(t, nil)

	rec := serve(srv, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("Content-Type = %q, want text/html", ct)
	}
	body := rec.Body.String()
	for _, want := range []string{"/api/templates/student/download", "No imports yet."} {
		if !strings.Contains(body, want) {
			t.Errorf("dashboard missing %q", want)
		}
	}
}

func TestRespondError_HTMX(t *testing.T) {
	srv := newTestServer(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/templates/alien/download", nil)
	req.Header.Set("HX-Request", "true")

	rec := serve(srv, req)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("Content-Type = %q, want text/html", ct)
	}
	if !strings.Contains(rec.Body.String(), "Code: TPL001") {
		t.Errorf("body = %q, want error code", rec.Body.String())
	}
}

func TestSecurityHeaders(t *testing.T) {
	tests := []struct {
		name    string
		csp     bool
		wantCSP string
	}{
		{"csp enabled", true, contentSecurityPolicy},
		{"csp disabled", false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestServer(t, func(cfg *config.Config) { cfg.Security.EnableCSP = tt.csp })

			rec := serve(srv, httptest.NewRequest(http.MethodGet, "/health", nil))
			if got := rec.Header().Get("Content-Security-Policy"); got != tt.wantCSP {
				t.Errorf("CSP = %q, want %q", got, tt.wantCSP)
			}
			if got := rec.Header().Get("X-Content-Type-Options"); got != "nosniff" {
				t.Errorf("X-Content-Type-Options = %q, want nosniff", got)
			}
		})
	}
}

func TestAPIKeyRequired(t *testing.T) {
	srv := newTestServer(t, func(cfg *config.Config) {
		cfg.Security.RequireAPIKey = true
		cfg.Security.APIKeys = []string{"secret"}
	})

	if rec := serve(srv, httptest.NewRequest(http.MethodGet, "/api/templates", nil)); rec.Code != http.StatusUnauthorized {
		t.Errorf("without key status = %d, want 401", rec.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/templates", nil)
	req.Header.Set("X-API-Key", "secret")
	if rec := serve(srv, req); rec.Code != http.StatusOK {
		t.Errorf("with key status = %d, want 200", rec.Code)
	}

	if rec := serve(srv, httptest.NewRequest(http.MethodGet, "/health", nil)); rec.Code != http.StatusOK {
		t.Errorf("health status = %d, want 200", rec.Code)
	}
}

func TestRateLimitMiddleware(t *testing.T) {
	srv := newTestServer(t, func(cfg *config.Config) {
		cfg.Rate.Enabled = true
		cfg.Rate.RequestsPerMinute = 2
	})

	for i := 0; i < 2; i++ {
		if rec := serve(srv, httptest.NewRequest(http.MethodGet, "/api/templates", nil)); rec.Code != http.StatusOK {
			t.Fatalf("request %d status = %d, want 200", i+1, rec.Code)
		}
	}

	rec := serve(srv, httptest.NewRequest(http.MethodGet, "/api/templates", nil))
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("status = %d, want 429", rec.Code)
	}
	if got := rec.Header().Get("Retry-After"); got != "60" {
		t.Errorf("Retry-After = %q, want 60", got)
	}
	if got := decodeBody[ErrorResponse](t, rec); got.Code != "RATE001" {
		t.Errorf("code = %q, want RATE001", got.Code)
	}
}

func TestCORS(t *testing.T) {
	srv := newTestServer(t, func(cfg *config.Config) {
		cfg.Security.AllowedOrigins = []string{"https://app.example.com"}
	})

	req := httptest.NewRequest(http.MethodOptions, "/api/templates", nil)
	req.Header.Set("Origin", "https://app.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)

	rec := serve(srv, req)
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://app.example.com" {
		t.Errorf("Access-Control-Allow-Origin = %q, want the origin", got)
	}

	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	rec = serve(srv, req)
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("Access-Control-Allow-Origin = %q for a foreign origin, want empty", got)
	}
}
