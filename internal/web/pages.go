package web

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/regression1607/meridian-frontend-sub000/internal/core"
)

// dashboardData is everything the dashboard page shows.
type dashboardData struct {
	Templates []core.Template
	History   []core.ImportEntry
	Limiter   core.ImportLimiterStatus
}

// Dashboard renders the landing page: downloadable templates, limiter
// load and the most recent imports.
func Dashboard(data dashboardData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		p := &printer{w: w}

		p.printf(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"><title>CSV Import</title></head><body>`)
		p.printf(`<main><h1>CSV Import</h1>`)
		p.printf(`<p id="limiter">Imports running: %d of %d</p>`, data.Limiter.Active, data.Limiter.MaxConcurrent)

		p.printf(`<section><h2>Templates</h2><table><thead><tr><th>Name</th><th>Columns</th><th></th></tr></thead><tbody>`)
		for _, tpl := range data.Templates {
			name := templ.EscapeString(tpl.Name)
			p.printf(`<tr><td>%s</td><td>%d</td><td><a href="/api/templates/%s/download">Download</a></td></tr>`,
				name, len(tpl.Headers), name)
		}
		p.printf(`</tbody></table></section>`)

		p.printf(`<section><h2>Recent imports</h2>`)
		if len(data.History) == 0 {
			p.printf(`<p>No imports yet.</p>`)
		} else {
			p.printf(`<table><thead><tr><th>When</th><th>Template</th><th>File</th><th>Status</th><th>Rows</th><th>Errors</th><th>Warnings</th></tr></thead><tbody>`)
			for _, e := range data.History {
				p.printf(`<tr><td>%s</td><td>%s</td><td>%s</td><td class="status-%s">%s</td><td>%d</td><td>%d</td><td>%d</td></tr>`,
					e.CreatedAt.Format("2006-01-02 15:04:05"),
					templ.EscapeString(e.Template),
					templ.EscapeString(e.FileName),
					e.Status, e.Status,
					e.Rows, e.Errors, e.Warnings)
			}
			p.printf(`</tbody></table>`)
		}
		p.printf(`</section></main></body></html>`)

		return p.err
	})
}

// ErrorAlert renders an HTMX error fragment.
func ErrorAlert(msg core.UserMessage) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		p := &printer{w: w}
		p.printf(`<div class="alert alert-error" role="alert"><p>%s</p>`, templ.EscapeString(msg.Message))
		if msg.Action != "" {
			p.printf(`<p class="alert-action">%s</p>`, templ.EscapeString(msg.Action))
		}
		p.printf(`<p class="alert-code">Code: %s</p></div>`, templ.EscapeString(msg.Code))
		return p.err
	})
}

// printer stops writing after the first error.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}
