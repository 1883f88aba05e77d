package http

import (
	"bytes"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"spendlog/internal/core"
	"spendlog/internal/ledger"
)

type (
	noticeView struct {
		Kind    string
		Message string
	}

	expenseRow struct {
		ID          string
		Date        string
		Description string
		Amount      string
		AmountRaw   string
		Category    string
	}
)

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if s.templates == nil {
		slog.ErrorContext(r.Context(), "Templates not loaded", "url", r.URL.Path)
		http.Error(w, "templates not loaded", http.StatusInternalServerError)
		return
	}

	data := struct {
		Categories  []core.Category
		Today       core.Date
		Notice      *noticeView
		NoticeTTLMs int64
	}{
		Categories:  core.Categories(),
		Today:       core.NewDate(time.Now()),
		NoticeTTLMs: s.notices.TTL().Milliseconds(),
	}
	if n, ok := s.notices.Current(); ok {
		data.Notice = &noticeView{Kind: string(n.Kind), Message: n.Message}
	}

	if err := s.templates.ExecuteTemplate(w, "index.html", data); err != nil {
		slog.ErrorContext(r.Context(), "Index template execution failed", "error", err, "template", "index.html")
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (s *Server) handleCreateExpense(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		MethodNotAllowedError("POST").Write(w)
		return
	}
	if err := r.ParseForm(); err != nil {
		slog.ErrorContext(r.Context(), "Parse form error", "error", err, "method", r.Method, "url", r.URL.Path)
		BadRequestError("Invalid request format").Write(w)
		return
	}

	draft := draftFromForm(r.Form)
	rec, err := s.mutator.Create(r.Context(), draft)
	if err != nil {
		s.writeMutationError(w, r, err)
		return
	}

	NewHTMXResponse().
		TriggerFormReset().
		TriggerLedgerChanged().
		TriggerNotification("success", fmt.Sprintf("Added %s (%s)", rec.Description, formatAmount(rec.Amount)), s.noticeDurationMs()).
		Write(w)
}

func (s *Server) handleUpdateExpense(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		MethodNotAllowedError("POST").Write(w)
		return
	}
	if err := r.ParseForm(); err != nil {
		slog.ErrorContext(r.Context(), "Parse form error", "error", err, "method", r.Method, "url", r.URL.Path)
		BadRequestError("Invalid request format").Write(w)
		return
	}

	id := sanitizeInput(r.Form.Get("id"))
	if id == "" {
		BadRequestError("Missing expense id").Write(w)
		return
	}

	if err := s.mutator.Update(r.Context(), id, draftFromForm(r.Form)); err != nil {
		s.writeMutationError(w, r, err)
		return
	}

	NewHTMXResponse().
		TriggerLedgerChanged().
		TriggerNotification("success", "Expense updated", s.noticeDurationMs()).
		Write(w)
}

func (s *Server) handleDeleteExpense(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost && r.Method != http.MethodDelete {
		MethodNotAllowedError("DELETE, POST").Write(w)
		return
	}
	if err := r.ParseForm(); err != nil {
		slog.ErrorContext(r.Context(), "Parse form error", "error", err, "method", r.Method, "url", r.URL.Path)
		BadRequestError("Invalid request format").Write(w)
		return
	}

	id := sanitizeInput(r.Form.Get("id"))
	if id == "" {
		BadRequestError("Missing expense id").Write(w)
		return
	}

	if err := s.mutator.Delete(r.Context(), id); err != nil {
		slog.ErrorContext(r.Context(), "Failed to delete expense", "error", err, "id", id)
		InternalServerError("Error deleting expense").Write(w)
		return
	}

	NewHTMXResponse().
		TriggerLedgerChanged().
		TriggerNotification("success", "Expense deleted", s.noticeDurationMs()).
		Write(w)
}

// handleExpenseTable renders the filtered, sorted expense table partial.
func (s *Server) handleExpenseTable(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		MethodNotAllowedError("GET").Write(w)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	spec := parseFilterSpec(r.URL.Query())
	key := s.partialKey("table", spec)
	if html, ok := s.partials.Get(key); ok {
		_, _ = w.Write([]byte(html))
		return
	}

	filtered := core.Filtered(s.store.Snapshot(), spec)
	rows := make([]expenseRow, len(filtered))
	for i, rec := range filtered {
		rows[i] = expenseRow{
			ID:          rec.ID,
			Date:        string(rec.Date),
			Description: rec.Description,
			Amount:      formatAmount(rec.Amount),
			AmountRaw:   rec.Amount.Format(),
			Category:    string(rec.Category),
		}
	}

	data := struct {
		Items      []expenseRow
		Count      int
		Categories []core.Category
		ExportURL  template.URL
	}{
		Items:      rows,
		Count:      len(rows),
		Categories: core.Categories(),
		ExportURL:  template.URL("/export?" + exportQuery(spec)),
	}

	html, err := s.renderPartial(r, "expense_table.html", data)
	if err != nil {
		_, _ = w.Write([]byte(`<div class="expenses"><div class="row placeholder">Error rendering expenses</div></div>`))
		return
	}
	s.partials.Set(key, html)
	_, _ = w.Write([]byte(html))
}

// writeMutationError maps engine errors to responses: validation failures
// become 422 with the specific message, anything else a 500.
func (s *Server) writeMutationError(w http.ResponseWriter, r *http.Request, err error) {
	if notice, ok := s.notices.Current(); ok && notice.Kind == ledger.NoticeError {
		UnprocessableEntityError(notice.Message).
			TriggerNotification("error", notice.Message, s.noticeDurationMs()).
			Write(w)
		return
	}
	slog.ErrorContext(r.Context(), "Expense mutation failed", "error", err)
	InternalServerError("Error saving expense").Write(w)
}

func (s *Server) noticeDurationMs() int {
	return int(s.notices.TTL().Milliseconds())
}

func (s *Server) partialKey(kind string, spec core.FilterSpec) string {
	return fmt.Sprintf("%s|%d|%s|%s|%s|%s",
		kind, s.store.Revision(), spec.Search, spec.Category, spec.From, spec.To)
}

// renderPartial executes a template to a string so the result can be
// cached as well as written.
func (s *Server) renderPartial(r *http.Request, name string, data interface{}) (string, error) {
	if s.templates == nil {
		return "", fmt.Errorf("templates not loaded")
	}
	var buf bytes.Buffer
	if err := s.templates.ExecuteTemplate(&buf, name, data); err != nil {
		slog.ErrorContext(r.Context(), "Template execution error", "error", err, "template", name)
		return "", err
	}
	return buf.String(), nil
}

func exportQuery(spec core.FilterSpec) string {
	q := url.Values{}
	if spec.Search != "" {
		q.Set("q", spec.Search)
	}
	if spec.Category != "" {
		q.Set("category", string(spec.Category))
	}
	if !spec.From.IsZero() {
		q.Set("from", string(spec.From))
	}
	if !spec.To.IsZero() {
		q.Set("to", string(spec.To))
	}
	return q.Encode()
}
