package http

import (
	"net/http"
	"time"

	"spendlog/internal/core"
)

type categoryRow struct {
	Name   string
	Amount string
	Width  int
}

// handleSummary renders the spending summary partial: total spend,
// this-month spend, top category, and per-category bars. Summaries are
// always over the unfiltered collection.
func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		MethodNotAllowedError("GET").Write(w)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	key := s.partialKey("summary", core.FilterSpec{})
	if html, ok := s.partials.Get(key); ok {
		_, _ = w.Write([]byte(html))
		return
	}

	records := s.store.Snapshot()
	totals := core.TotalsByCategory(records)
	top := core.TopCategory(totals)
	now := time.Now()

	var maxCents int64
	for _, t := range totals {
		if t.Total.Cents > maxCents {
			maxCents = t.Total.Cents
		}
	}

	rows := make([]categoryRow, len(totals))
	for i, t := range totals {
		width := 0
		if maxCents > 0 && t.Total.Cents > 0 {
			width = int((t.Total.Cents*100 + maxCents/2) / maxCents)
			if width > 0 && width < 2 {
				width = 2
			}
			if width > 100 {
				width = 100
			}
		}
		rows[i] = categoryRow{Name: string(t.Category), Amount: formatAmount(t.Total), Width: width}
	}

	data := struct {
		Total       string
		MonthLabel  string
		MonthTotal  string
		TopCategory string
		TopAmount   string
		Rows        []categoryRow
	}{
		Total:       formatAmount(core.TotalSpent(records)),
		MonthLabel:  now.Format("January 2006"),
		MonthTotal:  formatAmount(core.MonthlySpent(records, now.Format("2006-01"))),
		TopCategory: string(top.Category),
		TopAmount:   formatAmount(top.Total),
		Rows:        rows,
	}

	html, err := s.renderPartial(r, "summary.html", data)
	if err != nil {
		_, _ = w.Write([]byte(`<div class="summary"><div class="placeholder">Error rendering summary</div></div>`))
		return
	}
	s.partials.Set(key, html)
	_, _ = w.Write([]byte(html))
}
