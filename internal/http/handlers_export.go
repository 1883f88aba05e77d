package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"spendlog/internal/core"
	"spendlog/internal/export"
)

// handleExport streams the current filtered view as a CSV download. An
// empty result yields 204: the UI suppresses the download instead of
// handing the user an empty file.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		MethodNotAllowedError("GET").Write(w)
		return
	}

	spec := parseFilterSpec(r.URL.Query())
	filtered := core.Filtered(s.store.Snapshot(), spec)

	text, err := export.Records(filtered)
	if errors.Is(err, export.ErrNoRecords) {
		slog.InfoContext(r.Context(), "Export skipped, nothing to export",
			"search", spec.Search, "category", spec.Category)
		w.WriteHeader(http.StatusNoContent)
		return
	}
	if err != nil {
		slog.ErrorContext(r.Context(), "Export failed", "error", err)
		InternalServerError("Error exporting expenses").Write(w)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.Filename))
	_, _ = w.Write([]byte(text))

	slog.InfoContext(r.Context(), "Expenses exported", "records", len(filtered))
}
