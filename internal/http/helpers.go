package http

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"spendlog/internal/core"
)

// parseFilterSpec builds a filter from the q/category/from/to parameters.
// Anything malformed degrades to "no constraint" rather than erroring: the
// filter panel is free text and should never block the page.
func parseFilterSpec(values url.Values) core.FilterSpec {
	spec := core.FilterSpec{
		Search: sanitizeInput(values.Get("q")),
	}

	if raw := sanitizeInput(values.Get("category")); raw != "" && !strings.EqualFold(raw, "All") {
		if c, ok := core.ParseCategory(raw); ok {
			spec.Category = c
		}
	}

	if from := core.Date(sanitizeInput(values.Get("from"))); from.Validate() == nil {
		spec.From = from
	}
	if to := core.Date(sanitizeInput(values.Get("to"))); to.Validate() == nil {
		spec.To = to
	}

	return spec
}

// draftFromForm maps submitted form fields onto a draft. Validation
// happens in the mutator, not here.
func draftFromForm(values url.Values) core.Draft {
	category, _ := core.ParseCategory(values.Get("category"))
	return core.Draft{
		Description: sanitizeInput(values.Get("description")),
		Amount:      strings.TrimSpace(values.Get("amount")),
		Category:    category,
		Date:        core.Date(strings.TrimSpace(values.Get("date"))),
	}
}

// formatAmount renders cents as a dollar string (e.g., "$12.34").
func formatAmount(m core.Money) string {
	return "$" + m.Format()
}

// sanitizeInput removes control characters and trims whitespace.
func sanitizeInput(s string) string {
	s = strings.TrimSpace(s)
	return strings.Map(func(r rune) rune {
		if r < 32 && r != 9 && r != 10 && r != 13 {
			return -1
		}
		return r
	}, s)
}

// generateRequestID creates a unique request ID for tracing.
func generateRequestID() string {
	bytes := make([]byte, 8)
	if _, err := rand.Read(bytes); err != nil {
		return fmt.Sprintf("req_%d", time.Now().UnixNano())
	}
	return "req_" + hex.EncodeToString(bytes)
}

// clientAddr extracts the client IP, considering proxies.
func clientAddr(r *http.Request) string {
	if ip := r.Header.Get("X-Forwarded-For"); ip != "" {
		return ip
	}
	if ip := r.Header.Get("X-Real-IP"); ip != "" {
		return ip
	}
	return r.RemoteAddr
}
