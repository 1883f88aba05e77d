package http

import (
	"net/url"
	"testing"

	"spendlog/internal/core"
)

func TestParseFilterSpec(t *testing.T) {
	cases := []struct {
		name  string
		query string
		want  core.FilterSpec
	}{
		{"empty", "", core.FilterSpec{}},
		{"search", "q=coffee", core.FilterSpec{Search: "coffee"}},
		{"category", "category=Food", core.FilterSpec{Category: core.CategoryFood}},
		{"category lowercased", "category=food", core.FilterSpec{Category: core.CategoryFood}},
		{"category All means no constraint", "category=All", core.FilterSpec{}},
		{"unknown category ignored", "category=Groceries", core.FilterSpec{}},
		{"date range", "from=2024-01-01&to=2024-01-31", core.FilterSpec{From: "2024-01-01", To: "2024-01-31"}},
		{"malformed from ignored", "from=garbage", core.FilterSpec{}},
		{"malformed to ignored", "to=01/05/2024", core.FilterSpec{}},
		{"everything", "q=bus&category=Transportation&from=2024-01-01&to=2024-01-31",
			core.FilterSpec{Search: "bus", Category: core.CategoryTransportation, From: "2024-01-01", To: "2024-01-31"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			values, err := url.ParseQuery(tc.query)
			if err != nil {
				t.Fatalf("parse query: %v", err)
			}
			if got := parseFilterSpec(values); got != tc.want {
				t.Fatalf("parseFilterSpec(%q) = %+v, want %+v", tc.query, got, tc.want)
			}
		})
	}
}

func TestDraftFromForm(t *testing.T) {
	form := url.Values{
		"description": {"  Coffee  "},
		"amount":      {" 4.50 "},
		"category":    {"food"},
		"date":        {"2024-01-05"},
	}
	draft := draftFromForm(form)
	if draft.Description != "Coffee" {
		t.Fatalf("description = %q", draft.Description)
	}
	if draft.Amount != "4.50" {
		t.Fatalf("amount = %q", draft.Amount)
	}
	if draft.Category != core.CategoryFood {
		t.Fatalf("category = %q", draft.Category)
	}
	if draft.Date != "2024-01-05" {
		t.Fatalf("date = %q", draft.Date)
	}
}

func TestSanitizeInput(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"  hello  ", "hello"},
		{"a\x00b", "ab"},
		{"line1\nline2", "line1\nline2"},
		{"", ""},
	}
	for i, tc := range cases {
		if got := sanitizeInput(tc.in); got != tc.want {
			t.Fatalf("case %d: sanitizeInput(%q) = %q, want %q", i, tc.in, got, tc.want)
		}
	}
}

func TestFormatAmount(t *testing.T) {
	if got := formatAmount(core.Money{Cents: 450}); got != "$4.50" {
		t.Fatalf("formatAmount = %q, want $4.50", got)
	}
}

func TestGenerateRequestID(t *testing.T) {
	a, b := generateRequestID(), generateRequestID()
	if a == b {
		t.Fatalf("request ids should be unique")
	}
	if a[:4] != "req_" {
		t.Fatalf("unexpected prefix: %s", a)
	}
}
