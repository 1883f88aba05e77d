// Package export serializes expense records into delimited text.
//
// The format is fixed: an unquoted header row, then one row per record
// with every field double-quoted and embedded quotes doubled. encoding/csv
// is deliberately not used here because it only quotes fields when forced
// to, while this format quotes unconditionally.
package export

import (
	"errors"
	"io"
	"strings"

	"spendlog/internal/core"
)

// Filename is the suggested name for the downloaded artifact.
const Filename = "expenses.csv"

const header = "Description,Amount,Category,Date"

// ErrNoRecords signals an empty input list. It is a UX guard, not a hard
// failure: callers should suppress the export action instead of producing
// an empty file.
var ErrNoRecords = errors.New("no records to export")

// Records renders the given records, in the given order, as CSV text.
// Callers typically pass the query engine's filtered and sorted output.
func Records(records []core.Record) (string, error) {
	if len(records) == 0 {
		return "", ErrNoRecords
	}
	var b strings.Builder
	b.WriteString(header)
	for _, r := range records {
		b.WriteByte('\n')
		b.WriteString(quote(r.Description))
		b.WriteByte(',')
		b.WriteString(quote(r.Amount.Format()))
		b.WriteByte(',')
		b.WriteString(quote(string(r.Category)))
		b.WriteByte(',')
		b.WriteString(quote(string(r.Date)))
	}
	return b.String(), nil
}

// Write streams the rendered CSV to w.
func Write(w io.Writer, records []core.Record) error {
	text, err := Records(records)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, text)
	return err
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
