package export

import (
	"bytes"
	"errors"
	"testing"

	"spendlog/internal/core"
)

func TestRecords(t *testing.T) {
	records := []core.Record{
		{Description: "Bus", Amount: core.Money{Cents: 275}, Category: core.CategoryTransportation, Date: "2024-01-06"},
		{Description: "Coffee", Amount: core.Money{Cents: 450}, Category: core.CategoryFood, Date: "2024-01-05"},
	}
	want := "Description,Amount,Category,Date\n" +
		"\"Bus\",\"2.75\",\"Transportation\",\"2024-01-06\"\n" +
		"\"Coffee\",\"4.50\",\"Food\",\"2024-01-05\""
	got, err := Records(records)
	if err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if got != want {
		t.Fatalf("expected:\n%s\ngot:\n%s", want, got)
	}
}

func TestRecordsQuoting(t *testing.T) {
	records := []core.Record{
		{Description: `Say "cheese", please`, Amount: core.Money{Cents: 100}, Category: core.CategoryOther, Date: "2024-01-01"},
	}
	got, err := Records(records)
	if err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	want := "Description,Amount,Category,Date\n" +
		`"Say ""cheese"", please","1.00","Other","2024-01-01"`
	if got != want {
		t.Fatalf("expected:\n%s\ngot:\n%s", want, got)
	}
}

func TestRecordsEmpty(t *testing.T) {
	if _, err := Records(nil); !errors.Is(err, ErrNoRecords) {
		t.Fatalf("expected ErrNoRecords, got %v", err)
	}
}

func TestWrite(t *testing.T) {
	records := []core.Record{
		{Description: "Bus", Amount: core.Money{Cents: 275}, Category: core.CategoryTransportation, Date: "2024-01-06"},
	}
	var buf bytes.Buffer
	if err := Write(&buf, records); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if buf.Len() == 0 {
		t.Fatalf("expected output")
	}
	if buf.Bytes()[buf.Len()-1] == '\n' {
		t.Fatalf("output must not end with a newline")
	}

	if err := Write(&buf, nil); !errors.Is(err, ErrNoRecords) {
		t.Fatalf("expected ErrNoRecords, got %v", err)
	}
}
