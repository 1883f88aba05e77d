package ledger

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"spendlog/internal/core"
)

// Mutator validates and applies writes against the store. Every applied
// write persists the full collection and posts a transient notice; every
// validation failure posts the specific error message and leaves the
// collection untouched.
type Mutator struct {
	store *Store
	notes *Notices
	now   func() time.Time
	newID func() string
}

func NewMutator(store *Store, notes *Notices) *Mutator {
	return &Mutator{
		store: store,
		notes: notes,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// Create validates the draft, assigns a fresh id and creation timestamp,
// and prepends the record so that among equal dates the newest entry sorts
// first.
func (m *Mutator) Create(ctx context.Context, draft core.Draft) (core.Record, error) {
	if err := draft.Validate(); err != nil {
		m.notes.Error(err.Error())
		return core.Record{}, err
	}

	cents, err := core.ParseDecimalToCents(draft.Amount)
	if err != nil {
		m.notes.Error(err.Error())
		return core.Record{}, err
	}

	rec := core.Record{
		ID:          m.newID(),
		Description: strings.TrimSpace(draft.Description),
		Amount:      core.Money{Cents: cents},
		Category:    normalizeCategory(draft.Category),
		Date:        draft.Date,
		CreatedAt:   m.now(),
	}

	records := append([]core.Record{rec}, m.store.Snapshot()...)
	if err := m.store.Replace(ctx, records); err != nil {
		return core.Record{}, fmt.Errorf("create expense: %w", err)
	}

	slog.InfoContext(ctx, "Expense created",
		"id", rec.ID,
		"description", rec.Description,
		"amount_cents", rec.Amount.Cents,
		"category", rec.Category,
		"date", rec.Date)
	m.notes.Success("Expense added")
	return rec, nil
}

// Update replaces the mutable fields of the record matching id, keeping id
// and createdAt. An unknown id is a silent no-op: ids are never
// user-supplied, so a miss means the state is already consistent.
func (m *Mutator) Update(ctx context.Context, id string, draft core.Draft) error {
	if err := draft.Validate(); err != nil {
		m.notes.Error(err.Error())
		return err
	}

	cents, err := core.ParseDecimalToCents(draft.Amount)
	if err != nil {
		m.notes.Error(err.Error())
		return err
	}

	records := m.store.Snapshot()
	idx := indexOf(records, id)
	if idx < 0 {
		slog.DebugContext(ctx, "Update for unknown expense id ignored", "id", id)
		return nil
	}

	rec := records[idx]
	rec.Description = strings.TrimSpace(draft.Description)
	rec.Amount = core.Money{Cents: cents}
	rec.Category = normalizeCategory(draft.Category)
	rec.Date = draft.Date
	records[idx] = rec

	if err := m.store.Replace(ctx, records); err != nil {
		return fmt.Errorf("update expense %s: %w", id, err)
	}

	slog.InfoContext(ctx, "Expense updated", "id", id, "amount_cents", rec.Amount.Cents)
	m.notes.Success("Expense updated")
	return nil
}

// Delete removes the record matching id. Deleting an absent id is a silent
// no-op, so the operation is idempotent.
func (m *Mutator) Delete(ctx context.Context, id string) error {
	records := m.store.Snapshot()
	idx := indexOf(records, id)
	if idx < 0 {
		slog.DebugContext(ctx, "Delete for unknown expense id ignored", "id", id)
		return nil
	}

	records = append(records[:idx], records[idx+1:]...)
	if err := m.store.Replace(ctx, records); err != nil {
		return fmt.Errorf("delete expense %s: %w", id, err)
	}

	slog.InfoContext(ctx, "Expense deleted", "id", id)
	m.notes.Success("Expense deleted")
	return nil
}

func indexOf(records []core.Record, id string) int {
	for i, r := range records {
		if r.ID == id {
			return i
		}
	}
	return -1
}

// normalizeCategory keeps the closed-enumeration invariant even if a
// caller hands in free text.
func normalizeCategory(c core.Category) core.Category {
	if c.Valid() {
		return c
	}
	return core.CategoryOther
}
