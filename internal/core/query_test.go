package core

import "testing"

func sampleRecords() []Record {
	// Collection order is newest-created-first, matching how the mutator
	// prepends entries.
	return []Record{
		{ID: "3", Description: "Bus ticket", Amount: Money{Cents: 275}, Category: CategoryTransportation, Date: "2024-01-06"},
		{ID: "2", Description: "Coffee", Amount: Money{Cents: 450}, Category: CategoryFood, Date: "2024-01-05"},
		{ID: "1", Description: "Groceries", Amount: Money{Cents: 3200}, Category: CategoryFood, Date: "2023-12-28"},
	}
}

func TestFilterSpecMatches(t *testing.T) {
	r := Record{Description: "Morning Coffee", Amount: Money{Cents: 450}, Category: CategoryFood, Date: "2024-01-05"}
	cases := []struct {
		name string
		spec FilterSpec
		want bool
	}{
		{"empty spec", FilterSpec{}, true},
		{"search hit", FilterSpec{Search: "coffee"}, true},
		{"search case-insensitive", FilterSpec{Search: "MORNING"}, true},
		{"search miss", FilterSpec{Search: "tea"}, false},
		{"category hit", FilterSpec{Category: CategoryFood}, true},
		{"category miss", FilterSpec{Category: CategoryBills}, false},
		{"from inclusive", FilterSpec{From: "2024-01-05"}, true},
		{"from excludes", FilterSpec{From: "2024-01-06"}, false},
		{"to inclusive", FilterSpec{To: "2024-01-05"}, true},
		{"to excludes", FilterSpec{To: "2024-01-04"}, false},
		{"all constraints", FilterSpec{Search: "coffee", Category: CategoryFood, From: "2024-01-01", To: "2024-01-31"}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.spec.Matches(r); got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestFilteredOrdersNewestFirst(t *testing.T) {
	records := sampleRecords()
	got := Filtered(records, FilterSpec{})
	if len(got) != 3 {
		t.Fatalf("expected 3 records, got %d", len(got))
	}
	if got[0].ID != "3" || got[1].ID != "2" || got[2].ID != "1" {
		t.Fatalf("expected order 3,2,1; got %s,%s,%s", got[0].ID, got[1].ID, got[2].ID)
	}
}

func TestFilteredStableOnSameDay(t *testing.T) {
	records := []Record{
		{ID: "b", Description: "Later entry", Date: "2024-01-05"},
		{ID: "a", Description: "Earlier entry", Date: "2024-01-05"},
	}
	got := Filtered(records, FilterSpec{})
	if got[0].ID != "b" || got[1].ID != "a" {
		t.Fatalf("same-day entries must keep collection order, got %s,%s", got[0].ID, got[1].ID)
	}
}

func TestFilteredDoesNotModifyInput(t *testing.T) {
	records := []Record{
		{ID: "1", Date: "2024-01-01"},
		{ID: "2", Date: "2024-01-02"},
	}
	Filtered(records, FilterSpec{})
	if records[0].ID != "1" || records[1].ID != "2" {
		t.Fatalf("input slice was reordered")
	}
}

func TestTotalsByCategory(t *testing.T) {
	totals := TotalsByCategory(sampleRecords())
	if len(totals) != len(Categories()) {
		t.Fatalf("expected one entry per category, got %d", len(totals))
	}
	byCat := make(map[Category]int64)
	var sum int64
	for _, ct := range totals {
		byCat[ct.Category] = ct.Total.Cents
		sum += ct.Total.Cents
	}
	if byCat[CategoryFood] != 3650 {
		t.Fatalf("expected Food 3650, got %d", byCat[CategoryFood])
	}
	if byCat[CategoryTransportation] != 275 {
		t.Fatalf("expected Transportation 275, got %d", byCat[CategoryTransportation])
	}
	if byCat[CategoryBills] != 0 {
		t.Fatalf("expected untouched category to be zero, got %d", byCat[CategoryBills])
	}
	if total := TotalSpent(sampleRecords()); total.Cents != sum {
		t.Fatalf("category totals sum %d != total spent %d", sum, total.Cents)
	}
}

func TestTotalSpent(t *testing.T) {
	records := []Record{
		{Amount: Money{Cents: 275}, Category: CategoryTransportation, Date: "2024-01-06"},
		{Amount: Money{Cents: 450}, Category: CategoryFood, Date: "2024-01-05"},
	}
	if got := TotalSpent(records); got.Format() != "7.25" {
		t.Fatalf("expected 7.25, got %s", got.Format())
	}
	if got := TotalSpent(nil); got.Cents != 0 {
		t.Fatalf("expected zero for empty collection, got %d", got.Cents)
	}
}

func TestMonthlySpent(t *testing.T) {
	records := sampleRecords()
	if got := MonthlySpent(records, "2024-01"); got.Cents != 725 {
		t.Fatalf("expected 725 for 2024-01, got %d", got.Cents)
	}
	if got := MonthlySpent(records, "2023-12"); got.Cents != 3200 {
		t.Fatalf("expected 3200 for 2023-12, got %d", got.Cents)
	}
	if got := MonthlySpent(records, "2022-07"); got.Cents != 0 {
		t.Fatalf("expected 0 for empty month, got %d", got.Cents)
	}
}

func TestTopCategory(t *testing.T) {
	top := TopCategory(TotalsByCategory(sampleRecords()))
	if top.Category != CategoryFood || top.Total.Cents != 3650 {
		t.Fatalf("expected Food 3650, got %s %d", top.Category, top.Total.Cents)
	}

	// All-zero ledger still yields the first category deterministically.
	top = TopCategory(TotalsByCategory(nil))
	if top.Category != CategoryFood || top.Total.Cents != 0 {
		t.Fatalf("expected first category on empty ledger, got %s %d", top.Category, top.Total.Cents)
	}

	// Ties resolve to the earlier category in enumeration order.
	tied := []Record{
		{Amount: Money{Cents: 100}, Category: CategoryBills, Date: "2024-01-01"},
		{Amount: Money{Cents: 100}, Category: CategoryShopping, Date: "2024-01-02"},
	}
	top = TopCategory(TotalsByCategory(tied))
	if top.Category != CategoryShopping {
		t.Fatalf("expected Shopping to win the tie, got %s", top.Category)
	}

	if top := TopCategory(nil); top.Category != "" || top.Total.Cents != 0 {
		t.Fatalf("expected zero value for nil totals")
	}
}
