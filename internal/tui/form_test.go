package tui

import (
	"errors"
	"testing"

	"github.com/theirongolddev/outgo/internal/model"
)

func TestValidateDate(t *testing.T) {
	if err := validateDate("2024-03-15"); err != nil {
		t.Errorf("valid date rejected: %v", err)
	}
	if err := validateDate("15/03/2024"); !errors.Is(err, model.ErrInvalidDate) {
		t.Errorf("want ErrInvalidDate, got %v", err)
	}
	if err := validateDate(""); !errors.Is(err, model.ErrInvalidDate) {
		t.Errorf("want ErrInvalidDate for empty input, got %v", err)
	}
}

func TestValidateAmount(t *testing.T) {
	for _, ok := range []string{"12.50", "-3", "0", " 7 "} {
		if err := validateAmount(ok); err != nil {
			t.Errorf("validateAmount(%q) = %v, want nil", ok, err)
		}
	}
	for _, bad := range []string{"", "abc", "12,50", "NaN"} {
		if err := validateAmount(bad); !errors.Is(err, model.ErrInvalidAmount) {
			t.Errorf("validateAmount(%q) = %v, want ErrInvalidAmount", bad, err)
		}
	}
}

func TestValidateYear(t *testing.T) {
	if err := validateYear(""); err != nil {
		t.Errorf("blank year should be allowed: %v", err)
	}
	if err := validateYear("2024"); err != nil {
		t.Errorf("validateYear(2024) = %v", err)
	}
	if err := validateYear("march"); err == nil {
		t.Error("non-numeric year should be rejected")
	}
	if err := validateYear("0"); err == nil {
		t.Error("year zero should be rejected")
	}
}

func TestApplyFormAdd(t *testing.T) {
	s := openTestStore(t)

	a := App{st: s, formKind: formAdd}
	a.recVals = recordValues{date: "2024-03-15", category: "Food", amount: "12.5", note: "lunch"}
	a.applyForm()

	if s.Len() != 1 {
		t.Fatalf("store has %d records, want 1", s.Len())
	}
	got, err := s.At(0)
	if err != nil {
		t.Fatalf("At(0): %v", err)
	}
	if got.Category != "Food" || got.Amount != 12.5 || got.Note != "lunch" {
		t.Errorf("stored %+v", got)
	}
	if a.notice != "added Food" {
		t.Errorf("notice = %q", a.notice)
	}
}

func TestApplyFormEditKeepsIdentity(t *testing.T) {
	orig := rec(t, "2024-03-01", "Food", "10")
	s := openTestStore(t, orig)

	a := App{st: s, formKind: formEdit, targetID: orig.ID}
	a.recompute()
	a.recVals = recordValues{date: "2024-03-01", category: "Groceries", amount: "11", note: ""}
	a.applyForm()

	got, ok := s.Get(orig.ID)
	if !ok {
		t.Fatal("record lost its ID after edit")
	}
	if got.Category != "Groceries" || got.Amount != 11 {
		t.Errorf("edited record = %+v", got)
	}
}

func TestApplyFormDeleteNeedsConfirmation(t *testing.T) {
	target := rec(t, "2024-03-01", "Food", "10")
	s := openTestStore(t, target)

	a := App{st: s, formKind: formDelete, targetID: target.ID, confirmed: false}
	a.recompute()
	a.applyForm()
	if s.Len() != 1 {
		t.Fatal("unconfirmed delete must not remove anything")
	}

	a.formKind = formDelete
	a.confirmed = true
	a.applyForm()
	if s.Len() != 0 {
		t.Fatal("confirmed delete should remove the record")
	}
	if a.notice != "deleted" {
		t.Errorf("notice = %q", a.notice)
	}
}

func TestApplyFormClear(t *testing.T) {
	s := openTestStore(t,
		rec(t, "2024-03-01", "Food", "10"),
		rec(t, "2024-03-02", "Rent", "800"),
	)

	a := App{st: s, formKind: formClear, confirmed: true}
	a.recompute()
	a.applyForm()

	if s.Len() != 0 {
		t.Fatalf("store has %d records after clear", s.Len())
	}
	if a.notice != "deleted 2 records" {
		t.Errorf("notice = %q", a.notice)
	}
}

func TestApplyFormFilter(t *testing.T) {
	s := openTestStore(t,
		rec(t, "2024-03-01", "Food", "10"),
		rec(t, "2024-04-01", "Food", "5"),
	)

	a := App{st: s, formKind: formFilter}
	a.recompute()
	a.filterVals = filterValues{year: "2024", month: "3", category: " food "}
	a.applyForm()

	if a.year != 2024 || a.month != 3 || a.category != "food" {
		t.Errorf("filter = %d/%d/%q", a.year, a.month, a.category)
	}
	if len(a.records) != 1 {
		t.Errorf("filtered snapshot has %d records, want 1", len(a.records))
	}
}
