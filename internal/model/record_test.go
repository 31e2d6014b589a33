package model

import (
	"errors"
	"testing"
	"time"
)

func TestParseRecord(t *testing.T) {
	tests := []struct {
		name     string
		date     string
		category string
		amount   string
		note     string
		wantErr  error
		want     Record
	}{
		{
			name: "full record", date: "2024-03-15", category: "Groceries",
			amount: "42.50", note: "weekly shop",
			want: Record{Date: mustDate(t, "2024-03-15"), Category: "Groceries", Amount: 42.5, Note: "weekly shop"},
		},
		{
			name: "empty category defaults", date: "2024-03-15", category: "",
			amount: "10", note: "",
			want: Record{Date: mustDate(t, "2024-03-15"), Category: "Other", Amount: 10},
		},
		{
			name: "whitespace trimmed", date: "  2024-03-15 ", category: " Rent ",
			amount: " 800 ", note: "  march  ",
			want: Record{Date: mustDate(t, "2024-03-15"), Category: "Rent", Amount: 800, Note: "march"},
		},
		{
			name: "negative amount allowed", date: "2024-03-15", category: "Food",
			amount: "-12.30",
			want: Record{Date: mustDate(t, "2024-03-15"), Category: "Food", Amount: -12.3},
		},
		{name: "bad date", date: "15/03/2024", category: "Food", amount: "5", wantErr: ErrInvalidDate},
		{name: "empty date", date: "", category: "Food", amount: "5", wantErr: ErrInvalidDate},
		{name: "impossible date", date: "2024-02-30", category: "Food", amount: "5", wantErr: ErrInvalidDate},
		{name: "bad amount", date: "2024-03-15", category: "Food", amount: "abc", wantErr: ErrInvalidAmount},
		{name: "empty amount", date: "2024-03-15", category: "Food", amount: "", wantErr: ErrInvalidAmount},
		{name: "nan amount", date: "2024-03-15", category: "Food", amount: "NaN", wantErr: ErrInvalidAmount},
		{name: "inf amount", date: "2024-03-15", category: "Food", amount: "+Inf", wantErr: ErrInvalidAmount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRecord(tt.date, tt.category, tt.amount, tt.note)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ParseRecord() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseRecord() error = %v", err)
			}
			if got.ID == "" {
				t.Error("ParseRecord() assigned empty ID")
			}
			if !got.Date.Equal(tt.want.Date) {
				t.Errorf("Date = %v, want %v", got.Date, tt.want.Date)
			}
			if got.Category != tt.want.Category {
				t.Errorf("Category = %q, want %q", got.Category, tt.want.Category)
			}
			if got.Amount != tt.want.Amount {
				t.Errorf("Amount = %v, want %v", got.Amount, tt.want.Amount)
			}
			if got.Note != tt.want.Note {
				t.Errorf("Note = %q, want %q", got.Note, tt.want.Note)
			}
		})
	}
}

func TestParseRecordUniqueIDs(t *testing.T) {
	a, err := ParseRecord("2024-01-01", "Food", "1", "")
	if err != nil {
		t.Fatalf("ParseRecord() error = %v", err)
	}
	b, err := ParseRecord("2024-01-01", "Food", "1", "")
	if err != nil {
		t.Fatalf("ParseRecord() error = %v", err)
	}
	if a.ID == b.ID {
		t.Errorf("identical inputs got the same ID %q", a.ID)
	}
}

func TestParseRow(t *testing.T) {
	tests := []struct {
		name    string
		fields  []string
		wantErr error
	}{
		{name: "four fields", fields: []string{"2024-03-15", "Food", "9.99", "lunch"}},
		{name: "three fields no note", fields: []string{"2024-03-15", "Food", "9.99"}},
		{name: "two fields", fields: []string{"2024-03-15", "Food"}, wantErr: ErrShortRow},
		{name: "empty row", fields: nil, wantErr: ErrShortRow},
		{name: "bad amount", fields: []string{"2024-03-15", "Food", "x"}, wantErr: ErrInvalidAmount},
		{name: "bad date", fields: []string{"yesterday", "Food", "1"}, wantErr: ErrInvalidDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRow(tt.fields)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ParseRow() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseRow() error = %v", err)
			}
			if got.Amount != 9.99 {
				t.Errorf("Amount = %v, want 9.99", got.Amount)
			}
		})
	}
}

func TestFieldsRoundTrip(t *testing.T) {
	rec, err := ParseRecord("2024-07-04", "Travel", "123.456", "flight")
	if err != nil {
		t.Fatalf("ParseRecord() error = %v", err)
	}
	back, err := ParseRow(rec.Fields())
	if err != nil {
		t.Fatalf("ParseRow(Fields()) error = %v", err)
	}
	if !back.Date.Equal(rec.Date) || back.Category != rec.Category ||
		back.Amount != rec.Amount || back.Note != rec.Note {
		t.Errorf("round trip = %+v, want %+v", back, rec)
	}
}

func TestMatchesMonth(t *testing.T) {
	rec := Record{Date: mustDate(t, "2024-03-15")}

	tests := []struct {
		name  string
		year  int
		month int
		want  bool
	}{
		{"both zero matches all", 0, 0, true},
		{"year only match", 2024, 0, true},
		{"year only mismatch", 2023, 0, false},
		{"month only match", 0, 3, true},
		{"month only mismatch", 0, 4, false},
		{"both match", 2024, 3, true},
		{"year match month mismatch", 2024, 4, false},
		{"month match year mismatch", 2023, 3, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := rec.MatchesMonth(tt.year, tt.month); got != tt.want {
				t.Errorf("MatchesMonth(%d, %d) = %v, want %v", tt.year, tt.month, got, tt.want)
			}
		})
	}
}

func TestTrendDirection(t *testing.T) {
	tests := []struct {
		name  string
		trend TrendLine
		want  int
	}{
		{"rising", TrendLine{Slope: 2.5, Fitted: true}, 1},
		{"falling", TrendLine{Slope: -0.1, Fitted: true}, -1},
		{"flat", TrendLine{Slope: 0, Fitted: true}, 0},
		{"unfitted ignores slope", TrendLine{Slope: 5, Fitted: false}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.trend.Direction(); got != tt.want {
				t.Errorf("Direction() = %d, want %d", got, tt.want)
			}
		})
	}
}

func FuzzParseRow(f *testing.F) {
	f.Add("2024-03-15", "Food", "9.99", "lunch")
	f.Add("", "", "", "")
	f.Add("2024-13-99", "x", "1e308", "note,with,commas")
	f.Add("2024-01-01", "  spaced  ", "-0.001", "\n")

	f.Fuzz(func(t *testing.T, date, category, amount, note string) {
		rec, err := ParseRow([]string{date, category, amount, note})
		if err != nil {
			return
		}
		// Anything accepted must survive an encode/decode cycle intact.
		back, err := ParseRow(rec.Fields())
		if err != nil {
			t.Fatalf("ParseRow(Fields()) error = %v for %+v", err, rec)
		}
		if !back.Date.Equal(rec.Date) || back.Category != rec.Category ||
			back.Amount != rec.Amount || back.Note != rec.Note {
			t.Errorf("round trip = %+v, want %+v", back, rec)
		}
	})
}

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(DateFormat, s)
	if err != nil {
		t.Fatalf("bad test date %q: %v", s, err)
	}
	return d
}
