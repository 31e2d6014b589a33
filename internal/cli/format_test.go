package cli

import "testing"

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0.00"},
		{9.5, "9.50"},
		{1234.5, "1,234.50"},
		{1000000, "1,000,000.00"},
		{-1234.5, "-1,234.50"},
		{0.005, "0.01"},
	}

	for _, tt := range tests {
		if got := FormatAmount(tt.in); got != tt.want {
			t.Errorf("FormatAmount(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{-1234567, "-1,234,567"},
	}

	for _, tt := range tests {
		if got := FormatNumber(tt.in); got != tt.want {
			t.Errorf("FormatNumber(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatDelta(t *testing.T) {
	if got := FormatDelta(150, 100); got != "+50.00" {
		t.Errorf("FormatDelta(150, 100) = %q, want +50.00", got)
	}
	if got := FormatDelta(100, 150); got != "-50.00" {
		t.Errorf("FormatDelta(100, 150) = %q, want -50.00", got)
	}
}

func TestFormatMonth(t *testing.T) {
	if got := FormatMonth("2024-03"); got != "Mar 2024" {
		t.Errorf("FormatMonth(2024-03) = %q, want Mar 2024", got)
	}
	if got := FormatMonth("garbage"); got != "garbage" {
		t.Errorf("FormatMonth(garbage) = %q, want it unchanged", got)
	}
}

func TestFormatPercent(t *testing.T) {
	if got := FormatPercent(0.375); got != "37.5%" {
		t.Errorf("FormatPercent(0.375) = %q, want 37.5%%", got)
	}
}
