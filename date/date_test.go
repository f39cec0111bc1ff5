package date

import (
	"testing"
	"time"
)

func TestAddMonths(t *testing.T) {
	tests := []struct {
		name string
		from string
		n    int
		want string
	}{
		{"plain month", "2024-01-15", 1, "2024-02-15"},
		{"end of month clamps on leap year", "2024-01-31", 1, "2024-02-29"},
		{"end of month clamps off leap year", "2023-01-31", 1, "2023-02-28"},
		{"year rollover", "2024-11-30", 3, "2025-02-28"},
		{"full year", "2024-01-01", 12, "2025-01-01"},
		{"long tenure", "2024-05-31", 60, "2029-05-31"},
		{"negative months", "2024-03-31", -1, "2024-02-29"},
		{"zero months", "2024-07-04", 0, "2024-07-04"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := MustParse(tc.from).AddMonths(tc.n)
			if got.String() != tc.want {
				t.Errorf("AddMonths(%s, %d) = %s, want %s", tc.from, tc.n, got, tc.want)
			}
		})
	}
}

func TestParseRoundTrip(t *testing.T) {
	d, err := Parse("2025-7-1")
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if d.String() != "2025-07-01" {
		t.Errorf("Parse(2025-7-1) = %s, want 2025-07-01", d)
	}
	if _, err := Parse("not-a-date"); err == nil {
		t.Error("Parse(not-a-date) should fail")
	}
}

func TestDaysIn(t *testing.T) {
	if got := DaysIn(2024, time.February); got != 29 {
		t.Errorf("DaysIn(2024, February) = %d, want 29", got)
	}
	if got := DaysIn(2023, time.February); got != 28 {
		t.Errorf("DaysIn(2023, February) = %d, want 28", got)
	}
	if got := DaysIn(2024, time.April); got != 30 {
		t.Errorf("DaysIn(2024, April) = %d, want 30", got)
	}
}

func TestFinancialYear(t *testing.T) {
	tests := []struct {
		on   string
		want FinancialYear
	}{
		{"2024-04-01", 2024},
		{"2024-03-31", 2023},
		{"2025-01-15", 2024},
		{"2025-12-31", 2025},
	}
	for _, tc := range tests {
		if got := FYOf(MustParse(tc.on)); got != tc.want {
			t.Errorf("FYOf(%s) = %v, want %v", tc.on, got, tc.want)
		}
	}

	fy := FinancialYear(2024)
	if fy.Start().String() != "2024-04-01" {
		t.Errorf("Start() = %s, want 2024-04-01", fy.Start())
	}
	if fy.End().String() != "2025-03-31" {
		t.Errorf("End() = %s, want 2025-03-31", fy.End())
	}
	if fy.String() != "2024-25" {
		t.Errorf("String() = %s, want 2024-25", fy)
	}
	if !fy.Contains(MustParse("2024-12-25")) {
		t.Error("Contains(2024-12-25) = false, want true")
	}
	if fy.Contains(MustParse("2024-03-31")) {
		t.Error("Contains(2024-03-31) = true, want false")
	}
	if months := fy.Months(); len(months) != 12 || months[0] != time.April || months[11] != time.March {
		t.Errorf("Months() = %v, want April..March", months)
	}
}
