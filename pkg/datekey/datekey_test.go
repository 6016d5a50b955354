package datekey

import (
	"errors"
	"testing"
	"time"
)

func TestEncode(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want string
	}{
		{"unpadded", time.Date(2024, 3, 7, 0, 0, 0, 0, time.Local), "2024-3-7"},
		{"ignores time of day", time.Date(2024, 3, 7, 23, 59, 59, 0, time.Local), "2024-3-7"},
		{"two digit month and day", time.Date(2024, 12, 25, 8, 0, 0, 0, time.Local), "2024-12-25"},
		{"uses wall clock of location", time.Date(2024, 1, 1, 1, 0, 0, 0, time.FixedZone("x", 14*3600)), "2024-1-1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Encode(tt.in); got != tt.want {
				t.Fatalf("Encode() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDecodeRoundTrip(t *testing.T) {
	start := time.Date(2023, 12, 25, 15, 30, 0, 0, time.Local)
	for i := 0; i < 800; i++ {
		d := start.AddDate(0, 0, i)
		got, err := Decode(Encode(d))
		if err != nil {
			t.Fatalf("Decode(%q): %v", Encode(d), err)
		}
		if !SameDate(got, d) {
			t.Fatalf("round trip of %v gave %v", d, got)
		}
		if got.Hour() != 0 || got.Minute() != 0 {
			t.Fatalf("Decode should return midnight, got %v", got)
		}
	}
}

func TestDecode(t *testing.T) {
	padded, err := Decode("2024-03-07")
	if err != nil {
		t.Fatalf("padded key: %v", err)
	}
	if Encode(padded) != "2024-3-7" {
		t.Fatalf("padded key decoded to %v", padded)
	}

	for _, bad := range []string{"", "2024-3", "2024-13-1", "2024-2-30", "2023-2-29", "a-b-c", "2024-0-1", "2024-1-0", "2024--1-1"} {
		if _, err := Decode(bad); !errors.Is(err, ErrInvalid) {
			t.Errorf("Decode(%q) error = %v, want ErrInvalid", bad, err)
		}
	}
	if _, err := Decode("2024-2-29"); err != nil {
		t.Errorf("leap day: %v", err)
	}
}

func TestSameDate(t *testing.T) {
	a := time.Date(2024, 3, 7, 0, 0, 0, 0, time.Local)
	if !SameDate(a, a.Add(23*time.Hour)) {
		t.Fatal("expected same date within a day")
	}
	if SameDate(a, a.AddDate(0, 0, 1)) {
		t.Fatal("expected different dates")
	}
	if SameDate(a, a.AddDate(1, 0, 0)) {
		t.Fatal("expected different years to differ")
	}
}

func TestSortIsChronological(t *testing.T) {
	keys := []string{"2024-10-1", "garbage", "2024-9-30", "2023-12-31", "2024-1-2"}
	Sort(keys)
	want := []string{"2023-12-31", "2024-1-2", "2024-9-30", "2024-10-1", "garbage"}
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("Sort() = %v, want %v", keys, want)
		}
	}
}

func TestParse(t *testing.T) {
	now := time.Date(2024, 3, 7, 14, 0, 0, 0, time.Local)
	tests := []struct {
		in   string
		want string
	}{
		{"", "2024-3-7"},
		{"today", "2024-3-7"},
		{"Yesterday", "2024-3-6"},
		{"2023-12-31", "2023-12-31"},
		{"2023-01-05", "2023-1-5"},
		{"3/1", "2024-3-1"},
		{"3/8", "2024-3-8"},
		{"12/24", "2023-12-24"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in, now)
			if err != nil {
				t.Fatalf("Parse(%q): %v", tt.in, err)
			}
			if Encode(got) != tt.want {
				t.Fatalf("Parse(%q) = %s, want %s", tt.in, Encode(got), tt.want)
			}
		})
	}

	if _, err := Parse("next tuesday", now); !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
	leap := []struct {
		in  string
		now time.Time
		ok  string
	}{
		{"2/29", time.Date(2024, 3, 7, 14, 0, 0, 0, time.Local), "2024-2-29"},
		{"2/29", time.Date(2025, 3, 10, 9, 0, 0, 0, time.Local), ""},
		// rolls back to 2023, which has no leap day
		{"2/29", time.Date(2024, 2, 27, 9, 0, 0, 0, time.Local), ""},
		{"2/28", time.Date(2025, 3, 10, 9, 0, 0, 0, time.Local), "2025-2-28"},
	}
	for _, tt := range leap {
		got, err := Parse(tt.in, tt.now)
		if tt.ok == "" {
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("Parse(%q, %s) = %s, %v; want ErrInvalid", tt.in, Encode(tt.now), Encode(got), err)
			}
			continue
		}
		if err != nil || Encode(got) != tt.ok {
			t.Errorf("Parse(%q, %s) = %s, %v; want %s", tt.in, Encode(tt.now), Encode(got), err, tt.ok)
		}
	}
}
