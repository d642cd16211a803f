package core

import "testing"

func TestAdvanceSeconds(t *testing.T) {
	for h := uint8(0); h < HoursPerDay; h += 7 {
		for m := uint8(0); m < MinutesPerHour; m += 13 {
			for s := uint8(0); s < SecondsPerMinute-1; s++ {
				got := ClockTime{h, m, s}.Advance()
				expected := ClockTime{h, m, s + 1}
				if got != expected {
					t.Errorf("Advance(%v): expected %v, got %v", ClockTime{h, m, s}, expected, got)
				}
			}
		}
	}
}

func TestAdvanceRollover(t *testing.T) {
	testCases := []struct {
		from     ClockTime
		expected ClockTime
	}{
		{ClockTime{0, 0, 59}, ClockTime{0, 1, 0}},
		{ClockTime{5, 58, 59}, ClockTime{5, 59, 0}},
		{ClockTime{0, 59, 59}, ClockTime{1, 0, 0}},
		{ClockTime{22, 59, 59}, ClockTime{23, 0, 0}},
		{ClockTime{23, 59, 59}, ClockTime{0, 0, 0}},
		{ClockTime{23, 58, 59}, ClockTime{23, 59, 0}},
	}

	for _, tc := range testCases {
		got := tc.from.Advance()
		if got != tc.expected {
			t.Errorf("Advance(%v): expected %v, got %v", tc.from, tc.expected, got)
		}
		if !got.Valid() {
			t.Errorf("Advance(%v) produced invalid time %v", tc.from, got)
		}
	}
}

func TestAdvanceFullDay(t *testing.T) {
	var ct ClockTime
	for i := 0; i < 24*3600; i++ {
		ct = ct.Advance()
		if !ct.Valid() {
			t.Fatalf("step %d: invalid time %v", i, ct)
		}
		if ct.TotalSeconds() != uint32(i+1)%(24*3600) {
			t.Fatalf("step %d: expected %d seconds, got %d", i, (i+1)%(24*3600), ct.TotalSeconds())
		}
	}
	if ct != (ClockTime{}) {
		t.Errorf("expected wrap to 00:00:00 after a day, got %v", ct)
	}
}

func TestAdvance3661(t *testing.T) {
	var ct ClockTime
	for i := 0; i < 3661; i++ {
		ct = ct.Advance()
	}
	expected := ClockTime{1, 1, 1}
	if ct != expected {
		t.Errorf("expected %v, got %v", expected, ct)
	}
}

func TestClockTimeString(t *testing.T) {
	testCases := []struct {
		ct       ClockTime
		expected string
	}{
		{ClockTime{}, "00:00:00"},
		{ClockTime{1, 1, 1}, "01:01:01"},
		{ClockTime{12, 30, 45}, "12:30:45"},
		{ClockTime{23, 59, 59}, "23:59:59"},
	}

	for _, tc := range testCases {
		if got := tc.ct.String(); got != tc.expected {
			t.Errorf("String(): expected %q, got %q", tc.expected, got)
		}
	}
}

func TestClockTimeFromSeconds(t *testing.T) {
	if got := ClockTimeFromSeconds(3661); got != (ClockTime{1, 1, 1}) {
		t.Errorf("expected 01:01:01, got %v", got)
	}
	if got := ClockTimeFromSeconds(24*3600 + 5); got != (ClockTime{0, 0, 5}) {
		t.Errorf("expected wrap to 00:00:05, got %v", got)
	}
}

func TestClockTimePack(t *testing.T) {
	ct := ClockTime{23, 59, 58}
	if got := unpackClockTime(ct.pack()); got != ct {
		t.Errorf("pack/unpack: expected %v, got %v", ct, got)
	}
}
