package core

import (
	"strings"
	"testing"
)

func TestEventRingWraps(t *testing.T) {
	ClearEventRing()
	defer ClearEventRing()

	for i := uint32(0); i < EventRingSize+5; i++ {
		RecordEvent(EvtPress, i, 0)
	}
	events := Events()
	if len(events) != EventRingSize {
		t.Fatalf("expected %d events, got %d", EventRingSize, len(events))
	}
	// Oldest surviving entry is the sixth one recorded
	if events[0].Value1 != 5 {
		t.Errorf("expected oldest value 5, got %d", events[0].Value1)
	}
	if last := events[len(events)-1]; last.Value1 != EventRingSize+4 {
		t.Errorf("expected newest value %d, got %d", EventRingSize+4, last.Value1)
	}
}

func TestDumpEventRing(t *testing.T) {
	ClearEventRing()
	defer ClearEventRing()

	var lines []string
	SetDebugWriter(func(s string) { lines = append(lines, s) })
	defer SetDebugWriter(func(string) {})

	RecordEvent(EvtSecond, ClockTime{1, 2, 3}.pack(), uint32(ModeClock))
	RecordEvent(EvtModeToggle, uint32(ModeStopwatch), 0)
	DumpEventRing()

	out := strings.Join(lines, "\n")
	if !strings.Contains(out, "SECOND") || !strings.Contains(out, "time=01:02:03") {
		t.Errorf("dump missing second event:\n%s", out)
	}
	if !strings.Contains(out, "MODE") {
		t.Errorf("dump missing mode event:\n%s", out)
	}
}

func TestDebugPrintlnDisabled(t *testing.T) {
	var lines []string
	SetDebugWriter(func(s string) { lines = append(lines, s) })
	defer SetDebugWriter(func(string) {})

	SetDebugEnabled(false)
	DebugPrintln("hidden")
	SetDebugEnabled(true)
	DebugPrintln("shown")
	SetDebugEnabled(false)

	if len(lines) != 1 || lines[0] != "shown" {
		t.Errorf("expected only the enabled message, got %v", lines)
	}
}

func TestStrutil(t *testing.T) {
	testCases := []struct {
		n        int
		expected string
	}{
		{0, "0"},
		{7, "7"},
		{-42, "-42"},
		{4294967, "4294967"},
	}
	for _, tc := range testCases {
		if got := itoa(tc.n); got != tc.expected {
			t.Errorf("itoa(%d): expected %q, got %q", tc.n, tc.expected, got)
		}
	}
	if got := utoa(4294967295); got != "4294967295" {
		t.Errorf("utoa(max): got %q", got)
	}
}
