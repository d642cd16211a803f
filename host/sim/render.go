package sim

import (
	"strings"

	"segclock/core"
)

// Segment bit positions on the bus
const (
	segA = 1 << iota
	segB
	segC
	segD
	segE
	segF
	segG
	segDP
)

// lit reports whether segment bit seg is on in an active-low pattern
func lit(pattern, seg uint8) bool {
	return pattern&seg == 0
}

// DecodeSegments maps an active-low pattern back to its decimal digit.
// The decimal point is ignored.
func DecodeSegments(pattern uint8) (uint8, bool) {
	pattern |= segDP
	for d, code := range core.SegmentCodes {
		if code|segDP == pattern {
			return uint8(d), true
		}
	}
	return 0, false
}

// ReadTime decodes a full frame back into a clock time
func ReadTime(frame [core.DigitCount]uint8) (core.ClockTime, bool) {
	var d [core.DigitCount]uint8
	for i, pattern := range frame {
		v, ok := DecodeSegments(pattern)
		if !ok {
			return core.ClockTime{}, false
		}
		d[i] = v
	}
	t := core.ClockTime{
		Hours:   d[0]*10 + d[1],
		Minutes: d[2]*10 + d[3],
		Seconds: d[4]*10 + d[5],
	}
	return t, t.Valid()
}

// Render draws a frame as three lines of ASCII art:
//
//	 _  _     _  _     _  _
//	| || | . | || | . | || |
//	|_||_| . |_||_| . |_||_|
func Render(frame [core.DigitCount]uint8) string {
	var rows [3]strings.Builder
	for i, p := range frame {
		if i > 0 && i%2 == 0 {
			rows[0].WriteString("   ")
			rows[1].WriteString(" . ")
			rows[2].WriteString(" . ")
		}
		rows[0].WriteString(" " + pick(lit(p, segA), "_") + " ")
		rows[1].WriteString(pick(lit(p, segF), "|") + pick(lit(p, segG), "_") + pick(lit(p, segB), "|"))
		rows[2].WriteString(pick(lit(p, segE), "|") + pick(lit(p, segD), "_") + pick(lit(p, segC), "|"))
	}
	return rows[0].String() + "\n" + rows[1].String() + "\n" + rows[2].String()
}

func pick(on bool, s string) string {
	if on {
		return s
	}
	return " "
}
