package core

// Rollover limits for the wall-clock fields
const (
	SecondsPerMinute = 60
	MinutesPerHour   = 60
	HoursPerDay      = 24
)

// ClockTime is the displayed time in hours, minutes and seconds.
// Fields always stay inside their modular range.
type ClockTime struct {
	Hours   uint8 // 0-23
	Minutes uint8 // 0-59
	Seconds uint8 // 0-59
}

// Advance moves the time forward by one second.
// Carries are checked seconds -> minutes -> hours, wrapping at 24h.
func (t ClockTime) Advance() ClockTime {
	t.Seconds++
	if t.Seconds >= SecondsPerMinute {
		t.Seconds = 0
		t.Minutes++
		if t.Minutes >= MinutesPerHour {
			t.Minutes = 0
			t.Hours++
			if t.Hours >= HoursPerDay {
				t.Hours = 0
			}
		}
	}
	return t
}

// Valid reports whether every field is inside its range
func (t ClockTime) Valid() bool {
	return t.Hours < HoursPerDay && t.Minutes < MinutesPerHour && t.Seconds < SecondsPerMinute
}

// TotalSeconds returns the number of seconds since 00:00:00
func (t ClockTime) TotalSeconds() uint32 {
	return uint32(t.Hours)*3600 + uint32(t.Minutes)*60 + uint32(t.Seconds)
}

// ClockTimeFromSeconds builds a ClockTime from seconds since midnight,
// wrapping at 24h.
func ClockTimeFromSeconds(secs uint32) ClockTime {
	secs %= HoursPerDay * 3600
	return ClockTime{
		Hours:   uint8(secs / 3600),
		Minutes: uint8(secs / 60 % 60),
		Seconds: uint8(secs % 60),
	}
}

// String formats the time as HH:MM:SS without pulling in fmt
func (t ClockTime) String() string {
	var buf [8]byte
	put2(buf[0:2], t.Hours)
	buf[2] = ':'
	put2(buf[3:5], t.Minutes)
	buf[5] = ':'
	put2(buf[6:8], t.Seconds)
	return string(buf[:])
}

func put2(dst []byte, v uint8) {
	dst[0] = '0' + v/10%10
	dst[1] = '0' + v%10
}

// pack stores a ClockTime in one word so it can be read and written atomically
func (t ClockTime) pack() uint32 {
	return uint32(t.Hours)<<16 | uint32(t.Minutes)<<8 | uint32(t.Seconds)
}

func unpackClockTime(v uint32) ClockTime {
	return ClockTime{
		Hours:   uint8(v >> 16),
		Minutes: uint8(v >> 8),
		Seconds: uint8(v),
	}
}
