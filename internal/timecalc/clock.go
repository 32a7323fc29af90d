// Package timecalc converts clock-time text to minute counts and derives
// daily and weekly worked time from them.
//
// Clock-time here is free-form "H:MM" notation: hours beyond 23 are accepted
// as-is, so the same functions serve wall-clock entries and elapsed totals.
package timecalc

import (
	"fmt"
	"strings"
)

// ParseClockTime converts "H:MM" or "HH:MM" into minutes. A missing minute
// part counts as 0 and empty input yields 0. Each part is read as its
// leading run of digits; a part without digits, including a signed one,
// counts as 0. Parts saturate at maxPart.
func ParseClockTime(text string) int {
	if text == "" {
		return 0
	}
	hourPart, minutePart, _ := strings.Cut(text, ":")
	return leadingInt(hourPart)*60 + leadingInt(minutePart)
}

// FormatMinutes renders minutes as "H:MM". Negative input renders as "0:00".
func FormatMinutes(minutes int) string {
	if minutes < 0 {
		minutes = 0
	}
	return fmt.Sprintf("%d:%02d", minutes/60, minutes%60)
}

// ParseMinutes reads a break-duration field. Text without leading digits
// yields 0.
func ParseMinutes(text string) int {
	return leadingInt(text)
}

// maxPart caps a parsed number so hour and minute arithmetic cannot overflow.
const maxPart = 1_000_000

// leadingInt reads the leading digits of s, saturating at maxPart. A sign is
// not a digit, so "-1" reads as 0.
func leadingInt(s string) int {
	s = strings.TrimSpace(s)
	n := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			break
		}
		n = n*10 + int(c-'0')
		if n >= maxPart {
			return maxPart
		}
	}
	return n
}
