// Package timegrid holds wall-clock minute arithmetic and the fixed
// speaking appointment grids. All times are local, minute granularity,
// encoded as "HH:MM" or "HH:MM-HH:MM" ranges.
package timegrid

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Speaking grid constants. The bulk generator fills a whole day in
// 20-minute appointments; the single-slot generator stops earlier and
// skips the lunch break.
const (
	SlotLength = 20

	dayStart = 9 * 60  // 09:00
	dayEnd   = 19 * 60 // 19:00

	partialLastStart = 17*60 + 21 // a slot may not start after 17:21
	breakStart       = 13*60 + 21
	breakEnd         = 13*60 + 59
)

// ToMinutes parses an "HH:MM" value into minutes since midnight.
func ToMinutes(value string) (int, error) {
	h, m, ok := strings.Cut(value, ":")
	if !ok {
		return 0, fmt.Errorf("malformed time %q", value)
	}
	hours, err := strconv.Atoi(strings.TrimSpace(h))
	if err != nil {
		return 0, fmt.Errorf("malformed time %q", value)
	}
	minutes, err := strconv.Atoi(strings.TrimSpace(m))
	if err != nil {
		return 0, fmt.Errorf("malformed time %q", value)
	}
	if hours < 0 || hours > 23 || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("time %q out of range", value)
	}
	return hours*60 + minutes, nil
}

// ToDisplay renders an "HH:MM" value as "h:mm AM/PM". Empty input
// yields an empty string; unparsable input is returned unchanged.
func ToDisplay(value string) string {
	if value == "" {
		return ""
	}
	t, err := time.Parse("15:04", value)
	if err != nil {
		return value
	}
	return t.Format("3:04 PM")
}

// Overlaps reports whether two half-open minute intervals intersect.
// Touching endpoints do not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd int) bool {
	return aStart < bEnd && aEnd > bStart
}

// StartMinutes returns the start of an "HH:MM" or "HH:MM-HH:MM" value
// in minutes since midnight.
func StartMinutes(value string) (int, error) {
	start, _, _ := strings.Cut(value, "-")
	return ToMinutes(strings.TrimSpace(start))
}

// DaySlots generates the full-day speaking grid: 20-minute ranges from
// 09:00 up to 19:00, each encoded as "HH:MM-HH:MM".
func DaySlots() []string {
	var slots []string
	for start := dayStart; start < dayEnd; start += SlotLength {
		slots = append(slots, formatRange(start, start+SlotLength))
	}
	return slots
}

// PartialSpeakingTimes generates the single-slot speaking options:
// 20-minute ranges on the hour and at :20/:40 from 09:00, skipping any
// start inside the break window and any start after 17:21.
func PartialSpeakingTimes() []string {
	var slots []string
	for h := 9; h <= 17; h++ {
		for m := 0; m < 60; m += SlotLength {
			start := h*60 + m
			if start >= breakStart && start < breakEnd {
				continue
			}
			if start+SlotLength > partialLastStart {
				continue
			}
			slots = append(slots, formatRange(start, start+SlotLength))
		}
	}
	return slots
}

func formatRange(start, end int) string {
	return formatMinutes(start) + "-" + formatMinutes(end)
}

func formatMinutes(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}
