package bookingform

import (
	"fmt"
	"strings"
	"time"
)

// Bookable hours span 09:00-18:00 in fixed one-hour buckets. Slots are
// generated locally and never fetched.
const (
	dayStartHour = 9
	dayEndHour   = 18
)

// Slot is one bookable interval: Value is the wire form ("09:00-10:00"),
// Label the 12-hour display form ("9:00 AM - 10:00 AM").
type Slot struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

func Slots() []Slot {
	slots := make([]Slot, 0, dayEndHour-dayStartHour)
	for h := dayStartHour; h < dayEndHour; h++ {
		slots = append(slots, Slot{
			Value: fmt.Sprintf("%02d:00-%02d:00", h, h+1),
			Label: fmt.Sprintf("%s - %s", hour12(h), hour12(h+1)),
		})
	}
	return slots
}

func hour12(h int) string {
	meridiem := "AM"
	if h >= 12 {
		meridiem = "PM"
	}
	display := h % 12
	if display == 0 {
		display = 12
	}
	return fmt.Sprintf("%d:00 %s", display, meridiem)
}

// SplitSlot splits a combined slot value into its start and end times,
// rejecting anything that is not a well-formed, forward interval.
func SplitSlot(value string) (start, end string, err error) {
	start, end, ok := strings.Cut(value, "-")
	if !ok {
		return "", "", fmt.Errorf("malformed slot value: %q", value)
	}

	startT, err := time.Parse("15:04", start)
	if err != nil {
		return "", "", fmt.Errorf("malformed slot start %q: %w", start, err)
	}
	endT, err := time.Parse("15:04", end)
	if err != nil {
		return "", "", fmt.Errorf("malformed slot end %q: %w", end, err)
	}
	if !startT.Before(endT) {
		return "", "", fmt.Errorf("slot start %q must precede end %q", start, end)
	}

	return start, end, nil
}

// Today returns the default date value for a fresh form, in the backend's
// date format.
func Today() string {
	return time.Now().Format("2006-01-02")
}
