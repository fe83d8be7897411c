// Package timeconv converts wall-clock times between fixed UTC offsets.
package timeconv

import (
	"fmt"
	"strconv"
	"strings"
)

// ISTToESTOffsetMinutes is the offset subtracted when converting IST (UTC+5:30)
// to EST (UTC-5:00): 10 hours 30 minutes.
const ISTToESTOffsetMinutes = 630

const minutesPerDay = 24 * 60

// ToTargetOffset interprets sourceTime ("HH:MM") as minutes since midnight,
// subtracts offsetMinutes and wraps modulo 24h, so a negative result rolls
// over to the previous day. Malformed time strings are rejected.
func ToTargetOffset(sourceTime string, offsetMinutes int) (string, error) {
	hours, minutes, err := parseClock(sourceTime)
	if err != nil {
		return "", err
	}

	total := hours*60 + minutes - offsetMinutes
	total = ((total % minutesPerDay) + minutesPerDay) % minutesPerDay

	return fmt.Sprintf("%02d:%02d", total/60, total%60), nil
}

// ConvertISTToEST converts an IST wall-clock time to EST.
func ConvertISTToEST(istTime string) (string, error) {
	return ToTargetOffset(istTime, ISTToESTOffsetMinutes)
}

// parseClock parses "HH:MM" strictly: two digit groups, hours 0-23, minutes 0-59.
func parseClock(value string) (int, int, error) {
	parts := strings.Split(value, ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid time %q, required format `HH:MM`", value)
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil || hours < 0 || hours > 23 {
		return 0, 0, fmt.Errorf("invalid hours in time %q", value)
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil || minutes < 0 || minutes > 59 {
		return 0, 0, fmt.Errorf("invalid minutes in time %q", value)
	}
	return hours, minutes, nil
}
