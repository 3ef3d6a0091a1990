// Package timeutil provides duration and date formatting helpers for
// the PSP time log.
package timeutil

import (
	"fmt"
	"time"
)

const (
	secondsInAMinute = 60
	secondsInAnHour  = 3600
)

// ClockFormat is the layout for the hora_inicio/hora_fin log fields.
const ClockFormat = "15:04:05"

// DateFormat is the strict layout for project start dates.
const DateFormat = "02/01/2006"

// FormatDuration renders a duration as hh:mm:ss, truncating fractional
// seconds. Negative durations render as 00:00:00.
func FormatDuration(d time.Duration) string {
	totalSeconds := int(d.Seconds())
	if totalSeconds < 0 {
		totalSeconds = 0
	}

	hours := totalSeconds / secondsInAnHour
	minutes := (totalSeconds % secondsInAnHour) / secondsInAMinute
	seconds := totalSeconds % secondsInAMinute

	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
}

// WholeMinutes truncates a duration to whole minutes. Fractional
// seconds are discarded, never rounded up.
func WholeMinutes(d time.Duration) int {
	if d < 0 {
		return 0
	}

	return int(d.Seconds()) / secondsInAMinute
}

// ParseDate parses a strict dd/mm/yyyy date. Any other layout is an
// error.
func ParseDate(value string) (time.Time, error) {
	t, err := time.ParseInLocation(DateFormat, value, time.Local)
	// time.Parse accepts unpadded day and month digits, so round-trip
	// the value to enforce the exact dd/mm/yyyy layout.
	if err != nil || t.Format(DateFormat) != value {
		return time.Time{}, fmt.Errorf("invalid date %q: expected dd/mm/yyyy", value)
	}

	return t, nil
}

var weekdays = [...]string{
	"Domingo",
	"Lunes",
	"Martes",
	"Miércoles",
	"Jueves",
	"Viernes",
	"Sábado",
}

var months = [...]string{
	"enero",
	"febrero",
	"marzo",
	"abril",
	"mayo",
	"junio",
	"julio",
	"agosto",
	"septiembre",
	"octubre",
	"noviembre",
	"diciembre",
}

// LongDate renders a Spanish long-form date label such as
// "Lunes, 02 enero 2006". Fixed name tables keep the output stable
// regardless of the system locale.
func LongDate(t time.Time) string {
	return fmt.Sprintf(
		"%s, %02d %s %d",
		weekdays[t.Weekday()],
		t.Day(),
		months[t.Month()-1],
		t.Year(),
	)
}
