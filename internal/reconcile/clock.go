package reconcile

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Calendar dates are compared as YYYY-MM-DD string prefixes. Nothing in
// this file routes a date through a timezone-aware parser; doing so can
// shift the day depending on the host zone.

var (
	datePrefixRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}`)
	timeOfDayRe  = regexp.MustCompile(`(\d{2}):(\d{2})`)
)

// ExtractDate returns the YYYY-MM-DD prefix of a timestamp, or "" when
// the value does not start with one.
func ExtractDate(ts string) string {
	return datePrefixRe.FindString(strings.TrimSpace(ts))
}

// ExtractTime returns the first HH:MM found in a timestamp, or "".
func ExtractTime(ts string) string {
	m := timeOfDayRe.FindStringSubmatch(ts)
	if m == nil {
		return ""
	}
	return m[1] + ":" + m[2]
}

// TimeToMinutes converts "HH:MM" to minute-of-day. ok is false for
// anything unparseable or out of range.
func TimeToMinutes(hhmm string) (int, bool) {
	parts := strings.SplitN(strings.TrimSpace(hhmm), ":", 2)
	if len(parts) != 2 {
		return 0, false
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, false
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, false
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, false
	}
	return h*60 + m, true
}

// MinutesToTime renders a minute-of-day as "HH:MM".
func MinutesToTime(mins int) string {
	return fmt.Sprintf("%02d:%02d", mins/60, mins%60)
}

func dateParts(date string) (year, month, day int, ok bool) {
	if datePrefixRe.FindString(date) == "" {
		return 0, 0, 0, false
	}
	year, _ = strconv.Atoi(date[0:4])
	month, _ = strconv.Atoi(date[5:7])
	day, _ = strconv.Atoi(date[8:10])
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return 0, 0, 0, false
	}
	return year, month, day, true
}

// IsWeekend reports whether a YYYY-MM-DD date falls on Saturday or
// Sunday. The date is rebuilt from its numeric parts in UTC, which
// cannot shift the day.
func IsWeekend(date string) bool {
	y, m, d, ok := dateParts(date)
	if !ok {
		return false
	}
	wd := time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC).Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// MonthDay returns the MM-DD portion of a YYYY-MM-DD date, used for
// recurring holiday matching.
func MonthDay(date string) string {
	if _, _, _, ok := dateParts(date); !ok {
		return ""
	}
	return date[5:10]
}

// DateRange expands [from, to] into consecutive YYYY-MM-DD strings.
// Returns nil when either bound is malformed or from is after to.
func DateRange(from, to string) []string {
	fy, fm, fd, ok := dateParts(from)
	if !ok {
		return nil
	}
	ty, tm, td, ok := dateParts(to)
	if !ok {
		return nil
	}

	cur := time.Date(fy, time.Month(fm), fd, 0, 0, 0, 0, time.UTC)
	end := time.Date(ty, time.Month(tm), td, 0, 0, 0, 0, time.UTC)
	if cur.After(end) {
		return nil
	}

	var dates []string
	for !cur.After(end) {
		dates = append(dates, cur.Format("2006-01-02"))
		cur = cur.AddDate(0, 0, 1)
	}
	return dates
}

// NormalizeStatus maps free-form status strings onto the closed enum.
// Unknown values become ForApproval, never Approved.
func NormalizeStatus(raw string) Status {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "approved", "approve":
		return StatusApproved
	case "returned", "return", "rejected":
		return StatusReturned
	case "cancelled", "canceled", "cancel":
		return StatusCancelled
	default:
		// covers "for approval", "pending" and anything unrecognized
		return StatusForApproval
	}
}
