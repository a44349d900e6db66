package normalize

import (
	"strconv"
	"strings"
	"time"
)

// ParseFecha parses a raw spreadsheet date into canonical "YYYY-MM-DD".
// Accepted forms: an ISO prefix (YYYY-MM-DD, longer strings truncated), or
// D/M/Y and D-M-Y with 1-2 digit day/month and 2- or 4-digit year. Two-digit
// years are assumed 20xx.
func ParseFecha(raw string) (string, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", false
	}

	if len(s) >= 10 && s[4] == '-' && s[7] == '-' {
		if t, err := time.Parse("2006-01-02", s[:10]); err == nil {
			return t.Format("2006-01-02"), true
		}
		return "", false
	}

	sep := "/"
	if !strings.Contains(s, "/") {
		sep = "-"
	}
	parts := strings.Split(s, sep)
	if len(parts) != 3 {
		return "", false
	}

	day, okD := atoiLen(parts[0], 1, 2)
	month, okM := atoiLen(parts[1], 1, 2)
	year, okY := atoiLen(parts[2], 2, 2)
	if !okY {
		year, okY = atoiLen(parts[2], 4, 4)
	} else {
		year += 2000
	}
	if !okD || !okM || !okY {
		return "", false
	}

	// Reject dates that normalize elsewhere (e.g. 31/2 rolling into March).
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || int(t.Month()) != month || t.Day() != day {
		return "", false
	}
	return t.Format("2006-01-02"), true
}

// ParseHora parses a raw spreadsheet time into canonical "HH:MM".
// Accepted forms: H:MM, HH:MM, HH:MM:SS (seconds truncated), or an ISO
// datetime whose local hour and minute are extracted. Minutes must be two
// digits; "9:5" is rejected.
func ParseHora(raw string) (string, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", false
	}

	if strings.Contains(s, "T") {
		for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02T15:04"} {
			if t, err := time.Parse(layout, s); err == nil {
				return t.Format("15:04"), true
			}
		}
		return "", false
	}

	parts := strings.Split(s, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return "", false
	}
	hour, okH := atoiLen(parts[0], 1, 2)
	minute, okM := atoiLen(parts[1], 2, 2)
	if !okH || !okM {
		return "", false
	}
	if len(parts) == 3 {
		if _, ok := atoiLen(parts[2], 2, 2); !ok {
			return "", false
		}
	}
	if hour > 23 || minute > 59 {
		return "", false
	}
	return time.Date(0, 1, 1, hour, minute, 0, 0, time.UTC).Format("15:04"), true
}

// atoiLen parses a decimal string whose length is within [minLen, maxLen].
func atoiLen(s string, minLen, maxLen int) (int, bool) {
	if len(s) < minLen || len(s) > maxLen {
		return 0, false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}
