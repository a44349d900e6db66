// Package report renders per-day attendance verdicts for a date range: the
// employee×date matrix fed to the dashboard table and the Excel export.
package report

import (
	"fmt"
	"sort"
	"time"

	"asistencia/internal/analyze"
	"asistencia/internal/models"
	"asistencia/internal/schedule"
)

// Employees returns the distinct employees present in the event list, sorted.
func Employees(events []models.Event) []string {
	seen := make(map[string]bool)
	var out []string
	for _, ev := range events {
		if !seen[ev.Empleado] {
			seen[ev.Empleado] = true
			out = append(out, ev.Empleado)
		}
	}
	sort.Strings(out)
	return out
}

// DateRange returns the earliest and latest dates in the event list.
func DateRange(events []models.Event) (from, to string) {
	for _, ev := range events {
		if from == "" || ev.Fecha < from {
			from = ev.Fecha
		}
		if ev.Fecha > to {
			to = ev.Fecha
		}
	}
	return from, to
}

// Build analyzes every (employee, date) pair over the range and returns the
// rows ordered by employee, then date. Empty from/to default to the range
// covered by the events themselves. Days off and absences are included; the
// exporter decides how to render them.
func Build(events []models.Event, from, to string, cfg schedule.Config) ([]models.DayResult, error) {
	if from == "" || to == "" {
		derivedFrom, derivedTo := DateRange(events)
		if derivedFrom == "" {
			return nil, nil
		}
		if from == "" {
			from = derivedFrom
		}
		if to == "" {
			to = derivedTo
		}
	}

	start, err := time.Parse("2006-01-02", from)
	if err != nil {
		return nil, fmt.Errorf("invalid from date %q", from)
	}
	end, err := time.Parse("2006-01-02", to)
	if err != nil {
		return nil, fmt.Errorf("invalid to date %q", to)
	}
	if start.After(end) {
		return nil, fmt.Errorf("from %s is after to %s", from, to)
	}

	var results []models.DayResult
	for _, empleado := range Employees(events) {
		for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
			fecha := d.Format("2006-01-02")
			results = append(results, analyze.Day(events, empleado, fecha, cfg))
		}
	}
	return results, nil
}
