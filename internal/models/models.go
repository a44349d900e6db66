package models

import (
	"fmt"
	"strconv"
	"strings"
)

// EventKind marks a punch as a check-in or a check-out.
type EventKind string

const (
	KindEntrada EventKind = "Entrada"
	KindSalida  EventKind = "Salida"
)

// RawRow is one spreadsheet row keyed by column header, as handed over by the
// ingestion layer. Values are untrimmed cell text.
type RawRow map[string]string

// ColumnMapping tells the normalizer which columns hold each semantic field.
// Tipo is optional; the source data rarely fills it reliably.
type ColumnMapping struct {
	Empleado string `json:"empleado"`
	Fecha    string `json:"fecha"`
	Hora     string `json:"hora"`
	Tipo     string `json:"tipo,omitempty"`
}

// Valid reports whether the mapping names the three required columns.
func (m ColumnMapping) Valid() bool {
	return m.Empleado != "" && m.Fecha != "" && m.Hora != ""
}

// Event is a normalized punch: canonical date and time plus an inferred kind.
type Event struct {
	Empleado string    `json:"empleado"`
	Fecha    string    `json:"fecha"` // YYYY-MM-DD
	Hora     string    `json:"hora"`  // HH:MM, 24h
	Tipo     EventKind `json:"tipo"`
}

// DayResult is the per-(employee, date) verdict produced by the analyzer.
// Optional fields stay empty/nil when the day's punches don't determine them.
type DayResult struct {
	Empleado            string `json:"empleado"`
	Fecha               string `json:"fecha"`
	HoraEntrada         string `json:"horaEntrada,omitempty"`
	HoraSalida          string `json:"horaSalida,omitempty"`
	EntradaProgramada   string `json:"entradaProgramada"`
	SalidaProgramada    string `json:"salidaProgramada"`
	TardanzaMin         int    `json:"tardanzaMin"`
	RetiroAnticipadoMin int    `json:"retiroAnticipadoMin"`
	AlmuerzoInicio      string `json:"almuerzoInicio,omitempty"`
	AlmuerzoFin         string `json:"almuerzoFin,omitempty"`
	AlmuerzoDuracionMin *int   `json:"almuerzoDuracionMin,omitempty"`
	AlmuerzoFueraFranja bool   `json:"almuerzoFueraFranja"`
	AlmuerzoExcedido    bool   `json:"almuerzoExcedido"`
	Ausente             bool   `json:"ausente"`
}

// ClockMinutes converts a canonical "HH:MM" value to minutes since midnight.
// Malformed input yields 0; callers feed it normalizer output or validated
// configuration, both of which are canonical by construction.
func ClockMinutes(hora string) int {
	h, m, ok := splitClock(hora)
	if !ok {
		return 0
	}
	return h*60 + m
}

// FormatClock renders minutes since midnight as canonical "HH:MM".
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// ValidClock reports whether s is a canonical 24-hour "HH:MM" value.
func ValidClock(s string) bool {
	_, _, ok := splitClock(s)
	return ok
}

func splitClock(s string) (hour, minute int, ok bool) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 || len(parts[0]) != 2 || len(parts[1]) != 2 {
		return 0, 0, false
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, false
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, false
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, 0, false
	}
	return h, m, true
}
