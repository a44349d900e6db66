package normalize

import (
	"asistencia/internal/models"
	"asistencia/internal/schedule"
)

// Classify infers the kind of each punch in a single (employee, date) group.
// times must be distinct canonical "HH:MM" values sorted ascending. The raw
// type column is deliberately not consulted: source data leaves it blank or
// wrong often enough that position and schedule are the better signal.
func Classify(times []string, h schedule.Horario) []models.EventKind {
	n := len(times)
	kinds := make([]models.EventKind, n)

	switch n {
	case 0:
		return kinds

	case 1:
		// Closer to the scheduled entrada reads as a check-in; ties and
		// everything else read as a check-out.
		t := models.ClockMinutes(times[0])
		entrada := models.ClockMinutes(h.Entrada)
		salida := models.ClockMinutes(h.Salida)
		if absDiff(t, entrada) < absDiff(t, salida) {
			kinds[0] = models.KindEntrada
		} else {
			kinds[0] = models.KindSalida
		}

	case 2:
		kinds[0] = models.KindEntrada
		kinds[1] = models.KindSalida

	case 3:
		// The middle punch is presumed to sit on a lunch boundary: nearer the
		// start of the window it reads as leaving for lunch, otherwise as
		// coming back.
		kinds[0] = models.KindEntrada
		kinds[2] = models.KindSalida
		mid := models.ClockMinutes(times[1])
		inicio := models.ClockMinutes(h.AlmuerzoInicio)
		fin := models.ClockMinutes(h.AlmuerzoFin)
		if absDiff(mid, inicio) < absDiff(mid, fin) {
			kinds[1] = models.KindSalida
		} else {
			kinds[1] = models.KindEntrada
		}

	default:
		// Four punches or more: fixed alternation for the interior, first in,
		// last out. Mid-day punches at this density are too ambiguous for the
		// schedule to help.
		kinds[0] = models.KindEntrada
		kinds[n-1] = models.KindSalida
		for i := 1; i < n-1; i++ {
			if i%2 == 1 {
				kinds[i] = models.KindSalida
			} else {
				kinds[i] = models.KindEntrada
			}
		}
	}

	return kinds
}

func absDiff(a, b int) int {
	if a < b {
		return b - a
	}
	return a - b
}
