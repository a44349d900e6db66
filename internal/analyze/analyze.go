// Package analyze computes the per-day attendance verdict for one employee:
// actual in/out times, lateness, early departure, lunch compliance, absence.
package analyze

import (
	"sort"
	"time"

	"asistencia/internal/models"
	"asistencia/internal/schedule"
)

// Day is a pure function of the event list and the schedule configuration.
// It never fails: missing data degrades to zero/false/unset fields.
func Day(events []models.Event, empleado, fecha string, cfg schedule.Config) models.DayResult {
	h := cfg.Resolve(empleado)
	res := models.DayResult{
		Empleado:          empleado,
		Fecha:             fecha,
		EntradaProgramada: h.Entrada,
		SalidaProgramada:  h.Salida,
	}

	var day []models.Event
	for _, ev := range events {
		if ev.Empleado == empleado && ev.Fecha == fecha {
			day = append(day, ev)
		}
	}
	sort.Slice(day, func(i, j int) bool { return day[i].Hora < day[j].Hora })

	if len(day) == 0 {
		res.Ausente = !cfg.EsFranco(empleado, weekdayOf(fecha))
		return res
	}

	entradaProg := models.ClockMinutes(h.Entrada)
	salidaProg := models.ClockMinutes(h.Salida)

	for _, ev := range day {
		if ev.Tipo == models.KindEntrada {
			res.HoraEntrada = ev.Hora
			break
		}
	}
	for i := len(day) - 1; i >= 0; i-- {
		if day[i].Tipo == models.KindSalida {
			res.HoraSalida = day[i].Hora
			break
		}
	}

	if res.HoraEntrada != "" {
		if late := models.ClockMinutes(res.HoraEntrada) - entradaProg; late > 0 {
			res.TardanzaMin = late
		}
	}
	if res.HoraSalida != "" {
		if early := salidaProg - models.ClockMinutes(res.HoraSalida); early > 0 {
			res.RetiroAnticipadoMin = early
		}
	}

	detectAlmuerzo(day, h, &res)
	return res
}

// detectAlmuerzo finds the lunch break: the first Salida inside the configured
// window marks leaving for lunch, and the first strictly later Entrada marks
// the return. A day whose exits all miss the window records no lunch at all.
func detectAlmuerzo(day []models.Event, h schedule.Horario, res *models.DayResult) {
	inicioWin := models.ClockMinutes(h.AlmuerzoInicio)
	finWin := models.ClockMinutes(h.AlmuerzoFin)

	salidaAlmuerzo := -1
	for _, ev := range day {
		if ev.Tipo != models.KindSalida {
			continue
		}
		t := models.ClockMinutes(ev.Hora)
		if t >= inicioWin && t <= finWin {
			salidaAlmuerzo = t
			res.AlmuerzoInicio = ev.Hora
			break
		}
	}
	if salidaAlmuerzo < 0 {
		return
	}

	entradaAlmuerzo := -1
	for _, ev := range day {
		if ev.Tipo != models.KindEntrada {
			continue
		}
		t := models.ClockMinutes(ev.Hora)
		if t > salidaAlmuerzo {
			entradaAlmuerzo = t
			res.AlmuerzoFin = ev.Hora
			break
		}
	}

	if entradaAlmuerzo >= 0 {
		dur := entradaAlmuerzo - salidaAlmuerzo
		res.AlmuerzoDuracionMin = &dur
		if h.AlmuerzoDuracionMin > 0 && dur > h.AlmuerzoDuracionMin {
			res.AlmuerzoExcedido = true
		}
		// The exit is inside the window by construction, so only the return
		// can land outside it.
		if entradaAlmuerzo < inicioWin || entradaAlmuerzo > finWin {
			res.AlmuerzoFueraFranja = true
		}
	}
}

// weekdayOf returns the weekday index (0=Sunday..6=Saturday) of an ISO date,
// or -1 when the date is malformed.
func weekdayOf(fecha string) int {
	t, err := time.Parse("2006-01-02", fecha)
	if err != nil {
		return -1
	}
	return int(t.Weekday())
}
