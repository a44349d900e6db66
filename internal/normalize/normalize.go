// Package normalize turns raw spreadsheet punch rows into an ordered,
// deduplicated, typed event list. Rows that fail to parse are dropped and
// counted, never fatal.
package normalize

import (
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"asistencia/internal/metrics"
	"asistencia/internal/models"
	"asistencia/internal/schedule"
)

type Normalizer struct {
	horarios schedule.Config
	logger   zerolog.Logger
}

func New(horarios schedule.Config, logger zerolog.Logger) *Normalizer {
	return &Normalizer{horarios: horarios, logger: logger}
}

type groupKey struct {
	empleado string
	fecha    string
}

// Run normalizes rows under the given column mapping, returning the events
// plus the number of rows dropped. The result is sorted by employee, then
// date, then time, and the same input always yields the same output.
func (n *Normalizer) Run(rows []models.RawRow, mapping models.ColumnMapping) ([]models.Event, int) {
	metrics.IncNormalizeRun()

	dropped := 0
	groups := make(map[groupKey]map[string]struct{})
	for i, row := range rows {
		empleado := strings.TrimSpace(row[mapping.Empleado])
		if empleado == "" {
			n.drop(i, "empleado_vacio")
			dropped++
			continue
		}
		fecha, ok := ParseFecha(row[mapping.Fecha])
		if !ok {
			n.drop(i, "fecha_invalida")
			dropped++
			continue
		}
		hora, ok := ParseHora(row[mapping.Hora])
		if !ok {
			n.drop(i, "hora_invalida")
			dropped++
			continue
		}

		key := groupKey{empleado: empleado, fecha: fecha}
		if groups[key] == nil {
			groups[key] = make(map[string]struct{})
		}
		groups[key][hora] = struct{}{}
	}

	keys := make([]groupKey, 0, len(groups))
	for key := range groups {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].empleado != keys[j].empleado {
			return keys[i].empleado < keys[j].empleado
		}
		return keys[i].fecha < keys[j].fecha
	})

	var events []models.Event
	for _, key := range keys {
		times := make([]string, 0, len(groups[key]))
		for hora := range groups[key] {
			times = append(times, hora)
		}
		sort.Strings(times) // canonical HH:MM sorts chronologically

		kinds := Classify(times, n.horarios.Resolve(key.empleado))
		for i, hora := range times {
			events = append(events, models.Event{
				Empleado: key.empleado,
				Fecha:    key.fecha,
				Hora:     hora,
				Tipo:     kinds[i],
			})
		}
	}

	metrics.AddEventsEmitted(len(events))
	return events, dropped
}

func (n *Normalizer) drop(row int, reason string) {
	metrics.IncRowDiscarded(reason)
	n.logger.Debug().Int("fila", row).Str("motivo", reason).Msg("fila descartada")
}
