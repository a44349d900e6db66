package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"asistencia/internal/models"
	"asistencia/internal/schedule"
)

var testHorario = schedule.Horario{
	Entrada:        "08:00",
	Salida:         "17:00",
	AlmuerzoInicio: "12:00",
	AlmuerzoFin:    "15:30",
}

func TestClassify(t *testing.T) {
	e := models.KindEntrada
	s := models.KindSalida

	tests := []struct {
		name  string
		times []string
		want  []models.EventKind
	}{
		{"empty", nil, []models.EventKind{}},
		{"single near entrada", []string{"08:20"}, []models.EventKind{e}},
		{"single near salida", []string{"16:40"}, []models.EventKind{s}},
		{"single equidistant resolves salida", []string{"12:30"}, []models.EventKind{s}},
		{"pair", []string{"09:10", "17:05"}, []models.EventKind{e, s}},
		{"triple middle near lunch start", []string{"08:00", "12:10", "17:00"}, []models.EventKind{e, s, s}},
		{"triple middle near lunch end", []string{"08:00", "15:00", "17:00"}, []models.EventKind{e, e, s}},
		{"quad alternates", []string{"08:00", "12:10", "13:00", "17:00"}, []models.EventKind{e, s, e, s}},
		{"five alternates", []string{"08:00", "10:00", "11:00", "12:00", "17:00"}, []models.EventKind{e, s, e, s, s}},
		{"six alternates", []string{"08:00", "09:00", "10:00", "11:00", "12:00", "17:00"}, []models.EventKind{e, s, e, s, e, s}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.times, testHorario))
		})
	}
}

func TestClassifyTripleMiddleTie(t *testing.T) {
	// Equidistant from both window edges resolves to Entrada (the else branch).
	h := schedule.Horario{Entrada: "08:00", Salida: "17:00", AlmuerzoInicio: "12:00", AlmuerzoFin: "14:00"}
	kinds := Classify([]string{"08:00", "13:00", "17:00"}, h)
	assert.Equal(t, models.KindEntrada, kinds[1])
}

func TestClassifyUsesEmployeeSchedule(t *testing.T) {
	// With a late shift the same lone punch flips to Entrada.
	late := schedule.Horario{Entrada: "14:00", Salida: "22:00", AlmuerzoInicio: "18:00", AlmuerzoFin: "19:00"}
	kinds := Classify([]string{"14:20"}, late)
	assert.Equal(t, models.KindEntrada, kinds[0])

	kinds = Classify([]string{"14:20"}, testHorario)
	assert.Equal(t, models.KindSalida, kinds[0])
}
