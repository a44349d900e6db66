package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"asistencia/internal/models"
	"asistencia/internal/schedule"
)

func testConfig() schedule.Config {
	return schedule.Config{
		Defaults: schedule.Horario{
			Entrada:             "08:00",
			Salida:              "17:00",
			AlmuerzoInicio:      "12:00",
			AlmuerzoFin:         "15:30",
			AlmuerzoDuracionMin: 45,
			DiasFrancos:         []int{0},
		},
	}
}

func testEvents() []models.Event {
	return []models.Event{
		{Empleado: "GOMEZ ANA", Fecha: "2024-03-05", Hora: "08:15", Tipo: models.KindEntrada},
		{Empleado: "GOMEZ ANA", Fecha: "2024-03-05", Hora: "17:00", Tipo: models.KindSalida},
		{Empleado: "PEREZ JUAN", Fecha: "2024-03-06", Hora: "08:00", Tipo: models.KindEntrada},
	}
}

func TestEmployees(t *testing.T) {
	assert.Equal(t, []string{"GOMEZ ANA", "PEREZ JUAN"}, Employees(testEvents()))
	assert.Empty(t, Employees(nil))
}

func TestDateRange(t *testing.T) {
	from, to := DateRange(testEvents())
	assert.Equal(t, "2024-03-05", from)
	assert.Equal(t, "2024-03-06", to)
}

func TestBuild(t *testing.T) {
	results, err := Build(testEvents(), "2024-03-05", "2024-03-06", testConfig())
	require.NoError(t, err)

	// Two employees, two dates each, ordered employee then date.
	require.Len(t, results, 4)
	assert.Equal(t, "GOMEZ ANA", results[0].Empleado)
	assert.Equal(t, "2024-03-05", results[0].Fecha)
	assert.Equal(t, 15, results[0].TardanzaMin)

	assert.Equal(t, "GOMEZ ANA", results[1].Empleado)
	assert.Equal(t, "2024-03-06", results[1].Fecha)
	assert.True(t, results[1].Ausente) // Wednesday, no punches

	assert.Equal(t, "PEREZ JUAN", results[2].Empleado)
	assert.True(t, results[2].Ausente)
	assert.False(t, results[3].Ausente)
}

func TestBuildDerivesRange(t *testing.T) {
	results, err := Build(testEvents(), "", "", testConfig())
	require.NoError(t, err)
	assert.Len(t, results, 4)
}

func TestBuildEmptyEvents(t *testing.T) {
	results, err := Build(nil, "", "", testConfig())
	require.NoError(t, err)
	assert.Nil(t, results)
}

func TestBuildInvalidRange(t *testing.T) {
	_, err := Build(testEvents(), "2024-03-07", "2024-03-05", testConfig())
	assert.Error(t, err)

	_, err = Build(testEvents(), "mañana", "2024-03-05", testConfig())
	assert.Error(t, err)
}
