package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClockMinutes(t *testing.T) {
	tests := []struct {
		hora string
		want int
	}{
		{"00:00", 0},
		{"08:15", 495},
		{"12:30", 750},
		{"23:59", 1439},
		{"9:05", 0},  // not canonical
		{"08:5", 0},  // not canonical
		{"24:00", 0}, // out of range
		{"", 0},
	}

	for _, tt := range tests {
		t.Run(tt.hora, func(t *testing.T) {
			assert.Equal(t, tt.want, ClockMinutes(tt.hora))
		})
	}
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "00:00", FormatClock(0))
	assert.Equal(t, "08:05", FormatClock(485))
	assert.Equal(t, "23:59", FormatClock(1439))
}

func TestValidClock(t *testing.T) {
	assert.True(t, ValidClock("08:00"))
	assert.True(t, ValidClock("23:59"))
	assert.False(t, ValidClock("8:00"))
	assert.False(t, ValidClock("08:60"))
	assert.False(t, ValidClock("08:00:00"))
	assert.False(t, ValidClock("ocho"))
}

func TestColumnMappingValid(t *testing.T) {
	m := ColumnMapping{Empleado: "Nombre", Fecha: "Fecha", Hora: "Hora"}
	assert.True(t, m.Valid())

	m.Hora = ""
	assert.False(t, m.Valid())
}
