// Package schedule holds the working-hours configuration and resolves the
// effective schedule for an employee: defaults overlaid with the employee's
// partial override, plus the union of default and personal days off.
package schedule

import (
	"fmt"

	"asistencia/internal/models"
)

// Horario is a complete daily schedule. Times are canonical "HH:MM".
type Horario struct {
	Entrada             string `yaml:"entrada" json:"entrada"`
	Salida              string `yaml:"salida" json:"salida"`
	AlmuerzoInicio      string `yaml:"almuerzo_inicio" json:"almuerzoInicio"`
	AlmuerzoFin         string `yaml:"almuerzo_fin" json:"almuerzoFin"`
	AlmuerzoDuracionMin int    `yaml:"almuerzo_duracion_min" json:"almuerzoDuracionMin"`
	DiasFrancos         []int  `yaml:"dias_francos" json:"diasFrancos"` // 0=Sunday .. 6=Saturday
}

// Override is a partial per-employee schedule. Empty/nil fields fall back to
// the defaults; FrancosExtra adds to the default days off, never replaces.
type Override struct {
	Entrada             string `yaml:"entrada,omitempty" json:"entrada,omitempty"`
	Salida              string `yaml:"salida,omitempty" json:"salida,omitempty"`
	AlmuerzoInicio      string `yaml:"almuerzo_inicio,omitempty" json:"almuerzoInicio,omitempty"`
	AlmuerzoFin         string `yaml:"almuerzo_fin,omitempty" json:"almuerzoFin,omitempty"`
	AlmuerzoDuracionMin *int   `yaml:"almuerzo_duracion_min,omitempty" json:"almuerzoDuracionMin,omitempty"`
	FrancosExtra        []int  `yaml:"francos_extra,omitempty" json:"francosExtra,omitempty"`
}

// Config is the full schedule configuration surface.
type Config struct {
	Defaults  Horario             `yaml:"defaults" json:"defaults"`
	Empleados map[string]Override `yaml:"empleados,omitempty" json:"empleados,omitempty"`
}

// Default returns the stock schedule used when the configuration file leaves
// fields unset.
func Default() Horario {
	return Horario{
		Entrada:             "08:00",
		Salida:              "17:00",
		AlmuerzoInicio:      "12:00",
		AlmuerzoFin:         "15:30",
		AlmuerzoDuracionMin: 45,
		DiasFrancos:         []int{0}, // Sunday
	}
}

// ApplyDefaults fills any unset default fields from Default().
func (c *Config) ApplyDefaults() {
	d := Default()
	if c.Defaults.Entrada == "" {
		c.Defaults.Entrada = d.Entrada
	}
	if c.Defaults.Salida == "" {
		c.Defaults.Salida = d.Salida
	}
	if c.Defaults.AlmuerzoInicio == "" {
		c.Defaults.AlmuerzoInicio = d.AlmuerzoInicio
	}
	if c.Defaults.AlmuerzoFin == "" {
		c.Defaults.AlmuerzoFin = d.AlmuerzoFin
	}
	if c.Defaults.AlmuerzoDuracionMin <= 0 {
		c.Defaults.AlmuerzoDuracionMin = d.AlmuerzoDuracionMin
	}
	if c.Defaults.DiasFrancos == nil {
		c.Defaults.DiasFrancos = d.DiasFrancos
	}
}

// Validate checks every configured time and weekday index.
func (c *Config) Validate() error {
	if err := validHorario("defaults", c.Defaults.Entrada, c.Defaults.Salida,
		c.Defaults.AlmuerzoInicio, c.Defaults.AlmuerzoFin); err != nil {
		return err
	}
	if err := validFrancos("defaults", c.Defaults.DiasFrancos); err != nil {
		return err
	}
	for name, ov := range c.Empleados {
		if err := validHorario(name, ov.Entrada, ov.Salida, ov.AlmuerzoInicio, ov.AlmuerzoFin); err != nil {
			return err
		}
		if err := validFrancos(name, ov.FrancosExtra); err != nil {
			return err
		}
	}
	return nil
}

func validHorario(scope string, times ...string) error {
	for _, t := range times {
		if t != "" && !models.ValidClock(t) {
			return fmt.Errorf("horario %s: invalid time %q (expected HH:MM)", scope, t)
		}
	}
	return nil
}

func validFrancos(scope string, days []int) error {
	for _, d := range days {
		if d < 0 || d > 6 {
			return fmt.Errorf("horario %s: invalid weekday %d (expected 0..6)", scope, d)
		}
	}
	return nil
}

// Resolve returns the effective schedule for an employee: the defaults with
// any override fields applied on top.
func (c Config) Resolve(empleado string) Horario {
	h := c.Defaults
	ov, ok := c.Empleados[empleado]
	if !ok {
		return h
	}
	if ov.Entrada != "" {
		h.Entrada = ov.Entrada
	}
	if ov.Salida != "" {
		h.Salida = ov.Salida
	}
	if ov.AlmuerzoInicio != "" {
		h.AlmuerzoInicio = ov.AlmuerzoInicio
	}
	if ov.AlmuerzoFin != "" {
		h.AlmuerzoFin = ov.AlmuerzoFin
	}
	if ov.AlmuerzoDuracionMin != nil {
		h.AlmuerzoDuracionMin = *ov.AlmuerzoDuracionMin
	}
	return h
}

// DiasFrancos returns the effective days-off set for an employee: the default
// set plus the employee's personal extras.
func (c Config) DiasFrancos(empleado string) map[int]bool {
	francos := make(map[int]bool, len(c.Defaults.DiasFrancos))
	for _, d := range c.Defaults.DiasFrancos {
		francos[d] = true
	}
	if ov, ok := c.Empleados[empleado]; ok {
		for _, d := range ov.FrancosExtra {
			francos[d] = true
		}
	}
	return francos
}

// EsFranco reports whether the weekday (0=Sunday..6=Saturday) is a day off
// for the employee.
func (c Config) EsFranco(empleado string, weekday int) bool {
	return c.DiasFrancos(empleado)[weekday]
}
