package report

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"asistencia/internal/models"
)

const sheetName = "Asistencia"

var exportColumns = []string{
	"Empleado", "Fecha", "Entrada", "Salida",
	"Entrada programada", "Salida programada",
	"Tardanza (min)", "Retiro anticipado (min)",
	"Salida almuerzo", "Regreso almuerzo", "Almuerzo (min)",
	"Almuerzo fuera de franja", "Almuerzo excedido", "Ausente",
}

// ExportExcel renders the day results as an .xlsx workbook.
func ExportExcel(results []models.DayResult) (*bytes.Buffer, error) {
	w := &sheetWriter{file: excelize.NewFile()}
	defer w.file.Close()

	if err := w.addSheet(sheetName); err != nil {
		return nil, err
	}
	if err := w.writeHeader(exportColumns); err != nil {
		return nil, err
	}
	for _, r := range results {
		if err := w.writeRow(resultRow(r)); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := w.file.Write(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return &buf, nil
}

func resultRow(r models.DayResult) []interface{} {
	almuerzo := ""
	if r.AlmuerzoDuracionMin != nil {
		almuerzo = fmt.Sprintf("%d", *r.AlmuerzoDuracionMin)
	}
	return []interface{}{
		r.Empleado, r.Fecha, r.HoraEntrada, r.HoraSalida,
		r.EntradaProgramada, r.SalidaProgramada,
		r.TardanzaMin, r.RetiroAnticipadoMin,
		r.AlmuerzoInicio, r.AlmuerzoFin, almuerzo,
		siNo(r.AlmuerzoFueraFranja), siNo(r.AlmuerzoExcedido), siNo(r.Ausente),
	}
}

func siNo(b bool) string {
	if b {
		return "Sí"
	}
	return "No"
}

// sheetWriter is a row cursor over one workbook.
type sheetWriter struct {
	file  *excelize.File
	sheet string
	row   int
}

func (w *sheetWriter) addSheet(name string) error {
	// Excel caps sheet names at 31 chars.
	if len(name) > 31 {
		name = name[:31]
	}
	if w.sheet == "" {
		w.file.SetSheetName(w.file.GetSheetName(0), name)
	} else {
		if _, err := w.file.NewSheet(name); err != nil {
			return fmt.Errorf("create sheet %s: %w", name, err)
		}
	}
	w.sheet = name
	w.row = 1
	return nil
}

func (w *sheetWriter) writeHeader(columns []string) error {
	cells := make([]interface{}, len(columns))
	for i, c := range columns {
		cells[i] = c
	}
	if err := w.writeCells(cells); err != nil {
		return err
	}
	style, err := w.file.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err == nil {
		start, _ := excelize.CoordinatesToCellName(1, w.row)
		end, _ := excelize.CoordinatesToCellName(len(columns), w.row)
		_ = w.file.SetCellStyle(w.sheet, start, end, style)
	}
	w.row++
	return nil
}

func (w *sheetWriter) writeRow(values []interface{}) error {
	if err := w.writeCells(values); err != nil {
		return err
	}
	w.row++
	return nil
}

func (w *sheetWriter) writeCells(values []interface{}) error {
	for i, v := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, w.row)
		if err != nil {
			return err
		}
		if err := w.file.SetCellValue(w.sheet, cell, v); err != nil {
			return err
		}
	}
	return nil
}
