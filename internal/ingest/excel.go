// Package ingest reads uploaded attendance workbooks into raw rows for the
// normalizer. It takes the first sheet, treats the first non-empty row as the
// header row, and keys every following row by those headers.
package ingest

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"asistencia/internal/models"
)

// ReadXLSX parses a workbook into headers plus raw rows.
func ReadXLSX(r io.Reader) ([]string, []models.RawRow, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil, fmt.Errorf("workbook has no sheets")
	}

	cells, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, nil, fmt.Errorf("read sheet %s: %w", sheets[0], err)
	}

	headerIdx := -1
	var headers []string
	for i, row := range cells {
		if rowEmpty(row) {
			continue
		}
		headerIdx = i
		headers = make([]string, len(row))
		for j, cell := range row {
			headers[j] = strings.TrimSpace(cell)
		}
		break
	}
	if headerIdx < 0 {
		return nil, nil, fmt.Errorf("sheet %s is empty", sheets[0])
	}

	var rows []models.RawRow
	for _, row := range cells[headerIdx+1:] {
		if rowEmpty(row) {
			continue
		}
		raw := make(models.RawRow, len(headers))
		for j, name := range headers {
			if name == "" {
				continue
			}
			if j < len(row) {
				raw[name] = row[j]
			}
		}
		rows = append(rows, raw)
	}

	return headers, rows, nil
}

func rowEmpty(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// Header synonyms seen across the punch-clock exports we ingest.
var (
	empleadoNames = []string{"empleado", "nombre", "employee", "name", "trabajador", "personal"}
	fechaNames    = []string{"fecha", "date", "dia", "día"}
	horaNames     = []string{"hora", "time", "horario", "marcacion", "marcación"}
	tipoNames     = []string{"tipo", "type", "evento", "movimiento"}
)

// SuggestMapping proposes a column mapping from header names. The dashboard
// lets the user adjust it before confirming, so a miss here is only a default.
func SuggestMapping(headers []string) models.ColumnMapping {
	var m models.ColumnMapping
	used := make(map[string]bool)

	pick := func(candidates []string) string {
		for _, cand := range candidates {
			for _, h := range headers {
				if h == "" || used[h] {
					continue
				}
				if strings.Contains(strings.ToLower(h), cand) {
					used[h] = true
					return h
				}
			}
		}
		return ""
	}

	m.Empleado = pick(empleadoNames)
	m.Fecha = pick(fechaNames)
	m.Hora = pick(horaNames)
	m.Tipo = pick(tipoNames)
	return m
}
