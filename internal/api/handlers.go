package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"asistencia/internal/ingest"
	"asistencia/internal/metrics"
	"asistencia/internal/models"
	"asistencia/internal/report"
)

// handleCreateDataset ingests an uploaded workbook. The column mapping can
// come with the form (campo_empleado etc.); otherwise one is suggested from
// the headers and the dataset stays un-normalized until the mapping is
// confirmed via PUT .../mapping.
func (s *Server) handleCreateDataset(w http.ResponseWriter, r *http.Request) {
	metrics.IncHTTP("dataset_create")

	r.Body = http.MaxBytesReader(w, r.Body, s.maxUpload)
	if err := r.ParseMultipartForm(s.maxUpload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart body")
		return
	}

	file, header, err := r.FormFile("archivo")
	if err != nil {
		file, header, err = r.FormFile("file")
	}
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing file field 'archivo'")
		return
	}
	defer file.Close()

	headers, rows, err := ingest.ReadXLSX(file)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, fmt.Sprintf("cannot read workbook: %v", err))
		return
	}

	mapping := models.ColumnMapping{
		Empleado: r.FormValue("campo_empleado"),
		Fecha:    r.FormValue("campo_fecha"),
		Hora:     r.FormValue("campo_hora"),
		Tipo:     r.FormValue("campo_tipo"),
	}
	if !mapping.Valid() {
		mapping = ingest.SuggestMapping(headers)
	}

	d := &Dataset{
		ID:      uuid.NewString(),
		Archivo: header.Filename,
		Subido:  time.Now(),
		Headers: headers,
		Mapping: mapping,
		Rows:    rows,
		Filas:   len(rows),
	}
	if mapping.Valid() {
		d.Events, d.Descartadas = s.norm.Run(rows, mapping)
		d.Eventos = len(d.Events)
	}
	s.store.Put(d)

	s.logger.Info().
		Str("dataset", d.ID).
		Str("archivo", d.Archivo).
		Int("filas", d.Filas).
		Int("eventos", d.Eventos).
		Msg("dataset cargado")

	writeJSON(w, http.StatusCreated, d)
}

func (s *Server) handleListDatasets(w http.ResponseWriter, r *http.Request) {
	metrics.IncHTTP("dataset_list")
	writeJSON(w, http.StatusOK, map[string]interface{}{"datasets": s.store.List()})
}

// handleUpdateMapping re-normalizes the dataset under a new column mapping
// and bumps the revision so cached reports stop matching.
func (s *Server) handleUpdateMapping(w http.ResponseWriter, r *http.Request) {
	metrics.IncHTTP("mapping_update")

	var mapping models.ColumnMapping
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&mapping); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if !mapping.Valid() {
		writeError(w, http.StatusBadRequest, "mapping must name empleado, fecha and hora columns")
		return
	}

	var updated Dataset
	ok := s.store.Update(r.PathValue("id"), func(d *Dataset) {
		d.Mapping = mapping
		d.Events, d.Descartadas = s.norm.Run(d.Rows, mapping)
		d.Eventos = len(d.Events)
		d.Revision++
		updated = *d
	})
	if !ok {
		writeError(w, http.StatusNotFound, "dataset not found")
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	metrics.IncHTTP("events")

	d, ok := s.store.Get(r.PathValue("id"))
	if !ok {
		writeError(w, http.StatusNotFound, "dataset not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"eventos": d.Events})
}

func (s *Server) handleEmployees(w http.ResponseWriter, r *http.Request) {
	metrics.IncHTTP("employees")

	d, ok := s.store.Get(r.PathValue("id"))
	if !ok {
		writeError(w, http.StatusNotFound, "dataset not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"empleados": report.Employees(d.Events)})
}

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	metrics.IncHTTP("report")

	d, ok := s.store.Get(r.PathValue("id"))
	if !ok {
		writeError(w, http.StatusNotFound, "dataset not found")
		return
	}

	from := r.URL.Query().Get("from")
	to := r.URL.Query().Get("to")

	key := report.Key(d.ID, d.Revision, from, to)
	var results []models.DayResult
	if s.cache.Get(r.Context(), key, &results) {
		writeJSON(w, http.StatusOK, map[string]interface{}{"resultados": results})
		return
	}

	results, err := report.Build(d.Events, from, to, s.horarios)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	metrics.AddDayAnalyses(len(results))
	s.cache.Set(r.Context(), key, results)

	writeJSON(w, http.StatusOK, map[string]interface{}{"resultados": results})
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	metrics.IncHTTP("export")

	d, ok := s.store.Get(r.PathValue("id"))
	if !ok {
		writeError(w, http.StatusNotFound, "dataset not found")
		return
	}

	results, err := report.Build(d.Events, r.URL.Query().Get("from"), r.URL.Query().Get("to"), s.horarios)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	metrics.AddDayAnalyses(len(results))

	buf, err := report.ExportExcel(results)
	if err != nil {
		s.logger.Error().Err(err).Str("dataset", d.ID).Msg("export error")
		writeError(w, http.StatusInternalServerError, "cannot build workbook")
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=asistencia_%s.xlsx", time.Now().Format("20060102")))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}
