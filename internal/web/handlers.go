package web

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/tmoller/salesreports/internal/csvio"
	"github.com/tmoller/salesreports/internal/logging"
	"github.com/tmoller/salesreports/internal/report"
)

// ReportInfo is the JSON listing entry for one report.
type ReportInfo struct {
	Key      string   `json:"key"`
	FileName string   `json:"fileName"`
	Header   []string `json:"header"`
}

// handleListReports returns all registered reports.
func (s *Server) handleListReports(w http.ResponseWriter, r *http.Request) {
	defs := report.All()
	infos := make([]ReportInfo, 0, len(defs))
	for _, def := range defs {
		infos = append(infos, ReportInfo{Key: def.Key, FileName: def.FileName, Header: def.Header})
	}
	writeJSON(w, infos)
}

// handleDownloadReport computes one report and streams it as a CSV
// attachment. The report is computed fully before the first byte is
// written, so a failing computation maps cleanly to an error status
// with no partial output.
func (s *Server) handleDownloadReport(w http.ResponseWriter, r *http.Request) {
	reportKey := chi.URLParam(r, "reportKey")
	if reportKey == "" {
		writeError(w, r, http.StatusBadRequest, fmt.Errorf("missing report key"))
		return
	}

	def, ok := report.Get(reportKey)
	if !ok {
		writeError(w, r, http.StatusNotFound, fmt.Errorf("report not found: %s", reportKey))
		return
	}

	runID := uuid.NewString()
	logger := logging.WithFields(r.Context(), "run_id", runID, "report", def.Key)
	start := time.Now()

	rows, err := def.Compute(s.sources)
	if err != nil {
		logger.Error("report failed", "error", err)
		writeError(w, r, statusForError(err), err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, def.FileName))

	if err := csvio.Write(w, def.Header, rows); err != nil {
		// Headers are already sent; nothing left but to log.
		logger.Error("report stream failed", "error", err)
		return
	}

	logger.Info("report served",
		"rows", len(rows),
		"duration_ms", time.Since(start).Milliseconds(),
	)
}

// handleHealthz reports process liveness.
func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok\n"))
}
