package report

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/tmoller/salesreports/internal/csvio"
)

// Generator produces report files from a fixed set of sources. It holds
// no derived state: every Generate call re-reads the datasets, so
// generators are safe to reuse and reports can run in any order.
type Generator struct {
	Sources Sources
	OutDir  string
}

// NewGenerator returns a Generator writing into outDir.
func NewGenerator(src Sources, outDir string) *Generator {
	return &Generator{Sources: src, OutDir: outDir}
}

// Generate computes the report identified by key and writes it to its
// file in OutDir. Returns the output path and the number of data rows.
func (g *Generator) Generate(key string) (string, int, error) {
	def, ok := Get(key)
	if !ok {
		return "", 0, fmt.Errorf("unknown report: %s", key)
	}

	runID := uuid.NewString()
	start := time.Now()
	logger := slog.Default().With("run_id", runID, "report", def.Key)
	logger.Info("report started")

	rows, err := def.Compute(g.Sources)
	if err != nil {
		logger.Error("report failed", "error", err)
		return "", 0, fmt.Errorf("compute %s: %w", def.Key, err)
	}

	path := filepath.Join(g.OutDir, def.FileName)
	if err := csvio.WriteFile(path, def.Header, rows); err != nil {
		logger.Error("report failed", "error", err)
		return "", 0, err
	}

	logger.Info("report written",
		"path", path,
		"rows", len(rows),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return path, len(rows), nil
}

// GenerateAll runs every registered report and returns the written
// paths. It stops at the first failure; a report either fully succeeds
// or leaves no usable output behind.
func (g *Generator) GenerateAll() ([]string, error) {
	defs := All()
	paths := make([]string, 0, len(defs))
	for _, def := range defs {
		path, _, err := g.Generate(def.Key)
		if err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}
