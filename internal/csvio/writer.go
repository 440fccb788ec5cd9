// Package csvio writes report output in the delimited format the
// reports contract specifies: a header line, then one row per entry
// with fields comma-joined. Fields are written verbatim; the report
// values (ids, decimal totals, space-joined id lists) never contain the
// delimiter, so no escaping is applied.
package csvio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Write writes the header followed by every row to w.
func Write(w io.Writer, header []string, rows [][]string) error {
	bw := bufio.NewWriter(w)

	if err := writeLine(bw, header); err != nil {
		return err
	}
	for _, row := range rows {
		if err := writeLine(bw, row); err != nil {
			return err
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// WriteFile writes a report to path, creating or truncating the file.
func WriteFile(path string, header []string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report file: %w", err)
	}
	if err := Write(f, header, rows); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close report file: %w", err)
	}
	return nil
}

func writeLine(w *bufio.Writer, fields []string) error {
	if _, err := w.WriteString(strings.Join(fields, ",")); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	if err := w.WriteByte('\n'); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
