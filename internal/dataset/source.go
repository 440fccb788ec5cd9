package dataset

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Source is a restartable sequence of raw dataset lines. Each Open call
// returns a fresh reader positioned at the start, so independent report
// computations can re-read the same dataset without coordination.
type Source interface {
	Open() (io.ReadCloser, error)
}

// FileSource reads a dataset from a file on disk.
type FileSource struct {
	Path string
}

func (s FileSource) Open() (io.ReadCloser, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	return f, nil
}

// StringSource serves a dataset from an in-memory string. Used by tests
// and by callers that already hold the raw bytes.
type StringSource struct {
	Data string
}

func (s StringSource) Open() (io.ReadCloser, error) {
	return io.NopCloser(strings.NewReader(s.Data)), nil
}

// EachRecord opens src, skips the header line, and calls fn once per
// data line with its 1-based line number. The read handle is closed on
// every return path. Iteration stops at the first error from fn, which
// is returned as-is; a MalformedRecordError returned by fn gets its
// Line filled in here.
func EachRecord(src Source, fn func(line string, lineNum int) error) error {
	r, err := src.Open()
	if err != nil {
		return err
	}
	defer r.Close()

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		if lineNum == 1 {
			// Header line.
			continue
		}
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		if err := fn(line, lineNum); err != nil {
			if malformed, ok := err.(*MalformedRecordError); ok && malformed.Line == 0 {
				malformed.Line = lineNum
			}
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read dataset: %w", err)
	}
	return nil
}

// EachOrder parses every data line of an orders dataset. Products and
// customers have no equivalent helper: their consumers filter rows by
// id before deciding whether to parse the rest of the record.
func EachOrder(src Source, fn func(Order) error) error {
	return EachRecord(src, func(line string, _ int) error {
		order, err := ParseOrder(line)
		if err != nil {
			return err
		}
		return fn(order)
	})
}
