package trace

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// CompletionTimesFile is the per-protocol trace file written by the simulator.
const CompletionTimesFile = "completion-times.txt"

var (
	// ErrTraceNotFound wraps fs.ErrNotExist when the expected trace file is absent.
	ErrTraceNotFound = errors.New("trace file not found")
	// ErrMalformedRecord is the cause of every *ParseError.
	ErrMalformedRecord = errors.New("malformed trace record")
	// ErrNoRecords is returned for a trace without a single record.
	ErrNoRecords = errors.New("trace has no records")
)

// Trials maps a flow count to the completion times (ms) of every trial run with that
// flow count. Duplicates are preserved; order within a slice is file order.
type Trials map[float64][]int64

// Records returns the total number of trial records.
func (t Trials) Records() int {
	n := 0
	for _, times := range t {
		n += len(times)
	}
	return n
}

// ParseError reports the offending line of a trace.
type ParseError struct {
	Path string // empty when parsing a bare reader
	Line int
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	loc := fmt.Sprintf("line %d", e.Line)
	if e.Path != "" {
		loc = e.Path + ":" + strconv.Itoa(e.Line)
	}
	return fmt.Sprintf("%s: %v: %q: %v", loc, ErrMalformedRecord, e.Text, e.Err)
}

// Unwrap exposes both ErrMalformedRecord and the underlying cause.
func (e *ParseError) Unwrap() []error { return []error{ErrMalformedRecord, e.Err} }

// Path returns <dir>/<protocol>/completion-times.txt.
func Path(dir string, p Protocol) string {
	return filepath.Join(dir, string(p), CompletionTimesFile)
}

// ReadCompletionTimes opens and parses the trace of protocol p under dir.
func ReadCompletionTimes(dir string, p Protocol) (Trials, error) {
	path := Path(dir, p)
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w for %s: %w", ErrTraceNotFound, p, err)
		}
		return nil, fmt.Errorf("open trace for %s: %w", p, err)
	}
	defer f.Close()
	trials, err := Parse(f)
	if err != nil {
		var pe *ParseError
		if errors.As(err, &pe) {
			pe.Path = path
			return nil, pe
		}
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return trials, nil
}

// Parse reads <flowCount>:<completionTimeMs> lines until EOF. Any malformed line
// aborts parsing; nothing is skipped.
func Parse(r io.Reader) (Trials, error) {
	trials := Trials{}
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		flows, ms, err := parseRecord(line)
		if err != nil {
			return nil, &ParseError{Line: lineNo, Text: line, Err: err}
		}
		trials[flows] = append(trials[flows], ms)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(trials) == 0 {
		return nil, ErrNoRecords
	}
	return trials, nil
}

func parseRecord(line string) (float64, int64, error) {
	fields := strings.Split(line, ":")
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("expected 2 colon-separated fields, got %d", len(fields))
	}
	flows, err := strconv.ParseFloat(strings.TrimSpace(fields[0]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid flow count: %w", err)
	}
	if math.IsNaN(flows) || math.IsInf(flows, 0) {
		return 0, 0, fmt.Errorf("flow count %v is not finite", flows)
	}
	ms, err := strconv.ParseInt(strings.TrimSpace(fields[1]), 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid completion time: %w", err)
	}
	if ms < 0 {
		return 0, 0, fmt.Errorf("negative completion time %d", ms)
	}
	return flows, ms, nil
}
