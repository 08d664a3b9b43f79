package report

import (
	"bufio"
	"os"
	"strings"
	"time"

	"github.com/dbsmedya/logreport/internal/logger"
	"github.com/dbsmedya/logreport/internal/record"
)

// Scanner buffer sizes. Structured log lines routinely exceed the bufio
// default of 64KiB once payloads get embedded in them.
const (
	scanInitialBuffer = 64 * 1024
	scanMaxLine       = 4 * 1024 * 1024
)

// loadResult is the accumulator for one load pass: the full ordered record
// sequence plus the union of flattened paths over all kept records. It is
// owned exclusively by one loadSources call.
type loadResult struct {
	records []record.Record
	paths   map[string]struct{}
}

// loadSources reads every source fully into memory, in order. A date
// filter, when set (non-zero), silently drops records whose parsed
// timestamp is missing or falls on a different calendar date; dropped
// records contribute no paths.
func loadSources(files []string, date time.Time, log *logger.Logger) (*loadResult, error) {
	if len(files) == 0 {
		return nil, &ConfigurationError{Message: "provide the path to at least one log file"}
	}

	var missing []string
	for _, path := range files {
		if _, err := os.Stat(path); err != nil {
			missing = append(missing, path)
		}
	}
	if len(missing) > 0 {
		return nil, &NotFoundError{Missing: missing}
	}

	result := &loadResult{paths: make(map[string]struct{})}
	for _, path := range files {
		if err := loadFile(path, date, log, result); err != nil {
			return nil, err
		}
	}
	return result, nil
}

// loadFile appends one source's records to the accumulator. The file handle
// is scoped to this call so it is released on every exit path, including a
// parse failure mid-file.
func loadFile(path string, date time.Time, log *logger.Logger, result *loadResult) error {
	f, err := os.Open(path)
	if err != nil {
		return &NotFoundError{Missing: []string{path}}
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, scanInitialBuffer), scanMaxLine)

	kept := len(result.records)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		fields, err := record.ParseLine([]byte(line))
		if err != nil {
			return &MalformedRecordError{Source: path, Line: lineNum, Err: err}
		}

		rec := record.New(fields)
		if !date.IsZero() && !rec.SameDate(date) {
			continue
		}

		result.records = append(result.records, rec)
		for _, p := range record.FlattenKeys(rec.Fields) {
			result.paths[p] = struct{}{}
		}
	}
	// Scan failures (an oversized line, an unreadable source) carry the
	// source and the line where reading stopped, like parse failures do.
	if err := scanner.Err(); err != nil {
		return &MalformedRecordError{Source: path, Line: lineNum + 1, Err: err}
	}

	log.WithSource(path).Debugw("source loaded",
		"lines", lineNum,
		"records", len(result.records)-kept)
	return nil
}
