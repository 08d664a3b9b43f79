// Package report implements the log ingestion, validation and aggregation
// engine behind the logreport commands.
package report

import (
	"sort"
	"time"

	"github.com/dbsmedya/logreport/internal/logger"
	"github.com/dbsmedya/logreport/internal/record"
)

// Default grouping and target fields for HTTP access logs.
const (
	DefaultField  = "url"
	DefaultTarget = "response_time"
)

// dateLayout is the accepted shape of the --date filter.
const dateLayout = "2006-01-02"

// Options configures one report engine invocation.
type Options struct {
	Files  []string
	Field  string // grouping field path; DefaultField if empty
	Target string // numeric target field path; DefaultTarget if empty
	Date   string // optional YYYY-MM-DD filter
	Logger *logger.Logger
}

// Generator owns the loaded record sequence for one run. Construction is
// fail-fast: all sources are read and both requested fields validated
// before any aggregation happens.
type Generator struct {
	field  string
	target string

	records []record.Record
	fields  map[string]struct{} // leaf field set
	log     *logger.Logger
}

// NewGenerator loads all sources and validates the requested fields.
func NewGenerator(opts Options) (*Generator, error) {
	g := &Generator{
		field:  opts.Field,
		target: opts.Target,
		log:    opts.Logger,
	}
	if g.field == "" {
		g.field = DefaultField
	}
	if g.target == "" {
		g.target = DefaultTarget
	}
	if g.log == nil {
		g.log = logger.NewDefault()
	}

	date, err := parseDateFilter(opts.Date)
	if err != nil {
		return nil, err
	}

	result, err := loadSources(opts.Files, date, g.log)
	if err != nil {
		return nil, err
	}
	g.records = result.records
	g.fields = leafFields(result.records, result.paths)

	g.log.Debugw("sources loaded",
		"files", len(opts.Files),
		"records", len(g.records),
		"leaf_fields", len(g.fields))

	if err := g.validateFields(); err != nil {
		return nil, err
	}
	return g, nil
}

// Field returns the validated grouping field path.
func (g *Generator) Field() string { return g.field }

// Target returns the validated target field path.
func (g *Generator) Target() string { return g.target }

// ListFields loads the given sources and returns the sorted leaf fields,
// without validating any grouping or target choice. It backs the `fields`
// command so operators can discover what is groupable.
func ListFields(opts Options) ([]string, error) {
	log := opts.Logger
	if log == nil {
		log = logger.NewDefault()
	}

	date, err := parseDateFilter(opts.Date)
	if err != nil {
		return nil, err
	}

	result, err := loadSources(opts.Files, date, log)
	if err != nil {
		return nil, err
	}

	fields := leafFields(result.records, result.paths)
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func parseDateFilter(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	date, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, &InvalidDateError{Input: s}
	}
	return date, nil
}

// leafFields intersects the discovered path union with the leaf-only rule:
// a path whose value is a nested object in even one record is excluded
// entirely, never treated as partially valid.
func leafFields(records []record.Record, paths map[string]struct{}) map[string]struct{} {
	leaves := make(map[string]struct{}, len(paths))
	for p := range paths {
		leaves[p] = struct{}{}
	}
	for _, rec := range records {
		for p := range leaves {
			if record.Lookup(rec.Fields, p).IsObject() {
				delete(leaves, p)
			}
		}
	}
	return leaves
}

// validateFields runs exactly once, after loading and before aggregation.
// Equality is checked first: an equal field/target pair is a configuration
// mistake whether or not the path itself exists in the data.
func (g *Generator) validateFields() error {
	if g.field == g.target {
		return &ConfigurationError{Message: "field and target can't be the same"}
	}
	if _, ok := g.fields[g.field]; !ok {
		return &UnknownFieldError{
			Name:  g.field,
			Role:  "field",
			Valid: g.validChoices(""),
		}
	}
	if _, ok := g.fields[g.target]; !ok {
		return &UnknownFieldError{
			Name:  g.target,
			Role:  "target",
			Valid: g.validChoices(g.field),
		}
	}
	return nil
}

// validChoices enumerates the leaf fields for error messages, sorted for
// determinism, minus the given exclusion.
func (g *Generator) validChoices(exclude string) []string {
	choices := make([]string, 0, len(g.fields))
	for name := range g.fields {
		if name == exclude {
			continue
		}
		choices = append(choices, name)
	}
	sort.Strings(choices)
	return choices
}
