package report

import (
	"fmt"
	"math"
	"sort"

	"github.com/dbsmedya/logreport/internal/record"
)

// Op selects the aggregate statistic. Dispatch is an explicit switch over
// exactly two reducers.
type Op int

const (
	OpAverage Op = iota
	OpMedian
)

// ParseOp maps a report name from the command surface to an operation.
func ParseOp(name string) (Op, error) {
	switch name {
	case "average":
		return OpAverage, nil
	case "median":
		return OpMedian, nil
	default:
		return 0, fmt.Errorf("unknown report %q (choose average or median)", name)
	}
}

// Row is one ranked output line.
type Row struct {
	Rank  int
	Group string
	Count int
	Stat  float64
}

// Result is what the engine hands to the renderer: either ranked rows with
// headers, or an informational message when no record qualified.
type Result struct {
	Headers []string
	Rows    []Row
	Message string // set instead of rows when no data qualified
}

// Empty reports whether no record qualified for any bucket.
func (r *Result) Empty() bool { return r.Message != "" }

// Generate aggregates the loaded records and reduces each bucket with the
// chosen statistic. Rows are ordered by descending sample count; ties keep
// the order in which group values were first encountered.
func (g *Generator) Generate(op Op) *Result {
	grouped, counts := g.groupTargetValues()

	if grouped.Len() == 0 {
		return &Result{
			Message: fmt.Sprintf("No valid data found for field %q and target %q", g.field, g.target),
		}
	}

	type bucket struct {
		key  record.GroupKey
		vals []float64
	}
	ordered := make([]bucket, 0, grouped.Len())
	for el := grouped.Front(); el != nil; el = el.Next() {
		ordered = append(ordered, bucket{key: el.Key, vals: el.Value})
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		return counts[ordered[i].key] > counts[ordered[j].key]
	})

	rows := make([]Row, 0, len(ordered))
	for i, b := range ordered {
		var stat float64
		switch op {
		case OpMedian:
			stat = median(b.vals)
		default:
			stat = mean(b.vals)
		}
		rows = append(rows, Row{
			Rank:  i + 1,
			Group: b.key.Display(),
			Count: counts[b.key],
			Stat:  round3(stat),
		})
	}

	statHeader := "avg_" + g.target
	if op == OpMedian {
		statHeader = "med_" + g.target
	}

	g.log.Debugw("report generated", "groups", len(rows), "stat", statHeader)

	return &Result{
		Headers: []string{"", g.field, "total", statHeader},
		Rows:    rows,
	}
}

func mean(vals []float64) float64 {
	sum := 0.0
	for _, v := range vals {
		sum += v
	}
	return sum / float64(len(vals))
}

// median is the conventional statistical median: the middle value, or the
// mean of the two middle values for even-length input.
func median(vals []float64) float64 {
	sorted := make([]float64, len(vals))
	copy(sorted, vals)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	return (sorted[mid-1] + sorted[mid]) / 2
}

// round3 rounds to 3 decimal places for display; everything upstream keeps
// full float64 precision.
func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
