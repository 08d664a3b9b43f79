package report

import (
	"github.com/elliotchance/orderedmap/v2"

	"github.com/dbsmedya/logreport/internal/record"
)

// buckets maps each observed group value to the numeric target values
// collected from records sharing it. Insertion order is first-appearance
// order in the loaded record sequence, which is what breaks ranking ties.
type buckets = orderedmap.OrderedMap[record.GroupKey, []float64]

// groupTargetValues walks every loaded record and buckets numeric target
// values by group key. A record contributes only when its group value is a
// present scalar and its target value is a number; anything else is
// silently excluded, never an error. An empty result is a valid outcome.
func (g *Generator) groupTargetValues() (*buckets, map[record.GroupKey]int) {
	grouped := orderedmap.NewOrderedMap[record.GroupKey, []float64]()
	counts := make(map[record.GroupKey]int)

	for _, rec := range g.records {
		key, ok := record.Lookup(rec.Fields, g.field).AsGroupKey()
		if !ok {
			continue
		}
		num, ok := record.Lookup(rec.Fields, g.target).NumberValue()
		if !ok {
			continue
		}

		vals, _ := grouped.Get(key)
		grouped.Set(key, append(vals, num))
		counts[key]++
	}

	return grouped, counts
}
