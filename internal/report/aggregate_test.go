package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dbsmedya/logreport/internal/record"
)

func TestGroupTargetValues(t *testing.T) {
	gen, err := newSampleGenerator(t, "", "", "")
	require.NoError(t, err)

	grouped, counts := gen.groupTargetValues()

	ep1, _ := record.String("/api/endpoint1/...").AsGroupKey()
	ep2, _ := record.String("/api/endpoint2/...").AsGroupKey()

	vals1, ok := grouped.Get(ep1)
	require.True(t, ok)
	assert.Equal(t, []float64{120, 100, 130}, vals1)
	assert.Equal(t, 3, counts[ep1])

	vals2, ok := grouped.Get(ep2)
	require.True(t, ok)
	assert.Equal(t, []float64{150}, vals2)
	assert.Equal(t, 1, counts[ep2])
}

func TestGroupFirstSeenOrderPreserved(t *testing.T) {
	path := writeLog(t,
		`{"url": "/b", "response_time": 1}`,
		`{"url": "/a", "response_time": 2}`,
		`{"url": "/b", "response_time": 3}`,
	)
	gen, err := NewGenerator(Options{Files: []string{path}})
	require.NoError(t, err)

	grouped, _ := gen.groupTargetValues()

	var order []string
	for el := grouped.Front(); el != nil; el = el.Next() {
		order = append(order, el.Key.Display())
	}
	assert.Equal(t, []string{"/b", "/a"}, order)
}

func TestNonNumericTargetsAreExcluded(t *testing.T) {
	path := writeLog(t,
		`{"url": "/a", "response_time": "not_a_number"}`,
		`{"url": "/a", "response_time": true}`,
		`{"url": "/a", "response_time": null}`,
		`{"url": "/a", "response_time": [1, 2]}`,
		`{"url": "/a", "other": 1}`,
		`{"url": "/a", "response_time": 42}`,
	)
	gen, err := NewGenerator(Options{Files: []string{path}})
	require.NoError(t, err)

	grouped, counts := gen.groupTargetValues()

	key, _ := record.String("/a").AsGroupKey()
	vals, ok := grouped.Get(key)
	require.True(t, ok)
	assert.Equal(t, []float64{42}, vals)
	assert.Equal(t, 1, counts[key])
}

func TestRecordsWithoutGroupValueAreExcluded(t *testing.T) {
	path := writeLog(t,
		`{"response_time": 10, "url": "/a"}`,
		`{"response_time": 20}`,
		`{"response_time": 30, "url": null}`,
	)
	gen, err := NewGenerator(Options{Files: []string{path}})
	require.NoError(t, err)

	grouped, _ := gen.groupTargetValues()
	assert.Equal(t, 1, grouped.Len())
}

func TestHeterogeneousGroupKeys(t *testing.T) {
	path := writeLog(t,
		`{"status": 200, "response_time": 10}`,
		`{"status": "200", "response_time": 20}`,
		`{"status": true, "response_time": 30}`,
		`{"status": 200, "response_time": 40}`,
	)
	gen, err := NewGenerator(Options{
		Files: []string{path},
		Field: "status", Target: "response_time",
	})
	require.NoError(t, err)

	grouped, counts := gen.groupTargetValues()

	// Number 200, string "200" and bool true are three distinct groups.
	assert.Equal(t, 3, grouped.Len())
	numKey, _ := record.Number(200).AsGroupKey()
	assert.Equal(t, 2, counts[numKey])
}

func TestAllInvalidInputYieldsEmptyBuckets(t *testing.T) {
	// Mirrors a pathological log: no usable timestamp, numeric url,
	// non-numeric response_time, numeric-looking nested key.
	path := writeLog(t,
		`{"not_a_@timestamp": "2025-08-10T12:00:00Z", "url": 111, "response_time": "not_a_number", "222": {"subdict": ["not", "a", "dict"]}}`,
	)
	gen, err := NewGenerator(Options{Files: []string{path}})
	require.NoError(t, err)

	require.False(t, gen.records[0].HasTimestamp())
	grouped, counts := gen.groupTargetValues()
	assert.Equal(t, 0, grouped.Len())
	assert.Empty(t, counts)

	// The nested key still flattens.
	assert.Contains(t, gen.fields, "222/subdict")
}
