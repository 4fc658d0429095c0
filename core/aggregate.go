package core

import (
	"sort"

	"github.com/benchview/benchview/schema"
)

// categoryBucket accumulates per-source accuracy values for one subject
// category while sources are being flattened.
type categoryBucket struct {
	testCount int
	values    map[string][]float64 // sourceID -> that source's accuracies in the category
	order     []string             // sourceIDs in first-contribution order
}

// AggregateCategories groups every source's flat records by subject
// category and computes per-category statistics.
//
// The aggregation is two-level by design: each (category, source) pair is
// first reduced to that source's own average/min/max, and the overall
// figures are computed across those per-source values. A single source with
// disproportionately many tests in a category cannot skew the comparison.
// Categories with zero contributing sources are never emitted.
func AggregateCategories(sources []schema.Source) []schema.CategoryStats {
	buckets := make(map[schema.SubjectCategory]*categoryBucket)

	for _, src := range sources {
		for _, rec := range Flatten(src.RawData) {
			cat := Classify(rec.Category)
			b := buckets[cat]
			if b == nil {
				b = &categoryBucket{values: make(map[string][]float64)}
				buckets[cat] = b
			}
			if _, seen := b.values[src.ID]; !seen {
				b.order = append(b.order, src.ID)
			}
			b.values[src.ID] = append(b.values[src.ID], rec.AccuracyMean)
			b.testCount++
		}
	}

	// Finalize in the fixed label order so that repeated runs over the
	// same input produce bit-for-bit identical output.
	stats := make([]schema.CategoryStats, 0, len(buckets))
	for _, name := range schema.AllSubjectCategories {
		b, ok := buckets[name]
		if !ok {
			continue
		}

		cs := schema.CategoryStats{
			Name:         name,
			TestCount:    b.testCount,
			PerSourceAvg: make(map[string]float64, len(b.values)),
			PerSourceMin: make(map[string]float64, len(b.values)),
			PerSourceMax: make(map[string]float64, len(b.values)),
		}

		avgs := make([]float64, 0, len(b.order))
		mins := make([]float64, 0, len(b.order))
		maxs := make([]float64, 0, len(b.order))
		for _, id := range b.order {
			vals := b.values[id]
			avg := schema.Mean(vals)
			lo, hi := extremes(vals)
			cs.PerSourceAvg[id] = avg
			cs.PerSourceMin[id] = lo
			cs.PerSourceMax[id] = hi
			avgs = append(avgs, avg)
			mins = append(mins, lo)
			maxs = append(maxs, hi)
		}

		cs.OverallAvg = schema.Mean(avgs)
		cs.OverallMin, _ = extremes(mins)
		_, cs.OverallMax = extremes(maxs)
		cs.Variance = schema.PopulationVariance(avgs)

		stats = append(stats, cs)
	}

	return stats
}

// SortCategoryStats orders stats for presentation. The aggregation contract
// leaves ordering unspecified; this is a display concern. Sorts are stable
// so equal keys keep the canonical label order.
func SortCategoryStats(stats []schema.CategoryStats, mode schema.CategorySortMode) {
	switch mode {
	case schema.VarianceSort:
		sort.SliceStable(stats, func(i, j int) bool {
			return stats[i].Variance > stats[j].Variance
		})
	case schema.NameSort:
		sort.SliceStable(stats, func(i, j int) bool {
			return stats[i].Name < stats[j].Name
		})
	case schema.TestsSort:
		sort.SliceStable(stats, func(i, j int) bool {
			return stats[i].TestCount > stats[j].TestCount
		})
	default: // AvgSort
		sort.SliceStable(stats, func(i, j int) bool {
			return stats[i].OverallAvg > stats[j].OverallAvg
		})
	}
}

// extremes returns the min and max of values, or zeros for an empty slice.
func extremes(values []float64) (lo, hi float64) {
	if len(values) == 0 {
		return 0, 0
	}
	lo, hi = values[0], values[0]
	for _, v := range values[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}
