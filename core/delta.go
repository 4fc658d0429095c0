package core

import (
	"math"
	"sort"

	"github.com/benchview/benchview/schema"
)

// ComputeDeltas computes pairwise baseline-vs-candidate differences per
// category. Join semantics are inner: a row is emitted only for categories
// present in both the baseline and the candidate, so no partial or NaN
// deltas exist. Candidate records with no baseline counterpart are dropped.
//
// Duplicate categories within the baseline itself are not expected in
// well-formed input; the lookup resolves them last-write-wins rather than
// failing.
func ComputeDeltas(baseline schema.Source, candidates []schema.Source) []schema.DeltaRow {
	base := make(map[string]float64)
	for _, rec := range Flatten(baseline.RawData) {
		base[rec.Category] = rec.AccuracyMean
	}

	rows := make([]schema.DeltaRow, 0)
	for _, cand := range candidates {
		label := cand.Label()
		for _, rec := range Flatten(cand.RawData) {
			bv, ok := base[rec.Category]
			if !ok {
				continue
			}
			delta := rec.AccuracyMean - bv
			rows = append(rows, schema.DeltaRow{
				Category:       rec.Category,
				Baseline:       bv,
				Candidate:      rec.AccuracyMean,
				Delta:          delta,
				AbsDelta:       math.Abs(delta),
				CandidateLabel: label,
			})
		}
	}
	return rows
}

// FilterByThreshold keeps rows whose absolute delta is at least the
// threshold. The boundary is inclusive.
func FilterByThreshold(rows []schema.DeltaRow, threshold float64) []schema.DeltaRow {
	filtered := make([]schema.DeltaRow, 0, len(rows))
	for _, r := range rows {
		if r.AbsDelta >= threshold {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// SortDeltas orders rows in place. All sorts are stable so rows comparing
// equal keep their input order.
func SortDeltas(rows []schema.DeltaRow, mode schema.DeltaSortMode) {
	switch mode {
	case schema.DeltaDescSort:
		sort.SliceStable(rows, func(i, j int) bool {
			return rows[i].Delta > rows[j].Delta
		})
	case schema.DeltaAscSort:
		sort.SliceStable(rows, func(i, j int) bool {
			return rows[i].Delta < rows[j].Delta
		})
	case schema.CategorySort:
		sort.SliceStable(rows, func(i, j int) bool {
			return rows[i].Category < rows[j].Category
		})
	default: // AbsDescSort
		sort.SliceStable(rows, func(i, j int) bool {
			return rows[i].AbsDelta > rows[j].AbsDelta
		})
	}
}

// SummarizeDeltas computes high-level figures across a set of delta rows.
func SummarizeDeltas(rows []schema.DeltaRow) schema.DeltaSummary {
	var summary schema.DeltaSummary
	for _, r := range rows {
		summary.NetDelta += r.Delta
		switch {
		case r.Delta > 0:
			summary.Improved++
		case r.Delta < 0:
			summary.Regressed++
		default:
			summary.Unchanged++
		}
	}
	return summary
}
