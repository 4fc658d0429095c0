package schema

import "fmt"

// Label builds the display label for a source, e.g.
// "llama3-8b (no-rag) @ 2024-05-01T10:00:00Z [official]".
// The variance suffix is omitted for the default variance. Two sources with
// identical metadata produce identical labels; consumers that key by label
// (the pivot builder) resolve such collisions last-write-wins.
func (s Source) Label() string {
	label := s.ModelName
	if s.Variance != "" && s.Variance != DefaultVariance {
		label += " (" + s.Variance + ")"
	}
	label += " @ " + s.Timestamp
	if s.IsOfficial {
		label += " [official]"
	}
	return label
}

// FormatValue renders an accuracy fraction for display. With percent set,
// the 0-1 fraction is shown on a 0-100 scale with two decimals; otherwise
// the raw fraction is shown with four. The stored value is never scaled.
func FormatValue(x float64, percent bool) string {
	if percent {
		return fmt.Sprintf("%.2f", x*100)
	}
	return fmt.Sprintf("%.4f", x)
}

// Mean returns the arithmetic mean of values, or 0 for an empty slice.
// The empty guard is deliberate: downstream consumers expect 0, not NaN.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// PopulationVariance returns the biased (divide by N) variance of values,
// or 0 for an empty slice.
func PopulationVariance(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	mean := Mean(values)
	var sum float64
	for _, v := range values {
		d := v - mean
		sum += d * d
	}
	return sum / float64(len(values))
}
