package schema

// PivotRow is one row of the category-by-source matrix. Cells is keyed by
// source display label; a missing key means that source has no record for
// the category, which is distinct from a zero value.
type PivotRow struct {
	Category string             `json:"category"`
	Cells    map[string]float64 `json:"cells"`
}

// PivotTable is the category-by-source accuracy matrix. Columns preserves
// source order and Rows preserves first-appearance order of categories so
// that tabular and CSV output stay deterministic for a fixed input.
type PivotTable struct {
	Columns []string   `json:"columns"` // Source display labels, in source order
	Rows    []PivotRow `json:"rows"`
}

// Cell returns the value for a (row, column) pair and whether it is present.
func (t *PivotTable) Cell(category, column string) (float64, bool) {
	for i := range t.Rows {
		if t.Rows[i].Category == category {
			v, ok := t.Rows[i].Cells[column]
			return v, ok
		}
	}
	return 0, false
}
