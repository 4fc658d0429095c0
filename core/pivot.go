package core

import "github.com/benchview/benchview/schema"

// BuildPivot builds the category-by-source wide table consumed by tabular
// display and CSV export. Rows are keyed by the fine-grained flat-record
// category (not the coarse subject category) and keep first-appearance
// order; columns are source display labels in source order.
//
// Two sources producing the same display label collide: the later source
// overwrites the earlier cell.
func BuildPivot(sources []schema.Source) *schema.PivotTable {
	table := &schema.PivotTable{
		Columns: make([]string, 0, len(sources)),
		Rows:    make([]schema.PivotRow, 0),
	}
	seenCols := make(map[string]struct{}, len(sources))
	rowIndex := make(map[string]int)

	for _, src := range sources {
		label := src.Label()
		if _, ok := seenCols[label]; !ok {
			seenCols[label] = struct{}{}
			table.Columns = append(table.Columns, label)
		}

		for _, rec := range Flatten(src.RawData) {
			i, ok := rowIndex[rec.Category]
			if !ok {
				i = len(table.Rows)
				rowIndex[rec.Category] = i
				table.Rows = append(table.Rows, schema.PivotRow{
					Category: rec.Category,
					Cells:    make(map[string]float64),
				})
			}
			table.Rows[i].Cells[label] = rec.AccuracyMean
		}
	}

	return table
}
