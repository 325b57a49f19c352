package advisor

import "strings"

// ExtractIndexColumns returns the index-key candidates for a single-table
// query: WHERE columns in condition-priority order, then ORDER BY columns
// (declaration order) that were not already picked up. ORDER BY matching is
// a plain substring test.
func ExtractIndexColumns(sql string, knownColumns []string) []string {
	var columns []string
	picked := map[string]bool{}

	for _, cc := range ClassifyConditions(whereBody(sql), knownColumns) {
		if !picked[cc.Column] {
			picked[cc.Column] = true
			columns = append(columns, cc.Column)
		}
	}

	if order := strings.ToLower(orderByBody(sql)); order != "" {
		for _, col := range knownColumns {
			if picked[col] {
				continue
			}
			if strings.Contains(order, strings.ToLower(col)) {
				picked[col] = true
				columns = append(columns, col)
			}
		}
	}

	return columns
}
