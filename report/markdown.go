package report

import (
	"fmt"
	"strings"
)

// RenderMarkdown builds a markdown summary of advices, grouped by table.
func RenderMarkdown(advices []Advice) string {
	var b strings.Builder
	b.WriteString("# Index Recommendations\n\n")

	if len(advices) == 0 {
		b.WriteString("No recommendations.\n")
		return b.String()
	}

	byTable := map[string][]Advice{}
	var tables []string
	for _, a := range advices {
		if _, ok := byTable[a.Table]; !ok {
			tables = append(tables, a.Table)
		}
		byTable[a.Table] = append(byTable[a.Table], a)
	}

	for _, table := range tables {
		fmt.Fprintf(&b, "## %s\n\n", table)
		for _, a := range byTable[table] {
			rec := a.Recommendation
			fmt.Fprintf(&b, "### `%s`\n\n", rec.IndexName)
			fmt.Fprintf(&b, "- Columns: %s\n", strings.Join(rec.Columns, ", "))
			if rec.IndexType != "" {
				fmt.Fprintf(&b, "- Type: %s\n", rec.IndexType)
			}
			if rec.IsUnique {
				b.WriteString("- Unique\n")
			}
			if rec.IsPartial {
				fmt.Fprintf(&b, "- Partial: `%s`\n", rec.PartialCondition)
			}
			if rec.IsFunctional {
				fmt.Fprintf(&b, "- Expression: `%s`\n", rec.FunctionalExpression)
			}
			if len(rec.IncludeColumns) > 0 {
				fmt.Fprintf(&b, "- Include: %s\n", strings.Join(rec.IncludeColumns, ", "))
			}
			if rec.EffectivenessScore > 0 {
				fmt.Fprintf(&b, "- Effectiveness: %d/110\n", rec.EffectivenessScore)
			}
			if rec.EstimatedPerformanceGain != "" {
				fmt.Fprintf(&b, "- Estimated gain: %s\n", rec.EstimatedPerformanceGain)
			}
			if rec.EstimatedQueryCost != "" {
				fmt.Fprintf(&b, "- Estimated cost: %s\n", rec.EstimatedQueryCost)
			}
			if rec.Reason != "" {
				fmt.Fprintf(&b, "- Reason: %s\n", rec.Reason)
			}
			if stmt, err := CreateIndexSQL(a); err == nil {
				fmt.Fprintf(&b, "\n```sql\n%s\n```\n", stmt)
			}
			b.WriteString("\n")
		}
	}

	return b.String()
}
