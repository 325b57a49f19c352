package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/indexo-dev/indexo/advisor"
	"github.com/indexo-dev/indexo/loader"
	"github.com/indexo-dev/indexo/report"
	"github.com/indexo-dev/indexo/schema"
	"github.com/indexo-dev/indexo/utils"
)

var (
	adviseQuery  string
	adviseSchema string
	adviseTable  string
	adviseFormat string
)

func init() {
	adviseCmd.Flags().StringVarP(&adviseQuery, "query", "q", "", "SQL query to analyze (required)")
	adviseCmd.Flags().StringVarP(&adviseSchema, "schema", "s", "", "Schema YAML file with known columns")
	adviseCmd.Flags().StringVarP(&adviseTable, "table", "t", "", "Table to advise against (default: inferred from FROM clause)")
	adviseCmd.Flags().StringVarP(&adviseFormat, "format", "f", "text", "Output format (text, table, json)")
}

var adviseCmd = &cobra.Command{
	Use:   "advise",
	Short: "Recommend indexes for a single SQL query",
	Long: `Analyze one SQL query and recommend indexes for it.

JOIN queries are analyzed per touched table; single-table queries are
matched against the column list of the table in the schema file.

Examples:
  indexo advise -q "SELECT * FROM users WHERE email = $1"
  indexo advise -q "..." --table orders --schema custom.yaml
  indexo advise -q "..." --format json
`,
	Run: func(cmd *cobra.Command, args []string) {
		if adviseQuery == "" {
			fmt.Println("❌ --query is required")
			os.Exit(1)
		}

		schemaFile := adviseSchema
		if schemaFile == "" {
			schemaFile = utils.SchemaFile()
		}

		// JOIN queries need no schema; the single-table path does.
		models, err := loader.LoadModelsFromYAML(schemaFile)
		if err != nil && !isJoinQuery(adviseQuery) {
			fmt.Println("❌ Loading schema:", err)
			os.Exit(1)
		}

		advices, err := adviseOne(adviseQuery, adviseTable, models)
		if err != nil {
			fmt.Println("❌", err)
			os.Exit(1)
		}

		if len(advices) == 0 {
			fmt.Println("✅ No index recommendation for this query.")
			return
		}

		printAdvices(advices, adviseFormat)
	},
}

// adviseOne runs a single query through the JOIN or single-table path.
func adviseOne(query, tableFlag string, models []schema.Model) ([]report.Advice, error) {
	if isJoinQuery(query) {
		aliases := advisor.ResolveAliases(query)
		var advices []report.Advice
		for _, rec := range advisor.RecommendForJoin(query, aliases) {
			advices = append(advices, report.FromJoin(query, rec))
		}
		return advices, nil
	}

	tableName, columns, ok := resolveTable(query, tableFlag, models)
	if !ok {
		return nil, fmt.Errorf("cannot determine table for query; pass --table or add it to the schema file")
	}

	var advices []report.Advice
	for _, rec := range advisor.RecommendForSingleTable(query, columns) {
		advices = append(advices, report.Advice{
			Table:          tableName,
			Query:          query,
			Recommendation: rec,
		})
	}
	return advices, nil
}

// resolveTable picks the target table and its known columns, either from
// the flag or from the query's FROM clause resolved against the schema.
func resolveTable(query, tableFlag string, models []schema.Model) (string, []string, bool) {
	if tableFlag != "" {
		if m := schema.FindModel(models, tableFlag); m != nil {
			return tableFlag, m.ColumnNames(), true
		}
		return "", nil, false
	}

	aliases := advisor.ResolveAliases(query)
	for _, table := range aliases {
		if m := schema.FindModel(models, table); m != nil {
			return table, m.ColumnNames(), true
		}
	}
	return "", nil, false
}

func printAdvices(advices []report.Advice, format string) {
	switch format {
	case "json":
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(advices); err != nil {
			fmt.Println("❌ Encoding JSON:", err)
			os.Exit(1)
		}
	case "table":
		printAdviceTable(advices)
	default:
		printAdviceText(advices)
	}
}

func printAdviceText(advices []report.Advice) {
	green := color.New(color.FgGreen, color.Bold)

	for i, a := range advices {
		rec := a.Recommendation
		green.Printf("\n💡 Recommendation %d: %s\n", i+1, rec.IndexName)
		fmt.Printf("   Table:    %s\n", a.Table)
		fmt.Printf("   Columns:  %s\n", strings.Join(rec.Columns, ", "))
		if rec.IndexType != "" {
			fmt.Printf("   Type:     %s\n", rec.IndexType)
		}
		if rec.IsUnique {
			fmt.Println("   Unique:   yes")
		}
		if rec.IsPartial {
			fmt.Printf("   Partial:  WHERE %s\n", rec.PartialCondition)
		}
		if rec.IsFunctional {
			fmt.Printf("   Function: %s\n", rec.FunctionalExpression)
		}
		if len(rec.IncludeColumns) > 0 {
			fmt.Printf("   Include:  %s\n", strings.Join(rec.IncludeColumns, ", "))
		}
		if rec.EffectivenessScore > 0 {
			fmt.Printf("   Score:    %d/110\n", rec.EffectivenessScore)
		}
		if rec.EstimatedPerformanceGain != "" {
			fmt.Printf("   Gain:     %s\n", rec.EstimatedPerformanceGain)
		}
		if rec.EstimatedQueryCost != "" {
			fmt.Printf("   Cost:     %s\n", rec.EstimatedQueryCost)
		}
		if rec.Reason != "" {
			fmt.Printf("   Reason:   %s\n", rec.Reason)
		}
		if stmt, err := report.CreateIndexSQL(a); err == nil {
			fmt.Printf("   SQL:      %s\n", stmt)
		}
		for _, hint := range rec.DatabaseHints {
			fmt.Printf("   • %s\n", hint)
		}
	}
	fmt.Println()
}

func printAdviceTable(advices []report.Advice) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"#", "Table", "Index", "Columns", "Type", "Score", "Gain", "Cost"})
	for i, a := range advices {
		rec := a.Recommendation
		t.AppendRow(table.Row{
			i + 1,
			a.Table,
			rec.IndexName,
			strings.Join(rec.Columns, ", "),
			rec.IndexType,
			rec.EffectivenessScore,
			rec.EstimatedPerformanceGain,
			rec.EstimatedQueryCost,
		})
	}
	t.SetStyle(table.StyleLight)
	t.Render()
}
