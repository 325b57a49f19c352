package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/indexo-dev/indexo/loader"
	"github.com/indexo-dev/indexo/utils"
)

var (
	explainQuery  string
	explainSchema string
	explainTable  string
)

func init() {
	explainCmd.Flags().StringVarP(&explainQuery, "query", "q", "", "SQL query to explain (required)")
	explainCmd.Flags().StringVarP(&explainSchema, "schema", "s", "", "Schema YAML file with known columns")
	explainCmd.Flags().StringVarP(&explainTable, "table", "t", "", "Table to advise against")
}

var explainCmd = &cobra.Command{
	Use:   "explain",
	Short: "Show expected execution behavior for a query's index",
	Long: `Advise a query and print the execution-plan hints and the visual
plan representation of the first recommendation.

Examples:
  indexo explain -q "SELECT * FROM users WHERE email = $1"
`,
	Run: func(cmd *cobra.Command, args []string) {
		if explainQuery == "" {
			fmt.Println("❌ --query is required")
			os.Exit(1)
		}

		schemaFile := explainSchema
		if schemaFile == "" {
			schemaFile = utils.SchemaFile()
		}

		models, err := loader.LoadModelsFromYAML(schemaFile)
		if err != nil && !isJoinQuery(explainQuery) {
			fmt.Println("❌ Loading schema:", err)
			os.Exit(1)
		}

		advices, err := adviseOne(explainQuery, explainTable, models)
		if err != nil {
			fmt.Println("❌", err)
			os.Exit(1)
		}
		if len(advices) == 0 {
			fmt.Println("✅ No index recommendation for this query.")
			return
		}

		rec := advices[0].Recommendation
		if len(rec.ExecutionPlanHints) > 0 {
			fmt.Println("🔍 Execution plan hints:")
			for _, hint := range rec.ExecutionPlanHints {
				fmt.Println("   •", hint)
			}
			fmt.Println()
		}
		if rec.VisualRepresentation != "" {
			fmt.Println(rec.VisualRepresentation)
		}
	},
}
