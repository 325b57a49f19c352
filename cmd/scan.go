package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/indexo-dev/indexo/loader"
	"github.com/indexo-dev/indexo/report"
	"github.com/indexo-dev/indexo/scanner"
	"github.com/indexo-dev/indexo/schema"
	"github.com/indexo-dev/indexo/utils"
)

var (
	scanModelsDir string
	scanSchema    string
	scanFormat    string
)

func init() {
	scanCmd.Flags().StringVarP(&scanModelsDir, "models", "m", "", "Models directory to scan for structs and queries")
	scanCmd.Flags().StringVarP(&scanSchema, "schema", "s", "", "Additional schema YAML file")
	scanCmd.Flags().StringVarP(&scanFormat, "format", "f", "text", "Output format (text, table, json)")
}

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan Go sources for queries and advise all of them",
	Long: `Scan a models directory for structs with db tags and SQL string
literals, then advise indexes for every discovered query. Duplicate
recommendations across queries are collapsed.

Examples:
  indexo scan                    # Scan ./models
  indexo scan -m internal/models # Custom directory
  indexo scan --format table
`,
	Run: func(cmd *cobra.Command, args []string) {
		advices, result := collectAdvices()

		fmt.Printf("📊 Scanned %d model(s), %d query(ies)\n", len(result.Models), len(result.Queries))

		if len(advices) == 0 {
			fmt.Println("✅ No index recommendations.")
			return
		}

		color.New(color.FgGreen, color.Bold).Printf("💡 %d recommendation(s) after dedup:\n", len(advices))
		printAdvices(advices, scanFormat)
	},
}

// collectAdvices scans sources, merges YAML models and advises every
// discovered query.
func collectAdvices() ([]report.Advice, *scanner.Result) {
	modelsDir := scanModelsDir
	if modelsDir == "" {
		modelsDir = utils.ModelsDir()
	}

	result, err := scanner.ScanDir(modelsDir)
	if err != nil {
		fmt.Println("❌ Scanning sources:", err)
		os.Exit(1)
	}

	models := result.Models

	schemaFile := scanSchema
	if schemaFile == "" {
		schemaFile = utils.SchemaFile()
	}
	if yamlModels, err := loader.LoadModelsFromYAML(schemaFile); err == nil {
		models = mergeModels(models, yamlModels)
	}

	var advices []report.Advice
	for _, q := range result.Queries {
		queryAdvices, err := adviseOne(q.SQL, q.Table, models)
		if err != nil {
			// Queries we cannot place are skipped, not fatal.
			continue
		}
		advices = append(advices, queryAdvices...)
	}

	return report.Deduplicate(advices), result
}

// mergeModels appends YAML models whose tables the scan did not produce.
func mergeModels(scanned, extra []schema.Model) []schema.Model {
	for _, m := range extra {
		if schema.FindModel(scanned, m.TableName) == nil {
			scanned = append(scanned, m)
		}
	}
	return scanned
}

// isJoinQuery mirrors the JOIN-path detection used by advise.
func isJoinQuery(query string) bool {
	return strings.Contains(strings.ToLower(query), " join ")
}
