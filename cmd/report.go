package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/indexo-dev/indexo/report"
	"github.com/indexo-dev/indexo/utils"
)

var (
	reportOut      string
	reportMarkdown bool
	dryRunReport   bool
)

func init() {
	reportCmd.Flags().StringVarP(&scanModelsDir, "models", "m", "", "Models directory to scan for structs and queries")
	reportCmd.Flags().StringVarP(&scanSchema, "schema", "s", "", "Additional schema YAML file")
	reportCmd.Flags().StringVarP(&reportOut, "out", "o", "", "Output directory for report files")
	reportCmd.Flags().BoolVar(&reportMarkdown, "markdown", false, "Also write a markdown summary")
	reportCmd.Flags().BoolVar(&dryRunReport, "dry-run", false, "Preview the SQL that would be written without writing files")
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Write index recommendations as a SQL script",
	Long: `Scan sources, advise every discovered query and write the
recommendations as a timestamped SQL file with apply and rollback
sections.

Examples:
  indexo report                  # Write reports/<ts>_indexes.sql
  indexo report --markdown       # Also write a markdown summary
  indexo report --dry-run        # Preview without writing files
`,
	Run: func(cmd *cobra.Command, args []string) {
		advices, _ := collectAdvices()
		if len(advices) == 0 {
			fmt.Println("✅ No index recommendations.")
			return
		}

		sqls, err := report.GenerateSQL(advices)
		if err != nil {
			fmt.Println("❌ Generating SQL:", err)
			os.Exit(1)
		}
		rollbackSqls := report.GenerateRollbackSQL(advices)

		if dryRunReport {
			fmt.Println("\n================ DRY RUN: Report Preview ================")
			fmt.Println("-- Apply SQL --")
			for _, stmt := range sqls {
				fmt.Println(stmt)
			}
			fmt.Println("\n-- Rollback SQL --")
			for _, stmt := range rollbackSqls {
				fmt.Println(stmt)
			}
			fmt.Println("=========================================================")
			fmt.Println("(Dry run only. No files were written.)")
			return
		}

		outDir := reportOut
		if outDir == "" {
			outDir = utils.ReportsDir()
		}

		filename, err := report.WriteReportFile(outDir, sqls, rollbackSqls)
		if err != nil {
			fmt.Println("❌ Writing report file:", err)
			os.Exit(1)
		}
		fmt.Println("✅ Report generated:", filename)

		if reportMarkdown {
			mdFile := filename[:len(filename)-len(filepath.Ext(filename))] + ".md"
			if err := os.WriteFile(mdFile, []byte(report.RenderMarkdown(advices)), 0644); err != nil {
				fmt.Println("❌ Writing markdown summary:", err)
				os.Exit(1)
			}
			fmt.Println("✅ Markdown summary:", mdFile)
		}
	},
}
