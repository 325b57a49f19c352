package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/indexo-dev/indexo/loader"
	"github.com/indexo-dev/indexo/scanner"
	"github.com/indexo-dev/indexo/utils"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check project files the advisor depends on",
	Long: `Check the current state of your indexo project files.

This command will:
- Verify the schema file parses
- Verify the models directory parses
- Report table, model and query counts

Examples:
  indexo check                    # Check current state
`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := checkProject(); err != nil {
			fmt.Printf("❌ Project check failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("✅ Project check completed successfully")
	},
}

func checkProject() error {
	ok := false

	models, err := loader.LoadModelsFromYAML(utils.SchemaFile())
	if err != nil {
		fmt.Printf("⚠️  Schema file not usable: %v\n", err)
	} else {
		fmt.Printf("📊 Schema file: %d table(s)\n", len(models))
		ok = true
	}

	result, err := scanner.ScanDir(utils.ModelsDir())
	if err != nil {
		fmt.Printf("⚠️  Models directory not usable: %v\n", err)
	} else {
		fmt.Printf("📊 Models directory: %d model(s), %d query(ies)\n", len(result.Models), len(result.Queries))
		ok = true
	}

	if !ok {
		return fmt.Errorf("neither a schema file nor a models directory was found. Run 'indexo init' first")
	}
	return nil
}
