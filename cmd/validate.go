package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/indexo-dev/indexo/loader"
	"github.com/indexo-dev/indexo/utils"
	"github.com/indexo-dev/indexo/validator"
)

var (
	validateSchemaFile string
	validateFormat     string
)

func init() {
	validateCmd.Flags().StringVarP(&validateSchemaFile, "schema", "s", "", "Schema file to validate")
	validateCmd.Flags().StringVarP(&validateFormat, "format", "f", "text", "Output format (text, json)")
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the schema file before advising",
	Long: `Validate your schema YAML file against naming rules and advisor
expectations.

This command performs validation including:
- Table and column naming (PostgreSQL identifier rules, reserved keywords)
- Duplicate tables, columns and index names
- Index definitions referencing real columns

Examples:
  indexo validate                     # Validate schema.yaml
  indexo validate --schema custom.yaml
  indexo validate --format json
`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := validateSchema(); err != nil {
			fmt.Printf("❌ Schema validation failed: %v\n", err)
			os.Exit(1)
		}
	},
}

func validateSchema() error {
	schemaFile := validateSchemaFile
	if schemaFile == "" {
		schemaFile = utils.SchemaFile()
	}

	models, err := loader.LoadModelsFromYAML(schemaFile)
	if err != nil {
		return fmt.Errorf("failed to load schema: %v", err)
	}

	result, err := validator.NewSchemaValidator().ValidateSchema(models)
	if err != nil {
		return fmt.Errorf("failed to validate schema: %v", err)
	}

	if validateFormat == "json" {
		return outputJSON(result)
	}
	return outputText(result)
}

func outputJSON(result *validator.ValidationResult) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

func outputText(result *validator.ValidationResult) error {
	if result.Valid {
		color.Green("✅ Schema validation passed!")
	} else {
		color.Red("❌ Schema validation failed!")
	}

	if len(result.Errors) > 0 {
		fmt.Printf("\n🔴 Errors (%d):\n", len(result.Errors))
		printFindings(result.Errors)
	}

	if len(result.Warnings) > 0 {
		fmt.Printf("\n🟡 Warnings (%d):\n", len(result.Warnings))
		printFindings(result.Warnings)
	}

	if len(result.Info) > 0 {
		fmt.Printf("\n🔵 Info (%d):\n", len(result.Info))
		printFindings(result.Info)
	}

	fmt.Printf("\n📊 Summary:\n")
	fmt.Printf("  • Errors: %d\n", len(result.Errors))
	fmt.Printf("  • Warnings: %d\n", len(result.Warnings))
	fmt.Printf("  • Info: %d\n", len(result.Info))

	if result.Valid {
		fmt.Printf("\n🎉 Your schema is valid and ready for advising!\n")
	} else {
		fmt.Printf("\n💡 Fix the errors above before generating reports.\n")
	}

	return nil
}

func printFindings(findings []validator.ValidationError) {
	for i, f := range findings {
		fmt.Printf("  %d. ", i+1)
		if f.Table != "" {
			fmt.Printf("[%s]", f.Table)
		}
		if f.Column != "" {
			fmt.Printf(".%s", f.Column)
		}
		if f.Index != "" {
			fmt.Printf(" (index: %s)", f.Index)
		}
		fmt.Printf(": %s\n", f.Message)
	}
}
