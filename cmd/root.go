package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "indexo",
	Short: "A static SQL index advisor for PostgreSQL",
	Long: `indexo analyzes raw SQL query text and recommends indexes:
which columns, in what order, with what shape (plain, composite,
partial, covering or functional) - without touching a live database.

Examples:

  indexo init
  indexo advise -q "SELECT * FROM users WHERE email = $1"
  indexo scan
  indexo report
`,
}

// Execute runs the CLI
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println("❌", err)
		os.Exit(1)
	}
}

// Register subcommands
func init() {
	rootCmd.AddCommand(adviseCmd)
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(explainCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(initCmd)
}
