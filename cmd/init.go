package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/indexo-dev/indexo/utils"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new indexo project",
	Long: `Initialize a new indexo project with an example schema file and a
models directory.

The schema file declares tables and their columns; the models directory
holds Go structs with db tags and the SQL query literals indexo scans.

Examples:
  indexo init`,
	Run: func(cmd *cobra.Command, args []string) {
		if _, err := os.Stat(utils.SchemaFile()); err == nil {
			fmt.Println("❌ schema.yaml already exists!")
			return
		}

		if err := os.WriteFile(utils.SchemaFile(), []byte(exampleSchema), 0644); err != nil {
			fmt.Println("❌ Writing schema.yaml:", err)
			os.Exit(1)
		}
		fmt.Println("✅ Created", utils.SchemaFile())

		modelsDir := utils.ModelsDir()
		if err := os.MkdirAll(modelsDir, 0755); err != nil {
			fmt.Println("❌ Creating models directory:", err)
			os.Exit(1)
		}

		modelFile := filepath.Join(modelsDir, "user.go")
		if _, err := os.Stat(modelFile); os.IsNotExist(err) {
			if err := os.WriteFile(modelFile, []byte(exampleModel), 0644); err != nil {
				fmt.Println("❌ Writing example model:", err)
				os.Exit(1)
			}
			fmt.Println("✅ Created", modelFile)
		}

		fmt.Println("\nNext steps:")
		fmt.Println("  1. Describe your tables in schema.yaml (or tag your structs)")
		fmt.Println("  2. Run: indexo advise -q \"SELECT * FROM users WHERE email = $1\"")
		fmt.Println("  3. Run: indexo scan")
	},
}

const exampleSchema = `# Tables the advisor knows about
tables:
  - name: users
    columns:
      - name: id
        type: serial
        primary: true
      - name: email
        type: text
        unique: true
        not_null: true
      - name: name
        type: text
        not_null: true
      - name: status
        type: text
        default: 'active'
      - name: created_at
        type: timestamp
        default: now()
    indexes:
      - name: idx_users_email
        columns: [email]
        unique: true

  - name: orders
    columns:
      - name: id
        type: serial
        primary: true
      - name: user_id
        type: integer
      - name: status
        type: text
      - name: total
        type: numeric
      - name: created_at
        type: timestamp
        default: now()
`

const exampleModel = `package models

// User maps to the users table. indexo reads the db tags for column
// names and picks up SQL string literals in this file.
type User struct {
	ID        int    ` + "`db:\"id;type:serial;primary\"`" + `
	Email     string ` + "`db:\"email;type:text;unique;not_null\"`" + `
	Name      string ` + "`db:\"name;type:text;not_null\"`" + `
	Status    string ` + "`db:\"status;type:text\"`" + `
	CreatedAt string ` + "`db:\"created_at;type:timestamp\"`" + `
}

const userByEmail = "SELECT * FROM [Self] WHERE email = $1"

const recentActive = "SELECT id, email FROM [Self] WHERE status = 'active' ORDER BY created_at DESC LIMIT 50"
`
