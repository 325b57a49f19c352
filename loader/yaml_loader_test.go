package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const schemaFixture = `tables:
  - name: users
    columns:
      - name: id
        type: bigint
        primary: true
      - name: email
        type: text
        unique: true
        not_null: true
      - name: status
        type: text
        default: active
    indexes:
      - name: idx_users_email
        columns: [email]
        unique: true
        type: btree
  - name: orders
    columns:
      - name: id
        type: bigint
        primary: true
      - name: user_id
        type: bigint
`

func TestLoadModelsFromYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schema.yaml")
	require.NoError(t, os.WriteFile(path, []byte(schemaFixture), 0644))

	models, err := LoadModelsFromYAML(path)
	require.NoError(t, err)
	require.Len(t, models, 2)

	users := models[0]
	assert.Equal(t, "users", users.TableName)
	assert.Equal(t, []string{"id", "email", "status"}, users.ColumnNames())
	assert.True(t, users.Columns[0].Primary)
	assert.True(t, users.Columns[1].Unique)
	assert.True(t, users.Columns[1].NotNull)
	require.NotNil(t, users.Columns[2].Default)
	assert.Equal(t, "active", *users.Columns[2].Default)

	require.Len(t, users.Indexes, 1)
	assert.Equal(t, "idx_users_email", users.Indexes[0].Name)
	assert.Equal(t, "users", users.Indexes[0].Table)
	assert.True(t, users.Indexes[0].Unique)

	assert.Equal(t, "orders", models[1].TableName)
}

func TestLoadModelsFromYAMLMissingFile(t *testing.T) {
	_, err := LoadModelsFromYAML(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadModelsFromYAMLInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schema.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tables: {not: a list}"), 0644))

	_, err := LoadModelsFromYAML(path)
	assert.Error(t, err)
}
