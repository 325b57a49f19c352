package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/indexo-dev/indexo/schema"
)

func validUsersModel() schema.Model {
	return schema.Model{
		TableName: "users",
		Columns: []schema.Column{
			{Name: "id", Type: "bigint", Primary: true},
			{Name: "email", Type: "text", Unique: true},
		},
		Indexes: []schema.Index{
			{Name: "idx_users_email", Table: "users", Columns: []string{"email"}},
		},
	}
}

func findByType(findings []ValidationError, typ string) *ValidationError {
	for i := range findings {
		if findings[i].Type == typ {
			return &findings[i]
		}
	}
	return nil
}

func TestValidateSchemaValid(t *testing.T) {
	result, err := NewSchemaValidator().ValidateSchema([]schema.Model{validUsersModel()})

	require.NoError(t, err)
	assert.True(t, result.Valid)
	assert.Empty(t, result.Errors)
	assert.Empty(t, result.Warnings)
}

func TestValidateSchemaDuplicateTable(t *testing.T) {
	result, err := NewSchemaValidator().ValidateSchema([]schema.Model{validUsersModel(), validUsersModel()})

	require.NoError(t, err)
	assert.False(t, result.Valid)
	require.NotNil(t, findByType(result.Errors, "duplicate_table"))
}

func TestValidateSchemaReservedTableName(t *testing.T) {
	m := validUsersModel()
	m.TableName = "order"

	result, err := NewSchemaValidator().ValidateSchema([]schema.Model{m})
	require.NoError(t, err)
	assert.False(t, result.Valid)

	e := findByType(result.Errors, "table_name")
	require.NotNil(t, e)
	assert.Contains(t, e.Message, "reserved keyword")
}

func TestValidateSchemaInvalidTableCharacter(t *testing.T) {
	m := validUsersModel()
	m.TableName = "user accounts"

	result, err := NewSchemaValidator().ValidateSchema([]schema.Model{m})
	require.NoError(t, err)
	require.NotNil(t, findByType(result.Errors, "table_name"))
}

func TestValidateSchemaColumnFindings(t *testing.T) {
	m := schema.Model{
		TableName: "things",
		Columns: []schema.Column{
			{Name: "a"},
			{Name: "a"},
			{Name: "bad name"},
		},
	}

	result, err := NewSchemaValidator().ValidateSchema([]schema.Model{m})
	require.NoError(t, err)
	assert.False(t, result.Valid)
	require.NotNil(t, findByType(result.Errors, "duplicate_column"))
	require.NotNil(t, findByType(result.Errors, "column_name"))
	require.NotNil(t, findByType(result.Warnings, "no_primary_key"))
}

func TestValidateSchemaNoColumns(t *testing.T) {
	result, err := NewSchemaValidator().ValidateSchema([]schema.Model{{TableName: "empty"}})
	require.NoError(t, err)
	require.NotNil(t, findByType(result.Errors, "no_columns"))
}

func TestValidateSchemaIndexFindings(t *testing.T) {
	m := schema.Model{
		TableName: "things",
		Columns: []schema.Column{
			{Name: "a", Primary: true},
			{Name: "b"},
			{Name: "c"},
			{Name: "d"},
			{Name: "e"},
		},
		Indexes: []schema.Index{
			{Name: "idx_dup", Columns: []string{"a"}},
			{Name: "idx_dup", Columns: []string{"b"}},
			{Name: "idx_empty"},
			{Name: "idx_unknown", Columns: []string{"zzz"}},
			{Name: "idx_wide", Columns: []string{"a", "b", "c", "d", "e"}},
		},
	}

	result, err := NewSchemaValidator().ValidateSchema([]schema.Model{m})
	require.NoError(t, err)
	assert.False(t, result.Valid)
	require.NotNil(t, findByType(result.Errors, "duplicate_index"))
	require.NotNil(t, findByType(result.Errors, "empty_index"))
	require.NotNil(t, findByType(result.Errors, "index_column"))

	wide := findByType(result.Warnings, "wide_index")
	require.NotNil(t, wide)
	assert.Contains(t, wide.Message, "5 columns")
}
