package validator

import (
	"fmt"
	"strings"

	"github.com/indexo-dev/indexo/schema"
)

// ValidationError represents a validation finding with details
type ValidationError struct {
	Type     string `json:"type"`
	Table    string `json:"table,omitempty"`
	Column   string `json:"column,omitempty"`
	Index    string `json:"index,omitempty"`
	Message  string `json:"message"`
	Severity string `json:"severity"` // "error", "warning", "info"
}

// ValidationResult contains all validation results
type ValidationResult struct {
	Valid    bool              `json:"valid"`
	Errors   []ValidationError `json:"errors"`
	Warnings []ValidationError `json:"warnings"`
	Info     []ValidationError `json:"info"`
}

// SchemaValidator validates schema files before they feed the advisor.
// Validation is entirely offline.
type SchemaValidator struct{}

// NewSchemaValidator creates a new schema validator
func NewSchemaValidator() *SchemaValidator {
	return &SchemaValidator{}
}

// ValidateSchema validates a complete schema against PostgreSQL naming
// rules and advisor expectations.
func (v *SchemaValidator) ValidateSchema(models []schema.Model) (*ValidationResult, error) {
	result := &ValidationResult{
		Valid:    true,
		Errors:   []ValidationError{},
		Warnings: []ValidationError{},
		Info:     []ValidationError{},
	}

	tableNames := make(map[string]bool)
	for _, model := range models {
		if tableNames[model.TableName] {
			result.Errors = append(result.Errors, ValidationError{
				Type:     "duplicate_table",
				Table:    model.TableName,
				Message:  fmt.Sprintf("Duplicate table name '%s'", model.TableName),
				Severity: "error",
			})
			continue
		}
		tableNames[model.TableName] = true

		if err := v.validateModel(model, result); err != nil {
			return nil, fmt.Errorf("failed to validate model %s: %v", model.TableName, err)
		}
	}

	result.Valid = len(result.Errors) == 0
	return result, nil
}

// validateModel validates a single model
func (v *SchemaValidator) validateModel(model schema.Model, result *ValidationResult) error {
	if err := v.validateTableName(model.TableName); err != nil {
		result.Errors = append(result.Errors, ValidationError{
			Type:     "table_name",
			Table:    model.TableName,
			Message:  err.Error(),
			Severity: "error",
		})
	}

	if err := v.validateColumns(model, result); err != nil {
		return err
	}

	if err := v.validateIndexes(model, result); err != nil {
		return err
	}

	return nil
}

// validateTableName validates table name format
func (v *SchemaValidator) validateTableName(tableName string) error {
	if tableName == "" {
		return fmt.Errorf("table name cannot be empty")
	}

	if len(tableName) > 63 {
		return fmt.Errorf("table name '%s' is too long (max 63 characters)", tableName)
	}

	for _, char := range tableName {
		if !((char >= 'a' && char <= 'z') || (char >= 'A' && char <= 'Z') || (char >= '0' && char <= '9') || char == '_') {
			return fmt.Errorf("table name '%s' contains invalid character '%c'", tableName, char)
		}
	}

	reservedKeywords := []string{"user", "order", "group", "table", "index", "view", "schema"}
	for _, keyword := range reservedKeywords {
		if strings.ToLower(tableName) == keyword {
			return fmt.Errorf("table name '%s' is a reserved keyword", tableName)
		}
	}

	return nil
}

// validateColumns validates all columns in a model
func (v *SchemaValidator) validateColumns(model schema.Model, result *ValidationResult) error {
	if len(model.Columns) == 0 {
		result.Errors = append(result.Errors, ValidationError{
			Type:     "no_columns",
			Table:    model.TableName,
			Message:  fmt.Sprintf("Table '%s' must have at least one column", model.TableName),
			Severity: "error",
		})
		return nil
	}

	columnNames := make(map[string]bool)
	hasPrimaryKey := false

	for _, column := range model.Columns {
		if columnNames[column.Name] {
			result.Errors = append(result.Errors, ValidationError{
				Type:     "duplicate_column",
				Table:    model.TableName,
				Column:   column.Name,
				Message:  fmt.Sprintf("Duplicate column name '%s' in table '%s'", column.Name, model.TableName),
				Severity: "error",
			})
			continue
		}
		columnNames[column.Name] = true

		if err := v.validateColumnName(column.Name); err != nil {
			result.Errors = append(result.Errors, ValidationError{
				Type:     "column_name",
				Table:    model.TableName,
				Column:   column.Name,
				Message:  err.Error(),
				Severity: "error",
			})
		}

		if column.Primary {
			hasPrimaryKey = true
		}
	}

	if !hasPrimaryKey {
		result.Warnings = append(result.Warnings, ValidationError{
			Type:     "no_primary_key",
			Table:    model.TableName,
			Message:  fmt.Sprintf("Table '%s' has no primary key defined", model.TableName),
			Severity: "warning",
		})
	}

	return nil
}

// validateColumnName validates column name format
func (v *SchemaValidator) validateColumnName(columnName string) error {
	if columnName == "" {
		return fmt.Errorf("column name cannot be empty")
	}

	if len(columnName) > 63 {
		return fmt.Errorf("column name '%s' is too long (max 63 characters)", columnName)
	}

	for _, char := range columnName {
		if !((char >= 'a' && char <= 'z') || (char >= 'A' && char <= 'Z') || (char >= '0' && char <= '9') || char == '_') {
			return fmt.Errorf("column name '%s' contains invalid character '%c'", columnName, char)
		}
	}

	return nil
}

// validateIndexes checks declared indexes reference real columns.
func (v *SchemaValidator) validateIndexes(model schema.Model, result *ValidationResult) error {
	columnNames := make(map[string]bool)
	for _, c := range model.Columns {
		columnNames[c.Name] = true
	}

	indexNames := make(map[string]bool)
	for _, idx := range model.Indexes {
		if idx.Name != "" {
			if indexNames[idx.Name] {
				result.Errors = append(result.Errors, ValidationError{
					Type:     "duplicate_index",
					Table:    model.TableName,
					Index:    idx.Name,
					Message:  fmt.Sprintf("Duplicate index name '%s' in table '%s'", idx.Name, model.TableName),
					Severity: "error",
				})
				continue
			}
			indexNames[idx.Name] = true
		}

		if len(idx.Columns) == 0 {
			result.Errors = append(result.Errors, ValidationError{
				Type:     "empty_index",
				Table:    model.TableName,
				Index:    idx.Name,
				Message:  "Index has no columns",
				Severity: "error",
			})
			continue
		}

		for _, col := range idx.Columns {
			if !columnNames[col] {
				result.Errors = append(result.Errors, ValidationError{
					Type:     "index_column",
					Table:    model.TableName,
					Index:    idx.Name,
					Column:   col,
					Message:  fmt.Sprintf("Index references unknown column '%s'", col),
					Severity: "error",
				})
			}
		}

		if len(idx.Columns) > 4 {
			result.Warnings = append(result.Warnings, ValidationError{
				Type:     "wide_index",
				Table:    model.TableName,
				Index:    idx.Name,
				Message:  fmt.Sprintf("Index spans %d columns; wide indexes slow writes", len(idx.Columns)),
				Severity: "warning",
			})
		}
	}

	return nil
}
