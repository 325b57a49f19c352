package schema

type Model struct {
	TableName string
	Columns   []Column
	Indexes   []Index
}

type Column struct {
	Name    string
	Type    string
	Primary bool
	Unique  bool
	NotNull bool
	Default *string
	Index   *IndexConfig
}

type IndexConfig struct {
	Name    string
	Columns []string
	Unique  bool
	Type    string // btree, hash, gin, etc.
}

type Index struct {
	Name    string
	Table   string
	Columns []string
	Unique  bool
	Type    string // btree, hash, gin, etc.
}

// ColumnNames returns the declared column names in declaration order.
func (m Model) ColumnNames() []string {
	names := make([]string, 0, len(m.Columns))
	for _, c := range m.Columns {
		names = append(names, c.Name)
	}
	return names
}

// FindModel returns the model whose table name matches, or nil.
func FindModel(models []Model, tableName string) *Model {
	for i := range models {
		if models[i].TableName == tableName {
			return &models[i]
		}
	}
	return nil
}
