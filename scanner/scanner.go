package scanner

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"

	"github.com/indexo-dev/indexo/schema"
)

// SelfPlaceholder is the table placeholder used inside model-local query
// literals. It resolves to the table of the struct declared in the same
// file when that struct is unambiguous.
const SelfPlaceholder = "[Self]"

// ScannedQuery is one SQL string literal found in source.
type ScannedQuery struct {
	File  string
	Table string // resolved [Self] target, "" when unknown
	SQL   string
}

// Result holds everything a source scan discovered.
type Result struct {
	Models  []schema.Model
	Queries []ScannedQuery
}

// SourceScanner extracts table models and query literals from Go source.
type SourceScanner struct {
	dir string
}

func NewSourceScanner(dir string) *SourceScanner {
	return &SourceScanner{dir: dir}
}

// ScanDir walks a directory of Go files and collects struct-tag models and
// SQL string literals.
func ScanDir(dir string) (*Result, error) {
	return NewSourceScanner(dir).Scan()
}

// Scan walks all .go files under the scanner's directory.
func (s *SourceScanner) Scan() (*Result, error) {
	if _, err := os.Stat(s.dir); os.IsNotExist(err) {
		return nil, fmt.Errorf("models directory '%s' does not exist. Run 'indexo init' first", s.dir)
	}

	result := &Result{}

	err := filepath.Walk(s.dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || !strings.HasSuffix(path, ".go") || strings.HasSuffix(path, "_test.go") {
			return nil
		}

		models, queries, err := s.scanFile(path)
		if err != nil {
			return fmt.Errorf("failed to parse %s: %v", path, err)
		}
		result.Models = append(result.Models, models...)
		result.Queries = append(result.Queries, queries...)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan sources: %v", err)
	}

	return result, nil
}

// scanFile parses one Go file for tagged structs and SQL literals. When
// the file declares exactly one model, [Self] in its queries resolves to
// that model's table.
func (s *SourceScanner) scanFile(path string) ([]schema.Model, []ScannedQuery, error) {
	fset := token.NewFileSet()
	node, err := parser.ParseFile(fset, path, nil, parser.ParseComments)
	if err != nil {
		return nil, nil, err
	}

	var models []schema.Model
	var literals []string

	ast.Inspect(node, func(n ast.Node) bool {
		switch x := n.(type) {
		case *ast.TypeSpec:
			if structType, ok := x.Type.(*ast.StructType); ok {
				if model := s.parseStruct(x.Name.Name, structType); model != nil {
					models = append(models, *model)
				}
			}
		case *ast.BasicLit:
			if x.Kind == token.STRING {
				if text, ok := sqlLiteral(x.Value); ok {
					literals = append(literals, text)
				}
			}
		}
		return true
	})

	var queries []ScannedQuery
	for _, text := range literals {
		q := ScannedQuery{File: path, SQL: text}
		if len(models) == 1 {
			q.Table = models[0].TableName
			q.SQL = strings.ReplaceAll(text, SelfPlaceholder, q.Table)
		}
		queries = append(queries, q)
	}

	return models, queries, nil
}

// sqlLiteral unquotes a string literal and reports whether it looks like a
// query.
func sqlLiteral(raw string) (string, bool) {
	text, err := strconv.Unquote(raw)
	if err != nil {
		return "", false
	}
	upper := strings.ToUpper(strings.TrimSpace(text))
	for _, kw := range []string{"SELECT ", "INSERT ", "UPDATE ", "DELETE "} {
		if strings.HasPrefix(upper, kw) {
			return text, true
		}
	}
	return "", false
}

// parseStruct converts a tagged Go struct to a schema.Model. Structs with
// no db-tagged fields are not models.
func (s *SourceScanner) parseStruct(structName string, structType *ast.StructType) *schema.Model {
	model := &schema.Model{
		TableName: tableName(structName),
	}

	for _, field := range structType.Fields.List {
		if len(field.Names) == 0 {
			continue // skip embedded fields
		}
		fieldName := field.Names[0].Name
		if !ast.IsExported(fieldName) {
			continue
		}
		if column := s.parseField(fieldName, field); column != nil {
			model.Columns = append(model.Columns, *column)
		}
	}

	if len(model.Columns) == 0 {
		return nil
	}
	return model
}

// parseField converts a struct field to a schema.Column using its db tag.
// Fields without a db tag are not columns.
func (s *SourceScanner) parseField(fieldName string, field *ast.Field) *schema.Column {
	if field.Tag == nil {
		return nil
	}
	tagValue := strings.Trim(field.Tag.Value, "`")
	dbTag := reflect.StructTag(tagValue).Get("db")
	if dbTag == "" || dbTag == "-" {
		return nil
	}

	column := &schema.Column{}
	for _, part := range strings.Split(dbTag, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if kv := strings.SplitN(part, ":", 2); len(kv) == 2 {
			key := strings.TrimSpace(kv[0])
			value := strings.TrimSpace(kv[1])
			switch key {
			case "column":
				column.Name = value
			case "type":
				column.Type = value
			case "default":
				column.Default = &value
			case "index":
				column.Index = parseIndexConfig(value)
			}
			continue
		}
		switch part {
		case "primary":
			column.Primary = true
		case "unique":
			column.Unique = true
		case "not_null":
			column.NotNull = true
		case "index":
			column.Index = &schema.IndexConfig{Type: "btree"}
		default:
			// bare first part is the column name
			if column.Name == "" {
				column.Name = part
			}
		}
	}

	if column.Name == "" {
		column.Name = toSnakeCase(fieldName)
	}
	return column
}

// parseIndexConfig parses "name:type:unique" index specs.
func parseIndexConfig(spec string) *schema.IndexConfig {
	parts := strings.Split(spec, ":")
	config := &schema.IndexConfig{Type: "btree"}
	if len(parts) > 0 && parts[0] != "" {
		config.Name = parts[0]
	}
	if len(parts) > 1 {
		config.Type = parts[1]
	}
	if len(parts) > 2 && parts[2] == "unique" {
		config.Unique = true
	}
	return config
}

// tableName converts a struct name to a snake_case, pluralized table name.
func tableName(structName string) string {
	name := toSnakeCase(structName)
	if strings.HasSuffix(name, "y") {
		return strings.TrimSuffix(name, "y") + "ies"
	}
	if !strings.HasSuffix(name, "s") {
		return name + "s"
	}
	return name
}

// toSnakeCase converts PascalCase to snake_case.
func toSnakeCase(s string) string {
	var result strings.Builder
	var prev rune
	for i, r := range s {
		if i > 0 && r >= 'A' && r <= 'Z' && prev >= 'a' && prev <= 'z' {
			result.WriteByte('_')
		}
		result.WriteRune(r)
		prev = r
	}
	return strings.ToLower(result.String())
}
