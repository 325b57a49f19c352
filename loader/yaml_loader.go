package loader

import (
	"fmt"
	"os"

	"github.com/indexo-dev/indexo/schema"
	"gopkg.in/yaml.v3"
)

type yamlFile struct {
	Tables []yamlTable `yaml:"tables"`
}

type yamlTable struct {
	Name    string       `yaml:"name"`
	Columns []yamlColumn `yaml:"columns"`
	Indexes []yamlIndex  `yaml:"indexes"`
}

type yamlColumn struct {
	Name    string  `yaml:"name"`
	Type    string  `yaml:"type"`
	Primary bool    `yaml:"primary"`
	Unique  bool    `yaml:"unique"`
	NotNull bool    `yaml:"not_null"`
	Default *string `yaml:"default"`
}

type yamlIndex struct {
	Name    string   `yaml:"name"`
	Columns []string `yaml:"columns"`
	Unique  bool     `yaml:"unique"`
	Type    string   `yaml:"type"`
}

// LoadModelsFromYAML reads table definitions from a schema YAML file. The
// column lists become the known-columns input for single-table advice; the
// index lists describe indexes that already exist.
func LoadModelsFromYAML(filename string) ([]schema.Model, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("reading schema file: %w", err)
	}

	var yf yamlFile
	if err := yaml.Unmarshal(data, &yf); err != nil {
		return nil, fmt.Errorf("unmarshalling YAML: %w", err)
	}

	var models []schema.Model
	for _, t := range yf.Tables {
		model := schema.Model{
			TableName: t.Name,
		}
		for _, c := range t.Columns {
			model.Columns = append(model.Columns, schema.Column{
				Name:    c.Name,
				Type:    c.Type,
				Primary: c.Primary,
				Unique:  c.Unique,
				NotNull: c.NotNull,
				Default: c.Default,
			})
		}
		for _, idx := range t.Indexes {
			model.Indexes = append(model.Indexes, schema.Index{
				Name:    idx.Name,
				Table:   t.Name,
				Columns: idx.Columns,
				Unique:  idx.Unique,
				Type:    idx.Type,
			})
		}
		models = append(models, model)
	}

	return models, nil
}
