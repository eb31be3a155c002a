// Package model describes a data model to scaffold: its table schema,
// associations, validation rules and accessible fields. Descriptions are
// usually decoded from YAML files, or built from an OpenAPI component by the
// root package.
package model

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-bake/pkg/association"
	"github.com/goliatone/go-bake/pkg/fields"
	"github.com/goliatone/go-bake/pkg/schema"
	"github.com/goliatone/go-bake/pkg/validation"
)

var (
	// ErrNameRequired is returned for descriptions without a model name.
	ErrNameRequired = errors.New("model: name is required")

	errColumnName = errors.New("model: column name is required")
)

// Model is a scaffolding description. Name may be plugin-qualified
// ("Blog.Articles").
type Model struct {
	Name         string                 `yaml:"name"`
	Table        schema.Table           `yaml:"table"`
	Associations association.Collection `yaml:"associations,omitempty"`
	Validation   FieldRules             `yaml:"validation,omitempty"`
	Accessible   fields.Selection       `yaml:"accessible,omitempty"`
}

// FieldRule holds the explicit rules of one field.
type FieldRule struct {
	Field string
	Rules validation.Rules
}

// FieldRules is an ordered mapping of field to rules.
type FieldRules []FieldRule

// UnmarshalYAML decodes a field => rules mapping while keeping field order.
func (f *FieldRules) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("model: validation must be a mapping (line %d)", node.Line)
	}
	out := make(FieldRules, 0, len(node.Content)/2)
	for idx := 0; idx+1 < len(node.Content); idx += 2 {
		field := strings.TrimSpace(node.Content[idx].Value)
		var rules validation.Rules
		if err := node.Content[idx+1].Decode(&rules); err != nil {
			return fmt.Errorf("model: validation for %q: %w", field, err)
		}
		out = append(out, FieldRule{Field: field, Rules: rules})
	}
	*f = out
	return nil
}

// Lookup returns the explicit rules of field.
func (f FieldRules) Lookup(field string) (validation.Rules, bool) {
	for _, entry := range f {
		if entry.Field == field {
			return entry.Rules, true
		}
	}
	return nil, false
}

// PrimaryKey returns the declared primary key, defaulting to "id" when the
// table has such a column.
func (m Model) PrimaryKey() []string {
	if len(m.Table.PrimaryKey) > 0 {
		return append([]string(nil), m.Table.PrimaryKey...)
	}
	if _, ok := m.Table.Column("id"); ok {
		return []string{"id"}
	}
	return nil
}

// RulesFor returns the explicit rules of field, or rules inferred from its
// column when none are declared.
func (m Model) RulesFor(field string) validation.Rules {
	if rules, ok := m.Validation.Lookup(field); ok {
		return rules
	}
	column, ok := m.Table.Column(field)
	if !ok {
		return nil
	}
	primary := false
	for _, key := range m.PrimaryKey() {
		if key == field {
			primary = true
			break
		}
	}
	return validation.Infer(column, primary)
}

// Validate checks the description is usable.
func (m Model) Validate() error {
	if strings.TrimSpace(m.Name) == "" {
		return ErrNameRequired
	}
	for idx, column := range m.Table.Columns {
		if strings.TrimSpace(column.Name) == "" {
			return fmt.Errorf("%w (column %d)", errColumnName, idx)
		}
	}
	return nil
}

// Parse decodes and validates a YAML description.
func Parse(data []byte) (Model, error) {
	var m Model
	if err := yaml.Unmarshal(data, &m); err != nil {
		return Model{}, fmt.Errorf("model: parse: %w", err)
	}
	if err := m.Validate(); err != nil {
		return Model{}, err
	}
	return m, nil
}

// LoadFile reads a YAML description from path.
func LoadFile(path string) (Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Model{}, fmt.Errorf("model: read %s: %w", path, err)
	}
	return Parse(data)
}
