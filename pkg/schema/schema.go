// Package schema describes the column metadata the scaffolding helpers read.
// Providers are external; Table is a small in-memory implementation used by
// model description files and tests.
package schema

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Column type tags.
const (
	TypeBinary    = "binary"
	TypeText      = "text"
	TypeString    = "string"
	TypeUUID      = "uuid"
	TypeInteger   = "integer"
	TypeBigInt    = "biginteger"
	TypeFloat     = "float"
	TypeDecimal   = "decimal"
	TypeBoolean   = "boolean"
	TypeDate      = "date"
	TypeTime      = "time"
	TypeDateTime  = "datetime"
	TypeTimestamp = "timestamp"
	TypeJSON      = "json"
	TypeInet      = "inet"
)

// Column is the metadata of a single table column.
type Column struct {
	Name      string `json:"name" yaml:"name"`
	Type      string `json:"type" yaml:"type"`
	Null      bool   `json:"null,omitempty" yaml:"null,omitempty"`
	Default   any    `json:"default,omitempty" yaml:"default,omitempty"`
	Length    int    `json:"length,omitempty" yaml:"length,omitempty"`
	Precision int    `json:"precision,omitempty" yaml:"precision,omitempty"`
	Unique    bool   `json:"unique,omitempty" yaml:"unique,omitempty"`
	Comment   string `json:"comment,omitempty" yaml:"comment,omitempty"`
}

// UnmarshalYAML decodes a column mapping. A plain `null:` key resolves to the
// YAML null value rather than the string "null", so it is matched by hand.
func (c *Column) UnmarshalYAML(node *yaml.Node) error {
	type plain Column
	var out plain
	if err := node.Decode(&out); err != nil {
		return err
	}
	if node.Kind == yaml.MappingNode {
		for idx := 0; idx+1 < len(node.Content); idx += 2 {
			key, value := node.Content[idx], node.Content[idx+1]
			if key.Value != "null" {
				continue
			}
			if err := value.Decode(&out.Null); err != nil {
				return fmt.Errorf("schema: column %q null: %w", out.Name, err)
			}
		}
	}
	*c = Column(out)
	return nil
}

// Schema is the provider contract: column type lookup and full column data.
// ColumnType returns "" for unknown fields.
type Schema interface {
	ColumnType(field string) string
	Column(field string) (Column, bool)
}

// Table is an ordered, in-memory Schema.
type Table struct {
	Name       string   `json:"name,omitempty" yaml:"name,omitempty"`
	Columns    []Column `json:"columns" yaml:"columns"`
	PrimaryKey []string `json:"primaryKey,omitempty" yaml:"primaryKey,omitempty"`
}

var _ Schema = (*Table)(nil)

// ColumnType returns the type tag of field.
func (t *Table) ColumnType(field string) string {
	column, ok := t.Column(field)
	if !ok {
		return ""
	}
	return column.Type
}

// Column returns the column called field.
func (t *Table) Column(field string) (Column, bool) {
	if t == nil {
		return Column{}, false
	}
	for _, column := range t.Columns {
		if column.Name == field {
			return column, true
		}
	}
	return Column{}, false
}

// Fields returns the column names in declaration order.
func (t *Table) Fields() []string {
	if t == nil {
		return nil
	}
	fields := make([]string, 0, len(t.Columns))
	for _, column := range t.Columns {
		fields = append(fields, column.Name)
	}
	return fields
}

// IsPrimaryKey reports whether field is part of the primary key.
func (t *Table) IsPrimaryKey(field string) bool {
	if t == nil {
		return false
	}
	for _, key := range t.PrimaryKey {
		if strings.EqualFold(key, field) {
			return true
		}
	}
	return false
}
