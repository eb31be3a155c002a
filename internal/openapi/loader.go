// Package openapi builds model descriptions from OpenAPI component schemas
// using kin-openapi.
package openapi

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-bake/pkg/inflect"
	"github.com/goliatone/go-bake/pkg/model"
	"github.com/goliatone/go-bake/pkg/schema"
)

const (
	extModel      = "x-model"
	extTable      = "x-table"
	extPrimaryKey = "x-primary-key"
	extColumnType = "x-column-type"
	extUnique     = "x-unique"
)

// Option configures Load.
type Option func(*options)

type options struct {
	validate     bool
	externalRefs bool
}

// WithValidation validates the whole document before extracting the
// component. Example values are not validated.
func WithValidation() Option {
	return func(o *options) {
		o.validate = true
	}
}

// WithExternalRefs allows references to other documents.
func WithExternalRefs() Option {
	return func(o *options) {
		o.externalRefs = true
	}
}

// Load parses an OpenAPI document and converts the named component schema
// into a model description. Properties become columns in name order;
// properties carrying x-relationships become associations, and array or
// object relationships produce no column.
func Load(ctx context.Context, raw []byte, component string, opts ...Option) (model.Model, error) {
	if err := ctx.Err(); err != nil {
		return model.Model{}, err
	}
	if len(raw) == 0 {
		return model.Model{}, errors.New("openapi: document payload is empty")
	}
	component = strings.TrimSpace(component)
	if component == "" {
		return model.Model{}, errors.New("openapi: component name is required")
	}

	cfg := options{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	loader := &openapi3.Loader{
		Context:               ctx,
		IsExternalRefsAllowed: cfg.externalRefs,
	}
	doc, err := loader.LoadFromData(raw)
	if err != nil {
		return model.Model{}, fmt.Errorf("openapi: load document: %w", err)
	}
	if cfg.validate {
		if err := doc.Validate(ctx, openapi3.DisableExamplesValidation()); err != nil {
			return model.Model{}, fmt.Errorf("openapi: validate: %w", err)
		}
	}

	if doc.Components == nil {
		return model.Model{}, fmt.Errorf("openapi: component %q not found", component)
	}
	ref, ok := doc.Components.Schemas[component]
	if !ok || ref == nil || ref.Value == nil {
		return model.Model{}, fmt.Errorf("openapi: component %q not found", component)
	}

	m := convertComponent(component, ref.Value)
	if err := m.Validate(); err != nil {
		return model.Model{}, fmt.Errorf("openapi: component %q: %w", component, err)
	}
	return m, nil
}

func convertComponent(component string, src *openapi3.Schema) model.Model {
	name := component
	if value, ok := stringExtension(src.Extensions, extModel); ok {
		name = value
	}
	_, short := splitModelName(name)
	tableName := inflect.Underscore(short)
	if value, ok := stringExtension(src.Extensions, extTable); ok {
		tableName = value
	}

	m := model.Model{
		Name:  name,
		Table: schema.Table{Name: tableName},
	}

	names := make([]string, 0, len(src.Properties))
	for property := range src.Properties {
		names = append(names, property)
	}
	sort.Strings(names)

	for _, property := range names {
		ref := src.Properties[property]
		if ref == nil || ref.Value == nil {
			continue
		}
		prop := ref.Value

		rel, hasRelationship := parseRelationship(prop.Extensions[relationshipExtensionKey])
		if hasRelationship {
			if def, ok := rel.definition(property, targetFromRef(ref)); ok {
				m.Associations = append(m.Associations, def)
			}
			if isComposite(prop) {
				continue
			}
		}
		m.Table.Columns = append(m.Table.Columns, convertColumn(property, prop))
	}

	m.Table.PrimaryKey = primaryKey(src.Extensions)
	return m
}

func convertColumn(name string, prop *openapi3.Schema) schema.Column {
	column := schema.Column{
		Name:    name,
		Type:    columnType(prop),
		Null:    prop.Nullable,
		Default: prop.Default,
		Comment: prop.Description,
	}
	if prop.MaxLength != nil {
		column.Length = int(*prop.MaxLength)
	}
	if unique, ok := prop.Extensions[extUnique].(bool); ok {
		column.Unique = unique
	}
	return column
}

// columnType maps an OpenAPI type and format to a column type tag;
// x-column-type wins when present.
func columnType(prop *openapi3.Schema) string {
	if value, ok := stringExtension(prop.Extensions, extColumnType); ok {
		return value
	}
	format := strings.ToLower(prop.Format)
	switch {
	case prop.Type.Is(openapi3.TypeString):
		switch format {
		case "binary", "byte":
			return schema.TypeBinary
		case "uuid":
			return schema.TypeUUID
		case "date":
			return schema.TypeDate
		case "time":
			return schema.TypeTime
		case "date-time":
			return schema.TypeDateTime
		case "ipv4", "ipv6":
			return schema.TypeInet
		}
		return schema.TypeString
	case prop.Type.Is(openapi3.TypeInteger):
		if format == "int64" {
			return schema.TypeBigInt
		}
		return schema.TypeInteger
	case prop.Type.Is(openapi3.TypeNumber):
		if format == "float" || format == "double" {
			return schema.TypeFloat
		}
		return schema.TypeDecimal
	case prop.Type.Is(openapi3.TypeBoolean):
		return schema.TypeBoolean
	case prop.Type.Is(openapi3.TypeObject), prop.Type.Is(openapi3.TypeArray):
		return schema.TypeJSON
	}
	return schema.TypeString
}

func isComposite(prop *openapi3.Schema) bool {
	return prop.Type.Is(openapi3.TypeArray) || prop.Type.Is(openapi3.TypeObject) || len(prop.Properties) > 0
}

// targetFromRef returns the component a property or its items reference.
func targetFromRef(ref *openapi3.SchemaRef) string {
	if ref.Ref != "" {
		return lastSegment(ref.Ref)
	}
	if items := ref.Value.Items; items != nil && items.Ref != "" {
		return lastSegment(items.Ref)
	}
	return ""
}

func primaryKey(ext map[string]any) []string {
	switch value := ext[extPrimaryKey].(type) {
	case string:
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			return []string{trimmed}
		}
	case []any:
		var keys []string
		for _, item := range value {
			if key, ok := item.(string); ok && strings.TrimSpace(key) != "" {
				keys = append(keys, strings.TrimSpace(key))
			}
		}
		return keys
	}
	return nil
}

func stringExtension(ext map[string]any, key string) (string, bool) {
	value, ok := ext[key].(string)
	if !ok {
		return "", false
	}
	value = strings.TrimSpace(value)
	return value, value != ""
}

func splitModelName(name string) (string, string) {
	if plugin, short, ok := strings.Cut(name, "."); ok {
		return plugin, short
	}
	return "", name
}

func lastSegment(ref string) string {
	ref = strings.TrimRight(ref, "/")
	if idx := strings.LastIndex(ref, "/"); idx >= 0 {
		return ref[idx+1:]
	}
	return ref
}
