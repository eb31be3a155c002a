// Package fields derives per-field directives for generated entities and
// forms: mass-assignment accessibility and the list of fields worth rendering
// controls for.
package fields

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-bake/pkg/format"
)

// Selection is the tri-modal accessible-fields setting: unspecified (zero
// value), explicitly disabled, or an explicit list of names.
type Selection struct {
	disabled bool
	names    []string
}

// None disables accessibility for every field.
func None() Selection { return Selection{disabled: true} }

// Only marks exactly the given fields accessible.
func Only(names ...string) Selection {
	return Selection{names: append([]string(nil), names...)}
}

// Disabled reports whether accessibility was explicitly turned off.
func (s Selection) Disabled() bool { return s.disabled }

// Names returns the explicit field list.
func (s Selection) Names() []string { return append([]string(nil), s.names...) }

// UnmarshalYAML accepts `false` or a list of field names.
func (s *Selection) UnmarshalYAML(node *yaml.Node) error {
	switch {
	case node.Kind == yaml.ScalarNode && node.ShortTag() == "!!bool":
		var enabled bool
		if err := node.Decode(&enabled); err != nil {
			return err
		}
		if enabled {
			*s = Selection{}
		} else {
			*s = None()
		}
		return nil
	case node.Kind == yaml.SequenceNode:
		var names []string
		if err := node.Decode(&names); err != nil {
			return err
		}
		*s = Only(names...)
		return nil
	default:
		return fmt.Errorf("fields: accessible must be false or a list (line %d)", node.Line)
	}
}

// Accessibility returns the accessible map of a generated entity as an
// ordered list of field => "true"|"false". Explicit field lists win; otherwise
// everything is accessible except the primary key. A disabled selection, or an
// unspecified one without a primary key, yields an empty list.
func Accessibility(fields Selection, primaryKey []string) format.List {
	accessible := format.List{}
	if fields.disabled {
		return accessible
	}

	if len(fields.names) > 0 {
		for _, field := range fields.names {
			accessible = accessible.Set(field, "true")
		}
		return accessible
	}

	if len(primaryKey) > 0 {
		accessible = accessible.Set("*", "true")
		for _, field := range primaryKey {
			accessible = accessible.Set(field, "false")
		}
	}
	return accessible
}
