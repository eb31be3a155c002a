package fields

import (
	"iter"
	"slices"

	"github.com/goliatone/go-bake/pkg/schema"
)

// DefaultFilterTypes are the column types that never get a form control.
var DefaultFilterTypes = []string{schema.TypeBinary, schema.TypeText}

// Filter returns the fields worth rendering controls for: fields whose column
// type is in filterTypes (DefaultFilterTypes when none are given) are dropped,
// and when take is non-empty only the named fields are kept. Input order is
// preserved. The sequence is evaluated lazily and can be ranged over again.
func Filter(fields []string, s schema.Schema, take []string, filterTypes ...string) iter.Seq[string] {
	if len(filterTypes) == 0 {
		filterTypes = DefaultFilterTypes
	}
	fields = slices.Clone(fields)
	filterTypes = slices.Clone(filterTypes)
	take = slices.Clone(take)

	return func(yield func(string) bool) {
		for _, field := range fields {
			if s != nil && slices.Contains(filterTypes, s.ColumnType(field)) {
				continue
			}
			if len(take) > 0 && !slices.Contains(take, field) {
				continue
			}
			if !yield(field) {
				return
			}
		}
	}
}

// Data returns the column metadata of field.
func Data(field string, s schema.Schema) (schema.Column, bool) {
	if s == nil {
		return schema.Column{}, false
	}
	return s.Column(field)
}
