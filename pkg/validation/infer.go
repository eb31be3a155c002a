package validation

import "github.com/goliatone/go-bake/pkg/schema"

// Infer derives the default rules generated for a column. The "valid" entry
// carries the type rule (if any) and the emptiness directive: primary keys may
// be empty on create, nullable columns may be empty, everything else is
// required. Unique columns add a table-provided uniqueness rule.
func Infer(column schema.Column, primaryKey bool) Rules {
	allow := Forbid()
	switch {
	case primaryKey:
		allow = AllowWithMessage("create")
	case column.Null:
		allow = Allow()
	}

	rules := Rules{{
		Name: "valid",
		Rule: Rule{Rule: typeRule(column), AllowEmpty: allow},
	}}
	if column.Unique && !primaryKey {
		rules = append(rules, NamedRule{
			Name: "unique",
			Rule: Rule{Rule: "validateUnique", Provider: "table"},
		})
	}
	return rules
}

func typeRule(column schema.Column) string {
	if column.Name == "email" {
		return "email"
	}
	switch column.Type {
	case schema.TypeUUID:
		return "uuid"
	case schema.TypeInteger, schema.TypeBigInt:
		return "integer"
	case schema.TypeFloat:
		return "numeric"
	case schema.TypeDecimal:
		return "decimal"
	case schema.TypeBoolean:
		return "boolean"
	case schema.TypeDate:
		return "date"
	case schema.TypeTime:
		return "time"
	case schema.TypeDateTime, schema.TypeTimestamp:
		return "dateTime"
	case schema.TypeInet:
		return "ip"
	default:
		return ""
	}
}
