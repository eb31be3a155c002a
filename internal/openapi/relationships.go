package openapi

import (
	"strings"
	"unicode"

	"github.com/goliatone/go-bake/pkg/association"
	"github.com/goliatone/go-bake/pkg/inflect"
)

const relationshipExtensionKey = "x-relationships"

const (
	relationshipTypeAttr       = "type"
	relationshipTargetAttr     = "target"
	relationshipForeignKeyAttr = "foreignKey"
	relationshipThroughAttr    = "through"
	relationshipAliasAttr      = "alias"
)

var relationshipKeyLookup = map[string]string{
	"type":       relationshipTypeAttr,
	"kind":       relationshipTypeAttr,
	"target":     relationshipTargetAttr,
	"foreignkey": relationshipForeignKeyAttr,
	"foreignid":  relationshipForeignKeyAttr,
	"through":    relationshipThroughAttr,
	"pivot":      relationshipThroughAttr,
	"junction":   relationshipThroughAttr,
	"alias":      relationshipAliasAttr,
	"name":       relationshipAliasAttr,
}

type relationship map[string]string

// parseRelationship normalises an x-relationships value. Keys are matched
// ignoring case and separators; unknown keys and non-string values are
// dropped.
func parseRelationship(value any) (relationship, bool) {
	raw, ok := value.(map[string]any)
	if !ok || len(raw) == 0 {
		return nil, false
	}

	rel := make(relationship)
	for key, val := range raw {
		canonical, ok := relationshipKeyLookup[normaliseKey(key)]
		if !ok {
			continue
		}
		if str, ok := val.(string); ok && strings.TrimSpace(str) != "" {
			rel[canonical] = strings.TrimSpace(str)
		}
	}
	if _, ok := rel[relationshipTypeAttr]; !ok {
		return nil, false
	}
	return rel, true
}

// definition converts the relationship declared on property into an
// association. The target defaults to the referenced component; the alias
// defaults to the target, or the camelized property name when neither is
// known. belongsTo relationships on scalar properties use the property as
// their foreign key.
func (r relationship) definition(property, refTarget string) (association.Definition, bool) {
	kind, ok := association.ParseKind(r[relationshipTypeAttr])
	if !ok {
		return association.Definition{}, false
	}

	target := lastSegment(r[relationshipTargetAttr])
	if target == "" {
		target = refTarget
	}
	alias := r[relationshipAliasAttr]
	if alias == "" {
		alias = target
	}
	if alias == "" {
		alias = inflect.Camelize(property)
	}

	def := association.Definition{
		Alias:      alias,
		Type:       kind,
		Through:    lastSegment(r[relationshipThroughAttr]),
		ForeignKey: r[relationshipForeignKeyAttr],
	}
	if target != "" && target != alias {
		def.Target = target
	}
	if def.ForeignKey == "" && kind == association.KindBelongsTo && refTarget == "" {
		def.ForeignKey = property
	}
	return def, true
}

func normaliseKey(raw string) string {
	var builder strings.Builder
	builder.Grow(len(raw))
	for _, r := range raw {
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			builder.WriteRune(unicode.ToLower(r))
		}
	}
	return builder.String()
}
