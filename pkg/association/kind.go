package association

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Kind identifies the relationship type of an association.
type Kind string

const (
	KindBelongsTo     Kind = "BelongsTo"
	KindHasOne        Kind = "HasOne"
	KindHasMany       Kind = "HasMany"
	KindBelongsToMany Kind = "BelongsToMany"
)

// Kinds lists every supported kind.
func Kinds() []Kind {
	return []Kind{KindBelongsTo, KindHasOne, KindHasMany, KindBelongsToMany}
}

// ParseKind normalises raw relationship labels. Matching ignores case,
// underscores, dashes and spaces so "has_many", "hasMany" and "HasMany" all
// resolve to KindHasMany.
func ParseKind(raw string) (Kind, bool) {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	normalized = strings.NewReplacer("_", "", "-", "", " ", "").Replace(normalized)
	switch normalized {
	case "belongsto":
		return KindBelongsTo, true
	case "hasone":
		return KindHasOne, true
	case "hasmany":
		return KindHasMany, true
	case "belongstomany", "manytomany":
		return KindBelongsToMany, true
	default:
		return "", false
	}
}

// Cardinality reports "one" or "many" for the kind.
func (k Kind) Cardinality() string {
	switch k {
	case KindHasMany, KindBelongsToMany:
		return "many"
	case KindBelongsTo, KindHasOne:
		return "one"
	default:
		return ""
	}
}

// UnmarshalYAML accepts any label understood by ParseKind.
func (k *Kind) UnmarshalYAML(node *yaml.Node) error {
	var raw string
	if err := node.Decode(&raw); err != nil {
		return err
	}
	kind, ok := ParseKind(raw)
	if !ok {
		return fmt.Errorf("association: unknown kind %q (line %d)", raw, node.Line)
	}
	*k = kind
	return nil
}
