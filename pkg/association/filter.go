package association

// Filter removes has-many aliases that another association already covers.
type Filter interface {
	FilterHasManyAliases(model Source, aliases []string) []string
}

// JunctionFilter drops has-many aliases that duplicate a belongs-to-many
// association: either its target or its join table. A many-to-many relation
// implies a has-many on the join table that must not be declared twice.
type JunctionFilter struct{}

var _ Filter = JunctionFilter{}

// NewFilter returns the default Filter.
func NewFilter() Filter {
	return JunctionFilter{}
}

// FilterHasManyAliases returns aliases without belongs-to-many targets, join
// table aliases and duplicates, preserving order.
func (JunctionFilter) FilterHasManyAliases(model Source, aliases []string) []string {
	covered := BelongsToManyAliases(model)
	out := make([]string, 0, len(aliases))
	seen := make(map[string]struct{}, len(aliases))
	for _, alias := range aliases {
		if _, skip := covered[alias]; skip {
			continue
		}
		if _, dup := seen[alias]; dup {
			continue
		}
		seen[alias] = struct{}{}
		out = append(out, alias)
	}
	return out
}

// BelongsToManyAliases collects the target and junction aliases of every
// belongs-to-many association on model.
func BelongsToManyAliases(model Source) map[string]struct{} {
	covered := make(map[string]struct{})
	if model == nil {
		return covered
	}
	for _, assoc := range model.ByKind(KindBelongsToMany) {
		if target := assoc.TargetAlias(); target != "" {
			covered[target] = struct{}{}
		}
		if junction, ok := assoc.(Junctioned); ok {
			if alias := junction.JunctionAlias(); alias != "" {
				covered[alias] = struct{}{}
			}
		}
	}
	return covered
}
