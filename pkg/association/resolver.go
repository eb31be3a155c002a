package association

import (
	"fmt"
	"sync"
)

// ResolverOption configures a Resolver.
type ResolverOption func(*Resolver)

// WithFilter injects the filter used for has-many aliases.
func WithFilter(filter Filter) ResolverOption {
	return func(r *Resolver) {
		r.filter = filter
	}
}

// WithFilterFactory overrides how the default filter is built on first use.
func WithFilterFactory(factory func() Filter) ResolverOption {
	return func(r *Resolver) {
		if factory != nil {
			r.newFilter = factory
		}
	}
}

// Resolver extracts association aliases for generated association
// declarations. The zero value is ready to use.
type Resolver struct {
	once      sync.Once
	filter    Filter
	newFilter func() Filter
}

// NewResolver constructs a Resolver.
func NewResolver(options ...ResolverOption) *Resolver {
	r := &Resolver{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	return r
}

// AliasExtractor returns the target alias of every association of kind in
// declaration order. Has-many aliases are passed through the filter so join
// tables of many-to-many relations are not declared twice.
func (r *Resolver) AliasExtractor(model Source, kind Kind) []string {
	var associations []Association
	if model != nil {
		associations = model.ByKind(kind)
	}
	aliases := make([]string, 0, len(associations))
	for _, assoc := range associations {
		aliases = append(aliases, assoc.TargetAlias())
	}
	if kind == KindHasMany {
		return r.hasManyFilter().FilterHasManyAliases(model, aliases)
	}
	return aliases
}

// AssociatedAlias returns the target alias of the association called name.
func (r *Resolver) AssociatedAlias(model Source, name string) (string, error) {
	if model == nil {
		return "", fmt.Errorf("%w: %q", ErrAssociationNotFound, name)
	}
	assoc, ok := model.Association(name)
	if !ok || assoc == nil {
		return "", fmt.Errorf("%w: %q", ErrAssociationNotFound, name)
	}
	return assoc.TargetAlias(), nil
}

func (r *Resolver) hasManyFilter() Filter {
	r.once.Do(func() {
		if r.filter != nil {
			return
		}
		factory := r.newFilter
		if factory == nil {
			factory = NewFilter
		}
		r.filter = factory()
	})
	return r.filter
}
