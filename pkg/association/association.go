package association

import (
	"errors"
	"strings"
)

// ErrAssociationNotFound is returned when a named association is not defined
// on the model.
var ErrAssociationNotFound = errors.New("association: not found")

// Association is the read-only view of a relationship the resolver needs.
type Association interface {
	Name() string
	Kind() Kind
	TargetAlias() string
}

// Junctioned is implemented by many-to-many associations that expose the alias
// of their join table.
type Junctioned interface {
	JunctionAlias() string
}

// Source exposes the associations declared on a single model.
type Source interface {
	ByKind(kind Kind) []Association
	Association(name string) (Association, bool)
}

// Definition is an in-memory association, typically decoded from a model
// description file.
type Definition struct {
	Alias      string `json:"alias" yaml:"alias"`
	Type       Kind   `json:"type" yaml:"type"`
	Target     string `json:"target,omitempty" yaml:"target,omitempty"`
	Through    string `json:"through,omitempty" yaml:"through,omitempty"`
	ForeignKey string `json:"foreignKey,omitempty" yaml:"foreignKey,omitempty"`
}

// Name returns the association alias.
func (d Definition) Name() string { return d.Alias }

// Kind returns the relationship kind.
func (d Definition) Kind() Kind { return d.Type }

// TargetAlias returns the alias of the associated table, defaulting to the
// association alias when no explicit target is set.
func (d Definition) TargetAlias() string {
	if target := strings.TrimSpace(d.Target); target != "" {
		return target
	}
	return d.Alias
}

// JunctionAlias returns the join table alias for many-to-many associations.
func (d Definition) JunctionAlias() string {
	return strings.TrimSpace(d.Through)
}

var (
	_ Association = Definition{}
	_ Junctioned  = Definition{}
	_ Source      = Collection{}
)

// Collection is an ordered Source backed by Definitions.
type Collection []Definition

// ByKind returns the associations of the given kind in declaration order.
func (c Collection) ByKind(kind Kind) []Association {
	var out []Association
	for _, def := range c {
		if def.Type == kind {
			out = append(out, def)
		}
	}
	return out
}

// Association looks up an association by alias.
func (c Collection) Association(name string) (Association, bool) {
	for _, def := range c {
		if def.Alias == name {
			return def, true
		}
	}
	return nil, false
}
