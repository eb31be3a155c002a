// Package bake is the formatting layer of a code-scaffolding tool. Helper
// wires the list formatter, association resolver, validation translator,
// class identity resolver and field helpers behind one value that element
// templates and commands share.
package bake

import (
	"fmt"
	"iter"
	"maps"

	"github.com/goliatone/go-bake/pkg/association"
	"github.com/goliatone/go-bake/pkg/config"
	"github.com/goliatone/go-bake/pkg/elements"
	"github.com/goliatone/go-bake/pkg/fields"
	"github.com/goliatone/go-bake/pkg/format"
	"github.com/goliatone/go-bake/pkg/identity"
	"github.com/goliatone/go-bake/pkg/inflect"
	"github.com/goliatone/go-bake/pkg/model"
	"github.com/goliatone/go-bake/pkg/render/template"
	"github.com/goliatone/go-bake/pkg/render/template/gotemplate"
	"github.com/goliatone/go-bake/pkg/schema"
	"github.com/goliatone/go-bake/pkg/validation"
)

// Option customises a Helper.
type Option func(*Helper)

// WithRenderer injects the renderer used for element templates.
func WithRenderer(renderer template.TemplateRenderer) Option {
	return func(h *Helper) {
		h.renderer = renderer
	}
}

// WithConfig applies application settings: the namespace and framework root
// read by ClassInfo and the list formatting defaults.
func WithConfig(cfg config.Config) Option {
	return func(h *Helper) {
		h.config = cfg
	}
}

// WithFormatOptions appends list formatting defaults applied before the
// per-call options of StringifyList.
func WithFormatOptions(options ...format.Option) Option {
	return func(h *Helper) {
		h.formatOptions = append(h.formatOptions, options...)
	}
}

// WithAssociationResolver injects the association resolver, typically one
// built with a custom filter.
func WithAssociationResolver(resolver *association.Resolver) Option {
	return func(h *Helper) {
		h.associations = resolver
	}
}

// WithIdentityResolver injects the class identity resolver. It takes
// precedence over the resolver derived from WithConfig.
func WithIdentityResolver(resolver *identity.Resolver) Option {
	return func(h *Helper) {
		h.identities = resolver
	}
}

// Helper exposes the scaffolding helpers. A zero-option Helper renders the
// embedded element templates with the pongo2 engine and reads the default
// configuration.
type Helper struct {
	config        config.Config
	formatOptions []format.Option
	renderer      template.TemplateRenderer
	associations  *association.Resolver
	identities    *identity.Resolver
	initialiseErr error
}

// New constructs a Helper. Dependencies not supplied through options are
// initialised with the built-in implementations; a failure to build the
// default renderer is reported by ArrayProperty.
func New(options ...Option) *Helper {
	h := &Helper{config: config.Default()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(h)
	}
	h.applyDefaults()
	return h
}

func (h *Helper) applyDefaults() {
	h.formatOptions = append(h.config.FormatOptions(), h.formatOptions...)
	if h.associations == nil {
		h.associations = association.NewResolver()
	}
	if h.identities == nil {
		h.identities = identity.NewResolver(h.config, h.config.IdentityOptions()...)
	}
	if h.renderer == nil {
		engine, err := gotemplate.New(gotemplate.WithFS(elements.TemplatesFS()))
		if err != nil {
			h.initialiseErr = fmt.Errorf("bake: default renderer: %w", err)
			return
		}
		h.renderer = engine
	}
}

// Renderer returns the renderer element templates go through.
func (h *Helper) Renderer() template.TemplateRenderer {
	return h.renderer
}

// StringifyList renders items as an array literal body using the helper's
// formatting defaults overridden by options.
func (h *Helper) StringifyList(items format.List, options ...format.Option) string {
	opts := make([]format.Option, 0, len(h.formatOptions)+len(options))
	opts = append(opts, h.formatOptions...)
	opts = append(opts, options...)
	return format.StringifyList(items, opts...)
}

// ArrayProperty renders a class property holding an array of camelized
// class names. Empty values render nothing. Keys already present in data are
// kept, so callers may override the name or value passed to the template.
// Renderer errors are returned unchanged.
func (h *Helper) ArrayProperty(name string, values []string, data map[string]any) (string, error) {
	if len(values) == 0 {
		return "", nil
	}
	if h.initialiseErr != nil {
		return "", h.initialiseErr
	}

	camelized := make([]string, len(values))
	for idx, value := range values {
		camelized[idx] = inflect.Camelize(value)
	}

	payload := make(map[string]any, len(data)+2)
	maps.Copy(payload, data)
	if _, ok := payload["name"]; !ok {
		payload["name"] = name
	}
	if _, ok := payload["value"]; !ok {
		payload["value"] = camelized
	}

	return h.renderer.RenderTemplate(elements.ArrayProperty, payload)
}

// AliasExtractor returns the target aliases of the model's associations of
// kind. HasMany aliases that belong to many-to-many relationships are
// filtered out.
func (h *Helper) AliasExtractor(m association.Source, kind association.Kind) []string {
	return h.associations.AliasExtractor(m, kind)
}

// AssociatedTableAlias returns the target alias of the named association.
func (h *Helper) AssociatedTableAlias(m association.Source, name string) (string, error) {
	return h.associations.AssociatedAlias(m, name)
}

// ClassInfo resolves the namespace and naming details of a class.
func (h *Helper) ClassInfo(class, subNamespace, suffix string) identity.Identity {
	return h.identities.ClassInfo(class, subNamespace, suffix)
}

// ValidationMethods translates the rules of field into validator chain
// fragments.
func (h *Helper) ValidationMethods(field string, rules validation.Rules) []string {
	return validation.Methods(field, rules)
}

// ModelValidationMethods returns the chain fragments of a model field,
// falling back to rules inferred from its column.
func (h *Helper) ModelValidationMethods(m model.Model, field string) []string {
	return validation.Methods(field, m.RulesFor(field))
}

// FieldAccessibility returns the mass-assignment map of an entity.
func (h *Helper) FieldAccessibility(selection fields.Selection, primaryKey []string) format.List {
	return fields.Accessibility(selection, primaryKey)
}

// FilterFields lazily yields the fields worth scaffolding; see fields.Filter.
func (h *Helper) FilterFields(fieldList []string, s schema.Schema, take []string, filterTypes ...string) iter.Seq[string] {
	return fields.Filter(fieldList, s, take, filterTypes...)
}

// FieldData returns the column metadata of field.
func (h *Helper) FieldData(field string, s schema.Schema) (schema.Column, bool) {
	return fields.Data(field, s)
}
