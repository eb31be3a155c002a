// Package identity resolves the fully-qualified name, namespace and plugin of
// generated classes. Plugin-qualified references ("Blog.Posts") resolve under
// the plugin namespace, bare references under the application namespace, and
// classes the framework ships resolve under the framework root.
package identity

import "strings"

const (
	// Separator is the namespace delimiter of generated code.
	Separator = `\`

	// NamespaceKey is the configuration key holding the application namespace.
	NamespaceKey = "App.namespace"

	// DefaultNamespace is used when the configuration has no namespace.
	DefaultNamespace = "App"

	// DefaultFrameworkRoot is the namespace root of built-in classes.
	DefaultFrameworkRoot = "Cake"
)

// ConfigReader is the read-only configuration lookup.
type ConfigReader interface {
	Read(key string) (string, bool)
}

// StaticConfig is a ConfigReader backed by a map.
type StaticConfig map[string]string

// Read implements ConfigReader.
func (c StaticConfig) Read(key string) (string, bool) {
	value, ok := c[key]
	return value, ok
}

// Identity describes a resolved class.
type Identity struct {
	FQN       string `json:"fqn" yaml:"fqn"`
	Namespace string `json:"namespace" yaml:"namespace"`
	Plugin    string `json:"plugin,omitempty" yaml:"plugin,omitempty"`
	Class     string `json:"class" yaml:"class"`
	Name      string `json:"name" yaml:"name"`
	FullName  string `json:"fullName" yaml:"fullName"`
}

// HasPlugin reports whether the class was plugin-qualified.
func (i Identity) HasPlugin() bool { return i.Plugin != "" }

// Option configures a Resolver.
type Option func(*Resolver)

// WithRegistry replaces the built-in class registry.
func WithRegistry(registry *Registry) Option {
	return func(r *Resolver) {
		if registry != nil {
			r.registry = registry
		}
	}
}

// WithFrameworkRoot overrides the namespace root of built-in classes.
func WithFrameworkRoot(root string) Option {
	return func(r *Resolver) {
		if trimmed := normalizeNamespace(root); trimmed != "" {
			r.frameworkRoot = trimmed
		}
	}
}

// Resolver computes class identities. It holds no mutable state of its own and
// is safe for concurrent use.
type Resolver struct {
	config        ConfigReader
	registry      *Registry
	frameworkRoot string
}

// NewResolver constructs a Resolver reading the application namespace from
// config. A nil config resolves bare classes under DefaultNamespace.
func NewResolver(config ConfigReader, options ...Option) *Resolver {
	r := &Resolver{
		config:        config,
		registry:      NewRegistry(),
		frameworkRoot: DefaultFrameworkRoot,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	return r
}

// ClassInfo resolves class (optionally "Plugin.Name") within subNamespace,
// appending suffix to the short name. ClassInfo("Blog.Posts", "Model/Table",
// "Table") yields `\Blog\Model\Table\PostsTable`.
func (r *Resolver) ClassInfo(class, subNamespace, suffix string) Identity {
	plugin, name := PluginSplit(class)

	base := r.appNamespace()
	if plugin != "" {
		base = plugin
	}
	base = normalizeNamespace(base)

	sub := Separator + normalizeNamespace(subNamespace)
	tail := sub + Separator + name + suffix

	if r.registry.Has(tail) {
		base = r.frameworkRoot
	}

	return Identity{
		FQN:       Separator + base + tail,
		Namespace: base + sub,
		Plugin:    plugin,
		Class:     name + suffix,
		Name:      name,
		FullName:  class,
	}
}

func (r *Resolver) appNamespace() string {
	if r.config != nil {
		if ns, ok := r.config.Read(NamespaceKey); ok && strings.TrimSpace(ns) != "" {
			return ns
		}
	}
	return DefaultNamespace
}

// PluginSplit splits "Plugin.Name" at the first dot. Bare names return an
// empty plugin.
func PluginSplit(class string) (plugin, name string) {
	if idx := strings.Index(class, "."); idx >= 0 {
		return class[:idx], class[idx+1:]
	}
	return "", class
}
