package identity

import (
	"sort"
	"strings"
	"sync"
)

// Built-in framework classes that generated code refers to by short name.
// Names are namespace paths relative to the framework root.
var builtinClasses = []string{
	`Controller\Component\AuthComponent`,
	`Controller\Component\CookieComponent`,
	`Controller\Component\CsrfComponent`,
	`Controller\Component\FlashComponent`,
	`Controller\Component\PaginatorComponent`,
	`Controller\Component\RequestHandlerComponent`,
	`Controller\Component\SecurityComponent`,
	`View\Helper\BreadcrumbsHelper`,
	`View\Helper\FlashHelper`,
	`View\Helper\FormHelper`,
	`View\Helper\HtmlHelper`,
	`View\Helper\NumberHelper`,
	`View\Helper\PaginatorHelper`,
	`View\Helper\TextHelper`,
	`View\Helper\TimeHelper`,
	`View\Helper\UrlHelper`,
	`ORM\Behavior\CounterCacheBehavior`,
	`ORM\Behavior\TimestampBehavior`,
	`ORM\Behavior\TranslateBehavior`,
	`ORM\Behavior\TreeBehavior`,
}

// Registry is the set of classes shipped by the framework. Lookups ignore
// leading and trailing separators and accept "/" as a separator. An empty
// registry never matches.
type Registry struct {
	mu      sync.RWMutex
	classes map[string]struct{}
}

// NewRegistry constructs a registry seeded with the framework's built-in
// components, helpers and behaviors.
func NewRegistry() *Registry {
	reg := NewEmptyRegistry()
	reg.Register(builtinClasses...)
	return reg
}

// NewEmptyRegistry constructs a registry without built-ins.
func NewEmptyRegistry() *Registry {
	return &Registry{classes: make(map[string]struct{})}
}

// Register adds class names relative to the framework root, for example
// `View\Helper\FormHelper`. Blank names are ignored.
func (r *Registry) Register(names ...string) {
	if r == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.classes == nil {
		r.classes = make(map[string]struct{}, len(names))
	}
	for _, name := range names {
		key := normalizeNamespace(name)
		if key == "" {
			continue
		}
		r.classes[key] = struct{}{}
	}
}

// Has reports whether the framework ships the class.
func (r *Registry) Has(name string) bool {
	if r == nil {
		return false
	}
	key := normalizeNamespace(name)
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.classes[key]
	return ok
}

// Names returns every registered class, sorted.
func (r *Registry) Names() []string {
	if r == nil {
		return nil
	}
	r.mu.RLock()
	names := make([]string, 0, len(r.classes))
	for name := range r.classes {
		names = append(names, name)
	}
	r.mu.RUnlock()
	sort.Strings(names)
	return names
}

func normalizeNamespace(path string) string {
	return strings.Trim(strings.ReplaceAll(strings.TrimSpace(path), "/", Separator), Separator)
}
