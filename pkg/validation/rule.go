package validation

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// AllowEmpty is the tri-modal emptiness directive of a rule. The zero value
// means no directive; Allow and Forbid toggle emptiness; AllowWithMessage
// allows empty values with a custom message.
type AllowEmpty struct {
	set        bool
	allow      bool
	hasMessage bool
	message    string
}

// Allow permits empty values.
func Allow() AllowEmpty { return AllowEmpty{set: true, allow: true} }

// Forbid requires a non-empty value.
func Forbid() AllowEmpty { return AllowEmpty{set: true} }

// AllowWithMessage permits empty values under the given condition or message,
// for example "create".
func AllowWithMessage(message string) AllowEmpty {
	return AllowEmpty{set: true, allow: true, hasMessage: true, message: message}
}

// IsSet reports whether a directive is present.
func (a AllowEmpty) IsSet() bool { return a.set }

// Allowed reports whether empty values are permitted.
func (a AllowEmpty) Allowed() bool { return a.set && a.allow }

// Message returns the custom message, if any.
func (a AllowEmpty) Message() (string, bool) { return a.message, a.hasMessage }

// IsZero lets yaml omit unset directives.
func (a AllowEmpty) IsZero() bool { return !a.set }

// String renders the directive the way it appears in model descriptions.
func (a AllowEmpty) String() string {
	switch {
	case !a.set:
		return ""
	case a.hasMessage:
		return a.message
	case a.allow:
		return "true"
	default:
		return "false"
	}
}

// UnmarshalYAML accepts booleans and strings. yaml.v3 skips unmarshalers for
// null nodes, so a null value leaves the zero (unset) directive.
func (a *AllowEmpty) UnmarshalYAML(node *yaml.Node) error {
	switch node.ShortTag() {
	case "!!bool":
		var allow bool
		if err := node.Decode(&allow); err != nil {
			return err
		}
		if allow {
			*a = Allow()
		} else {
			*a = Forbid()
		}
	case "!!str":
		*a = AllowWithMessage(node.Value)
	default:
		return fmt.Errorf("validation: allowEmpty must be a bool or string (line %d)", node.Line)
	}
	return nil
}

// MarshalYAML writes the directive back as a bool or string.
func (a AllowEmpty) MarshalYAML() (any, error) {
	switch {
	case !a.set:
		return nil, nil
	case a.hasMessage:
		return a.message, nil
	default:
		return a.allow, nil
	}
}

// Rule is one declarative validation directive. An empty Rule means no
// method is emitted; an empty Provider means the rule is built in.
type Rule struct {
	Rule       string     `yaml:"rule,omitempty"`
	Provider   string     `yaml:"provider,omitempty"`
	AllowEmpty AllowEmpty `yaml:"allowEmpty,omitempty"`
}

// NamedRule pairs a rule with its name.
type NamedRule struct {
	Name string
	Rule
}

// Rules is an ordered mapping of rule name to Rule.
type Rules []NamedRule

// Get returns the rule stored under name.
func (r Rules) Get(name string) (Rule, bool) {
	for _, entry := range r {
		if entry.Name == name {
			return entry.Rule, true
		}
	}
	return Rule{}, false
}

// UnmarshalYAML decodes a mapping while keeping declaration order.
func (r *Rules) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("validation: rules must be a mapping (line %d)", node.Line)
	}
	out := make(Rules, 0, len(node.Content)/2)
	for idx := 0; idx+1 < len(node.Content); idx += 2 {
		name := strings.TrimSpace(node.Content[idx].Value)
		if name == "" {
			return fmt.Errorf("validation: empty rule name (line %d)", node.Content[idx].Line)
		}
		var rule Rule
		if err := node.Content[idx+1].Decode(&rule); err != nil {
			return fmt.Errorf("validation: rule %q: %w", name, err)
		}
		out = append(out, NamedRule{Name: name, Rule: rule})
	}
	*r = out
	return nil
}
