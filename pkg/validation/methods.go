package validation

import "fmt"

// Methods translates rules into validator method-chain fragments for field.
// Fragments follow rule order; within one rule the rule fragment precedes the
// fragments derived from its allowEmpty directive. Rules without a rule name
// or allowEmpty directive emit nothing.
func Methods(field string, rules Rules) []string {
	methods := make([]string, 0, len(rules))

	for _, entry := range rules {
		if entry.Rule.Rule != "" {
			if entry.Provider == "" {
				methods = append(methods, fmt.Sprintf("->%s('%s')", entry.Rule.Rule, field))
			} else {
				methods = append(methods, fmt.Sprintf(
					"->add('%s', '%s', ['rule' => '%s', 'provider' => '%s'])",
					field,
					entry.Name,
					entry.Rule.Rule,
					entry.Provider,
				))
			}
		}

		if !entry.AllowEmpty.IsSet() {
			continue
		}
		if message, ok := entry.AllowEmpty.Message(); ok {
			methods = append(methods, fmt.Sprintf("->allowEmpty('%s', '%s')", field, message))
		} else if entry.AllowEmpty.Allowed() {
			methods = append(methods, fmt.Sprintf("->allowEmpty('%s')", field))
		} else {
			methods = append(methods,
				fmt.Sprintf("->requirePresence('%s', 'create')", field),
				fmt.Sprintf("->notEmpty('%s')", field),
			)
		}
	}

	return methods
}
