package prompt

import (
	"context"
	"errors"
	"strings"
)

// Namespaces lists the sub-namespaces offered when choosing the kind of class
// to resolve, paired with the conventional class suffix.
var Namespaces = []Namespace{
	{Path: "Controller", Suffix: "Controller"},
	{Path: "Controller/Component", Suffix: "Component"},
	{Path: "Model/Table", Suffix: "Table"},
	{Path: "Model/Entity", Suffix: ""},
	{Path: "Model/Behavior", Suffix: "Behavior"},
	{Path: "View/Helper", Suffix: "Helper"},
	{Path: "View/Cell", Suffix: "Cell"},
	{Path: "Command", Suffix: "Command"},
}

// Namespace is a sub-namespace and the suffix its classes carry.
type Namespace struct {
	Path   string
	Suffix string
}

// Sections asks which output sections to print. Every section is selected by
// default; an empty answer keeps them all.
func Sections(ctx context.Context, d Driver, all []string) ([]string, error) {
	if len(all) == 0 {
		return nil, nil
	}
	defaults := make([]int, len(all))
	for idx := range all {
		defaults[idx] = idx
	}
	picked, err := d.MultiSelect(ctx, SelectConfig{
		Message:  "Sections to print",
		Options:  all,
		Defaults: defaults,
	})
	if err != nil {
		return nil, err
	}
	if len(picked) == 0 {
		return append([]string(nil), all...), nil
	}
	out := make([]string, 0, len(picked))
	for _, idx := range picked {
		if idx >= 0 && idx < len(all) {
			out = append(out, all[idx])
		}
	}
	return out, nil
}

// ClassName asks for a (possibly plugin-qualified) class name.
func ClassName(ctx context.Context, d Driver, suggested string) (string, error) {
	name, err := d.Input(ctx, InputConfig{
		Message: "Class name",
		Default: suggested,
		Help:    `Use Plugin.Name for plugin classes, e.g. "Blog.Articles".`,
		Validator: func(value string) error {
			if strings.TrimSpace(value) == "" {
				return errors.New("class name is required")
			}
			return nil
		},
	})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(name), nil
}

// ChooseNamespace asks which kind of class to resolve.
func ChooseNamespace(ctx context.Context, d Driver, current string) (Namespace, error) {
	options := make([]string, len(Namespaces))
	defaultIndex := 0
	for idx, ns := range Namespaces {
		options[idx] = ns.Path
		if ns.Path == current {
			defaultIndex = idx
		}
	}
	idx, err := d.Select(ctx, SelectConfig{
		Message:      "Class type",
		Options:      options,
		DefaultIndex: defaultIndex,
	})
	if err != nil {
		return Namespace{}, err
	}
	if idx < 0 || idx >= len(Namespaces) {
		return Namespaces[defaultIndex], nil
	}
	return Namespaces[idx], nil
}

// SkipLargeColumns asks whether binary and text columns are left out of the
// field list.
func SkipLargeColumns(ctx context.Context, d Driver) (bool, error) {
	return d.Confirm(ctx, ConfirmConfig{
		Message: "Skip binary and text columns?",
		Default: true,
	})
}
