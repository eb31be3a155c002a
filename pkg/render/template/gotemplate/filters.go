package gotemplate

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-bake/pkg/format"
	"github.com/goliatone/go-bake/pkg/inflect"
)

type stringFilter func(string) string

var defaultFilters = map[string]pongo2.FilterFunction{
	"trim":           stringValue(strings.TrimSpace),
	"lowerfirst":     stringValue(lowerFirst),
	"camelize":       stringValue(func(s string) string { return inflect.Camelize(s) }),
	"humanize":       stringValue(func(s string) string { return inflect.Humanize(s) }),
	"underscore":     stringValue(inflect.Underscore),
	"variable":       stringValue(inflect.Variable),
	"stringify_list": filterStringifyList,
}

// registerDefaultFilters installs the engine filters once per process; a
// name already claimed by the host application is left alone.
func registerDefaultFilters() {
	for name, fn := range defaultFilters {
		if pongo2.FilterExists(name) {
			continue
		}
		_ = pongo2.RegisterFilter(name, fn)
	}
}

func stringValue(fn stringFilter) pongo2.FilterFunction {
	return func(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
		if in == nil || in.IsNil() {
			return pongo2.AsValue(""), nil
		}
		return pongo2.AsValue(fn(in.String())), nil
	}
}

func lowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}

// filterStringifyList renders a list with format.StringifyList. The optional
// parameter is the indent level; without one the list is rendered inline.
// Output is marked safe since element templates emit source code, not HTML.
func filterStringifyList(in *pongo2.Value, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	indent := 0
	if param != nil && !param.IsNil() {
		indent = param.Integer()
	}

	var raw any
	if in != nil {
		raw = in.Interface()
	}
	return pongo2.AsSafeValue(format.StringifyList(listFromValue(raw), format.WithIndent(indent))), nil
}

// listFromValue converts template data into a format.List. Slices get ordinal
// keys, objects are ordered by key. Nested objects reach filters as
// pongo2.Context after the context conversion.
func listFromValue(value any) format.List {
	if object, ok := asObject(value); ok {
		keys := make([]string, 0, len(object))
		for key := range object {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		list := make(format.List, 0, len(keys))
		for _, key := range keys {
			list = append(list, format.Item{Key: key, Value: scalar(object[key])})
		}
		return list
	}

	switch v := value.(type) {
	case nil:
		return nil
	case format.List:
		return v
	case []string:
		return format.Values(v...)
	case []any:
		// A format.List that went through the context JSON round trip.
		if items, ok := listItems(v); ok {
			return items
		}
		values := make([]string, 0, len(v))
		for _, item := range v {
			values = append(values, scalar(item))
		}
		return format.Values(values...)
	case map[string]string:
		keys := make([]string, 0, len(v))
		for key := range v {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		list := make(format.List, 0, len(keys))
		for _, key := range keys {
			list = append(list, format.Item{Key: key, Value: v[key]})
		}
		return list
	default:
		return format.Values(scalar(v))
	}
}

func asObject(value any) (map[string]any, bool) {
	switch v := value.(type) {
	case pongo2.Context:
		return map[string]any(v), true
	case map[string]any:
		return v, true
	default:
		return nil, false
	}
}

func listItems(values []any) (format.List, bool) {
	if len(values) == 0 {
		return nil, false
	}
	list := make(format.List, 0, len(values))
	for _, value := range values {
		entry, ok := asObject(value)
		if !ok || len(entry) != 2 {
			return nil, false
		}
		key, hasKey := entry["key"].(string)
		item, hasValue := entry["value"].(string)
		if !hasKey || !hasValue {
			return nil, false
		}
		list = append(list, format.Item{Key: key, Value: item})
	}
	return list, true
}

func scalar(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}
