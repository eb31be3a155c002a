package format

import (
	"regexp"
	"strconv"
	"strings"
)

// Item is a single key/value entry of a List.
type Item struct {
	Key   string `json:"key" yaml:"key"`
	Value string `json:"value" yaml:"value"`
}

// List is an ordered mapping from key to scalar value. Keys that look numeric
// are ordinal and are omitted from the rendered output.
type List []Item

// Values builds a List with ordinal keys.
func Values(values ...string) List {
	if len(values) == 0 {
		return nil
	}
	list := make(List, len(values))
	for idx, value := range values {
		list[idx] = Item{Key: strconv.Itoa(idx), Value: value}
	}
	return list
}

// Set returns a copy of the list with key => value, keeping the position of
// an existing key. The receiver is never modified.
func (l List) Set(key, value string) List {
	out := make(List, len(l), len(l)+1)
	copy(out, l)
	for idx := range out {
		if out[idx].Key == key {
			out[idx].Value = value
			return out
		}
	}
	return append(out, Item{Key: key, Value: value})
}

// Get returns the value stored under key.
func (l List) Get(key string) (string, bool) {
	for _, item := range l {
		if item.Key == key {
			return item.Value, true
		}
	}
	return "", false
}

// Keys returns the keys in order.
func (l List) Keys() []string {
	keys := make([]string, 0, len(l))
	for _, item := range l {
		keys = append(keys, item.Key)
	}
	return keys
}

// StringifyList renders items as a delimited block suitable for an array
// literal body. The opening and closing brackets belong to the caller's
// template; the closing whitespace sits one level shallower than the entries.
func StringifyList(items List, options ...Option) string {
	if len(items) == 0 {
		return ""
	}
	opts := NewOptions(options...)

	entries := make([]string, 0, len(items))
	for _, item := range items {
		value := item.Value
		if opts.Quotes {
			value = "'" + value + "'"
		}
		if !IsNumeric(item.Key) {
			value = "'" + item.Key + "' => " + value
		}
		entries = append(entries, value)
	}

	start, end := "", ""
	join := ", "
	if opts.Indent > 0 {
		start = "\n" + strings.Repeat(opts.Tab, opts.Indent)
		join = "," + start
		end = "\n" + strings.Repeat(opts.Tab, opts.Indent-1)
	}
	if opts.TrailingComma {
		end = "," + end
	}

	return start + strings.Join(entries, join) + end
}

var numericPattern = regexp.MustCompile(`^[ \t\n\r\v\f]*[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?[ \t\n\r\v\f]*$`)

// IsNumeric reports whether key is a decimal number, allowing surrounding
// whitespace, a sign, a fraction and an exponent. "1", " 2", "-3.5" and
// "1e3" are numeric; "", "0x1A" and "id" are not.
func IsNumeric(key string) bool {
	return numericPattern.MatchString(key)
}
