package format

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestStringifyList_EmptyInputRendersNothing(t *testing.T) {
	optionSets := [][]Option{
		nil,
		{WithIndent(0)},
		{WithIndent(3), WithTrailingComma(true)},
		{WithQuotes(false), WithTab("\t")},
	}
	for _, opts := range optionSets {
		if got := StringifyList(nil, opts...); got != "" {
			t.Fatalf("expected empty output, got %q", got)
		}
		if got := StringifyList(List{}, opts...); got != "" {
			t.Fatalf("expected empty output, got %q", got)
		}
	}
}

func TestStringifyList(t *testing.T) {
	cases := []struct {
		name    string
		items   List
		options []Option
		want    string
	}{
		{
			name:    "ordinal keys single indent",
			items:   Values("a", "b"),
			options: []Option{WithIndent(1), WithTab("  ")},
			want:    "\n  'a',\n  'b'\n",
		},
		{
			name:  "defaults",
			items: Values("Flash", "Paginator"),
			want:  "\n        'Flash',\n        'Paginator'\n    ",
		},
		{
			name:    "keyed entry",
			items:   List{{Key: "x", Value: "y"}},
			options: []Option{WithIndent(0)},
			want:    "'x' => 'y'",
		},
		{
			name:    "inline join",
			items:   Values("Form", "Html"),
			options: []Option{WithIndent(0)},
			want:    "'Form', 'Html'",
		},
		{
			name:    "unquoted keyed values",
			items:   List{{Key: "*", Value: "true"}, {Key: "id", Value: "false"}},
			options: []Option{WithQuotes(false)},
			want:    "\n        '*' => true,\n        'id' => false\n    ",
		},
		{
			name:    "trailing comma",
			items:   Values("a"),
			options: []Option{WithIndent(1), WithTab("  "), WithTrailingComma(true)},
			want:    "\n  'a',\n",
		},
		{
			name:    "trailing comma inline",
			items:   Values("a", "b"),
			options: []Option{WithIndent(0), WithTrailingComma(true)},
			want:    "'a', 'b',",
		},
		{
			name:    "numeric looking string key stays ordinal",
			items:   List{{Key: "10", Value: "a"}, {Key: "1.5", Value: "b"}, {Key: "name", Value: "c"}},
			options: []Option{WithIndent(0)},
			want:    "'a', 'b', 'name' => 'c'",
		},
		{
			name:    "negative indent behaves like zero",
			items:   Values("a", "b"),
			options: []Option{WithIndent(-2)},
			want:    "'a', 'b'",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := StringifyList(tc.items, tc.options...)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("StringifyList mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestStringifyList_TrailingCommaNeverDoubles(t *testing.T) {
	got := StringifyList(Values("a", "b", "c"), WithTrailingComma(true))
	if strings.Count(got, ",,") != 0 {
		t.Fatalf("unexpected doubled comma in %q", got)
	}
	if !strings.HasSuffix(got, "'c',\n    ") {
		t.Fatalf("expected single trailing comma before closing whitespace, got %q", got)
	}
}

func TestWithOptionsReplacesDefaults(t *testing.T) {
	got := NewOptions(WithOptions(Options{Indent: 1, Tab: "\t"}))
	want := Options{Indent: 1, Tab: "\t"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("options mismatch (-want +got):\n%s", diff)
	}
}

func TestIsNumeric(t *testing.T) {
	cases := map[string]bool{
		"0":     true,
		"42":    true,
		" 7":    true,
		"-3":    true,
		"+1.5":  true,
		".5":    true,
		"1.":    true,
		"1e3":   true,
		"2E-2 ": true,
		"":      false,
		".":     false,
		"id":    false,
		"0x1A":  false,
		"1_000": false,
		"*":     false,
	}
	for key, want := range cases {
		if got := IsNumeric(key); got != want {
			t.Errorf("IsNumeric(%q) = %v, want %v", key, got, want)
		}
	}
}

func TestListSetKeepsKeyPosition(t *testing.T) {
	list := List{}.Set("a", "1").Set("b", "2").Set("a", "3")
	want := List{{Key: "a", Value: "3"}, {Key: "b", Value: "2"}}
	if diff := cmp.Diff(want, list); diff != "" {
		t.Fatalf("list mismatch (-want +got):\n%s", diff)
	}
	if value, ok := list.Get("b"); !ok || value != "2" {
		t.Fatalf("expected b=2, got %q (ok=%v)", value, ok)
	}
	if diff := cmp.Diff([]string{"a", "b"}, list.Keys()); diff != "" {
		t.Fatalf("keys mismatch (-want +got):\n%s", diff)
	}
}

func TestListSetLeavesReceiverUntouched(t *testing.T) {
	base := make(List, 1, 4)
	base[0] = Item{Key: "a", Value: "1"}

	left := base.Set("b", "2")
	right := base.Set("c", "3")

	if diff := cmp.Diff(List{{Key: "a", Value: "1"}, {Key: "b", Value: "2"}}, left); diff != "" {
		t.Fatalf("left mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(List{{Key: "a", Value: "1"}, {Key: "c", Value: "3"}}, right); diff != "" {
		t.Fatalf("right mismatch (-want +got):\n%s", diff)
	}

	values := Values("x", "y")
	replaced := values.Set("0", "mutated")
	if diff := cmp.Diff(Values("x", "y"), values); diff != "" {
		t.Fatalf("receiver changed (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(Values("mutated", "y"), replaced); diff != "" {
		t.Fatalf("replaced mismatch (-want +got):\n%s", diff)
	}
}
