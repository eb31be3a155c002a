package fields

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-bake/pkg/format"
	"github.com/goliatone/go-bake/pkg/schema"
)

func TestAccessibility(t *testing.T) {
	cases := []struct {
		name       string
		fields     Selection
		primaryKey []string
		want       format.List
	}{
		{
			name:       "disabled",
			fields:     None(),
			primaryKey: []string{"id"},
			want:       format.List{},
		},
		{
			name:       "empty list falls back to primary key",
			fields:     Only(),
			primaryKey: []string{"id"},
			want:       format.List{{Key: "*", Value: "true"}, {Key: "id", Value: "false"}},
		},
		{
			name:       "unspecified with composite key",
			primaryKey: []string{"article_id", "tag_id"},
			want: format.List{
				{Key: "*", Value: "true"},
				{Key: "article_id", Value: "false"},
				{Key: "tag_id", Value: "false"},
			},
		},
		{
			name:       "explicit fields",
			fields:     Only("title", "body"),
			primaryKey: []string{"id"},
			want:       format.List{{Key: "title", Value: "true"}, {Key: "body", Value: "true"}},
		},
		{
			name: "nothing known",
			want: format.List{},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Accessibility(tc.fields, tc.primaryKey)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("Accessibility mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestAccessibilityRendersAsEntityProperty(t *testing.T) {
	list := Accessibility(Selection{}, []string{"id"})
	got := format.StringifyList(list, format.WithQuotes(false), format.WithTrailingComma(true))
	want := "\n        '*' => true,\n        'id' => false,\n    "
	if got != want {
		t.Fatalf("rendered accessible mismatch\nwant: %q\n got: %q", want, got)
	}
}

func TestSelectionDecodesFromYAML(t *testing.T) {
	var disabled Selection
	if err := yaml.Unmarshal([]byte("false"), &disabled); err != nil {
		t.Fatalf("decode false: %v", err)
	}
	if !disabled.Disabled() {
		t.Fatalf("expected false to disable accessibility")
	}

	var listed Selection
	if err := yaml.Unmarshal([]byte("[title, body]"), &listed); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if diff := cmp.Diff([]string{"title", "body"}, listed.Names()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}

	var invalid Selection
	if err := yaml.Unmarshal([]byte("title"), &invalid); err == nil {
		t.Fatalf("expected scalar string to be rejected")
	}
}

func articlesTable() *schema.Table {
	return &schema.Table{
		Name: "articles",
		Columns: []schema.Column{
			{Name: "id", Type: schema.TypeInteger},
			{Name: "title", Type: schema.TypeString},
			{Name: "body", Type: schema.TypeText},
			{Name: "cover", Type: schema.TypeBinary},
			{Name: "published", Type: schema.TypeBoolean},
			{Name: "created", Type: schema.TypeDateTime},
		},
		PrimaryKey: []string{"id"},
	}
}

func TestFilter(t *testing.T) {
	table := articlesTable()

	got := slices.Collect(Filter(table.Fields(), table, nil))
	want := []string{"id", "title", "published", "created"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Filter mismatch (-want +got):\n%s", diff)
	}
}

func TestFilter_TakeKeepsInputOrder(t *testing.T) {
	table := articlesTable()

	got := slices.Collect(Filter(table.Fields(), table, []string{"published", "title", "body"}))
	want := []string{"title", "published"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Filter mismatch (-want +got):\n%s", diff)
	}
}

func TestFilter_CustomTypesAndRestart(t *testing.T) {
	table := articlesTable()
	seq := Filter(table.Fields(), table, nil, schema.TypeBoolean)

	first := slices.Collect(seq)
	second := slices.Collect(seq)
	want := []string{"id", "title", "body", "cover", "created"}
	if diff := cmp.Diff(want, first); diff != "" {
		t.Fatalf("first pass mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("sequence not restartable (-first +second):\n%s", diff)
	}

	var taken []string
	for field := range seq {
		taken = append(taken, field)
		if len(taken) == 2 {
			break
		}
	}
	if diff := cmp.Diff([]string{"id", "title"}, taken); diff != "" {
		t.Fatalf("early stop mismatch (-want +got):\n%s", diff)
	}
}

func TestData(t *testing.T) {
	column, ok := Data("title", articlesTable())
	if !ok || column.Type != schema.TypeString {
		t.Fatalf("expected title column, got %+v (ok=%v)", column, ok)
	}
	if _, ok := Data("missing", articlesTable()); ok {
		t.Fatalf("expected missing column lookup to fail")
	}
	if _, ok := Data("title", nil); ok {
		t.Fatalf("expected nil schema lookup to fail")
	}
}
