package template_test

import (
	"embed"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goliatone/go-bake/pkg/fields"
	"github.com/goliatone/go-bake/pkg/format"
	"github.com/goliatone/go-bake/pkg/render/template/gotemplate"
	"github.com/goliatone/go-bake/pkg/testsupport"
)

//go:embed testdata/templates/*.tpl
var embeddedTemplates embed.FS

func TestGoTemplateEngine_RenderTemplate(t *testing.T) {
	engine := newEngine(t)

	result, written := testsupport.CaptureTemplateOutput(t, func(w io.Writer) (string, error) {
		return engine.RenderTemplate("hello", map[string]any{"name": "Ada"}, w)
	})

	want := testsupport.MustReadGoldenString(t, filepath.Join("testdata", "hello.golden"))
	if result != want {
		t.Fatalf("render template mismatch result\nwant: %q\n got: %q", want, result)
	}
	if written != want {
		t.Fatalf("render template mismatch writer\nwant: %q\n got: %q", want, written)
	}
}

func TestGoTemplateEngine_RenderDispatchesInlineContent(t *testing.T) {
	engine := newEngine(t)

	got, err := engine.Render("{{ name|camelize }}", map[string]any{"name": "html_cleaner"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "HtmlCleaner" {
		t.Fatalf("render inline = %q, want %q", got, "HtmlCleaner")
	}

	got, err = engine.Render("hello", map[string]any{"name": "Ada"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "Hello, Ada!\n" {
		t.Fatalf("render named = %q", got)
	}
}

func TestGoTemplateEngine_GlobalContext(t *testing.T) {
	engine := newEngine(t)
	if err := engine.GlobalContext(map[string]any{
		"settings": map[string]any{"env": "staging"},
	}); err != nil {
		t.Fatalf("global context: %v", err)
	}

	result, written := testsupport.CaptureTemplateOutput(t, func(w io.Writer) (string, error) {
		return engine.RenderTemplate("use-global", nil, w)
	})

	want := testsupport.MustReadGoldenString(t, filepath.Join("testdata", "use-global.golden"))
	if result != want {
		t.Fatalf("render template mismatch result\nwant: %q\n got: %q", want, result)
	}
	if written != want {
		t.Fatalf("render template mismatch writer\nwant: %q\n got: %q", want, written)
	}
}

func TestGoTemplateEngine_RegisterFilter(t *testing.T) {
	engine := newEngine(t)
	err := engine.RegisterFilter("shout", func(input any, _ any) (any, error) {
		if input == nil {
			return "", nil
		}
		return fmt.Sprintf("%s!", strings.ToUpper(fmt.Sprint(input))), nil
	})
	if err != nil {
		t.Fatalf("register filter: %v", err)
	}

	result, written := testsupport.CaptureTemplateOutput(t, func(w io.Writer) (string, error) {
		return engine.RenderTemplate("use-filter", map[string]any{"name": "Ada"}, w)
	})

	want := testsupport.MustReadGoldenString(t, filepath.Join("testdata", "use-filter.golden"))
	if result != want {
		t.Fatalf("render template mismatch result\nwant: %q\n got: %q", want, result)
	}
	if written != want {
		t.Fatalf("render template mismatch writer\nwant: %q\n got: %q", want, written)
	}

	if err := engine.RegisterFilter("camelize", func(input any, _ any) (any, error) { return input, nil }); err == nil {
		t.Fatalf("expected error when overriding a registered filter")
	}
}

func TestGoTemplateEngine_BakeFilters(t *testing.T) {
	engine := newEngine(t)

	got, err := engine.RenderTemplate("bake-filters", map[string]any{
		"helpers":    []string{"Form", "HtmlCleaner"},
		"components": format.Values("Flash").Set("className", "Custom"),
		"table":      "blog_posts",
		"field":      "author_id",
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	testsupport.AssertGolden(t, filepath.Join("testdata", "bake-filters.golden"), got)
}

func TestGoTemplateEngine_StringifyListKeyedData(t *testing.T) {
	engine := newEngine(t)

	cases := []struct {
		name     string
		template string
		data     map[string]any
		want     string
	}{
		{
			name:     "accessibility list",
			template: "[{{ acc|stringify_list:2 }}]",
			data:     map[string]any{"acc": fields.Accessibility(fields.Selection{}, []string{"id"})},
			want:     "[\n        '*' => 'true',\n        'id' => 'false'\n    ]",
		},
		{
			name:     "nested map",
			template: "[{{ opts|stringify_list }}]",
			data:     map[string]any{"opts": map[string]any{"b": "2", "a": "1"}},
			want:     "['a' => '1', 'b' => '2']",
		},
		{
			name:     "string map",
			template: "[{{ opts|stringify_list }}]",
			data:     map[string]any{"opts": map[string]string{"rule": "validateUnique"}},
			want:     "['rule' => 'validateUnique']",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := engine.RenderString(tc.template, tc.data)
			if err != nil {
				t.Fatalf("render: %v", err)
			}
			if got != tc.want {
				t.Fatalf("render mismatch\nwant: %q\n got: %q", tc.want, got)
			}
		})
	}
}

func TestGoTemplateEngine_RequiresSource(t *testing.T) {
	if _, err := gotemplate.New(); err == nil {
		t.Fatalf("expected error without base dir or fs")
	}
}

func newEngine(t *testing.T) *gotemplate.Engine {
	t.Helper()

	templatesFS, err := fs.Sub(embeddedTemplates, "testdata/templates")
	if err != nil {
		t.Fatalf("sub fs: %v", err)
	}

	engine, err := gotemplate.New(gotemplate.WithFS(templatesFS))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	return engine
}
