package association

import (
	"errors"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"
)

func articlesModel() Collection {
	return Collection{
		{Alias: "Authors", Type: KindBelongsTo},
		{Alias: "Comments", Type: KindHasMany},
		{Alias: "ArticlesTags", Type: KindHasMany},
		{Alias: "Revisions", Type: KindHasMany, Target: "ArticleRevisions"},
		{Alias: "Tags", Type: KindBelongsToMany, Through: "ArticlesTags"},
		{Alias: "Categories", Type: KindBelongsToMany},
		{Alias: "CategoriesMirror", Type: KindHasMany, Target: "Categories"},
		{Alias: "Featured", Type: KindHasOne, Target: "FeaturedArticles"},
	}
}

func TestAliasExtractor_HasManyDropsBelongsToManyAliases(t *testing.T) {
	resolver := NewResolver()

	got := resolver.AliasExtractor(articlesModel(), KindHasMany)
	want := []string{"Comments", "ArticleRevisions"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("has many aliases mismatch (-want +got):\n%s", diff)
	}

	covered := BelongsToManyAliases(articlesModel())
	for _, alias := range got {
		if _, ok := covered[alias]; ok {
			t.Fatalf("alias %q is already covered by a belongs-to-many association", alias)
		}
	}
}

func TestAliasExtractor_OtherKindsReturnRawAliases(t *testing.T) {
	resolver := NewResolver()
	model := articlesModel()

	cases := []struct {
		kind Kind
		want []string
	}{
		{KindBelongsTo, []string{"Authors"}},
		{KindHasOne, []string{"FeaturedArticles"}},
		{KindBelongsToMany, []string{"Tags", "Categories"}},
	}
	for _, tc := range cases {
		t.Run(string(tc.kind), func(t *testing.T) {
			got := resolver.AliasExtractor(model, tc.kind)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("aliases mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestAliasExtractor_EmptyModel(t *testing.T) {
	resolver := NewResolver()
	if got := resolver.AliasExtractor(Collection{}, KindHasMany); len(got) != 0 {
		t.Fatalf("expected no aliases, got %v", got)
	}
	if got := resolver.AliasExtractor(nil, KindBelongsTo); len(got) != 0 {
		t.Fatalf("expected no aliases for nil model, got %v", got)
	}
}

func TestJunctionFilter_RemovesDuplicates(t *testing.T) {
	got := NewFilter().FilterHasManyAliases(Collection{}, []string{"Comments", "Likes", "Comments"})
	if diff := cmp.Diff([]string{"Comments", "Likes"}, got); diff != "" {
		t.Fatalf("filter mismatch (-want +got):\n%s", diff)
	}
}

type recordingFilter struct {
	mu    sync.Mutex
	calls int
}

func (f *recordingFilter) FilterHasManyAliases(_ Source, aliases []string) []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return append([]string{"stub"}, aliases...)
}

func TestResolver_UsesInjectedFilter(t *testing.T) {
	filter := &recordingFilter{}
	resolver := NewResolver(WithFilter(filter))

	got := resolver.AliasExtractor(Collection{{Alias: "Comments", Type: KindHasMany}}, KindHasMany)
	if diff := cmp.Diff([]string{"stub", "Comments"}, got); diff != "" {
		t.Fatalf("aliases mismatch (-want +got):\n%s", diff)
	}

	resolver.AliasExtractor(Collection{}, KindBelongsTo)
	if filter.calls != 1 {
		t.Fatalf("expected filter to run only for has-many, ran %d times", filter.calls)
	}
}

func TestResolver_BuildsDefaultFilterOnce(t *testing.T) {
	var built int
	var mu sync.Mutex
	resolver := NewResolver(WithFilterFactory(func() Filter {
		mu.Lock()
		built++
		mu.Unlock()
		return JunctionFilter{}
	}))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			resolver.AliasExtractor(articlesModel(), KindHasMany)
		}()
	}
	wg.Wait()

	if built != 1 {
		t.Fatalf("expected filter factory to run once, ran %d times", built)
	}
}

func TestResolver_ZeroValueUsable(t *testing.T) {
	var resolver Resolver
	got := resolver.AliasExtractor(articlesModel(), KindHasMany)
	if diff := cmp.Diff([]string{"Comments", "ArticleRevisions"}, got); diff != "" {
		t.Fatalf("aliases mismatch (-want +got):\n%s", diff)
	}
}

func TestAssociatedAlias(t *testing.T) {
	resolver := NewResolver()

	alias, err := resolver.AssociatedAlias(articlesModel(), "Revisions")
	if err != nil {
		t.Fatalf("associated alias: %v", err)
	}
	if alias != "ArticleRevisions" {
		t.Fatalf("expected ArticleRevisions, got %q", alias)
	}

	if _, err := resolver.AssociatedAlias(articlesModel(), "Missing"); !errors.Is(err, ErrAssociationNotFound) {
		t.Fatalf("expected ErrAssociationNotFound, got %v", err)
	}
}

func TestParseKind(t *testing.T) {
	cases := map[string]Kind{
		"hasMany":         KindHasMany,
		"has_many":        KindHasMany,
		"HasMany":         KindHasMany,
		"belongs-to":      KindBelongsTo,
		"hasone":          KindHasOne,
		"belongsToMany":   KindBelongsToMany,
		"many_to_many":    KindBelongsToMany,
		" BelongsToMany ": KindBelongsToMany,
	}
	for raw, want := range cases {
		got, ok := ParseKind(raw)
		if !ok || got != want {
			t.Errorf("ParseKind(%q) = %q (ok=%v), want %q", raw, got, ok, want)
		}
	}
	if _, ok := ParseKind("embeds"); ok {
		t.Fatalf("expected unknown kind to be rejected")
	}
}

func TestCollectionDecodesFromYAML(t *testing.T) {
	const doc = `
- alias: Tags
  type: belongs_to_many
  through: ArticlesTags
- alias: Comments
  type: hasMany
`
	var got Collection
	if err := yaml.Unmarshal([]byte(doc), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	want := Collection{
		{Alias: "Tags", Type: KindBelongsToMany, Through: "ArticlesTags"},
		{Alias: "Comments", Type: KindHasMany},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("collection mismatch (-want +got):\n%s", diff)
	}

	var invalid Collection
	if err := yaml.Unmarshal([]byte("- alias: X\n  type: embeds\n"), &invalid); err == nil {
		t.Fatalf("expected unknown kind to fail decoding")
	}
}
