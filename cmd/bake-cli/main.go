package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"iter"
	"log"
	"os"
	"slices"
	"strings"

	"github.com/davecgh/go-spew/spew"

	"github.com/goliatone/go-bake"
	"github.com/goliatone/go-bake/internal/prompt"
	"github.com/goliatone/go-bake/pkg/association"
	"github.com/goliatone/go-bake/pkg/config"
	"github.com/goliatone/go-bake/pkg/fields"
	"github.com/goliatone/go-bake/pkg/format"
	"github.com/goliatone/go-bake/pkg/model"
)

const (
	sectionIdentity     = "identity"
	sectionAccessible   = "accessible"
	sectionAssociations = "associations"
	sectionFields       = "fields"
	sectionValidation   = "validation"
	sectionProperties   = "properties"
)

var allSections = []string{
	sectionIdentity,
	sectionAccessible,
	sectionAssociations,
	sectionFields,
	sectionValidation,
	sectionProperties,
}

type options struct {
	modelPath   string
	openapiPath string
	component   string
	configPath  string
	class       string
	classType   string
	suffix      string
	take        []string
	filterTypes []string
	helpers     []string
	components  []string
	sections    []string
	keepLarge   bool
	interactive bool
	debug       bool
}

func main() {
	modelPath := flag.String("model", "", "model description file (YAML)")
	openapiPath := flag.String("openapi", "", "OpenAPI document to read the model from")
	component := flag.String("component", "", "OpenAPI component schema name")
	configPath := flag.String("config", "", "settings file (YAML)")
	class := flag.String("class", "", "class name, Plugin.Name for plugins (defaults to the model name)")
	classType := flag.String("type", "Model/Table", "class sub-namespace")
	suffix := flag.String("suffix", "Table", "class name suffix")
	take := flag.String("fields", "", "comma separated fields to keep")
	helpers := flag.String("helpers", "", "comma separated helpers for the $helpers property")
	components := flag.String("components", "", "comma separated components for the $components property")
	sections := flag.String("sections", strings.Join(allSections, ","), "comma separated sections to print")
	filterTypes := flag.String("filter-types", strings.Join(fields.DefaultFilterTypes, ","), "comma separated column types left out of the field list")
	keepLarge := flag.Bool("keep-large", false, "keep binary and text columns in the field list")
	interactive := flag.Bool("interactive", false, "prompt for class, type and sections")
	debug := flag.Bool("debug", false, "dump the loaded model")
	flag.Parse()

	opts := options{
		modelPath:   *modelPath,
		openapiPath: *openapiPath,
		component:   *component,
		configPath:  *configPath,
		class:       *class,
		classType:   *classType,
		suffix:      *suffix,
		take:        splitList(*take),
		filterTypes: splitList(*filterTypes),
		helpers:     splitList(*helpers),
		components:  splitList(*components),
		sections:    splitList(*sections),
		keepLarge:   *keepLarge,
		interactive: *interactive,
		debug:       *debug,
	}

	var driver prompt.Driver
	if opts.interactive {
		driver = prompt.NewSurveyDriver()
	}

	if err := run(context.Background(), opts, driver, os.Stdout); err != nil {
		if errors.Is(err, prompt.ErrAborted) {
			os.Exit(1)
		}
		log.Fatalf("bake: %v", err)
	}
}

func ask(ctx context.Context, driver prompt.Driver, opts *options, suggested string) error {
	if opts.class != "" {
		suggested = opts.class
	}
	class, err := prompt.ClassName(ctx, driver, suggested)
	if err != nil {
		return err
	}
	opts.class = class

	ns, err := prompt.ChooseNamespace(ctx, driver, opts.classType)
	if err != nil {
		return err
	}
	opts.classType, opts.suffix = ns.Path, ns.Suffix

	skip, err := prompt.SkipLargeColumns(ctx, driver)
	if err != nil {
		return err
	}
	opts.keepLarge = !skip

	sections, err := prompt.Sections(ctx, driver, allSections)
	if err != nil {
		return err
	}
	opts.sections = sections
	return nil
}

// run prints the selected sections for the model. A non-nil driver asks for
// the class, its type, the column filter and the sections first.
func run(ctx context.Context, opts options, driver prompt.Driver, out io.Writer) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}

	m, err := loadModel(ctx, opts)
	if err != nil {
		return err
	}
	if opts.debug {
		spew.Fdump(out, m)
	}
	if driver != nil {
		if err := ask(ctx, driver, &opts, m.Name); err != nil {
			return err
		}
	}

	helper := bake.New(bake.WithConfig(cfg))
	enabled := func(section string) bool {
		return len(opts.sections) == 0 || slices.Contains(opts.sections, section)
	}

	if enabled(sectionIdentity) {
		class := opts.class
		if class == "" {
			class = m.Name
		}
		info := helper.ClassInfo(class, opts.classType, opts.suffix)
		fmt.Fprintf(out, "# %s\n", sectionIdentity)
		fmt.Fprintf(out, "fqn: %s\nnamespace: %s\nclass: %s\n", info.FQN, info.Namespace, info.Class)
		if info.HasPlugin() {
			fmt.Fprintf(out, "plugin: %s\n", info.Plugin)
		}
	}

	if enabled(sectionAccessible) {
		accessible := helper.FieldAccessibility(m.Accessible, m.PrimaryKey())
		fmt.Fprintf(out, "# %s\n[%s]\n", sectionAccessible, helper.StringifyList(accessible, format.WithQuotes(false)))
	}

	if enabled(sectionAssociations) {
		fmt.Fprintf(out, "# %s\n", sectionAssociations)
		for _, kind := range association.Kinds() {
			aliases := helper.AliasExtractor(m.Associations, kind)
			if len(aliases) == 0 {
				continue
			}
			fmt.Fprintf(out, "%s: %s\n", kind, strings.Join(aliases, ", "))
		}
	}

	filtered := slices.Collect(filteredFields(helper, m, opts))

	if enabled(sectionFields) {
		fmt.Fprintf(out, "# %s\n", sectionFields)
		for _, field := range filtered {
			column, _ := helper.FieldData(field, &m.Table)
			fmt.Fprintf(out, "%s %s\n", field, column.Type)
		}
	}

	if enabled(sectionValidation) {
		fmt.Fprintf(out, "# %s\n", sectionValidation)
		for _, field := range filtered {
			methods := helper.ModelValidationMethods(m, field)
			if len(methods) == 0 {
				continue
			}
			fmt.Fprintf(out, "$validator\n    %s;\n", strings.Join(methods, "\n    "))
		}
	}

	if enabled(sectionProperties) {
		fmt.Fprintf(out, "# %s\n", sectionProperties)
		for _, property := range []struct {
			name   string
			values []string
		}{
			{"helpers", opts.helpers},
			{"components", opts.components},
		} {
			rendered, err := helper.ArrayProperty(property.name, property.values, nil)
			if err != nil {
				return err
			}
			fmt.Fprint(out, rendered)
		}
	}

	return nil
}

func filteredFields(helper *bake.Helper, m model.Model, opts options) iter.Seq[string] {
	if opts.keepLarge {
		// Without a schema no column type is filtered out.
		return helper.FilterFields(m.Table.Fields(), nil, opts.take)
	}
	return helper.FilterFields(m.Table.Fields(), &m.Table, opts.take, opts.filterTypes...)
}

func loadModel(ctx context.Context, opts options) (model.Model, error) {
	switch {
	case opts.modelPath != "" && opts.openapiPath != "":
		return model.Model{}, errors.New("use either -model or -openapi")
	case opts.modelPath != "":
		return model.LoadFile(opts.modelPath)
	case opts.openapiPath != "":
		if opts.component == "" {
			return model.Model{}, errors.New("-component is required with -openapi")
		}
		raw, err := os.ReadFile(opts.openapiPath)
		if err != nil {
			return model.Model{}, fmt.Errorf("read %s: %w", opts.openapiPath, err)
		}
		return bake.LoadOpenAPIModel(ctx, raw, opts.component)
	default:
		return model.Model{}, errors.New("one of -model or -openapi is required")
	}
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
