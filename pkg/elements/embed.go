// Package elements bundles the element templates rendered by the bake helper.
package elements

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tpl
var embeddedTemplates embed.FS

// ArrayProperty names the class property element.
const ArrayProperty = "array_property"

// TemplatesFS exposes the embedded element templates rooted at the template
// directory, ready for gotemplate.WithFS.
func TemplatesFS() fs.FS {
	sub, err := fs.Sub(embeddedTemplates, "templates")
	if err != nil {
		return embeddedTemplates
	}
	return sub
}
