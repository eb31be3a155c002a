package bake

import (
	"context"
	"io/fs"

	"github.com/goliatone/go-bake/internal/openapi"
	"github.com/goliatone/go-bake/pkg/elements"
	"github.com/goliatone/go-bake/pkg/model"
)

// EmbeddedTemplates exposes the built-in element templates so callers can
// reuse or extend them without importing the elements package directly.
func EmbeddedTemplates() fs.FS {
	return elements.TemplatesFS()
}

// LoadOpenAPIModel builds a model description from the named component of an
// OpenAPI document. The document is validated before extraction.
func LoadOpenAPIModel(ctx context.Context, raw []byte, component string) (model.Model, error) {
	return openapi.Load(ctx, raw, component, openapi.WithValidation())
}
