// Package template defines the renderer contract used to turn element
// templates into generated source. The pongo2-backed implementation lives in
// the gotemplate subpackage.
package template
