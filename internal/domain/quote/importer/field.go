// Package importer turns loosely typed spreadsheet rows into quotes and
// folds them into an existing collection.
//
// Field extraction is permissive: a missing, empty or malformed cell never
// aborts an import, it degrades to the field's default.
package importer

import "strings"

// Row is one raw imported record keyed by its column header.
type Row map[string]any

// Coercion converts a raw cell into T. ok is false when the cell cannot be
// represented as T.
type Coercion[T any] func(v any) (T, bool)

// Field describes how one quote field is found in a Row.
type Field[T any] struct {
	Aliases []string
	Coerce  Coercion[T]
	Default T
}

// WithDefault returns a copy of f with a different default.
func (f Field[T]) WithDefault(def T) Field[T] {
	f.Default = def
	return f
}

// Extract scans f.Aliases in order and coerces the first non-empty value.
// Absent keys and failed coercions yield f.Default.
func Extract[T any](row Row, f Field[T]) T {
	for _, alias := range f.Aliases {
		v, ok := row[alias]
		if !ok || isEmpty(v) {
			continue
		}
		if out, ok := f.Coerce(v); ok {
			return out
		}
		return f.Default
	}
	return f.Default
}

func isEmpty(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(t) == ""
	}
	return false
}
