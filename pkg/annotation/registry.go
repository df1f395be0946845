package annotation

import (
	"errors"
	"fmt"
	"strings"

	"docscan/pkg/docblock"
)

// Factory builds an annotation from a tag
type Factory func(tag docblock.Tag, ni *NameInformation) (docblock.Annotation, error)

// Registry resolves tags by name. Tags with no registered factory go to the
// fallback; with no fallback they are skipped.
type Registry struct {
	factories map[string]Factory
	fallback  Factory
}

// NewRegistry creates an empty registry that resolves every tag as Generic
func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[string]Factory),
		fallback:  newGeneric,
	}
}

// DefaultRegistry returns a registry with the built-in annotations
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register("param", newParam)
	r.Register("return", newReturn)
	r.Register("returns", newReturn)
	r.Register("var", newVar)
	r.Register("throws", newThrows)
	r.Register("throw", newThrows)
	return r
}

// Register binds a factory to a tag name. The name is case-insensitive and
// may be given with or without the leading '@'.
func (r *Registry) Register(name string, f Factory) {
	r.factories[normalizeName(name)] = f
}

// SetFallback replaces the factory used for unregistered tags; nil skips them
func (r *Registry) SetFallback(f Factory) {
	r.fallback = f
}

// Restrict returns a copy of the registry keeping only the named factories.
// An empty list keeps all of them.
func (r *Registry) Restrict(names []string) *Registry {
	out := &Registry{
		factories: make(map[string]Factory),
		fallback:  r.fallback,
	}
	if len(names) == 0 {
		for name, f := range r.factories {
			out.factories[name] = f
		}
		return out
	}
	for _, name := range names {
		name = normalizeName(name)
		if f, ok := r.factories[name]; ok {
			out.factories[name] = f
		}
	}
	return out
}

// Has reports whether a factory is registered for name
func (r *Registry) Has(name string) bool {
	_, ok := r.factories[normalizeName(name)]
	return ok
}

// Resolve implements docblock.AnnotationResolver. ns must be nil or a
// *NameInformation.
func (r *Registry) Resolve(tags []docblock.Tag, ns docblock.NameInformation) ([]docblock.Annotation, error) {
	var ni *NameInformation
	switch v := ns.(type) {
	case nil:
	case *NameInformation:
		ni = v
	default:
		return nil, fmt.Errorf("unsupported name information type %T", ns)
	}

	annotations := make([]docblock.Annotation, 0, len(tags))
	for _, tag := range tags {
		f, ok := r.factories[normalizeName(tag.Name)]
		if !ok {
			f = r.fallback
		}
		if f == nil {
			continue
		}

		a, err := f(tag, ni)
		if err != nil {
			var re *ResolveError
			if !errors.As(err, &re) {
				err = &ResolveError{Tag: tag, Err: err}
			}
			return nil, err
		}
		if a != nil {
			annotations = append(annotations, a)
		}
	}

	return annotations, nil
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimPrefix(name, "@"))
}
