package annotation

import "strings"

// Separator splits namespace segments in type names
const Separator = `\`

// builtinTypes are never qualified with a namespace
var builtinTypes = map[string]bool{
	"array": true, "bool": true, "boolean": true, "callable": true, "false": true,
	"float": true, "double": true, "int": true, "integer": true, "iterable": true,
	"mixed": true, "null": true, "object": true, "resource": true, "self": true,
	"static": true, "string": true, "true": true, "void": true, "$this": true,
}

// NameInformation is the namespace and import aliases in effect where a doc
// comment was found. It is used to expand short type names.
type NameInformation struct {
	Namespace string
	Uses      map[string]string // alias -> fully qualified name
}

// NewNameInformation creates name information, normalizing leading separators
func NewNameInformation(namespace string, uses map[string]string) *NameInformation {
	ni := &NameInformation{
		Namespace: strings.Trim(namespace, Separator),
		Uses:      make(map[string]string, len(uses)),
	}
	for alias, name := range uses {
		ni.Uses[alias] = strings.TrimPrefix(name, Separator)
	}
	return ni
}

// ResolveName expands a type name to its fully qualified form. Names with a
// leading separator are already qualified; built-in types are left alone.
func (ni *NameInformation) ResolveName(name string) string {
	if name == "" {
		return name
	}

	// Array shorthand: Foo[] resolves Foo.
	if base, ok := strings.CutSuffix(name, "[]"); ok {
		return ni.ResolveName(base) + "[]"
	}

	if strings.HasPrefix(name, Separator) {
		return strings.TrimPrefix(name, Separator)
	}
	if builtinTypes[strings.ToLower(name)] {
		return name
	}
	if ni == nil {
		return name
	}

	first, rest, hasRest := strings.Cut(name, Separator)
	if full, ok := ni.Uses[first]; ok {
		if hasRest {
			return full + Separator + rest
		}
		return full
	}

	if ni.Namespace == "" {
		return name
	}
	return ni.Namespace + Separator + name
}
