// Package annotation resolves doc comment tags into typed annotations
package annotation

import (
	"errors"
	"strings"

	"docscan/pkg/docblock"
)

// ErrMissingValue is returned for tags that cannot be empty
var ErrMissingValue = errors.New("tag value is empty")

// ResolveError reports the tag an annotation could not be built from
type ResolveError struct {
	Tag docblock.Tag
	Err error
}

func (e *ResolveError) Error() string {
	if e.Err != nil {
		return e.Tag.Name + ": " + e.Err.Error()
	}
	return e.Tag.Name + ": cannot resolve"
}

func (e *ResolveError) Unwrap() error {
	return e.Err
}

// Generic is the annotation for tags without a dedicated type
type Generic struct {
	Name    string `json:"name"`
	Content string `json:"content"`
}

func (g *Generic) TagName() string { return g.Name }

// Param documents a parameter: @param Type $name description
type Param struct {
	Types       []string `json:"types,omitempty"`
	Variable    string   `json:"variable,omitempty"`
	Description string   `json:"description,omitempty"`
}

func (p *Param) TagName() string { return "@param" }

// Return documents a return value: @return Type description
type Return struct {
	Types       []string `json:"types,omitempty"`
	Description string   `json:"description,omitempty"`
}

func (r *Return) TagName() string { return "@return" }

// Var documents a property: @var Type [$name] description
type Var struct {
	Types       []string `json:"types,omitempty"`
	Variable    string   `json:"variable,omitempty"`
	Description string   `json:"description,omitempty"`
}

func (v *Var) TagName() string { return "@var" }

// Throws documents an error condition: @throws Type description
type Throws struct {
	Types       []string `json:"types,omitempty"`
	Description string   `json:"description,omitempty"`
}

func (t *Throws) TagName() string { return "@throws" }

func newGeneric(tag docblock.Tag, _ *NameInformation) (docblock.Annotation, error) {
	return &Generic{Name: tag.Name, Content: strings.TrimSpace(tag.Value)}, nil
}

func newParam(tag docblock.Tag, ni *NameInformation) (docblock.Annotation, error) {
	words := strings.Fields(tag.Value)
	if len(words) == 0 {
		return nil, &ResolveError{Tag: tag, Err: ErrMissingValue}
	}

	p := &Param{}
	if !isVariable(words[0]) {
		p.Types = resolveTypes(words[0], ni)
		words = words[1:]
	}
	if len(words) > 0 && isVariable(words[0]) {
		p.Variable = words[0]
		words = words[1:]
	}
	p.Description = strings.Join(words, " ")
	return p, nil
}

func newReturn(tag docblock.Tag, ni *NameInformation) (docblock.Annotation, error) {
	types, description := splitType(tag.Value, ni)
	return &Return{Types: types, Description: description}, nil
}

func newVar(tag docblock.Tag, ni *NameInformation) (docblock.Annotation, error) {
	words := strings.Fields(tag.Value)
	if len(words) == 0 {
		return nil, &ResolveError{Tag: tag, Err: ErrMissingValue}
	}

	v := &Var{Types: resolveTypes(words[0], ni)}
	words = words[1:]
	if len(words) > 0 && isVariable(words[0]) {
		v.Variable = words[0]
		words = words[1:]
	}
	v.Description = strings.Join(words, " ")
	return v, nil
}

func newThrows(tag docblock.Tag, ni *NameInformation) (docblock.Annotation, error) {
	types, description := splitType(tag.Value, ni)
	if len(types) == 0 {
		return nil, &ResolveError{Tag: tag, Err: ErrMissingValue}
	}
	return &Throws{Types: types, Description: description}, nil
}

// splitType splits "Type rest of text" into resolved types and the rest
func splitType(value string, ni *NameInformation) ([]string, string) {
	words := strings.Fields(value)
	if len(words) == 0 {
		return nil, ""
	}
	return resolveTypes(words[0], ni), strings.Join(words[1:], " ")
}

// resolveTypes splits a union such as "int|Foo[]|null" and resolves each part
func resolveTypes(word string, ni *NameInformation) []string {
	parts := strings.Split(word, "|")
	types := make([]string, 0, len(parts))
	for _, part := range parts {
		if part == "" {
			continue
		}
		types = append(types, ni.ResolveName(part))
	}
	return types
}

func isVariable(word string) bool {
	return strings.HasPrefix(word, "$") || strings.HasPrefix(word, "...$")
}
