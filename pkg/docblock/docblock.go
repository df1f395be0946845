// Package docblock parses doc comment blocks (/** ... */) into a short
// description, a long description and an ordered list of tags, and provides a
// lossless tokenizer over the same text.
package docblock

import "fmt"

// Tag is a single @name entry of a doc comment
type Tag struct {
	Name  string `json:"name"`  // always begins with '@'
	Value string `json:"value"` // continuation lines joined with "\n"
}

// Result is the parsed form of a doc comment
type Result struct {
	ShortDescription string `json:"shortDescription"`
	LongDescription  string `json:"longDescription"`
	Tags             []Tag  `json:"tags"`
}

// NameInformation is the name-resolution context of the declaration a doc
// comment belongs to. The docblock package never looks inside it.
type NameInformation any

// Annotation is a resolved, typed form of a tag
type Annotation interface {
	TagName() string
}

// AnnotationResolver builds annotations from tags
type AnnotationResolver interface {
	Resolve(tags []Tag, ns NameInformation) ([]Annotation, error)
}

// Parse parses a raw doc comment, delimiters included. It never fails:
// malformed input degrades to description or tag continuation text.
func Parse(raw string) Result {
	a := &assembler{}
	for _, line := range normalizeLines(raw) {
		a.line(line)
	}
	return a.result()
}

// DocBlock is a parsed doc comment. It is immutable and safe for concurrent use.
type DocBlock struct {
	raw    string
	ns     NameInformation
	result Result
}

// New parses raw and returns the doc block. ns is kept for annotation
// resolvers and may be nil.
func New(raw string, ns NameInformation) *DocBlock {
	return &DocBlock{
		raw:    raw,
		ns:     ns,
		result: Parse(raw),
	}
}

// Raw returns the comment text the block was built from
func (d *DocBlock) Raw() string {
	return d.raw
}

// NameInformation returns the context passed to New
func (d *DocBlock) NameInformation() NameInformation {
	return d.ns
}

// ShortDescription returns the first description line
func (d *DocBlock) ShortDescription() string {
	return d.result.ShortDescription
}

// LongDescription returns the description lines after the short description
func (d *DocBlock) LongDescription() string {
	return d.result.LongDescription
}

// Tags returns the tags in source order. The slice is a copy.
func (d *DocBlock) Tags() []Tag {
	tags := make([]Tag, len(d.result.Tags))
	copy(tags, d.result.Tags)
	return tags
}

// Result returns a copy of the full parse result
func (d *DocBlock) Result() Result {
	return Result{
		ShortDescription: d.result.ShortDescription,
		LongDescription:  d.result.LongDescription,
		Tags:             d.Tags(),
	}
}

// Tokens returns the lexical token stream of the raw comment
func (d *DocBlock) Tokens() []Token {
	return Tokenize(d.raw)
}

// Annotations hands the tags and the name information to r
func (d *DocBlock) Annotations(r AnnotationResolver) ([]Annotation, error) {
	if r == nil {
		return nil, fmt.Errorf("annotation resolver cannot be nil")
	}

	annotations, err := r.Resolve(d.Tags(), d.ns)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve annotations: %w", err)
	}
	return annotations, nil
}
