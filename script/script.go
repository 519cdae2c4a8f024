// Package script is an optional textual front-end: a small participle
// grammar that compiles a document description into calls against the
// public pageflow builder API. It never touches the solver directly and
// the core has zero dependency on it.
package script

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var (
	scriptLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Whitespace", Pattern: `[ \t\r]+`},
		{Name: "Newline", Pattern: `\n+`},
		{Name: "LineComment", Pattern: `//[^\n]*`},
		{Name: "Color", Pattern: `#(?:[0-9A-Fa-f]{3}|[0-9A-Fa-f]{6}|[0-9A-Fa-f]{8})`},
		{Name: "Number", Pattern: `-?(?:\d+\.\d+|\d+)`},
		{Name: "String", Pattern: `"(?:\\.|[^"])*"`},
		{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_-]*`},
		{Name: "Symbol", Pattern: `[{}:%]`},
	})

	documentParser = participle.MustBuild[Document](
		participle.Lexer(scriptLexer),
		participle.Elide("Whitespace", "Newline", "LineComment"),
	)
)

// Document is the root AST node: a sequence of page declarations.
type Document struct {
	Pages []*PageDecl `parser:"@@*"`
}

// PageDecl declares one page and its content tree.
type PageDecl struct {
	Width  float64 `parser:"'page' @Number"`
	Height float64 `parser:"@Number"`
	Body   []*Node `parser:"'{' @@* '}'"`
}

// Node is one statement inside a page or container body: a nested
// rect/circle container, a text leaf, or an image leaf.
type Node struct {
	Rect   *ContainerBody `parser:"  'rect' @@"`
	Circle *ContainerBody `parser:"| 'circle' @@"`
	Text   *TextDecl      `parser:"| @@"`
	Image  *ImageDecl     `parser:"| @@"`
}

// ContainerBody holds a rect/circle container's attributes and children;
// which kind it is comes from which Node field points at it.
type ContainerBody struct {
	Attrs []*Attr `parser:"@@*"`
	Body  []*Node `parser:"'{' @@* '}'"`
}

// TextDecl declares a TEXT leaf; Content is markdown-flavored.
type TextDecl struct {
	Content string  `parser:"'text' @String"`
	Attrs   []*Attr `parser:"@@*"`
}

// ImageDecl declares an IMAGE leaf referencing an opaque source string.
type ImageDecl struct {
	Source string  `parser:"'image' @String"`
	Attrs  []*Attr `parser:"@@*"`
}

// Attr is a `key: value` attribute attached to a container/text/image
// declaration.
type Attr struct {
	Key string    `parser:"@Ident ':'"`
	Val AttrValue `parser:"@@"`
}

// AttrValue is the tagged union of what an attribute's value literal can
// be; exactly one field is set after a successful parse.
type AttrValue struct {
	Percent *string `parser:"  @Number '%'"`
	String  *string `parser:"| @String"`
	Number  *string `parser:"| @Number"`
	Color   *string `parser:"| @Color"`
	Word    *string `parser:"| @Ident"`
}

// Value returns the attribute's raw textual value regardless of which
// lexeme kind matched.
func (a *Attr) Value() string {
	switch {
	case a.Val.Percent != nil:
		return *a.Val.Percent + "%"
	case a.Val.String != nil:
		return unquote(*a.Val.String)
	case a.Val.Number != nil:
		return *a.Val.Number
	case a.Val.Color != nil:
		return *a.Val.Color
	case a.Val.Word != nil:
		return *a.Val.Word
	default:
		return ""
	}
}

func unquote(s string) string {
	u, err := strconv.Unquote(s)
	if err != nil {
		return strings.Trim(s, `"`)
	}
	return u
}

// Parse parses a script document from source text.
func Parse(source string) (*Document, error) {
	doc, err := documentParser.ParseString("", source)
	if err != nil {
		return nil, fmt.Errorf("script: %w", err)
	}
	return doc, nil
}
