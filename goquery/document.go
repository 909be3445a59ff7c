// Package goquery implements the rulepick DOM over HTML parsed with goquery,
// matching selectors with cascadia.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/fwojciec/rulepick"
	"golang.org/x/net/html"
)

// Compile-time interface verification.
var (
	_ rulepick.Document       = (*Document)(nil)
	_ rulepick.Element        = Element{}
	_ rulepick.DocumentParser = (*Parser)(nil)
)

// Document is a parsed HTML page.
// It is not safe for concurrent use while being highlighted.
type Document struct {
	doc *goquery.Document
}

// NewDocument parses HTML into a Document.
func NewDocument(s string) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return nil, rulepick.Errorf(rulepick.EINVALID, "failed to parse HTML: %v", err)
	}
	return &Document{doc: doc}, nil
}

// QuerySelectorAll returns all elements matching selector in document order.
func (d *Document) QuerySelectorAll(selector string) []rulepick.Element {
	m, ok := compile(selector)
	if !ok {
		return nil
	}
	return d.wrap(cascadia.QueryAll(d.root(), m))
}

// Body returns the body element, or nil if the document has none.
func (d *Document) Body() rulepick.Element {
	body := d.doc.Find("body")
	if body.Length() == 0 {
		return nil
	}
	return d.element(body.Get(0))
}

// HTML serializes the document, including any marker classes.
func (d *Document) HTML() (string, error) {
	return d.doc.Html()
}

func (d *Document) root() *html.Node {
	return d.doc.Get(0)
}

func (d *Document) element(n *html.Node) rulepick.Element {
	return Element{node: n, doc: d}
}

func (d *Document) wrap(nodes []*html.Node) []rulepick.Element {
	elements := make([]rulepick.Element, 0, len(nodes))
	for _, n := range nodes {
		elements = append(elements, d.element(n))
	}
	return elements
}

// Element is an element node of a Document. Elements are values: two
// Elements wrapping the same node compare equal.
type Element struct {
	node *html.Node
	doc  *Document
}

// Node returns the underlying HTML node.
func (e Element) Node() *html.Node {
	return e.node
}

// TagName returns the lower-case tag name.
func (e Element) TagName() string {
	return strings.ToLower(e.node.Data)
}

// ID returns the id attribute or "".
func (e Element) ID() string {
	return attr(e.node, "id")
}

// ClassList returns the element's classes in document order.
func (e Element) ClassList() []string {
	return strings.Fields(attr(e.node, "class"))
}

// Parent returns the parent element, or nil below the document node.
func (e Element) Parent() rulepick.Element {
	p := e.node.Parent
	if p == nil || p.Type != html.ElementNode {
		return nil
	}
	return e.doc.element(p)
}

// PreviousElementSibling returns the closest preceding element sibling.
func (e Element) PreviousElementSibling() rulepick.Element {
	for n := e.node.PrevSibling; n != nil; n = n.PrevSibling {
		if n.Type == html.ElementNode {
			return e.doc.element(n)
		}
	}
	return nil
}

// NextElementSibling returns the closest following element sibling.
func (e Element) NextElementSibling() rulepick.Element {
	for n := e.node.NextSibling; n != nil; n = n.NextSibling {
		if n.Type == html.ElementNode {
			return e.doc.element(n)
		}
	}
	return nil
}

// Matches reports whether the element matches selector.
func (e Element) Matches(selector string) bool {
	m, ok := compile(selector)
	if !ok {
		return false
	}
	return m.Match(e.node)
}

// QuerySelectorAll returns the descendants matching selector.
func (e Element) QuerySelectorAll(selector string) []rulepick.Element {
	m, ok := compile(selector)
	if !ok {
		return nil
	}
	return e.doc.wrap(cascadia.QueryAll(e.node, m))
}

// Attributes returns the element's attributes in document order.
func (e Element) Attributes() []rulepick.Attr {
	attrs := make([]rulepick.Attr, 0, len(e.node.Attr))
	for _, a := range e.node.Attr {
		name := a.Key
		if a.Namespace != "" {
			name = a.Namespace + ":" + a.Key
		}
		attrs = append(attrs, rulepick.Attr{Name: name, Value: a.Val})
	}
	return attrs
}

// TextContent returns the text of the element and its descendants.
func (e Element) TextContent() string {
	return e.selection().Text()
}

// InnerHTML returns the serialized children of the element.
func (e Element) InnerHTML() string {
	s, err := e.selection().Html()
	if err != nil {
		return ""
	}
	return s
}

// OwnerDocument returns the document the element belongs to.
func (e Element) OwnerDocument() rulepick.Document {
	return e.doc
}

func (e Element) selection() *goquery.Selection {
	return e.doc.doc.FindNodes(e.node)
}

// compile parses a CSS selector. Empty and invalid selectors report false.
func compile(selector string) (cascadia.Selector, bool) {
	if strings.TrimSpace(selector) == "" {
		return nil, false
	}
	m, err := cascadia.Compile(selector)
	if err != nil {
		return nil, false
	}
	return m, true
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val
		}
	}
	return ""
}

// Parser parses HTML into goquery-backed documents.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse parses HTML into a Document.
func (p *Parser) Parse(s string) (rulepick.Document, error) {
	doc, err := NewDocument(s)
	if err != nil {
		return nil, err
	}
	return doc, nil
}
