package rulepick

// Element is a read-only handle to an element of a loaded page.
// It mirrors the subset of the browser DOM that selector resolution needs.
//
// Implementations must return a nil interface (not a typed nil) from the
// navigation methods when there is no such element, and two handles to the
// same underlying element must compare equal with ==.
type Element interface {
	// TagName returns the lower-case tag name (e.g., "div").
	TagName() string

	// ID returns the id attribute or "" when absent.
	ID() string

	// ClassList returns the element's classes in document order.
	ClassList() []string

	// Parent returns the parent element, or nil at the top of the document.
	Parent() Element

	// PreviousElementSibling returns the closest preceding element sibling.
	PreviousElementSibling() Element

	// NextElementSibling returns the closest following element sibling.
	NextElementSibling() Element

	// Matches reports whether the element matches the CSS selector.
	// Invalid selectors never match.
	Matches(selector string) bool

	// QuerySelectorAll returns descendants matching the CSS selector in
	// document order. Invalid selectors return no elements.
	QuerySelectorAll(selector string) []Element

	// Attributes returns the element's HTML attributes in document order.
	Attributes() []Attr

	// TextContent returns the concatenated text of the element and its descendants.
	TextContent() string

	// InnerHTML returns the serialized children of the element.
	InnerHTML() string

	// OwnerDocument returns the document the element belongs to.
	OwnerDocument() Document
}

// Attr is a single HTML attribute of an element.
type Attr struct {
	Name  string
	Value string
}

// Document is a loaded page that can be queried with CSS selectors.
type Document interface {
	// QuerySelectorAll returns all elements matching the CSS selector in
	// document order, including the root element. Invalid selectors return
	// no elements.
	QuerySelectorAll(selector string) []Element

	// Body returns the body element, or nil if the document has none.
	Body() Element
}

// DocumentParser turns raw HTML into a queryable Document.
type DocumentParser interface {
	Parse(html string) (Document, error)
}

// AttributeType identifies how a rule property reads its value from an element.
type AttributeType string

// Attribute types offered for binding.
const (
	AttributeTypeString  AttributeType = "string"
	AttributeTypeElement AttributeType = "element"
	AttributeTypeDate    AttributeType = "date"
)

// Pseudo-attribute names that read element content rather than an HTML attribute.
const (
	AttributeTextContent  = "textContent"
	AttributeInnerContent = "innerContent"
)

// Attribute is a value a rule property can be bound to.
type Attribute struct {
	Name  string        `json:"name"`
	Value string        `json:"value"`
	Type  AttributeType `json:"type"`
}

// AttributeExtractor lists the values a user could bind a field to.
type AttributeExtractor interface {
	Attributes(el Element) []Attribute
}

// Highlighter toggles marker classes on a loaded page so the user can see
// what a selector matches.
type Highlighter interface {
	// Highlight marks the elements matching selector within the context,
	// replacing any previous highlight, and returns how many were marked.
	Highlight(selector, contextSelector string) int

	// Hover marks el as the element under the pointer.
	Hover(el Element) error

	// MarkPassThrough marks the subtrees claimed by other fields and returns
	// how many elements were marked.
	MarkPassThrough(selectors []string) int

	// Clear removes every marker class.
	Clear()
}
