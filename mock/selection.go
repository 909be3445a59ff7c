package mock

import "github.com/fwojciec/rulepick"

var (
	_ rulepick.Resolver           = (*Resolver)(nil)
	_ rulepick.Messenger          = (*Messenger)(nil)
	_ rulepick.Highlighter        = (*Highlighter)(nil)
	_ rulepick.AttributeExtractor = (*AttributeExtractor)(nil)
)

// Resolver is a mock implementation of rulepick.Resolver.
type Resolver struct {
	ResolveFn func(req rulepick.ResolveRequest) []string
}

func (r *Resolver) Resolve(req rulepick.ResolveRequest) []string {
	return r.ResolveFn(req)
}

// Messenger is a mock implementation of rulepick.Messenger.
type Messenger struct {
	SendFn func(msg rulepick.Message) error
}

func (m *Messenger) Send(msg rulepick.Message) error {
	return m.SendFn(msg)
}

// Highlighter is a mock implementation of rulepick.Highlighter.
type Highlighter struct {
	HighlightFn       func(selector, contextSelector string) int
	HoverFn           func(el rulepick.Element) error
	MarkPassThroughFn func(selectors []string) int
	ClearFn           func()
}

func (h *Highlighter) Highlight(selector, contextSelector string) int {
	return h.HighlightFn(selector, contextSelector)
}

func (h *Highlighter) Hover(el rulepick.Element) error {
	return h.HoverFn(el)
}

func (h *Highlighter) MarkPassThrough(selectors []string) int {
	return h.MarkPassThroughFn(selectors)
}

func (h *Highlighter) Clear() {
	h.ClearFn()
}

// AttributeExtractor is a mock implementation of rulepick.AttributeExtractor.
type AttributeExtractor struct {
	AttributesFn func(el rulepick.Element) []rulepick.Attribute
}

func (a *AttributeExtractor) Attributes(el rulepick.Element) []rulepick.Attribute {
	return a.AttributesFn(el)
}
