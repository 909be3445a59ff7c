package goquery

import (
	"fmt"
	"slices"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/rulepick"
)

var _ rulepick.Highlighter = (*Highlighter)(nil)

// markerStyle renders the marker classes in previews.
var markerStyle = "<style>" +
	"." + rulepick.MarkerHighlight + "{outline:2px solid #4267b2 !important;background:rgba(66,103,178,.15) !important}" +
	"." + rulepick.MarkerHover + "{outline:2px dashed #f7b928 !important}" +
	"." + rulepick.MarkerPassThrough + "{opacity:.4 !important}" +
	"</style>"

// Highlighter marks elements of a Document with the editor's marker classes.
type Highlighter struct {
	doc *Document
}

// NewHighlighter creates a Highlighter for doc.
func NewHighlighter(doc *Document) *Highlighter {
	return &Highlighter{doc: doc}
}

// Highlight replaces the current highlight with the elements matching
// selector inside the context elements. Elements inside several nested
// contexts are counted once.
func (h *Highlighter) Highlight(selector, contextSelector string) int {
	h.remove(rulepick.MarkerHighlight)
	if strings.TrimSpace(selector) == "" || strings.TrimSpace(contextSelector) == "" {
		return 0
	}
	matches := h.doc.doc.Find(contextSelector).Find(selector)
	addClass(matches, rulepick.MarkerHighlight)
	return matches.Length()
}

// Hover moves the hover marker to el.
func (h *Highlighter) Hover(el rulepick.Element) error {
	e, ok := el.(Element)
	if !ok || e.doc != h.doc {
		return rulepick.Errorf(rulepick.EINVALID, "element does not belong to the highlighted document")
	}
	h.remove(rulepick.MarkerHover)
	addClass(e.selection(), rulepick.MarkerHover)
	return nil
}

// MarkPassThrough replaces the pass-through marks with the elements
// matching any of selectors.
func (h *Highlighter) MarkPassThrough(selectors []string) int {
	h.remove(rulepick.MarkerPassThrough)
	var matches *goquery.Selection
	for _, s := range selectors {
		if strings.TrimSpace(s) == "" {
			continue
		}
		found := h.doc.doc.Find(s)
		if matches == nil {
			matches = found
			continue
		}
		matches = matches.Union(found)
	}
	if matches == nil {
		return 0
	}
	addClass(matches, rulepick.MarkerPassThrough)
	return matches.Length()
}

// Clear removes every marker class.
func (h *Highlighter) Clear() {
	h.remove(rulepick.MarkerHighlight)
	h.remove(rulepick.MarkerHover)
	h.remove(rulepick.MarkerPassThrough)
}

// Render serializes the document with a style block that makes the marker
// classes visible. The document itself is left unchanged.
func (h *Highlighter) Render() (string, error) {
	s, err := h.doc.doc.Html()
	if err != nil {
		return "", fmt.Errorf("render document: %w", err)
	}
	clone, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return "", fmt.Errorf("reparse document: %w", err)
	}
	head := clone.Find("head")
	if head.Length() == 0 {
		clone.Find("html").PrependHtml("<head></head>")
		head = clone.Find("head")
	}
	head.AppendHtml(markerStyle)
	return clone.Html()
}

func (h *Highlighter) remove(class string) {
	h.doc.doc.Find("." + class).Each(func(_ int, s *goquery.Selection) {
		current, _ := s.Attr("class")
		fields := slices.DeleteFunc(strings.Fields(current), func(c string) bool { return c == class })
		if len(fields) == 0 {
			s.RemoveAttr("class")
			return
		}
		s.SetAttr("class", strings.Join(fields, " "))
	})
}

// addClass appends class to each element of sel, leaving the class
// attribute single-spaced.
func addClass(sel *goquery.Selection, class string) {
	sel.Each(func(_ int, s *goquery.Selection) {
		current, _ := s.Attr("class")
		fields := strings.Fields(current)
		if !slices.Contains(fields, class) {
			fields = append(fields, class)
		}
		s.SetAttr("class", strings.Join(fields, " "))
	})
}
