package selection

import (
	"encoding/json"

	"github.com/fwojciec/rulepick"
	"github.com/fwojciec/rulepick/selector"
)

// Envelope is an inbound message from the host application.
type Envelope struct {
	Type    rulepick.MessageType `json:"type"`
	Payload json.RawMessage      `json:"payload"`
}

// Controller handles host messages against one loaded document.
// Highlighter is optional.
type Controller struct {
	State       *State
	Document    rulepick.Document
	Resolver    rulepick.Resolver
	Highlighter rulepick.Highlighter
	Attributes  rulepick.AttributeExtractor
	Messenger   rulepick.Messenger
}

// Dispatch decodes env and runs the matching handler.
func (c *Controller) Dispatch(env Envelope) error {
	switch env.Type {
	case rulepick.MessageSelectElement:
		var req rulepick.SelectElementRequest
		if err := decode(env, &req); err != nil {
			return err
		}
		return c.SelectElement(req)
	case rulepick.MessageElementClicked:
		var ev rulepick.ElementClickedEvent
		if err := decode(env, &ev); err != nil {
			return err
		}
		return c.ElementClicked(ev)
	case rulepick.MessageElementHovered:
		var ev rulepick.ElementClickedEvent
		if err := decode(env, &ev); err != nil {
			return err
		}
		return c.Hover(ev)
	case rulepick.MessageHighlightElements:
		var req rulepick.HighlightRequest
		if err := decode(env, &req); err != nil {
			return err
		}
		c.Highlight(req)
		return nil
	case rulepick.MessageFetchAttributes:
		var req rulepick.AttributesRequest
		if err := decode(env, &req); err != nil {
			return err
		}
		return c.FetchAttributes(req)
	case rulepick.MessageClearSelection:
		c.Clear()
		return nil
	default:
		return rulepick.Errorf(rulepick.EINVALID, "unknown message type %q", env.Type)
	}
}

// SelectElement starts picking an element for a field.
func (c *Controller) SelectElement(req rulepick.SelectElementRequest) error {
	if req.FieldName == "" {
		return rulepick.Errorf(rulepick.EINVALID, "field name required")
	}
	c.State.Start(req)
	if c.Highlighter != nil {
		c.Highlighter.MarkPassThrough(req.PassThroughSelectors)
	}
	return nil
}

// ElementClicked resolves the clicked element, reports the ranked selectors,
// and ends the selection. Clicks outside a selection are ignored.
func (c *Controller) ElementClicked(ev rulepick.ElementClickedEvent) error {
	sel := c.State.Current()
	if !sel.Mode.Selecting() {
		return nil
	}

	el, err := c.element(ev)
	if err != nil {
		return err
	}

	selectors := c.Resolver.Resolve(rulepick.ResolveRequest{
		Element:         el,
		Multiple:        sel.Mode == rulepick.ModeSelectingMultiple,
		ContextSelector: sel.ContextSelector,
		FieldName:       sel.FieldName,
	})
	if c.Highlighter != nil && len(selectors) > 0 {
		c.Highlighter.Highlight(selectors[0], sel.ContextSelector)
	}

	if err := c.Messenger.Send(rulepick.Message{
		Type:    rulepick.MessageElementSelected,
		Payload: rulepick.ElementSelected{Selectors: selectors},
	}); err != nil {
		return err
	}

	c.State.ClearIf(sel)
	return nil
}

// Hover moves the hover marker while a selection is active.
func (c *Controller) Hover(ev rulepick.ElementClickedEvent) error {
	if c.Highlighter == nil || !c.State.Current().Mode.Selecting() {
		return nil
	}
	el, err := c.element(ev)
	if err != nil {
		return err
	}
	return c.Highlighter.Hover(el)
}

// Highlight marks the matches of req.Selector within the context and
// returns their count.
func (c *Controller) Highlight(req rulepick.HighlightRequest) int {
	if c.Highlighter == nil {
		return selector.CountInContext(c.Document, req.Selector, req.ContextSelector)
	}
	return c.Highlighter.Highlight(req.Selector, req.ContextSelector)
}

// FetchAttributes reports the attributes of the first match of req.Selector
// within the context together with the number of matches.
func (c *Controller) FetchAttributes(req rulepick.AttributesRequest) error {
	matches := selector.FindInContext(c.Document, req.Selector, req.ContextSelector)
	attrs := []rulepick.Attribute{}
	if len(matches) > 0 {
		attrs = c.Attributes.Attributes(matches[0])
	}
	return c.Messenger.Send(rulepick.Message{
		Type: rulepick.MessageAttributesRetrieved,
		Payload: rulepick.AttributesRetrieved{
			Selector:   req.Selector,
			Count:      len(matches),
			Attributes: attrs,
		},
	})
}

// Clear abandons the active selection and removes all markers.
func (c *Controller) Clear() {
	c.State.Clear()
	if c.Highlighter != nil {
		c.Highlighter.Clear()
	}
}

// ReportStateChanges forwards every state change to the host until the
// returned function is called.
func (c *Controller) ReportStateChanges() (stop func()) {
	return c.State.Subscribe(func(s rulepick.Selection) {
		_ = c.Messenger.Send(rulepick.Message{Type: rulepick.MessageStateChanged, Payload: s})
	})
}

func (c *Controller) element(ev rulepick.ElementClickedEvent) (rulepick.Element, error) {
	matches := c.Document.QuerySelectorAll(ev.Selector)
	if ev.Index < 0 || ev.Index >= len(matches) {
		return nil, rulepick.Errorf(rulepick.ENOTFOUND, "no element %d matches %q", ev.Index, ev.Selector)
	}
	return matches[ev.Index], nil
}

func decode(env Envelope, v any) error {
	if len(env.Payload) == 0 {
		return nil
	}
	if err := json.Unmarshal(env.Payload, v); err != nil {
		return rulepick.Errorf(rulepick.EINVALID, "invalid %s payload: %v", env.Type, err)
	}
	return nil
}
