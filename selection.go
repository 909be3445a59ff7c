package rulepick

import "slices"

// SelectionMode is the state of the element picker.
type SelectionMode string

// Picker states.
const (
	ModeDefault           SelectionMode = "default"
	ModeSelectingSingle   SelectionMode = "selecting-single"
	ModeSelectingMultiple SelectionMode = "selecting-multiple"
)

// Selecting reports whether the picker is waiting for a click.
func (m SelectionMode) Selecting() bool {
	return m == ModeSelectingSingle || m == ModeSelectingMultiple
}

// Selection is a snapshot of what the user is currently binding.
// PassThroughSelectors mark subtrees already claimed by other fields; the
// resolver does not enforce them.
type Selection struct {
	Mode                 SelectionMode `json:"mode"`
	FieldName            string        `json:"fieldName"`
	ContextSelector      string        `json:"contextSelector"`
	PassThroughSelectors []string      `json:"passThroughSelectors"`
}

// Equal reports whether two snapshots are identical.
func (s Selection) Equal(o Selection) bool {
	return s.Mode == o.Mode &&
		s.FieldName == o.FieldName &&
		s.ContextSelector == o.ContextSelector &&
		slices.Equal(s.PassThroughSelectors, o.PassThroughSelectors)
}

// MessageType names a message exchanged with the host application.
type MessageType string

// Inbound and outbound message types.
const (
	MessageSelectElement       MessageType = "selectElement"
	MessageHighlightElements   MessageType = "highlightElements"
	MessageFetchAttributes     MessageType = "fetchAttributes"
	MessageElementClicked      MessageType = "elementClicked"
	MessageElementHovered      MessageType = "elementHovered"
	MessageClearSelection      MessageType = "clearSelection"
	MessageElementSelected     MessageType = "elementSelected"
	MessageAttributesRetrieved MessageType = "attributesRetrieved"
	MessageStateChanged        MessageType = "stateChanged"
)

// SelectElementRequest starts picking an element for a field. Selector is the
// context selector the result must be valid within.
type SelectElementRequest struct {
	Selector             string   `json:"selector"`
	Multiple             bool     `json:"multiple"`
	PassThroughSelectors []string `json:"passThroughSelectors"`
	FieldName            string   `json:"fieldName"`
}

// HighlightRequest marks the elements matching Selector within the context.
type HighlightRequest struct {
	Selector        string `json:"selector"`
	ContextSelector string `json:"contextSelector"`
}

// AttributesRequest asks for the bindable attributes of the first element
// matching Selector within the context.
type AttributesRequest struct {
	Selector        string `json:"selector"`
	ContextSelector string `json:"contextSelector"`
}

// ElementClickedEvent reports a click (or, as elementHovered, a pointer move)
// on the Index-th element matching Selector.
type ElementClickedEvent struct {
	Selector string `json:"selector"`
	Index    int    `json:"index"`
}

// AttributesRetrieved answers an AttributesRequest.
type AttributesRetrieved struct {
	Selector   string      `json:"selector"`
	Count      int         `json:"count"`
	Attributes []Attribute `json:"attributes"`
}

// ElementSelected reports the ranked selectors for a clicked element.
type ElementSelected struct {
	Selectors []string `json:"selectors"`
}

// Message is an envelope sent to the host application.
type Message struct {
	Type    MessageType `json:"type"`
	Payload any         `json:"payload"`
}

// Messenger delivers messages to the host application. Sends are
// fire-and-forget: callers never wait for a reply.
type Messenger interface {
	Send(msg Message) error
}
