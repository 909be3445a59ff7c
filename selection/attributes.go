package selection

import (
	"strings"

	"github.com/fwojciec/rulepick"
)

var _ rulepick.AttributeExtractor = (*AttributeExtractor)(nil)

// skippedAttributes never make useful bindings.
var skippedAttributes = map[string]bool{
	"class": true,
	"style": true,
}

// AttributeExtractor lists an element's HTML attributes followed by its
// text and inner content.
type AttributeExtractor struct{}

// Attributes returns the bindable values of el. Date-like attributes are
// typed as dates, inner content as an element, everything else as strings.
func (AttributeExtractor) Attributes(el rulepick.Element) []rulepick.Attribute {
	attrs := []rulepick.Attribute{}
	if el == nil {
		return attrs
	}
	for _, a := range el.Attributes() {
		name := strings.ToLower(a.Name)
		if skippedAttributes[name] || strings.HasPrefix(name, "on") {
			continue
		}
		typ := rulepick.AttributeTypeString
		if name == "datetime" {
			typ = rulepick.AttributeTypeDate
		}
		attrs = append(attrs, rulepick.Attribute{Name: a.Name, Value: a.Value, Type: typ})
	}
	return append(attrs,
		rulepick.Attribute{
			Name:  rulepick.AttributeTextContent,
			Value: strings.Join(strings.Fields(el.TextContent()), " "),
			Type:  rulepick.AttributeTypeString,
		},
		rulepick.Attribute{
			Name:  rulepick.AttributeInnerContent,
			Value: strings.TrimSpace(el.InnerHTML()),
			Type:  rulepick.AttributeTypeElement,
		},
	)
}
