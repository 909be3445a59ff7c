package rulepick

import (
	"io"
	"sort"
)

// RuleFile is the structured document produced from bindings.
type RuleFile struct {
	Rules []*Rule `json:"rules" yaml:"rules"`
}

// Rule transforms the elements matched by Selector into a structured element
// of type Class, reading its properties from the matched subtree.
type Rule struct {
	Class      string               `json:"class" yaml:"class"`
	Selector   string               `json:"selector,omitempty" yaml:"selector,omitempty"`
	Properties map[string]*Property `json:"properties,omitempty" yaml:"properties,omitempty"`
}

// Property reads one value of a rule from the element matched by Selector.
// An empty Attribute reads the element's content.
type Property struct {
	Type      AttributeType `json:"type" yaml:"type"`
	Selector  string        `json:"selector" yaml:"selector"`
	Attribute string        `json:"attribute,omitempty" yaml:"attribute,omitempty"`
}

// NewRuleFile groups bindings into rules by the rule name prefix of their
// field. A binding for a field without a property sets the rule's own
// selector. Rules are ordered by class.
func NewRuleFile(bindings []*Binding) *RuleFile {
	byClass := make(map[string]*Rule)
	for _, b := range bindings {
		class, property := SplitFieldName(b.FieldName)
		rule, ok := byClass[class]
		if !ok {
			rule = &Rule{Class: class}
			byClass[class] = rule
		}

		if property == "" {
			rule.Selector = b.Selector
			continue
		}

		if rule.Properties == nil {
			rule.Properties = make(map[string]*Property)
		}
		typ := b.Type
		if typ == "" {
			typ = AttributeTypeString
		}
		rule.Properties[property] = &Property{
			Type:      typ,
			Selector:  b.Selector,
			Attribute: propertyAttribute(b.Attribute),
		}
	}

	file := &RuleFile{Rules: make([]*Rule, 0, len(byClass))}
	for _, rule := range byClass {
		file.Rules = append(file.Rules, rule)
	}
	sort.Slice(file.Rules, func(i, j int) bool {
		return file.Rules[i].Class < file.Rules[j].Class
	})
	return file
}

// propertyAttribute drops pseudo-attributes that read element content,
// which rule files express by omitting the attribute.
func propertyAttribute(name string) string {
	switch name {
	case AttributeTextContent, AttributeInnerContent:
		return ""
	}
	return name
}

// RuleEncoder serializes a rule file.
type RuleEncoder interface {
	Encode(w io.Writer, file *RuleFile) error

	// Extension returns the file extension for the format, including the dot.
	Extension() string
}
