// Package yaml encodes rule files as YAML.
package yaml

import (
	"io"

	"github.com/fwojciec/rulepick"
	"gopkg.in/yaml.v3"
)

// Ensure Encoder implements rulepick.RuleEncoder at compile time.
var _ rulepick.RuleEncoder = (*Encoder)(nil)

// Encoder encodes rule files as YAML documents.
type Encoder struct {
	// Indent is the number of spaces per level. Zero means 2.
	Indent int
}

// Encode writes file to w.
func (e Encoder) Encode(w io.Writer, file *rulepick.RuleFile) error {
	indent := e.Indent
	if indent <= 0 {
		indent = 2
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(indent)
	if err := enc.Encode(file); err != nil {
		return err
	}
	return enc.Close()
}

// Extension returns ".yaml".
func (Encoder) Extension() string { return ".yaml" }
