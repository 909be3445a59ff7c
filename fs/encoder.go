// Package fs writes rule files to disk.
package fs

import (
	"encoding/json"
	"io"

	"github.com/fwojciec/rulepick"
)

// Ensure JSONEncoder implements rulepick.RuleEncoder at compile time.
var _ rulepick.RuleEncoder = (*JSONEncoder)(nil)

// JSONEncoder encodes rule files as indented JSON.
type JSONEncoder struct{}

// Encode writes file to w.
func (JSONEncoder) Encode(w io.Writer, file *rulepick.RuleFile) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(file)
}

// Extension returns ".json".
func (JSONEncoder) Extension() string { return ".json" }
