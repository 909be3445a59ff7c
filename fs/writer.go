package fs

import (
	"os"
	"path/filepath"

	"github.com/fwojciec/rulepick"
)

// RuleFileWriter writes encoded rule files atomically.
// Output goes to a temporary file next to the target, which is renamed over
// the target once fully written.
type RuleFileWriter struct {
	encoder rulepick.RuleEncoder
}

// NewRuleFileWriter creates a writer that encodes with enc.
func NewRuleFileWriter(enc rulepick.RuleEncoder) *RuleFileWriter {
	return &RuleFileWriter{encoder: enc}
}

// Path returns the path a rule file is written to. The encoder's extension
// is appended when path has none.
func (w *RuleFileWriter) Path(path string) string {
	if filepath.Ext(path) == "" {
		return path + w.encoder.Extension()
	}
	return path
}

// Write encodes file to path and returns the final path.
func (w *RuleFileWriter) Write(path string, file *rulepick.RuleFile) (string, error) {
	if path == "" {
		return "", rulepick.Errorf(rulepick.EINVALID, "output path required")
	}
	if file == nil {
		return "", rulepick.Errorf(rulepick.EINVALID, "rule file required")
	}

	final := w.Path(path)
	dir := filepath.Dir(final)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(final)+".tmp-*")
	if err != nil {
		return "", err
	}
	// Removing after a successful rename fails harmlessly.
	defer os.Remove(tmp.Name())

	if err := w.encoder.Encode(tmp, file); err != nil {
		tmp.Close()
		return "", err
	}
	if err := tmp.Close(); err != nil {
		return "", err
	}
	if err := os.Rename(tmp.Name(), final); err != nil {
		return "", err
	}
	return final, nil
}
