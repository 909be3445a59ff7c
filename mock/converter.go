package mock

import "github.com/fwojciec/rulepick"

var _ rulepick.Converter = (*Converter)(nil)

// Converter is a mock implementation of rulepick.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
