package mock

import "github.com/fwojciec/rulepick"

var _ rulepick.DocumentParser = (*DocumentParser)(nil)

// DocumentParser is a mock implementation of rulepick.DocumentParser.
type DocumentParser struct {
	ParseFn func(html string) (rulepick.Document, error)
}

func (p *DocumentParser) Parse(html string) (rulepick.Document, error) {
	return p.ParseFn(html)
}
