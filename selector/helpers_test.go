package selector_test

import (
	"testing"

	"github.com/fwojciec/rulepick"
	"github.com/fwojciec/rulepick/goquery"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocument(html)
	require.NoError(t, err)
	return doc
}

// find returns the n-th element matching selector.
func find(t *testing.T, doc rulepick.Document, selector string, n int) rulepick.Element {
	t.Helper()
	matches := doc.QuerySelectorAll(selector)
	require.Greater(t, len(matches), n, "no element %d for %q", n, selector)
	return matches[n]
}
