package selector_test

import (
	"testing"

	"github.com/fwojciec/rulepick/selector"
	"github.com/stretchr/testify/assert"
)

const listsHTML = `<html><body>
<ul class="list"><li class="item">1</li><li class="item">2</li></ul>
<ul class="list"><li class="item only">3</li></ul>
</body></html>`

func TestIsUnique(t *testing.T) {
	t.Parallel()

	doc := parse(t, listsHTML)

	tests := []struct {
		name     string
		selector string
		context  string
		want     bool
	}{
		{"single match in document", ".only", "html", true},
		{"several matches in document", ".item", "html", false},
		{"several matches in one context", ".item", ".list", false},
		{"single match across contexts", ".only", ".list", true},
		{"empty selector", "", "html", false},
		{"blank selector", "  ", "html", false},
		{"invalid selector", "li[", "html", false},
		{"context matching nothing", ".only", ".missing", false},
		{"empty context", ".only", "", false},
		{"selector matching nothing", ".missing", "html", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, selector.IsUnique(doc, tt.selector, tt.context))
		})
	}

	t.Run("one match in each of two contexts", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<html><body><div class="c"><span class="x"></span></div><div class="c"><span class="x"></span></div></body></html>`)

		assert.False(t, selector.IsUnique(doc, ".x", ".c"))
	})
}

func TestMatchesElement(t *testing.T) {
	t.Parallel()

	doc := parse(t, listsHTML)
	el := find(t, doc, ".only", 0)

	assert.True(t, selector.MatchesElement(el, "li"))
	assert.True(t, selector.MatchesElement(el, ".list .item"))
	assert.False(t, selector.MatchesElement(el, "ul"))
	assert.False(t, selector.MatchesElement(el, ""))
	assert.False(t, selector.MatchesElement(el, "li["))
}

func TestCountInContext(t *testing.T) {
	t.Parallel()

	doc := parse(t, listsHTML)

	assert.Equal(t, 3, selector.CountInContext(doc, ".item", ".list"))
	assert.Equal(t, 3, selector.CountInContext(doc, ".item", "html"))
	assert.Equal(t, 0, selector.CountInContext(doc, ".item", ".missing"))
	assert.Equal(t, 0, selector.CountInContext(doc, "", "html"))

	t.Run("nested contexts count each match per context", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<html><body><div class="c"><div class="c"><span class="x"></span></div></div></body></html>`)

		assert.Equal(t, 2, selector.CountInContext(doc, ".x", ".c"))
		assert.Len(t, selector.FindInContext(doc, ".x", ".c"), 1)
	})
}

func TestFindInContext(t *testing.T) {
	t.Parallel()

	doc := parse(t, listsHTML)

	got := selector.FindInContext(doc, ".item", ".list")

	if assert.Len(t, got, 3) {
		assert.Equal(t, "1", got[0].TextContent())
		assert.Equal(t, "3", got[2].TextContent())
	}
	assert.Empty(t, selector.FindInContext(doc, "", ".list"))
}
