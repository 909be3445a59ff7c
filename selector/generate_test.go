package selector_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/rulepick"
	"github.com/fwojciec/rulepick/selector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateCandidates(t *testing.T) {
	t.Parallel()

	t.Run("composes element forms with ancestor forms", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<html><body><div class="post"><h2 id="t1"><a>Title</a></h2></div></body></html>`)
		el := find(t, doc, "a", 0)

		got := selector.GenerateCandidates(el, 3)

		require.NotEmpty(t, got)
		assert.Equal(t, "a", got[0])
		assert.Contains(t, got, "#t1 a")
		assert.Contains(t, got, "h2 a")
		assert.Contains(t, got, "h2#t1 a")
		assert.Contains(t, got, ".post a")
		assert.Contains(t, got, ".post h2 a")
		assert.Contains(t, got, "div.post #t1 a")
		assert.Len(t, got, 16)
	})

	t.Run("never returns empty or duplicate candidates", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<html><body><div class="x y"><p class="x"><span class="x">t</span></p></div></body></html>`)
		el := find(t, doc, "span", 0)

		got := selector.GenerateCandidates(el, 3)

		seen := make(map[string]bool)
		for _, c := range got {
			assert.NotEmpty(t, c)
			assert.Equal(t, strings.Join(strings.Fields(c), " "), c)
			assert.False(t, seen[c], "duplicate candidate %q", c)
			seen[c] = true
		}
	})

	t.Run("stops before body", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<html><body><p class="lead">t</p></body></html>`)
		el := find(t, doc, "p", 0)

		got := selector.GenerateCandidates(el, 3)

		assert.Equal(t, []string{".lead", "p.lead", "p"}, got)
	})

	t.Run("uses tag and id forms", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<html><body><section id="main">t</section></body></html>`)
		el := find(t, doc, "section", 0)

		got := selector.GenerateCandidates(el, 3)

		assert.Equal(t, []string{"#main", "section", "section#main"}, got)
	})

	t.Run("escapes class and id characters", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<html><body><div id="a.b" class="md:flex">t</div></body></html>`)
		el := find(t, doc, "div", 0)

		got := selector.GenerateCandidates(el, 1)

		assert.Equal(t, []string{`.md\:flex`, `div.md\:flex`, `#a\.b`, "div", `div#a\.b`}, got)
		for _, c := range got {
			assert.True(t, el.Matches(c), c)
		}
	})

	t.Run("depth one yields only the element's own forms", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<html><body><div class="a"><p class="b">t</p></div></body></html>`)
		el := find(t, doc, "p", 0)

		got := selector.GenerateCandidates(el, 1)

		assert.Equal(t, []string{".b", "p.b", "p"}, got)
	})

	t.Run("skips marker classes", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<html><body><div class="`+rulepick.MarkerPassThrough+` box"><span class="`+rulepick.MarkerHighlight+`">t</span></div></body></html>`)
		el := find(t, doc, "span", 0)

		got := selector.GenerateCandidates(el, 3)

		require.NotEmpty(t, got)
		for _, c := range got {
			assert.NotContains(t, c, rulepick.MarkerClassPrefix)
		}
		assert.Contains(t, got, ".box span")
	})

	t.Run("grows beyond the candidate cap for heavily classed elements", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, heavilyClassed)
		el := find(t, doc, "span", 0)

		got := selector.GenerateCandidates(el, 3)

		assert.Greater(t, len(got), rulepick.MaxCandidates)
	})
}

const heavilyClassed = `<html><body>
<div class="a1 a2 a3 a4 a5 a6">
<p class="b1 b2 b3 b4 b5 b6">
<span class="c1 c2 c3 c4 c5 c6">t</span>
</p>
</div>
</body></html>`
