package filters

import "github.com/fwojciec/rulepick"

// contentTags are the tags clicked inside an article body that stand for
// the body itself.
var contentTags = map[string]bool{
	"p": true, "img": true, "figure": true, "figcaption": true, "picture": true,
	"span": true, "a": true, "em": true, "strong": true, "b": true, "i": true, "u": true,
	"blockquote": true, "ul": true, "ol": true, "li": true, "br": true,
	"h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
}

// ContainerElementFilter redirects a click on body content to the nearest
// ancestor that is not itself content. The element is kept when the walk
// reaches body or html.
func ContainerElementFilter(el rulepick.Element) rulepick.Element {
	if el == nil || !contentTags[el.TagName()] {
		return el
	}
	for cur := el.Parent(); cur != nil; cur = cur.Parent() {
		switch tag := cur.TagName(); {
		case tag == "body" || tag == "html":
			return el
		case !contentTags[tag]:
			return cur
		}
	}
	return el
}

// TitleWeightFilter halves the tag-name penalty so headline tags such as h1
// compete with class-based selectors.
func TitleWeightFilter(w rulepick.Weights) rulepick.Weights {
	w[rulepick.FeatureLeafHasTagName] /= 2
	return w
}
