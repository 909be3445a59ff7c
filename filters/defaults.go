package filters

import "github.com/fwojciec/rulepick"

// Fields with default heuristics.
const (
	FieldAuthorName   = "GlobalRule.author.name"
	FieldArticleBody  = "GlobalRule.article.body"
	FieldArticleTitle = "GlobalRule.article.title"
	FieldPublishDate  = "GlobalRule.article.publish"
	FieldModifiedDate = "GlobalRule.article.modify"
)

// AuthorKeywords are translations of "author" and "byline" and the name
// fragments commonly used in author class names.
var AuthorKeywords = []string{
	"author", "byline", "writer", "name",
	"autor", "auteur", "autore", "auteurs", "autores",
	"verfasser", "schrijver", "forfatter", "författare", "kirjoittaja",
	"szerző", "yazar", "avtor", "автор", "συγγραφέας",
	"作者", "著者", "저자", "nombre", "nom", "nome",
}

// BodyKeywords mark article body containers.
var BodyKeywords = []string{
	"body", "content", "article", "entry", "story", "post", "text",
}

// TitleKeywords mark article headlines.
var TitleKeywords = []string{
	"title", "headline", "heading",
}

// DateKeywords mark publication and modification timestamps.
var DateKeywords = []string{
	"time", "date", "publish", "posted", "updated", "modified", "timestamp",
}

// RegisterDefaults registers the built-in heuristics on r.
func RegisterDefaults(r rulepick.FilterRegistry) {
	r.RegisterScoreFilter(FieldAuthorName, KeywordScoreFilter(AuthorKeywords, DefaultKeywordBoost, DefaultMaxMatches, DefaultPenalty))

	r.RegisterElementFilter(FieldArticleBody, ContainerElementFilter)
	r.RegisterScoreFilter(FieldArticleBody, KeywordScoreFilter(BodyKeywords, DefaultKeywordBoost, 0, 0))

	r.RegisterWeightFilter(FieldArticleTitle, TitleWeightFilter)
	r.RegisterScoreFilter(FieldArticleTitle, KeywordScoreFilter(TitleKeywords, DefaultKeywordBoost, DefaultMaxMatches, DefaultPenalty))

	dates := KeywordScoreFilter(DateKeywords, DefaultKeywordBoost, DefaultMaxMatches, DefaultPenalty)
	r.RegisterScoreFilter(rulepick.WildcardFieldKey(FieldPublishDate), dates)
	r.RegisterScoreFilter(rulepick.WildcardFieldKey(FieldModifiedDate), dates)
}
