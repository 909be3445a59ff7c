package rulepick

// Converter transforms HTML into Markdown for previewing bound content.
type Converter interface {
	Convert(html string) (string, error)
}
