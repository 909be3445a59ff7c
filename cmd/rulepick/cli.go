package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/rulepick"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	Pages      PageLoader
	Resolver   rulepick.Resolver
	Converters func(baseURL string) rulepick.Converter
	Bindings   rulepick.BindingService
	Sitemaps   rulepick.SitemapService
	Validator  rulepick.Validator
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose   bool          `short:"v" help:"Log to stderr"`
	DB        string        `env:"RULEPICK_DB" help:"Database path (default: ~/.rulepick/rulepick.db)"`
	Timeout   time.Duration `env:"RULEPICK_TIMEOUT" default:"10s" help:"Page load timeout"`
	Browser   bool          `short:"b" help:"Load pages in headless Chrome so scripts run"`
	Settle    time.Duration `default:"0s" help:"Extra wait after page load with --browser"`
	NoSandbox bool          `name:"no-sandbox" env:"RULEPICK_NO_SANDBOX" help:"Run Chrome without its sandbox (containers often need this)"`
	Chrome    string        `env:"RULEPICK_CHROME" help:"Chrome binary for --browser (default: look one up)"`
	RateLimit float64       `name:"rate-limit" default:"1" help:"Requests per second per host when validating"`

	Resolve    ResolveCmd    `cmd:"" help:"Rank selectors for an element of a page"`
	Attributes AttributesCmd `cmd:"" help:"List the bindable attributes of a selector's first match"`
	Highlight  HighlightCmd  `cmd:"" help:"Render a page with a selector's matches marked"`
	Preview    PreviewCmd    `cmd:"" help:"Show a selector's match as Markdown"`
	Validate   ValidateCmd   `cmd:"" help:"Check bound selectors against other pages of a site"`
	Bind       BindCmd       `cmd:"" help:"Bind a field to a selector"`
	Bindings   BindingsCmd   `cmd:"" help:"List bound fields"`
	Unbind     UnbindCmd     `cmd:"" help:"Remove a field's binding"`
	Export     ExportCmd     `cmd:"" help:"Write bound fields as a rule file"`
	Serve      ServeCmd      `cmd:"" help:"Answer editor messages as JSON lines on stdin/stdout"`
}

// ResolveCmd is the "resolve" subcommand.
type ResolveCmd struct {
	Source   string `arg:"" help:"Page URL or local HTML file"`
	Target   string `arg:"" help:"Selector locating the element to pick"`
	Index    int    `short:"i" default:"0" help:"Which match of the target to pick"`
	Field    string `short:"f" help:"Field being bound, e.g. GlobalRule.author.name"`
	Context  string `short:"c" default:"html" help:"Selector bounding where the result must be unique"`
	Multiple bool   `short:"m" help:"Allow the selector to match several elements"`
	Limit    int    `short:"n" default:"10" help:"Maximum selectors to print (0 for all)"`
}

// AttributesCmd is the "attributes" subcommand.
type AttributesCmd struct {
	Source   string `arg:"" help:"Page URL or local HTML file"`
	Selector string `arg:"" help:"Selector to inspect"`
	Context  string `short:"c" default:"html" help:"Context selector"`
}

// HighlightCmd is the "highlight" subcommand.
type HighlightCmd struct {
	Source      string   `arg:"" help:"Page URL or local HTML file"`
	Selector    string   `arg:"" help:"Selector to mark"`
	Context     string   `short:"c" default:"html" help:"Context selector"`
	PassThrough []string `short:"p" name:"pass-through" help:"Selectors of subtrees claimed by other fields (repeatable)"`
	Out         string   `short:"o" help:"Write the page to a file instead of stdout"`
}

// PreviewCmd is the "preview" subcommand.
type PreviewCmd struct {
	Source   string `arg:"" help:"Page URL or local HTML file"`
	Selector string `arg:"" help:"Selector to preview"`
	Context  string `short:"c" default:"html" help:"Context selector"`
	Index    int    `short:"i" default:"0" help:"Which match to preview"`
}

// ValidateCmd is the "validate" subcommand.
type ValidateCmd struct {
	Site    string   `arg:"" help:"Site URL whose sitemap supplies sample pages"`
	Rule    string   `short:"r" help:"Only check fields of this rule"`
	URLs    []string `short:"u" name:"url" help:"Check these pages instead of sampling the sitemap (repeatable)"`
	Samples int      `short:"n" default:"5" help:"Number of sitemap pages to sample"`
	Include []string `short:"I" help:"Only sample URLs matching regex (repeatable)"`
	Exclude []string `short:"E" help:"Skip URLs matching regex (repeatable)"`
}

// BindCmd is the "bind" subcommand.
type BindCmd struct {
	Field     string `arg:"" help:"Field name, e.g. GlobalRule.author.name"`
	Selector  string `arg:"" help:"Selector to bind"`
	Context   string `short:"c" default:"html" help:"Context selector"`
	Multiple  bool   `short:"m" help:"The selector matches several elements"`
	Attribute string `short:"a" help:"Attribute to read (textContent, innerContent, or an HTML attribute)"`
	Type      string `short:"t" default:"string" enum:"string,element,date" help:"Attribute type"`
	Source    string `short:"s" help:"Page the selector was picked on"`
}

// BindingsCmd is the "bindings" subcommand.
type BindingsCmd struct {
	Rule string `short:"r" help:"Only list fields of this rule"`
}

// UnbindCmd is the "unbind" subcommand.
type UnbindCmd struct {
	Field string `arg:"" help:"Field name"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	Path   string `arg:"" help:"Output file; the format's extension is added when missing"`
	Format string `short:"F" default:"json" enum:"json,yaml" help:"Output format"`
	Rule   string `short:"r" help:"Only export this rule"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Source string `arg:"" help:"Page URL or local HTML file"`
}
