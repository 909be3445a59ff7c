package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"slices"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/rulepick"
	"github.com/fwojciec/rulepick/crawl"
	"github.com/fwojciec/rulepick/filters"
	"github.com/fwojciec/rulepick/goquery"
	"github.com/fwojciec/rulepick/htmltomarkdown"
	rphttp "github.com/fwojciec/rulepick/http"
	"github.com/fwojciec/rulepick/rod"
	"github.com/fwojciec/rulepick/selector"
	rpslog "github.com/fwojciec/rulepick/slog"
	"github.com/fwojciec/rulepick/sqlite"
	"github.com/joho/godotenv"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// A missing .env file is fine.
	_ = godotenv.Load()

	m := NewMain()
	if err := m.Run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path used when --db is not given. Set before calling Run().
	DBPath string

	// SQLite database used by the binding commands.
	DB *sqlite.DB

	// Fetcher used to load pages. Built from the flags when nil.
	Fetcher rulepick.Fetcher
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	var err error
	if m.Fetcher != nil {
		err = m.Fetcher.Close()
	}
	if m.DB != nil {
		if cerr := m.DB.Close(); err == nil {
			err = cerr
		}
	}
	return err
}

// Commands that need a database or pages wired before they run.
var (
	dbCommands   = []string{"bind", "bindings", "unbind", "export", "validate"}
	pageCommands = []string{"resolve", "attributes", "highlight", "preview", "validate", "serve"}
)

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  stdin,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("rulepick"),
		kong.Description("Pick robust CSS selectors for extraction rules"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'rulepick --help' to see available commands")
	}
	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd := strings.Fields(kongCtx.Command())[0]

	deps.Logger = newLogger(cli.Verbose, stderr)
	defer m.Close()

	if slices.Contains(dbCommands, cmd) {
		path := cli.DB
		if path == "" {
			path = m.DBPath
		}
		m.DB = sqlite.NewDB(path)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintln(stderr, "Hint: Set RULEPICK_DB to use a different database path")
			return fmt.Errorf("failed to open database at %q: %w", path, err)
		}
		deps.Bindings = sqlite.NewBindingService(m.DB)
	}

	if slices.Contains(pageCommands, cmd) {
		if m.Fetcher == nil {
			if m.Fetcher, err = newFetcher(cli, deps.Logger); err != nil {
				fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed for --browser")
				return fmt.Errorf("failed to start browser: %w", err)
			}
		}
		fetcher := rpslog.NewLoggingFetcher(m.Fetcher, deps.Logger)

		registry := filters.NewRegistry()
		filters.RegisterDefaults(registry)
		deps.Resolver = rpslog.NewLoggingResolver(
			selector.NewResolver(rpslog.NewLoggingFilterRegistry(registry, deps.Logger)),
			deps.Logger,
		)
		deps.Pages = &SourceLoader{Fetcher: fetcher}
		deps.Converters = func(baseURL string) rulepick.Converter {
			return htmltomarkdown.NewConverter(htmltomarkdown.WithDomain(baseURL))
		}
		deps.Sitemaps = rpslog.NewLoggingSitemapService(rphttp.NewSitemapService(nil), deps.Logger)
		deps.Validator = rpslog.NewLoggingValidator(&crawl.Validator{
			Fetcher:     fetcher,
			Parser:      goquery.NewParser(),
			RateLimiter: crawl.NewDomainLimiter(cli.RateLimit, 1),
			Logger:      deps.Logger,
		}, deps.Logger)
	}

	return kongCtx.Run(deps)
}

func newFetcher(cli *CLI, logger *slog.Logger) (rulepick.Fetcher, error) {
	if !cli.Browser {
		return rphttp.NewFetcher(rphttp.WithTimeout(cli.Timeout)), nil
	}
	return rod.NewFetcher(
		rod.WithFetchTimeout(cli.Timeout),
		rod.WithSettleDelay(cli.Settle),
		rod.WithBrowser(browserOptions(cli, logger)...),
	)
}

func browserOptions(cli *CLI, logger *slog.Logger) []rod.ManagerOption {
	opts := []rod.ManagerOption{rod.WithLogger(logger), rod.WithNoSandbox(cli.NoSandbox)}
	if cli.Chrome != "" {
		opts = append(opts, rod.WithBrowserBin(cli.Chrome))
	}
	return opts
}

func newLogger(verbose bool, w io.Writer) *slog.Logger {
	if !verbose {
		return slog.New(slog.DiscardHandler)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "rulepick.db"
	}
	dir := filepath.Join(home, ".rulepick")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "rulepick.db")
}
