package rod

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// DefaultMaxPages is the number of pages opened before the browser is recycled.
const DefaultMaxPages = 75

// BrowserManager hands out pages from a headless Chrome and replaces the
// browser after a fixed number of pages. Chrome's memory baseline keeps
// growing under load even when every page is closed.
//
// BrowserManager is safe for concurrent use.
type BrowserManager struct {
	mu        sync.Mutex
	browser   *rod.Browser
	launcher  *launcher.Launcher
	pageCount atomic.Int64
	closed    atomic.Bool

	maxPages  int64
	noSandbox bool
	bin       string
	logger    *slog.Logger
}

// ManagerOption configures a BrowserManager.
type ManagerOption func(*BrowserManager)

// WithMaxPages sets how many pages are opened before recycling.
func WithMaxPages(n int64) ManagerOption {
	return func(bm *BrowserManager) {
		bm.maxPages = n
	}
}

// WithNoSandbox disables the Chrome sandbox, which containers often require.
func WithNoSandbox(v bool) ManagerOption {
	return func(bm *BrowserManager) {
		bm.noSandbox = v
	}
}

// WithBrowserBin uses the Chrome binary at path instead of looking one up.
func WithBrowserBin(path string) ManagerOption {
	return func(bm *BrowserManager) {
		bm.bin = path
	}
}

// WithLogger logs browser launches and recycling.
func WithLogger(logger *slog.Logger) ManagerOption {
	return func(bm *BrowserManager) {
		bm.logger = logger
	}
}

// NewBrowserManager launches a headless browser.
// Close must be called when the manager is no longer needed.
func NewBrowserManager(opts ...ManagerOption) (*BrowserManager, error) {
	bm := &BrowserManager{
		maxPages: DefaultMaxPages,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(bm)
	}

	bm.mu.Lock()
	defer bm.mu.Unlock()
	if err := bm.launch(); err != nil {
		return nil, err
	}
	return bm, nil
}

// Page opens a blank page bound to ctx, recycling the browser first when
// the page budget is spent. The caller must close the page.
func (bm *BrowserManager) Page(ctx context.Context) (*rod.Page, error) {
	if bm.closed.Load() {
		return nil, fmt.Errorf("browser manager closed")
	}

	browser := bm.Browser()
	page, err := browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, fmt.Errorf("opening page: %w", err)
	}
	bm.pageCount.Add(1)
	return page.Context(ctx), nil
}

// Browser returns the current browser, recycling it if the page budget is
// spent.
func (bm *BrowserManager) Browser() *rod.Browser {
	bm.mu.Lock()
	defer bm.mu.Unlock()

	if bm.pageCount.Load() >= bm.maxPages {
		bm.recycle()
	}
	return bm.browser
}

// Close shuts the browser down. It is safe to call more than once.
func (bm *BrowserManager) Close() error {
	if !bm.closed.CompareAndSwap(false, true) {
		return nil
	}

	bm.mu.Lock()
	defer bm.mu.Unlock()
	return bm.shutdown()
}

// LauncherPID returns the process ID of the running browser, or 0.
func (bm *BrowserManager) LauncherPID() int {
	bm.mu.Lock()
	defer bm.mu.Unlock()
	if bm.launcher == nil {
		return 0
	}
	return bm.launcher.PID()
}

// Must be called with mu held.
func (bm *BrowserManager) launch() error {
	l := launcher.New().
		Set("disable-background-timer-throttling").
		Set("disable-backgrounding-occluded-windows").
		Set("disable-renderer-backgrounding").
		Set("disable-dev-shm-usage").
		Set("disable-hang-monitor").
		NoSandbox(bm.noSandbox).
		Leakless(true).
		Headless(true)
	if bm.bin != "" {
		l = l.Bin(bm.bin)
	}

	u, err := l.Launch()
	if err != nil {
		return fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		l.Kill()
		return fmt.Errorf("connecting to browser: %w", err)
	}

	bm.browser = browser
	bm.launcher = l
	bm.logger.Debug("browser launched", "pid", l.PID())
	return nil
}

// Must be called with mu held.
func (bm *BrowserManager) shutdown() error {
	var err error
	if bm.browser != nil {
		err = bm.browser.Close()
		bm.browser = nil
	}
	if bm.launcher != nil {
		bm.launcher.Kill()
		bm.launcher.Cleanup()
		bm.launcher = nil
	}
	return err
}

// recycle swaps in a fresh browser. The old one stays in use when the new
// launch fails. Must be called with mu held.
func (bm *BrowserManager) recycle() {
	oldBrowser, oldLauncher := bm.browser, bm.launcher
	if err := bm.launch(); err != nil {
		bm.browser, bm.launcher = oldBrowser, oldLauncher
		bm.logger.Warn("browser recycle failed", "err", err)
		return
	}

	if oldBrowser != nil {
		_ = oldBrowser.Close()
	}
	if oldLauncher != nil {
		oldLauncher.Kill()
		oldLauncher.Cleanup()
	}
	bm.logger.Info("browser recycled", "pages", bm.pageCount.Swap(0))
}
