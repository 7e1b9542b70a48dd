package rod

import (
	"fmt"
	"sync"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
)

// DefaultMaxPages is the default number of rendered pages before the
// browser is replaced.
const DefaultMaxPages = 50

// instance is one launched Chrome process and the connection to it.
type instance struct {
	browser  *rod.Browser
	launcher *launcher.Launcher
}

// launch starts a headless browser. Background throttling is disabled so
// pages rendered in hidden tabs finish loading.
func launch() (*instance, error) {
	l := launcher.New().
		Set("disable-background-timer-throttling").
		Set("disable-backgrounding-occluded-windows").
		Set("disable-renderer-backgrounding").
		Set("disable-dev-shm-usage").
		Set("disable-hang-monitor").
		Leakless(true).
		Headless(true)

	controlURL, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("launching browser: %w", err)
	}

	b := rod.New().ControlURL(controlURL)
	if err := b.Connect(); err != nil {
		l.Kill()
		return nil, fmt.Errorf("connecting to browser: %w", err)
	}
	return &instance{browser: b, launcher: l}, nil
}

func (i *instance) close() error {
	err := i.browser.Close()
	i.launcher.Kill()
	return err
}

// BrowserManager owns the browser behind a Fetcher. The serve command
// renders pages for as long as it runs and Chrome's memory only grows, so
// the browser is swapped for a fresh one every maxPages renders.
//
// BrowserManager is safe for concurrent use.
type BrowserManager struct {
	maxPages int64

	// launch starts replacement browsers.
	launch func() (*instance, error)

	mu       sync.Mutex
	current  *instance
	rendered int64
	recycled int
	closed   bool
}

// ManagerOption configures a BrowserManager.
type ManagerOption func(*BrowserManager)

// WithMaxPages sets the number of pages rendered before the browser is
// replaced. Defaults to DefaultMaxPages.
func WithMaxPages(n int64) ManagerOption {
	return func(bm *BrowserManager) {
		bm.maxPages = n
	}
}

// NewBrowserManager launches a headless Chrome browser.
// Close must be called when the BrowserManager is no longer needed.
func NewBrowserManager(opts ...ManagerOption) (*BrowserManager, error) {
	bm := &BrowserManager{
		maxPages: DefaultMaxPages,
		launch:   launch,
	}
	for _, opt := range opts {
		opt(bm)
	}

	inst, err := bm.launch()
	if err != nil {
		return nil, err
	}
	bm.current = inst
	return bm, nil
}

// Browser returns the browser to render the next page with. When maxPages
// pages have been rendered it first tries to launch a replacement; if that
// fails the old browser stays in service. Returns nil after Close.
func (bm *BrowserManager) Browser() *rod.Browser {
	bm.mu.Lock()
	defer bm.mu.Unlock()

	if bm.closed {
		return nil
	}
	if bm.rendered >= bm.maxPages {
		if next, err := bm.launch(); err == nil {
			_ = bm.current.close()
			bm.current = next
			bm.rendered = 0
			bm.recycled++
		}
	}
	return bm.current.browser
}

// IncrementPageCount records a rendered page.
func (bm *BrowserManager) IncrementPageCount() {
	bm.mu.Lock()
	bm.rendered++
	bm.mu.Unlock()
}

// Recycled returns how many times the browser has been replaced.
func (bm *BrowserManager) Recycled() int {
	bm.mu.Lock()
	defer bm.mu.Unlock()
	return bm.recycled
}

// Closed reports whether Close has been called.
func (bm *BrowserManager) Closed() bool {
	bm.mu.Lock()
	defer bm.mu.Unlock()
	return bm.closed
}

// Close shuts the browser down. Further calls do nothing.
func (bm *BrowserManager) Close() error {
	bm.mu.Lock()
	defer bm.mu.Unlock()

	if bm.closed {
		return nil
	}
	bm.closed = true
	err := bm.current.close()
	bm.current = nil
	return err
}

// LauncherPID returns the process ID of the browser launcher, or 0 once
// closed.
func (bm *BrowserManager) LauncherPID() int {
	bm.mu.Lock()
	defer bm.mu.Unlock()
	if bm.current == nil {
		return 0
	}
	return bm.current.launcher.PID()
}
