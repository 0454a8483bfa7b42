package rod

import (
	"fmt"
	"sync"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
)

// DefaultMaxPages is the number of pages rendered before the browser is
// restarted. Chrome's memory baseline grows over a long batch and never
// returns to its initial level, even with pages closed.
const DefaultMaxPages = 75

// browser owns a headless Chrome process and restarts it every maxPages
// pages. It is safe for concurrent use.
type browser struct {
	mu       sync.Mutex
	current  *rod.Browser
	launcher *launcher.Launcher
	pages    int
	maxPages int
	bin      string
}

func newBrowser(maxPages int, bin string) (*browser, error) {
	b := &browser{maxPages: maxPages, bin: bin}
	if err := b.launch(); err != nil {
		return nil, err
	}
	return b, nil
}

// acquire returns the running browser and counts one page against it.
// A browser that has rendered maxPages pages is replaced first; if the
// replacement fails to start the old one keeps serving.
func (b *browser) acquire() *rod.Browser {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.maxPages > 0 && b.pages >= b.maxPages {
		b.restart()
	}
	b.pages++
	return b.current
}

// pid returns the launcher process ID, or 0 once closed.
func (b *browser) pid() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.launcher == nil {
		return 0
	}
	return b.launcher.PID()
}

func (b *browser) close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.shutdown()
}

// launch starts Chrome with flags that keep background pages rendering.
// Must be called with mu held or before the browser is shared.
func (b *browser) launch() error {
	l := launcher.New().
		Set("disable-background-timer-throttling").
		Set("disable-backgrounding-occluded-windows").
		Set("disable-renderer-backgrounding").
		Set("disable-dev-shm-usage").
		Leakless(true).
		Headless(true)
	if b.bin != "" {
		l = l.Bin(b.bin)
	}

	u, err := l.Launch()
	if err != nil {
		return fmt.Errorf("launching browser: %w", err)
	}

	rb := rod.New().ControlURL(u)
	if err := rb.Connect(); err != nil {
		l.Kill()
		return fmt.Errorf("connecting to browser: %w", err)
	}

	b.current = rb
	b.launcher = l
	return nil
}

// restart must be called with mu held.
func (b *browser) restart() {
	oldBrowser, oldLauncher := b.current, b.launcher
	if err := b.launch(); err != nil {
		b.current, b.launcher = oldBrowser, oldLauncher
		return
	}
	if oldBrowser != nil {
		_ = oldBrowser.Close()
	}
	if oldLauncher != nil {
		oldLauncher.Kill()
	}
	b.pages = 0
}

// shutdown must be called with mu held.
func (b *browser) shutdown() error {
	var err error
	if b.current != nil {
		err = b.current.Close()
		b.current = nil
	}
	if b.launcher != nil {
		b.launcher.Kill()
		b.launcher = nil
	}
	return err
}
