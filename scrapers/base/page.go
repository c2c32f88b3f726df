package base

import (
	"context"
	"fmt"
	"time"
)

// Element is a single node returned by a page query.
type Element interface {
	// Text returns the element's rendered text.
	Text() (string, error)
	// Attribute returns the named attribute and whether it is present.
	Attribute(name string) (string, bool)
	// Find queries descendants of the element.
	Find(selector string) ([]Element, error)
}

// Page is a handle to one loaded document in a real or virtual browser session.
type Page interface {
	Navigate(ctx context.Context, url string) error
	// WaitReady blocks until selector matches or timeout elapses. Expiry is
	// reported as models.ErrPageLoadTimeout.
	WaitReady(ctx context.Context, selector string, timeout time.Duration) error
	Find(selector string) ([]Element, error)
	// HTML returns the current rendered document.
	HTML() (string, error)
	Close() error
}

// Driver names accepted by OpenPage
const (
	DriverSelenium = "selenium"
	DriverChromeDP = "chromedp"
	DriverHTTP     = "http"
)

// Options configures browser-backed pages
type Options struct {
	Headless         bool
	ChromeDriverPath string
	// Timeout bounds navigation only; readiness has its own bound in WaitReady
	Timeout time.Duration
}

// OpenPage starts a page handle for the given driver
func OpenPage(driver string, opts Options) (Page, error) {
	switch driver {
	case DriverSelenium, "":
		page, err := NewSeleniumPage(opts)
		if err != nil {
			return nil, err
		}
		return page, nil
	case DriverChromeDP:
		page, err := NewChromeDPPage(opts)
		if err != nil {
			return nil, err
		}
		return page, nil
	case DriverHTTP:
		return NewHTTPPage(opts), nil
	}
	return nil, fmt.Errorf("unknown driver %q", driver)
}
