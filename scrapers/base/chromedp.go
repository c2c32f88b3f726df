package base

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/chromedp"
	"github.com/raushankrgupta/product-scraper/models"
)

// ChromeDPPage drives a headless Chrome over the DevTools protocol. Element
// queries run against a snapshot of the DOM taken once the page is ready.
type ChromeDPPage struct {
	ctx         context.Context
	cancelTab   context.CancelFunc
	cancelAlloc context.CancelFunc
	snapshot    *DocumentPage
}

// NewChromeDPPage launches a browser and opens one tab
func NewChromeDPPage(opts Options) (*ChromeDPPage, error) {
	allocOpts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", opts.Headless),
		chromedp.NoSandbox,
		chromedp.DisableGPU,
		chromedp.WindowSize(1280, 1600),
	)

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(context.Background(), allocOpts...)
	taskCtx, cancelTab := chromedp.NewContext(allocCtx)

	// Starts the browser so launch failures surface here rather than on Navigate
	if err := chromedp.Run(taskCtx); err != nil {
		cancelTab()
		cancelAlloc()
		return nil, fmt.Errorf("chromedp start error: %w", err)
	}

	return &ChromeDPPage{
		ctx:         taskCtx,
		cancelTab:   cancelTab,
		cancelAlloc: cancelAlloc,
	}, nil
}

func (p *ChromeDPPage) Navigate(ctx context.Context, url string) error {
	runCtx, cancel := context.WithCancel(p.ctx)
	defer cancel()
	stop := context.AfterFunc(ctx, cancel)
	defer stop()

	headers := map[string]interface{}{
		"Accept-Language": "en-US,en;q=0.9",
	}

	p.snapshot = nil
	err := chromedp.Run(runCtx,
		network.SetExtraHTTPHeaders(network.Headers(headers)),
		chromedp.Navigate(url),
	)
	if err != nil {
		return fmt.Errorf("chromedp navigation error: %w", err)
	}
	return nil
}

func (p *ChromeDPPage) WaitReady(ctx context.Context, selector string, timeout time.Duration) error {
	waitCtx, cancel := context.WithTimeout(p.ctx, timeout)
	defer cancel()
	stop := context.AfterFunc(ctx, cancel)
	defer stop()

	err := chromedp.Run(waitCtx, chromedp.WaitReady(selector, chromedp.ByQuery))
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %q not ready after %s", models.ErrPageLoadTimeout, selector, timeout)
	}
	if err != nil {
		return fmt.Errorf("chromedp wait error: %w", err)
	}
	return p.refresh()
}

func (p *ChromeDPPage) Find(selector string) ([]Element, error) {
	if p.snapshot == nil {
		if err := p.refresh(); err != nil {
			return nil, err
		}
	}
	return p.snapshot.Find(selector)
}

// HTML reads the live document, not the snapshot
func (p *ChromeDPPage) HTML() (string, error) {
	var html string
	if err := chromedp.Run(p.ctx, chromedp.OuterHTML("html", &html, chromedp.ByQuery)); err != nil {
		return "", fmt.Errorf("chromedp outer html error: %w", err)
	}
	return html, nil
}

func (p *ChromeDPPage) Close() error {
	p.cancelTab()
	p.cancelAlloc()
	return nil
}

func (p *ChromeDPPage) refresh() error {
	html, err := p.HTML()
	if err != nil {
		return err
	}
	doc, err := NewDocumentPage(html)
	if err != nil {
		return err
	}
	p.snapshot = doc
	return nil
}
