package base

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/raushankrgupta/product-scraper/models"
)

// HTTPPage fetches documents with a plain HTTP client. Scripts are not
// executed, so only server-rendered markup is visible.
type HTTPPage struct {
	Client *http.Client
	doc    *DocumentPage
}

// NewHTTPPage creates a new HTTPPage instance
func NewHTTPPage(opts Options) *HTTPPage {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &HTTPPage{
		Client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				ForceAttemptHTTP2:     false,
				TLSNextProto:          make(map[string]func(string, *tls.Conn) http.RoundTripper),
				MaxIdleConns:          10,
				IdleConnTimeout:       90 * time.Second,
				TLSHandshakeTimeout:   10 * time.Second,
				ExpectContinueTimeout: 1 * time.Second,
			},
		},
	}
}

// Navigate fetches the URL and keeps the parsed document
func (p *HTTPPage) Navigate(ctx context.Context, url string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	req.Header.Set("User-Agent", "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36")
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	res, err := p.Client.Do(req)
	if err != nil {
		return fmt.Errorf("http navigation error: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("status code error: %d %s", res.StatusCode, res.Status)
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return fmt.Errorf("read body: %w", err)
	}

	doc, err := NewDocumentPage(string(body))
	if err != nil {
		return err
	}
	p.doc = doc
	return nil
}

func (p *HTTPPage) WaitReady(ctx context.Context, selector string, timeout time.Duration) error {
	if p.doc == nil {
		return fmt.Errorf("%w: no document loaded", models.ErrPageLoadTimeout)
	}
	return p.doc.WaitReady(ctx, selector, timeout)
}

func (p *HTTPPage) Find(selector string) ([]Element, error) {
	if p.doc == nil {
		return nil, nil
	}
	return p.doc.Find(selector)
}

func (p *HTTPPage) HTML() (string, error) {
	if p.doc == nil {
		return "", fmt.Errorf("no document loaded")
	}
	return p.doc.HTML()
}

func (p *HTTPPage) Close() error {
	p.Client.CloseIdleConnections()
	return nil
}
