package base

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/raushankrgupta/product-scraper/models"
)

// DocumentPage serves queries from a parsed HTML snapshot. Navigation is a
// no-op; the document is fixed at construction.
type DocumentPage struct {
	doc  *goquery.Document
	html string
}

// NewDocumentPage parses html into a page handle
func NewDocumentPage(html string) (*DocumentPage, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}
	return &DocumentPage{doc: doc, html: html}, nil
}

func (p *DocumentPage) Navigate(ctx context.Context, url string) error {
	return ctx.Err()
}

func (p *DocumentPage) WaitReady(ctx context.Context, selector string, timeout time.Duration) error {
	if p.doc.Find(selector).Length() == 0 {
		return fmt.Errorf("%w: %q not found", models.ErrPageLoadTimeout, selector)
	}
	return nil
}

func (p *DocumentPage) Find(selector string) ([]Element, error) {
	return wrapSelection(p.doc.Find(selector)), nil
}

func (p *DocumentPage) HTML() (string, error) {
	return p.html, nil
}

func (p *DocumentPage) Close() error {
	return nil
}

type docElement struct {
	sel *goquery.Selection
}

func (e docElement) Text() (string, error) {
	return e.sel.Text(), nil
}

func (e docElement) Attribute(name string) (string, bool) {
	return e.sel.Attr(name)
}

func (e docElement) Find(selector string) ([]Element, error) {
	return wrapSelection(e.sel.Find(selector)), nil
}

func wrapSelection(sel *goquery.Selection) []Element {
	els := make([]Element, 0, sel.Length())
	sel.Each(func(i int, s *goquery.Selection) {
		els = append(els, docElement{sel: s})
	})
	return els
}
