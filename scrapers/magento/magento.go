package magento

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/raushankrgupta/product-scraper/models"
	"github.com/raushankrgupta/product-scraper/scrapers/base"
)

const (
	DefaultMaxImages   = 6
	DefaultLoadTimeout = 15 * time.Second
)

var (
	nameCandidates = []base.Candidate{
		base.Text(`h1.page-title span[itemprop="name"]`),
		base.Text(`h1.page-title span`),
		base.Text(`h1.product-title`),
	}
	// visible price first, then OpenGraph
	priceCandidates = []base.Candidate{
		base.Text(`span.price-wrapper .price`),
		base.Text(`span[data-price-type="finalPrice"] .price`),
		base.Text(`span.price`),
		base.Meta(`meta[property="product:price:amount"]`),
	}
	currencyCandidates = []base.Candidate{
		base.Meta(`meta[property="product:price:currency"]`),
	}
	skuCandidates = []base.Candidate{
		base.TextOr(`div.product.attribute.sku .value`, "content"),
		base.TextOr(`span[itemprop="sku"]`, "content"),
		base.TextOr(`div.sku .value`, "content"),
	}
	// human-readable stock text first, then the schema.org link
	availabilityCandidates = []base.Candidate{
		base.Text(`div.stock-display`),
		base.Text(`div.stock-display strong`),
		base.Text(`div.stock.available span`),
		base.Text(`div.stock.unavailable span`),
		base.Attr(`link[itemprop="availability"]`, "href"),
		base.Attr(`link[itemprop="availability"]`, "content"),
	}
	descriptionCandidates = []base.Candidate{
		base.Text(`.product.attribute.overview .value`),
		base.Text(`#description`),
		base.Text(`.product-info-main .value.description`),
	}
	imageSelectors = []string{
		`.fotorama__stage .fotorama__img`,
		`.product.media img`,
	}
	finalPriceCandidate = base.Text(`span[data-price-type='finalPrice'] .price`)
)

const (
	extrasRowSelector = `table.data.table.additional-attributes tr`
	readySelector     = "body"
)

// MagentoScraper extracts product data from Magento 2 storefront pages
type MagentoScraper struct {
	MaxImages   int
	LoadTimeout time.Duration
}

// NewMagentoScraper creates a scraper; non-positive arguments select the defaults
func NewMagentoScraper(maxImages int, loadTimeout time.Duration) *MagentoScraper {
	if maxImages <= 0 {
		maxImages = DefaultMaxImages
	}
	if loadTimeout <= 0 {
		loadTimeout = DefaultLoadTimeout
	}
	return &MagentoScraper{MaxImages: maxImages, LoadTimeout: loadTimeout}
}

func (s *MagentoScraper) CanScrape(url string) bool {
	return strings.HasPrefix(url, "http://") || strings.HasPrefix(url, "https://")
}

// Load navigates to url and waits for the document body
func (s *MagentoScraper) Load(ctx context.Context, page base.Page, url string) error {
	if err := page.Navigate(ctx, url); err != nil {
		return err
	}
	if err := page.WaitReady(ctx, readySelector, s.LoadTimeout); err != nil {
		return fmt.Errorf("load %s: %w", url, err)
	}
	return nil
}

// ScrapeProduct reads every field from an already loaded page
func (s *MagentoScraper) ScrapeProduct(page base.Page, url string) *models.Product {
	product := models.NewProduct(url)

	product.Name = base.FirstMatch(page, nameCandidates...)
	product.Price = base.FirstMatch(page, priceCandidates...)
	product.Currency = base.FirstMatch(page, currencyCandidates...)
	product.SKU = base.FirstMatch(page, skuCandidates...)
	product.Availability = base.FirstMatch(page, availabilityCandidates...)
	product.Description = base.FirstMatch(page, descriptionCandidates...)
	product.Images = base.CollectImages(page, s.MaxImages, imageSelectors...)
	product.Extras = base.ScanTable(page, extrasRowSelector, "th", "td")

	return product
}

// FinalPrice reads only the displayed final price
func (s *MagentoScraper) FinalPrice(page base.Page) *string {
	return base.FirstMatch(page, finalPriceCandidate)
}
