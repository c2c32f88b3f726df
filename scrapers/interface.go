package scrapers

import (
	"context"

	"github.com/raushankrgupta/product-scraper/models"
	"github.com/raushankrgupta/product-scraper/scrapers/base"
)

// Scraper defines the interface for product page scrapers
type Scraper interface {
	// CanScrape checks if the scraper can handle the given URL
	CanScrape(url string) bool
	// Load navigates the page to url and waits until it is ready
	Load(ctx context.Context, page base.Page, url string) error
	// ScrapeProduct reads the product details from a loaded page
	ScrapeProduct(page base.Page, url string) *models.Product
}
