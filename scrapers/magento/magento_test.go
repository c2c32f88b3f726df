package magento

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/raushankrgupta/product-scraper/models"
	"github.com/raushankrgupta/product-scraper/scrapers/base"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const productURL = "https://example.com/p"

func loadPage(t *testing.T, html string) *base.DocumentPage {
	t.Helper()
	page, err := base.NewDocumentPage(html)
	require.NoError(t, err)
	require.NoError(t, NewMagentoScraper(0, 0).Load(context.Background(), page, productURL))
	return page
}

func fixture(t *testing.T) string {
	t.Helper()
	b, err := os.ReadFile("testdata/product.html")
	require.NoError(t, err)
	return string(b)
}

func TestNewMagentoScraperDefaults(t *testing.T) {
	s := NewMagentoScraper(0, -1)
	assert.Equal(t, DefaultMaxImages, s.MaxImages)
	assert.Equal(t, DefaultLoadTimeout, s.LoadTimeout)

	s = NewMagentoScraper(2, time.Second)
	assert.Equal(t, 2, s.MaxImages)
	assert.Equal(t, time.Second, s.LoadTimeout)
}

func TestScrapeProduct(t *testing.T) {
	page := loadPage(t, fixture(t))

	p := NewMagentoScraper(6, 0).ScrapeProduct(page, productURL)

	assert.Equal(t, productURL, p.URL)
	require.NotNil(t, p.Name)
	assert.Equal(t, "BC 6KG Taper Spring 95-62-180", *p.Name)
	require.NotNil(t, p.Price)
	assert.Equal(t, "€64.90", *p.Price)
	require.NotNil(t, p.Currency)
	assert.Equal(t, "EUR", *p.Currency)
	require.NotNil(t, p.SKU)
	assert.Equal(t, "006V-0033777", *p.SKU)
	require.NotNil(t, p.Availability)
	assert.Equal(t, "In stock", *p.Availability)
	require.NotNil(t, p.Description)
	assert.Equal(t, "Progressive taper spring for coilover kits.", *p.Description)
	assert.Equal(t, []string{
		"https://cdn.example.com/spring-1.jpg",
		"https://cdn.example.com/spring-2.jpg",
	}, p.Images)
	assert.Equal(t, map[string]string{
		"Spring Rate": "6 kg/mm",
		"Length":      "180 mm",
	}, p.Extras)
}

func TestScrapeProductPriceMetaFallback(t *testing.T) {
	page := loadPage(t, `<html><head>
		<meta property="product:price:amount" content="129.99">
	</head><body>
		<span class="price-wrapper"><span class="price">  </span></span>
		<span class="price"></span>
	</body></html>`)

	p := NewMagentoScraper(0, 0).ScrapeProduct(page, productURL)

	require.NotNil(t, p.Price)
	assert.Equal(t, "129.99", *p.Price)
	assert.Nil(t, p.Currency)
}

func TestScrapeProductAvailabilityLink(t *testing.T) {
	tests := []struct {
		name string
		body string
		want *string
	}{
		{
			name: "href preferred",
			body: `<div class="stock-display"> </div><link itemprop="availability" href="http://schema.org/InStock" content="InStock">`,
			want: strPtr("http://schema.org/InStock"),
		},
		{
			name: "content when href missing",
			body: `<link itemprop="availability" content="OutOfStock">`,
			want: strPtr("OutOfStock"),
		},
		{
			name: "text wins over link",
			body: `<div class="stock unavailable"><span>Out of stock</span></div><link itemprop="availability" href="http://schema.org/OutOfStock">`,
			want: strPtr("Out of stock"),
		},
		{
			name: "absent",
			body: `<p>no stock info</p>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := loadPage(t, "<html><body>"+tt.body+"</body></html>")
			p := NewMagentoScraper(0, 0).ScrapeProduct(page, productURL)
			assert.Equal(t, tt.want, p.Availability)
		})
	}
}

func TestScrapeProductEmptyPage(t *testing.T) {
	page := loadPage(t, `<html><body></body></html>`)

	p := NewMagentoScraper(0, 0).ScrapeProduct(page, productURL)

	assert.Equal(t, models.NewProduct(productURL), p)
}

func TestScrapeProductCapsImages(t *testing.T) {
	page := loadPage(t, `<html><body><div class="product media">
		<img src="/1.jpg"><img src="/2.jpg"><img src="/3.jpg">
	</div></body></html>`)

	p := NewMagentoScraper(2, 0).ScrapeProduct(page, productURL)
	assert.Equal(t, []string{"/1.jpg", "/2.jpg"}, p.Images)
}

func TestFinalPrice(t *testing.T) {
	page := loadPage(t, fixture(t))
	price := NewMagentoScraper(0, 0).FinalPrice(page)
	require.NotNil(t, price)
	assert.Equal(t, "€64.90", *price)

	empty := loadPage(t, `<html><body><span class="price">1</span></body></html>`)
	assert.Nil(t, NewMagentoScraper(0, 0).FinalPrice(empty))
}

func strPtr(s string) *string { return &s }
