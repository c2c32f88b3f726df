package main

import (
	"context"
	"fmt"
	"os"

	"github.com/raushankrgupta/product-scraper/config"
	"github.com/raushankrgupta/product-scraper/scrapers/base"
	"github.com/raushankrgupta/product-scraper/scrapers/magento"
	log "github.com/sirupsen/logrus"
)

// Prints only the final price of the product page, without waiting for
// readiness or validating anything.
func main() {
	config.LoadConfig()

	url := config.DefaultURL
	if len(os.Args) > 1 {
		url = os.Args[1]
	}

	price, err := finalPrice(context.Background(), url)
	if err != nil {
		log.Fatalf("Failed to read price: %v", err)
	}

	if price == nil {
		fmt.Println("Price: <nil>")
		return
	}
	fmt.Println("Price:", *price)
}

func finalPrice(ctx context.Context, url string) (*string, error) {
	page, err := base.OpenPage(config.Driver, base.Options{
		Headless:         config.Headless,
		ChromeDriverPath: config.ChromeDriverPath,
		Timeout:          config.NavigationTimeout,
	})
	if err != nil {
		return nil, err
	}
	defer page.Close()

	if err := page.Navigate(ctx, url); err != nil {
		return nil, err
	}
	return magento.NewMagentoScraper(0, 0).FinalPrice(page), nil
}
