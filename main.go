package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/raushankrgupta/product-scraper/artifacts"
	"github.com/raushankrgupta/product-scraper/config"
	"github.com/raushankrgupta/product-scraper/models"
	"github.com/raushankrgupta/product-scraper/scrapers"
	"github.com/raushankrgupta/product-scraper/scrapers/base"
	"github.com/raushankrgupta/product-scraper/scrapers/magento"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
)

func init() {
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	log.SetOutput(os.Stderr)
}

func main() {
	config.LoadConfig()

	flags := pflag.NewFlagSet(os.Args[0], pflag.ExitOnError)
	flags.StringVar(&config.Driver, "driver", config.Driver, "page driver: selenium, chromedp or http")
	flags.BoolVar(&config.Headless, "headless", config.Headless, "run the browser headless")
	flags.StringVar(&config.ArtifactsDir, "artifacts", config.ArtifactsDir, "directory for debug artifacts")
	flags.IntVar(&config.MaxImages, "max-images", config.MaxImages, "maximum number of product images")
	flags.StringVar(&config.LogLevel, "log-level", config.LogLevel, "log level (debug, info, warn, error)")
	flags.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] [product-url]\n", filepath.Base(os.Args[0]))
		flags.PrintDefaults()
	}
	_ = flags.Parse(os.Args[1:])

	level, err := log.ParseLevel(config.LogLevel)
	if err != nil {
		log.Fatalf("Invalid log level: %v", err)
	}
	log.SetLevel(level)

	url := config.DefaultURL
	if flags.NArg() > 0 {
		url = flags.Arg(0)
	}

	if err := artifacts.EnsureDir(config.ArtifactsDir); err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	recorder := &artifacts.Recorder{Dir: config.ArtifactsDir}
	if config.AWSBucketName != "" {
		uploader, err := artifacts.NewS3Uploader(ctx, config.AWSRegion, config.AWSBucketName)
		if err != nil {
			log.WithError(err).Warn("S3 artifact mirror disabled")
		} else {
			recorder.Uploader = uploader
		}
	}

	scraper := magento.NewMagentoScraper(config.MaxImages, config.PageLoadTimeout)
	if !scraper.CanScrape(url) {
		log.Fatalf("Unsupported url: %s", url)
	}

	runner := &scrapers.Runner{
		Scraper: scraper,
		OpenPage: func() (base.Page, error) {
			return base.OpenPage(config.Driver, base.Options{
				Headless:         config.Headless,
				ChromeDriverPath: config.ChromeDriverPath,
				Timeout:          config.NavigationTimeout,
			})
		},
		Recorder: recorder,
		Required: scrapers.DefaultRequired,
		Label:    filepath.Base(os.Args[0]),
	}

	product, err := runner.Run(ctx, url)
	if product != nil {
		if err := writeProduct(os.Stdout, product); err != nil {
			log.WithError(err).Error("Failed to print product")
		}
	}
	if err != nil {
		log.WithError(err).Error("Scrape failed")
		os.Exit(1)
	}
}

// writeProduct prints the record as indented JSON, leaving &, < and > in
// URLs unescaped
func writeProduct(w io.Writer, product *models.Product) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(product)
}
