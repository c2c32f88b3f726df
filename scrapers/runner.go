package scrapers

import (
	"context"
	"errors"
	"fmt"

	"github.com/raushankrgupta/product-scraper/artifacts"
	"github.com/raushankrgupta/product-scraper/models"
	"github.com/raushankrgupta/product-scraper/scrapers/base"
	"github.com/raushankrgupta/product-scraper/validation"
	log "github.com/sirupsen/logrus"
)

// DefaultRequired are the fields a scraped product must carry
var DefaultRequired = []string{"price", "sku", "availability"}

// Runner performs one scrape of one URL: load, extract, validate, and dump
// debug artifacts if anything fails.
type Runner struct {
	Scraper  Scraper
	OpenPage func() (base.Page, error)
	Recorder *artifacts.Recorder
	Required []string
	// Label names the artifacts and validation messages
	Label string
}

// Run scrapes url. The page is closed on every path. A returned error is the
// original failure; timeouts and validation errors pass through as is and
// anything else, panics included, is wrapped in *models.UnclassifiedError.
func (r *Runner) Run(ctx context.Context, url string) (product *models.Product, err error) {
	logger := log.WithFields(log.Fields{"component": "runner", "url": url})

	var page base.Page
	defer func() {
		// capture before Close so the artifact still sees the page
		if rec := recover(); rec != nil {
			product = nil
			err = r.fail(ctx, logger, page, &models.UnclassifiedError{Err: fmt.Errorf("panic: %v", rec)})
		}
		if page == nil {
			return
		}
		if closeErr := page.Close(); closeErr != nil {
			logger.WithError(closeErr).Warn("Failed to close page")
		}
	}()

	opened, err := r.OpenPage()
	if err != nil {
		return nil, r.fail(ctx, logger, nil, fmt.Errorf("open page: %w", err))
	}
	page = opened

	logger.Info("Loading product page")
	if err := r.Scraper.Load(ctx, page, url); err != nil {
		return nil, r.fail(ctx, logger, page, err)
	}

	product = r.Scraper.ScrapeProduct(page, url)
	logger.WithField("images", len(product.Images)).Info("Product scraped")

	if err := validation.Validate(product, r.Required, r.Label); err != nil {
		return product, r.fail(ctx, logger, page, err)
	}
	return product, nil
}

func (r *Runner) fail(ctx context.Context, logger *log.Entry, page base.Page, err error) error {
	err = classify(err)
	logger.WithError(err).Error("Scrape failed")

	if r.Recorder == nil {
		return err
	}

	var src artifacts.Source
	if page != nil {
		src = page
	}
	if dumpErr := r.Recorder.Capture(ctx, r.Label, src, err); dumpErr != nil {
		return errors.Join(err, fmt.Errorf("write debug artifacts: %w", dumpErr))
	}
	return err
}

func classify(err error) error {
	var verr *validation.ValidationError
	var uerr *models.UnclassifiedError
	switch {
	case errors.Is(err, models.ErrPageLoadTimeout), errors.As(err, &verr), errors.As(err, &uerr):
		return err
	}
	return &models.UnclassifiedError{Err: err}
}
