package base

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/raushankrgupta/product-scraper/models"
	"github.com/tebeka/selenium"
	"github.com/tebeka/selenium/chrome"
)

// SeleniumPage drives Chrome through a local chromedriver service
type SeleniumPage struct {
	service *selenium.Service
	driver  selenium.WebDriver
	port    int
}

// NewSeleniumPage starts chromedriver on a leased port and opens a session
func NewSeleniumPage(opts Options) (*SeleniumPage, error) {
	InitPortManager(4444, 16)

	port, err := GlobalPortManager.GetPort()
	if err != nil {
		return nil, fmt.Errorf("port error: %w", err)
	}

	service, err := selenium.NewChromeDriverService(opts.ChromeDriverPath, port)
	if err != nil {
		GlobalPortManager.ReleasePort(port)
		return nil, fmt.Errorf("error starting Chrome driver service: %w", err)
	}

	args := []string{
		"--no-sandbox",
		"--disable-gpu",
		"--window-size=1280,1600",
	}
	if opts.Headless {
		args = append([]string{"--headless=new"}, args...)
	}

	caps := selenium.Capabilities{"browserName": "chrome"}
	caps.AddChrome(chrome.Capabilities{Args: args})

	driver, err := selenium.NewRemote(caps, fmt.Sprintf("http://localhost:%d/wd/hub", port))
	if err != nil {
		service.Stop()
		GlobalPortManager.ReleasePort(port)
		return nil, fmt.Errorf("error creating WebDriver: %w", err)
	}

	if opts.Timeout > 0 {
		driver.SetPageLoadTimeout(opts.Timeout)
	}

	return &SeleniumPage{service: service, driver: driver, port: port}, nil
}

func (p *SeleniumPage) Navigate(ctx context.Context, url string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := p.driver.Get(url); err != nil {
		return fmt.Errorf("navigation error: %w", err)
	}
	return nil
}

func (p *SeleniumPage) WaitReady(ctx context.Context, selector string, timeout time.Duration) error {
	present := func(wd selenium.WebDriver) (bool, error) {
		if err := ctx.Err(); err != nil {
			return false, err
		}
		els, err := wd.FindElements(selenium.ByCSSSelector, selector)
		if err != nil {
			return false, nil
		}
		return len(els) > 0, nil
	}

	err := p.driver.WaitWithTimeout(present, timeout)
	if err == nil {
		return nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	return fmt.Errorf("%w: %q not present after %s", models.ErrPageLoadTimeout, selector, timeout)
}

func (p *SeleniumPage) Find(selector string) ([]Element, error) {
	els, err := p.driver.FindElements(selenium.ByCSSSelector, selector)
	if err != nil {
		return nil, err
	}
	return wrapWebElements(els), nil
}

func (p *SeleniumPage) HTML() (string, error) {
	html, err := p.driver.PageSource()
	if err != nil {
		return "", fmt.Errorf("page source error: %w", err)
	}
	return html, nil
}

// Close quits the session, stops chromedriver and returns the port
func (p *SeleniumPage) Close() error {
	defer GlobalPortManager.ReleasePort(p.port)

	var errs []error
	if err := p.driver.Quit(); err != nil {
		errs = append(errs, fmt.Errorf("quit driver: %w", err))
	}
	if err := p.service.Stop(); err != nil {
		errs = append(errs, fmt.Errorf("stop chromedriver: %w", err))
	}
	return errors.Join(errs...)
}

type webElement struct {
	el selenium.WebElement
}

func (e webElement) Text() (string, error) {
	return e.el.Text()
}

func (e webElement) Attribute(name string) (string, bool) {
	v, err := e.el.GetAttribute(name)
	if err != nil {
		return "", false
	}
	return v, true
}

func (e webElement) Find(selector string) ([]Element, error) {
	els, err := e.el.FindElements(selenium.ByCSSSelector, selector)
	if err != nil {
		return nil, err
	}
	return wrapWebElements(els), nil
}

func wrapWebElements(els []selenium.WebElement) []Element {
	out := make([]Element, 0, len(els))
	for _, el := range els {
		out = append(out, webElement{el: el})
	}
	return out
}
