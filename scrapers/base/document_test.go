package base

import (
	"context"
	"testing"
	"time"

	"github.com/raushankrgupta/product-scraper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentPageQueries(t *testing.T) {
	page := mustPage(t, `<div class="media"><img src="/a.jpg" alt="front"></div>`)

	els, err := page.Find(".media img")
	require.NoError(t, err)
	require.Len(t, els, 1)

	src, ok := els[0].Attribute("src")
	assert.True(t, ok)
	assert.Equal(t, "/a.jpg", src)

	_, ok = els[0].Attribute("data-src")
	assert.False(t, ok)

	divs, err := page.Find(".media")
	require.NoError(t, err)
	nested, err := divs[0].Find("img")
	require.NoError(t, err)
	assert.Len(t, nested, 1)

	html, err := page.HTML()
	require.NoError(t, err)
	assert.Contains(t, html, "/a.jpg")
}

func TestDocumentPageWaitReady(t *testing.T) {
	page := mustPage(t, `<p>ready</p>`)
	ctx := context.Background()

	assert.NoError(t, page.WaitReady(ctx, "body", time.Second))

	err := page.WaitReady(ctx, "#never", time.Second)
	assert.ErrorIs(t, err, models.ErrPageLoadTimeout)
}

func TestOpenPageRejectsUnknownDriver(t *testing.T) {
	_, err := OpenPage("netscape", Options{})
	assert.Error(t, err)
}

func TestOpenPageHTTP(t *testing.T) {
	page, err := OpenPage(DriverHTTP, Options{Timeout: time.Second})
	require.NoError(t, err)
	defer page.Close()

	assert.IsType(t, &HTTPPage{}, page)
	assert.ErrorIs(t, page.WaitReady(context.Background(), "body", time.Second), models.ErrPageLoadTimeout)
}
