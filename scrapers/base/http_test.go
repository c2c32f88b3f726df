package base

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPPageNavigate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/p.html" {
			http.NotFound(w, r)
			return
		}
		assert.NotEmpty(t, r.Header.Get("User-Agent"))
		fmt.Fprint(w, `<html><body><h1 class="page-title"><span>Spring</span></h1></body></html>`)
	}))
	defer srv.Close()

	page := NewHTTPPage(Options{Timeout: 5 * time.Second})
	defer page.Close()

	ctx := context.Background()
	require.NoError(t, page.Navigate(ctx, srv.URL+"/p.html"))
	require.NoError(t, page.WaitReady(ctx, "body", time.Second))

	name := FirstMatch(page, Text("h1.page-title span"))
	require.NotNil(t, name)
	assert.Equal(t, "Spring", *name)

	err := page.Navigate(ctx, srv.URL+"/missing")
	assert.ErrorContains(t, err, "404")
}
