package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fwojciec/htmltree"
	treehttp "github.com/fwojciec/htmltree/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ htmltree.Fetcher = (*treehttp.Fetcher)(nil)

func TestFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("returns the response body", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("<html><body>hello</body></html>"))
		}))
		defer srv.Close()

		fetcher := treehttp.NewFetcher()
		defer fetcher.Close()

		got, err := fetcher.Fetch(context.Background(), srv.URL)

		require.NoError(t, err)
		assert.Equal(t, "<html><body>hello</body></html>", got)
	})

	t.Run("sends the configured user agent", func(t *testing.T) {
		t.Parallel()

		var gotUA string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotUA = r.Header.Get("User-Agent")
		}))
		defer srv.Close()

		fetcher := treehttp.NewFetcher(treehttp.WithUserAgent("htmltree-test/1.0"))
		defer fetcher.Close()

		_, err := fetcher.Fetch(context.Background(), srv.URL)

		require.NoError(t, err)
		assert.Equal(t, "htmltree-test/1.0", gotUA)
	})

	t.Run("fails on non-200 status", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer srv.Close()

		fetcher := treehttp.NewFetcher()
		defer fetcher.Close()

		_, err := fetcher.Fetch(context.Background(), srv.URL)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "404")
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			<-r.Context().Done()
		}))
		defer srv.Close()

		fetcher := treehttp.NewFetcher()
		defer fetcher.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := fetcher.Fetch(ctx, srv.URL)

		assert.Error(t, err)
	})

	t.Run("rate limiter honors a cancelled context", func(t *testing.T) {
		t.Parallel()

		fetcher := treehttp.NewFetcher(treehttp.WithRateLimit(0.0001))
		defer fetcher.Close()

		ctx, cancel := context.WithCancel(context.Background())

		// Use up the single burst token, then cancel while waiting.
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		defer srv.Close()

		_, err := fetcher.Fetch(ctx, srv.URL)
		require.NoError(t, err)

		cancel()
		_, err = fetcher.Fetch(ctx, srv.URL)
		assert.Error(t, err)
	})
}
