package adapters

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPFetcher_FetchBytes(t *testing.T) {
	ctx := context.Background()

	t.Run("2xx応答はボディを返す", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("image-bytes"))
		}))
		defer srv.Close()

		f := NewHTTPFetcher(5 * time.Second)
		data, err := f.FetchBytes(ctx, srv.URL)
		require.NoError(t, err)
		assert.Equal(t, "image-bytes", string(data))
	})

	t.Run("非2xx応答はエラー", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.NotFound(w, r)
		}))
		defer srv.Close()

		f := NewHTTPFetcher(5 * time.Second)
		_, err := f.FetchBytes(ctx, srv.URL)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "404")
	})

	t.Run("タイムアウトでハングせず失敗する", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(300 * time.Millisecond)
		}))
		defer srv.Close()

		f := NewHTTPFetcher(50 * time.Millisecond)
		start := time.Now()
		_, err := f.FetchBytes(ctx, srv.URL)
		assert.Error(t, err)
		assert.Less(t, time.Since(start), 250*time.Millisecond)
	})

	t.Run("コンテキストのキャンセルが伝播する", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(300 * time.Millisecond)
		}))
		defer srv.Close()

		cancelCtx, cancel := context.WithCancel(ctx)
		cancel()

		f := NewHTTPFetcher(5 * time.Second)
		_, err := f.FetchBytes(cancelCtx, srv.URL)
		assert.Error(t, err)
	})
}

func TestHTTPFetcher_Defaults(t *testing.T) {
	f := NewHTTPFetcher(0)
	assert.Equal(t, DefaultFetchTimeout, f.client.Timeout, "ゼロ以下は既定の30秒になる")
}

func TestHTTPFetcher_PostJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.Write([]byte(`ok`))
	}))
	defer srv.Close()

	f := NewHTTPFetcher(5 * time.Second)
	data, err := f.PostJSONAndFetchBytes(context.Background(), srv.URL, map[string]string{"k": "v"})
	require.NoError(t, err)
	assert.Equal(t, "ok", string(data))
}
