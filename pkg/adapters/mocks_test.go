package adapters

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"io"
	"net/http"
	"os"
	"testing"
	"time"
)

// --- Mocks ---

// mockHTTPClient は httpkit.ClientInterface を実装します。
type mockHTTPClient struct {
	fetchFunc func(ctx context.Context, url string) ([]byte, error)
}

func (m *mockHTTPClient) FetchBytes(ctx context.Context, url string) ([]byte, error) {
	return m.fetchFunc(ctx, url)
}

// インターフェースを満たすための空実装群なのだ
func (m *mockHTTPClient) DoRequest(req *http.Request) ([]byte, error) {
	return nil, nil
}

func (m *mockHTTPClient) FetchAndDecodeJSON(ctx context.Context, url string, v any) error {
	return nil
}

func (m *mockHTTPClient) PostJSONAndFetchBytes(ctx context.Context, url string, data any) ([]byte, error) {
	return nil, nil
}

func (m *mockHTTPClient) PostRawBodyAndFetchBytes(ctx context.Context, url string, body []byte, contentType string) ([]byte, error) {
	return nil, nil
}

// mockReader は remoteio.InputReader を実装します。
type mockReader struct {
	openFunc func(ctx context.Context, uri string) (io.ReadCloser, error)
}

func (m *mockReader) Open(ctx context.Context, uri string) (io.ReadCloser, error) {
	if m.openFunc != nil {
		return m.openFunc(ctx, uri)
	}
	return nil, os.ErrNotExist
}

func (m *mockReader) List(ctx context.Context, uri string, fn func(string) error) error {
	return nil
}

// mockCache は ImageCacher インターフェースを実装するのだ。
type mockCache struct {
	data map[string]any
}

func (m *mockCache) Get(key string) (any, bool) {
	v, ok := m.data[key]
	return v, ok
}

func (m *mockCache) Set(key string, value any, d time.Duration) {
	if m.data == nil {
		m.data = make(map[string]any)
	}
	m.data[key] = value
}

// --- ヘルパー ---

// encodeTestPNG は単色画像のPNGバイト列を作ります。
func encodeTestPNG(t *testing.T, w, h int, c color.NRGBA) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	buf := new(bytes.Buffer)
	if err := png.Encode(buf, img); err != nil {
		t.Fatalf("failed to encode test png: %v", err)
	}
	return buf.Bytes()
}
