package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/shouni/go-http-kit/pkg/httpkit"
)

// DefaultFetchTimeout はリモートアセット取得のタイムアウトです。
// この時間を超えた取得はハングせず失敗として返ります。
const DefaultFetchTimeout = 30 * time.Second

// HTTPFetcher は httpkit.ClientInterface を満たす素の net/http クライアントです。
// アセット取得の契約（タイムアウト必須・非2xxはエラー）を構築時に固定するため、
// ここで具象実装を持っています。
type HTTPFetcher struct {
	client *http.Client
}

var _ httpkit.ClientInterface = (*HTTPFetcher)(nil)

// NewHTTPFetcher は指定タイムアウトの HTTPFetcher を生成します。
// timeout が 0 以下なら DefaultFetchTimeout を使います。
func NewHTTPFetcher(timeout time.Duration) *HTTPFetcher {
	if timeout <= 0 {
		timeout = DefaultFetchTimeout
	}
	return &HTTPFetcher{
		client: &http.Client{Timeout: timeout},
	}
}

// FetchBytes は GET でレスポンスボディを取得します。非2xx応答はエラーです。
func (f *HTTPFetcher) FetchBytes(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("リクエストの作成に失敗しました: %w", err)
	}
	return f.DoRequest(req)
}

// DoRequest はリクエストを実行してボディを返します。
func (f *HTTPFetcher) DoRequest(req *http.Request) ([]byte, error) {
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("HTTPステータス %d: %s", resp.StatusCode, req.URL)
	}
	return io.ReadAll(resp.Body)
}

// FetchAndDecodeJSON は GET したボディを JSON として v にデコードします。
func (f *HTTPFetcher) FetchAndDecodeJSON(ctx context.Context, url string, v any) error {
	data, err := f.FetchBytes(ctx, url)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}

// PostJSONAndFetchBytes は data を JSON として POST し、ボディを返します。
func (f *HTTPFetcher) PostJSONAndFetchBytes(ctx context.Context, url string, data any) ([]byte, error) {
	body, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("JSONエンコードに失敗しました: %w", err)
	}
	return f.PostRawBodyAndFetchBytes(ctx, url, body, "application/json")
}

// PostRawBodyAndFetchBytes は任意のボディを POST し、ボディを返します。
func (f *HTTPFetcher) PostRawBodyAndFetchBytes(ctx context.Context, url string, body []byte, contentType string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("リクエストの作成に失敗しました: %w", err)
	}
	req.Header.Set("Content-Type", contentType)
	return f.DoRequest(req)
}
