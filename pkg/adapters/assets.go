package adapters

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"io/fs"
	"log/slog"
	"net"
	"net/url"
	"time"

	"github.com/shouni/go-http-kit/pkg/httpkit"
	"github.com/shouni/go-remote-io/pkg/remoteio"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/shouni/avatar-portal-kit/pkg/domain"
)

// ImageCacher は取得済みアセットのキャッシュ操作を抽象化するインターフェースです。
type ImageCacher interface {
	Get(key string) (any, bool)
	Set(key string, value any, d time.Duration)
}

// AssetLoader はローカル・リモートの画像アセットをデコード済み画像として取得します。
// compositor.AssetLoader を実装します。
type AssetLoader struct {
	reader     remoteio.InputReader
	httpClient httpkit.ClientInterface
	cache      ImageCacher
	cacheTTL   time.Duration
}

// NewAssetLoader は依存関係を注入して AssetLoader を初期化します。
// cache は nil を許容します（キャッシュなし動作）。
func NewAssetLoader(reader remoteio.InputReader, httpClient httpkit.ClientInterface, cache ImageCacher, cacheTTL time.Duration) (*AssetLoader, error) {
	if reader == nil {
		return nil, fmt.Errorf("reader is required")
	}
	if httpClient == nil {
		return nil, fmt.Errorf("httpClient is required")
	}

	return &AssetLoader{
		reader:     reader,
		httpClient: httpClient,
		cache:      cache,
		cacheTTL:   cacheTTL,
	}, nil
}

// LoadLocal はローカルパスの画像を読み込んでデコードします。
// パスが存在しなければ ErrAssetNotFound に分類されます。
func (l *AssetLoader) LoadLocal(ctx context.Context, path string) (image.Image, error) {
	rc, err := l.reader.Open(ctx, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", domain.ErrAssetNotFound, path)
		}
		return nil, fmt.Errorf("%w: %s を開けません: %v", domain.ErrAssetNotFound, path, err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("アセットの読み込みに失敗しました: %w", err)
	}
	return decodeImage(path, data)
}

// LoadRemote は http(s) URL の画像を取得してデコードします。
// ネットワークエラー・タイムアウト・非2xx応答はすべて ErrFetchFailed に分類されます。
func (l *AssetLoader) LoadRemote(ctx context.Context, rawURL string) (image.Image, error) {
	// キャッシュの確認
	if l.cache != nil {
		if cached, found := l.cache.Get(rawURL); found {
			if data, ok := cached.([]byte); ok {
				return decodeImage(rawURL, data)
			}
			slog.WarnContext(ctx, "キャッシュデータが不正な型です", "url", rawURL, "type", fmt.Sprintf("%T", cached))
		}
	}

	// SSRF対策のバリデーション
	if safe, err := IsSafeURL(rawURL); !safe || err != nil {
		return nil, fmt.Errorf("%w: 安全ではないURLが指定されました: %v", domain.ErrFetchFailed, err)
	}

	data, err := l.httpClient.FetchBytes(ctx, rawURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrFetchFailed, rawURL, err)
	}

	if l.cache != nil {
		l.cache.Set(rawURL, data, l.cacheTTL)
	}
	return decodeImage(rawURL, data)
}

// decodeImage はバイト列を image.Decode がサポートする形式としてデコードします。
// PNG/JPEG/GIF に加え、golang.org/x/image の BMP/TIFF/WebP が登録済みです。
func decodeImage(name string, data []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s のデコードに失敗しました: %w", name, err)
	}
	return img, nil
}

// IsSafeURL は、SSRF (Server-Side Request Forgery) 対策として URL を検証します。
// 許可されたスキーム (http, https) かつ、プライベートIPやループバックアドレスを
// ターゲットにしていないことを確認します。
func IsSafeURL(rawURL string) (bool, error) {
	parsedURL, err := url.ParseRequestURI(rawURL)
	if err != nil {
		return false, fmt.Errorf("URLパース失敗: %w", err)
	}

	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return false, fmt.Errorf("不許可スキーム: %s", parsedURL.Scheme)
	}

	host := parsedURL.Hostname()
	var ips []net.IP

	// IPアドレスが直接指定されているか確認し、ホスト名ならすべての IP を取得する
	if ip := net.ParseIP(host); ip != nil {
		ips = []net.IP{ip}
	} else {
		resolvedIPs, err := net.LookupIP(host)
		if err != nil {
			return false, fmt.Errorf("ホスト '%s' の名前解決に失敗しました: %w", host, err)
		}
		ips = resolvedIPs
	}

	if len(ips) == 0 {
		return false, fmt.Errorf("IPが見つかりません")
	}

	for _, ip := range ips {
		if ip.IsPrivate() || ip.IsLoopback() || ip.IsLinkLocalUnicast() || ip.IsLinkLocalMulticast() {
			return false, fmt.Errorf("制限されたネットワークへのアクセスを検知: %s", ip.String())
		}
	}

	return true, nil
}
