package adapters

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/shouni/go-remote-io/pkg/remoteio"
)

// LocalReader は remoteio.InputReader のローカルファイルシステム実装です。
// CLI のようにローカルアセットだけで完結する呼び出し側が使います。
type LocalReader struct{}

var _ remoteio.InputReader = LocalReader{}

// Open は指定パスのファイルを開きます。
// 存在しないパスのエラーは os.Open のまま返し、上位層が fs.ErrNotExist で分類します。
func (LocalReader) Open(ctx context.Context, uri string) (io.ReadCloser, error) {
	return os.Open(uri)
}

// List はディレクトリ内の各エントリのパスをコールバックに渡します。
func (LocalReader) List(ctx context.Context, uri string, fn func(string) error) error {
	entries, err := os.ReadDir(uri)
	if err != nil {
		return err
	}
	for _, e := range entries {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := fn(filepath.Join(uri, e.Name())); err != nil {
			return err
		}
	}
	return nil
}
