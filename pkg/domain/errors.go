package domain

import "errors"

// パイプライン全体のエラー分類です。
// どの層で失敗しても fmt.Errorf("...: %w", err) で文脈を積み、
// 呼び出し側は errors.Is でこの分類に到達できます。
var (
	// ErrInvalidColorFormat は 6桁16進数でないカラー文字列を示します。
	ErrInvalidColorFormat = errors.New("invalid color format")

	// ErrUnsupportedFillType は認識できない FillSource バリアントを示します。
	ErrUnsupportedFillType = errors.New("unsupported fill type")

	// ErrUnsupportedSourceType は認識できない被写体ソースを示します。
	ErrUnsupportedSourceType = errors.New("unsupported source type")

	// ErrMissingRasterCapability はベクター形状が要求されたのに
	// VectorRasterizer が注入されていないことを示します。
	ErrMissingRasterCapability = errors.New("missing raster capability")

	// ErrAssetNotFound はローカルパスのアセットが存在しないことを示します。
	ErrAssetNotFound = errors.New("asset not found")

	// ErrFetchFailed はリモートアセット取得の失敗（ネットワークエラー、
	// タイムアウト、非 2xx 応答）を示します。
	ErrFetchFailed = errors.New("fetch failed")
)
