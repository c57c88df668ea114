package compositor

import (
	"context"
	"image"
)

// VectorRasterizer はベクターマークアップを指定寸法のラスタに変換する注入能力です。
// nil のままでも構築でき、ベクター形状が実際に要求された時点で初めて
// ErrMissingRasterCapability が表面化します（起動時チェックはしません）。
// 実装が再入可能でない場合、並行レンダリングの安全性は呼び出し側の責任です。
type VectorRasterizer interface {
	// Rasterize はマークアップを width×height のアルファ付き画像として描画します。
	Rasterize(markup []byte, width, height int) (image.Image, error)
}

// AssetLoader は外部アセット（被写体・塗り画像）をデコード済み画像として取得します。
// ローカルパスとリモートURLで失敗の分類が異なるため、メソッドを分けています。
type AssetLoader interface {
	// LoadLocal はローカルパスの画像を読み込みます。見つからなければ ErrAssetNotFound。
	LoadLocal(ctx context.Context, path string) (image.Image, error)
	// LoadRemote は http(s) URL の画像を取得します。タイムアウト・非2xxは ErrFetchFailed。
	LoadRemote(ctx context.Context, url string) (image.Image, error)
}
