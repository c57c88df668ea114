package utils

import (
	"path/filepath"
	"strings"
)

// VariantPath は、バッチ出力の派生ファイル名を作ります。
// "avatar.png" とバリアント名 "blue" から "avatar_blue.png" を返します。
// 拡張子がないパスの場合は末尾にサフィックスをそのまま付け足します。
func VariantPath(outputPath, variant string) string {
	ext := filepath.Ext(outputPath)
	base := strings.TrimSuffix(outputPath, ext)
	return base + "_" + variant + ext
}
