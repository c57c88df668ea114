package domain

import "image"

// FillKind は FillSource のタグです。
// 実行時の型検査ではなくタグ付きバリアントで分岐します。
type FillKind int

const (
	FillUnknown FillKind = iota
	FillGradient
	FillLocalPath
	FillRemoteURL
	FillRaster
)

// FillSource はポータルの塗りの指定です。
// Gradient / ローカルパス / リモートURL / デコード済みラスタのいずれか一つを保持し、
// 解決時に対象バウンディングボックスちょうどの RGB ラスタへ変換されます。
type FillSource struct {
	Kind     FillKind
	Gradient GradientSpec
	Path     string
	URL      string
	Raster   image.Image
}

// GradientFill はグラデーション塗りの FillSource を作ります。
func GradientFill(spec GradientSpec) FillSource {
	return FillSource{Kind: FillGradient, Gradient: spec}
}

// LocalFill はローカル画像ファイルを塗りに使う FillSource を作ります。
func LocalFill(path string) FillSource {
	return FillSource{Kind: FillLocalPath, Path: path}
}

// RemoteFill は http(s) URL の画像を塗りに使う FillSource を作ります。
func RemoteFill(url string) FillSource {
	return FillSource{Kind: FillRemoteURL, URL: url}
}

// RasterFill はデコード済み画像を塗りに使う FillSource を作ります。
func RasterFill(img image.Image) FillSource {
	return FillSource{Kind: FillRaster, Raster: img}
}

// SubjectKind は SubjectSource のタグです。
type SubjectKind int

const (
	SubjectUnknown SubjectKind = iota
	SubjectLocalPath
	SubjectRemoteURL
	SubjectRaster
)

// SubjectSource は前景の被写体画像の指定です。
type SubjectSource struct {
	Kind   SubjectKind
	Path   string
	URL    string
	Raster image.Image
}

// LocalSubject はローカルファイルの被写体を指定します。
func LocalSubject(path string) SubjectSource {
	return SubjectSource{Kind: SubjectLocalPath, Path: path}
}

// RemoteSubject は http(s) URL の被写体を指定します。
func RemoteSubject(url string) SubjectSource {
	return SubjectSource{Kind: SubjectRemoteURL, URL: url}
}

// RasterSubject はデコード済みの被写体を指定します。
func RasterSubject(img image.Image) SubjectSource {
	return SubjectSource{Kind: SubjectRaster, Raster: img}
}

// ShapeKind は ShapeSource のタグです。
type ShapeKind int

const (
	ShapeUnknown ShapeKind = iota
	ShapeVector
	ShapeRaster
)

// ColorOverride はベクター形状内の色属性値を文字列置換で差し替える指定です。
// 汎用の SVG カラーエンジンではなく、既知の属性値（例: stop-color="#CE782D"）を
// そのまま照合して置き換える契約です。
type ColorOverride struct {
	From string // 置換対象となる属性値そのもの（例: `fill="#CE782D"`）
	To   string // 置換後の属性値
}

// ShapeSource はポータルやマスクの形状定義です。
// Vector はマークアップ文字列、Raster はアルファ/輝度をマスクに使う画像です。
type ShapeSource struct {
	Kind      ShapeKind
	Markup    string
	Overrides []ColorOverride
	Raster    image.Image
}

// VectorShape はマークアップ文字列からベクター形状を作ります。
func VectorShape(markup string, overrides ...ColorOverride) ShapeSource {
	return ShapeSource{Kind: ShapeVector, Markup: markup, Overrides: overrides}
}

// RasterShape はラスタ画像から形状を作ります。
// アルファチャンネルがあればそれを、グレースケールならそのまま、
// それ以外は輝度をマスクとして使います。
func RasterShape(img image.Image) ShapeSource {
	return ShapeSource{Kind: ShapeRaster, Raster: img}
}
