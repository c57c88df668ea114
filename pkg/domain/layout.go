package domain

import (
	"fmt"
	"math"
)

// Size は幅×高さです。小数を許容します（サブピクセル配置はスーパーサンプリングで実現）。
type Size struct {
	W float64
	H float64
}

// Offset は出力フレームに対するレイヤーの配置位置です。負数・小数を許容します。
type Offset struct {
	X float64
	Y float64
}

// LayoutConfig はアバター1枚分のレイアウトです。
// すべてのフィールドは呼び出しごとに新しく作られ、構築後は変更されません。
// スーパーサンプリング展開後の「実効」コンフィグは純関数が別の値として返すため、
// この型に内部状態が紛れ込むことはありません。
type LayoutConfig struct {
	OutputSize    Size
	PortalSize    Size
	PortalOffset  Offset
	MaskSize      Size
	MaskOffset    Offset
	SubjectSize   Size
	SubjectOffset Offset

	// Rotation は被写体の回転角（度）。正の値で反時計回りです。
	Rotation float64

	// FacePosition は縦方向クロップの基準位置。0=上端、0.5=中央、1=下端。
	// [0,1] に収めるのは呼び出し側の契約で、範囲外の値はそのまま描画結果に現れます。
	FacePosition float64

	// Scale は出力全体への一様スケール。0 は 1.0 として扱います。
	Scale float64
}

// DefaultLayout は Figma 書き出し座標系（340×341 共有）に基づく既定レイアウトです。
func DefaultLayout() LayoutConfig {
	return LayoutConfig{
		OutputSize:    Size{W: 340, H: 341},
		PortalSize:    Size{W: 340, H: 341},
		PortalOffset:  Offset{X: 0, Y: 0},
		MaskSize:      Size{W: 340, H: 341},
		MaskOffset:    Offset{X: 0, Y: 0},
		SubjectSize:   Size{W: 449, H: 804},
		SubjectOffset: Offset{X: -70, Y: -40},
		Rotation:      3.0,
		FacePosition:  0.0,
		Scale:         1.0,
	}
}

// EffectiveScale は Scale の未指定（0）を 1.0 に正規化して返します。
func (c LayoutConfig) EffectiveScale() float64 {
	if c.Scale == 0 {
		return 1.0
	}
	return c.Scale
}

// Validate はサイズの正値制約を検査します。
func (c LayoutConfig) Validate() error {
	sizes := map[string]Size{
		"output_size":  c.OutputSize,
		"portal_size":  c.PortalSize,
		"mask_size":    c.MaskSize,
		"subject_size": c.SubjectSize,
	}
	for name, s := range sizes {
		if s.W <= 0 || s.H <= 0 {
			return fmt.Errorf("%s は正の値である必要があります: %gx%g", name, s.W, s.H)
		}
	}
	if c.Scale < 0 {
		return fmt.Errorf("scale は負にできません: %g", c.Scale)
	}
	return nil
}

// HasFractionalGeometry は Scale 適用後のいずれかのサイズ・オフセットが
// 整数でない場合に true を返します。true のときだけ内部2倍レンダリングが走ります。
func (c LayoutConfig) HasFractionalGeometry() bool {
	s := c.EffectiveScale()
	values := []float64{
		c.OutputSize.W * s, c.OutputSize.H * s,
		c.PortalSize.W * s, c.PortalSize.H * s,
		c.PortalOffset.X * s, c.PortalOffset.Y * s,
		c.MaskSize.W * s, c.MaskSize.H * s,
		c.MaskOffset.X * s, c.MaskOffset.Y * s,
		c.SubjectSize.W * s, c.SubjectSize.H * s,
		c.SubjectOffset.X * s, c.SubjectOffset.Y * s,
	}
	for _, v := range values {
		if v != math.Trunc(v) {
			return true
		}
	}
	return false
}
