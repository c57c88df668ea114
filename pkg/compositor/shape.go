package compositor

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/shouni/avatar-portal-kit/pkg/domain"
	"github.com/shouni/avatar-portal-kit/pkg/imgutil"
)

// loadShapeMask は形状定義を指定寸法の単チャンネルアルファマスクに解決します。
// 形状は「内側 = 不透明」を既に表現している前提で、反転ロジックはありません。
func (c *Compositor) loadShapeMask(shape domain.ShapeSource, width, height int) (*image.Alpha, error) {
	switch shape.Kind {
	case domain.ShapeVector:
		return c.rasterizeVectorMask(shape, width, height)
	case domain.ShapeRaster:
		if shape.Raster == nil {
			return nil, fmt.Errorf("%w: ラスタ形状に画像が設定されていません", domain.ErrUnsupportedSourceType)
		}
		return imgutil.ResampleMask(maskFromRaster(shape.Raster), width, height), nil
	}
	return nil, fmt.Errorf("%w: shape kind=%d", domain.ErrUnsupportedSourceType, shape.Kind)
}

// rasterizeVectorMask はベクターマークアップをラスタライズし、アルファを抜き出します。
// 色の上書きは汎用カラーエンジンではなく、既知の属性値の文字列置換です
// （例: stop-color="#CE782D" をそのまま照合して差し替える）。
func (c *Compositor) rasterizeVectorMask(shape domain.ShapeSource, width, height int) (*image.Alpha, error) {
	if c.rasterizer == nil {
		return nil, fmt.Errorf("%w: ベクター形状にはラスタライザの注入が必要です", domain.ErrMissingRasterCapability)
	}

	markup := shape.Markup
	for _, ov := range shape.Overrides {
		markup = strings.ReplaceAll(markup, ov.From, ov.To)
	}

	img, err := c.rasterizer.Rasterize([]byte(markup), width, height)
	if err != nil {
		return nil, fmt.Errorf("ベクター形状のラスタライズに失敗しました: %w", err)
	}
	return imgutil.AlphaOf(imgutil.ToNRGBA(img)), nil
}

// maskFromRaster はラスタ画像からマスクを作ります。
// アルファチャンネルを持つ形式ならアルファを、グレースケールならその値を、
// それ以外の不透明形式は輝度を使います。
func maskFromRaster(img image.Image) *image.Alpha {
	switch src := img.(type) {
	case *image.Alpha:
		return src
	case *image.Gray:
		b := src.Bounds()
		mask := image.NewAlpha(image.Rect(0, 0, b.Dx(), b.Dy()))
		for y := 0; y < b.Dy(); y++ {
			for x := 0; x < b.Dx(); x++ {
				mask.Pix[mask.PixOffset(x, y)] = src.GrayAt(b.Min.X+x, b.Min.Y+y).Y
			}
		}
		return mask
	}

	if hasAlphaChannel(img.ColorModel()) {
		return imgutil.AlphaOf(imgutil.ToNRGBA(img))
	}
	return imgutil.LuminanceMask(img)
}

// hasAlphaChannel はカラーモデルがアルファチャンネルを持つかを判定します。
// 全ピクセルがたまたま不透明でも、形式としてアルファを持てばアルファ経路です。
func hasAlphaChannel(m color.Model) bool {
	switch m {
	case color.NRGBAModel, color.NRGBA64Model, color.RGBAModel, color.RGBA64Model,
		color.AlphaModel, color.Alpha16Model:
		return true
	}
	return false
}
