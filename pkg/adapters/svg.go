package adapters

import (
	"bytes"
	"fmt"
	"image"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"github.com/shouni/avatar-portal-kit/pkg/compositor"
)

// SVGRasterizer は oksvg によるソフトウェアラスタライズで
// compositor.VectorRasterizer を実装します。
// oksvg/rasterx は状態を共有しないため、この実装は再入可能です。
type SVGRasterizer struct{}

// NewSVGRasterizer は SVGRasterizer を生成します。
func NewSVGRasterizer() *SVGRasterizer {
	return &SVGRasterizer{}
}

var _ compositor.VectorRasterizer = (*SVGRasterizer)(nil)

// Rasterize は SVG マークアップを指定寸法の RGBA ラスタに描画します。
// viewBox は指定寸法いっぱいに引き伸ばされます。
func (r *SVGRasterizer) Rasterize(markup []byte, width, height int) (image.Image, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(markup))
	if err != nil {
		return nil, fmt.Errorf("SVGの解析に失敗しました: %w", err)
	}

	icon.SetTarget(0, 0, float64(width), float64(height))

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	scanner := rasterx.NewScannerGV(width, height, img, img.Bounds())
	dasher := rasterx.NewDasher(width, height, scanner)
	icon.Draw(dasher, 1.0)

	return img, nil
}
