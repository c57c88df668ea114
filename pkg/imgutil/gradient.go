package imgutil

import (
	"image"

	"github.com/shouni/avatar-portal-kit/pkg/domain"
)

// DiagonalGradient は右上から左下へ向かう対角線グラデーションを生成します。
// 補間係数は t = ((W-x)+y)/(W+H) で、右上隅で t→0、左下隅で t→1 になります。
// チャンネル量子化は切り捨てです。ここを四捨五入に変えると出力が
// ピクセル単位でずれるため、そのままにしてください。
func DiagonalGradient(width, height int, spec domain.GradientSpec) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	denom := float64(width + height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			t := (float64(width-x) + float64(y)) / denom
			c := domain.Lerp(spec.Start, spec.End, t)
			i := img.PixOffset(x, y)
			img.Pix[i+0] = c.R
			img.Pix[i+1] = c.G
			img.Pix[i+2] = c.B
			img.Pix[i+3] = 0xFF
		}
	}
	return img
}
