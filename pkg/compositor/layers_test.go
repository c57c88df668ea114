package compositor

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseEffective(outW, outH int) EffectiveConfig {
	return EffectiveConfig{
		OutputW: outW, OutputH: outH,
		NominalW: outW, NominalH: outH,
		Pad: basePad,
	}
}

func TestComposeMaskedSubject_OutputSizeInvariant(t *testing.T) {
	subject := solidNRGBA(60, 60, color.NRGBA{R: 10, G: 20, B: 30, A: 255})
	mask := solidAlpha(40, 40, 255)

	offsets := []struct {
		name   string
		mx, my int
		sx, sy int
	}{
		{"オフセットなし", 0, 0, 0, 0},
		{"正の大きなオフセット", 500, 500, 500, 500},
		{"負の大きなオフセット", -500, -500, -500, -500},
		{"符号が混在", -300, 250, 120, -480},
		{"マスクだけ負", -70, -40, 0, 0},
	}

	for _, tt := range offsets {
		t.Run(tt.name, func(t *testing.T) {
			ec := baseEffective(100, 80)
			ec.MaskOffX, ec.MaskOffY = tt.mx, tt.my
			ec.SubjectOffX, ec.SubjectOffY = tt.sx, tt.sy

			out := ComposeMaskedSubject(subject, mask, ec)
			b := out.Bounds()
			assert.Equal(t, 100, b.Dx(), "出力幅はオフセットに依存しない")
			assert.Equal(t, 80, b.Dy(), "出力高さはオフセットに依存しない")
		})
	}
}

func TestComposeMaskedSubject_AlphaIntersection(t *testing.T) {
	// 被写体 60x60 全面不透明、マスク 40x40 を (10,10) に配置。
	// 可視領域は両者の交差部分だけになる。
	subject := solidNRGBA(60, 60, color.NRGBA{R: 200, G: 100, B: 50, A: 255})
	mask := solidAlpha(40, 40, 255)

	ec := baseEffective(100, 100)
	ec.MaskOffX, ec.MaskOffY = 10, 10

	out := ComposeMaskedSubject(subject, mask, ec)

	t.Run("交差部分は不透明", func(t *testing.T) {
		assert.EqualValues(t, 255, out.NRGBAAt(25, 25).A)
	})

	t.Run("マスク外は透明", func(t *testing.T) {
		assert.EqualValues(t, 0, out.NRGBAAt(55, 55).A, "被写体はあるがマスクの外")
	})

	t.Run("被写体外は透明", func(t *testing.T) {
		assert.EqualValues(t, 0, out.NRGBAAt(5, 5).A, "マスクの内側だが被写体の外")
		assert.EqualValues(t, 0, out.NRGBAAt(80, 80).A)
	})

	t.Run("RGBは配置された被写体の値を保つ", func(t *testing.T) {
		c := out.NRGBAAt(25, 25)
		assert.Equal(t, color.NRGBA{R: 200, G: 100, B: 50, A: 255}, c)
	})
}

func TestComposeMaskedSubject_SemiTransparent(t *testing.T) {
	// 半透明同士の乗算: 128 * 128 / 255 = 64
	subject := solidNRGBA(50, 50, color.NRGBA{R: 1, G: 2, B: 3, A: 128})
	mask := solidAlpha(50, 50, 128)

	out := ComposeMaskedSubject(subject, mask, baseEffective(50, 50))
	assert.EqualValues(t, 64, out.NRGBAAt(25, 25).A)
}

func TestComposeMaskedSubject_OversizedSubject(t *testing.T) {
	// 回転で膨らんだ被写体（出力より大きい）でもクラッシュせず出力寸法を守る
	subject := solidNRGBA(400, 400, color.NRGBA{R: 9, A: 255})
	mask := solidAlpha(100, 100, 255)

	ec := baseEffective(100, 100)
	ec.SubjectOffX, ec.SubjectOffY = -70, -40

	out := ComposeMaskedSubject(subject, mask, ec)
	require.Equal(t, 100, out.Bounds().Dx())
	require.Equal(t, 100, out.Bounds().Dy())
	assert.EqualValues(t, 255, out.NRGBAAt(50, 50).A)
}
