package imgutil

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/disintegration/imaging"
)

// ToNRGBA は任意の image.Image を straight-alpha の *image.NRGBA に変換します。
// すでに NRGBA であってもコピーを返すため、呼び出し側で安心して書き換えられます。
func ToNRGBA(img image.Image) *image.NRGBA {
	return imaging.Clone(img)
}

// ToOpaqueRGB は画像を RGB 扱いに変換します（全ピクセルのアルファを 255 にする）。
// 塗りレイヤーは形状マスクからアルファをもらうため、塗り自身は常に不透明です。
func ToOpaqueRGB(img image.Image) *image.NRGBA {
	out := imaging.Clone(img)
	for i := 3; i < len(out.Pix); i += 4 {
		out.Pix[i] = 0xFF
	}
	return out
}

// AlphaOf は NRGBA 画像のアルファチャンネルを単チャンネルマスクとして抜き出します。
func AlphaOf(img *image.NRGBA) *image.Alpha {
	b := img.Bounds()
	mask := image.NewAlpha(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			mask.Pix[mask.PixOffset(x, y)] = img.Pix[img.PixOffset(b.Min.X+x, b.Min.Y+y)+3]
		}
	}
	return mask
}

// ApplyAlpha は NRGBA 画像のアルファチャンネルをマスクの値で置き換えます。
// RGB チャンネルには触れません（straight alpha のまま）。
// 画像とマスクの寸法は一致している必要があります。
func ApplyAlpha(img *image.NRGBA, mask *image.Alpha) {
	b := img.Bounds()
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			img.Pix[img.PixOffset(b.Min.X+x, b.Min.Y+y)+3] = mask.Pix[mask.PixOffset(x, y)]
		}
	}
}

// MultiplyAlpha は2枚のマスクをピクセルごとに a*b/255 で合成します。
// どちらかが 0 のピクセルは必ず 0 になります（被写体とマスクの両方が
// 不透明な場所だけが見える、という AND 合成）。寸法は一致している前提です。
func MultiplyAlpha(a, b *image.Alpha) *image.Alpha {
	out := image.NewAlpha(a.Bounds())
	for i := range a.Pix {
		out.Pix[i] = uint8(uint16(a.Pix[i]) * uint16(b.Pix[i]) / 255)
	}
	return out
}

// LuminanceMask はカラー画像の輝度をマスクに変換します。
// アルファを持たない不透明画像を形状として渡された場合の経路です。
func LuminanceMask(img image.Image) *image.Alpha {
	b := img.Bounds()
	mask := image.NewAlpha(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			g := color.GrayModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.Gray)
			mask.Pix[mask.PixOffset(x, y)] = g.Y
		}
	}
	return mask
}

// ResampleMask はマスクを高品質（面積考慮）フィルタで指定寸法に変換します。
// imaging は RGBA 前提なので、一旦グレー画像に持ち上げてから戻します。
func ResampleMask(mask *image.Alpha, width, height int) *image.Alpha {
	b := mask.Bounds()
	if b.Dx() == width && b.Dy() == height {
		return mask
	}
	gray := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			v := mask.Pix[mask.PixOffset(x, y)]
			i := gray.PixOffset(x, y)
			gray.Pix[i+0] = v
			gray.Pix[i+1] = v
			gray.Pix[i+2] = v
			gray.Pix[i+3] = 0xFF
		}
	}
	resized := imaging.Resize(gray, width, height, imaging.Lanczos)
	out := image.NewAlpha(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			out.Pix[out.PixOffset(x, y)] = resized.Pix[resized.PixOffset(x, y)]
		}
	}
	return out
}

// PlaceAlpha はゼロ初期化済みキャンバスへマスクを source-copy で配置します。
// キャンバス外にはみ出した部分は切り捨てられます。
func PlaceAlpha(canvas *image.Alpha, mask *image.Alpha, at image.Point) {
	r := mask.Bounds().Add(at)
	draw.Draw(canvas, r, mask, mask.Bounds().Min, draw.Src)
}

// PlaceNRGBA はゼロ初期化済みキャンバスへ画像を source-copy で配置します。
// Over ではなく Src を使うことで、配置された画像自身のアルファが保存されます。
func PlaceNRGBA(canvas *image.NRGBA, img *image.NRGBA, at image.Point) {
	r := img.Bounds().Add(at)
	draw.Draw(canvas, r, img, img.Bounds().Min, draw.Src)
}

// OverBlend は src を dst の上に標準の over 演算子で合成した結果を返します。
// 両者は straight alpha の同寸 NRGBA である前提です。
func OverBlend(dst, src *image.NRGBA) *image.NRGBA {
	out := imaging.Clone(dst)
	draw.Draw(out, out.Bounds(), src, src.Bounds().Min, draw.Over)
	return out
}
