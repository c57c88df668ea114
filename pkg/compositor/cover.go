package compositor

import (
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
)

// CoverTransform は被写体を cover フィットで対象ボックスに合わせます。
//
//  1. scale = max(targetW/srcW, targetH/srcH) でアスペクト比を保ったまま拡縮し、
//     ボックスを完全に覆う（片軸だけはみ出す）寸法にする。
//  2. 横方向は常に中央、縦方向は facePosition（0=上端、1=下端）で切り出す。
//  3. 回転が指定されていれば中心回りに回転し、キャンバスは回転後の内容を
//     すべて含むよう拡張する。回転結果を対象寸法へ切り戻すことはしない。
//     膨らんだ分は後段の拡張キャンバスが吸収する前提の挙動で、仕様です。
//
// 戻り値の寸法は、回転がゼロでない場合 (targetW, targetH) を超えることがあります。
func CoverTransform(src image.Image, targetW, targetH int, facePosition, rotationDeg float64) *image.NRGBA {
	b := src.Bounds()
	srcW, srcH := b.Dx(), b.Dy()

	scale := math.Max(float64(targetW)/float64(srcW), float64(targetH)/float64(srcH))
	newW := int(float64(srcW) * scale)
	newH := int(float64(srcH) * scale)
	resized := imaging.Resize(src, newW, newH, imaging.Lanczos)

	left := (newW - targetW) / 2
	top := int(float64(newH-targetH) * facePosition)
	cropped := imaging.Crop(resized, image.Rect(left, top, left+targetW, top+targetH))

	if rotationDeg == 0 {
		return cropped
	}
	// 正の角度 = 反時計回り。拡張された余白は完全透過で埋める。
	return imaging.Rotate(cropped, rotationDeg, color.NRGBA{})
}
