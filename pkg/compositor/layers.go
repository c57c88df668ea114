package compositor

import (
	"image"

	"github.com/disintegration/imaging"

	"github.com/shouni/avatar-portal-kit/pkg/imgutil"
)

// ComposeMaskedSubject は被写体とマスクをそれぞれのオフセットで配置し、
// アルファの乗算合成で「被写体とマスクの両方が不透明な場所」だけを残した
// レイヤーを出力フレーム寸法で返します。
//
// オフセットが負でも（出力フレームの外から食い込む配置でも）どちらのレイヤーも
// 欠けないよう、一旦拡張キャンバスに置いてから切り戻します。出力寸法は
// オフセットの符号・大きさに依存せず常に (OutputW, OutputH) です。
func ComposeMaskedSubject(subject *image.NRGBA, mask *image.Alpha, ec EffectiveConfig) *image.NRGBA {
	expandLeft := -min(0, ec.MaskOffX, ec.SubjectOffX)
	expandTop := -min(0, ec.MaskOffY, ec.SubjectOffY)

	// Pad は回転で膨らんだ被写体の右下方向へのはみ出しを吸収する余白。
	canvasW := ec.OutputW + 2*expandLeft + ec.Pad
	canvasH := ec.OutputH + 2*expandTop + ec.Pad

	fullMask := image.NewAlpha(image.Rect(0, 0, canvasW, canvasH))
	imgutil.PlaceAlpha(fullMask, mask, image.Pt(expandLeft+ec.MaskOffX, expandTop+ec.MaskOffY))

	canvas := image.NewNRGBA(image.Rect(0, 0, canvasW, canvasH))
	imgutil.PlaceNRGBA(canvas, subject, image.Pt(expandLeft+ec.SubjectOffX, expandTop+ec.SubjectOffY))

	subjectAlpha := imgutil.AlphaOf(canvas)
	finalAlpha := imgutil.MultiplyAlpha(subjectAlpha, fullMask)
	imgutil.ApplyAlpha(canvas, finalAlpha)

	return imaging.Crop(canvas, image.Rect(
		expandLeft,
		expandTop,
		expandLeft+ec.OutputW,
		expandTop+ec.OutputH,
	))
}
