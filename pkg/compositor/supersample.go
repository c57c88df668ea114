package compositor

import (
	"image"
	"math"

	"github.com/disintegration/imaging"

	"github.com/shouni/avatar-portal-kit/pkg/domain"
)

// DeriveEffectiveConfig はレイアウトを実効整数ジオメトリへ展開します。
// 出力スケールを適用した後、いずれかのサイズ・オフセットが小数を含むなら
// 内部倍率 supersampleFactor で全ジオメトリを拡大して整数化します。
// 純関数です。入力の LayoutConfig には一切触れません。
func DeriveEffectiveConfig(cfg domain.LayoutConfig) (EffectiveConfig, int) {
	scale := cfg.EffectiveScale()

	internal := 1
	if cfg.HasFractionalGeometry() {
		internal = supersampleFactor
	}
	f := scale * float64(internal)

	ec := EffectiveConfig{
		OutputW:     iround(cfg.OutputSize.W * f),
		OutputH:     iround(cfg.OutputSize.H * f),
		PortalW:     iround(cfg.PortalSize.W * f),
		PortalH:     iround(cfg.PortalSize.H * f),
		PortalOffX:  iround(cfg.PortalOffset.X * f),
		PortalOffY:  iround(cfg.PortalOffset.Y * f),
		MaskW:       iround(cfg.MaskSize.W * f),
		MaskH:       iround(cfg.MaskSize.H * f),
		MaskOffX:    iround(cfg.MaskOffset.X * f),
		MaskOffY:    iround(cfg.MaskOffset.Y * f),
		SubjectW:    iround(cfg.SubjectSize.W * f),
		SubjectH:    iround(cfg.SubjectSize.H * f),
		SubjectOffX: iround(cfg.SubjectOffset.X * f),
		SubjectOffY: iround(cfg.SubjectOffset.Y * f),

		NominalW: iround(cfg.OutputSize.W * scale),
		NominalH: iround(cfg.OutputSize.H * scale),

		Pad: basePad * internal,

		Rotation:     cfg.Rotation,
		FacePosition: cfg.FacePosition,
	}
	return ec, internal
}

// Downsample は内部2倍レンダリングの結果を呼び出し側座標系の寸法へ戻します。
func Downsample(img *image.NRGBA, width, height int) *image.NRGBA {
	return imaging.Resize(img, width, height, imaging.Lanczos)
}

// iround は half-away-from-zero で丸めます。
// 負のオフセット（例: -59.2 → -59）でも符号に対して対称です。
func iround(v float64) int {
	return int(math.Round(v))
}
