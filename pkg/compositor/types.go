package compositor

const (
	// basePad は拡張キャンバスの安全マージン（ベーススケール時のピクセル数）です。
	// 回転で膨らんだ被写体のはみ出しを吸収します。
	basePad = 200

	// supersampleFactor はサブピクセル配置時の内部レンダリング倍率です。
	supersampleFactor = 2
)

// EffectiveConfig はスーパーサンプリング展開後の整数ジオメトリです。
// DeriveEffectiveConfig が新しい値として返すもので、呼び出し側の
// LayoutConfig に隠しフィールドとして紛れ込ませることはしません。
type EffectiveConfig struct {
	OutputW, OutputH           int
	PortalW, PortalH           int
	PortalOffX, PortalOffY     int
	MaskW, MaskH               int
	MaskOffX, MaskOffY         int
	SubjectW, SubjectH         int
	SubjectOffX, SubjectOffY   int

	// NominalW/H は呼び出し側座標系での最終出力寸法です。
	// 内部2倍レンダリング時のダウンサンプル先になります。
	NominalW, NominalH int

	// Pad は内部倍率適用後の安全マージンです。
	Pad int

	Rotation     float64
	FacePosition float64
}
