package compositor

import (
	"context"
	"fmt"
	"image"
	"log/slog"

	"github.com/shouni/avatar-portal-kit/pkg/domain"
	"github.com/shouni/avatar-portal-kit/pkg/imgutil"
)

// Compositor はアバターバッジ合成パイプラインの本体です。
// 呼び出しごとに完結し、呼び出し間で共有する状態を持ちません。
// 同一インスタンスでの並行 Render は、注入された VectorRasterizer が
// 再入可能である限り安全です。
type Compositor struct {
	assets     AssetLoader
	rasterizer VectorRasterizer
}

// New は依存関係を注入して Compositor を初期化します。
// rasterizer は nil を許容します（ベクター形状を要求した時点でエラーになります）。
func New(assets AssetLoader, rasterizer VectorRasterizer) (*Compositor, error) {
	if assets == nil {
		return nil, fmt.Errorf("assets (AssetLoader) is required")
	}
	return &Compositor{
		assets:     assets,
		rasterizer: rasterizer,
	}, nil
}

// Request はアバター1枚分の合成要求です。
type Request struct {
	Subject     domain.SubjectSource
	Fill        domain.FillSource
	PortalShape domain.ShapeSource
	MaskShape   domain.ShapeSource
	Layout      domain.LayoutConfig
}

// Render はパイプライン全体を1回実行し、straight alpha の NRGBA ラスタを返します。
//
// 実効コンフィグ解決 → ポータルレイヤー構築（塗りRGB + 形状アルファ）→
// 被写体の cover 変換 → マスク形状のアルファ化 → 拡張キャンバス上での
// アルファ乗算合成 → over ブレンド → （必要なら）ダウンサンプル、の一本道です。
// どの段階のエラーでも呼び出し全体を中断し、部分出力は返しません。
func (c *Compositor) Render(ctx context.Context, req Request) (*image.NRGBA, error) {
	if err := req.Layout.Validate(); err != nil {
		return nil, fmt.Errorf("レイアウトが不正です: %w", err)
	}

	ec, internalScale := DeriveEffectiveConfig(req.Layout)
	if internalScale > 1 {
		slog.Debug("小数ジオメトリを検出したため内部2倍レンダリングを行います",
			"internal_scale", internalScale,
			"render_size", fmt.Sprintf("%dx%d", ec.OutputW, ec.OutputH))
	}

	// 1. ポータルレイヤー: RGB は塗りから、アルファは形状マスクから。
	fill, err := c.resolveFill(ctx, req.Fill, ec.PortalW, ec.PortalH)
	if err != nil {
		return nil, err
	}
	portalAlpha, err := c.loadShapeMask(req.PortalShape, ec.PortalW, ec.PortalH)
	if err != nil {
		return nil, fmt.Errorf("ポータル形状の解決に失敗しました: %w", err)
	}
	imgutil.ApplyAlpha(fill, portalAlpha)

	canvas := image.NewNRGBA(image.Rect(0, 0, ec.OutputW, ec.OutputH))
	imgutil.PlaceNRGBA(canvas, fill, image.Pt(ec.PortalOffX, ec.PortalOffY))

	// 2. 被写体の準備（cover フィット + 顔位置クロップ + 回転）。
	subjImg, err := c.loadSubject(ctx, req.Subject)
	if err != nil {
		return nil, err
	}
	subject := CoverTransform(subjImg, ec.SubjectW, ec.SubjectH, ec.FacePosition, ec.Rotation)

	// 3. マスク形状をアルファ化し、拡張キャンバス上で被写体と合成。
	maskAlpha, err := c.loadShapeMask(req.MaskShape, ec.MaskW, ec.MaskH)
	if err != nil {
		return nil, fmt.Errorf("マスク形状の解決に失敗しました: %w", err)
	}
	layer := ComposeMaskedSubject(subject, maskAlpha, ec)

	// 4. マスク済み被写体をポータルの上に over 合成。
	result := imgutil.OverBlend(canvas, layer)

	// 5. 内部2倍レンダリングだった場合は呼び出し側座標系へ戻す。
	if internalScale > 1 {
		result = Downsample(result, ec.NominalW, ec.NominalH)
	}
	return result, nil
}

// loadSubject は被写体ソースをデコード済み画像に解決します。
func (c *Compositor) loadSubject(ctx context.Context, src domain.SubjectSource) (image.Image, error) {
	switch src.Kind {
	case domain.SubjectLocalPath:
		img, err := c.assets.LoadLocal(ctx, src.Path)
		if err != nil {
			return nil, fmt.Errorf("被写体の読み込みに失敗しました: %w", err)
		}
		return img, nil

	case domain.SubjectRemoteURL:
		img, err := c.assets.LoadRemote(ctx, src.URL)
		if err != nil {
			return nil, fmt.Errorf("被写体の取得に失敗しました: %w", err)
		}
		return img, nil

	case domain.SubjectRaster:
		if src.Raster == nil {
			return nil, fmt.Errorf("%w: ラスタ被写体に画像が設定されていません", domain.ErrUnsupportedSourceType)
		}
		return src.Raster, nil
	}

	return nil, fmt.Errorf("%w: subject kind=%d", domain.ErrUnsupportedSourceType, src.Kind)
}
