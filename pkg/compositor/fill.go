package compositor

import (
	"context"
	"fmt"
	"image"

	"github.com/disintegration/imaging"

	"github.com/shouni/avatar-portal-kit/pkg/domain"
	"github.com/shouni/avatar-portal-kit/pkg/imgutil"
)

// resolveFill は塗りの指定を対象バウンディングボックスちょうどの RGB ラスタに解決します。
// 画像塗りはアスペクト比を保たない直接リサイズです。被写体側の cover ロジックとは
// 別物なので、ここに流用しないでください。
func (c *Compositor) resolveFill(ctx context.Context, fill domain.FillSource, width, height int) (*image.NRGBA, error) {
	switch fill.Kind {
	case domain.FillGradient:
		return imgutil.DiagonalGradient(width, height, fill.Gradient), nil

	case domain.FillLocalPath:
		img, err := c.assets.LoadLocal(ctx, fill.Path)
		if err != nil {
			return nil, fmt.Errorf("塗り画像の読み込みに失敗しました: %w", err)
		}
		return resizeToBox(img, width, height), nil

	case domain.FillRemoteURL:
		img, err := c.assets.LoadRemote(ctx, fill.URL)
		if err != nil {
			return nil, fmt.Errorf("塗り画像の取得に失敗しました: %w", err)
		}
		return resizeToBox(img, width, height), nil

	case domain.FillRaster:
		if fill.Raster == nil {
			return nil, fmt.Errorf("%w: ラスタ塗りに画像が設定されていません", domain.ErrUnsupportedFillType)
		}
		return resizeToBox(fill.Raster, width, height), nil
	}

	return nil, fmt.Errorf("%w: kind=%d", domain.ErrUnsupportedFillType, fill.Kind)
}

// resizeToBox は画像を RGB に変換し、指定寸法へ直接リサイズします。
func resizeToBox(img image.Image, width, height int) *image.NRGBA {
	rgb := imgutil.ToOpaqueRGB(img)
	b := rgb.Bounds()
	if b.Dx() == width && b.Dy() == height {
		return rgb
	}
	return imaging.Resize(rgb, width, height, imaging.Lanczos)
}
