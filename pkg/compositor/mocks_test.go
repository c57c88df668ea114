package compositor

import (
	"context"
	"fmt"
	"image"
	"image/color"
)

// --- Mocks ---

// mockAssets は AssetLoader のテスト用モックです。
// パス/URL をキーにデコード済み画像を返します。
type mockAssets struct {
	local  map[string]image.Image
	remote map[string]image.Image
	err    error
}

func (m *mockAssets) LoadLocal(ctx context.Context, path string) (image.Image, error) {
	if m.err != nil {
		return nil, m.err
	}
	img, ok := m.local[path]
	if !ok {
		return nil, fmt.Errorf("mock: %s not found", path)
	}
	return img, nil
}

func (m *mockAssets) LoadRemote(ctx context.Context, url string) (image.Image, error) {
	if m.err != nil {
		return nil, m.err
	}
	img, ok := m.remote[url]
	if !ok {
		return nil, fmt.Errorf("mock: %s not found", url)
	}
	return img, nil
}

// mockRasterizer は VectorRasterizer のテスト用モックです。
// 受け取ったマークアップを記録し、全面不透明の白いラスタを返します。
type mockRasterizer struct {
	lastMarkup string
	err        error
}

func (m *mockRasterizer) Rasterize(markup []byte, width, height int) (image.Image, error) {
	m.lastMarkup = string(markup)
	if m.err != nil {
		return nil, m.err
	}
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
		}
	}
	return img, nil
}

// --- テスト用画像ヘルパー ---

// solidNRGBA は単色・全面不透明の画像を作ります。
func solidNRGBA(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

// solidAlpha は一様な値のマスクを作ります。
func solidAlpha(w, h int, v uint8) *image.Alpha {
	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	for i := range mask.Pix {
		mask.Pix[i] = v
	}
	return mask
}

// opaqueYCbCr はアルファチャンネルを持たないカラーモデルのテスト用画像です。
// 輝度マスク経路の検証に使います。
type opaqueYCbCr struct {
	w, h int
	c    color.Color
}

func (o *opaqueYCbCr) ColorModel() color.Model { return color.YCbCrModel }
func (o *opaqueYCbCr) Bounds() image.Rectangle { return image.Rect(0, 0, o.w, o.h) }
func (o *opaqueYCbCr) At(x, y int) color.Color { return o.c }
