package adapters

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shouni/avatar-portal-kit/pkg/imgutil"
)

const fullRectSVG = `<svg xmlns="http://www.w3.org/2000/svg" width="10" height="10" viewBox="0 0 10 10">
  <rect x="0" y="0" width="10" height="10" fill="white"/>
</svg>`

const halfRectSVG = `<svg xmlns="http://www.w3.org/2000/svg" width="10" height="10" viewBox="0 0 10 10">
  <rect x="0" y="0" width="5" height="10" fill="#CE782D"/>
</svg>`

func TestSVGRasterizer_Rasterize(t *testing.T) {
	r := NewSVGRasterizer()

	t.Run("指定寸法のラスタを返す", func(t *testing.T) {
		img, err := r.Rasterize([]byte(fullRectSVG), 40, 20)
		require.NoError(t, err)
		b := img.Bounds()
		assert.Equal(t, 40, b.Dx())
		assert.Equal(t, 20, b.Dy())
	})

	t.Run("全面を覆う矩形は中心が不透明になる", func(t *testing.T) {
		img, err := r.Rasterize([]byte(fullRectSVG), 20, 20)
		require.NoError(t, err)

		mask := imgutil.AlphaOf(imgutil.ToNRGBA(img))
		assert.EqualValues(t, 255, mask.Pix[mask.PixOffset(10, 10)])
	})

	t.Run("形状の外は透明のまま", func(t *testing.T) {
		img, err := r.Rasterize([]byte(halfRectSVG), 20, 20)
		require.NoError(t, err)

		mask := imgutil.AlphaOf(imgutil.ToNRGBA(img))
		assert.EqualValues(t, 255, mask.Pix[mask.PixOffset(4, 10)], "矩形の内側")
		assert.EqualValues(t, 0, mask.Pix[mask.PixOffset(16, 10)], "矩形の外側")
	})

	t.Run("viewBox は要求寸法へ引き伸ばされる", func(t *testing.T) {
		img, err := r.Rasterize([]byte(halfRectSVG), 100, 50)
		require.NoError(t, err)

		mask := imgutil.AlphaOf(imgutil.ToNRGBA(img))
		assert.EqualValues(t, 255, mask.Pix[mask.PixOffset(25, 25)], "左半分は塗られている")
		assert.EqualValues(t, 0, mask.Pix[mask.PixOffset(75, 25)], "右半分は空")
	})

	t.Run("壊れたマークアップはエラー", func(t *testing.T) {
		_, err := r.Rasterize([]byte(`<svg><rect`), 10, 10)
		assert.Error(t, err)
	})
}
