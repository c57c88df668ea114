package imgutil

import (
	"bytes"
	"image"
	_ "image/gif"
	"image/jpeg"
	"image/png"
)

// EncodePNG は合成結果をPNGバイト列にエンコードします。
// straight alpha を損なわないため、バッジの既定出力形式はPNGです。
func EncodePNG(img image.Image) ([]byte, error) {
	buf := new(bytes.Buffer)
	if err := png.Encode(buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// EncodeJPEG は合成結果をJPEGバイト列にエンコードします。
// JPEGはアルファを持てないため、透過部分は黒で潰れます。
func EncodeJPEG(img image.Image, quality int) ([]byte, error) {
	buf := new(bytes.Buffer)
	if err := jpeg.Encode(buf, img, &jpeg.Options{Quality: quality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// CompressToJPEG は画像データ（PNG, GIF, JPEG等）をJPEG形式に圧縮します。
// image.Decodeがサポートするフォーマットに対応しています。
func CompressToJPEG(data []byte, quality int) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return EncodeJPEG(img, quality)
}
