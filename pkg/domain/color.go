package domain

import (
	"fmt"
	"strings"
)

// Color は straight-alpha RGBA パイプラインで使う 8bit RGB 値です。
// アルファはレイヤー側（マスク・被写体）が持つため、ここでは RGB のみを保持します。
type Color struct {
	R uint8
	G uint8
	B uint8
}

// HexToColor は "#RRGGBB" または "RRGGBB" 形式の文字列を Color に変換します。
// 先頭の '#' を取り除いた後、16進数ちょうど6桁でなければ ErrInvalidColorFormat を返します。
func HexToColor(s string) (Color, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return Color{}, fmt.Errorf("%w: %q は6桁の16進数ではありません", ErrInvalidColorFormat, s)
	}

	var channels [3]uint8
	for i := 0; i < 3; i++ {
		hi, ok1 := hexDigit(hex[i*2])
		lo, ok2 := hexDigit(hex[i*2+1])
		if !ok1 || !ok2 {
			return Color{}, fmt.Errorf("%w: %q に16進数以外の文字が含まれています", ErrInvalidColorFormat, s)
		}
		channels[i] = hi<<4 | lo
	}
	return Color{R: channels[0], G: channels[1], B: channels[2]}, nil
}

func hexDigit(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// Lerp は2色を係数 t で線形補間します。
// 各チャンネルは floor(start*(1-t) + end*t) で切り捨てます。
// グラデーションのピクセル一致性を保つため、四捨五入にしてはいけません。
func Lerp(start, end Color, t float64) Color {
	return Color{
		R: uint8(float64(start.R)*(1-t) + float64(end.R)*t),
		G: uint8(float64(start.G)*(1-t) + float64(end.G)*t),
		B: uint8(float64(start.B)*(1-t) + float64(end.B)*t),
	}
}

// GradientSpec はポータルの対角線グラデーション（右上 → 左下）を定義します。
type GradientSpec struct {
	Start Color // 右上の色
	End   Color // 左下の色
}

// OrangeGradient はデフォルトのオレンジ系グラデーションです。
func OrangeGradient() GradientSpec {
	return GradientSpec{Start: Color{0xCE, 0x78, 0x2D}, End: Color{0xE1, 0xA3, 0x71}}
}

// BlueGradient は青系のバリアントです。
func BlueGradient() GradientSpec {
	return GradientSpec{Start: Color{0x2D, 0x7E, 0xCE}, End: Color{0x71, 0xA3, 0xE1}}
}

// GreenGradient は緑系のバリアントです。
func GreenGradient() GradientSpec {
	return GradientSpec{Start: Color{0x2D, 0xCE, 0x78}, End: Color{0x71, 0xE1, 0xA3}}
}

// PurpleGradient は紫系のバリアントです。
func PurpleGradient() GradientSpec {
	return GradientSpec{Start: Color{0x78, 0x2D, 0xCE}, End: Color{0xA3, 0x71, 0xE1}}
}

// RedGradient は赤系のバリアントです。
func RedGradient() GradientSpec {
	return GradientSpec{Start: Color{0xCE, 0x2D, 0x2D}, End: Color{0xE1, 0x71, 0x71}}
}

// GradientByName は CLI などからバリアント名でプリセットを引くためのヘルパーです。
func GradientByName(name string) (GradientSpec, bool) {
	switch strings.ToLower(name) {
	case "orange":
		return OrangeGradient(), true
	case "blue":
		return BlueGradient(), true
	case "green":
		return GreenGradient(), true
	case "purple":
		return PurpleGradient(), true
	case "red":
		return RedGradient(), true
	}
	return GradientSpec{}, false
}
