package render

import (
	"image/color"
	"slices"
	"testing"
)

func TestFillRGBAWithPalette(t *testing.T) {
	palette := []color.RGBA{{R: 1, A: 255}, {G: 2, A: 255}, {B: 3, A: 255}}
	buf := make([]byte, 16)
	FillRGBA(buf, []uint8{0, 1, 2, 9}, palette)
	want := []byte{1, 0, 0, 255, 0, 2, 0, 255, 0, 0, 3, 255, 0, 0, 3, 255}
	if !slices.Equal(buf, want) {
		t.Fatalf("got %v want %v", buf, want)
	}
}

func TestFillRGBAEmptyPaletteClears(t *testing.T) {
	buf := []byte{9, 9, 9, 9, 9, 9, 9, 9}
	FillRGBA(buf, []uint8{1, 0}, nil)
	for i, b := range buf {
		if b != 0 {
			t.Fatalf("byte %d = %d, want 0", i, b)
		}
	}
}

func TestBinaryPalette(t *testing.T) {
	p := BinaryPalette(color.White, color.Black)
	if p[0] != (color.RGBA{A: 255}) || p[1] != (color.RGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Fatalf("unexpected palette %v", p)
	}
}
