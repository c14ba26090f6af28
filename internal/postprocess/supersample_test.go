package postprocess

import (
	"image"
	"testing"
)

func solid(size int, r, g, b, a uint8) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i] = r
		img.Pix[i+1] = g
		img.Pix[i+2] = b
		img.Pix[i+3] = a
	}
	return img
}

func TestDownsample_SolidColorStable(t *testing.T) {
	img := Downsample(solid(64, 200, 100, 50, 255), 16)
	if got := img.Bounds(); got.Dx() != 16 || got.Dy() != 16 {
		t.Fatalf("bounds = %v", got)
	}
	for i := 0; i < len(img.Pix); i += 4 {
		if d := absInt(int(img.Pix[i]) - 200); d > 1 {
			t.Fatalf("red drifted to %d", img.Pix[i])
		}
		if img.Pix[i+3] != 255 {
			t.Fatalf("alpha = %d", img.Pix[i+3])
		}
	}
}

func TestDownsample_NoUpscale(t *testing.T) {
	img := solid(16, 1, 2, 3, 4)
	if got := Downsample(img, 64); got != img {
		t.Error("small image should be returned unchanged")
	}
}

func TestFlipVertical(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 3))
	for y := 0; y < 3; y++ {
		for x := 0; x < 2; x++ {
			i := img.PixOffset(x, y)
			img.Pix[i] = uint8(y * 10)
			img.Pix[i+3] = 255
		}
	}

	flipped := FlipVertical(img)
	for y := 0; y < 3; y++ {
		if got := flipped.Pix[flipped.PixOffset(0, y)]; got != uint8((2-y)*10) {
			t.Errorf("row %d = %d, want %d", y, got, (2-y)*10)
		}
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
