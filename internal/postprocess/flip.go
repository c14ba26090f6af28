package postprocess

import "image"

// FlipVertical mirrors the image across its horizontal axis. The decode
// pass addresses rows in UV order (v=0 first), which is upside down
// relative to image row order, so previews are flipped once at the end.
func FlipVertical(img *image.NRGBA) *image.NRGBA {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	out := image.NewNRGBA(image.Rect(0, 0, w, h))
	rowLen := w * 4
	for y := 0; y < h; y++ {
		src := img.Pix[y*img.Stride : y*img.Stride+rowLen]
		copy(out.Pix[(h-1-y)*out.Stride:], src)
	}
	return out
}
