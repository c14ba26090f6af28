package gbuffer

import (
	"fmt"

	"deferred-surface/internal/mathutil"
)

// Layer indices of the packed geometry buffer.
const (
	// LayerAlbedo holds (albedo.r, albedo.g, albedo.b, diffuse_intensity).
	LayerAlbedo = 0
	// LayerNormal holds ([0,1]-encoded normal.xyz, packed_specular/255).
	LayerNormal = 1
	// LayerCount is the number of RGBA8 layers in the geometry buffer.
	LayerCount = 2
)

// TextureArray is a layered RGBA8 texture stored as flat slices for
// cache locality (RGBA interleaved, len = W*H*4 per layer). Sampling is
// nearest-neighbor with clamp-to-edge, matching the filtering the
// geometry pass renders with.
type TextureArray struct {
	Width  int
	Height int
	Layers [][]uint8
}

// NewTextureArray allocates a zeroed texture array with the given layer count.
func NewTextureArray(w, h, layers int) *TextureArray {
	t := &TextureArray{Width: w, Height: h, Layers: make([][]uint8, layers)}
	for i := range t.Layers {
		t.Layers[i] = make([]uint8, w*h*4)
	}
	return t
}

// Sample reads the texel containing uv from the given layer and returns
// its channels normalized to [0,1]. UVs outside [0,1] clamp to the edge.
func (t *TextureArray) Sample(layer int, u, v float64) mathutil.Vec4 {
	x := texel(u, t.Width)
	y := texel(v, t.Height)
	i := (y*t.Width + x) * 4
	pix := t.Layers[layer]
	return mathutil.Vec4{
		float64(pix[i]) / 255,
		float64(pix[i+1]) / 255,
		float64(pix[i+2]) / 255,
		float64(pix[i+3]) / 255,
	}
}

// Texel returns the raw RGBA bytes at (x, y) in the given layer.
func (t *TextureArray) Texel(layer, x, y int) (r, g, b, a uint8) {
	i := (y*t.Width + x) * 4
	pix := t.Layers[layer]
	return pix[i], pix[i+1], pix[i+2], pix[i+3]
}

// SetTexel writes raw RGBA bytes at (x, y) in the given layer.
func (t *TextureArray) SetTexel(layer, x, y int, r, g, b, a uint8) {
	i := (y*t.Width + x) * 4
	pix := t.Layers[layer]
	pix[i] = r
	pix[i+1] = g
	pix[i+2] = b
	pix[i+3] = a
}

// WriteAttributes quantizes and packs one texel's surface attributes
// into both geometry layers: albedo and diffuse intensity into layer 0,
// the [0,1]-encoded normal and the packed specular byte into layer 1.
// The normal must be unit length.
func (t *TextureArray) WriteAttributes(x, y int, albedo mathutil.Vec3, diffuse float64, normal mathutil.Vec3, specIntensity, specPower float64) {
	t.SetTexel(LayerAlbedo, x, y,
		quantize(albedo[0]), quantize(albedo[1]), quantize(albedo[2]), quantize(diffuse))
	enc := EncodeNormal(normal)
	t.SetTexel(LayerNormal, x, y,
		quantize(enc[0]), quantize(enc[1]), quantize(enc[2]), PackSpecular(specIntensity, specPower))
}

// Validate checks the array's slice lengths against its dimensions.
func (t *TextureArray) Validate() error {
	want := t.Width * t.Height * 4
	for i, l := range t.Layers {
		if len(l) != want {
			return fmt.Errorf("gbuffer: layer %d has %d bytes, want %d", i, len(l), want)
		}
	}
	return nil
}

// texel maps a [0,1] coordinate to a texel index with clamp-to-edge.
func texel(u float64, size int) int {
	i := int(u * float64(size))
	if i < 0 {
		return 0
	}
	if i >= size {
		return size - 1
	}
	return i
}

// quantize maps [0,1] to a rounded byte, clamping out-of-range input.
func quantize(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}
