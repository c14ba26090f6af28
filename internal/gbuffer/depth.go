package gbuffer

// DepthArray is a layered 32-bit float depth texture. Layer 0 holds the
// device depth written by the geometry pass, in [0,1] with 1 = far.
type DepthArray struct {
	Width  int
	Height int
	Layers [][]float32
}

// NewDepthArray allocates a depth array cleared to the far value 1.0.
func NewDepthArray(w, h, layers int) *DepthArray {
	d := &DepthArray{Width: w, Height: h, Layers: make([][]float32, layers)}
	for i := range d.Layers {
		l := make([]float32, w*h)
		for j := range l {
			l[j] = 1
		}
		d.Layers[i] = l
	}
	return d
}

// Sample reads the depth texel containing uv from the given layer.
// Nearest-neighbor with clamp-to-edge, like TextureArray.Sample.
func (d *DepthArray) Sample(layer int, u, v float64) float64 {
	x := texel(u, d.Width)
	y := texel(v, d.Height)
	return float64(d.Layers[layer][y*d.Width+x])
}

// At returns the raw depth value at (x, y) in the given layer.
func (d *DepthArray) At(layer, x, y int) float32 {
	return d.Layers[layer][y*d.Width+x]
}

// Set writes a depth value at (x, y) in the given layer.
func (d *DepthArray) Set(layer, x, y int, depth float32) {
	d.Layers[layer][y*d.Width+x] = depth
}
