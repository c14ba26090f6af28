package gbufio

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"io"
	"os"
	"path/filepath"

	"deferred-surface/internal/gbuffer"

	_ "github.com/ftrvxmtrx/tga"
)

// Load reads a dump directory written by Dump and rebuilds the
// G-buffer and depth arrays.
func Load(dir string) (*gbuffer.TextureArray, *gbuffer.DepthArray, error) {
	var imgs [gbuffer.LayerCount]*image.NRGBA
	for i := range imgs {
		path := filepath.Join(dir, fmt.Sprintf(layerFileFmt, i))
		img, err := loadTGA(path)
		if err != nil {
			return nil, nil, err
		}
		imgs[i] = img
	}

	w := imgs[0].Rect.Dx()
	h := imgs[0].Rect.Dy()
	for i, img := range imgs {
		if img.Rect.Dx() != w || img.Rect.Dy() != h {
			return nil, nil, fmt.Errorf("gbufio: layer %d is %dx%d, layer 0 is %dx%d",
				i, img.Rect.Dx(), img.Rect.Dy(), w, h)
		}
	}

	gb := &gbuffer.TextureArray{Width: w, Height: h, Layers: make([][]uint8, len(imgs))}
	for i, img := range imgs {
		gb.Layers[i] = img.Pix
	}
	if err := gb.Validate(); err != nil {
		return nil, nil, err
	}

	depth, err := loadDepth(filepath.Join(dir, depthFileName), w, h)
	if err != nil {
		return nil, nil, err
	}
	return gb, depth, nil
}

func loadTGA(path string) (*image.NRGBA, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("gbufio: read %s: %w", path, err)
	}
	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("gbufio: decode %s: %w", path, err)
	}
	return toNRGBA(img), nil
}

func loadDepth(path string, w, h int) (*gbuffer.DepthArray, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("gbufio: open %s: %w", path, err)
	}
	defer f.Close()

	magic := make([]byte, 4)
	if _, err := io.ReadFull(f, magic); err != nil || string(magic) != depthMagic {
		return nil, fmt.Errorf("gbufio: %s: bad depth header", path)
	}
	var hdr [2]uint32
	if err := binary.Read(f, binary.LittleEndian, hdr[:]); err != nil {
		return nil, fmt.Errorf("gbufio: read %s: %w", path, err)
	}
	if int(hdr[0]) != w || int(hdr[1]) != h {
		return nil, fmt.Errorf("gbufio: depth is %dx%d, color layers are %dx%d", hdr[0], hdr[1], w, h)
	}

	layer := make([]float32, w*h)
	if err := binary.Read(f, binary.LittleEndian, layer); err != nil {
		return nil, fmt.Errorf("gbufio: read %s: %w", path, err)
	}
	return &gbuffer.DepthArray{Width: w, Height: h, Layers: [][]float32{layer}}, nil
}

// toNRGBA converts any decoded image to NRGBA format.
func toNRGBA(src image.Image) *image.NRGBA {
	if n, ok := src.(*image.NRGBA); ok {
		return n
	}
	b := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	switch src.(type) {
	case *image.Gray, *image.YCbCr:
		draw.Draw(dst, dst.Rect, src, b.Min, draw.Src)
		for i := 3; i < len(dst.Pix); i += 4 {
			dst.Pix[i] = 255
		}
	default:
		for y := 0; y < b.Dy(); y++ {
			for x := 0; x < b.Dx(); x++ {
				c := color.NRGBAModel.Convert(src.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
				i := dst.PixOffset(x, y)
				dst.Pix[i] = c.R
				dst.Pix[i+1] = c.G
				dst.Pix[i+2] = c.B
				dst.Pix[i+3] = c.A
			}
		}
	}
	return dst
}
