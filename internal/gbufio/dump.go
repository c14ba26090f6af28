package gbufio

import (
	"encoding/binary"
	"fmt"
	"image"
	"os"
	"path/filepath"

	"deferred-surface/internal/gbuffer"

	"github.com/ftrvxmtrx/tga"
)

// File names used inside a dump directory. RGBA8 layers go to TGA
// (lossless, so the packed bytes survive exactly); the 32-bit depth
// layer goes to a raw little-endian file with a small header.
const (
	layerFileFmt  = "gbuffer_layer%d.tga"
	depthFileName = "depth_layer0.f32"
	depthMagic    = "DPTH"
)

// Dump writes every G-buffer layer and depth layer 0 into dir,
// creating it if needed.
func Dump(dir string, gb *gbuffer.TextureArray, depth *gbuffer.DepthArray) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("gbufio: mkdir %s: %w", dir, err)
	}

	for i, layer := range gb.Layers {
		img := &image.NRGBA{
			Pix:    layer,
			Stride: gb.Width * 4,
			Rect:   image.Rect(0, 0, gb.Width, gb.Height),
		}
		path := filepath.Join(dir, fmt.Sprintf(layerFileFmt, i))
		if err := writeTGA(path, img); err != nil {
			return err
		}
	}

	return writeDepth(filepath.Join(dir, depthFileName), depth)
}

func writeTGA(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("gbufio: create %s: %w", path, err)
	}
	defer f.Close()

	if err := tga.Encode(f, img); err != nil {
		return fmt.Errorf("gbufio: encode %s: %w", path, err)
	}
	return nil
}

func writeDepth(path string, depth *gbuffer.DepthArray) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("gbufio: create %s: %w", path, err)
	}
	defer f.Close()

	if _, err := f.Write([]byte(depthMagic)); err != nil {
		return fmt.Errorf("gbufio: write %s: %w", path, err)
	}
	hdr := [2]uint32{uint32(depth.Width), uint32(depth.Height)}
	if err := binary.Write(f, binary.LittleEndian, hdr[:]); err != nil {
		return fmt.Errorf("gbufio: write %s: %w", path, err)
	}
	if err := binary.Write(f, binary.LittleEndian, depth.Layers[0]); err != nil {
		return fmt.Errorf("gbufio: write %s: %w", path, err)
	}
	return nil
}
