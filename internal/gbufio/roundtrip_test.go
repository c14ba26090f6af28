package gbufio

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"deferred-surface/internal/gbuffer"
)

func testBuffers() (*gbuffer.TextureArray, *gbuffer.DepthArray) {
	gb := gbuffer.NewTextureArray(7, 5, gbuffer.LayerCount)
	depth := gbuffer.NewDepthArray(7, 5, 1)
	for y := 0; y < 5; y++ {
		for x := 0; x < 7; x++ {
			gb.SetTexel(0, x, y, uint8(x*13), uint8(y*29), uint8(x+y), uint8(x*y))
			gb.SetTexel(1, x, y, uint8(255-x), uint8(255-y), 128, uint8(x*16+y))
			depth.Set(0, x, y, float32(x+y*7)/64)
		}
	}
	return gb, depth
}

func TestDumpLoad_RoundTripsBytesExactly(t *testing.T) {
	gb, depth := testBuffers()
	dir := t.TempDir()

	if err := Dump(dir, gb, depth); err != nil {
		t.Fatalf("Dump: %v", err)
	}

	got, gotDepth, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if got.Width != gb.Width || got.Height != gb.Height || len(got.Layers) != len(gb.Layers) {
		t.Fatalf("dimensions %dx%d/%d, want %dx%d/%d",
			got.Width, got.Height, len(got.Layers), gb.Width, gb.Height, len(gb.Layers))
	}
	for i := range gb.Layers {
		if !bytes.Equal(got.Layers[i], gb.Layers[i]) {
			t.Errorf("layer %d bytes differ after round trip", i)
		}
	}
	for i := range depth.Layers[0] {
		if gotDepth.Layers[0][i] != depth.Layers[0][i] {
			t.Fatalf("depth texel %d = %v, want %v", i, gotDepth.Layers[0][i], depth.Layers[0][i])
		}
	}
}

func TestLoad_MissingDirectory(t *testing.T) {
	if _, _, err := Load(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Error("missing dump directory accepted")
	}
}

func TestLoad_RejectsMismatchedDepthSize(t *testing.T) {
	gb, depth := testBuffers()
	dir := t.TempDir()
	if err := Dump(dir, gb, depth); err != nil {
		t.Fatalf("Dump: %v", err)
	}

	// Overwrite the depth file with one of the wrong size.
	wrong := gbuffer.NewDepthArray(2, 2, 1)
	if err := writeDepth(filepath.Join(dir, depthFileName), wrong); err != nil {
		t.Fatalf("writeDepth: %v", err)
	}
	if _, _, err := Load(dir); err == nil {
		t.Error("mismatched depth dimensions accepted")
	}
}

func TestLoad_RejectsBadMagic(t *testing.T) {
	gb, depth := testBuffers()
	dir := t.TempDir()
	if err := Dump(dir, gb, depth); err != nil {
		t.Fatalf("Dump: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, depthFileName), []byte("JUNKJUNK"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, _, err := Load(dir); err == nil {
		t.Error("corrupt depth header accepted")
	}
}
