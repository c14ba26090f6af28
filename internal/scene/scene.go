package scene

import (
	"math"

	"deferred-surface/internal/gbuffer"
	"deferred-surface/internal/mathutil"
)

// Material holds the phong surface attributes the geometry pass packs
// into the G-buffer. Specular intensity and power are quantized on
// write (16 levels each, sharing one byte).
type Material struct {
	Albedo            mathutil.Vec3
	DiffuseIntensity  float64
	SpecularIntensity float64
	SpecularPower     float64
}

// Sphere is an analytic sphere.
type Sphere struct {
	Center   mathutil.Vec3
	Radius   float64
	Material Material
}

// Plane is an infinite plane through Point with unit normal Normal.
type Plane struct {
	Point    mathutil.Vec3
	Normal   mathutil.Vec3
	Material Material
}

// Scene is a set of analytic shapes used to populate a G-buffer.
type Scene struct {
	Spheres []Sphere
	Planes  []Plane
}

type hit struct {
	t        float64
	point    mathutil.Vec3
	normal   mathutil.Vec3
	material Material
}

// FillGBuffer runs the geometry pass: for every texel it casts a ray
// derived from the inverse of viewProjection, intersects the scene, and
// writes the nearest hit's packed attributes plus its device depth.
// Texels with no hit keep the far-cleared depth, which the decoder
// later treats as discard.
func (sc *Scene) FillGBuffer(gb *gbuffer.TextureArray, depth *gbuffer.DepthArray, viewProjection mathutil.Mat4) {
	inv := viewProjection.Inverse()
	w, h := gb.Width, gb.Height

	for y := 0; y < h; y++ {
		v := (float64(y) + 0.5) / float64(h)
		for x := 0; x < w; x++ {
			u := (float64(x) + 0.5) / float64(w)

			// Unproject the near and far plane points of this texel.
			ndcX := u*2 - 1
			ndcY := v*2 - 1
			near := inv.MulPoint(mathutil.Vec3{ndcX, ndcY, -1})
			far := inv.MulPoint(mathutil.Vec3{ndcX, ndcY, 1})
			dir := far.Sub(near).Normalize()

			best, ok := sc.intersect(near, dir)
			if !ok {
				continue
			}

			// Project the hit back to device depth.
			clip := viewProjection.MulVec4(mathutil.Vec4{best.point[0], best.point[1], best.point[2], 1})
			dev := clip[2]/clip[3]*0.5 + 0.5
			if dev < 0 || dev > 1 {
				continue
			}

			m := best.material
			gb.WriteAttributes(x, y, m.Albedo, m.DiffuseIntensity, best.normal,
				m.SpecularIntensity, m.SpecularPower)
			depth.Set(0, x, y, float32(dev))
		}
	}
}

// intersect returns the nearest forward hit along the ray, if any.
func (sc *Scene) intersect(origin, dir mathutil.Vec3) (hit, bool) {
	best := hit{t: math.Inf(1)}
	found := false

	for i := range sc.Spheres {
		if h, ok := intersectSphere(&sc.Spheres[i], origin, dir); ok && h.t < best.t {
			best = h
			found = true
		}
	}
	for i := range sc.Planes {
		if h, ok := intersectPlane(&sc.Planes[i], origin, dir); ok && h.t < best.t {
			best = h
			found = true
		}
	}
	return best, found
}

func intersectSphere(s *Sphere, origin, dir mathutil.Vec3) (hit, bool) {
	oc := origin.Sub(s.Center)
	b := oc.Dot(dir)
	c := oc.Dot(oc) - s.Radius*s.Radius
	disc := b*b - c
	if disc < 0 {
		return hit{}, false
	}
	sq := math.Sqrt(disc)
	t := -b - sq
	if t < 1e-6 {
		t = -b + sq
	}
	if t < 1e-6 {
		return hit{}, false
	}
	p := origin.Add(dir.Scale(t))
	return hit{
		t:        t,
		point:    p,
		normal:   p.Sub(s.Center).Normalize(),
		material: s.Material,
	}, true
}

func intersectPlane(p *Plane, origin, dir mathutil.Vec3) (hit, bool) {
	denom := dir.Dot(p.Normal)
	if math.Abs(denom) < 1e-9 {
		return hit{}, false
	}
	t := p.Point.Sub(origin).Dot(p.Normal) / denom
	if t < 1e-6 {
		return hit{}, false
	}
	n := p.Normal
	if denom > 0 {
		n = n.Scale(-1)
	}
	return hit{
		t:        t,
		point:    origin.Add(dir.Scale(t)),
		normal:   n,
		material: p.Material,
	}, true
}

// Demo builds the scene the render tool ships with: three spheres of
// varying specular response over a matte ground plane.
func Demo() *Scene {
	return &Scene{
		Spheres: []Sphere{
			{
				Center: mathutil.Vec3{-2.2, 1, 0},
				Radius: 1,
				Material: Material{
					Albedo:            mathutil.Vec3{0.8, 0.2, 0.2},
					DiffuseIntensity:  1,
					SpecularIntensity: 0.2,
					SpecularPower:     4,
				},
			},
			{
				Center: mathutil.Vec3{0, 1, 0},
				Radius: 1,
				Material: Material{
					Albedo:            mathutil.Vec3{0.2, 0.8, 0.3},
					DiffuseIntensity:  0.9,
					SpecularIntensity: 0.6,
					SpecularPower:     16,
				},
			},
			{
				Center: mathutil.Vec3{2.2, 1, 0},
				Radius: 1,
				Material: Material{
					Albedo:            mathutil.Vec3{0.3, 0.4, 0.9},
					DiffuseIntensity:  0.8,
					SpecularIntensity: 1,
					SpecularPower:     30,
				},
			},
		},
		Planes: []Plane{
			{
				Point:  mathutil.Vec3{0, 0, 0},
				Normal: mathutil.Vec3{0, 1, 0},
				Material: Material{
					Albedo:           mathutil.Vec3{0.6, 0.6, 0.6},
					DiffuseIntensity: 1,
				},
			},
		},
	}
}
