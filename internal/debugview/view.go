package debugview

import (
	"fmt"
	"math"
	"strings"

	"deferred-surface/internal/mathutil"
	"deferred-surface/internal/surface"
)

// Type selects which reconstructed channel a debug pass visualizes.
type Type int

const (
	None Type = iota
	Position
	Normal
	Color
	Depth
	Diffuse
	Specular
	Power
)

var typeNames = map[string]Type{
	"none":     None,
	"position": Position,
	"normal":   Normal,
	"color":    Color,
	"depth":    Depth,
	"diffuse":  Diffuse,
	"specular": Specular,
	"power":    Power,
}

// Parse maps a debug view name (case-insensitive) to its Type.
func Parse(name string) (Type, error) {
	if t, ok := typeNames[strings.ToLower(name)]; ok {
		return t, nil
	}
	return None, fmt.Errorf("debugview: unknown view %q", name)
}

func (t Type) String() string {
	for name, v := range typeNames {
		if v == t {
			return name
		}
	}
	return "none"
}

// View shades a decoded surface into a visualization color.
// PositionScale is the world-extent used to bring positions into view
// range; zero disables the scaling.
type View struct {
	Type          Type
	PositionScale float64
}

// Shade maps one decoded surface (and its device depth) to an RGBA
// color in [0,1]. Scalar channels render as grayscale; the normal is
// remapped from [-1,1] to [0,1]; specular power is normalized by its
// maximum encodable value, 30.
func (v View) Shade(s surface.Surface, depth float64) mathutil.Vec4 {
	switch v.Type {
	case Position:
		p := s.Position
		if v.PositionScale != 0 {
			p = p.Scale(1 / v.PositionScale)
		}
		return mathutil.Vec4{
			math.Abs(p[0]),
			math.Abs(p[1]),
			math.Abs(p[2]),
			1,
		}
	case Normal:
		return mathutil.Vec4{
			s.Normal[0]*0.5 + 0.5,
			s.Normal[1]*0.5 + 0.5,
			s.Normal[2]*0.5 + 0.5,
			1,
		}
	case Depth:
		return gray3(depth)
	case Diffuse:
		return gray3(s.DiffuseIntensity)
	case Specular:
		return gray3(s.SpecularIntensity)
	case Power:
		return gray3(s.SpecularPower / 30)
	default:
		// Color and None both show the albedo.
		return s.Color
	}
}

func gray3(v float64) mathutil.Vec4 {
	return mathutil.Vec4{v, v, v, 1}
}
