package scene

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/pmellor/go-pathtracer/pkg/core"
	"github.com/pmellor/go-pathtracer/pkg/geometry"
	"github.com/pmellor/go-pathtracer/pkg/material"
)

// Vec describes a point or direction in a scene file
type Vec struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Color is an RGB color in linear space
type Color struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
}

// MaterialType enumerates the supported material kinds
type MaterialType string

const (
	MaterialLambertian MaterialType = "lambertian"
	MaterialMetal      MaterialType = "metal"
	MaterialDielectric MaterialType = "dielectric"
)

// MaterialDesc describes a material in a scene file
type MaterialDesc struct {
	ID   string       `json:"id"`
	Type MaterialType `json:"type"`

	Albedo Color   `json:"albedo"`
	Fuzz   float64 `json:"fuzz,omitempty"` // for metal
	IOR    float64 `json:"ior,omitempty"`  // for dielectric
}

// ObjectType enumerates the supported geometric primitives
type ObjectType string

const (
	ObjectSphere       ObjectType = "sphere"
	ObjectMovingSphere ObjectType = "moving_sphere"
)

// ObjectDesc describes a geometry object in a scene file
type ObjectDesc struct {
	Type     ObjectType `json:"type"`
	Center   Vec        `json:"center"`
	Center1  Vec        `json:"center1,omitempty"` // for moving_sphere
	Time0    float64    `json:"time0,omitempty"`
	Time1    float64    `json:"time1,omitempty"`
	Radius   float64    `json:"radius"`
	Material string     `json:"material"`
}

// CameraDesc describes the viewpoint in a scene file
type CameraDesc struct {
	LookFrom      Vec     `json:"look_from"`
	LookAt        Vec     `json:"look_at"`
	Up            Vec     `json:"up"`
	VerticalFOV   float64 `json:"vfov"`
	Aperture      float64 `json:"aperture,omitempty"`
	FocusDistance float64 `json:"focus_dist,omitempty"`
	ShutterOpen   float64 `json:"shutter_open,omitempty"`
	ShutterClose  float64 `json:"shutter_close,omitempty"`
}

// BackgroundDesc describes the sky gradient in a scene file
type BackgroundDesc struct {
	Top    Color `json:"top"`
	Bottom Color `json:"bottom"`
}

// Description is the file representation of a scene. The aspect ratio is
// not part of the file; it follows the image parameters at build time.
type Description struct {
	Camera     CameraDesc      `json:"camera"`
	Background *BackgroundDesc `json:"background,omitempty"`
	Materials  []MaterialDesc  `json:"materials"`
	Objects    []ObjectDesc    `json:"objects"`
}

// Load reads a scene description from a JSON file
func Load(path string) (*Description, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open scene: %w", err)
	}
	defer f.Close()

	var desc Description
	if err := json.NewDecoder(f).Decode(&desc); err != nil {
		return nil, fmt.Errorf("decode scene: %w", err)
	}
	return &desc, nil
}

// Save writes a scene description to a JSON file
func Save(path string, desc *Description) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create scene: %w", err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(desc); err != nil {
		return fmt.Errorf("encode scene: %w", err)
	}
	return nil
}

// Build resolves the description into a renderable scene at the given
// aspect ratio
func (d *Description) Build(aspectRatio float64) (*Scene, error) {
	materials := make(map[string]core.Material, len(d.Materials))
	for _, m := range d.Materials {
		if m.ID == "" {
			return nil, fmt.Errorf("material of type %q has no id", m.Type)
		}
		if _, exists := materials[m.ID]; exists {
			return nil, fmt.Errorf("duplicate material id %q", m.ID)
		}

		switch m.Type {
		case MaterialLambertian:
			materials[m.ID] = material.NewLambertian(m.Albedo.vec3())
		case MaterialMetal:
			materials[m.ID] = material.NewMetal(m.Albedo.vec3(), m.Fuzz)
		case MaterialDielectric:
			materials[m.ID] = material.NewDielectric(m.IOR)
		default:
			return nil, fmt.Errorf("material %q: unknown type %q", m.ID, m.Type)
		}
	}

	s := NewScene(geometry.CameraConfig{
		LookFrom:      d.Camera.LookFrom.vec3(),
		LookAt:        d.Camera.LookAt.vec3(),
		Up:            d.Camera.Up.vec3(),
		VerticalFOV:   d.Camera.VerticalFOV,
		AspectRatio:   aspectRatio,
		Aperture:      d.Camera.Aperture,
		FocusDistance: d.Camera.FocusDistance,
		ShutterOpen:   d.Camera.ShutterOpen,
		ShutterClose:  d.Camera.ShutterClose,
	})

	if d.Background != nil {
		s.BackgroundTop = d.Background.Top.vec3()
		s.BackgroundBottom = d.Background.Bottom.vec3()
	}

	for i, o := range d.Objects {
		mat, ok := materials[o.Material]
		if !ok {
			return nil, fmt.Errorf("object %d: unknown material %q", i, o.Material)
		}

		switch o.Type {
		case ObjectSphere:
			s.Add(geometry.NewSphere(o.Center.vec3(), o.Radius, mat))
		case ObjectMovingSphere:
			if o.Time1 <= o.Time0 {
				return nil, fmt.Errorf("object %d: moving_sphere requires time1 > time0, got [%g, %g]",
					i, o.Time0, o.Time1)
			}
			s.Add(geometry.NewMovingSphere(
				o.Center.vec3(), o.Center1.vec3(), o.Time0, o.Time1, o.Radius, mat))
		default:
			return nil, fmt.Errorf("object %d: unknown type %q", i, o.Type)
		}
	}

	return s, nil
}

func (v Vec) vec3() core.Vec3 {
	return core.NewVec3(v.X, v.Y, v.Z)
}

func (c Color) vec3() core.Vec3 {
	return core.NewVec3(c.R, c.G, c.B)
}
