// Package scene builds a flat list of procedural meshes from configuration
// and submits them to a renderer.
package scene

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/term3d/internal/config"
	"github.com/Faultbox/term3d/internal/engine/camera"
	"github.com/Faultbox/term3d/internal/engine/debug"
	"github.com/Faultbox/term3d/internal/engine/lighting"
	"github.com/Faultbox/term3d/internal/engine/picking"
	"github.com/Faultbox/term3d/internal/engine/renderer"
	"github.com/Faultbox/term3d/pkg/geometry"
	"github.com/Faultbox/term3d/pkg/math"
)

// ErrUnknownPrimitive is returned for an object whose primitive has no
// generator.
var ErrUnknownPrimitive = errors.New("unknown primitive")

// DefaultNormalLength replaces a zero normal overlay length.
const DefaultNormalLength = 0.2

// Object is one generated mesh, already transformed into world space.
type Object struct {
	Name      string
	Primitive string
	Model     math.Mat4 // transform baked into Mesh
	Mesh      *geometry.Mesh
}

// Scene holds the generated objects, their combined bounds and the camera
// viewing them.
type Scene struct {
	log *zap.Logger

	Objects []*Object
	Bounds  geometry.BoundingBox
	Camera  *camera.OrbitCamera

	// Light shades meshes while Lit is set.
	Light *lighting.Rig
	Lit   bool

	ShowBounds    bool
	BoundsPadding float32
	BoundsColor   renderer.Color

	ShowNormals  bool
	NormalLength float32
	NormalColor  renderer.Color

	// Selected has its bounds drawn in SelectedColor regardless of
	// ShowBounds.
	Selected      *Object
	SelectedColor renderer.Color
}

// Build generates every configured object, bakes its transform and sets up
// the camera. With Camera.AutoFit the camera is fitted to the scene bounds.
func Build(cfg *config.Config, log *zap.Logger) (*Scene, error) {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Scene{
		log:           log.Named("scene"),
		Bounds:        geometry.NewBoundingBox(),
		Camera:        newCamera(cfg.Camera),
		Light:         NewRig(cfg.Lighting),
		Lit:           cfg.Lighting.Enabled,
		ShowBounds:    cfg.Scene.ShowBounds,
		BoundsPadding: cfg.Scene.BoundsPadding,
		BoundsColor:   renderer.Green,
		ShowNormals:   cfg.Scene.ShowNormals,
		NormalLength:  or(cfg.Scene.NormalLength, DefaultNormalLength),
		NormalColor:   renderer.Blue,
		SelectedColor: renderer.Red,
	}

	for i, oc := range cfg.Scene.Objects {
		obj, err := buildObject(oc)
		if err != nil {
			return nil, fmt.Errorf("object %d (%q): %w", i, oc.Name, err)
		}
		s.add(obj)
	}

	if cfg.Camera.AutoFit {
		s.Camera.FitToBounds(s.Bounds)
	}

	vertices, triangles := s.Counts()
	s.log.Info("scene built",
		zap.Int("objects", len(s.Objects)),
		zap.Int("vertices", vertices),
		zap.Int("triangles", triangles),
		zap.Int("point_lights", len(s.Light.Points)),
		zap.Stringer("bounds", boundsString(s.Bounds)),
	)
	return s, nil
}

func (s *Scene) add(obj *Object) {
	s.Objects = append(s.Objects, obj)
	s.Bounds.ExpandBox(obj.Mesh.Bounds)
	s.log.Debug("object added",
		zap.String("name", obj.Name),
		zap.String("primitive", obj.Primitive),
		zap.Int("vertices", obj.Mesh.VertexCount()),
		zap.Int("triangles", obj.Mesh.TriangleCount()),
	)
}

func buildObject(oc config.ObjectConfig) (*Object, error) {
	mesh, err := Generate(oc)
	if err != nil {
		return nil, err
	}

	model := ModelMatrix(oc.Transform)
	mesh.Transform(model)
	if oc.RecomputeNormals {
		mesh.CalculateNormals()
		mesh.CalculateTangents()
	}

	return &Object{
		Name:      oc.Name,
		Primitive: oc.Primitive,
		Model:     model,
		Mesh:      mesh,
	}, nil
}

// Generate creates the object's mesh in model space. Zero dimensions take
// the generator defaults.
func Generate(oc config.ObjectConfig) (*geometry.Mesh, error) {
	switch oc.Primitive {
	case config.PrimitiveCube:
		return geometry.CreateCube(or(oc.Size, geometry.DefaultCubeSize)), nil
	case config.PrimitivePlane:
		return geometry.CreatePlane(
			or(oc.Size, geometry.DefaultPlaneSize),
			orInt(oc.Segments, geometry.DefaultPlaneSegments),
		), nil
	case config.PrimitiveSphere:
		return geometry.CreateSphere(
			or(oc.Radius, geometry.DefaultSphereRadius),
			orInt(oc.Segments, geometry.DefaultSphereSegments),
		), nil
	case config.PrimitiveCylinder:
		return geometry.CreateCylinder(
			or(oc.Radius, geometry.DefaultCylinderRadius),
			or(oc.Height, geometry.DefaultCylinderHeight),
			orInt(oc.Segments, geometry.DefaultCylinderSegments),
		), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPrimitive, oc.Primitive)
	}
}

// ModelMatrix composes translate * rotate * scale. The rotation applies the
// Euler angles (X, then Y, then Z) followed by the axis-angle rotation.
func ModelMatrix(tc config.TransformConfig) math.Mat4 {
	rot := math.QuatFromEuler(
		math.Radians(tc.Rotate[0]),
		math.Radians(tc.Rotate[1]),
		math.Radians(tc.Rotate[2]),
	)
	axis := math.Vec3{X: tc.Axis[0], Y: tc.Axis[1], Z: tc.Axis[2]}
	if axis.LengthSquared() > 0 && tc.Angle != 0 {
		rot = math.QuatFromAxisAngle(axis, math.Radians(tc.Angle)).Mul(rot)
	}

	scale := tc.Scale
	if scale == [3]float32{} {
		scale = [3]float32{1, 1, 1}
	}

	return math.Translate(tc.Translate[0], tc.Translate[1], tc.Translate[2]).
		Mul(rot.ToMat4()).
		Mul(math.Scale(scale[0], scale[1], scale[2]))
}

// NewRig builds the light rig described by lc, ignoring Enabled. Point
// lights beyond lighting.MaxPointLights are dropped.
func NewRig(lc config.LightingConfig) *lighting.Rig {
	rig := lighting.NewRig(lc.Ambient, lighting.NewSun(lc.Longitude, lc.Latitude))
	for _, p := range lc.Points {
		rig.AddLight(lighting.PointLight{
			Position:  math.Vec3{X: p.Position[0], Y: p.Position[1], Z: p.Position[2]},
			Range:     p.Range,
			Intensity: p.Intensity,
		})
	}
	return rig
}

func newCamera(cc config.CameraConfig) *camera.OrbitCamera {
	c := camera.NewOrbitCamera()
	c.FOV = math.Radians(cc.FOV)
	c.Aspect = cc.Aspect
	c.Near = cc.Near
	c.Far = cc.Far
	if cc.Distance > 0 {
		c.Distance = cc.Distance
	}
	c.Pitch = math.Radians(cc.Pitch)
	c.Yaw = math.Radians(cc.Yaw)
	return c
}

// Render draws one frame: every object mesh (shaded when Lit), each
// object's bounds wireframe and vertex normals when enabled, and the
// selection outline.
func (s *Scene) Render(r renderer.Renderer) {
	r.BeginFrame()
	r.Clear(renderer.ClearAll, renderer.Black)
	r.Enable(renderer.StateDepthTest)
	r.SetProjection(s.Camera.ProjectionMatrix())
	r.SetView(s.Camera.ViewMatrix())
	if s.Lit {
		r.SetLight(s.Light)
	} else {
		r.SetLight(nil)
	}

	// meshes are already in world space
	identity := math.Identity()
	for _, obj := range s.Objects {
		r.DrawMesh(obj.Mesh, identity)
		if s.ShowBounds {
			r.DrawLines(debug.BoundsWireframe(obj.Mesh.Bounds, s.BoundsPadding), s.BoundsColor)
		}
		if s.ShowNormals {
			normals, _, _ := debug.TangentFrameLines(obj.Mesh, s.NormalLength)
			r.DrawLines(normals, s.NormalColor)
		}
	}
	if s.Selected != nil {
		r.DrawLines(debug.BoundsWireframe(s.Selected.Mesh.Bounds, 2*s.BoundsPadding), s.SelectedColor)
	}

	r.EndFrame()
}

// Pick returns the nearest object whose bounds the ray hits.
func (s *Scene) Pick(ray picking.Ray) (obj *Object, distance float32, ok bool) {
	for _, o := range s.Objects {
		t, hit := ray.IntersectBox(o.Mesh.Bounds)
		if hit && (!ok || t < distance) {
			obj, distance, ok = o, t, true
		}
	}
	return obj, distance, ok
}

// Select picks along ray and makes the hit the selection. A miss clears
// the selection.
func (s *Scene) Select(ray picking.Ray) *Object {
	obj, _, _ := s.Pick(ray)
	s.Selected = obj
	if obj != nil {
		s.log.Debug("object selected", zap.String("name", obj.Name))
	}
	return obj
}

// Find returns the first object with the given name.
func (s *Scene) Find(name string) *Object {
	for _, o := range s.Objects {
		if o.Name == name {
			return o
		}
	}
	return nil
}

// Counts returns the total vertex and triangle counts.
func (s *Scene) Counts() (vertices, triangles int) {
	for _, o := range s.Objects {
		vertices += o.Mesh.VertexCount()
		triangles += o.Mesh.TriangleCount()
	}
	return vertices, triangles
}

func or(v, def float32) float32 {
	if v == 0 {
		return def
	}
	return v
}

func orInt(v, def int) int {
	if v == 0 {
		return def
	}
	return v
}

type boundsString geometry.BoundingBox

func (b boundsString) String() string {
	box := geometry.BoundingBox(b)
	if !box.IsValid() {
		return "empty"
	}
	return fmt.Sprintf("[%.3g %.3g %.3g]..[%.3g %.3g %.3g]",
		box.Min.X, box.Min.Y, box.Min.Z, box.Max.X, box.Max.Y, box.Max.Z)
}
