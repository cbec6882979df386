package main

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Faultbox/term3d/internal/config"
	"github.com/Faultbox/term3d/internal/engine/scene"
	"github.com/Faultbox/term3d/pkg/geometry"
)

// frameTolerance bounds the unit-length and orthogonality error reported
// as ok.
const frameTolerance = 1e-3

type infoOptions struct {
	object    config.ObjectConfig
	recompute bool
}

func newInfoCmd(a *app) *cobra.Command {
	var opts infoOptions

	cmd := &cobra.Command{
		Use:   "info",
		Short: "Generate one primitive and report its mesh statistics",
		Long: `Generate a single cube, plane, sphere or cylinder and print its vertex and
triangle counts, bounds and a check of the per-vertex tangent frames.`,
		Example: `  term3d info --shape sphere --radius 2 --segments 32
  term3d info --shape cylinder --height 3 --recompute`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInfo(a, cmd, opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.object.Primitive, "shape", "s", config.PrimitiveCube, "Primitive: cube, plane, sphere or cylinder")
	f.Float32Var(&opts.object.Size, "size", 0, "Cube edge or plane side length")
	f.Float32Var(&opts.object.Radius, "radius", 0, "Sphere or cylinder radius")
	f.Float32Var(&opts.object.Height, "height", 0, "Cylinder height")
	f.IntVar(&opts.object.Segments, "segments", 0, "Tessellation segments")
	f.BoolVar(&opts.recompute, "recompute", false, "Recompute normals and tangents from the triangles")
	return cmd
}

func runInfo(a *app, cmd *cobra.Command, opts infoOptions) error {
	mesh, err := scene.Generate(opts.object)
	if err != nil {
		return err
	}
	if opts.recompute {
		mesh.CalculateNormals()
		mesh.CalculateTangents()
	}
	a.log.Debug("primitive generated",
		zap.String("shape", opts.object.Primitive),
		zap.Int("vertices", mesh.VertexCount()),
	)

	r := a.report(cmd)
	r.title(fmt.Sprintf("Primitive: %s", opts.object.Primitive))

	r.section("Mesh")
	r.field("Vertices", "%d", mesh.VertexCount())
	r.field("Indices", "%d", mesh.IndexCount())
	r.field("Triangles", "%d", mesh.TriangleCount())
	verr := mesh.Validate()
	detail := ""
	if verr != nil {
		detail = verr.Error()
	}
	r.ok("Valid", verr == nil, detail)

	r.section("Bounds")
	r.bounds(mesh.Bounds)

	stats := measureFrames(mesh)
	r.section("Tangent frames")
	r.ok("Unit", stats.maxLengthError <= frameTolerance, fmt.Sprintf("max error %.2e", stats.maxLengthError))
	r.ok("Orthogonal", stats.maxDot <= frameTolerance, fmt.Sprintf("max |dot| %.2e", stats.maxDot))
	r.ok("Handedness", stats.flipped == 0, fmt.Sprintf("%d flipped", stats.flipped))

	return verr
}

type frameStats struct {
	maxLengthError float32
	maxDot         float32
	flipped        int // vertices where tangent × bitangent opposes the normal
}

// measureFrames reports how far each vertex's normal, tangent and
// bitangent are from an orthonormal basis.
func measureFrames(m *geometry.Mesh) frameStats {
	var s frameStats
	for _, v := range m.Vertices {
		for _, axis := range [3]float32{v.Normal.Length(), v.Tangent.Length(), v.Bitangent.Length()} {
			s.maxLengthError = max(s.maxLengthError, math32.Abs(axis-1))
		}
		for _, d := range [3]float32{v.Normal.Dot(v.Tangent), v.Normal.Dot(v.Bitangent), v.Tangent.Dot(v.Bitangent)} {
			s.maxDot = max(s.maxDot, math32.Abs(d))
		}
		if v.Tangent.Cross(v.Bitangent).Dot(v.Normal) < 0 {
			s.flipped++
		}
	}
	return s
}
