package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"

	"github.com/Faultbox/term3d/pkg/geometry"
	"github.com/Faultbox/term3d/pkg/math"
)

// report writes aligned, optionally colored key/value sections.
type report struct {
	out *termenv.Output
}

func newReport(w io.Writer, opts ...termenv.OutputOption) *report {
	return &report{out: termenv.NewOutput(w, opts...)}
}

func (r *report) title(text string) {
	fmt.Fprintln(r.out, r.out.String(text).Bold().Foreground(r.out.Color("12")))
	fmt.Fprintln(r.out, strings.Repeat("=", len(text)))
}

func (r *report) section(text string) {
	fmt.Fprintf(r.out, "\n%s\n", r.out.String(text+":").Bold())
}

func (r *report) field(key string, format string, args ...any) {
	fmt.Fprintf(r.out, "  %-12s %s\n", key+":", fmt.Sprintf(format, args...))
}

func (r *report) ok(key string, good bool, detail string) {
	status := r.out.String("ok").Foreground(r.out.Color("10"))
	if !good {
		status = r.out.String("FAIL").Foreground(r.out.Color("9")).Bold()
	}
	if detail != "" {
		r.field(key, "%s (%s)", status, detail)
		return
	}
	r.field(key, "%s", status)
}

func (r *report) line(format string, args ...any) {
	fmt.Fprintf(r.out, "  "+format+"\n", args...)
}

func vec(v math.Vec3) string {
	return fmt.Sprintf("(%.4g, %.4g, %.4g)", v.X, v.Y, v.Z)
}

func (r *report) bounds(b geometry.BoundingBox) {
	if !b.IsValid() {
		r.field("Bounds", "empty")
		return
	}
	r.field("Min", "%s", vec(b.Min))
	r.field("Max", "%s", vec(b.Max))
	r.field("Center", "%s", vec(b.Center()))
	r.field("Size", "%s", vec(b.Size()))
	r.field("Radius", "%.4g", b.Radius())
}
