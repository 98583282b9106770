// Package svgexport writes figurine scenes as standalone SVG documents.
//
// The document's viewBox is the scene viewport, so an upper-body camera crops
// the same way it does on screen. Animation bindings are baked into each
// element's transform at [Options.Time]; no SMIL or CSS animation is emitted.
package svgexport

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/phanxgames/figurine"
)

// Options configures EncodeOptions. The zero value encodes the scene at time
// zero with its own viewport, at its natural size.
type Options struct {
	// Time is the host clock in seconds used to sample animation bindings.
	Time float64
	// Viewport overrides scene.Viewport when non-empty.
	Viewport figurine.Rect
	// Width and Height set the document size attributes. Zero uses the
	// viewport size.
	Width, Height float64
}

// Encode writes scene to w as an SVG document.
func Encode(w io.Writer, scene *figurine.Scene) error {
	return EncodeOptions(w, scene, Options{})
}

// EncodeOptions writes scene to w as an SVG document using opts.
func EncodeOptions(w io.Writer, scene *figurine.Scene, opts Options) error {
	if scene == nil {
		return fmt.Errorf("encode svg: nil scene")
	}
	vp := scene.Viewport
	if opts.Viewport.Width > 0 && opts.Viewport.Height > 0 {
		vp = opts.Viewport
	}
	width, height := opts.Width, opts.Height
	if width <= 0 {
		width = vp.Width
	}
	if height <= 0 {
		height = vp.Height
	}

	e := &encoder{w: w}
	e.printf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="%s %s %s %s" width="%s" height="%s" preserveAspectRatio="xMidYMax meet">`+"\n",
		num(vp.X), num(vp.Y), num(vp.Width), num(vp.Height), num(width), num(height))

	gradients := map[int]string{}
	var defs strings.Builder
	for i, p := range scene.Primitives {
		if p.Style.Fill.Kind != figurine.PaintRadialGradient || len(p.Style.Fill.Stops) == 0 {
			continue
		}
		id := fmt.Sprintf("gradient-%d", i)
		gradients[i] = id
		fmt.Fprintf(&defs, `<radialGradient id="%s" cx="50%%" cy="50%%" r="50%%">`, id)
		for _, s := range p.Style.Fill.Stops {
			fmt.Fprintf(&defs, `<stop offset="%s%%" stop-color="%s"`, num(s.Offset*100), s.Color.Hex())
			if s.Color.A < 1 {
				fmt.Fprintf(&defs, ` stop-opacity="%s"`, num(s.Color.A))
			}
			defs.WriteString("/>")
		}
		defs.WriteString("</radialGradient>")
	}
	if defs.Len() > 0 {
		e.printf("<defs>%s</defs>\n", defs.String())
	}

	for i, p := range scene.Primitives {
		e.primitive(p, gradients[i], opts.Time)
	}
	e.printf("</svg>\n")
	return e.err
}

// encoder is a sticky-error writer: after the first failure every write is a
// no-op and err holds the cause.
type encoder struct {
	w   io.Writer
	err error
}

func (e *encoder) printf(format string, args ...any) {
	if e.err != nil {
		return
	}
	if _, err := fmt.Fprintf(e.w, format, args...); err != nil {
		e.err = fmt.Errorf("encode svg: %w", err)
	}
}

func (e *encoder) primitive(p figurine.Primitive, gradientID string, t float64) {
	m := p.Transform
	if p.Animation != nil {
		m = m.Multiply(p.Animation.MatrixAt(t))
	}
	attrs := styleAttrs(p.Style, gradientID)
	if !m.IsIdentity() {
		attrs += fmt.Sprintf(` transform="matrix(%s %s %s %s %s %s)"`,
			num(m[0]), num(m[1]), num(m[2]), num(m[3]), num(m[4]), num(m[5]))
	}
	attrs += fmt.Sprintf(` data-name="%s" data-layer="%s"`, escape(p.Name), p.Layer)

	switch p.Kind {
	case figurine.ShapeRect:
		r := p.Rect
		rx := ""
		if p.CornerRadius > 0 {
			rx = fmt.Sprintf(` rx="%s"`, num(p.CornerRadius))
		}
		e.printf(`<rect x="%s" y="%s" width="%s" height="%s"%s%s/>`+"\n",
			num(r.X), num(r.Y), num(r.Width), num(r.Height), rx, attrs)
	case figurine.ShapeEllipse:
		e.printf(`<ellipse cx="%s" cy="%s" rx="%s" ry="%s"%s/>`+"\n",
			num(p.Center.X), num(p.Center.Y), num(p.RadiusX), num(p.RadiusY), attrs)
	case figurine.ShapeCircle:
		e.printf(`<circle cx="%s" cy="%s" r="%s"%s/>`+"\n",
			num(p.Center.X), num(p.Center.Y), num(p.RadiusX), attrs)
	case figurine.ShapePath:
		e.printf(`<path d="%s"%s/>`+"\n", p.Path.String(), attrs)
	case figurine.ShapeLine:
		e.printf(`<line x1="%s" y1="%s" x2="%s" y2="%s"%s/>`+"\n",
			num(p.From.X), num(p.From.Y), num(p.To.X), num(p.To.Y), attrs)
	case figurine.ShapeText:
		weight := ""
		if p.Style.FontWeight != "" {
			weight = fmt.Sprintf(` font-weight="%s"`, escape(p.Style.FontWeight))
		}
		e.printf(`<text x="%s" y="%s" font-size="%s" text-anchor="middle" paint-order="stroke"%s%s>%s</text>`+"\n",
			num(p.Center.X), num(p.Center.Y), num(p.FontSize), weight, attrs, escape(p.Text))
	}
}

func styleAttrs(s figurine.Style, gradientID string) string {
	var b strings.Builder
	switch {
	case gradientID != "":
		fmt.Fprintf(&b, ` fill="url(#%s)"`, gradientID)
	case s.HasFill():
		fmt.Fprintf(&b, ` fill="%s"`, s.Fill.Color.Hex())
		if s.Fill.Color.A < 1 {
			fmt.Fprintf(&b, ` fill-opacity="%s"`, num(s.Fill.Color.A))
		}
	default:
		b.WriteString(` fill="none"`)
	}
	if s.HasStroke() {
		fmt.Fprintf(&b, ` stroke="%s" stroke-width="%s"`, s.Stroke.Hex(), num(s.StrokeWidth))
		if s.Stroke.A < 1 {
			fmt.Fprintf(&b, ` stroke-opacity="%s"`, num(s.Stroke.A))
		}
	}
	if op := s.EffectiveOpacity(); op < 1 {
		fmt.Fprintf(&b, ` opacity="%s"`, num(op))
	}
	return b.String()
}

func num(v float64) string {
	return figurine.FormatFloat(v)
}

func escape(s string) string {
	var b strings.Builder
	_ = xml.EscapeText(&b, []byte(s))
	return b.String()
}
