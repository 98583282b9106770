package figurine

import (
	"context"
	"log/slog"
)

// Scene is the engine's output: an ordered primitive list (back to front),
// the canvas size, and the camera crop. A Scene is produced fresh on every
// render and never mutated by the engine afterwards.
type Scene struct {
	Width, Height float64
	// Viewport is the crop rectangle in canvas coordinates.
	Viewport Rect
	// Frozen is set in capture mode: every binding is frozen and repeated
	// rasterization at any time yields the same frame.
	Frozen bool
	// Pose is the shear applied to every figure primitive.
	Pose       Matrix
	Primitives []Primitive
	// Diagnostics lists the fallbacks taken, in pipeline order.
	Diagnostics []Diagnostic
}

// Layer returns the primitives drawn in layer l, in draw order.
func (s *Scene) Layer(l Layer) []Primitive {
	var out []Primitive
	for _, p := range s.Primitives {
		if p.Layer == l {
			out = append(out, p)
		}
	}
	return out
}

// Find returns the first primitive with the given name.
func (s *Scene) Find(name string) (Primitive, bool) {
	for _, p := range s.Primitives {
		if p.Name == name {
			return p, true
		}
	}
	return Primitive{}, false
}

// Bindings returns every declared animation binding, in draw order.
func (s *Scene) Bindings() []AnimationBinding {
	var out []AnimationBinding
	for _, p := range s.Primitives {
		if p.Animation != nil {
			out = append(out, *p.Animation)
		}
	}
	return out
}

// FigureBounds returns the canvas-space bounds of every figure primitive in
// its posed, unanimated placement. Background primitives are skipped.
func (s *Scene) FigureBounds() Rect {
	var out Rect
	for _, p := range s.Primitives {
		if p.Layer == LayerBackground {
			continue
		}
		out = out.Union(VisibleBounds(p.Transform, p.Bounds()))
	}
	return out
}

// PrimitiveAt returns the front-most figure primitive whose bounds contain pt,
// a point in canvas coordinates. Animation is ignored.
func (s *Scene) PrimitiveAt(pt Vec2) (Primitive, bool) {
	for i := len(s.Primitives) - 1; i >= 0; i-- {
		p := s.Primitives[i]
		if p.Layer == LayerBackground {
			continue
		}
		if p.Bounds().Contains(p.Transform.Invert().Apply(pt)) {
			return p, true
		}
	}
	return Primitive{}, false
}

// EngineConfig configures an Engine. The zero value is valid.
type EngineConfig struct {
	// Logger receives one warning per diagnostic. Nil disables logging.
	Logger *slog.Logger
}

// Engine renders scenes. It holds no mutable state, so one Engine may be used
// from any number of goroutines.
type Engine struct {
	logger *slog.Logger
}

// NewEngine creates an Engine.
func NewEngine(cfg EngineConfig) *Engine {
	return &Engine{logger: cfg.Logger}
}

var defaultEngine = NewEngine(EngineConfig{})

// Render composes a Scene with the default, silent engine.
func Render(c Character, s PresentationState) (*Scene, error) {
	return defaultEngine.Render(c, s)
}

// Render composes the Scene for a character in a presentation state. It fails
// only when the character is missing a required field; every other data
// problem is absorbed and reported in Scene.Diagnostics.
//
// Draw order, back to front: background, body, bottoms, tops, hair, head,
// face, logo.
func (e *Engine) Render(c Character, s PresentationState) (*Scene, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	state, diags := s.Normalize()
	p, traitDiags := Resolve(c)
	diags = append(diags, traitDiags...)
	c, condDiags := c.normalizeConditions()
	diags = append(diags, condDiags...)

	body := MeasureBody(p)
	head := MeasureHead(p)
	l := NewLayout(body, head)
	face := MeasureFace(p, head, l)

	var figure []Primitive
	figure = append(figure, BuildBody(body, l, p.SkinColor)...)
	clothes := BuildClothing(c, p, body, l)
	var logo []Primitive
	for _, cp := range clothes {
		if cp.Layer == LayerLogo {
			logo = append(logo, cp)
			continue
		}
		figure = append(figure, cp)
	}
	if hair, ok := BuildHair(c, p, head, l); ok {
		figure = append(figure, hair)
	}
	figure = append(figure, BuildFace(c, p, head, face, l)...)
	figure = append(figure, BuildLips(state.Expression, l.CenterX, face.LipsY, p.LipsWidth, p.LipsHeight, state.CaptureMode))
	figure = append(figure, logo...)
	figure = BindAnimations(state.Animation, state.CaptureMode, figure)

	pose := PoseMatrix(state.Pose, l.Pivot())
	for i := range figure {
		figure[i].Transform = pose
	}

	scene := &Scene{
		Width:       l.Width,
		Height:      l.Height,
		Viewport:    CameraViewport(state.CameraView, l.Width, l.Height),
		Frozen:      state.CaptureMode,
		Pose:        pose,
		Primitives:  append(BuildBackground(state.Background, l.Width, l.Height), figure...),
		Diagnostics: diags,
	}
	e.logDiagnostics(diags)
	return scene, nil
}

func (e *Engine) logDiagnostics(diags []Diagnostic) {
	if e.logger == nil {
		return
	}
	for _, d := range diags {
		e.logger.LogAttrs(context.Background(), slog.LevelWarn, "figurine: trait fallback",
			slog.String("kind", d.Kind.String()),
			slog.String("field", d.Field),
			slog.String("value", d.Value),
			slog.String("fallback", d.Fallback),
		)
	}
}
