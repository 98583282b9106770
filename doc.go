// Package figurine is a procedural character renderer: it turns a declarative
// [Character] description and a [PresentationState] into a resolved 2D vector
// [Scene] of styled primitives, ready for any rasterizer.
//
// The package is pure. It never draws, never reads a clock, and never touches
// a window; the same inputs always produce an identical Scene. Host adapters
// live in sub-packages: figurine/ebitenraster draws a Scene with [Ebitengine]
// and figurine/svgexport writes it as an SVG document.
//
// # Quick start
//
//	c := figurine.DefaultCharacter()
//	s := figurine.DefaultPresentationState()
//	scene, err := figurine.Render(c, s)
//	if err != nil {
//		// a required field is missing
//	}
//	for _, p := range scene.Primitives {
//		// draw p back to front
//	}
//
// # Pipeline
//
// [Render] validates the character, normalizes the presentation state and
// resolves traits into [Proportions]. The builders then lay out the figure on
// a canvas sized from those proportions: background, body, bottoms, tops,
// hair, head, face and logo, in that draw order. The pose shears every figure
// primitive about the torso, and the camera view picks the [Scene.Viewport].
//
// Cosmetic problems never fail a render. An unknown enum or an out-of-range
// number falls back to a default and is recorded as a [Diagnostic] on the
// Scene; set [EngineConfig.Logger] to have each one logged as well. Only a
// missing required field returns an error, matching [ErrMissingRequiredField].
//
// # Animation
//
// The engine declares loops, it does not run them. A primitive in an animated
// part group carries an [AnimationBinding]; hosts call
// [AnimationBinding.MatrixAt] with their own clock. In capture mode every
// binding is frozen so frame-by-frame capture is stable.
//
// # Sequences
//
// [Timeline] and [CueScript] expand a talk script or a list of cues into
// per-frame presentation states for offline rendering, with subtitles timed
// at five words per chunk.
//
// [Ebitengine]: https://ebitengine.org
package figurine
