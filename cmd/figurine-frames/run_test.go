package main

import (
	"context"
	"encoding/json"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phanxgames/figurine"
)

func TestParseConfigDefaults(t *testing.T) {
	cfg, err := ParseConfig(flag.NewFlagSet("test", flag.ContinueOnError), nil)
	require.NoError(t, err)
	assert.Equal(t, "frames", cfg.OutDir)
	assert.Equal(t, FormatJSON, cfg.Format)
	assert.Equal(t, 25.0, cfg.FPS)
	assert.Equal(t, 10.0, cfg.Duration)
	assert.True(t, cfg.Capture)
}

func TestParseConfigEnvAndFlags(t *testing.T) {
	t.Setenv("FIGURINE_FORMAT", "svg")
	t.Setenv("FIGURINE_FPS", "12")
	t.Setenv("FIGURINE_PRESET", "promo")

	cfg, err := ParseConfig(flag.NewFlagSet("test", flag.ContinueOnError), []string{"-fps", "30"})
	require.NoError(t, err)
	assert.Equal(t, FormatSVG, cfg.Format)
	assert.Equal(t, 30.0, cfg.FPS, "flag overrides env")
	assert.Equal(t, "promo", cfg.Preset)
}

func TestParseConfigRejectsFormat(t *testing.T) {
	t.Setenv("FIGURINE_FORMAT", "gif")
	_, err := ParseConfig(flag.NewFlagSet("test", flag.ContinueOnError), nil)
	assert.ErrorContains(t, err, `unknown format "gif"`)
}

func TestParseConfigBadEnv(t *testing.T) {
	t.Setenv("FIGURINE_FPS", "fast")
	_, err := ParseConfig(flag.NewFlagSet("test", flag.ContinueOnError), nil)
	assert.ErrorContains(t, err, "parse env")
}

type dumpHead struct {
	Subtitle string                     `json:"subtitle"`
	State    figurine.PresentationState `json:"state"`
	Figure   figurine.Rect              `json:"figureBounds"`
	Scene    struct{ Height float64 }   `json:"scene"`
}

func readDump(t *testing.T, path string) dumpHead {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var d dumpHead
	require.NoError(t, json.Unmarshal(data, &d))
	return d
}

func TestRunWritesTimeline(t *testing.T) {
	dir := t.TempDir()
	cfg := Config{
		OutDir: dir, Format: FormatJSON, FPS: 5, Duration: 2, Capture: true,
		Talk: "hello there everyone",
	}
	var out strings.Builder
	require.NoError(t, Run(context.Background(), cfg, &out, nil))
	assert.Contains(t, out.String(), "wrote 10 json frames")

	first := readDump(t, filepath.Join(dir, "frame_00000.json"))
	assert.Equal(t, figurine.ExpressionTalking, first.State.Expression)
	assert.Equal(t, "hello there everyone", first.Subtitle)
	assert.True(t, first.State.CaptureMode)
	assert.Positive(t, first.Figure.Height)
	assert.LessOrEqual(t, first.Figure.Y+first.Figure.Height, first.Scene.Height)

	// Three words last 1.2s; frame 9 at 1.8s is past the talk.
	last := readDump(t, filepath.Join(dir, "frame_00009.json"))
	assert.Equal(t, figurine.ExpressionNeutral, last.State.Expression)
	assert.Empty(t, last.Subtitle)
}

func TestRunVerboseLogsFallbacks(t *testing.T) {
	dir := t.TempDir()
	c := figurine.DefaultCharacter()
	c.Nose = "Hooked"
	data, err := json.Marshal(c)
	require.NoError(t, err)
	path := filepath.Join(dir, "character.json")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	var errOut strings.Builder
	cfg := Config{Character: path, OutDir: filepath.Join(dir, "out"), Format: FormatJSON, FPS: 1, Duration: 1, Verbose: true}
	require.NoError(t, Run(context.Background(), cfg, nil, &errOut))
	assert.Contains(t, errOut.String(), "field=nose")
	assert.Contains(t, errOut.String(), "value=Hooked")
}

func TestRunCueScriptSVG(t *testing.T) {
	dir := t.TempDir()
	script := filepath.Join(dir, "cues.json")
	cues := `{"steps":[{"action":"pose","value":"left"},{"action":"hold","frames":2},{"action":"camera","value":"full","frames":1}]}`
	require.NoError(t, os.WriteFile(script, []byte(cues), 0o644))

	out := filepath.Join(dir, "out")
	cfg := Config{OutDir: out, Format: FormatSVG, FPS: 25, Duration: 10, Script: script, Preset: "reel"}
	require.NoError(t, Run(context.Background(), cfg, nil, nil))

	entries, err := os.ReadDir(out)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	data, err := os.ReadFile(filepath.Join(out, "frame_00002.svg"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "<svg"), "frame 2 is not svg: %.40s", data)
}

func TestRunBadCueScript(t *testing.T) {
	dir := t.TempDir()
	script := filepath.Join(dir, "cues.json")
	require.NoError(t, os.WriteFile(script, []byte(`{"steps":[{"action":"jump"}]}`), 0o644))
	cfg := Config{OutDir: filepath.Join(dir, "out"), Format: FormatJSON, Script: script}
	assert.ErrorContains(t, Run(context.Background(), cfg, nil, nil), "unknown action")
}

func TestRunMissingCharacterField(t *testing.T) {
	dir := t.TempDir()
	c := figurine.DefaultCharacter()
	c.SkinTone = ""
	data, err := json.Marshal(c)
	require.NoError(t, err)
	path := filepath.Join(dir, "character.json")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg := Config{Character: path, OutDir: filepath.Join(dir, "out"), Format: FormatJSON, FPS: 1, Duration: 1}
	assert.ErrorIs(t, Run(context.Background(), cfg, nil, nil), figurine.ErrMissingRequiredField)
}

func writeCharacterDoc(t *testing.T, dir string, edit func(doc map[string]any)) string {
	t.Helper()
	data, err := json.Marshal(figurine.DefaultCharacter())
	require.NoError(t, err)
	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	edit(doc)
	data, err = json.Marshal(doc)
	require.NoError(t, err)
	path := filepath.Join(dir, "character.json")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestRunAbsentWeightKey(t *testing.T) {
	dir := t.TempDir()
	path := writeCharacterDoc(t, dir, func(doc map[string]any) { delete(doc, "weight") })
	cfg := Config{Character: path, OutDir: filepath.Join(dir, "out"), Format: FormatJSON, FPS: 1, Duration: 1}
	err := Run(context.Background(), cfg, nil, nil)
	require.ErrorIs(t, err, figurine.ErrMissingRequiredField)
	assert.Contains(t, err.Error(), "weight")
}

func TestRunZeroWeightClamps(t *testing.T) {
	dir := t.TempDir()
	path := writeCharacterDoc(t, dir, func(doc map[string]any) { doc["weight"] = 0 })
	var errOut strings.Builder
	cfg := Config{Character: path, OutDir: filepath.Join(dir, "out"), Format: FormatJSON, FPS: 1, Duration: 1, Verbose: true}
	require.NoError(t, Run(context.Background(), cfg, nil, &errOut))
	assert.Contains(t, errOut.String(), "field=weight")
	assert.Contains(t, errOut.String(), "fallback=40")
}

func TestRunLiveModeFrames(t *testing.T) {
	dir := t.TempDir()
	cfg := Config{OutDir: dir, Format: FormatJSON, FPS: 2, Duration: 1, Capture: false}
	require.NoError(t, Run(context.Background(), cfg, nil, nil))
	for _, name := range []string{"frame_00000.json", "frame_00001.json"} {
		assert.False(t, readDump(t, filepath.Join(dir, name)).State.CaptureMode, name)
	}
}
