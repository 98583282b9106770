package figurine

import (
	"errors"
	"reflect"
	"testing"
)

func TestPlanTalkChunks(t *testing.T) {
	talk, err := PlanTalk("one two three four five six seven", TimelineConfig{})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"one two three four five", "six seven"}
	if !reflect.DeepEqual(talk.Subtitles, want) {
		t.Errorf("subtitles = %q, want %q", talk.Subtitles, want)
	}
	assertNear(t, "duration", talk.Duration, 2.8)
	assertNear(t, "chunk", talk.ChunkDuration, 1.4)
}

func TestPlanTalkDuration(t *testing.T) {
	tests := []struct {
		name   string
		script string
		cfg    TimelineConfig
		want   float64
	}{
		{"minimum", "hi", TimelineConfig{}, 1},
		{"per word", "a b c d e f g h i j", TimelineConfig{}, 4},
		{"override", "a b c", TimelineConfig{TalkOverride: 7}, 7},
		{"custom pace", "a b c d", TimelineConfig{SecondsPerWord: 0.5}, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			talk, err := PlanTalk(tt.script, tt.cfg)
			if err != nil {
				t.Fatal(err)
			}
			assertNear(t, "duration", talk.Duration, tt.want)
		})
	}
}

func TestPlanTalkEmpty(t *testing.T) {
	for _, s := range []string{"", "   \n\t"} {
		if _, err := PlanTalk(s, TimelineConfig{}); !errors.Is(err, ErrEmptyScript) {
			t.Errorf("PlanTalk(%q) err = %v", s, err)
		}
	}
}

func TestSubtitleAt(t *testing.T) {
	talk, _ := PlanTalk("one two three four five six seven", TimelineConfig{})
	tests := []struct {
		at   float64
		want string
		ok   bool
	}{
		{-0.1, "", false},
		{0, "one two three four five", true},
		{1.39, "one two three four five", true},
		{1.5, "six seven", true},
		{2.79, "six seven", true},
		{2.81, "", false},
	}
	for _, tt := range tests {
		got, ok := talk.SubtitleAt(tt.at)
		if got != tt.want || ok != tt.ok {
			t.Errorf("SubtitleAt(%v) = %q, %v; want %q, %v", tt.at, got, ok, tt.want, tt.ok)
		}
	}
}

func TestTimelineFrameCount(t *testing.T) {
	frames, err := Timeline(DefaultPresentationState(), "", TimelineConfig{})
	if err != nil {
		t.Fatal(err)
	}
	if len(frames) != 250 {
		t.Fatalf("frames = %d, want 250", len(frames))
	}
	for i, f := range frames {
		if f.Index != i || f.Subtitle != "" || f.State.Expression != ExpressionNeutral {
			t.Fatalf("frame %d = %+v", i, f)
		}
	}
	assertNear(t, "last time", frames[249].Time, 9.96)
}

func TestTimelineTalk(t *testing.T) {
	base := DefaultPresentationState()
	base.Expression = ExpressionSmile
	base.CaptureMode = true
	frames, err := Timeline(base, "hello there", TimelineConfig{FPS: 10, Duration: 2})
	if err != nil {
		t.Fatal(err)
	}
	if len(frames) != 20 {
		t.Fatalf("frames = %d, want 20", len(frames))
	}
	for _, f := range frames {
		talking := f.Time < 1
		if talking != (f.State.Expression == ExpressionTalking) {
			t.Errorf("frame %d at %v: expression %s", f.Index, f.Time, f.State.Expression)
		}
		if talking && f.Subtitle != "hello there" {
			t.Errorf("frame %d subtitle = %q", f.Index, f.Subtitle)
		}
		if !talking && (f.Subtitle != "" || f.State.Expression != ExpressionSmile) {
			t.Errorf("frame %d after talk = %+v", f.Index, f)
		}
		if !f.State.CaptureMode {
			t.Errorf("frame %d lost capture mode", f.Index)
		}
	}
}

func TestTimelineKeepsLiveMode(t *testing.T) {
	base := DefaultPresentationState()
	frames, err := Timeline(base, "hello there", TimelineConfig{FPS: 10, Duration: 2})
	if err != nil {
		t.Fatal(err)
	}
	for _, f := range frames {
		if f.State.CaptureMode {
			t.Fatalf("frame %d switched to capture mode", f.Index)
		}
	}
}
