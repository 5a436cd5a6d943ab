package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/text/language"

	"github.com/go-drift/flipclock/pkg/errors"
	"github.com/go-drift/flipclock/pkg/flip"
	"github.com/go-drift/flipclock/pkg/graphics"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return dir
}

func TestLoadOptional_Missing(t *testing.T) {
	cfg, err := LoadOptional(t.TempDir())
	if err != nil {
		t.Fatalf("LoadOptional: %v", err)
	}
	if diff := cmp.Diff(&Config{}, cfg); diff != "" {
		t.Errorf("unexpected config (-want +got):\n%s", diff)
	}
}

func TestLoadOptional_Parses(t *testing.T) {
	dir := writeConfig(t, `
face:
  twelve_hour: true
  show_seconds: false
  show_weekday: true
  language: en-US
  time_zone: America/Los_Angeles
style:
  font_size: 96
  text_color: "#FFCC00"
  align: center
animation:
  duration: 300ms
  curve: ease-out
render:
  width: 800
  height: 400
  fps: 30
`)
	cfg, err := LoadOptional(dir)
	if err != nil {
		t.Fatalf("LoadOptional: %v", err)
	}

	showSeconds := false
	want := &Config{
		Face: FaceConfig{
			TwelveHour:  true,
			ShowSeconds: &showSeconds,
			ShowWeekday: true,
			Language:    "en-US",
			TimeZone:    "America/Los_Angeles",
		},
		Style:     StyleConfig{FontSize: 96, TextColor: "#FFCC00", Align: "center"},
		Animation: AnimationConfig{Duration: 300 * time.Millisecond, Curve: "ease-out"},
		Render:    RenderConfig{Width: 800, Height: 400, FPS: 30},
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_Malformed(t *testing.T) {
	dir := writeConfig(t, "face: [not, a, map")
	_, err := LoadOptional(dir)
	if err == nil {
		t.Fatal("expected parse error")
	}
	if errors.KindOf(err) != errors.KindConfig {
		t.Errorf("kind = %v, want config", errors.KindOf(err))
	}
}

func TestResolve_Defaults(t *testing.T) {
	r, err := Resolve(nil)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if r.Language() != language.Russian {
		t.Errorf("language = %v, want ru", r.Language())
	}
	if r.Calendar.Location != time.UTC {
		t.Errorf("location = %v, want UTC", r.Calendar.Location)
	}
	if !r.ShowSeconds || r.ShowWeekday || r.ShowDate || r.TwelveHour {
		t.Errorf("unexpected toggles: %+v", r)
	}
	if r.Duration != flip.DefaultDuration {
		t.Errorf("duration = %v, want %v", r.Duration, flip.DefaultDuration)
	}
	if r.Font.Size != graphics.DefaultDigitSize || r.Font.Weight != graphics.FontWeightBold {
		t.Errorf("font = %+v", r.Font)
	}
	if r.Size != (graphics.Size{Width: DefaultWidth, Height: DefaultHeight}) || r.FPS != DefaultFPS {
		t.Errorf("render = %v @ %d", r.Size, r.FPS)
	}
}

func TestResolve_Invalid(t *testing.T) {
	tests := map[string]*Config{
		"zone":     {Face: FaceConfig{TimeZone: "Mars/Olympus_Mons"}},
		"language": {Face: FaceConfig{Language: "!!"}},
		"color":    {Style: StyleConfig{TextColor: "yellow"}},
		"align":    {Style: StyleConfig{Align: "justify"}},
		"weight":   {Style: StyleConfig{Weight: "heavy"}},
		"curve":    {Animation: AnimationConfig{Curve: "bounce"}},
		"duration": {Animation: AnimationConfig{Duration: -time.Second}},
		"size":     {Render: RenderConfig{Width: -1}},
	}
	for name, cfg := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Resolve(cfg)
			if err == nil {
				t.Fatal("expected error")
			}
			if errors.KindOf(err) != errors.KindConfig {
				t.Errorf("kind = %v, want config", errors.KindOf(err))
			}
		})
	}
}

func TestResolved_NewFace(t *testing.T) {
	r, err := Resolve(&Config{
		Face:   FaceConfig{TwelveHour: true, ShowDate: true},
		Style:  StyleConfig{TextColor: "#FFFFFF", Align: "right"},
		Render: RenderConfig{Width: 1000, Height: 500},
	})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	f := r.NewFace()
	defer f.Dispose()

	if !f.Is12HourClock() || !f.DateVisible() || !f.SecondsVisible() {
		t.Error("toggles not applied")
	}
	if f.Size() != r.Size {
		t.Errorf("size = %v, want %v", f.Size(), r.Size)
	}
	for _, it := range f.Items() {
		s := it.Label().Style()
		if s.Color != graphics.ColorWhite || s.Align != graphics.TextAlignRight {
			t.Errorf("%s style = %+v", it.Field(), s)
		}
	}
}
