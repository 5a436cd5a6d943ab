// Package config loads flipclock.yaml and resolves it into clock face
// options with defaults applied.
package config

import (
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/flipclock/pkg/animation"
	"github.com/go-drift/flipclock/pkg/calendar"
	"github.com/go-drift/flipclock/pkg/clockface"
	"github.com/go-drift/flipclock/pkg/errors"
	"github.com/go-drift/flipclock/pkg/flip"
	"github.com/go-drift/flipclock/pkg/graphics"
)

// FileName is the configuration file looked up in a directory.
const FileName = "flipclock.yaml"

// Defaults.
const (
	DefaultLanguage = "ru"
	DefaultTimeZone = "UTC"
	DefaultWidth    = 640
	DefaultHeight   = 320
	DefaultFPS      = 60
)

// Config represents the optional flipclock.yaml configuration.
type Config struct {
	Face      FaceConfig      `yaml:"face"`
	Style     StyleConfig     `yaml:"style"`
	Animation AnimationConfig `yaml:"animation"`
	Render    RenderConfig    `yaml:"render"`
}

// FaceConfig holds the display toggles and calendar.
type FaceConfig struct {
	TwelveHour  bool   `yaml:"twelve_hour,omitempty"`
	ShowSeconds *bool  `yaml:"show_seconds,omitempty"`
	ShowWeekday bool   `yaml:"show_weekday,omitempty"`
	ShowDate    bool   `yaml:"show_date,omitempty"`
	Language    string `yaml:"language,omitempty"`
	TimeZone    string `yaml:"time_zone,omitempty"`
}

// StyleConfig holds digit and caption styling.
type StyleConfig struct {
	FontFamily  string  `yaml:"font_family,omitempty"`
	FontSize    float64 `yaml:"font_size,omitempty"`
	CaptionSize float64 `yaml:"caption_size,omitempty"`
	Weight      string  `yaml:"weight,omitempty"`
	TextColor   string  `yaml:"text_color,omitempty"`
	Align       string  `yaml:"align,omitempty"`
}

// AnimationConfig holds flip timing.
type AnimationConfig struct {
	Duration time.Duration `yaml:"duration,omitempty"`
	Curve    string        `yaml:"curve,omitempty"`
}

// RenderConfig holds output canvas settings.
type RenderConfig struct {
	Width  int `yaml:"width,omitempty"`
	Height int `yaml:"height,omitempty"`
	FPS    int `yaml:"fps,omitempty"`
}

// Resolved contains validated configuration with defaults applied.
type Resolved struct {
	Calendar    calendar.Calendar
	TwelveHour  bool
	ShowSeconds bool
	ShowWeekday bool
	ShowDate    bool

	Font         graphics.Font
	CaptionStyle graphics.TextStyle
	TextColor    graphics.Color
	Align        graphics.TextAlign

	Duration time.Duration
	Curve    func(float64) float64

	Size graphics.Size
	FPS  int
}

// LoadOptional reads flipclock.yaml from dir if present.
func LoadOptional(dir string) (*Config, error) {
	cfg, err := Load(filepath.Join(dir, FileName))
	if err != nil {
		if stderrors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, err
	}
	return cfg, nil
}

// Load reads and parses the file at path.
func Load(path string) (*Config, error) {
	const op = "config.Load"
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New(op, errors.KindConfig, fmt.Errorf("failed to read %s: %w", path, err))
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.New(op, errors.KindConfig, fmt.Errorf("failed to parse %s: %w", path, err))
	}
	return &cfg, nil
}

// Resolve applies defaults and validates cfg.
func Resolve(cfg *Config) (*Resolved, error) {
	const op = "config.Resolve"
	fail := func(err error) (*Resolved, error) {
		return nil, errors.New(op, errors.KindConfig, err)
	}
	if cfg == nil {
		cfg = &Config{}
	}

	langName := strings.TrimSpace(cfg.Face.Language)
	if langName == "" {
		langName = DefaultLanguage
	}
	lang, err := calendar.ParseLanguage(langName)
	if err != nil {
		return nil, err
	}

	zoneName := strings.TrimSpace(cfg.Face.TimeZone)
	if zoneName == "" {
		zoneName = DefaultTimeZone
	}
	loc, err := time.LoadLocation(zoneName)
	if err != nil {
		return fail(fmt.Errorf("time_zone %q: %w", zoneName, err))
	}

	weight, err := graphics.ParseFontWeight(cfg.Style.Weight)
	if err != nil {
		return fail(err)
	}
	if cfg.Style.Weight == "" {
		weight = graphics.FontWeightBold
	}

	color := graphics.ColorLightText
	if cfg.Style.TextColor != "" {
		if color, err = graphics.ParseHex(cfg.Style.TextColor); err != nil {
			return fail(err)
		}
	}

	align, err := graphics.ParseTextAlign(cfg.Style.Align)
	if err != nil {
		return fail(err)
	}

	curve, err := animation.CurveByName(cfg.Animation.Curve)
	if err != nil {
		return fail(err)
	}

	fontSize := cfg.Style.FontSize
	if fontSize <= 0 {
		fontSize = graphics.DefaultDigitSize
	}
	captionSize := cfg.Style.CaptionSize
	if captionSize <= 0 {
		captionSize = graphics.DefaultCaptionSize
	}

	duration := cfg.Animation.Duration
	if duration == 0 {
		duration = flip.DefaultDuration
	}
	if duration < 0 {
		return fail(fmt.Errorf("animation duration %v is negative", duration))
	}

	width, height, fps := cfg.Render.Width, cfg.Render.Height, cfg.Render.FPS
	if width == 0 {
		width = DefaultWidth
	}
	if height == 0 {
		height = DefaultHeight
	}
	if fps == 0 {
		fps = DefaultFPS
	}
	if width < 0 || height < 0 || fps < 0 {
		return fail(fmt.Errorf("render size %dx%d at %d fps is invalid", width, height, fps))
	}

	showSeconds := true
	if cfg.Face.ShowSeconds != nil {
		showSeconds = *cfg.Face.ShowSeconds
	}

	family := strings.TrimSpace(cfg.Style.FontFamily)
	return &Resolved{
		Calendar:    calendar.New(loc, lang),
		TwelveHour:  cfg.Face.TwelveHour,
		ShowSeconds: showSeconds,
		ShowWeekday: cfg.Face.ShowWeekday,
		ShowDate:    cfg.Face.ShowDate,
		Font:        graphics.Font{Family: family, Size: fontSize, Weight: weight},
		CaptionStyle: graphics.TextStyle{
			Font:  graphics.Font{Family: family, Size: captionSize, Weight: weight},
			Color: color,
			Align: graphics.TextAlignLeft,
		},
		TextColor: color,
		Align:     align,
		Duration:  duration,
		Curve:     curve,
		Size:      graphics.Size{Width: float64(width), Height: float64(height)},
		FPS:       fps,
	}, nil
}

// Language returns the configured caption language tag.
func (r *Resolved) Language() language.Tag {
	return r.Calendar.Language
}

// FaceOptions converts the resolved settings into clockface options.
func (r *Resolved) FaceOptions() []clockface.Option {
	return []clockface.Option{
		clockface.WithCalendar(r.Calendar),
		clockface.With12HourClock(r.TwelveHour),
		clockface.WithSecondsVisible(r.ShowSeconds),
		clockface.WithWeekdayVisible(r.ShowWeekday),
		clockface.WithDateVisible(r.ShowDate),
		clockface.WithDuration(r.Duration),
		clockface.WithCurve(r.Curve),
	}
}

// NewFace builds a face from the resolved settings, styled and laid out.
func (r *Resolved) NewFace(extra ...clockface.Option) *clockface.Face {
	f := clockface.New(append(r.FaceOptions(), extra...)...)
	f.SetFont(r.Font)
	f.SetTextColor(r.TextColor)
	f.SetTextAlignment(r.Align)
	f.SetCaptionStyle(r.CaptionStyle)
	f.Layout(r.Size)
	return f
}
