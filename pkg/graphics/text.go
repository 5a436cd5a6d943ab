package graphics

import (
	"fmt"
	"strings"
)

const (
	// DefaultDigitSize is the digit font size used when none is configured.
	DefaultDigitSize = 200
	// DefaultCaptionSize is the caption font size used when none is configured.
	DefaultCaptionSize = 20
)

// FontWeight represents a numeric font weight.
type FontWeight int

const (
	FontWeightNormal FontWeight = 400
	FontWeightBold   FontWeight = 700
)

// String returns a human-readable representation of the font weight.
func (w FontWeight) String() string {
	switch w {
	case FontWeightNormal:
		return "normal"
	case FontWeightBold:
		return "bold"
	default:
		return fmt.Sprintf("FontWeight(%d)", int(w))
	}
}

// ParseFontWeight accepts "normal", "bold", or "" (normal).
func ParseFontWeight(s string) (FontWeight, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "normal", "regular":
		return FontWeightNormal, nil
	case "bold":
		return FontWeightBold, nil
	default:
		return 0, fmt.Errorf("unknown font weight %q", s)
	}
}

// Font describes the face used for a text surface.
type Font struct {
	// Family names the face. Empty selects the bundled Go font.
	Family string     `json:"family,omitempty"`
	Size   float64    `json:"size"`
	Weight FontWeight `json:"weight"`
}

// DigitFont is the condensed bold face the flip cards use by default.
func DigitFont() Font {
	return Font{Size: DefaultDigitSize, Weight: FontWeightBold}
}

// CaptionFont is the face used for the AM/PM, weekday and date captions.
func CaptionFont() Font {
	return Font{Size: DefaultCaptionSize, Weight: FontWeightBold}
}

// TextAlign controls horizontal placement of a line inside its frame.
type TextAlign int

const (
	// TextAlignLeft aligns text to the left edge of the frame.
	TextAlignLeft TextAlign = iota
	// TextAlignRight aligns text to the right edge of the frame.
	TextAlignRight
	// TextAlignCenter centers text in the frame.
	TextAlignCenter
)

// String returns a human-readable representation of the text alignment.
func (a TextAlign) String() string {
	switch a {
	case TextAlignLeft:
		return "left"
	case TextAlignCenter:
		return "center"
	case TextAlignRight:
		return "right"
	default:
		return fmt.Sprintf("TextAlign(%d)", int(a))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (a TextAlign) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// ParseTextAlign accepts "left", "center" or "right". Empty means left,
// matching a freshly created label.
func ParseTextAlign(s string) (TextAlign, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "left":
		return TextAlignLeft, nil
	case "center", "centre":
		return TextAlignCenter, nil
	case "right":
		return TextAlignRight, nil
	default:
		return 0, fmt.Errorf("unknown text alignment %q", s)
	}
}

// TextStyle bundles the styling a text surface draws with.
type TextStyle struct {
	Font  Font      `json:"font"`
	Color Color     `json:"color"`
	Align TextAlign `json:"align"`
}

// WithColor returns a copy of the style with the given color.
func (s TextStyle) WithColor(c Color) TextStyle {
	s.Color = c
	return s
}
