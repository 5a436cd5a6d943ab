// Package render rasterizes a clock face into an image using the bundled Go
// fonts, for previews, snapshots and exported animations.
package render

import (
	"fmt"
	"image"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/f64"
	"golang.org/x/image/math/fixed"

	"github.com/go-drift/flipclock/pkg/clockface"
	"github.com/go-drift/flipclock/pkg/errors"
	"github.com/go-drift/flipclock/pkg/flip"
	"github.com/go-drift/flipclock/pkg/graphics"
)

const (
	// fitRatio caps text height relative to its frame so oversized fonts
	// still fit a small card.
	fitRatio = 0.75

	// degenerate is the determinant below which a folded layer is treated as
	// edge-on and not drawn.
	degenerate = 1e-6
)

// Renderer paints faces. The zero value is not usable; call New.
type Renderer struct {
	// Background fills the canvas before the items are drawn.
	Background graphics.Color
	// Scaler resamples folded layers. Defaults to bilinear.
	Scaler draw.Transformer

	fonts *FontCache
}

// New returns a renderer with a black background.
func New() *Renderer {
	return &Renderer{
		Background: graphics.ColorBlack,
		Scaler:     draw.BiLinear,
		fonts:      NewFontCache(),
	}
}

// Close releases cached font faces.
func (r *Renderer) Close() error {
	return r.fonts.Close()
}

// Render paints f at the size of its last Layout.
func (r *Renderer) Render(f *clockface.Face) (*image.RGBA, error) {
	const op = "render.Render"
	size := f.Size()
	w, h := int(math.Ceil(size.Width)), int(math.Ceil(size.Height))
	if w <= 0 || h <= 0 {
		return nil, errors.New(op, errors.KindRender, fmt.Errorf("face has no layout size (%vx%v)", size.Width, size.Height))
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	fill(dst, dst.Bounds(), r.Background)

	for _, it := range f.Items() {
		if it.Hidden() {
			continue
		}
		if err := r.paintLabel(dst, it.Label()); err != nil {
			return nil, errors.New(op, errors.KindRender, fmt.Errorf("%s: %w", it.Field(), err))
		}
	}
	for _, c := range f.Captions() {
		if c.Hidden || c.Text == "" {
			continue
		}
		if err := r.paintText(dst, toRect(c.Frame), c.Text, c.Style); err != nil {
			return nil, errors.New(op, errors.KindRender, fmt.Errorf("caption %s: %w", c.Name, err))
		}
	}
	return dst, nil
}

// paintLabel draws the container and the three layers back to front.
func (r *Renderer) paintLabel(dst *image.RGBA, l *flip.Label) error {
	frame := l.Frame()
	if frame.IsEmpty() {
		return nil
	}
	fill(dst, toRect(frame), l.Background())

	for _, layer := range l.Layers() {
		if layer.Hidden {
			continue
		}
		if err := r.paintLayer(dst, layer, l.CardColor()); err != nil {
			return err
		}
	}
	return nil
}

// paintLayer renders a layer offscreen and composites it through the
// orthographic projection of its transform, about the layer center.
func (r *Renderer) paintLayer(dst *image.RGBA, layer flip.Layer, card graphics.Color) error {
	w, h := int(math.Round(layer.Frame.Width())), int(math.Round(layer.Frame.Height()))
	if w <= 0 || h <= 0 {
		return nil
	}
	src := image.NewRGBA(image.Rect(0, 0, w, h))
	fill(src, src.Bounds(), card)
	if err := r.paintText(src, src.Bounds(), layer.Text, layer.Style); err != nil {
		return err
	}

	if layer.Transform.ApproxEqual(graphics.Identity(), 1e-12) {
		at := image.Pt(int(math.Round(layer.Frame.Left)), int(math.Round(layer.Frame.Top)))
		draw.Draw(dst, src.Bounds().Add(at), src, image.Point{}, draw.Over)
		return nil
	}

	s2d, ok := layerAffine(layer.Transform, layer.Frame)
	if !ok {
		return nil
	}
	r.Scaler.Transform(dst, s2d, src, src.Bounds(), draw.Over, nil)
	return nil
}

// layerAffine maps layer-local pixels to canvas pixels. It reports false
// when the projection is degenerate (the card is edge-on).
func layerAffine(m graphics.Matrix4, frame graphics.Rect) (f64.Aff3, bool) {
	a := m.Affine2D()
	sa, sb, tx, sc, sd, ty := a[0], a[1], a[2], a[3], a[4], a[5]
	if math.Abs(sa*sd-sb*sc) < degenerate {
		return f64.Aff3{}, false
	}
	cx, cy := frame.Width()/2, frame.Height()/2
	return f64.Aff3{
		sa, sb, tx + cx + frame.Left - sa*cx - sb*cy,
		sc, sd, ty + cy + frame.Top - sc*cx - sd*cy,
	}, true
}

// paintText draws one line of text vertically centered in bounds.
func (r *Renderer) paintText(dst draw.Image, bounds image.Rectangle, text string, style graphics.TextStyle) error {
	if text == "" || bounds.Empty() {
		return nil
	}
	size := style.Font.Size
	if size <= 0 {
		size = graphics.DefaultCaptionSize
	}
	if limit := float64(bounds.Dy()) * fitRatio; size > limit {
		size = limit
	}
	if size < 1 {
		return nil
	}

	face, err := r.fonts.Face(style.Font, size)
	if err != nil {
		return err
	}

	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(style.Color.ToRGBA()),
		Face: face,
	}
	advance := d.MeasureString(text)
	metrics := face.Metrics()

	var x fixed.Int26_6
	switch style.Align {
	case graphics.TextAlignCenter:
		x = fixed.I(bounds.Min.X) + (fixed.I(bounds.Dx())-advance)/2
	case graphics.TextAlignRight:
		x = fixed.I(bounds.Max.X) - advance
	default:
		x = fixed.I(bounds.Min.X)
	}
	textHeight := metrics.Ascent + metrics.Descent
	y := fixed.I(bounds.Min.Y) + (fixed.I(bounds.Dy())-textHeight)/2 + metrics.Ascent

	d.Dot = fixed.Point26_6{X: x, Y: y}
	d.DrawString(text)
	return nil
}

func fill(dst draw.Image, rect image.Rectangle, c graphics.Color) {
	draw.Draw(dst, rect, image.NewUniform(c.ToRGBA()), image.Point{}, draw.Over)
}

func toRect(r graphics.Rect) image.Rectangle {
	return image.Rect(
		int(math.Round(r.Left)), int(math.Round(r.Top)),
		int(math.Round(r.Right)), int(math.Round(r.Bottom)),
	)
}
