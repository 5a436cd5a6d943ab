package render

import (
	"bytes"
	"image"
	"image/color"
	"image/gif"
	"image/png"
	"math"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/flipclock/pkg/animation"
	"github.com/go-drift/flipclock/pkg/clockface"
	"github.com/go-drift/flipclock/pkg/errors"
	"github.com/go-drift/flipclock/pkg/graphics"
)

func newFace(t *testing.T, opts ...clockface.Option) (*clockface.Face, *clockwork.FakeClock) {
	t.Helper()
	clk := clockwork.NewFakeClockAt(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	prev := animation.SetClock(clk)
	t.Cleanup(func() { animation.SetClock(prev) })
	f := clockface.New(opts...)
	f.Layout(graphics.Size{Width: 300, Height: 200})
	require.NoError(t, f.SetTime(time.Date(2024, 3, 9, 12, 34, 56, 0, time.UTC)))
	return f, clk
}

func rgbaAt(img image.Image, x, y int) color.RGBA {
	return color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
}

func TestRender_PaintsItems(t *testing.T) {
	f, clk := newFace(t)
	for f.IsAnimating() {
		clk.Advance(50 * time.Millisecond)
		f.Tick()
	}

	r := New()
	defer r.Close()
	img, err := r.Render(f)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 300, 200), img.Bounds())

	// margin 21, item width 72, item top 64
	assert.Equal(t, graphics.ColorBlack.ToRGBA(), rgbaAt(img, 5, 5))
	assert.Equal(t, graphics.ColorCard.ToRGBA(), rgbaAt(img, 22, 65))

	card := graphics.ColorCard.ToRGBA()
	inked := 0
	for _, it := range f.Items() {
		fr := it.Frame()
		for y := int(fr.Top); y < int(fr.Bottom); y++ {
			for x := int(fr.Left); x < int(fr.Right); x++ {
				if rgbaAt(img, x, y) != card {
					inked++
				}
			}
		}
	}
	assert.Greater(t, inked, 0, "expected digit glyphs inside the items")
}

func TestRender_SkipsHiddenItems(t *testing.T) {
	f, _ := newFace(t, clockface.WithSecondsVisible(false))

	r := New()
	img, err := r.Render(f)
	require.NoError(t, err)

	fr := f.Items()[2].Frame()
	center := fr.Center()
	assert.Equal(t, graphics.ColorBlack.ToRGBA(), rgbaAt(img, int(center.X), int(center.Y)))
}

func TestRender_MidFlip(t *testing.T) {
	f, clk := newFace(t)
	clk.Advance(125 * time.Millisecond)
	f.Tick()

	r := New()
	_, err := r.Render(f)
	require.NoError(t, err)

	// Edge-on frames are skipped rather than drawn through a singular matrix.
	clk.Advance(125 * time.Millisecond)
	f.Tick()
	_, err = r.Render(f)
	require.NoError(t, err)
}

func TestRender_RequiresLayout(t *testing.T) {
	r := New()
	_, err := r.Render(clockface.New())
	require.Error(t, err)
	assert.Equal(t, errors.KindRender, errors.KindOf(err))
}

func TestLayerAffine(t *testing.T) {
	frame := graphics.RectFromLTWH(100, 50, 80, 40)
	angle := math.Pi / 3
	m := graphics.Identity().Rotate(angle, -1, 0, 0)

	aff, ok := layerAffine(m, frame)
	require.True(t, ok)

	// Top-left of the layer folds toward the horizontal midline.
	x := aff[0]*0 + aff[1]*0 + aff[2]
	y := aff[3]*0 + aff[4]*0 + aff[5]
	assert.InDelta(t, 100, x, 1e-9)
	assert.InDelta(t, 70-20*math.Cos(angle), y, 1e-9)

	_, ok = layerAffine(graphics.Identity().Rotate(math.Pi/2, -1, 0, 0), frame)
	assert.False(t, ok)
}

func TestEncodePNG(t *testing.T) {
	f, _ := newFace(t)
	r := New()
	img, err := r.Render(f)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, EncodePNG(&buf, img))
	decoded, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, img.Bounds(), decoded.Bounds())
}

func TestSequenceAndGIF(t *testing.T) {
	f, clk := newFace(t)
	r := New()

	frames, err := r.Sequence(f, clk, 50*time.Millisecond, 12)
	require.NoError(t, err)
	require.Len(t, frames, 12)
	assert.False(t, f.IsAnimating())

	var buf bytes.Buffer
	require.NoError(t, EncodeGIF(&buf, frames, 50*time.Millisecond))
	anim, err := gif.DecodeAll(&buf)
	require.NoError(t, err)
	assert.Len(t, anim.Image, 12)
	assert.Equal(t, 5, anim.Delay[0])

	assert.Error(t, EncodeGIF(&buf, nil, time.Second))
}

func TestSequence_RejectsEmptyCount(t *testing.T) {
	f, clk := newFace(t)
	r := New()
	defer r.Close()

	for _, n := range []int{0, -3} {
		frames, err := r.Sequence(f, clk, 50*time.Millisecond, n)
		require.Error(t, err, "n=%d", n)
		assert.Nil(t, frames)
		assert.Equal(t, errors.KindRender, errors.KindOf(err))
	}
}

func TestFontCache(t *testing.T) {
	c := NewFontCache()
	defer c.Close()

	a, err := c.Face(graphics.DigitFont(), 40)
	require.NoError(t, err)
	b, err := c.Face(graphics.DigitFont(), 40)
	require.NoError(t, err)
	assert.Same(t, a, b)

	_, err = c.Face(graphics.Font{Family: "mono"}, 12)
	require.NoError(t, err)
	_, err = c.Face(graphics.Font{Family: "comic"}, 12)
	require.Error(t, err)
}
