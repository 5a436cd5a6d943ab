package render

import (
	"fmt"
	"image"
	"image/color/palette"
	"image/gif"
	"image/png"
	"io"
	"time"

	"github.com/jonboulle/clockwork"
	"golang.org/x/image/draw"

	"github.com/go-drift/flipclock/pkg/clockface"
	"github.com/go-drift/flipclock/pkg/errors"
)

// EncodePNG writes img as PNG.
func EncodePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return errors.New("render.EncodePNG", errors.KindRender, err)
	}
	return nil
}

// EncodeGIF writes frames as a looping animated GIF with delay between
// frames. Frames are dithered onto the Plan 9 palette.
func EncodeGIF(w io.Writer, frames []*image.RGBA, delay time.Duration) error {
	const op = "render.EncodeGIF"
	if len(frames) == 0 {
		return errors.New(op, errors.KindRender, fmt.Errorf("no frames"))
	}
	// GIF delays are in hundredths of a second.
	centis := int(delay / (10 * time.Millisecond))
	if centis < 1 {
		centis = 1
	}

	anim := &gif.GIF{}
	for _, frame := range frames {
		p := image.NewPaletted(frame.Bounds(), palette.Plan9)
		draw.FloydSteinberg.Draw(p, frame.Bounds(), frame, image.Point{})
		anim.Image = append(anim.Image, p)
		anim.Delay = append(anim.Delay, centis)
	}
	if err := gif.EncodeAll(w, anim); err != nil {
		return errors.New(op, errors.KindRender, err)
	}
	return nil
}

// Sequence renders n frames of f, advancing clk by interval and ticking the
// face before each frame after the first. clk must be the clock installed
// with animation.SetClock for the ticks to move. n must be at least 1.
func (r *Renderer) Sequence(f *clockface.Face, clk *clockwork.FakeClock, interval time.Duration, n int) ([]*image.RGBA, error) {
	if n < 1 {
		return nil, errors.New("render.Sequence", errors.KindRender, fmt.Errorf("frame count %d is less than 1", n))
	}
	frames := make([]*image.RGBA, 0, n)
	for i := range n {
		if i > 0 {
			clk.Advance(interval)
			f.Tick()
		}
		img, err := r.Render(f)
		if err != nil {
			return nil, err
		}
		frames = append(frames, img)
	}
	return frames, nil
}
