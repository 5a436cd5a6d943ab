package clockface

import "github.com/go-drift/flipclock/pkg/graphics"

const (
	// marginRatio is the gap between and around items as a share of the
	// face width.
	marginRatio = 0.07

	captionInsetY = 10
	captionHeight = 30
)

// Layout positions the three square items in a row centered vertically in
// size, with each caption along the top of its host item.
func (f *Face) Layout(size graphics.Size) {
	f.size = size

	margin := marginRatio * size.Width
	itemW := (size.Width - 4*margin) / 3
	if itemW < 0 {
		itemW = 0
	}
	itemY := (size.Height - itemW) / 2

	x := margin
	for _, it := range f.Items() {
		it.SetFrame(graphics.RectFromLTWH(x, itemY, itemW, itemW))
		x += itemW + margin
	}

	for _, c := range f.captions() {
		host := f.Item(c.Host).Frame()
		c.Frame = graphics.RectFromLTWH(host.Left, host.Top+captionInsetY, host.Width(), captionHeight)
	}
}

// Size returns the size passed to the last Layout.
func (f *Face) Size() graphics.Size { return f.size }
