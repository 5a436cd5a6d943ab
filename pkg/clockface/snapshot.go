package clockface

import (
	"time"

	"github.com/go-drift/flipclock/pkg/calendar"
	"github.com/go-drift/flipclock/pkg/flip"
	"github.com/go-drift/flipclock/pkg/graphics"
)

// Snapshot is a JSON-serializable view of a face for inspection tools.
type Snapshot struct {
	Time        time.Time            `json:"time"`
	Components  *calendar.Components `json:"components,omitempty"`
	Language    string               `json:"language"`
	Location    string               `json:"location"`
	TwelveHour  bool                 `json:"twelveHour"`
	Size        graphics.Size        `json:"size"`
	IsAnimating bool                 `json:"isAnimating"`
	Items       []ItemSnapshot       `json:"items"`
	Captions    []Caption            `json:"captions"`
}

// ItemSnapshot describes one flip item.
type ItemSnapshot struct {
	Field     string        `json:"field"`
	Hidden    bool          `json:"hidden"`
	Frame     graphics.Rect `json:"frame"`
	Animating bool          `json:"animating"`
	Progress  float64       `json:"progress"`
	Current   int           `json:"current"`
	Next      int           `json:"next"`
	Displayed int           `json:"displayed"`
	Layers    []flip.Layer  `json:"layers"`
}

// Snapshot captures the face state.
func (f *Face) Snapshot() Snapshot {
	s := Snapshot{
		Time:        f.time,
		Language:    f.cal.DisplayLanguage().String(),
		TwelveHour:  f.twelveHour,
		Size:        f.size,
		IsAnimating: f.IsAnimating(),
		Captions:    f.Captions(),
	}
	if f.cal.Location != nil {
		s.Location = f.cal.Location.String()
	}
	if f.hasTime {
		comp := f.comp
		s.Components = &comp
	}
	for _, it := range f.Items() {
		l := it.Label()
		s.Items = append(s.Items, ItemSnapshot{
			Field:     it.Field().String(),
			Hidden:    it.Hidden(),
			Frame:     it.Frame(),
			Animating: l.IsAnimating(),
			Progress:  l.Progress(),
			Current:   l.Current(),
			Next:      l.Next(),
			Displayed: l.DisplayedValue(),
			Layers:    l.Layers(),
		})
	}
	return s
}
