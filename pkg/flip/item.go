package flip

import (
	"fmt"

	"github.com/go-drift/flipclock/pkg/graphics"
)

// Field identifies which clock component an Item shows.
type Field int

const (
	FieldHour Field = iota
	FieldMinute
	FieldSecond
)

// String returns the field name.
func (f Field) String() string {
	switch f {
	case FieldHour:
		return "hour"
	case FieldMinute:
		return "minute"
	case FieldSecond:
		return "second"
	default:
		return fmt.Sprintf("Field(%d)", int(f))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (f Field) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// Modulus returns the number of distinct values the field cycles through.
func (f Field) Modulus() int {
	switch f {
	case FieldHour:
		return 24
	default:
		return 60
	}
}

// Item binds a Label to one clock field and remembers what it shows, so a
// face can hand it plain field values.
type Item struct {
	field    Field
	label    *Label
	value    int
	hasValue bool
	hidden   bool
}

// NewItem creates an item for field.
func NewItem(field Field, opts ...Option) *Item {
	return &Item{
		field: field,
		label: NewLabel(opts...),
	}
}

// Field returns the field this item shows.
func (it *Item) Field() Field { return it.field }

// Label returns the underlying flip label.
func (it *Item) Label() *Label { return it.label }

// Value returns the last value set, and whether one has been set.
func (it *Item) Value() (int, bool) {
	return it.value, it.hasValue
}

// SetTime forwards a new field value to the label.
//
// The seconds item flips from v to v+1 (wrapped) on every call, repeated
// or skipped values included. Hours and minutes show their first value at
// rest and afterwards flip from the previous value to v only when it
// changes.
func (it *Item) SetTime(v int) {
	if it.field == FieldSecond {
		it.value, it.hasValue = v, true
		it.label.SetValue(v, it.wrap(v+1))
		return
	}
	if !it.hasValue {
		it.value, it.hasValue = v, true
		it.label.Show(v)
		return
	}
	if v == it.value {
		return
	}
	it.label.SetValue(it.value, v)
	it.value = v
}

func (it *Item) wrap(v int) int {
	n := it.field.Modulus()
	return ((v % n) + n) % n
}

// Hidden reports whether the item is hidden.
func (it *Item) Hidden() bool { return it.hidden }

// SetHidden shows or hides the item. Hidden items keep animating.
func (it *Item) SetHidden(hidden bool) { it.hidden = hidden }

// Frame returns the item bounds.
func (it *Item) Frame() graphics.Rect { return it.label.Frame() }

// SetFrame positions the item.
func (it *Item) SetFrame(rect graphics.Rect) { it.label.SetFrame(rect) }

// Dispose releases the label's animation.
func (it *Item) Dispose() { it.label.Dispose() }
