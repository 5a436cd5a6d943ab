package flip

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestItem_SecondFlipsToNextValue(t *testing.T) {
	h := newHarness(t)
	it := NewItem(FieldSecond, WithScheduler(h.sched))

	it.SetTime(0)
	l := it.Label()
	assert.True(t, l.IsAnimating())
	assert.Equal(t, 0, l.Current())
	assert.Equal(t, 1, l.Next())
	v, ok := it.Value()
	assert.True(t, ok)
	assert.Equal(t, 0, v)
}

func TestItem_HourShowsFirstValueAtRest(t *testing.T) {
	h := newHarness(t)
	it := NewItem(FieldHour, WithScheduler(h.sched))

	it.SetTime(13)
	assert.False(t, it.Label().IsAnimating())
	assert.Equal(t, 13, it.Label().DisplayedValue())
	v, ok := it.Value()
	assert.True(t, ok)
	assert.Equal(t, 13, v)
}

func TestItem_FlipsOnlyOnChange(t *testing.T) {
	h := newHarness(t)
	it := NewItem(FieldMinute, WithScheduler(h.sched))

	it.SetTime(5)
	it.SetTime(5)
	assert.False(t, it.Label().IsAnimating())

	it.SetTime(6)
	assert.True(t, it.Label().IsAnimating())
	assert.Equal(t, 5, it.Label().Current())
	assert.Equal(t, 6, it.Label().Next())

	for it.Label().IsAnimating() {
		h.step(time.Second / 60)
	}
	assert.Equal(t, 6, it.Label().DisplayedValue())
}

func TestItem_SecondNextIsCurrentPlusOneWrapped(t *testing.T) {
	h := newHarness(t)
	it := NewItem(FieldSecond, WithScheduler(h.sched))

	it.SetTime(58)
	assert.Equal(t, 58, it.Label().Current())
	assert.Equal(t, 59, it.Label().Next())

	it.SetTime(59)
	assert.Equal(t, 59, it.Label().Current())
	assert.Equal(t, 0, it.Label().Next())
}

func TestItem_SecondRepeatedValueRestartsFlip(t *testing.T) {
	h := newHarness(t)
	it := NewItem(FieldSecond, WithScheduler(h.sched))

	it.SetTime(58)
	for it.Label().IsAnimating() {
		h.step(50 * time.Millisecond)
	}
	assert.Equal(t, 59, it.Label().DisplayedValue())

	it.SetTime(58)
	assert.True(t, it.Label().IsAnimating())
	assert.Equal(t, 0.0, it.Label().Progress())
	assert.Equal(t, 58, it.Label().Current())
	assert.Equal(t, 59, it.Label().Next())
}

func TestItem_SecondSkippedValue(t *testing.T) {
	h := newHarness(t)
	it := NewItem(FieldSecond, WithScheduler(h.sched))

	it.SetTime(58)
	it.SetTime(1)
	assert.Equal(t, 1, it.Label().Current())
	assert.Equal(t, 2, it.Label().Next())
	assert.Equal(t, 1, h.sched.Len())
}

func TestItem_Hidden(t *testing.T) {
	it := NewItem(FieldSecond)
	defer it.Dispose()
	assert.False(t, it.Hidden())
	it.SetHidden(true)
	assert.True(t, it.Hidden())
}

func TestFieldString(t *testing.T) {
	assert.Equal(t, "hour", FieldHour.String())
	assert.Equal(t, "minute", FieldMinute.String())
	assert.Equal(t, "second", FieldSecond.String())
	assert.Equal(t, "Field(7)", Field(7).String())
	assert.Equal(t, 24, FieldHour.Modulus())
	assert.Equal(t, 60, FieldSecond.Modulus())
}
