package testing

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/flipclock/pkg/animation"
	"github.com/go-drift/flipclock/pkg/flip"
)

func TestNewFaceTester_InstallsFakeClock(t *testing.T) {
	ft := NewFaceTester(t)

	assert.Equal(t, Epoch, animation.Now())
	ft.Clock().Advance(time.Second)
	assert.Equal(t, Epoch.Add(time.Second), animation.Now())
	assert.Equal(t, float64(DefaultTestWidth), ft.Face().Size().Width)
}

func TestFaceTester_CleanupRestoresClock(t *testing.T) {
	before := animation.SetClock(nil)
	animation.SetClock(before)

	var ft *FaceTester
	t.Run("inner", func(t *testing.T) {
		ft = NewFaceTester(t)
	})
	assert.Nil(t, ft.Face())
	assert.NotEqual(t, Epoch, animation.Now())
}

func TestFaceTester_PumpAdvancesSecondsFlip(t *testing.T) {
	ft := NewFaceTester(t)
	require.NoError(t, ft.SetTime(Epoch.Add(5*time.Second)))

	seconds := ft.Face().Item(flip.FieldSecond).Label()
	require.True(t, seconds.IsAnimating())

	ft.Pump(250 * time.Millisecond)
	assert.InDelta(t, 0.5, seconds.Progress(), 1e-9)
	assert.Equal(t, 1, ft.Frames())

	ft.PumpFrames(5, 50*time.Millisecond)
	assert.False(t, seconds.IsAnimating())
	assert.Equal(t, 6, seconds.DisplayedValue())
	assert.Equal(t, 6, ft.Frames())
}

func TestFaceTester_PumpAndSettle(t *testing.T) {
	ft := NewFaceTester(t)
	require.NoError(t, ft.SetTime(Epoch.Add(time.Minute+time.Second)))

	require.NoError(t, ft.PumpAndSettle(time.Second))
	assert.False(t, ft.Face().IsAnimating())
	assert.Equal(t, 2, ft.Face().Item(flip.FieldSecond).Label().DisplayedValue())
	assert.Equal(t, 1, ft.Face().Item(flip.FieldMinute).Label().DisplayedValue())
}

func TestFaceTester_PumpAndSettleTimeout(t *testing.T) {
	ft := NewFaceTester(t)
	require.NoError(t, ft.SetTime(Epoch.Add(time.Second)))

	err := ft.PumpAndSettle(100 * time.Millisecond)
	assert.True(t, errors.Is(err, ErrSettleTimeout))
}

func TestFaceTester_SetTimeRejectsZero(t *testing.T) {
	ft := NewFaceTester(t)
	assert.Error(t, ft.SetTime(time.Time{}))
	assert.Equal(t, Epoch, ft.Clock().Now())
}
