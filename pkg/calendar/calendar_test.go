package calendar

import (
	stderrors "errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/go-drift/flipclock/pkg/errors"
)

func TestDecompose(t *testing.T) {
	cal := Default()
	// 2024-03-09 is a Saturday.
	ts := time.Date(2024, 3, 9, 23, 59, 58, 0, time.UTC)

	c, err := cal.Decompose(ts)
	require.NoError(t, err)
	assert.Equal(t, Components{Year: 2024, Month: 3, Day: 9, Weekday: 7, Hour: 23, Minute: 59, Second: 58}, c)
}

func TestDecompose_UsesCalendarZone(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)
	cal := New(tokyo, language.Japanese)

	c, err := cal.Decompose(time.Date(2024, 3, 9, 20, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, 10, c.Day)
	assert.Equal(t, 5, c.Hour)
	assert.Equal(t, 1, c.Weekday) // Sunday
}

func TestDecompose_Preconditions(t *testing.T) {
	_, err := Default().Decompose(time.Time{})
	require.Error(t, err)
	assert.True(t, stderrors.Is(err, errors.ErrIncompleteDecomposition))
	assert.Equal(t, errors.KindPrecondition, errors.KindOf(err))

	_, err = Calendar{Language: language.English}.Decompose(time.Now())
	require.Error(t, err)
	assert.True(t, stderrors.Is(err, errors.ErrIncompleteDecomposition))
}

func TestTo12Hour(t *testing.T) {
	for h := 0; h <= 12; h++ {
		assert.Equal(t, h, To12Hour(h), "hour %d", h)
	}
	assert.Equal(t, 1, To12Hour(13))
	assert.Equal(t, 11, To12Hour(23))
}

func TestMeridiem(t *testing.T) {
	assert.Equal(t, "AM", Meridiem(0))
	assert.Equal(t, "AM", Meridiem(11))
	assert.Equal(t, "PM", Meridiem(12))
	assert.Equal(t, "PM", Meridiem(23))
}

func TestWeekdayName(t *testing.T) {
	ru := Default()
	assert.Equal(t, "Воскресенье", ru.WeekdayName(1))
	assert.Equal(t, "Суббота", ru.WeekdayName(7))
	assert.Equal(t, "", ru.WeekdayName(0))
	assert.Equal(t, "", ru.WeekdayName(8))

	en := New(time.UTC, language.MustParse("en-GB"))
	assert.Equal(t, "Sunday", en.WeekdayName(1))
	assert.Equal(t, language.English, en.DisplayLanguage())

	// Unsupported languages fall back to Russian.
	ko := New(time.UTC, language.Korean)
	assert.Equal(t, language.Russian, ko.DisplayLanguage())
	assert.Equal(t, "Понедельник", ko.WeekdayName(2))
}

func TestDateString(t *testing.T) {
	c := Components{Year: 2024, Month: 1, Day: 2}
	tests := []struct {
		lang language.Tag
		want string
	}{
		{language.Chinese, "2024年1月2日"},
		{language.Japanese, "2024年1月2日"},
		{language.Russian, "2 января 2024 г."},
		{language.English, "January 2, 2024"},
		{language.German, "2. Januar 2024"},
		{language.French, "2 janvier 2024"},
	}
	for _, tt := range tests {
		got := New(time.UTC, tt.lang).DateString(c)
		assert.Equal(t, tt.want, got, tt.lang.String())
	}
}

func TestParseLanguage(t *testing.T) {
	tag, err := ParseLanguage("zh-Hans")
	require.NoError(t, err)
	assert.Equal(t, language.Chinese, New(time.UTC, tag).DisplayLanguage())

	_, err = ParseLanguage("not a language")
	require.Error(t, err)
	assert.Equal(t, errors.KindConfig, errors.KindOf(err))
}
