package calendar

import (
	"fmt"
	"strconv"

	"golang.org/x/text/language"

	"github.com/go-drift/flipclock/pkg/errors"
)

// supported lists the caption languages. The first entry is the fallback.
var supported = []language.Tag{
	language.Russian,
	language.English,
	language.Chinese,
	language.Japanese,
	language.German,
	language.French,
}

var matcher = language.NewMatcher(supported)

type names struct {
	weekdays [7]string
	months   [12]string
	date     func(n *names, c Components) string
}

var tables = map[language.Tag]*names{
	language.Russian: {
		weekdays: [7]string{"Воскресенье", "Понедельник", "Вторник", "Среда", "Четверг", "Пятница", "Суббота"},
		months: [12]string{"января", "февраля", "марта", "апреля", "мая", "июня",
			"июля", "августа", "сентября", "октября", "ноября", "декабря"},
		date: func(n *names, c Components) string {
			return fmt.Sprintf("%d %s %d г.", c.Day, n.month(c.Month), c.Year)
		},
	},
	language.English: {
		weekdays: [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"},
		months: [12]string{"January", "February", "March", "April", "May", "June",
			"July", "August", "September", "October", "November", "December"},
		date: func(n *names, c Components) string {
			return fmt.Sprintf("%s %d, %d", n.month(c.Month), c.Day, c.Year)
		},
	},
	language.Chinese: {
		weekdays: [7]string{"星期日", "星期一", "星期二", "星期三", "星期四", "星期五", "星期六"},
		date:     cjkDate,
	},
	language.Japanese: {
		weekdays: [7]string{"日曜日", "月曜日", "火曜日", "水曜日", "木曜日", "金曜日", "土曜日"},
		date:     cjkDate,
	},
	language.German: {
		weekdays: [7]string{"Sonntag", "Montag", "Dienstag", "Mittwoch", "Donnerstag", "Freitag", "Samstag"},
		months: [12]string{"Januar", "Februar", "März", "April", "Mai", "Juni",
			"Juli", "August", "September", "Oktober", "November", "Dezember"},
		date: func(n *names, c Components) string {
			return fmt.Sprintf("%d. %s %d", c.Day, n.month(c.Month), c.Year)
		},
	},
	language.French: {
		weekdays: [7]string{"dimanche", "lundi", "mardi", "mercredi", "jeudi", "vendredi", "samedi"},
		months: [12]string{"janvier", "février", "mars", "avril", "mai", "juin",
			"juillet", "août", "septembre", "octobre", "novembre", "décembre"},
		date: func(n *names, c Components) string {
			return fmt.Sprintf("%d %s %d", c.Day, n.month(c.Month), c.Year)
		},
	},
}

func cjkDate(_ *names, c Components) string {
	return strconv.Itoa(c.Year) + "年" + strconv.Itoa(c.Month) + "月" + strconv.Itoa(c.Day) + "日"
}

func (n *names) month(m int) string {
	if m < 1 || m > 12 {
		return strconv.Itoa(m)
	}
	return n.months[m-1]
}

// match returns the closest supported language, or the fallback.
func match(tag language.Tag) language.Tag {
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return supported[0]
	}
	return supported[idx]
}

func tableFor(tag language.Tag) *names {
	return tables[match(tag)]
}

// DisplayLanguage returns the supported language captions are rendered in.
func (c Calendar) DisplayLanguage() language.Tag {
	return match(c.Language)
}

// WeekdayName maps Sunday=1 through Saturday=7 to a name in the calendar
// language. Any other number yields "".
func (c Calendar) WeekdayName(weekday int) string {
	if weekday < 1 || weekday > 7 {
		return ""
	}
	return tableFor(c.Language).weekdays[weekday-1]
}

// DateString formats the year, month and day of comp for the date caption.
func (c Calendar) DateString(comp Components) string {
	n := tableFor(c.Language)
	return n.date(n, comp)
}

// ParseLanguage parses a BCP 47 tag such as "ru", "en-US" or "zh-Hans".
func ParseLanguage(s string) (language.Tag, error) {
	tag, err := language.Parse(s)
	if err != nil {
		return language.Und, errors.New("calendar.ParseLanguage", errors.KindConfig,
			fmt.Errorf("language %q: %w", s, err))
	}
	return tag, nil
}
