package enums

import "fmt"

// Weekday is the delivery day picked on the order form. The zero value means
// the customer has not chosen one yet.
type Weekday string

const (
	WeekdayMonday    Weekday = "monday"
	WeekdayTuesday   Weekday = "tuesday"
	WeekdayWednesday Weekday = "wednesday"
	WeekdayThursday  Weekday = "thursday"
	WeekdayFriday    Weekday = "friday"
	WeekdaySaturday  Weekday = "saturday"
	WeekdaySunday    Weekday = "sunday"
)

var validWeekdays = []Weekday{
	WeekdayMonday,
	WeekdayTuesday,
	WeekdayWednesday,
	WeekdayThursday,
	WeekdayFriday,
	WeekdaySaturday,
	WeekdaySunday,
}

var weekdayLabels = map[Weekday]string{
	WeekdayMonday:    "Понедельник",
	WeekdayTuesday:   "Вторник",
	WeekdayWednesday: "Среда",
	WeekdayThursday:  "Четверг",
	WeekdayFriday:    "Пятница",
	WeekdaySaturday:  "Суббота",
	WeekdaySunday:    "Воскресенье",
}

// Weekdays returns the pickable days in calendar order starting on Monday.
func Weekdays() []Weekday {
	out := make([]Weekday, len(validWeekdays))
	copy(out, validWeekdays)
	return out
}

// String implements fmt.Stringer.
func (d Weekday) String() string {
	return string(d)
}

// Label is the storefront display name.
func (d Weekday) Label() string {
	return weekdayLabels[d]
}

// IsValid reports whether the value is a known Weekday.
func (d Weekday) IsValid() bool {
	for _, candidate := range validWeekdays {
		if candidate == d {
			return true
		}
	}
	return false
}

// ParseWeekday converts raw input into a Weekday.
func ParseWeekday(value string) (Weekday, error) {
	for _, candidate := range validWeekdays {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid weekday %q", value)
}
