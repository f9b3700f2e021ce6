package finsight

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

const readDateFormat = "2006-1-2" // Permissive read date format (allows single-digit month/day).

// DateFormat is the format used to represent dates as strings in ISO-8601 format.
const DateFormat = "2006-01-02" // write date format

// Date represents a date with day-level granularity.
type Date struct {
	y int        // year
	m time.Month // month
	d int        // day
}

// NewDate returns a normalized Date for the given year, month, and day.
func NewDate(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// time returns a time.Time that is a canonical representation of that day (at midnight UTC).
func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// Year returns current year.
func (d Date) Year() int { return d.y }

// Month returns the month of the date.
func (d Date) Month() time.Month { return d.time().Month() }

// Day returns current day of the month.
func (d Date) Day() int { return d.d }

// String format the date in its standard format.
func (d Date) String() string { return d.time().Format(DateFormat) }

// Format returns a textual representation of the date value formatted according
// to the layout defined by the argument. See the documentation for [time.Format].
func (d Date) Format(format string) string { return d.time().Format(format) }

// IsZero returns true if the date is the zero value.
func (d Date) IsZero() bool { return d.y == 0 && d.m == 0 && d.d == 0 }

// Before reports whether the day d is before x.
func (d Date) Before(x Date) bool { return d.time().Before(x.time()) }

// After reports whether the day d is after x.
func (d Date) After(x Date) bool { return d.time().After(x.time()) }

// Today returns the current date.
func Today() Date { return NewDate(time.Now().Date()) }

// Add returns a new Date with the given number of days added.
func (d Date) Add(i int) Date { return NewDate(d.y, d.m, d.d+i) }

// Sub returns the number of calendar days from x to d. It is negative when d
// is before x.
func (d Date) Sub(x Date) int { return int(d.time().Sub(x.time()).Hours() / 24) }

// ParseDate parses a Date from a string. It is lenient and accepts formats
// like "2025-7-1".
func ParseDate(str string) (Date, error) {
	on, err := time.Parse(readDateFormat, strings.TrimSpace(str))
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q want format %q: %w", str, DateFormat, err)
	}
	return NewDate(on.Date()), nil
}

// MustParseDate is like ParseDate but panics on error.
func MustParseDate(str string) Date {
	d, err := ParseDate(str)
	if err != nil {
		panic(err.Error())
	}
	return d
}

// UnmarshalJSON implements the json specific way to unmarshall a date from a json string.
func (j *Date) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	d, err := ParseDate(str)
	if err != nil {
		return err
	}
	*j = d
	return nil
}

// MarshalJSON implements the json.Marshaler interface for Date.
func (j Date) MarshalJSON() ([]byte, error) {
	str := j.String()
	return json.Marshal(&str)
}

// check that a Date pointer is a valid json marshall/unmarshaller type.
var _ json.Marshaler = (*Date)(nil)
var _ json.Unmarshaler = (*Date)(nil)

// Month identifies a calendar month (year and month, no day). It is the
// grouping key for monthly aggregations.
type CalendarMonth struct {
	y int
	m time.Month
}

// MonthOf returns the calendar month containing d.
func MonthOf(d Date) CalendarMonth { return CalendarMonth{y: d.y, m: d.m} }

// Year returns the month's year.
func (c CalendarMonth) Year() int { return c.y }

// Month returns the month within the year.
func (c CalendarMonth) Month() time.Month { return c.m }

// Before reports whether the month c is before x.
func (c CalendarMonth) Before(x CalendarMonth) bool {
	return c.y < x.y || (c.y == x.y && c.m < x.m)
}

// String formats the month as "2006-01".
func (c CalendarMonth) String() string {
	return time.Date(c.y, c.m, 1, 0, 0, 0, 0, time.UTC).Format("2006-01")
}

// First returns the first day of the month.
func (c CalendarMonth) First() Date { return NewDate(c.y, c.m, 1) }
