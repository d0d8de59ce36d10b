package dttm

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// Datepart is a canonical unit of time granularity. Values are produced only
// by ResolveDatepart; the zero value is not a valid unit.
type Datepart uint8

const (
	Year Datepart = iota + 1
	Quarter
	Month
	DayOfYear
	DayName
	Day
	Week
	WeekdayNumber
	DayOfWeek
	Hour
	Minute
	Second
	Microsecond
	Epoch
	TZOffset
	ISOWeek
)

// datepartAliases is the authoritative alias vocabulary, in display order.
// The first alias of each unit is its canonical name.
var datepartAliases = []struct {
	unit    Datepart
	aliases []string
}{
	{Year, []string{"year", "yy", "yyyy"}},
	{Quarter, []string{"quarter", "qq", "q"}},
	{Month, []string{"month", "mm", "m"}},
	{DayOfYear, []string{"day_of_year", "dy", "y"}},
	{DayName, []string{"day_name", "dn"}},
	{Day, []string{"day", "dd", "d"}},
	{Week, []string{"week", "wk", "ww"}},
	{WeekdayNumber, []string{"weekday", "dw"}},
	{DayOfWeek, []string{"day_of_week", "dow"}},
	{Hour, []string{"hour", "hh"}},
	{Minute, []string{"minute", "mi", "n"}},
	{Second, []string{"second", "ss", "s"}},
	{Microsecond, []string{"microsecond", "mcs"}},
	{Epoch, []string{"epoch", "unix", "ep"}},
	{TZOffset, []string{"tzoffset", "tz"}},
	{ISOWeek, []string{"iso_week", "iso_wk", "isoww"}},
}

var aliasToDatepart = func() map[string]Datepart {
	m := make(map[string]Datepart, 48)
	for _, e := range datepartAliases {
		for _, a := range e.aliases {
			m[a] = e.unit
		}
	}
	return m
}()

// ResolveDatepart maps an alias string such as "year", "yy" or "yyyy" to its
// canonical unit. Matching is case-insensitive and ignores surrounding
// whitespace. Unknown aliases return ErrUnknownDatepart, never a guess.
func ResolveDatepart(alias string) (Datepart, error) {
	d, ok := aliasToDatepart[strings.ToLower(strings.TrimSpace(alias))]
	if !ok {
		return 0, errors.Wrapf(ErrUnknownDatepart, "%q", alias)
	}
	return d, nil
}

// Dateparts returns every canonical unit in display order.
func Dateparts() []Datepart {
	units := make([]Datepart, len(datepartAliases))
	for i, e := range datepartAliases {
		units[i] = e.unit
	}
	return units
}

// Aliases returns the accepted alias spellings for d, canonical name first.
func (d Datepart) Aliases() []string {
	for _, e := range datepartAliases {
		if e.unit == d {
			return e.aliases
		}
	}
	return nil
}

// String returns the canonical alias, or "invalid" for the zero value.
func (d Datepart) String() string {
	if a := d.Aliases(); len(a) > 0 {
		return a[0]
	}
	return "invalid"
}
