package dttm

import (
	"github.com/cockroachdb/errors"
)

// Calendar field accessors. All of them read the wall clock (the carried
// offset applied), mirroring how the value displays; Epoch alone reads the
// normalized instant.

// Year returns the calendar year, 1-9999.
func (t Temporal) Year() int { y, _, _, _, _, _, _ := t.fields(); return y }

// Month returns the month, 1-12.
func (t Temporal) Month() int { _, mo, _, _, _, _, _ := t.fields(); return int(mo) }

// Day returns the day of month, 1-31.
func (t Temporal) Day() int { _, _, d, _, _, _, _ := t.fields(); return d }

// Hour returns the hour, 0-23.
func (t Temporal) Hour() int { _, _, _, h, _, _, _ := t.fields(); return h }

// Minute returns the minute, 0-59.
func (t Temporal) Minute() int { _, _, _, _, mi, _, _ := t.fields(); return mi }

// Second returns the second, 0-59.
func (t Temporal) Second() int { _, _, _, _, _, s, _ := t.fields(); return s }

// Microsecond returns the microsecond within the second, 0-999999.
func (t Temporal) Microsecond() int { _, _, _, _, _, _, us := t.fields(); return us }

// Quarter returns the quarter, 1-4.
func (t Temporal) Quarter() int { return (t.Month()-1)/3 + 1 }

// YearDay returns the ordinal day within the year, 1-366.
func (t Temporal) YearDay() int { return t.wall().YearDay() }

// Weekday returns the day of week with Monday=1 through Sunday=7. Both the
// weekday and day_of_week alias families use this numbering.
func (t Temporal) Weekday() int {
	return (int(t.wall().Weekday())+6)%7 + 1
}

// Week returns the Monday-start ordinal week of the year. Days before the
// year's first Monday fall in week 0, so the range is 0-53.
func (t Temporal) Week() int {
	w := t.wall()
	dowMon0 := (int(w.Weekday()) + 6) % 7
	return (w.YearDay() + 6 - dowMon0) / 7
}

// ISOWeek returns the ISO-8601 week number: weeks start Monday and week 1
// contains the year's first Thursday.
func (t Temporal) ISOWeek() int {
	_, w := t.wall().ISOWeek()
	return w
}

// Epoch returns floor seconds since 1970-01-01T00:00:00Z, negative for
// instants before it.
func (t Temporal) Epoch() int64 { return floorDiv(t.us, usPerSecond) }

// TZOffsetMinutes returns the carried display offset in minutes east of
// UTC, 0 when the value carries none.
func (t Temporal) TZOffsetMinutes() int { return int(t.offsetMin) }

// WeekdayName returns the English weekday name, "Monday" through "Sunday".
func (t Temporal) WeekdayName() string { return t.wall().Weekday().String() }

// MonthName returns the English month name, "January" through "December".
func (t Temporal) MonthName() string { return t.wall().Month().String() }

// Extract returns the integer value of unit for v. DayName is the one
// string-valued unit and is served by DateName instead; asking for it here
// reports ErrInvalidUnitForOperation.
func Extract(unit Datepart, v Temporal) (int64, error) {
	switch unit {
	case Year:
		return int64(v.Year()), nil
	case Quarter:
		return int64(v.Quarter()), nil
	case Month:
		return int64(v.Month()), nil
	case DayOfYear:
		return int64(v.YearDay()), nil
	case Day:
		return int64(v.Day()), nil
	case Week:
		return int64(v.Week()), nil
	case WeekdayNumber, DayOfWeek:
		return int64(v.Weekday()), nil
	case Hour:
		return int64(v.Hour()), nil
	case Minute:
		return int64(v.Minute()), nil
	case Second:
		return int64(v.Second()), nil
	case Microsecond:
		return int64(v.Microsecond()), nil
	case Epoch:
		return v.Epoch(), nil
	case TZOffset:
		return int64(v.TZOffsetMinutes()), nil
	case ISOWeek:
		return int64(v.ISOWeek()), nil
	case DayName:
		return 0, errors.Wrapf(ErrInvalidUnitForOperation, "extract %s yields a name, use date_name", unit)
	default:
		return 0, errors.Wrapf(ErrUnknownDatepart, "datepart %d", unit)
	}
}
