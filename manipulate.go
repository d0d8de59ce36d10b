package dttm

import (
	"math"
	"time"

	"github.com/cockroachdb/errors"
)

// DateAdd shifts v by amount units, negative amounts going backwards.
// Week and finer are fixed durations; Month, Quarter and Year move the
// calendar fields, clamping the day to the target month's length, so
// Jan 31 plus one month is the last day of February. That clamping makes
// month-family additions non-invertible from month ends.
//
// Units with no arithmetic meaning (DayOfYear, DayName, WeekdayNumber,
// DayOfWeek, Epoch, TZOffset, ISOWeek) report ErrInvalidUnitForOperation;
// results outside the representable years report ErrCalendarOverflow.
func DateAdd(unit Datepart, amount int64, v Temporal) (Temporal, error) {
	switch unit {
	case Year:
		months, ok := mulUnit(amount, 12)
		if !ok {
			return Temporal{}, errors.Wrapf(ErrCalendarOverflow, "adding %d years", amount)
		}
		return addCalendar(v, months)
	case Quarter:
		months, ok := mulUnit(amount, 3)
		if !ok {
			return Temporal{}, errors.Wrapf(ErrCalendarOverflow, "adding %d quarters", amount)
		}
		return addCalendar(v, months)
	case Month:
		return addCalendar(v, amount)
	case Week:
		return addFixed(v, amount, usPerWeek)
	case Day:
		return addFixed(v, amount, usPerDay)
	case Hour:
		return addFixed(v, amount, usPerHour)
	case Minute:
		return addFixed(v, amount, usPerMinute)
	case Second:
		return addFixed(v, amount, usPerSecond)
	case Microsecond:
		return addMicros(v, amount)
	case DayOfYear, DayName, WeekdayNumber, DayOfWeek, Epoch, TZOffset, ISOWeek:
		return Temporal{}, errors.Wrapf(ErrInvalidUnitForOperation, "date_add %s", unit)
	default:
		return Temporal{}, errors.Wrapf(ErrUnknownDatepart, "datepart %d", unit)
	}
}

// DateDiff counts unit boundaries crossed between start and end, signed by
// end minus start: each value is converted to the unit's granularity index
// and the indexes subtracted, so 23:59 to 00:01 is one hour and one day
// apart even though only two minutes elapsed. Valid units match DateAdd.
func DateDiff(unit Datepart, start, end Temporal) (int64, error) {
	switch unit {
	case Year:
		return int64(end.Year() - start.Year()), nil
	case Quarter:
		return quarterIndex(end) - quarterIndex(start), nil
	case Month:
		return monthIndex(end) - monthIndex(start), nil
	case Week:
		return weekIndex(end) - weekIndex(start), nil
	case Day:
		return wallBucket(end, usPerDay) - wallBucket(start, usPerDay), nil
	case Hour:
		return wallBucket(end, usPerHour) - wallBucket(start, usPerHour), nil
	case Minute:
		return wallBucket(end, usPerMinute) - wallBucket(start, usPerMinute), nil
	case Second:
		return wallBucket(end, usPerSecond) - wallBucket(start, usPerSecond), nil
	case Microsecond:
		return end.wallMicros() - start.wallMicros(), nil
	case DayOfYear, DayName, WeekdayNumber, DayOfWeek, Epoch, TZOffset, ISOWeek:
		return 0, errors.Wrapf(ErrInvalidUnitForOperation, "date_diff %s", unit)
	default:
		return 0, errors.Wrapf(ErrUnknownDatepart, "datepart %d", unit)
	}
}

// DateTrunc rounds v down to the start of unit, zeroing every finer field.
// Week and ISOWeek truncate to that week's Monday at midnight; Quarter to
// the first day of its first month. Units that are not truncation
// boundaries (Microsecond, TZOffset, DayOfYear, DayName, WeekdayNumber,
// DayOfWeek, Epoch) report ErrInvalidUnitForOperation.
func DateTrunc(unit Datepart, v Temporal) (Temporal, error) {
	y, mo, d, h, mi, s, _ := v.fields()
	switch unit {
	case Year:
		return compose(y, time.January, 1, 0, 0, 0, 0, v.offsetMin, v.hasOffset, v.src)
	case Quarter:
		first := time.Month((int(mo)-1)/3*3 + 1)
		return compose(y, first, 1, 0, 0, 0, 0, v.offsetMin, v.hasOffset, v.src)
	case Month:
		return compose(y, mo, 1, 0, 0, 0, 0, v.offsetMin, v.hasOffset, v.src)
	case Week, ISOWeek:
		w := v.wall()
		mon := w.AddDate(0, 0, -((int(w.Weekday()) + 6) % 7))
		return compose(mon.Year(), mon.Month(), mon.Day(), 0, 0, 0, 0, v.offsetMin, v.hasOffset, v.src)
	case Day:
		return compose(y, mo, d, 0, 0, 0, 0, v.offsetMin, v.hasOffset, v.src)
	case Hour:
		return compose(y, mo, d, h, 0, 0, 0, v.offsetMin, v.hasOffset, v.src)
	case Minute:
		return compose(y, mo, d, h, mi, 0, 0, v.offsetMin, v.hasOffset, v.src)
	case Second:
		return compose(y, mo, d, h, mi, s, 0, v.offsetMin, v.hasOffset, v.src)
	case Microsecond, TZOffset, DayOfYear, DayName, WeekdayNumber, DayOfWeek, Epoch:
		return Temporal{}, errors.Wrapf(ErrInvalidUnitForOperation, "date_trunc %s", unit)
	default:
		return Temporal{}, errors.Wrapf(ErrUnknownDatepart, "datepart %d", unit)
	}
}

// DateStartOf is DateTrunc under its pipeline name.
func DateStartOf(unit Datepart, v Temporal) (Temporal, error) {
	return DateTrunc(unit, v)
}

// DateEndOf returns the last representable instant within v's unit span:
// the start of the next span minus one microsecond. Leap years and month
// lengths come out of the calendar, never a day-count table. Valid units
// match DateTrunc.
func DateEndOf(unit Datepart, v Temporal) (Temporal, error) {
	switch unit {
	case Year, Quarter, Month, Week, ISOWeek, Day, Hour, Minute, Second:
	case Microsecond, TZOffset, DayOfYear, DayName, WeekdayNumber, DayOfWeek, Epoch:
		return Temporal{}, errors.Wrapf(ErrInvalidUnitForOperation, "date_end_of %s", unit)
	default:
		return Temporal{}, errors.Wrapf(ErrUnknownDatepart, "datepart %d", unit)
	}
	start, err := DateTrunc(unit, v)
	if err != nil {
		return Temporal{}, err
	}
	y, mo, d, h, mi, s, _ := start.fields()
	var next time.Time
	switch unit {
	case Year:
		next = time.Date(y+1, time.January, 1, 0, 0, 0, 0, time.UTC)
	case Quarter:
		next = time.Date(y, mo+3, 1, 0, 0, 0, 0, time.UTC)
	case Month:
		next = time.Date(y, mo+1, 1, 0, 0, 0, 0, time.UTC)
	case Week, ISOWeek:
		next = time.Date(y, mo, d+7, 0, 0, 0, 0, time.UTC)
	case Day:
		next = time.Date(y, mo, d+1, 0, 0, 0, 0, time.UTC)
	case Hour:
		next = time.Date(y, mo, d, h+1, 0, 0, 0, time.UTC)
	case Minute:
		next = time.Date(y, mo, d, h, mi+1, 0, 0, time.UTC)
	case Second:
		next = time.Date(y, mo, d, h, mi, s+1, 0, time.UTC)
	}
	return Temporal{
		us:        next.UnixMicro() - int64(start.offsetMin)*usPerMinute - 1,
		offsetMin: start.offsetMin,
		hasOffset: start.hasOffset,
		src:       start.src,
	}, nil
}

// DateName returns the English name for name-bearing units: the weekday
// name for DayName, the month name for Month. Every other unit reports
// ErrInvalidUnitForOperation.
func DateName(unit Datepart, v Temporal) (string, error) {
	switch unit {
	case DayName:
		return v.WeekdayName(), nil
	case Month:
		return v.MonthName(), nil
	case Year, Quarter, DayOfYear, Day, Week, WeekdayNumber, DayOfWeek,
		Hour, Minute, Second, Microsecond, Epoch, TZOffset, ISOWeek:
		return "", errors.Wrapf(ErrInvalidUnitForOperation, "date_name %s", unit)
	default:
		return "", errors.Wrapf(ErrUnknownDatepart, "datepart %d", unit)
	}
}

// Granularity indexes for DateDiff. Calendar units index off the wall
// fields; fixed units bucket the wall microseconds, flooring so pre-epoch
// boundaries count the same as post-epoch ones.

func monthIndex(t Temporal) int64 {
	y, mo, _, _, _, _, _ := t.fields()
	return int64(y)*12 + int64(mo) - 1
}

func quarterIndex(t Temporal) int64 {
	return int64(t.Year())*4 + int64(t.Quarter()) - 1
}

// weekIndex numbers Monday-start weeks from the epoch: 1970-01-01 was a
// Thursday, so its week began three days earlier.
func weekIndex(t Temporal) int64 {
	return floorDiv(floorDiv(t.wallMicros(), usPerDay)+3, 7)
}

func wallBucket(t Temporal, span int64) int64 {
	return floorDiv(t.wallMicros(), span)
}

func addFixed(v Temporal, amount, span int64) (Temporal, error) {
	us, ok := mulUnit(amount, span)
	if !ok {
		return Temporal{}, errors.Wrapf(ErrCalendarOverflow, "adding %d units of %dµs", amount, span)
	}
	return addMicros(v, us)
}

func mulUnit(amount, unit int64) (int64, bool) {
	if amount > math.MaxInt64/unit || amount < math.MinInt64/unit {
		return 0, false
	}
	return amount * unit, true
}
