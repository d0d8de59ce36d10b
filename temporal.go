package dttm

import (
	"time"

	"github.com/cockroachdb/errors"
)

const (
	minYear = 1
	maxYear = 9999

	usPerSecond = int64(1000000)
	usPerMinute = 60 * usPerSecond
	usPerHour   = 60 * usPerMinute
	usPerDay    = 24 * usPerHour
	usPerWeek   = 7 * usPerDay
)

// Temporal is a resolved point in time: microseconds since
// 1970-01-01T00:00:00Z under the proleptic Gregorian calendar. An optional
// fixed offset, carried only when the source text declared one, is applied
// for display and for calendar-field reads; all duration arithmetic and
// comparison use the normalized instant. Values are immutable, comparable,
// and safe to share between goroutines.
type Temporal struct {
	us        int64
	offsetMin int32
	hasOffset bool
	src       string
}

// Instant returns the normalized instant in UTC.
func (t Temporal) Instant() time.Time { return time.UnixMicro(t.us).UTC() }

// UnixMicro returns microseconds since the Unix epoch, negative before 1970.
func (t Temporal) UnixMicro() int64 { return t.us }

// Offset returns the carried display offset in minutes east of UTC, and
// whether the value carries one at all.
func (t Temporal) Offset() (minutes int, ok bool) { return int(t.offsetMin), t.hasOffset }

// Source returns the original text the value was parsed from, if any.
func (t Temporal) Source() string { return t.src }

func (t Temporal) Equal(o Temporal) bool  { return t.us == o.us }
func (t Temporal) Before(o Temporal) bool { return t.us < o.us }
func (t Temporal) After(o Temporal) bool  { return t.us > o.us }

// String renders the value in the default display format. See Format.
func (t Temporal) String() string { return Format(t) }

// wallMicros is the instant shifted by the carried offset: the clock the
// value displays as, in microseconds since the epoch.
func (t Temporal) wallMicros() int64 {
	return t.us + int64(t.offsetMin)*usPerMinute
}

// wall returns the display clock as a time.Time in UTC so field reads see
// the shifted values.
func (t Temporal) wall() time.Time {
	return time.UnixMicro(t.wallMicros()).UTC()
}

// FromTime converts a time.Time, capturing its zone offset at that instant.
// A zero offset normalizes to an offset-free value, as in parsing.
func FromTime(tt time.Time) Temporal {
	_, off := tt.Zone()
	return Temporal{us: tt.UnixMicro(), offsetMin: int32(off / 60), hasOffset: off != 0}
}

// Now returns the current local wall-clock time as an offset-free value, the
// way a pipeline cell holding "now" would resolve.
func Now() Temporal {
	t, _ := naiveFromTime(time.Now(), "")
	return t
}

// Today returns the current local date at midnight, offset-free.
func Today() Temporal {
	y, mo, d := time.Now().Date()
	t, _ := compose(y, mo, d, 0, 0, 0, 0, 0, false, "")
	return t
}

// FromParts builds a value from explicit calendar fields. month is 1-12,
// micro 0-999999. Out-of-range fields, including a day that does not exist
// in the given month, report ErrCalendarOverflow.
func FromParts(year, month, day, hour, min, sec, micro int) (Temporal, error) {
	if year < minYear || year > maxYear {
		return Temporal{}, errors.Wrapf(ErrCalendarOverflow, "year %d", year)
	}
	if month < 1 || month > 12 {
		return Temporal{}, errors.Wrapf(ErrCalendarOverflow, "month %d", month)
	}
	if day < 1 || day > daysIn(year, time.Month(month)) {
		return Temporal{}, errors.Wrapf(ErrCalendarOverflow, "day %d of %d-%02d", day, year, month)
	}
	if hour < 0 || hour > 23 || min < 0 || min > 59 || sec < 0 || sec > 59 {
		return Temporal{}, errors.Wrapf(ErrCalendarOverflow, "time %02d:%02d:%02d", hour, min, sec)
	}
	if micro < 0 || micro > 999999 {
		return Temporal{}, errors.Wrapf(ErrCalendarOverflow, "microsecond %d", micro)
	}
	return compose(year, time.Month(month), day, hour, min, sec, micro, 0, false, "")
}

// naiveFromTime reads tt's wall-clock fields in its own location and builds
// an offset-free value from them.
func naiveFromTime(tt time.Time, src string) (Temporal, error) {
	y, mo, d := tt.Date()
	h, mi, s := tt.Clock()
	return compose(y, mo, d, h, mi, s, tt.Nanosecond()/1000, 0, false, src)
}

// fields decomposes the value's wall clock into calendar fields. Every
// extraction and truncation reads through here, so calendar math cannot
// drift between the two.
func (t Temporal) fields() (year int, month time.Month, day, hour, min, sec, micro int) {
	w := t.wall()
	year, month, day = w.Date()
	hour, min, sec = w.Clock()
	micro = w.Nanosecond() / 1000
	return
}

// compose builds a Temporal from wall-clock fields plus the display offset
// they are expressed in. Fields must already be calendar-valid; only the
// year range is checked here.
func compose(year int, month time.Month, day, hour, min, sec, micro int, offsetMin int32, hasOffset bool, src string) (Temporal, error) {
	if year < minYear || year > maxYear {
		return Temporal{}, errors.Wrapf(ErrCalendarOverflow, "year %d", year)
	}
	w := time.Date(year, month, day, hour, min, sec, micro*1000, time.UTC)
	return Temporal{
		us:        w.UnixMicro() - int64(offsetMin)*usPerMinute,
		offsetMin: offsetMin,
		hasOffset: hasOffset,
		src:       src,
	}, nil
}

// addMicros shifts the instant by n microseconds, keeping offset and source.
func addMicros(t Temporal, n int64) (Temporal, error) {
	r := t.us + n
	if (n > 0 && r < t.us) || (n < 0 && r > t.us) {
		return Temporal{}, errors.Wrapf(ErrCalendarOverflow, "adding %d microseconds", n)
	}
	out := Temporal{us: r, offsetMin: t.offsetMin, hasOffset: t.hasOffset, src: t.src}
	if y := out.wall().Year(); y < minYear || y > maxYear {
		return Temporal{}, errors.Wrapf(ErrCalendarOverflow, "year %d", y)
	}
	return out, nil
}

// addCalendar shifts the wall clock by whole months (years fold into
// months), clamping the day to the target month's length so Jan 31 plus one
// month lands on the last day of February.
func addCalendar(t Temporal, months int64) (Temporal, error) {
	if months > 12*(maxYear+1) || months < -12*(maxYear+1) {
		return Temporal{}, errors.Wrapf(ErrCalendarOverflow, "adding %d months", months)
	}
	y, mo, d, h, mi, s, us := t.fields()
	idx := int64(y)*12 + int64(mo-1) + months
	ny := floorDiv(idx, 12)
	nmo := time.Month(idx-ny*12) + 1
	if ny < minYear || ny > maxYear {
		return Temporal{}, errors.Wrapf(ErrCalendarOverflow, "year %d", ny)
	}
	if max := daysIn(int(ny), nmo); d > max {
		d = max
	}
	return compose(int(ny), nmo, d, h, mi, s, us, t.offsetMin, t.hasOffset, t.src)
}

// daysIn returns the number of days in the given month.
func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// floorDiv divides rounding toward negative infinity; b must be positive.
// Plain integer division truncates toward zero, which would merge the two
// granularity buckets on either side of a pre-epoch boundary.
func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}
