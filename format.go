package dttm

import (
	"fmt"
	"time"
)

// Format renders v in the default display format: "2006-01-02 15:04:05"
// against the wall clock, with ".ffffff" microseconds appended when
// nonzero and a "±hh:mm" suffix when the value carries an offset. Parse
// recognizes every variant of this output, so Parse(Format(v)) always
// reproduces v's instant, though not necessarily its source text.
func Format(v Temporal) string {
	y, mo, d, h, mi, s, us := v.fields()
	out := fmt.Sprintf("%04d-%02d-%02d %02d:%02d:%02d", y, int(mo), d, h, mi, s)
	if us != 0 {
		out += fmt.Sprintf(".%06d", us)
	}
	if v.hasOffset {
		sign, om := byte('+'), int(v.offsetMin)
		if om < 0 {
			sign, om = '-', -om
		}
		out += fmt.Sprintf("%c%02d:%02d", sign, om/60, om%60)
	}
	return out
}

// FormatLayout renders v with an explicit Go layout. The value's offset,
// when carried, is visible to zone verbs in the layout; offset-free values
// render as UTC.
func FormatLayout(v Temporal, layout string) string {
	loc := time.UTC
	if v.hasOffset {
		loc = time.FixedZone("", int(v.offsetMin)*60)
	}
	return time.UnixMicro(v.us).In(loc).Format(layout)
}
