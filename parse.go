// Package dttm resolves loosely formatted date/time text into canonical
// temporal values and manipulates them by datepart: unit-parameterized
// extraction, calendar arithmetic, truncation and formatting for
// row-oriented data pipelines. Ambiguous numeric dates lean month-first
// unless configured otherwise; a month slot out of range falls back to
// day-first on its own.
package dttm

import (
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/cockroachdb/errors"
)

// ParserOption mutates parser configuration prior to a parse.
type ParserOption func(*parser) error

// PreferMonthFirst sets the field order used for ambiguous numeric dates
// such as 03/04/2000. The default is month-first (US convention).
func PreferMonthFirst(preferMonthFirst bool) ParserOption {
	return func(p *parser) error {
		p.preferMonthFirst = preferMonthFirst
		return nil
	}
}

// WithZoneTable supplies the abbreviation table used to resolve named
// timezone tokens such as "EST". A nil table keeps the bundled default.
func WithZoneTable(zt *ZoneTable) ParserOption {
	return func(p *parser) error {
		if zt != nil {
			p.zones = zt
		}
		return nil
	}
}

// WithReferenceTime fixes the instant used for the now/today keywords and
// for completing inputs that omit the year or the whole date. Defaults to
// time.Now(); tests pass a constant here.
func WithReferenceTime(ref time.Time) ParserOption {
	return func(p *parser) error {
		p.ref = ref
		return nil
	}
}

type parser struct {
	preferMonthFirst bool
	zones            *ZoneTable
	ref              time.Time
}

func newParser(opts ...ParserOption) (*parser, error) {
	p := &parser{preferMonthFirst: true, zones: defaultZones}
	for _, opt := range opts {
		if err := opt(p); err != nil {
			return nil, err
		}
	}
	if p.ref.IsZero() {
		p.ref = time.Now()
	}
	return p, nil
}

// Parse resolves free text into a Temporal. Strategies run in a fixed
// order, first success wins:
//
//  1. explicit patterns: all-digit forms by length, then a ranked layout
//     list covering ISO-8601 and the common US/European orderings;
//  2. token heuristics: month/weekday names, ordinal day markers, times
//     with optional am/pm and fractional seconds, timezone tokens, and
//     bare numbers classified by magnitude; unrecognized filler words are
//     ignored, so "December 31st in 1999" resolves;
//  3. the keywords "now" and "today".
//
// Fields the text omits are completed from the reference time: every field
// coarser than the coarsest one present is taken from it, finer fields
// take their minimum (midnight, first day of month). Text no strategy can
// turn into a calendar-valid instant reports ErrUnparseableTemporal.
func Parse(text string, opts ...ParserOption) (Temporal, error) {
	p, err := newParser(opts...)
	if err != nil {
		return Temporal{}, err
	}
	return p.parse(text)
}

// MustParse is Parse, panicking on failure. For tests and package setup.
func MustParse(text string, opts ...ParserOption) Temporal {
	t, err := Parse(text, opts...)
	if err != nil {
		panic(err)
	}
	return t
}

// ParseFormatted resolves text against a single explicit Go layout, with
// none of Parse's guessing. Fields absent from the layout take Go's zero
// values, so a layout without a year cannot produce a representable value.
func ParseFormatted(text, layout string) (Temporal, error) {
	tt, err := time.Parse(layout, text)
	if err != nil {
		return Temporal{}, errors.Wrapf(ErrUnparseableTemporal, "%q with layout %q: %v", text, layout, err)
	}
	return fromParsedTime(tt, text)
}

// fromParsedTime converts a stdlib parse result, carrying its offset only
// when nonzero: an explicit +00:00 or Z normalizes to an offset-free value
// with the same instant.
func fromParsedTime(tt time.Time, src string) (Temporal, error) {
	_, off := tt.Zone()
	y, mo, d := tt.Date()
	h, mi, s := tt.Clock()
	return compose(y, mo, d, h, mi, s, tt.Nanosecond()/1000, int32(off/60), off != 0, src)
}

func (p *parser) parse(text string) (Temporal, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return Temporal{}, errors.Wrapf(ErrUnparseableTemporal, "%q", text)
	}
	if isDigits(s) {
		if t, ok := p.parseAllDigits(s, text); ok {
			return t, nil
		}
		return Temporal{}, errors.Wrapf(ErrUnparseableTemporal, "%q", text)
	}
	if t, ok := p.parseLayouts(s, text); ok {
		return t, nil
	}
	if t, ok := p.parseTokens(s, text); ok {
		return t, nil
	}
	switch strings.ToLower(s) {
	case "now":
		return naiveFromTime(p.ref, text)
	case "today":
		y, mo, d := p.ref.Date()
		return compose(y, mo, d, 0, 0, 0, 0, 0, false, text)
	}
	return Temporal{}, errors.Wrapf(ErrUnparseableTemporal, "%q", text)
}

// parseAllDigits interprets an all-numeric input by length: 4 digits is a
// year, 6 yyyymm, 8 yyyymmdd, 14 yyyymmddhhmmss; 10, 13, 16 and 19 digits
// are Unix seconds, milli-, micro- and nanoseconds.
func (p *parser) parseAllDigits(s, src string) (Temporal, bool) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return Temporal{}, false
	}
	var t Temporal
	switch len(s) {
	case 4:
		t, err = compose(int(n), time.January, 1, 0, 0, 0, 0, 0, false, src)
	case 6:
		y, mo := int(n/100), int(n%100)
		if mo < 1 || mo > 12 {
			return Temporal{}, false
		}
		t, err = compose(y, time.Month(mo), 1, 0, 0, 0, 0, 0, false, src)
	case 8:
		y, mo, d := int(n/10000), int(n/100%100), int(n%100)
		if !validYMD(y, mo, d) {
			return Temporal{}, false
		}
		t, err = compose(y, time.Month(mo), d, 0, 0, 0, 0, 0, false, src)
	case 14:
		y, mo, d := int(n/10000000000), int(n/100000000%100), int(n/1000000%100)
		h, mi, sec := int(n/10000%100), int(n/100%100), int(n%100)
		if !validYMD(y, mo, d) || h > 23 || mi > 59 || sec > 59 {
			return Temporal{}, false
		}
		t, err = compose(y, time.Month(mo), d, h, mi, sec, 0, 0, false, src)
	case 10:
		t = Temporal{us: n * usPerSecond, src: src}
	case 13:
		t = Temporal{us: n * 1000, src: src}
	case 16:
		t = Temporal{us: n, src: src}
	case 19:
		t = Temporal{us: n / 1000, src: src}
	default:
		return Temporal{}, false
	}
	return t, err == nil
}

func validYMD(y, mo, d int) bool {
	return y >= minYear && y <= maxYear &&
		mo >= 1 && mo <= 12 &&
		d >= 1 && d <= daysIn(y, time.Month(mo))
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}

// layoutPattern is one entry of the ranked explicit-format list. swapped
// holds the day-first variant of an ambiguous numeric ordering; the
// preferred variant is tried first and the other on failure, which is what
// lets 31/12/1999 parse under the month-first default. timeOnly patterns
// take their date, and noYear patterns their year, from the reference time.
type layoutPattern struct {
	layout   string
	swapped  string
	timeOnly bool
	noYear   bool
}

var rankedLayouts = []layoutPattern{
	// ISO-8601 and this package's own display output.
	{layout: "2006-01-02T15:04:05.999999999Z07:00"},
	{layout: "2006-01-02T15:04:05.999999999Z0700"},
	{layout: "2006-01-02T15:04:05.999999999"},
	{layout: "2006-01-02T15:04Z07:00"},
	{layout: "2006-01-02T15:04"},
	{layout: "2006-01-02 15:04:05.999999999Z07:00"},
	{layout: "2006-01-02 15:04:05.999999999Z0700"},
	{layout: "2006-01-02 15:04:05.999999999 Z07:00"},
	{layout: "2006-01-02 15:04:05.999999999 Z0700"},
	{layout: "2006-01-02 15:04:05.999999999 -0700 MST"},
	{layout: "2006-01-02 15:04:05.999999999"},
	{layout: "2006-01-02 15:04"},
	{layout: "2006-01-02"},
	{layout: "2006-1-2 15:04:05.999999999"},
	{layout: "2006-1-2"},
	{layout: "2006/01/02 15:04:05.999999999"},
	{layout: "2006/01/02"},
	{layout: "2006/1/2 15:04:05.999999999"},
	{layout: "2006/1/2"},

	// US and European numeric orderings: month-first in the first slot,
	// day-first in the swap slot.
	{layout: "1/2/2006 15:04:05.999999999", swapped: "2/1/2006 15:04:05.999999999"},
	{layout: "1/2/2006 15:04", swapped: "2/1/2006 15:04"},
	{layout: "1/2/2006 3:04:05 PM", swapped: "2/1/2006 3:04:05 PM"},
	{layout: "1/2/2006 3:04:05 pm", swapped: "2/1/2006 3:04:05 pm"},
	{layout: "1/2/2006 3:04 PM", swapped: "2/1/2006 3:04 PM"},
	{layout: "1/2/2006 3:04 pm", swapped: "2/1/2006 3:04 pm"},
	{layout: "1/2/2006", swapped: "2/1/2006"},
	{layout: "1/2/06", swapped: "2/1/06"},
	{layout: "1-2-2006 15:04:05.999999999", swapped: "2-1-2006 15:04:05.999999999"},
	{layout: "1-2-2006", swapped: "2-1-2006"},
	{layout: "1.2.2006", swapped: "2.1.2006"},
	{layout: "1/2", swapped: "2/1", noYear: true},

	// Month-name forms. Go matches the names case-insensitively.
	{layout: "Jan 2, 2006 15:04:05"},
	{layout: "Jan 2, 2006 3:04:05 PM"},
	{layout: "Jan 2, 2006 3:04:05 pm"},
	{layout: "Jan 2, 2006"},
	{layout: "Jan 2 2006 15:04:05"},
	{layout: "Jan 2 2006"},
	{layout: "January 2, 2006 15:04:05"},
	{layout: "January 2, 2006"},
	{layout: "January 2 2006"},
	{layout: "2 Jan 2006 15:04:05"},
	{layout: "2 Jan 2006"},
	{layout: "2 January 2006"},
	{layout: "Jan 2", noYear: true},
	{layout: "January 2", noYear: true},

	// Weekday-led forms, RFC1123 with and without numeric zone. The
	// stdlib does not require the weekday to match the date, and neither
	// does this package.
	{layout: "Mon, 2 Jan 2006 15:04:05 -0700"},
	{layout: "Mon, 2 Jan 2006 15:04:05 Z07:00"},
	{layout: "Mon, 2 Jan 2006 15:04:05"},
	{layout: "Mon, 2 Jan 2006"},
	{layout: "Mon Jan 2 15:04:05 2006"},
	{layout: "Mon Jan 02 15:04:05 -0700 2006"},
	{layout: "Monday, Jan 2, 2006"},
	{layout: "Monday, Jan 2 2006"},
	{layout: "Monday, January 2, 2006"},
	{layout: "Monday, January 2 2006"},
	{layout: "Monday, 2 Jan 2006"},
	{layout: "Monday, 2 January 2006"},

	// Time of day alone; the date comes from the reference time.
	{layout: "15:04:05.999999999", timeOnly: true},
	{layout: "15:04", timeOnly: true},
	{layout: "3:04:05 PM", timeOnly: true},
	{layout: "3:04:05 pm", timeOnly: true},
	{layout: "3:04 PM", timeOnly: true},
	{layout: "3:04 pm", timeOnly: true},
	{layout: "3:04PM", timeOnly: true},
	{layout: "3:04pm", timeOnly: true},
	{layout: "3:04:05", timeOnly: true},
	{layout: "3:04", timeOnly: true},
}

func (p *parser) parseLayouts(s, src string) (Temporal, bool) {
	for _, lp := range rankedLayouts {
		first, second := lp.layout, lp.swapped
		if !p.preferMonthFirst && second != "" {
			first, second = second, first
		}
		tt, err := time.Parse(first, s)
		if err != nil && second != "" {
			tt, err = time.Parse(second, s)
		}
		if err != nil {
			continue
		}
		if t, ok := p.finishLayout(lp, tt, src); ok {
			return t, true
		}
	}
	return Temporal{}, false
}

func (p *parser) finishLayout(lp layoutPattern, tt time.Time, src string) (Temporal, bool) {
	_, off := tt.Zone()
	y, mo, d := tt.Date()
	h, mi, s := tt.Clock()
	if lp.timeOnly {
		y, mo, d = p.ref.Date()
	}
	if lp.noYear {
		y = p.ref.Year()
	}
	t, err := compose(y, mo, d, h, mi, s, tt.Nanosecond()/1000, int32(off/60), off != 0, src)
	return t, err == nil
}

// --- token heuristic --------------------------------------------------------

// numChunk is a bare number awaiting interpretation: its magnitude and
// digit count decide whether it is a year, a day or a month once the
// textual anchors are known.
type numChunk struct {
	v       int
	digits  int
	ordinal bool // carried an ordinal suffix such as 25th: always a day
}

// tokenFields accumulates what the token scan recognized. year, month, day
// and hour use -1 for "not seen".
type tokenFields struct {
	year, month, day int
	hour, min, sec   int
	micro            int
	hasDate          bool
	hasTime          bool
	ampm             int // 0 none, 1 am, 2 pm
	weekday          time.Weekday
	hasWeekday       bool
	offsetMin        int
	hasOffset        bool
}

// parseTokens assembles a value from whatever date/time fields appear in
// the text, skipping words it does not recognize. The input is tokenized
// in a single left-to-right pass; bare numbers are buffered and
// interpreted afterwards, once month names and similar anchors are known.
func (p *parser) parseTokens(s, src string) (Temporal, bool) {
	f := tokenFields{year: -1, month: -1, day: -1, hour: -1}
	var chunks []numChunk

	toks := strings.FieldsFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || r == ','
	})
	for _, tok := range toks {
		tok = strings.Trim(tok, "()[]")
		tok = strings.TrimRight(tok, ".;")
		if tok == "" {
			continue
		}
		if !p.scanToken(tok, &f, &chunks) {
			return Temporal{}, false
		}
	}
	if !interpretChunks(chunks, p.preferMonthFirst, &f) {
		return Temporal{}, false
	}
	return p.assemble(f, src)
}

// scanToken classifies one token. Returning false abandons the strategy:
// conflicting fields are an explicit failure, never a guess. Unrecognized
// words return true and contribute nothing.
func (p *parser) scanToken(tok string, f *tokenFields, chunks *[]numChunk) bool {
	// Times carry a colon. Trailing am/pm or a glued numeric offset may
	// ride along: 23:59:59+05:00, 11:59pm.
	if i := strings.IndexByte(tok, ':'); i > 0 && isDigits(tok[:i]) {
		return p.scanClock(tok, f)
	}

	if isDigits(tok) {
		if len(tok) > 4 {
			return true // not a calendar field; skip
		}
		v, _ := strconv.Atoi(tok)
		*chunks = append(*chunks, numChunk{v: v, digits: len(tok)})
		return true
	}

	// Abbreviated years: '70.
	if len(tok) == 3 && tok[0] == '\'' && isDigits(tok[1:]) {
		v, _ := strconv.Atoi(tok[1:])
		*chunks = append(*chunks, numChunk{v: pivotYear(v), digits: 4})
		return true
	}

	// 25th, 1st, 2nd, 3rd.
	if v, digits, ok := trimOrdinal(tok); ok {
		*chunks = append(*chunks, numChunk{v: v, digits: digits, ordinal: true})
		return true
	}

	// 4pm, 11am.
	if h, mer, ok := splitMeridiem(tok); ok && isDigits(h) && len(h) <= 2 {
		if f.hasTime || f.hour >= 0 {
			return false
		}
		f.hour, _ = strconv.Atoi(h)
		f.hasTime = true
		return setMeridiem(f, mer)
	}

	// Numeric offsets and the Z suffix.
	if tok[0] == '+' || tok[0] == '-' || tok == "Z" || tok == "z" {
		if min, ok := parseOffsetMinutes(tok); ok {
			if f.hasOffset {
				return false
			}
			f.offsetMin, f.hasOffset = min, true
		}
		return true // unparseable sign tokens are stray punctuation
	}

	// Zone names glued to an offset: UTC-05, GMT+0100, PST-0700. The numeric
	// part is authoritative; the name is a label.
	if i := strings.IndexAny(tok, "+-"); i > 0 && isAlpha(tok[:i]) {
		if min, ok := parseOffsetMinutes(tok[i:]); ok {
			if f.hasOffset {
				return false
			}
			f.offsetMin, f.hasOffset = min, true
			return true
		}
	}

	// Dates written with separators inside one token: 12/31/1999.
	if sep := dateSeparator(tok); sep != 0 {
		parts := strings.Split(tok, string(sep))
		for _, part := range parts {
			if !isDigits(part) || len(part) > 4 {
				return true // not a date group after all
			}
		}
		for _, part := range parts {
			v, _ := strconv.Atoi(part)
			*chunks = append(*chunks, numChunk{v: v, digits: len(part)})
		}
		return true
	}

	word := strings.ToLower(tok)
	if m := strings.ReplaceAll(word, ".", ""); m == "am" || m == "pm" {
		return setMeridiem(f, m)
	}
	if mo, ok := monthNames[word]; ok {
		if f.month >= 0 {
			return false
		}
		f.month, f.hasDate = int(mo), true
		return true
	}
	if wd, ok := weekdayNames[word]; ok {
		if f.hasWeekday {
			return false
		}
		f.weekday, f.hasWeekday = wd, true
		return true
	}

	// Named zones are conventionally written upper-case; only such tokens
	// are tried against the zone table, so filler words stay filler. A zone
	// name after an explicit offset, as in "16:28:13 -0700 (MST)", is an
	// annotation and is ignored.
	if n := len(tok); n >= 2 && n <= 5 && tok == strings.ToUpper(tok) && isAlpha(tok) {
		if min, ok := p.zones.Offset(tok); ok && !f.hasOffset {
			f.offsetMin, f.hasOffset = min, true
			return true
		}
	}
	return true // fuzzy: unknown word, skip
}

// scanClock parses hh:mm, hh:mm:ss and hh:mm:ss.ffffff tokens, peeling any
// glued meridiem, offset or Z suffix first.
func (p *parser) scanClock(tok string, f *tokenFields) bool {
	if f.hasTime {
		return false
	}
	if h, mer, ok := splitMeridiem(tok); ok {
		if !setMeridiem(f, mer) {
			return false
		}
		tok = h
	}
	if i := strings.IndexAny(tok, "+-"); i > 0 {
		min, ok := parseOffsetMinutes(tok[i:])
		if !ok || f.hasOffset {
			return false
		}
		f.offsetMin, f.hasOffset = min, true
		tok = tok[:i]
	} else if strings.HasSuffix(tok, "Z") || strings.HasSuffix(tok, "z") {
		if f.hasOffset {
			return false
		}
		f.offsetMin, f.hasOffset = 0, true
		tok = tok[:len(tok)-1]
	}

	parts := strings.Split(tok, ":")
	if len(parts) < 2 || len(parts) > 3 || !isDigits(parts[0]) || !isDigits(parts[1]) {
		return false
	}
	h, _ := strconv.Atoi(parts[0])
	mi, _ := strconv.Atoi(parts[1])
	if mi > 59 {
		return false
	}
	sec, micro := 0, 0
	if len(parts) == 3 {
		ss := parts[2]
		if j := strings.IndexByte(ss, '.'); j >= 0 {
			var ok bool
			if micro, ok = parseFraction(ss[j+1:]); !ok {
				return false
			}
			ss = ss[:j]
		}
		if !isDigits(ss) {
			return false
		}
		if sec, _ = strconv.Atoi(ss); sec > 59 {
			return false
		}
	}
	f.hour, f.min, f.sec, f.micro, f.hasTime = h, mi, sec, micro, true
	return true
}

// interpretChunks assigns the buffered bare numbers: three or more digits
// make a year, values over 31 a two-digit year, values over 12 a day, and
// small values fill month/day/year in the configured preference order.
// A number that cannot be placed fails the strategy.
func interpretChunks(chunks []numChunk, monthFirst bool, f *tokenFields) bool {
	for _, c := range chunks {
		switch {
		case c.ordinal:
			if f.day >= 0 {
				return false
			}
			f.day, f.hasDate = c.v, true
		case c.digits >= 3:
			if f.year >= 0 {
				return false
			}
			f.year, f.hasDate = c.v, true
		case c.v > 31:
			if f.year >= 0 {
				return false
			}
			f.year, f.hasDate = pivotYear(c.v), true
		case c.v > 12:
			switch {
			case f.day < 0:
				f.day, f.hasDate = c.v, true
			case f.year < 0:
				f.year, f.hasDate = pivotYear(c.v), true
			default:
				return false
			}
		default:
			if !fillSmall(c, monthFirst, f) {
				return false
			}
		}
	}
	return true
}

func fillSmall(c numChunk, monthFirst bool, f *tokenFields) bool {
	if c.v == 0 {
		// Only plausible as the two-digit year 00.
		if c.digits == 2 && f.year < 0 {
			f.year, f.hasDate = 2000, true
			return true
		}
		return false
	}
	first, second := &f.month, &f.day
	if !monthFirst {
		first, second = second, first
	}
	switch {
	case *first < 0:
		*first = c.v
	case *second < 0:
		*second = c.v
	case f.year < 0:
		f.year = pivotYear(c.v)
	default:
		return false
	}
	f.hasDate = true
	return true
}

// assemble applies the completion rule and validates the calendar fields.
func (p *parser) assemble(f tokenFields, src string) (Temporal, bool) {
	if !f.hasDate && f.hasWeekday {
		// A weekday alone means the next such day, today included.
		y, mo, d := p.ref.Date()
		base := time.Date(y, mo, d, 0, 0, 0, 0, time.UTC)
		base = base.AddDate(0, 0, (int(f.weekday)-int(base.Weekday())+7)%7)
		f.year, f.month, f.day = base.Year(), int(base.Month()), base.Day()
		f.hasDate = true
	}
	if !f.hasDate && !f.hasTime {
		return Temporal{}, false
	}

	switch {
	case f.year >= 0:
		if f.month < 0 {
			f.month = 1
		}
		if f.day < 0 {
			f.day = 1
		}
	case f.month >= 0:
		f.year = p.ref.Year()
		if f.day < 0 {
			f.day = 1
		}
	case f.day >= 0:
		f.year, f.month = p.ref.Year(), int(p.ref.Month())
	default: // time only
		y, mo, d := p.ref.Date()
		f.year, f.month, f.day = y, int(mo), d
	}

	if f.hour < 0 {
		f.hour = 0
	}
	if f.ampm != 0 {
		if f.hour > 12 || f.hour == 0 {
			return Temporal{}, false
		}
		if f.hour == 12 {
			f.hour = 0
		}
		if f.ampm == 2 {
			f.hour += 12
		}
	}
	if !validYMD(f.year, f.month, f.day) || f.hour > 23 {
		return Temporal{}, false
	}

	hasOff := f.hasOffset && f.offsetMin != 0
	off := int32(0)
	if hasOff {
		off = int32(f.offsetMin)
	}
	t, err := compose(f.year, time.Month(f.month), f.day, f.hour, f.min, f.sec, f.micro, off, hasOff, src)
	return t, err == nil
}

// --- token helpers ----------------------------------------------------------

var monthNames = map[string]time.Month{
	"jan": time.January, "january": time.January,
	"feb": time.February, "february": time.February,
	"mar": time.March, "march": time.March,
	"apr": time.April, "april": time.April,
	"may": time.May,
	"jun": time.June, "june": time.June,
	"jul": time.July, "july": time.July,
	"aug": time.August, "august": time.August,
	"sep": time.September, "sept": time.September, "september": time.September,
	"oct": time.October, "october": time.October,
	"nov": time.November, "november": time.November,
	"dec": time.December, "december": time.December,
}

var weekdayNames = map[string]time.Weekday{
	"sun": time.Sunday, "sunday": time.Sunday,
	"mon": time.Monday, "monday": time.Monday,
	"tue": time.Tuesday, "tues": time.Tuesday, "tuesday": time.Tuesday,
	"wed": time.Wednesday, "wednesday": time.Wednesday,
	"thu": time.Thursday, "thur": time.Thursday, "thurs": time.Thursday, "thursday": time.Thursday,
	"fri": time.Friday, "friday": time.Friday,
	"sat": time.Saturday, "saturday": time.Saturday,
}

// pivotYear widens a two-digit year: 69-99 land in the 1900s, 00-68 in the
// 2000s, the same pivot the stdlib layout "06" uses.
func pivotYear(v int) int {
	if v >= 69 {
		return 1900 + v
	}
	return 2000 + v
}

func trimOrdinal(tok string) (v, digits int, ok bool) {
	t := strings.ToLower(tok)
	for _, suf := range [...]string{"st", "nd", "rd", "th"} {
		if body, found := strings.CutSuffix(t, suf); found && isDigits(body) && len(body) <= 2 {
			v, _ = strconv.Atoi(body)
			return v, len(body), true
		}
	}
	return 0, 0, false
}

// splitMeridiem peels a glued am/pm suffix: "11:59pm" returns ("11:59",
// "pm", true). Bare meridiem words never match (body would be empty).
func splitMeridiem(tok string) (rest, mer string, ok bool) {
	low := strings.ToLower(tok)
	for _, suf := range [...]string{"am", "pm"} {
		if body, found := strings.CutSuffix(low, suf); found && body != "" {
			return tok[:len(body)], suf, true
		}
	}
	return "", "", false
}

func setMeridiem(f *tokenFields, mer string) bool {
	want := 1
	if mer[0] == 'p' {
		want = 2
	}
	if f.ampm != 0 && f.ampm != want {
		return false
	}
	f.ampm = want
	return true
}

// dateSeparator reports the separator of a digits-and-separators date
// group such as 12/31/1999 or 31.12.1999, or 0 when tok is no such group.
func dateSeparator(tok string) byte {
	for _, sep := range [...]byte{'/', '-', '.'} {
		if strings.Count(tok, string(sep)) == 2 && isDigits(strings.ReplaceAll(tok, string(sep), "")) {
			return sep
		}
	}
	return 0
}

func isAlpha(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return len(s) > 0
}

// parseFraction converts up to nine fractional-second digits to whole
// microseconds.
func parseFraction(frac string) (int, bool) {
	if frac == "" || len(frac) > 9 || !isDigits(frac) {
		return 0, false
	}
	n, _ := strconv.Atoi(frac)
	for i := len(frac); i < 6; i++ {
		n *= 10
	}
	for i := len(frac); i > 6; i-- {
		n /= 10
	}
	return n, true
}

// parseOffsetMinutes reads a numeric timezone offset token: Z, ±H, ±HH,
// ±HHMM or ±HH:MM.
func parseOffsetMinutes(s string) (int, bool) {
	if s == "Z" || s == "z" {
		return 0, true
	}
	if len(s) < 2 {
		return 0, false
	}
	sign := 1
	switch s[0] {
	case '+':
	case '-':
		sign = -1
	default:
		return 0, false
	}
	rest := s[1:]
	var h, m int
	if i := strings.IndexByte(rest, ':'); i >= 0 {
		if i == 0 || len(rest)-i-1 != 2 || !isDigits(rest[:i]) || !isDigits(rest[i+1:]) {
			return 0, false
		}
		h, _ = strconv.Atoi(rest[:i])
		m, _ = strconv.Atoi(rest[i+1:])
	} else {
		if !isDigits(rest) {
			return 0, false
		}
		switch len(rest) {
		case 1, 2:
			h, _ = strconv.Atoi(rest)
		case 4:
			h, _ = strconv.Atoi(rest[:2])
			m, _ = strconv.Atoi(rest[2:])
		default:
			return 0, false
		}
	}
	if h > 18 || m > 59 {
		return 0, false
	}
	return sign * (h*60 + m), true
}
