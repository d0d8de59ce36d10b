package dttm

import (
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromParts(t *testing.T) {
	ts, err := FromParts(2000, 2, 29, 23, 59, 59, 999999)
	require.NoError(t, err)
	want := time.Date(2000, 2, 29, 23, 59, 59, 999999000, time.UTC)
	assert.Equal(t, want.UnixMicro(), ts.UnixMicro())

	ts, err = FromParts(1, 1, 1, 0, 0, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, "0001-01-01 00:00:00", Format(ts))

	ts, err = FromParts(9999, 12, 31, 23, 59, 59, 999999)
	require.NoError(t, err)
	assert.Equal(t, "9999-12-31 23:59:59.999999", Format(ts))

	// Values never carry an offset or source text.
	_, ok := ts.Offset()
	assert.False(t, ok)
	assert.Equal(t, "", ts.Source())
}

func TestFromPartsRange(t *testing.T) {
	// year, month, day, hour, minute, second, microsecond
	for name, p := range map[string][7]int{
		"year zero":            {0, 1, 1, 0, 0, 0, 0},
		"year too large":       {10000, 1, 1, 0, 0, 0, 0},
		"month zero":           {2000, 0, 1, 0, 0, 0, 0},
		"month 13":             {2000, 13, 1, 0, 0, 0, 0},
		"day zero":             {2000, 1, 0, 0, 0, 0, 0},
		"feb 30":               {2000, 2, 30, 0, 0, 0, 0},
		"feb 29 non-leap":      {1999, 2, 29, 0, 0, 0, 0},
		"hour 24":              {2000, 1, 1, 24, 0, 0, 0},
		"minute 60":            {2000, 1, 1, 0, 60, 0, 0},
		"second 60":            {2000, 1, 1, 0, 0, 60, 0},
		"microsecond overflow": {2000, 1, 1, 0, 0, 0, 1000000},
		"negative hour":        {2000, 1, 1, -1, 0, 0, 0},
	} {
		_, err := FromParts(p[0], p[1], p[2], p[3], p[4], p[5], p[6])
		require.Error(t, err, name)
		assert.True(t, errors.Is(err, ErrCalendarOverflow), "%s: got %v", name, err)
	}
}

func TestFromTime(t *testing.T) {
	tt := time.Date(2009, 8, 12, 22, 15, 9, 123456000, time.FixedZone("X", 3600))
	ts := FromTime(tt)
	assert.Equal(t, tt.UnixMicro(), ts.UnixMicro())

	min, ok := ts.Offset()
	assert.True(t, ok)
	assert.Equal(t, 60, min)
	assert.Equal(t, "2009-08-12 22:15:09.123456+01:00", Format(ts))

	// A UTC time normalizes to an offset-free value, as in parsing.
	_, ok = FromTime(time.Date(2009, 8, 12, 22, 15, 9, 0, time.UTC)).Offset()
	assert.False(t, ok)
}

func TestTemporalComparisons(t *testing.T) {
	a := MustParse("2000-01-01 00:00:00")
	b := MustParse("2000-01-01 00:00:00.000001")
	assert.True(t, a.Before(b))
	assert.True(t, b.After(a))
	assert.False(t, a.Equal(b))

	// Comparison is by instant: the same moment written in two offsets is
	// one value.
	x := MustParse("2000-01-01T10:00:00+02:00")
	y := MustParse("2000-01-01T08:00:00Z")
	assert.True(t, x.Equal(y))
	assert.False(t, x.Before(y))
	assert.False(t, x.After(y))
}

func TestInstant(t *testing.T) {
	ts := MustParse("2009-08-12T22:15:09-07:00")
	want := time.Date(2009, 8, 12, 22, 15, 9, 0, time.FixedZone("", -7*3600))
	assert.True(t, ts.Instant().Equal(want))
	assert.Equal(t, time.UTC, ts.Instant().Location())
}

func TestTemporalString(t *testing.T) {
	ts := MustParse("12/31/1999")
	assert.Equal(t, Format(ts), ts.String())
	assert.Equal(t, "1999-12-31 00:00:00", ts.String())
}

func TestNowToday(t *testing.T) {
	now := Now()
	assert.GreaterOrEqual(t, now.Year(), 2024)
	_, ok := now.Offset()
	assert.False(t, ok)

	today := Today()
	assert.Equal(t, 0, today.Hour())
	assert.Equal(t, 0, today.Minute())
	assert.Equal(t, 0, today.Second())
	assert.Equal(t, 0, today.Microsecond())
	assert.Equal(t, now.Year(), today.Year())
}
