package dttm

import (
	"math"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFuncsRegistry(t *testing.T) {
	funcs := Funcs()
	for _, name := range []string{
		"parse_temporal", "now", "today",
		"year", "quarter", "month", "day", "hour", "minute", "second",
		"microsecond", "epoch", "date_part",
		"date_add", "date_diff", "date_trunc", "date_start_of",
		"date_end_of", "date_name",
	} {
		assert.Contains(t, funcs, name)
	}
	assert.Len(t, funcs, 19)
}

// TestUDFNullPropagation: a nil argument anywhere yields a nil result and
// no error, before arity or type checks get a say.
func TestUDFNullPropagation(t *testing.T) {
	for name, fn := range Funcs() {
		if name == "now" || name == "today" {
			continue
		}
		out, err := fn(nil)
		require.NoError(t, err, "func %s", name)
		assert.Nil(t, out, "func %s", name)
	}

	// Mixed nil and non-nil still propagates.
	out, err := Funcs()["date_add"]("day", nil, "12/31/1999")
	require.NoError(t, err)
	assert.Nil(t, out)

	out, err = Funcs()["date_diff"]("day", "12/31/1999", nil)
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestUDFParseTemporal(t *testing.T) {
	fn := Funcs()["parse_temporal"]

	out, err := fn("12/31/1999")
	require.NoError(t, err)
	assert.Equal(t, "1999-12-31 00:00:00", out)

	// []byte and Temporal arguments coerce too.
	out, err = fn([]byte("2000-01-02 10:30:00"))
	require.NoError(t, err)
	assert.Equal(t, "2000-01-02 10:30:00", out)

	out, err = fn(MustParse("1999-12-31 23:00:00-05:00"))
	require.NoError(t, err)
	assert.Equal(t, "1999-12-31 23:00:00-05:00", out)

	_, err = fn("not a date at all -")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnparseableTemporal))

	_, err = fn(42)
	require.Error(t, err)

	_, err = fn("a", "b")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "want 1")
}

func TestUDFExtract(t *testing.T) {
	funcs := Funcs()
	for name, want := range map[string]int64{
		"year":        1999,
		"quarter":     4,
		"month":       12,
		"day":         31,
		"hour":        0,
		"minute":      0,
		"second":      0,
		"microsecond": 0,
		"epoch":       946598400,
	} {
		out, err := funcs[name]("12/31/1999")
		require.NoError(t, err, "func %s", name)
		assert.Equal(t, want, out, "func %s", name)
	}
}

func TestUDFDatePart(t *testing.T) {
	fn := Funcs()["date_part"]

	out, err := fn("dow", "12/31/1999")
	require.NoError(t, err)
	assert.Equal(t, int64(5), out) // Friday

	out, err = fn("iso_week", "2000-01-01")
	require.NoError(t, err)
	assert.Equal(t, int64(52), out)

	out, err = fn("DY", "2000-02-01")
	require.NoError(t, err)
	assert.Equal(t, int64(32), out)

	_, err = fn("day_name", "12/31/1999")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidUnitForOperation))

	_, err = fn("lightyear", "12/31/1999")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownDatepart))
}

func TestUDFDateAdd(t *testing.T) {
	fn := Funcs()["date_add"]

	out, err := fn("day", 1, "Sunday, Jan 2 2000")
	require.NoError(t, err)
	assert.Equal(t, "2000-01-03 00:00:00", out)

	// Fractional amounts truncate toward zero, like an engine coercing a
	// numeric cell.
	out, err = fn("day", 2.9, "2000-01-01")
	require.NoError(t, err)
	assert.Equal(t, "2000-01-03 00:00:00", out)

	out, err = fn("month", int32(1), "2000-01-31")
	require.NoError(t, err)
	assert.Equal(t, "2000-02-29 00:00:00", out)

	_, err = fn("days", 1, "2000-01-01")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownDatepart))

	_, err = fn("day_name", 1, "2000-01-01")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidUnitForOperation))

	_, err = fn("day", uint64(math.MaxUint64), "2000-01-01")
	require.Error(t, err)

	_, err = fn("day", "one", "2000-01-01")
	require.Error(t, err)
}

func TestUDFDateDiff(t *testing.T) {
	fn := Funcs()["date_diff"]

	out, err := fn("hour", "1999-12-31 23:59:59", "2000-01-01 00:00:01")
	require.NoError(t, err)
	assert.Equal(t, int64(1), out)

	out, err = fn("year", "1999-12-31 23:59:59", "2000-01-01 00:00:01")
	require.NoError(t, err)
	assert.Equal(t, int64(1), out)

	_, err = fn("hour", "1999-12-31")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "want 3")
}

func TestUDFTrunc(t *testing.T) {
	funcs := Funcs()

	out, err := funcs["date_trunc"]("hour", "12/31/1999 23:59:59")
	require.NoError(t, err)
	assert.Equal(t, "1999-12-31 23:00:00", out)

	out, err = funcs["date_start_of"]("hour", "12/31/1999 23:59:59")
	require.NoError(t, err)
	assert.Equal(t, "1999-12-31 23:00:00", out)

	out, err = funcs["date_end_of"]("quarter", "2/1/2000")
	require.NoError(t, err)
	assert.Equal(t, "2000-03-31 23:59:59.999999", out)

	_, err = funcs["date_trunc"]("microsecond", "12/31/1999")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidUnitForOperation))
}

func TestUDFDateName(t *testing.T) {
	fn := Funcs()["date_name"]

	out, err := fn("day_name", "12/31/1999")
	require.NoError(t, err)
	assert.Equal(t, "Friday", out)

	out, err = fn("mm", "12/31/1999")
	require.NoError(t, err)
	assert.Equal(t, "December", out)

	_, err = fn("year", "12/31/1999")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidUnitForOperation))
}

func TestUDFNowToday(t *testing.T) {
	funcs := Funcs()

	out, err := funcs["now"]()
	require.NoError(t, err)
	_, perr := Parse(out.(string))
	assert.NoError(t, perr)

	out, err = funcs["today"]()
	require.NoError(t, err)
	assert.Contains(t, out.(string), "00:00:00")

	_, err = funcs["now"]("surprise")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "want 0")
}

// TestUDFChain mirrors how a pipeline composes these: the formatted output
// of one call feeds the next.
func TestUDFChain(t *testing.T) {
	funcs := Funcs()

	next, err := funcs["date_add"]("day", 1, "Sunday, Jan 2 2000")
	require.NoError(t, err)

	dow, err := funcs["date_part"]("day_of_week", next)
	require.NoError(t, err)
	assert.Equal(t, int64(1), dow) // Monday

	name, err := funcs["date_name"]("dn", next)
	require.NoError(t, err)
	assert.Equal(t, "Monday", name)
}
