package dttm

import (
	"math"

	"github.com/cockroachdb/errors"
)

// UDF is a row-transform function as a dataflow engine sees it: scalar
// arguments in, one scalar out. A nil argument anywhere propagates as a
// nil result before anything else happens, so a pipeline does not abort
// on an empty cell; non-null garbage still surfaces as an error.
type UDF func(args ...any) (any, error)

// Funcs returns the operations a dataflow engine registers, keyed by the
// names pipeline scripts use. Temporal arguments accept strings (parsed on
// entry) or Temporal values; temporal results come back as formatted
// strings, since the boundary carries only scalars. The map is freshly
// built per call and free to mutate.
func Funcs() map[string]UDF {
	return map[string]UDF{
		"parse_temporal": udfParseTemporal,
		"now":            udfNow,
		"today":          udfToday,
		"year":           extractUDF(Year),
		"quarter":        extractUDF(Quarter),
		"month":          extractUDF(Month),
		"day":            extractUDF(Day),
		"hour":           extractUDF(Hour),
		"minute":         extractUDF(Minute),
		"second":         extractUDF(Second),
		"microsecond":    extractUDF(Microsecond),
		"epoch":          extractUDF(Epoch),
		"date_part":      udfDatePart,
		"date_add":       udfDateAdd,
		"date_diff":      udfDateDiff,
		"date_trunc":     truncUDF("date_trunc"),
		"date_start_of":  truncUDF("date_start_of"),
		"date_end_of":    udfDateEndOf,
		"date_name":      udfDateName,
	}
}

func udfParseTemporal(args ...any) (any, error) {
	if hasNil(args) {
		return nil, nil
	}
	if err := arity("parse_temporal", args, 1); err != nil {
		return nil, err
	}
	t, err := toTemporal("parse_temporal", args[0])
	if err != nil {
		return nil, err
	}
	return Format(t), nil
}

func udfNow(args ...any) (any, error) {
	if err := arity("now", args, 0); err != nil {
		return nil, err
	}
	return Format(Now()), nil
}

func udfToday(args ...any) (any, error) {
	if err := arity("today", args, 0); err != nil {
		return nil, err
	}
	return Format(Today()), nil
}

func extractUDF(unit Datepart) UDF {
	name := unit.String()
	return func(args ...any) (any, error) {
		if hasNil(args) {
			return nil, nil
		}
		if err := arity(name, args, 1); err != nil {
			return nil, err
		}
		t, err := toTemporal(name, args[0])
		if err != nil {
			return nil, err
		}
		n, err := Extract(unit, t)
		if err != nil {
			return nil, err
		}
		return n, nil
	}
}

// udfDatePart is the alias-driven face of Extract, for units that have no
// single-field function of their own (day_of_week, week, iso_week, ...).
func udfDatePart(args ...any) (any, error) {
	if hasNil(args) {
		return nil, nil
	}
	if err := arity("date_part", args, 2); err != nil {
		return nil, err
	}
	unit, err := toUnit("date_part", args[0])
	if err != nil {
		return nil, err
	}
	t, err := toTemporal("date_part", args[1])
	if err != nil {
		return nil, err
	}
	return Extract(unit, t)
}

func udfDateAdd(args ...any) (any, error) {
	if hasNil(args) {
		return nil, nil
	}
	if err := arity("date_add", args, 3); err != nil {
		return nil, err
	}
	unit, err := toUnit("date_add", args[0])
	if err != nil {
		return nil, err
	}
	amount, err := toInt("date_add", args[1])
	if err != nil {
		return nil, err
	}
	t, err := toTemporal("date_add", args[2])
	if err != nil {
		return nil, err
	}
	out, err := DateAdd(unit, amount, t)
	if err != nil {
		return nil, err
	}
	return Format(out), nil
}

func udfDateDiff(args ...any) (any, error) {
	if hasNil(args) {
		return nil, nil
	}
	if err := arity("date_diff", args, 3); err != nil {
		return nil, err
	}
	unit, err := toUnit("date_diff", args[0])
	if err != nil {
		return nil, err
	}
	start, err := toTemporal("date_diff", args[1])
	if err != nil {
		return nil, err
	}
	end, err := toTemporal("date_diff", args[2])
	if err != nil {
		return nil, err
	}
	return DateDiff(unit, start, end)
}

func truncUDF(name string) UDF {
	return func(args ...any) (any, error) {
		if hasNil(args) {
			return nil, nil
		}
		if err := arity(name, args, 2); err != nil {
			return nil, err
		}
		unit, err := toUnit(name, args[0])
		if err != nil {
			return nil, err
		}
		t, err := toTemporal(name, args[1])
		if err != nil {
			return nil, err
		}
		out, err := DateTrunc(unit, t)
		if err != nil {
			return nil, err
		}
		return Format(out), nil
	}
}

func udfDateEndOf(args ...any) (any, error) {
	if hasNil(args) {
		return nil, nil
	}
	if err := arity("date_end_of", args, 2); err != nil {
		return nil, err
	}
	unit, err := toUnit("date_end_of", args[0])
	if err != nil {
		return nil, err
	}
	t, err := toTemporal("date_end_of", args[1])
	if err != nil {
		return nil, err
	}
	out, err := DateEndOf(unit, t)
	if err != nil {
		return nil, err
	}
	return Format(out), nil
}

func udfDateName(args ...any) (any, error) {
	if hasNil(args) {
		return nil, nil
	}
	if err := arity("date_name", args, 2); err != nil {
		return nil, err
	}
	unit, err := toUnit("date_name", args[0])
	if err != nil {
		return nil, err
	}
	t, err := toTemporal("date_name", args[1])
	if err != nil {
		return nil, err
	}
	return DateName(unit, t)
}

func hasNil(args []any) bool {
	for _, a := range args {
		if a == nil {
			return true
		}
	}
	return false
}

func arity(name string, args []any, want int) error {
	if len(args) != want {
		return errors.Newf("%s: want %d arguments, got %d", name, want, len(args))
	}
	return nil
}

func toTemporal(name string, a any) (Temporal, error) {
	switch v := a.(type) {
	case Temporal:
		return v, nil
	case string:
		return Parse(v)
	case []byte:
		return Parse(string(v))
	default:
		return Temporal{}, errors.Newf("%s: cannot read %T as a temporal value", name, a)
	}
}

func toUnit(name string, a any) (Datepart, error) {
	switch v := a.(type) {
	case Datepart:
		return v, nil
	case string:
		return ResolveDatepart(v)
	case []byte:
		return ResolveDatepart(string(v))
	default:
		return 0, errors.Newf("%s: cannot read %T as a datepart", name, a)
	}
}

func toInt(name string, a any) (int64, error) {
	switch v := a.(type) {
	case int:
		return int64(v), nil
	case int8:
		return int64(v), nil
	case int16:
		return int64(v), nil
	case int32:
		return int64(v), nil
	case int64:
		return v, nil
	case uint:
		return int64(v), nil
	case uint8:
		return int64(v), nil
	case uint16:
		return int64(v), nil
	case uint32:
		return int64(v), nil
	case uint64:
		if v > math.MaxInt64 {
			return 0, errors.Newf("%s: %d overflows an amount", name, v)
		}
		return int64(v), nil
	case float32:
		return int64(v), nil
	case float64:
		return int64(v), nil
	default:
		return 0, errors.Newf("%s: cannot read %T as an amount", name, a)
	}
}
