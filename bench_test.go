package dttm

import (
	"fmt"
	"testing"
	"time"
)

/*

go test -bench .

BenchmarkLayoutShotgun measures the traditional approach: throw a flat list
of layouts at time.Parse until one sticks. BenchmarkParse is this package's
ranked strategies over the same corpus, heuristics included.

*/
func BenchmarkLayoutShotgun(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		for _, in := range benchInputs {
			parseLayoutShotgun(in)
		}
	}
}

func BenchmarkParse(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		for _, in := range benchInputs {
			Parse(in, WithReferenceTime(testRef))
		}
	}
}

func BenchmarkParseFormatted(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		ParseFormatted("2009-08-12T22:15:09-07:00", time.RFC3339)
	}
}

func BenchmarkFormat(b *testing.B) {
	v := MustParse("1999-12-31 23:59:59.123456")
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		Format(v)
	}
}

var (
	benchInputs = []string{
		"2012/03/19 10:11:59",
		"2009-08-12T22:15:09-07:00",
		"2014-04-26 17:24:37.3186369",
		"2013-04-01 22:43:22",
		"2014-12-16 06:20:00 UTC",
		"1384216367189",
		"1332151919",
		"12/31/1999",
		"31/12/1999",
		"May 8, 2009 5:57:51 PM",
		"December 31st in 1999",
		"2014-04-26",
	}

	errBenchFormat = fmt.Errorf("invalid date format")

	benchLayouts = []string{
		time.RFC3339Nano,
		time.RFC3339,
		time.RFC1123Z,
		time.RFC1123,
		time.UnixDate,
		time.RubyDate,
		time.ANSIC,
		"2006-01-02 15:04:05.999999999 -0700 MST",
		"2006-01-02T15:04:05.999999999",
		"2006-01-02 15:04:05.999999999",
		"2006/01/02 15:04:05",
		"1/2/2006",
		"2006-01-02",
	}
)

func parseLayoutShotgun(raw string) (time.Time, error) {
	for _, layout := range benchLayouts {
		t, err := time.Parse(layout, raw)
		if err == nil {
			return t, nil
		}
	}
	return time.Time{}, errBenchFormat
}
