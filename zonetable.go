package dttm

import (
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/cockroachdb/errors"
	"github.com/tkuchiki/go-timezone"
)

// ZoneTable resolves timezone abbreviations ("EST", "CEST") to fixed offsets.
// It is a read-only input to the parser: defaults come from the bundled
// abbreviation database, and a TOML file may pin or extend entries for
// pipelines whose data uses regional abbreviations the database considers
// ambiguous. Safe for concurrent use once built.
type ZoneTable struct {
	overrides map[string]int // minutes east of UTC, keyed by upper-case abbreviation
	tz        *timezone.Timezone
}

// NewZoneTable returns a table backed only by the bundled database.
func NewZoneTable() *ZoneTable {
	return &ZoneTable{tz: timezone.New()}
}

// defaultZones serves every parser that was not handed its own table.
var defaultZones = NewZoneTable()

type zoneFile struct {
	Zones map[string]string `toml:"zones"`
}

// LoadZoneTable reads abbreviation overrides from a TOML file of the form
//
//	[zones]
//	ist = "+05:30"
//	nst = "-03:30"
//
// Offsets use ±HH:MM, ±HHMM or ±HH notation. Overrides shadow the bundled
// database; lookups that miss the overrides still fall through to it.
func LoadZoneTable(path string) (*ZoneTable, error) {
	var f zoneFile
	if _, err := toml.DecodeFile(path, &f); err != nil {
		return nil, errors.Wrapf(err, "zone table %s", path)
	}
	zt := NewZoneTable()
	zt.overrides = make(map[string]int, len(f.Zones))
	for abbr, off := range f.Zones {
		min, ok := parseOffsetMinutes(off)
		if !ok {
			return nil, errors.Newf("zone table %s: bad offset %q for %q", path, off, abbr)
		}
		zt.overrides[strings.ToUpper(abbr)] = min
	}
	return zt, nil
}

// Offset resolves an abbreviation to minutes east of UTC. Matching is
// case-insensitive. For abbreviations the database maps to more than one
// region, the first entry wins; pin the intended offset in an override file
// when that guess is wrong.
func (zt *ZoneTable) Offset(abbr string) (minutes int, ok bool) {
	key := strings.ToUpper(strings.TrimSpace(abbr))
	if min, ok := zt.overrides[key]; ok {
		return min, true
	}
	infos, _ := zt.tz.GetTzAbbreviationInfo(key)
	if len(infos) == 0 {
		return 0, false
	}
	return infos[0].Offset() / 60, true
}
