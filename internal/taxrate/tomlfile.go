package taxrate

import (
	"fmt"
	"os"

	toml "github.com/pelletier/go-toml/v2"
)

// tomlFile is the on-disk shape of a user-supplied rates dataset.
//
//	year = 2026
//
//	[federal]
//	bands = [
//	  { rate = 15.0, upper = 57375 },
//	  { rate = 33.0, upper = -1 },
//	]
//
//	[provincial.AB]
//	bands = [ ... ]
//
// A negative upper marks the unbounded top band.
type tomlFile struct {
	Year       int                     `toml:"year"`
	Federal    tomlSchedule            `toml:"federal"`
	Provincial map[string]tomlSchedule `toml:"provincial"`
}

type tomlSchedule struct {
	Bands []tomlBand `toml:"bands"`
}

type tomlBand struct {
	Rate  float64 `toml:"rate"`
	Upper float64 `toml:"upper"`
}

// LoadFile reads a rates dataset from a TOML file. Any failure here means
// the rate provider is unavailable, so callers abort before fetching
// anything.
func LoadFile(path string) (Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("taxrate: reading rates file %s: %w", path, err)
	}

	var tf tomlFile
	if err := toml.Unmarshal(data, &tf); err != nil {
		return nil, fmt.Errorf("taxrate: parsing rates file %s: %w", path, err)
	}
	if tf.Year == 0 {
		return nil, fmt.Errorf("taxrate: rates file %s: missing year", path)
	}

	ds := &staticDataset{
		year:       tf.Year,
		federal:    tf.Federal.schedule(),
		provincial: make(map[string]Schedule, len(tf.Provincial)),
	}
	for code, ts := range tf.Provincial {
		if _, ok := jurisdictionNames[code]; !ok || code == FederalCode {
			return nil, fmt.Errorf("taxrate: rates file %s: %w: %q", path, ErrUnknownJurisdiction, code)
		}
		ds.provincial[code] = ts.schedule()
	}
	return ds, nil
}

func (ts tomlSchedule) schedule() Schedule {
	sched := make(Schedule, 0, len(ts.Bands))
	for _, b := range ts.Bands {
		upper := UpTo(b.Upper)
		if b.Upper < 0 {
			upper = NoLimit()
		}
		sched = append(sched, Band{RatePercent: b.Rate, Upper: upper})
	}
	return sched
}
