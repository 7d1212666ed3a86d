// Package taxrate provides Canadian income-tax rate schedules. A Dataset
// exposes one federal schedule and one schedule per province or territory,
// each an ordered list of (rate percentage, upper bound) bands. Datasets are
// resolved through a static registration table rather than discovered at
// runtime, so an unknown jurisdiction is a compile-visible data error, not a
// reflection failure.
package taxrate

import (
	"errors"
	"fmt"
)

// FederalCode identifies the federal schedule in errors and telemetry.
// It never appears as a key in the provincial map.
const FederalCode = "FED"

// ProvincialCodes lists the 13 province and territory codes in canonical
// order. Document assembly iterates this slice, so it also fixes the
// insertion order of the provincial output map.
var ProvincialCodes = []string{
	"AB", "BC", "MB", "NB", "NL", "NS", "NT",
	"NU", "ON", "PE", "QC", "SK", "YT",
}

// jurisdictionNames maps codes to full names for output documents.
var jurisdictionNames = map[string]string{
	FederalCode: "Federal",
	"AB":        "Alberta",
	"BC":        "British Columbia",
	"MB":        "Manitoba",
	"NB":        "New Brunswick",
	"NL":        "Newfoundland and Labrador",
	"NS":        "Nova Scotia",
	"NT":        "Northwest Territories",
	"NU":        "Nunavut",
	"ON":        "Ontario",
	"PE":        "Prince Edward Island",
	"QC":        "Quebec",
	"SK":        "Saskatchewan",
	"YT":        "Yukon",
}

// Name returns the full jurisdiction name for a code, and whether the code
// is known.
func Name(code string) (string, bool) {
	name, ok := jurisdictionNames[code]
	return name, ok
}

// Band is one marginal rate band: a rate (as a percentage, e.g. 20.5) applied
// up to an upper income bound.
type Band struct {
	RatePercent float64
	Upper       Bound
}

// Schedule is a jurisdiction's ordered band list, ascending by upper bound.
// The last band of a complete schedule is unbounded.
type Schedule []Band

// Dataset provides rate schedules for one tax year.
type Dataset interface {
	// Year is the tax year the schedules describe. It comes from the
	// dataset itself, never from the clock.
	Year() int
	// Federal returns the federal schedule.
	Federal() (Schedule, error)
	// Provincial returns the schedule for a 2-letter province or
	// territory code.
	Provincial(code string) (Schedule, error)
}

// ErrUnknownJurisdiction is returned when a code is not in the registry.
var ErrUnknownJurisdiction = errors.New("unknown jurisdiction code")

// FetchError reports a failure to obtain one jurisdiction's schedule.
// Callers treat a federal FetchError as fatal and a provincial one as
// skippable.
type FetchError struct {
	Code string
	Err  error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("taxrate: fetch %s: %v", e.Code, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }
