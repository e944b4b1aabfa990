package types

import (
	"strconv"
	"strings"
	"time"
)

// All is the sentinel option meaning "no restriction" on a filter dimension.
// When it appears alongside explicit values it dominates them.
const All = "all"

// Unknown is the literal bucket for categorical fields that are missing or
// failed to parse. Records land here instead of being dropped.
const Unknown = "UNKNOWN"

type Sex string

const (
	SexMale    Sex = "MALE"
	SexFemale  Sex = "FEMALE"
	SexUnknown Sex = Unknown
)

// ParseSex normalizes the raw dataset value ("HOMBRE"/"MUJER", any casing).
func ParseSex(raw string) Sex {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "HOMBRE", "MALE":
		return SexMale
	case "MUJER", "FEMALE":
		return SexFemale
	default:
		return SexUnknown
	}
}

type AgeUnit string

const (
	AgeUnitYears  AgeUnit = "years"
	AgeUnitMonths AgeUnit = "months"
	AgeUnitDays   AgeUnit = "days"
)

// ParseAgeUnit maps the raw "medida_edad" column ("años", "meses", "dias").
func ParseAgeUnit(raw string) AgeUnit {
	l := strings.ToLower(strings.TrimSpace(raw))
	switch {
	case strings.Contains(l, "mes"):
		return AgeUnitMonths
	case strings.Contains(l, "dia"), strings.Contains(l, "día"):
		return AgeUnitDays
	default:
		return AgeUnitYears
	}
}

// Record is one incident row after ingestion. Categorical fields are
// normalized uppercase with Unknown as the missing-value bucket; numeric
// fields that failed to parse stay nil and are excluded per aggregation.
type Record struct {
	Year      int
	Month     int
	Province  string
	Canton    string
	Age       *int
	AgeUnit   AgeUnit
	Sex       Sex
	Weapon    string
	Weekday   Weekday
	Hour      *int
	Latitude  *float64
	Longitude *float64
	Date      *time.Time
}

// AgeYears resolves the age in whole years: a recorded unit of months or
// days counts as 0 years. Returns false when the age is missing or negative.
func (r Record) AgeYears() (int, bool) {
	if r.Age == nil {
		return 0, false
	}
	if r.AgeUnit == AgeUnitMonths || r.AgeUnit == AgeUnitDays {
		return 0, true
	}
	if *r.Age < 0 {
		return 0, false
	}
	return *r.Age, true
}

// AgeBandLabel is the band used for filtering: the matching band label, or
// Unknown when the age cannot be resolved to any band.
func (r Record) AgeBandLabel() string {
	years, ok := r.AgeYears()
	if !ok {
		return Unknown
	}
	if band, ok := AgeBand(years); ok {
		return band
	}
	return Unknown
}

// HasCoordinates reports whether the record qualifies for geo aggregation.
func (r Record) HasCoordinates() bool {
	return r.Latitude != nil && r.Longitude != nil
}

// Selection is the full multi-dimensional filter state, built from UI input
// at query time and immutable for the duration of one aggregation pass.
// Year and Month hold All or a numeric string; the four set dimensions hold
// at least one value, with All meaning no restriction.
type Selection struct {
	Year      string   `json:"year"`
	Month     string   `json:"month"`
	Provinces []string `json:"provinces"`
	Cantons   []string `json:"cantons"`
	AgeBands  []string `json:"age_bands"`
	Sexes     []string `json:"sexes"`
}

// NewSelection returns the unrestricted selection.
func NewSelection() Selection {
	return Selection{
		Year:      All,
		Month:     All,
		Provinces: []string{All},
		Cantons:   []string{All},
		AgeBands:  []string{All},
		Sexes:     []string{All},
	}
}

// SingleYear reports whether a single year is selected and which one.
func (s Selection) SingleYear() (int, bool) {
	if s.Year == All || s.Year == "" {
		return 0, false
	}
	y, err := strconv.Atoi(strings.TrimSpace(s.Year))
	if err != nil {
		return 0, false
	}
	return y, true
}

// SingleMonth reports whether a single month is selected and which one.
func (s Selection) SingleMonth() (int, bool) {
	if s.Month == All || s.Month == "" {
		return 0, false
	}
	m, err := strconv.Atoi(strings.TrimSpace(s.Month))
	if err != nil {
		return 0, false
	}
	return m, true
}

// HasAll reports whether the sentinel is present. An empty set is treated as
// unrestricted too; the UI never produces one but the core tolerates it.
func HasAll(values []string) bool {
	if len(values) == 0 {
		return true
	}
	for _, v := range values {
		if v == All {
			return true
		}
	}
	return false
}

// Explicit returns the values minus the sentinel, preserving order.
func Explicit(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v != All && v != "" {
			out = append(out, v)
		}
	}
	return out
}

// Contains reports set membership by literal string comparison.
func Contains(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}
