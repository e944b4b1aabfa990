package types

import (
	"fmt"
	"strings"
)

// ageBand is one fixed interval of whole years, inclusive on both ends.
type ageBand struct {
	label    string
	min, max int
}

// ageBands is the fixed ordered list of 17 bands, [0,4] through [80,∞).
// A record's age maps to the first (only) band containing it.
var ageBands = []ageBand{
	{"0-4", 0, 4},
	{"5-9", 5, 9},
	{"10-14", 10, 14},
	{"15-19", 15, 19},
	{"20-24", 20, 24},
	{"25-29", 25, 29},
	{"30-34", 30, 34},
	{"35-39", 35, 39},
	{"40-44", 40, 44},
	{"45-49", 45, 49},
	{"50-54", 50, 54},
	{"55-59", 55, 59},
	{"60-64", 60, 64},
	{"65-69", 65, 69},
	{"70-74", 70, 74},
	{"75-79", 75, 79},
	{"80+", 80, 1 << 30},
}

// AgeBandCount is the number of fixed bands.
const AgeBandCount = 17

func init() {
	if len(ageBands) != AgeBandCount {
		panic(fmt.Sprintf("age band table has %d entries, want %d", len(ageBands), AgeBandCount))
	}
	for i := 1; i < len(ageBands); i++ {
		if ageBands[i].min != ageBands[i-1].max+1 {
			panic(fmt.Sprintf("age band table has a gap before %q", ageBands[i].label))
		}
	}
}

// AgeBand maps whole years to a band label by linear scan of ascending
// bounds. Returns false for ages outside every band (negative).
func AgeBand(years int) (string, bool) {
	for _, b := range ageBands {
		if years >= b.min && years <= b.max {
			return b.label, true
		}
	}
	return "", false
}

// AgeBandIndex returns the position of the band containing the given age,
// or -1 when no band matches.
func AgeBandIndex(years int) int {
	for i, b := range ageBands {
		if years >= b.min && years <= b.max {
			return i
		}
	}
	return -1
}

// AgeBandLabels returns the band labels in ascending age order.
func AgeBandLabels() []string {
	out := make([]string, len(ageBands))
	for i, b := range ageBands {
		out[i] = b.label
	}
	return out
}

// Weekday indexes the canonical week, Monday first, matching the density
// grid's row order. WeekdayUnknown rows are excluded from day/hour counts.
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
	WeekdayUnknown
)

// WeekdayCount is the number of canonical weekdays.
const WeekdayCount = 7

var weekdayNames = [WeekdayCount]string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

func (d Weekday) String() string {
	if d < 0 || d >= WeekdayCount {
		return "unknown"
	}
	return weekdayNames[d]
}

// weekdayAliases normalizes the source-locale day names (the dataset mixes
// Spanish with occasional English abbreviations).
var weekdayAliases = map[string]Weekday{
	"lunes": Monday, "monday": Monday, "mon": Monday,
	"martes": Tuesday, "tuesday": Tuesday, "tue": Tuesday,
	"miércoles": Wednesday, "miercoles": Wednesday, "wednesday": Wednesday, "wed": Wednesday,
	"jueves": Thursday, "thursday": Thursday, "thu": Thursday,
	"viernes": Friday, "friday": Friday, "fri": Friday,
	"sábado": Saturday, "sabado": Saturday, "saturday": Saturday, "sat": Saturday,
	"domingo": Sunday, "sunday": Sunday, "sun": Sunday,
}

// ParseWeekday resolves a raw day name to a canonical weekday. Unrecognized
// values map to WeekdayUnknown, never an error.
func ParseWeekday(raw string) Weekday {
	if d, ok := weekdayAliases[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return d
	}
	return WeekdayUnknown
}

// WeekdayLabels returns the canonical day names, Monday first.
func WeekdayLabels() []string {
	out := make([]string, WeekdayCount)
	copy(out, weekdayNames[:])
	return out
}

// Region is the coarse geographic grouping derived from province, used only
// for display coloring of the geographic ranking.
type Region string

const (
	RegionCoastal  Region = "COASTAL"
	RegionHighland Region = "HIGHLAND"
	RegionAmazon   Region = "AMAZON"
	RegionInsular  Region = "INSULAR"
	RegionUnknown  Region = Unknown
)

// provinceRegions maps canonical province names (including historical
// spelling variants present in the dataset) to their region.
var provinceRegions = map[string]Region{
	"ESMERALDAS":                     RegionCoastal,
	"SANTO DOMINGO DE LOS TSACHILAS": RegionCoastal,
	"SANTO DOMINGO":                  RegionCoastal,
	"STO DGO DE LOS TSACHILAS":       RegionCoastal,
	"MANABI":                         RegionCoastal,
	"LOS RIOS":                       RegionCoastal,
	"GUAYAS":                         RegionCoastal,
	"SANTA ELENA":                    RegionCoastal,
	"EL ORO":                         RegionCoastal,
	"CARCHI":                         RegionHighland,
	"IMBABURA":                       RegionHighland,
	"PICHINCHA":                      RegionHighland,
	"COTOPAXI":                       RegionHighland,
	"TUNGURAHUA":                     RegionHighland,
	"BOLIVAR":                        RegionHighland,
	"CHIMBORAZO":                     RegionHighland,
	"CANAR":                          RegionHighland,
	"AZUAY":                          RegionHighland,
	"LOJA":                           RegionHighland,
	"SUCUMBIOS":                      RegionAmazon,
	"ORELLANA":                       RegionAmazon,
	"NAPO":                           RegionAmazon,
	"PASTAZA":                        RegionAmazon,
	"MORONA SANTIAGO":                RegionAmazon,
	"ZAMORA CHINCHIPE":               RegionAmazon,
	"GALAPAGOS":                      RegionInsular,
}

// RegionOf resolves a province name to its region, RegionUnknown for
// anything outside the table.
func RegionOf(province string) Region {
	if r, ok := provinceRegions[strings.ToUpper(strings.TrimSpace(province))]; ok {
		return r
	}
	return RegionUnknown
}

var monthAbbrevs = [12]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// MonthAbbrev returns the canonical abbreviation for months 1-12; other
// values come back as their decimal string.
func MonthAbbrev(m int) string {
	if m >= 1 && m <= 12 {
		return monthAbbrevs[m-1]
	}
	return fmt.Sprintf("%d", m)
}

// HourRangeCount is the number of four-hour ranges covering 00-24.
const HourRangeCount = 6

var hourRangeLabels = [HourRangeCount]string{
	"00-04", "04-08", "08-12", "12-16", "16-20", "20-24",
}

// HourRangeIndex maps an hour of day to its four-hour range, -1 when the
// hour is outside 0-23.
func HourRangeIndex(hour int) int {
	if hour < 0 || hour > 23 {
		return -1
	}
	return hour / 4
}

// HourRangeLabels returns the six range labels in chronological order.
func HourRangeLabels() []string {
	out := make([]string, HourRangeCount)
	copy(out, hourRangeLabels[:])
	return out
}

// TitleCase lowercases then capitalizes each word, turning the dataset's
// uppercase names into display labels ("GUAYAS" -> "Guayas").
func TitleCase(s string) string {
	if s == "" {
		return ""
	}
	words := strings.Split(strings.ToLower(s), " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
