package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"homicide-insights-go/internal/logger"
	"homicide-insights-go/internal/types"
)

// Load reads the incident dataset from a CSV or XLSX file. Malformed rows
// are not rejected: each field falls back to the unknown bucket or stays
// unset, per the core's parse-fallback rules.
func Load(path string) ([]types.Record, error) {
	log := logger.New().WithComponent("dataset").WithField("path", path)
	log.Info("loading dataset")

	var rows [][]string
	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		rows, err = readExcelRows(path)
	default:
		rows, err = readCSVRows(path)
	}
	if err != nil {
		return nil, err
	}

	records, err := fromRows(rows)
	if err != nil {
		return nil, err
	}
	log.WithField("rows", len(records)).Info("dataset loaded")
	return records, nil
}

// LoadCSV reads the dataset from an already-open CSV stream.
func LoadCSV(r io.Reader) ([]types.Record, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	return fromRows(rows)
}

func readCSVRows(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	return rows, nil
}

func readExcelRows(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read rows: %w", err)
	}
	return rows, nil
}

// columns holds header-detected column indices, -1 when a column is absent.
type columns struct {
	year, month, province, canton int
	age, ageUnit, sex, weapon     int
	weekday, hour, lat, lon, date int
}

func detectColumns(header []string) columns {
	c := columns{
		year: -1, month: -1, province: -1, canton: -1,
		age: -1, ageUnit: -1, sex: -1, weapon: -1,
		weekday: -1, hour: -1, lat: -1, lon: -1, date: -1,
	}
	for i, h := range header {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "anio", "año", "year":
			c.year = i
		case "mes", "month":
			c.month = i
		case "provincia", "province":
			c.province = i
		case "canton", "cantón":
			c.canton = i
		case "edad", "age":
			c.age = i
		case "medida_edad", "age_unit":
			c.ageUnit = i
		case "sexo", "sex":
			c.sex = i
		case "arma", "tipo_arma", "weapon":
			c.weapon = i
		case "dia_semana", "weekday":
			c.weekday = i
		case "hora_infraccion", "hora", "hour":
			c.hour = i
		case "coordenada_y", "latitud", "lat":
			c.lat = i
		case "coordenada_x", "longitud", "lon", "lng":
			c.lon = i
		case "fecha_infraccion", "fecha", "date":
			c.date = i
		}
	}
	return c
}

func fromRows(rows [][]string) ([]types.Record, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("empty dataset")
	}
	cols := detectColumns(rows[0])
	if cols.province == -1 && cols.year == -1 {
		return nil, fmt.Errorf("no recognizable header row")
	}

	records := make([]types.Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if emptyRow(row) {
			continue
		}
		records = append(records, buildRecord(cols, row))
	}
	return records, nil
}

func emptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

func buildRecord(c columns, row []string) types.Record {
	cell := func(idx int) string {
		if idx < 0 || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	return types.Record{
		Year:      parseIntOrZero(cell(c.year)),
		Month:     parseIntOrZero(cell(c.month)),
		Province:  categorical(cell(c.province)),
		Canton:    categorical(cell(c.canton)),
		Age:       parseIntPtr(cell(c.age)),
		AgeUnit:   types.ParseAgeUnit(cell(c.ageUnit)),
		Sex:       types.ParseSex(cell(c.sex)),
		Weapon:    categorical(cell(c.weapon)),
		Weekday:   types.ParseWeekday(cell(c.weekday)),
		Hour:      parseHour(cell(c.hour)),
		Latitude:  parseFloatPtr(cell(c.lat)),
		Longitude: parseFloatPtr(cell(c.lon)),
		Date:      parseDate(cell(c.date)),
	}
}

// categorical uppercases a free-text value, defaulting absent to Unknown.
func categorical(s string) string {
	if s == "" {
		return types.Unknown
	}
	return strings.ToUpper(s)
}

func parseIntOrZero(s string) int {
	if s == "" {
		return 0
	}
	if v, err := strconv.Atoi(s); err == nil {
		return v
	}
	// some exports write integers as "2023.0"
	if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(f) {
		return int(f)
	}
	return 0
}

func parseIntPtr(s string) *int {
	if s == "" {
		return nil
	}
	if v, err := strconv.Atoi(s); err == nil {
		return &v
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(f) {
		v := int(f)
		return &v
	}
	return nil
}

func parseFloatPtr(s string) *float64 {
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}

// parseHour accepts either a numeric hour ("14", "14.0") or an "HH:MM"
// textual time, returning nil for anything unparsable or out of range.
func parseHour(s string) *int {
	if s == "" {
		return nil
	}
	if i := strings.IndexByte(s, ':'); i >= 0 {
		s = s[:i]
	}
	h := -1
	if v, err := strconv.Atoi(s); err == nil {
		h = v
	} else if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(f) {
		h = int(math.Floor(f))
	}
	if h < 0 || h > 23 {
		return nil
	}
	return &h
}

var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	time.RFC3339,
	"02/01/2006",
}

func parseDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}
