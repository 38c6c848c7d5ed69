package tanktemp

import (
	"embed"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/gocarina/gocsv"
	"gonum.org/v1/gonum/stat"
)

//go:embed data/met_us_locations.csv data/paint_absorptance.csv
var dataFS embed.FS

// climateRow is one CSV record: the monthly series of a single meteorological
// symbol at a single location.
type climateRow struct {
	Location string  `csv:"location"`
	State    string  `csv:"state"`
	Symbol   string  `csv:"symbol"`
	Jan      float64 `csv:"jan"`
	Feb      float64 `csv:"feb"`
	Mar      float64 `csv:"mar"`
	Apr      float64 `csv:"apr"`
	May      float64 `csv:"may"`
	Jun      float64 `csv:"jun"`
	Jul      float64 `csv:"jul"`
	Aug      float64 `csv:"aug"`
	Sep      float64 `csv:"sep"`
	Oct      float64 `csv:"oct"`
	Nov      float64 `csv:"nov"`
	Dec      float64 `csv:"dec"`
}

func (r *climateRow) months() []float64 {
	return []float64{r.Jan, r.Feb, r.Mar, r.Apr, r.May, r.Jun, r.Jul, r.Aug, r.Sep, r.Oct, r.Nov, r.Dec}
}

// ClimateSeries holds one meteorological quantity indexed by Timeframe:
// position 0 is the annual value (the mean of the twelve monthly values),
// positions 1..12 are January through December.
type ClimateSeries [13]float64

func newClimateSeries(months []float64) ClimateSeries {
	var s ClimateSeries
	s[Annual] = stat.Mean(months, nil)
	copy(s[January:], months)
	return s
}

// ClimateRecord holds the meteorological data for one location
// (Table 7.1-7: meteorological data for selected US locations).
type ClimateRecord struct {
	City  string
	State string // two-letter abbreviation

	Tax ClimateSeries // average daily maximum ambient temperature, degF
	Tan ClimateSeries // average daily minimum ambient temperature, degF
	V   ClimateSeries // average wind speed, mph
	I   ClimateSeries // daily total solar insolation, Btu/(ft2 day)
	PA  ClimateSeries // atmospheric pressure, psia
}

// Name returns the record's "City, ST" display name.
func (r *ClimateRecord) Name() string {
	return r.City + ", " + r.State
}

// ClimateTable is the read-only set of climate records, keyed by "City, ST".
type ClimateTable struct {
	records map[string]*ClimateRecord // keyed by upper-cased Name()
	names   []string                  // sorted display names
}

// LoadClimateTable reads a climate table from CSV. Each location carries one
// row per symbol in {TAX, TAN, V, I, PA} with twelve monthly values.
func LoadClimateTable(r io.Reader) (*ClimateTable, error) {
	var rows []*climateRow
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return nil, fmt.Errorf("parse climate table: %w", err)
	}

	records := make(map[string]*ClimateRecord)
	for _, row := range rows {
		name := row.Location + ", " + row.State
		key := strings.ToUpper(name)
		rec, ok := records[key]
		if !ok {
			rec = &ClimateRecord{City: row.Location, State: strings.ToUpper(row.State)}
			records[key] = rec
		}
		series := newClimateSeries(row.months())
		switch strings.ToUpper(row.Symbol) {
		case "TAX":
			rec.Tax = series
		case "TAN":
			rec.Tan = series
		case "V":
			rec.V = series
		case "I":
			rec.I = series
		case "PA":
			rec.PA = series
		default:
			return nil, fmt.Errorf("parse climate table: unknown symbol %q for %s", row.Symbol, name)
		}
	}

	names := make([]string, 0, len(records))
	for _, rec := range records {
		names = append(names, rec.Name())
	}
	sort.Strings(names)

	return &ClimateTable{records: records, names: names}, nil
}

// Lookup returns the record whose "City, ST" name matches, case-insensitively.
func (t *ClimateTable) Lookup(name string) (*ClimateRecord, bool) {
	key := strings.ToUpper(strings.Join(strings.Fields(name), " "))
	rec, ok := t.records[key]
	return rec, ok
}

// Names returns the sorted "City, ST" names of every known location.
func (t *ClimateTable) Names() []string {
	out := make([]string, len(t.names))
	copy(out, t.names)
	return out
}

// NamesInState returns the sorted names of the locations in the given state,
// identified by its two-letter abbreviation.
func (t *ClimateTable) NamesInState(abbr string) []string {
	suffix := ", " + strings.ToUpper(abbr)
	var out []string
	for _, name := range t.names {
		if strings.HasSuffix(strings.ToUpper(name), suffix) {
			out = append(out, name)
		}
	}
	return out
}

func loadEmbeddedClimateTable() (*ClimateTable, error) {
	f, err := dataFS.Open("data/met_us_locations.csv")
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return LoadClimateTable(f)
}
