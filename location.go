package tanktemp

import (
	"errors"
	"fmt"
	"strings"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"
	"gonum.org/v1/gonum/floats"
)

var (
	// ErrUnknownLocation marks a location query that matches nothing in the
	// climate table.
	ErrUnknownLocation = errors.New("unknown location")

	// ErrAmbiguousLocation marks a location query naming a whole state; the
	// resolver lists the state's locations instead of guessing a city.
	ErrAmbiguousLocation = errors.New("ambiguous location")
)

// Token-sort-ratio score (0-100) above which a near-miss query earns a
// single "did you mean" suggestion.
const fuzzySuggestThreshold = 90

// stateNames maps postal abbreviations to full state names.
var stateNames = map[string]string{
	"AL": "Alabama", "AK": "Alaska", "AZ": "Arizona", "AR": "Arkansas",
	"CA": "California", "CO": "Colorado", "CT": "Connecticut", "DE": "Delaware",
	"FL": "Florida", "GA": "Georgia", "HI": "Hawaii", "ID": "Idaho",
	"IL": "Illinois", "IN": "Indiana", "IA": "Iowa", "KS": "Kansas",
	"KY": "Kentucky", "LA": "Louisiana", "ME": "Maine", "MD": "Maryland",
	"MA": "Massachusetts", "MI": "Michigan", "MN": "Minnesota", "MS": "Mississippi",
	"MO": "Missouri", "MT": "Montana", "NE": "Nebraska", "NV": "Nevada",
	"NH": "New Hampshire", "NJ": "New Jersey", "NM": "New Mexico", "NY": "New York",
	"NC": "North Carolina", "ND": "North Dakota", "OH": "Ohio", "OK": "Oklahoma",
	"OR": "Oregon", "PA": "Pennsylvania", "RI": "Rhode Island", "SC": "South Carolina",
	"SD": "South Dakota", "TN": "Tennessee", "TX": "Texas", "UT": "Utah",
	"VT": "Vermont", "VA": "Virginia", "WA": "Washington", "WV": "West Virginia",
	"WI": "Wisconsin", "WY": "Wyoming", "DC": "District of Columbia",
}

// Resolve maps a free-text city/state query to a climate record.
//
// A query naming a whole state (abbreviation or full name) fails with the
// state's available locations; an exact "City, ST" match succeeds; anything
// else fails, with a single suggestion when a known location scores above
// the similarity threshold. The resolver never silently picks a city.
func (t *ClimateTable) Resolve(query string) (*ClimateRecord, error) {
	q := strings.Join(strings.Fields(query), " ")
	if q == "" {
		return nil, fmt.Errorf("%w: empty location", ErrUnknownLocation)
	}
	upper := strings.ToUpper(q)

	if _, ok := stateNames[upper]; ok {
		return nil, t.stateGuidance(upper, query)
	}
	for abbr, name := range stateNames {
		if upper == strings.ToUpper(name) {
			return nil, t.stateGuidance(abbr, query)
		}
	}

	if rec, ok := t.Lookup(q); ok {
		return rec, nil
	}

	if suggestion, ok := t.closestName(upper); ok {
		return nil, fmt.Errorf("%w: %q; did you mean %q?", ErrUnknownLocation, query, suggestion)
	}
	return nil, fmt.Errorf("%w: %q; no close match among the %d known locations (see Names for the available list)",
		ErrUnknownLocation, query, len(t.names))
}

// stateGuidance builds the error for a query that named a state rather than
// a location, enumerating the state's available locations.
func (t *ClimateTable) stateGuidance(abbr, query string) error {
	locations := t.NamesInState(abbr)
	if len(locations) == 0 {
		return fmt.Errorf("%w: %q names the state of %s, which has no locations in the climate table",
			ErrAmbiguousLocation, query, stateNames[abbr])
	}
	return fmt.Errorf("%w: %q names the state of %s; pick one of its locations: %s",
		ErrAmbiguousLocation, query, stateNames[abbr], strings.Join(locations, "; "))
}

// closestName scans every known location with a token-sort ratio and returns
// the best-scoring name when it clears the suggestion threshold.
func (t *ClimateTable) closestName(upperQuery string) (string, bool) {
	if len(t.names) == 0 {
		return "", false
	}
	scores := make([]float64, len(t.names))
	for i, name := range t.names {
		scores[i] = float64(fuzzy.TokenSortRatio(upperQuery, strings.ToUpper(name)))
	}
	best := floats.MaxIdx(scores)
	if scores[best] > fuzzySuggestThreshold {
		return t.names[best], true
	}
	return "", false
}
