package validate

import "strings"

var usStates = map[string]string{
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

// USState validates a United States state name or two-letter
// abbreviation. It returns the abbreviation, or the full name when
// returnName is set.
func USState(value string, returnName bool, opts *Options) (string, error) {
	v, done, err := prevalidate(value, opts)
	if err != nil {
		return "", err
	}
	if done {
		return v, nil
	}

	upper := strings.ToUpper(v)
	if name, ok := usStates[upper]; ok {
		if returnName {
			return name, nil
		}
		return upper, nil
	}
	for abbrev, name := range usStates {
		if strings.EqualFold(name, v) {
			if returnName {
				return name, nil
			}
			return abbrev, nil
		}
	}
	return "", fail(v, "'%s' is not a U.S. state.", v)
}
