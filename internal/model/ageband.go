package model

// AgeBand is one of five fixed, non-overlapping age ranges used as a
// grouping key. Bands are half-open at the upper edge: [0,12), [12,18),
// [18,35), [35,60), [60,∞). The declaration order is the display order.
type AgeBand int

const (
	Child AgeBand = iota
	Teen
	YoungAdult
	Adult
	Senior
)

var bandLabels = [...]string{
	Child:      "Child (0-11)",
	Teen:       "Teen (12-17)",
	YoungAdult: "Young Adult (18-34)",
	Adult:      "Adult (35-59)",
	Senior:     "Senior (60+)",
}

// bandUpper holds the exclusive upper bound of each band except the last.
var bandUpper = [...]float64{12, 18, 35, 60}

func (b AgeBand) String() string {
	if b < Child || b > Senior {
		return "unknown"
	}
	return bandLabels[b]
}

// BandFor maps an age onto the band whose interval contains it. Boundary
// values belong to the upper band (age 12 is a Teen, not a Child). Total
// over non-negative ages; the last band has no upper bound.
func BandFor(age float64) AgeBand {
	for b, upper := range bandUpper {
		if age < upper {
			return AgeBand(b)
		}
	}
	return Senior
}

// Bands returns all bands in display order (ascending lower bound).
func Bands() []AgeBand {
	return []AgeBand{Child, Teen, YoungAdult, Adult, Senior}
}
