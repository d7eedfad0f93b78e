package nightcast

import "sort"

// LightBand groups moon illumination into the coarse bands the species
// preference table is keyed by.
type LightBand string

const (
	LightDark     LightBand = "dark"     // illumination < 30%
	LightModerate LightBand = "moderate" // 30-70%
	LightBright   LightBand = "bright"   // > 70%
)

// Species is one row of the static night-preference table.
type Species struct {
	Name        string
	NightRating int
	LightBands  []LightBand
	Notes       string
}

// DefaultSpecies returns the embedded reference table. Callers may inject
// their own table through NewService; the engine only filters and sorts.
func DefaultSpecies() []Species {
	return []Species{
		{Name: "Walleye", NightRating: 10, LightBands: []LightBand{LightDark, LightModerate}, Notes: "feeds aggressively in low light"},
		{Name: "Channel Catfish", NightRating: 9, LightBands: []LightBand{LightDark, LightModerate, LightBright}, Notes: "scent feeder, active all night"},
		{Name: "Blue Catfish", NightRating: 9, LightBands: []LightBand{LightDark, LightModerate}, Notes: "chases bait after dark"},
		{Name: "Striped Bass", NightRating: 8, LightBands: []LightBand{LightModerate, LightBright}, Notes: "hunts shad under moonlight"},
		{Name: "Brown Trout", NightRating: 8, LightBands: []LightBand{LightDark}, Notes: "large browns roam on the darkest nights"},
		{Name: "Snook", NightRating: 8, LightBands: []LightBand{LightModerate, LightBright}, Notes: "stacks up in dock lights"},
		{Name: "Crappie", NightRating: 7, LightBands: []LightBand{LightBright, LightModerate}, Notes: "schools near submerged lights"},
		{Name: "Largemouth Bass", NightRating: 7, LightBands: []LightBand{LightModerate, LightBright}, Notes: "prowls shallows on bright nights"},
		{Name: "Muskellunge", NightRating: 6, LightBands: []LightBand{LightModerate}, Notes: "brief feeding bursts around dusk"},
		{Name: "Common Carp", NightRating: 6, LightBands: []LightBand{LightDark, LightModerate}, Notes: "roots margins in the dark"},
		{Name: "Flathead Catfish", NightRating: 9, LightBands: []LightBand{LightDark}, Notes: "strictly nocturnal ambush feeder"},
		{Name: "White Bass", NightRating: 5, LightBands: []LightBand{LightBright}, Notes: "surface schools under full moon"},
	}
}

// lightBandFor maps moon illumination to its preference band.
func lightBandFor(illuminationPercent float64) LightBand {
	switch {
	case illuminationPercent < 30:
		return LightDark
	case illuminationPercent <= 70:
		return LightModerate
	default:
		return LightBright
	}
}

const bestSpeciesLimit = 5

// bestSpecies filters the table by the current light band, sorts by night
// rating descending (name ascending on ties, keeping output stable) and
// truncates to five.
func bestSpecies(table []Species, illuminationPercent float64) []SpeciesPick {
	band := lightBandFor(illuminationPercent)
	picks := make([]SpeciesPick, 0, len(table))
	for _, sp := range table {
		for _, b := range sp.LightBands {
			if b == band {
				picks = append(picks, SpeciesPick{Name: sp.Name, NightRating: sp.NightRating, Notes: sp.Notes})
				break
			}
		}
	}
	sort.Slice(picks, func(i, j int) bool {
		if picks[i].NightRating != picks[j].NightRating {
			return picks[i].NightRating > picks[j].NightRating
		}
		return picks[i].Name < picks[j].Name
	})
	if len(picks) > bestSpeciesLimit {
		picks = picks[:bestSpeciesLimit]
	}
	return picks
}
