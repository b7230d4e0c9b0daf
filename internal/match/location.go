package match

import (
	"sort"
	"strings"
)

// gazetteer maps recognized city names (and common alternate spellings) to a
// canonical city. Used as a fallback when neither location string contains
// the other.
var gazetteer = map[string]string{
	"mumbai":     "mumbai",
	"bombay":     "mumbai",
	"delhi":      "delhi",
	"new delhi":  "delhi",
	"bangalore":  "bangalore",
	"bengaluru":  "bangalore",
	"hyderabad":  "hyderabad",
	"chennai":    "chennai",
	"madras":     "chennai",
	"kolkata":    "kolkata",
	"calcutta":   "kolkata",
	"pune":       "pune",
	"ahmedabad":  "ahmedabad",
	"jaipur":     "jaipur",
	"lucknow":    "lucknow",
	"noida":      "noida",
	"gurgaon":    "gurgaon",
	"gurugram":   "gurgaon",
	"chandigarh": "chandigarh",
	"indore":     "indore",
	"kochi":      "kochi",
	"cochin":     "kochi",
}

// gazetteerNames holds the recognized names in sorted order so lookups scan
// the gazetteer deterministically regardless of map iteration order.
var gazetteerNames []string

func init() {
	gazetteerNames = make([]string, 0, len(gazetteer))
	for name := range gazetteer {
		gazetteerNames = append(gazetteerNames, name)
	}
	sort.Strings(gazetteerNames)
}

// locationScore is a soft, low-weight signal: missing location data on
// either side never disqualifies a match.
//
//	either side empty            -> 100
//	one string contains other    -> 100
//	same recognized city in both -> 80
//	anything else                -> 50
func locationScore(jobLocation, candidateAddress string) int {
	j := strings.ToLower(strings.TrimSpace(jobLocation))
	c := strings.ToLower(strings.TrimSpace(candidateAddress))

	if j == "" || c == "" {
		return 100
	}
	if strings.Contains(j, c) || strings.Contains(c, j) {
		return 100
	}

	jc := recognizedCity(j)
	cc := recognizedCity(c)
	if jc != "" && jc == cc {
		return 80
	}
	return 50
}

// recognizedCity returns the canonical city contained in s, or "". When s
// mentions several recognized cities the one appearing earliest wins; a tie
// at the same position goes to the longer name, so "new delhi" beats
// "delhi".
func recognizedCity(s string) string {
	bestName := ""
	bestIdx := -1
	for _, name := range gazetteerNames {
		idx := strings.Index(s, name)
		if idx < 0 {
			continue
		}
		if bestIdx == -1 || idx < bestIdx || (idx == bestIdx && len(name) > len(bestName)) {
			bestName = name
			bestIdx = idx
		}
	}
	if bestName == "" {
		return ""
	}
	return gazetteer[bestName]
}
