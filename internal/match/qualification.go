package match

import "strings"

// qualificationTiers maps degree keywords to a level, highest first.
// Synonyms within a tier share the level; matching is case-insensitive
// substring against the qualification text.
var qualificationTiers = []struct {
	level    int
	keywords []string
}{
	{4, []string{"phd", "ph.d", "doctorate", "doctoral"}},
	{3, []string{"master", "mba", "m.tech", "mtech", "m.sc", "msc", "mca", "postgraduate", "post graduate", "pgdm"}},
	{2, []string{"bachelor", "b.tech", "btech", "b.sc", "bsc", "b.e", "bca", "undergraduate", "graduate", "degree"}},
	{1, []string{"diploma", "associate", "iti", "certificate"}},
}

// qualificationLevel maps free text to a tier level, 0 when no keyword of
// any tier matches. Tiers are scanned highest first so "post graduate
// diploma" resolves to the master tier, not the diploma tier.
func qualificationLevel(text string) int {
	s := strings.ToLower(text)
	if s == "" {
		return 0
	}
	for _, tier := range qualificationTiers {
		for _, kw := range tier.keywords {
			if strings.Contains(s, kw) {
				return tier.level
			}
		}
	}
	return 0
}

// qualificationScore compares the candidate's best degree level against the
// job's minimum. Unparseable job requirements and empty candidate lists
// never penalize.
func qualificationScore(minQualification string, held []Qualification) int {
	jobLevel := qualificationLevel(minQualification)
	if jobLevel == 0 || len(held) == 0 {
		return 100
	}

	candidateLevel := 0
	for _, q := range held {
		if l := qualificationLevel(q.Degree); l > candidateLevel {
			candidateLevel = l
		}
	}

	switch {
	case candidateLevel >= jobLevel:
		return 100
	case candidateLevel == 0:
		return 0
	default:
		return roundHalfUp(float64(candidateLevel) / float64(jobLevel) * 100)
	}
}
