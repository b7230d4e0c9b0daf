package match

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Sub-factor weights. They sum to 1.0; skills dominate.
const (
	weightSkills        = 0.4
	weightExperience    = 0.2
	weightSalary        = 0.2
	weightLocation      = 0.1
	weightQualification = 0.1
)

// salaryUnit scales salary-range figures ("6-9" means 6 to 9 lakh) to
// annual units comparable with a candidate's expected salary.
const salaryUnit = 100000

var intPattern = regexp.MustCompile(`\d+`)

// Score computes the weighted compatibility between a job post and a
// candidate profile.
func Score(job Job, candidate Candidate) Result {
	f := Factors{
		Skills:        skillsScore(job.Skills, candidate.Skills),
		Experience:    experienceScore(job.ExperienceRequired, candidate.Experience),
		Salary:        salaryScore(job.SalaryRange, candidate.ExpectedSalary),
		Location:      locationScore(job.Location, candidate.Address),
		Qualification: qualificationScore(job.MinQualification, candidate.Qualifications),
	}

	total := weightSkills*float64(f.Skills) +
		weightExperience*float64(f.Experience) +
		weightSalary*float64(f.Salary) +
		weightLocation*float64(f.Location) +
		weightQualification*float64(f.Qualification)

	return Result{Score: roundHalfUp(total), Factors: f}
}

func roundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}

// skillsScore counts how many required skills the candidate covers. A
// required skill counts as matched when it and any candidate skill contain
// each other case-insensitively in either direction, so "React" still
// matches "React.js". Blank required entries are ignored entirely; they
// neither match nor count toward the denominator.
func skillsScore(required, offered []string) int {
	total := 0
	matched := 0
	for _, req := range required {
		r := strings.ToLower(strings.TrimSpace(req))
		if r == "" {
			continue
		}
		total++
		for _, off := range offered {
			o := strings.ToLower(strings.TrimSpace(off))
			if o == "" {
				continue
			}
			if strings.Contains(r, o) || strings.Contains(o, r) {
				matched++
				break
			}
		}
	}

	if total == 0 {
		return 100
	}

	return roundHalfUp(float64(matched) / float64(total) * 100)
}

// experienceScore compares the first year figure in the job's requirement
// text against the candidate's summed per-position years.
func experienceScore(requirement string, history []ExperienceEntry) int {
	requiredYears := firstInt(requirement)
	if requiredYears == 0 {
		return 100
	}

	candidateYears := 0
	for _, e := range history {
		candidateYears += firstInt(e.Duration)
	}

	switch {
	case candidateYears >= requiredYears:
		return 100
	case candidateYears == 0:
		return 0
	default:
		return roundHalfUp(float64(candidateYears) / float64(requiredYears) * 100)
	}
}

// salaryScore checks the candidate's expectation against the job's range.
// Inside the range scores full marks; outside it falls off with distance
// from the range midpoint. Unparseable ranges and unspecified expectations
// never penalize.
func salaryScore(rangeText string, expected int) int {
	nums := intPattern.FindAllString(rangeText, 2)
	if len(nums) == 0 {
		return 100
	}
	if expected == 0 {
		return 100
	}

	min, _ := strconv.Atoi(nums[0])
	max := min
	if len(nums) > 1 {
		max, _ = strconv.Atoi(nums[1])
	}
	min *= salaryUnit
	max *= salaryUnit

	if expected >= min && expected <= max {
		return 100
	}

	midpoint := float64(min+max) / 2
	diff := math.Abs(float64(expected) - midpoint)
	denom := math.Max(float64(expected), midpoint)
	score := roundHalfUp(100 - diff/denom*100)
	if score < 0 {
		return 0
	}
	return score
}

// firstInt extracts the first integer appearing in free text, 0 if none.
func firstInt(s string) int {
	m := intPattern.FindString(s)
	if m == "" {
		return 0
	}
	n, err := strconv.Atoi(m)
	if err != nil {
		return 0
	}
	return n
}
