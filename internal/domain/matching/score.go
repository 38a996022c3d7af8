package matching

import (
	"math"

	"github.com/google/uuid"
)

// Factor weights. They sum to 100, so the total never needs explicit
// clamping: every sub-score is non-negative and bounded by its weight.
const (
	WeightSkill      = 40.0
	WeightExperience = 25.0
	WeightEducation  = 15.0
	WeightLocation   = 10.0
	WeightSalary     = 10.0
)

type Grade string

const (
	GradeExcellent Grade = "EXCELLENT"
	GradeVeryGood  Grade = "VERY_GOOD"
	GradeGood      Grade = "GOOD"
	GradeFair      Grade = "FAIR"
	GradePoor      Grade = "POOR"
)

// Breakdown carries the unrounded per-factor contributions. Rounding happens
// once, when a Score is built, so the pairwise calculator and the bulk
// searches cannot diverge for the same pair.
type Breakdown struct {
	Skill      float64
	Experience float64
	Education  float64
	Location   float64
	Salary     float64
}

func (b Breakdown) Total() float64 {
	return b.Skill + b.Experience + b.Education + b.Location + b.Salary
}

type SkillAnalysis struct {
	MatchedSkills        int
	TotalRequiredSkills  int
	TotalCandidateSkills int
}

type Score struct {
	Total           int
	Grade           Grade
	SkillScore      int
	ExperienceScore int
	EducationScore  int
	LocationScore   int
	SalaryScore     int
	Skills          SkillAnalysis
}

// Evaluate computes the weighted compatibility breakdown for one
// candidate/job pair. It is a pure function of its inputs.
func Evaluate(c Candidate, j Job) (Breakdown, SkillAnalysis) {
	analysis := analyzeSkills(c, j)

	b := Breakdown{
		Skill:      skillScore(analysis),
		Experience: experienceScore(c.YearsExperience, j.ExperienceRequired),
		Education:  educationScore(c.Education, j.EducationRequired),
		Location:   locationScore(c.CityID, j),
		Salary:     salaryScore(c.ExpectedSalary, j.SalaryMin, j.SalaryMax),
	}
	return b, analysis
}

// Calculate evaluates the pair and reports it as integers. The total is the
// rounded sum of the fractional sub-scores, not a sum of rounded parts.
func Calculate(c Candidate, j Job) Score {
	b, analysis := Evaluate(c, j)
	total := int(math.Round(b.Total()))

	return Score{
		Total:           total,
		Grade:           GradeFor(total),
		SkillScore:      int(math.Round(b.Skill)),
		ExperienceScore: int(math.Round(b.Experience)),
		EducationScore:  int(math.Round(b.Education)),
		LocationScore:   int(math.Round(b.Location)),
		SalaryScore:     int(math.Round(b.Salary)),
		Skills:          analysis,
	}
}

// TotalScore is the bulk-search entry point: same formula, no per-factor
// reporting allocation.
func TotalScore(c Candidate, j Job) int {
	b, _ := Evaluate(c, j)
	return int(math.Round(b.Total()))
}

func GradeFor(total int) Grade {
	switch {
	case total >= 90:
		return GradeExcellent
	case total >= 80:
		return GradeVeryGood
	case total >= 70:
		return GradeGood
	case total >= 60:
		return GradeFair
	default:
		return GradePoor
	}
}

func analyzeSkills(c Candidate, j Job) SkillAnalysis {
	required := make(map[uuid.UUID]struct{}, len(j.Skills))
	for _, s := range j.Skills {
		if s.SkillID == uuid.Nil {
			continue
		}
		required[s.SkillID] = struct{}{}
	}

	matched := 0
	candidateTotal := 0
	seen := make(map[uuid.UUID]struct{}, len(c.Skills))
	for _, s := range c.Skills {
		if s.SkillID == uuid.Nil {
			continue
		}
		if _, dup := seen[s.SkillID]; dup {
			continue
		}
		seen[s.SkillID] = struct{}{}
		candidateTotal++
		if _, ok := required[s.SkillID]; ok {
			matched++
		}
	}

	return SkillAnalysis{
		MatchedSkills:        matched,
		TotalRequiredSkills:  len(required),
		TotalCandidateSkills: candidateTotal,
	}
}

// A job without skill requirements scores 0 here, not full credit. The
// other factors default the opposite way when unspecified; that asymmetry
// is intentional and covered by tests.
func skillScore(a SkillAnalysis) float64 {
	if a.TotalRequiredSkills == 0 {
		return 0
	}
	return float64(a.MatchedSkills) / float64(a.TotalRequiredSkills) * WeightSkill
}

func experienceScore(candidateYears, requiredYears int) float64 {
	if requiredYears <= 0 {
		return WeightExperience
	}
	y := float64(candidateYears)
	req := float64(requiredYears)
	switch {
	case y >= req:
		return 25
	case y >= req*0.8:
		return 20
	case y >= req*0.6:
		return 15
	case y >= req*0.4:
		return 10
	default:
		return 5
	}
}

func educationScore(candidate Education, required *Education) float64 {
	if required == nil || *required == EducationUnknown {
		return WeightEducation
	}
	switch {
	case candidate >= *required:
		return 15
	case candidate == *required-1:
		return 10
	default:
		return 5
	}
}

func locationScore(candidateCity *uuid.UUID, j Job) float64 {
	if j.WorkType == WorkTypeRemote {
		return WeightLocation
	}
	if candidateCity != nil && j.CityID != nil && *candidateCity == *j.CityID {
		return WeightLocation
	}
	if j.WorkType == WorkTypeHybrid {
		return 7
	}
	return 3
}

func salaryScore(expected, salaryMin, salaryMax *float64) float64 {
	if salaryMin == nil || salaryMax == nil || expected == nil {
		return WeightSalary
	}
	exp := *expected
	if exp >= *salaryMin && exp <= *salaryMax {
		return WeightSalary
	}

	var gap float64
	if exp < *salaryMin {
		gap = relativeGap(*salaryMin-exp, *salaryMin)
	} else {
		gap = relativeGap(exp-*salaryMax, *salaryMax)
	}
	switch {
	case gap < 0.2:
		return 8
	case gap < 0.4:
		return 6
	default:
		return 3
	}
}

func relativeGap(diff, bound float64) float64 {
	if bound <= 0 {
		return 1
	}
	return diff / bound
}
