package matching

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func f64(v float64) *float64 { return &v }

func edu(e Education) *Education { return &e }

func candidateWithSkills(ids ...uuid.UUID) Candidate {
	c := Candidate{ID: uuid.New()}
	for _, id := range ids {
		c.Skills = append(c.Skills, CandidateSkill{SkillID: id, Proficiency: ProficiencyExpert})
	}
	return c
}

func jobRequiringSkills(ids ...uuid.UUID) Job {
	j := Job{ID: uuid.New(), WorkType: WorkTypeOnsite}
	for _, id := range ids {
		j.Skills = append(j.Skills, JobSkill{SkillID: id, RequiredLevel: ProficiencyIntermediate, IsRequired: true})
	}
	return j
}

func TestCalculate_WeightConservation(t *testing.T) {
	a, b, c := uuid.New(), uuid.New(), uuid.New()
	city := uuid.New()

	cand := candidateWithSkills(a, b)
	cand.YearsExperience = 2
	cand.Education = EducationBachelor
	cand.ExpectedSalary = f64(90000)
	cand.CityID = &city

	job := jobRequiringSkills(a, b, c)
	job.ExperienceRequired = 5
	job.EducationRequired = edu(EducationMaster)
	job.SalaryMin = f64(40000)
	job.SalaryMax = f64(50000)

	br, _ := Evaluate(cand, job)
	require.InDelta(t, br.Total(), br.Skill+br.Experience+br.Education+br.Location+br.Salary, 1e-9)

	assert.LessOrEqual(t, br.Skill, WeightSkill)
	assert.LessOrEqual(t, br.Experience, WeightExperience)
	assert.LessOrEqual(t, br.Education, WeightEducation)
	assert.LessOrEqual(t, br.Location, WeightLocation)
	assert.LessOrEqual(t, br.Salary, WeightSalary)

	score := Calculate(cand, job)
	assert.GreaterOrEqual(t, score.Total, 0)
	assert.LessOrEqual(t, score.Total, 100)
}

func TestSkillScore_NoRequirementsScoresZero(t *testing.T) {
	cand := candidateWithSkills(uuid.New(), uuid.New())
	job := Job{ID: uuid.New(), WorkType: WorkTypeOnsite}

	br, analysis := Evaluate(cand, job)
	assert.Zero(t, br.Skill)
	assert.Zero(t, analysis.TotalRequiredSkills)
	assert.Equal(t, 2, analysis.TotalCandidateSkills)
}

func TestSkillScore_Monotonic(t *testing.T) {
	required := []uuid.UUID{uuid.New(), uuid.New(), uuid.New(), uuid.New()}
	job := jobRequiringSkills(required...)

	prev := -1.0
	for matched := 0; matched <= len(required); matched++ {
		cand := candidateWithSkills(required[:matched]...)
		br, _ := Evaluate(cand, job)
		require.GreaterOrEqual(t, br.Skill, prev, "matched=%d", matched)
		prev = br.Skill
	}
	assert.InDelta(t, WeightSkill, prev, 1e-9)
}

func TestExperienceScore_FullCreditWhenNoRequirement(t *testing.T) {
	job := jobRequiringSkills(uuid.New())
	job.ExperienceRequired = 0

	for _, years := range []int{0, 1, 30} {
		cand := Candidate{ID: uuid.New(), YearsExperience: years}
		br, _ := Evaluate(cand, job)
		assert.InDelta(t, WeightExperience, br.Experience, 1e-9, "years=%d", years)
	}
}

func TestExperienceScore_GraduatedCredit(t *testing.T) {
	cases := []struct {
		years int
		want  float64
	}{
		{10, 25},
		{5, 25},
		{4, 20}, // 80% of 5
		{3, 15}, // 60%
		{2, 10}, // 40%
		{1, 5},
		{0, 5},
	}
	for _, tc := range cases {
		got := experienceScore(tc.years, 5)
		assert.Equal(t, tc.want, got, "years=%d", tc.years)
	}
}

func TestEducationScore_Tiers(t *testing.T) {
	assert.Equal(t, 15.0, educationScore(EducationHighSchool, nil))
	assert.Equal(t, 15.0, educationScore(EducationBachelor, edu(EducationBachelor)))
	assert.Equal(t, 15.0, educationScore(EducationPhD, edu(EducationHighSchool)))
	assert.Equal(t, 10.0, educationScore(EducationBachelor, edu(EducationMaster)))
	assert.Equal(t, 10.0, educationScore(EducationMaster, edu(EducationPhD)))
	assert.Equal(t, 5.0, educationScore(EducationHighSchool, edu(EducationPhD)))
	assert.Equal(t, 5.0, educationScore(EducationCollege, edu(EducationMaster)))
}

func TestLocationScore_RemoteOverridesCity(t *testing.T) {
	candCity, jobCity := uuid.New(), uuid.New()
	cand := Candidate{ID: uuid.New(), CityID: &candCity}

	job := Job{ID: uuid.New(), WorkType: WorkTypeRemote, CityID: &jobCity}
	br, _ := Evaluate(cand, job)
	assert.Equal(t, WeightLocation, br.Location)

	job.WorkType = WorkTypeHybrid
	br, _ = Evaluate(cand, job)
	assert.Equal(t, 7.0, br.Location)

	job.WorkType = WorkTypeOnsite
	br, _ = Evaluate(cand, job)
	assert.Equal(t, 3.0, br.Location)

	job.CityID = &candCity
	br, _ = Evaluate(cand, job)
	assert.Equal(t, WeightLocation, br.Location)
}

func TestSalaryScore_BandAndGapTiers(t *testing.T) {
	smin, smax := f64(50000), f64(60000)

	assert.Equal(t, 10.0, salaryScore(nil, smin, smax))
	assert.Equal(t, 10.0, salaryScore(f64(55000), nil, nil))
	assert.Equal(t, 10.0, salaryScore(f64(50000), smin, smax))
	assert.Equal(t, 10.0, salaryScore(f64(60000), smin, smax))

	// below the band: gap relative to salary_min
	assert.Equal(t, 8.0, salaryScore(f64(45000), smin, smax)) // 10% under
	assert.Equal(t, 6.0, salaryScore(f64(35000), smin, smax)) // 30% under
	assert.Equal(t, 3.0, salaryScore(f64(20000), smin, smax)) // 60% under

	// above the band: gap relative to salary_max
	assert.Equal(t, 8.0, salaryScore(f64(66000), smin, smax)) // 10% over
	assert.Equal(t, 6.0, salaryScore(f64(78000), smin, smax)) // 30% over
	assert.Equal(t, 3.0, salaryScore(f64(90000), smin, smax)) // 50% over
}

func TestGradeFor_InclusiveLowerBounds(t *testing.T) {
	cases := []struct {
		total int
		want  Grade
	}{
		{100, GradeExcellent},
		{90, GradeExcellent},
		{89, GradeVeryGood},
		{80, GradeVeryGood},
		{79, GradeGood},
		{70, GradeGood},
		{69, GradeFair},
		{60, GradeFair},
		{59, GradePoor},
		{0, GradePoor},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, GradeFor(tc.total), "total=%d", tc.total)
	}
}

func TestCalculate_Idempotent(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	city := uuid.New()
	cand := candidateWithSkills(a, b)
	cand.YearsExperience = 3
	cand.Education = EducationMaster
	cand.ExpectedSalary = f64(72000)
	cand.CityID = &city

	job := jobRequiringSkills(a, b)
	job.ExperienceRequired = 4
	job.EducationRequired = edu(EducationBachelor)
	job.WorkType = WorkTypeHybrid
	job.SalaryMin = f64(60000)
	job.SalaryMax = f64(70000)

	first := Calculate(cand, job)
	second := Calculate(cand, job)
	assert.Equal(t, first, second)
}

// Worked example: 2/3 of required skills (26.67), experience 5>=3 (25),
// exact education (15), onsite same city (10), salary in band (10).
// Total rounds to 87.
func TestCalculate_ReferenceExample(t *testing.T) {
	a, b, c := uuid.New(), uuid.New(), uuid.New()
	city := uuid.New()

	cand := candidateWithSkills(a, b)
	cand.YearsExperience = 5
	cand.Education = EducationBachelor
	cand.ExpectedSalary = f64(60000)
	cand.CityID = &city

	job := jobRequiringSkills(a, b, c)
	job.ExperienceRequired = 3
	job.EducationRequired = edu(EducationBachelor)
	job.WorkType = WorkTypeOnsite
	job.CityID = &city
	job.SalaryMin = f64(55000)
	job.SalaryMax = f64(65000)

	score := Calculate(cand, job)
	assert.Equal(t, 87, score.Total)
	assert.Equal(t, GradeVeryGood, score.Grade)
	assert.Equal(t, 27, score.SkillScore)
	assert.Equal(t, 25, score.ExperienceScore)
	assert.Equal(t, 15, score.EducationScore)
	assert.Equal(t, 10, score.LocationScore)
	assert.Equal(t, 10, score.SalaryScore)
	assert.Equal(t, 2, score.Skills.MatchedSkills)
	assert.Equal(t, 3, score.Skills.TotalRequiredSkills)

	assert.Equal(t, score.Total, TotalScore(cand, job))
}

func TestAnalyzeSkills_IgnoresDuplicatesAndNilIDs(t *testing.T) {
	a := uuid.New()
	cand := Candidate{ID: uuid.New(), Skills: []CandidateSkill{
		{SkillID: a, Proficiency: ProficiencyAdvanced},
		{SkillID: a, Proficiency: ProficiencyBeginner},
		{SkillID: uuid.Nil},
	}}
	job := jobRequiringSkills(a)

	_, analysis := Evaluate(cand, job)
	assert.Equal(t, 1, analysis.MatchedSkills)
	assert.Equal(t, 1, analysis.TotalCandidateSkills)
}
