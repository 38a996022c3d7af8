package matching

import (
	"time"

	"github.com/google/uuid"
)

// Proficiency is the ordinal skill strength shared by candidate skills and
// job requirements.
type Proficiency int

const (
	ProficiencyUnknown Proficiency = iota
	ProficiencyBeginner
	ProficiencyIntermediate
	ProficiencyAdvanced
	ProficiencyExpert
)

func (p Proficiency) String() string {
	switch p {
	case ProficiencyBeginner:
		return "BEGINNER"
	case ProficiencyIntermediate:
		return "INTERMEDIATE"
	case ProficiencyAdvanced:
		return "ADVANCED"
	case ProficiencyExpert:
		return "EXPERT"
	default:
		return "UNKNOWN"
	}
}

func ParseProficiency(s string) Proficiency {
	switch s {
	case "BEGINNER":
		return ProficiencyBeginner
	case "INTERMEDIATE":
		return ProficiencyIntermediate
	case "ADVANCED":
		return ProficiencyAdvanced
	case "EXPERT":
		return ProficiencyExpert
	default:
		return ProficiencyUnknown
	}
}

// Education is the ordinal education scale. Higher values strictly dominate
// lower ones when comparing against a job requirement.
type Education int

const (
	EducationUnknown Education = iota
	EducationHighSchool
	EducationCollege
	EducationBachelor
	EducationMaster
	EducationPhD
)

func (e Education) String() string {
	switch e {
	case EducationHighSchool:
		return "HIGH_SCHOOL"
	case EducationCollege:
		return "COLLEGE"
	case EducationBachelor:
		return "BACHELOR"
	case EducationMaster:
		return "MASTER"
	case EducationPhD:
		return "PHD"
	default:
		return "UNKNOWN"
	}
}

func ParseEducation(s string) Education {
	switch s {
	case "HIGH_SCHOOL":
		return EducationHighSchool
	case "COLLEGE":
		return EducationCollege
	case "BACHELOR":
		return EducationBachelor
	case "MASTER":
		return EducationMaster
	case "PHD":
		return EducationPhD
	default:
		return EducationUnknown
	}
}

type WorkType string

const (
	WorkTypeOnsite WorkType = "ONSITE"
	WorkTypeRemote WorkType = "REMOTE"
	WorkTypeHybrid WorkType = "HYBRID"
)

type CandidateSkill struct {
	SkillID         uuid.UUID
	SkillName       string
	Proficiency     Proficiency
	YearsExperience int
}

// Candidate is the read-only profile snapshot the engine scores against.
type Candidate struct {
	ID              uuid.UUID
	FullName        string
	YearsExperience int
	Education       Education
	ExpectedSalary  *float64
	CityID          *uuid.UUID
	Skills          []CandidateSkill
}

type JobSkill struct {
	SkillID       uuid.UUID
	SkillName     string
	RequiredLevel Proficiency
	IsRequired    bool
}

// Job is the read-only posting snapshot the engine scores against.
// ExperienceRequired of zero means no requirement.
type Job struct {
	ID                 uuid.UUID
	Title              string
	CompanyName        string
	CompanyLogoURL     string
	EmploymentType     string
	WorkType           WorkType
	CityID             *uuid.UUID
	CityName           string
	ExperienceRequired int
	EducationRequired  *Education
	SalaryMin          *float64
	SalaryMax          *float64
	Deadline           *time.Time
	PostedAt           time.Time
	Skills             []JobSkill
}
