package usecase

import "errors"

var (
	ErrCandidateNotFound = errors.New("candidate not found")
	ErrJobNotFound       = errors.New("job not found")
	ErrSkillNotFound     = errors.New("skill not found")
	ErrInvalidInput      = errors.New("invalid input")
)
