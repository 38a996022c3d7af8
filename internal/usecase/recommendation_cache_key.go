package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"

	"github.com/google/uuid"
)

type recommendationsCacheKeyInput struct {
	CandidateID string `json:"candidate_id"`
	Algorithm   string `json:"algorithm"`
	Limit       int    `json:"limit"`
}

func RecommendationsCacheKey(candidateID uuid.UUID, algorithm string, limit int) string {
	in := recommendationsCacheKeyInput{
		CandidateID: candidateID.String(),
		Algorithm:   strings.ToLower(strings.TrimSpace(algorithm)),
		Limit:       limit,
	}

	b, _ := json.Marshal(in)
	sum := sha256.Sum256(b)
	return "recommendations:" + hex.EncodeToString(sum[:])
}
