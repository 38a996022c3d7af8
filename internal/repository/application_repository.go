package repository

import (
	"context"

	"talent-match/internal/database"

	"github.com/google/uuid"
)

type ApplicationRepository interface {
	HasApplied(ctx context.Context, candidateID, jobID uuid.UUID) (bool, error)
}

type PostgresApplicationRepository struct {
	db database.DB
}

func NewPostgresApplicationRepository(db database.DB) *PostgresApplicationRepository {
	return &PostgresApplicationRepository{db: db}
}

func (r *PostgresApplicationRepository) HasApplied(ctx context.Context, candidateID, jobID uuid.UUID) (bool, error) {
	var exists bool
	row := r.db.QueryRow(ctx,
		`SELECT EXISTS(
		   SELECT 1 FROM applications
		   WHERE candidate_id = $1 AND job_id = $2
		 )`,
		candidateID, jobID,
	)
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}
