package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"bigfive-api/internal/domain"
)

type ResultRepository interface {
	Upsert(ctx context.Context, result domain.TestResult) error
	GetBySession(ctx context.Context, sessionID string) (domain.TestResult, error)
}

type PgResultRepository struct {
	pool *pgxpool.Pool
}

func NewPgResultRepository(pool *pgxpool.Pool) *PgResultRepository {
	return &PgResultRepository{pool: pool}
}

// Upsert reemplaza por completo el snapshot de resultado de la sesion.
// Nunca hay merge: un recalculo pisa la fila entera.
func (r *PgResultRepository) Upsert(ctx context.Context, result domain.TestResult) error {
	const query = `
		INSERT INTO test_results (session_id, trait_scores, facet_scores, classifications, calculated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (session_id)
		DO UPDATE SET
			trait_scores = EXCLUDED.trait_scores,
			facet_scores = EXCLUDED.facet_scores,
			classifications = EXCLUDED.classifications,
			calculated_at = EXCLUDED.calculated_at
	`

	traitScores, err := json.Marshal(result.TraitScores)
	if err != nil {
		return fmt.Errorf("marshal trait scores: %w", err)
	}
	facetScores, err := json.Marshal(result.FacetScores)
	if err != nil {
		return fmt.Errorf("marshal facet scores: %w", err)
	}
	classifications, err := json.Marshal(result.Classifications)
	if err != nil {
		return fmt.Errorf("marshal classifications: %w", err)
	}

	_, err = r.pool.Exec(ctx, query,
		result.SessionID,
		traitScores,
		facetScores,
		classifications,
		result.CalculatedAt,
	)
	return err
}

func (r *PgResultRepository) GetBySession(ctx context.Context, sessionID string) (domain.TestResult, error) {
	const query = `
		SELECT session_id, trait_scores, facet_scores, classifications, calculated_at
		FROM test_results
		WHERE session_id = $1
	`
	var (
		result          domain.TestResult
		traitScores     []byte
		facetScores     []byte
		classifications []byte
	)
	err := r.pool.QueryRow(ctx, query, sessionID).Scan(
		&result.SessionID,
		&traitScores,
		&facetScores,
		&classifications,
		&result.CalculatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.TestResult{}, err
	}
	if err != nil {
		return domain.TestResult{}, err
	}

	if err := json.Unmarshal(traitScores, &result.TraitScores); err != nil {
		return domain.TestResult{}, fmt.Errorf("unmarshal trait scores: %w", err)
	}
	if err := json.Unmarshal(facetScores, &result.FacetScores); err != nil {
		return domain.TestResult{}, fmt.Errorf("unmarshal facet scores: %w", err)
	}
	if err := json.Unmarshal(classifications, &result.Classifications); err != nil {
		return domain.TestResult{}, fmt.Errorf("unmarshal classifications: %w", err)
	}

	return result, nil
}
