package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"bigfive-api/internal/domain"
)

type AnswerRepository interface {
	Create(ctx context.Context, answer domain.Answer) error
	ListBySession(ctx context.Context, sessionID string) ([]domain.Answer, error)
	CountBySession(ctx context.Context, sessionID string) (int, error)
}

type PgAnswerRepository struct {
	pool *pgxpool.Pool
}

func NewPgAnswerRepository(pool *pgxpool.Pool) *PgAnswerRepository {
	return &PgAnswerRepository{pool: pool}
}

// Create inserta una respuesta. Las respuestas son inmutables: reintentar el
// mismo (session_id, question_id) es un no-op, lo que hace idempotente la
// reconciliacion del cliente.
func (r *PgAnswerRepository) Create(ctx context.Context, answer domain.Answer) error {
	const query = `
		INSERT INTO test_answers (session_id, question_id, score, answered_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (session_id, question_id) DO NOTHING
	`
	_, err := r.pool.Exec(ctx, query,
		answer.SessionID,
		answer.QuestionID,
		answer.Score,
		answer.AnsweredAt,
	)
	return err
}

func (r *PgAnswerRepository) ListBySession(ctx context.Context, sessionID string) ([]domain.Answer, error) {
	const query = `
		SELECT session_id, question_id, score, answered_at
		FROM test_answers
		WHERE session_id = $1
		ORDER BY answered_at, question_id
	`
	rows, err := r.pool.Query(ctx, query, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var answers []domain.Answer
	for rows.Next() {
		var a domain.Answer
		if err := rows.Scan(
			&a.SessionID,
			&a.QuestionID,
			&a.Score,
			&a.AnsweredAt,
		); err != nil {
			return nil, err
		}
		answers = append(answers, a)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return answers, nil
}

func (r *PgAnswerRepository) CountBySession(ctx context.Context, sessionID string) (int, error) {
	const query = `
		SELECT COUNT(*)
		FROM test_answers
		WHERE session_id = $1
	`
	var count int
	err := r.pool.QueryRow(ctx, query, sessionID).Scan(&count)
	return count, err
}
