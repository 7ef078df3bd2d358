package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"bigfive-api/internal/domain"
)

type SessionRepository interface {
	Create(ctx context.Context, session domain.TestSession) error
	GetByID(ctx context.Context, id string) (domain.TestSession, error)
	MarkCompleted(ctx context.Context, id string, completedAt time.Time) error
}

type PgSessionRepository struct {
	pool *pgxpool.Pool
}

func NewPgSessionRepository(pool *pgxpool.Pool) *PgSessionRepository {
	return &PgSessionRepository{pool: pool}
}

func (r *PgSessionRepository) Create(ctx context.Context, session domain.TestSession) error {
	const query = `
		INSERT INTO test_sessions (id, user_id, status, created_at, completed_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.pool.Exec(ctx, query,
		session.ID,
		session.UserID,
		session.Status,
		session.CreatedAt,
		session.CompletedAt,
	)
	return err
}

func (r *PgSessionRepository) GetByID(ctx context.Context, id string) (domain.TestSession, error) {
	const query = `
		SELECT id, user_id, status, created_at, completed_at
		FROM test_sessions
		WHERE id = $1
	`
	var session domain.TestSession
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&session.ID,
		&session.UserID,
		&session.Status,
		&session.CreatedAt,
		&session.CompletedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.TestSession{}, err
	}
	return session, err
}

func (r *PgSessionRepository) MarkCompleted(ctx context.Context, id string, completedAt time.Time) error {
	const query = `
		UPDATE test_sessions
		SET status = $2, completed_at = $3
		WHERE id = $1
	`
	_, err := r.pool.Exec(ctx, query, id, domain.SessionStatusCompleted, completedAt)
	return err
}
