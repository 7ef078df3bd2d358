package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"

	"bigfive-api/internal/domain"
)

type fakeSessionRepo struct {
	mu       sync.Mutex
	sessions map[string]domain.TestSession
}

func newFakeSessionRepo(sessions ...domain.TestSession) *fakeSessionRepo {
	r := &fakeSessionRepo{sessions: make(map[string]domain.TestSession)}
	for _, s := range sessions {
		r.sessions[s.ID] = s
	}
	return r
}

func (r *fakeSessionRepo) Create(_ context.Context, session domain.TestSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[session.ID] = session
	return nil
}

func (r *fakeSessionRepo) GetByID(_ context.Context, id string) (domain.TestSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	session, ok := r.sessions[id]
	if !ok {
		return domain.TestSession{}, pgx.ErrNoRows
	}
	return session, nil
}

func (r *fakeSessionRepo) MarkCompleted(_ context.Context, id string, completedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	session, ok := r.sessions[id]
	if !ok {
		return pgx.ErrNoRows
	}
	session.Status = domain.SessionStatusCompleted
	session.CompletedAt = &completedAt
	r.sessions[id] = session
	return nil
}

type fakeAnswerRepo struct {
	mu       sync.Mutex
	answers  map[string]map[string]domain.Answer
	failures int
	calls    int
}

func newFakeAnswerRepo() *fakeAnswerRepo {
	return &fakeAnswerRepo{answers: make(map[string]map[string]domain.Answer)}
}

func (r *fakeAnswerRepo) Create(_ context.Context, answer domain.Answer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	if r.failures > 0 {
		r.failures--
		return errors.New("transient storage failure")
	}
	if _, ok := r.answers[answer.SessionID]; !ok {
		r.answers[answer.SessionID] = make(map[string]domain.Answer)
	}
	if _, ok := r.answers[answer.SessionID][answer.QuestionID]; ok {
		return nil // inmutable: el duplicado es un no-op
	}
	r.answers[answer.SessionID][answer.QuestionID] = answer
	return nil
}

func (r *fakeAnswerRepo) ListBySession(_ context.Context, sessionID string) ([]domain.Answer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Answer
	for _, a := range r.answers[sessionID] {
		out = append(out, a)
	}
	return out, nil
}

func (r *fakeAnswerRepo) CountBySession(_ context.Context, sessionID string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.answers[sessionID]), nil
}

type fakeResultRepo struct {
	mu      sync.Mutex
	results map[string]domain.TestResult
	upserts int
}

func newFakeResultRepo() *fakeResultRepo {
	return &fakeResultRepo{results: make(map[string]domain.TestResult)}
}

func (r *fakeResultRepo) Upsert(_ context.Context, result domain.TestResult) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.upserts++
	r.results[result.SessionID] = result
	return nil
}

func (r *fakeResultRepo) GetBySession(_ context.Context, sessionID string) (domain.TestResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	result, ok := r.results[sessionID]
	if !ok {
		return domain.TestResult{}, pgx.ErrNoRows
	}
	return result, nil
}

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]domain.User
}

func newFakeUserRepo(users ...domain.User) *fakeUserRepo {
	r := &fakeUserRepo{users: make(map[string]domain.User)}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) Create(_ context.Context, user domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return domain.User{}, pgx.ErrNoRows
	}
	return user, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return domain.User{}, pgx.ErrNoRows
}

type allowAllLimiter struct{}

func (allowAllLimiter) Allow(string) bool { return true }

type denyAllLimiter struct{}

func (denyAllLimiter) Allow(string) bool { return false }
