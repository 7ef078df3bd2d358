package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"bigfive-api/internal/bigfive"
	"bigfive-api/internal/domain"
)

func newAnswerServiceForTest(sessions *fakeSessionRepo, answers *fakeAnswerRepo, results *fakeResultRepo) *AnswerService {
	svc := NewAnswerService(zap.NewNop(), sessions, answers, results, nil, nil)
	svc.sleep = func(time.Duration) {}
	return svc
}

func inProgressSession(id string) domain.TestSession {
	return domain.TestSession{
		ID:        id,
		UserID:    "u1",
		Status:    domain.SessionStatusInProgress,
		CreatedAt: time.Now().UTC(),
	}
}

func fillSession(t *testing.T, repo *fakeAnswerRepo, sessionID string, value, limit int) {
	t.Helper()
	for i, q := range bigfive.Questions() {
		if limit >= 0 && i >= limit {
			return
		}
		err := repo.Create(context.Background(), domain.Answer{
			SessionID:  sessionID,
			QuestionID: q.ID,
			Score:      value,
			AnsweredAt: time.Now().UTC(),
		})
		if err != nil {
			t.Fatalf("seed answer %s: %v", q.ID, err)
		}
	}
}

func TestSubmitAnswerValidation(t *testing.T) {
	svc := newAnswerServiceForTest(newFakeSessionRepo(inProgressSession("s1")), newFakeAnswerRepo(), newFakeResultRepo())

	if err := svc.SubmitAnswer(context.Background(), "s1", "Z9_99", 3); !errors.Is(err, ErrInvalidAnswer) {
		t.Fatalf("expected ErrInvalidAnswer for unknown question, got %v", err)
	}
	if err := svc.SubmitAnswer(context.Background(), "s1", "N1_1", 0); !errors.Is(err, ErrInvalidAnswer) {
		t.Fatalf("expected ErrInvalidAnswer for score 0, got %v", err)
	}
	if err := svc.SubmitAnswer(context.Background(), "missing", "N1_1", 3); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestSubmitAnswerRejectedOnCompletedSession(t *testing.T) {
	done := inProgressSession("s1")
	done.Status = domain.SessionStatusCompleted
	svc := newAnswerServiceForTest(newFakeSessionRepo(done), newFakeAnswerRepo(), newFakeResultRepo())

	if err := svc.SubmitAnswer(context.Background(), "s1", "N1_1", 3); !errors.Is(err, ErrSessionCompleted) {
		t.Fatalf("expected ErrSessionCompleted, got %v", err)
	}
}

func TestSubmitAnswerRetriesTransientFailures(t *testing.T) {
	answers := newFakeAnswerRepo()
	answers.failures = 2
	svc := newAnswerServiceForTest(newFakeSessionRepo(inProgressSession("s1")), answers, newFakeResultRepo())

	if err := svc.SubmitAnswer(context.Background(), "s1", "N1_1", 4); err != nil {
		t.Fatalf("expected success after retries, got %v", err)
	}
	if answers.calls != 3 {
		t.Fatalf("expected 3 attempts, got %d", answers.calls)
	}
	if count, _ := answers.CountBySession(context.Background(), "s1"); count != 1 {
		t.Fatalf("expected answer persisted, got %d", count)
	}
}

func TestSubmitAnswerExhaustsRetries(t *testing.T) {
	answers := newFakeAnswerRepo()
	answers.failures = 10
	svc := newAnswerServiceForTest(newFakeSessionRepo(inProgressSession("s1")), answers, newFakeResultRepo())

	err := svc.SubmitAnswer(context.Background(), "s1", "N1_1", 4)
	if !errors.Is(err, ErrAnswerNotSaved) {
		t.Fatalf("expected ErrAnswerNotSaved, got %v", err)
	}
	// La respuesta no quedo guardada: el cliente no debe avanzar de pregunta.
	if count, _ := answers.CountBySession(context.Background(), "s1"); count != 0 {
		t.Fatalf("expected no persisted answer, got %d", count)
	}
}

func TestMissingQuestions(t *testing.T) {
	answers := newFakeAnswerRepo()
	svc := newAnswerServiceForTest(newFakeSessionRepo(inProgressSession("s1")), answers, newFakeResultRepo())
	fillSession(t, answers, "s1", 3, 150)

	missing, err := svc.MissingQuestions(context.Background(), "s1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(missing) != bigfive.QuestionCount-150 {
		t.Fatalf("expected %d missing, got %d", bigfive.QuestionCount-150, len(missing))
	}
}

func TestCompleteSessionRejectsIncomplete(t *testing.T) {
	answers := newFakeAnswerRepo()
	results := newFakeResultRepo()
	svc := newAnswerServiceForTest(newFakeSessionRepo(inProgressSession("s1")), answers, results)
	fillSession(t, answers, "s1", 3, 150)

	_, err := svc.CompleteSession(context.Background(), "s1", nil)
	if !errors.Is(err, ErrIncompleteSession) {
		t.Fatalf("expected ErrIncompleteSession, got %v", err)
	}
	if results.upserts != 0 {
		t.Fatalf("incomplete session must not persist a result")
	}
}

func TestCompleteSessionReconcilesAndScores(t *testing.T) {
	sessions := newFakeSessionRepo(inProgressSession("s1"))
	answers := newFakeAnswerRepo()
	results := newFakeResultRepo()
	svc := newAnswerServiceForTest(sessions, answers, results)

	questions := bigfive.Questions()
	fillSession(t, answers, "s1", 3, len(questions)-2)

	// El cliente reenvia las dos faltantes mas una ya guardada (se ignora).
	batch := []AnswerInput{
		{QuestionID: questions[len(questions)-2].ID, Score: 3},
		{QuestionID: questions[len(questions)-1].ID, Score: 3},
		{QuestionID: questions[0].ID, Score: 5},
	}
	result, err := svc.CompleteSession(context.Background(), "s1", batch)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for trait, score := range result.TraitScores {
		if score != 180 {
			t.Fatalf("trait %s score = %d, want 180", trait, score)
		}
		if result.Classifications.Traits[trait] != "medium" {
			t.Fatalf("trait %s classification = %s, want medium", trait, result.Classifications.Traits[trait])
		}
	}

	session, _ := sessions.GetByID(context.Background(), "s1")
	if session.Status != domain.SessionStatusCompleted || session.CompletedAt == nil {
		t.Fatalf("session not marked completed: %+v", session)
	}

	// Repetir el cierre sobre una sesion completada no recalcula nada.
	if _, err := svc.CompleteSession(context.Background(), "s1", nil); !errors.Is(err, ErrSessionCompleted) {
		t.Fatalf("expected ErrSessionCompleted on second call, got %v", err)
	}
}

func TestCompleteSessionRejectsInvalidResubmission(t *testing.T) {
	answers := newFakeAnswerRepo()
	svc := newAnswerServiceForTest(newFakeSessionRepo(inProgressSession("s1")), answers, newFakeResultRepo())
	fillSession(t, answers, "s1", 3, bigfive.QuestionCount-1)

	last := bigfive.Questions()[bigfive.QuestionCount-1]
	_, err := svc.CompleteSession(context.Background(), "s1", []AnswerInput{{QuestionID: last.ID, Score: 7}})
	if !errors.Is(err, ErrInvalidAnswer) {
		t.Fatalf("expected ErrInvalidAnswer, got %v", err)
	}
}
