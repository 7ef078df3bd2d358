package bigfive

import (
	"errors"
	"testing"
	"time"

	"bigfive-api/internal/domain"
)

func constantAnswers(value int) []domain.Answer {
	questions := Questions()
	answers := make([]domain.Answer, 0, len(questions))
	now := time.Now().UTC()
	for _, q := range questions {
		answers = append(answers, domain.Answer{
			SessionID:  "s1",
			QuestionID: q.ID,
			Score:      value,
			AnsweredAt: now,
		})
	}
	return answers
}

func TestReverseKeyingTransform(t *testing.T) {
	// N1_6 es invertida: la contribucion efectiva de r es 6-r.
	for raw, want := range map[int]int{1: 5, 2: 4, 3: 3, 4: 2, 5: 1} {
		s, err := Score([]domain.Answer{{SessionID: "s1", QuestionID: "N1_6", Score: raw}})
		if err != nil {
			t.Fatalf("unexpected error for raw %d: %v", raw, err)
		}
		if got := s.Facets[TraitNeuroticism]["N1"]; got != want {
			t.Fatalf("raw %d: expected effective %d, got %d", raw, want, got)
		}
		if got := s.Traits[TraitNeuroticism]; got != want {
			t.Fatalf("raw %d: expected trait sum %d, got %d", raw, want, got)
		}
	}
}

func TestConstantAnswersGiveNeutralSums(t *testing.T) {
	// Con keying balanceado 30/30 por rasgo y 5/5 por faceta, v + (6-v) = 6
	// es constante: toda suma de rasgo da 180 y toda suma de faceta da 30,
	// sin importar el valor fijo elegido.
	for value := MinAnswer; value <= MaxAnswer; value++ {
		s, err := Score(constantAnswers(value))
		if err != nil {
			t.Fatalf("value %d: unexpected error: %v", value, err)
		}
		for _, trait := range Traits() {
			if got := s.Traits[trait]; got != 180 {
				t.Fatalf("value %d: trait %s sum = %d, want 180", value, trait, got)
			}
			for _, facet := range FacetsOf(trait) {
				if got := s.Facets[trait][facet]; got != 30 {
					t.Fatalf("value %d: facet %s sum = %d, want 30", value, facet, got)
				}
			}
		}
	}
}

func TestAllOnesIsNotNaiveSum(t *testing.T) {
	// Todas en 1 NO da 60 por rasgo: la mitad de las preguntas es invertida
	// (6-1=5) y el total queda en 30*1 + 30*5 = 180.
	s, err := Score(constantAnswers(1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, trait := range Traits() {
		if got := s.Traits[trait]; got != 180 {
			t.Fatalf("trait %s sum = %d, want 180 (not the naive 60)", trait, got)
		}
	}
}

func TestScorePartialSet(t *testing.T) {
	answers := constantAnswers(3)[:150]
	s, err := Score(answers)
	if err != nil {
		t.Fatalf("partial set must not error: %v", err)
	}
	total := 0
	for _, trait := range Traits() {
		total += s.Traits[trait]
	}
	if total != 150*3 {
		t.Fatalf("expected partial total %d, got %d", 150*3, total)
	}
	if Complete(answers) {
		t.Fatalf("partial set reported as complete")
	}
	if missing := MissingQuestionIDs(answers); len(missing) != 150 {
		t.Fatalf("expected 150 missing questions, got %d", len(missing))
	}
}

func TestScoreUnknownQuestionFailsFast(t *testing.T) {
	_, err := Score([]domain.Answer{{SessionID: "s1", QuestionID: "Z9_99", Score: 3}})
	if !errors.Is(err, ErrUnknownQuestion) {
		t.Fatalf("expected ErrUnknownQuestion, got %v", err)
	}
}

func TestScoreOutOfRangeFailsFast(t *testing.T) {
	for _, score := range []int{0, 6, -1} {
		_, err := Score([]domain.Answer{{SessionID: "s1", QuestionID: "N1_1", Score: score}})
		if !errors.Is(err, ErrAnswerOutOfRange) {
			t.Fatalf("score %d: expected ErrAnswerOutOfRange, got %v", score, err)
		}
	}
}

func TestScoreLenientSkipsInvalid(t *testing.T) {
	answers := []domain.Answer{
		{SessionID: "s1", QuestionID: "N1_1", Score: 4},
		{SessionID: "s1", QuestionID: "Z9_99", Score: 3},
		{SessionID: "s1", QuestionID: "N1_2", Score: 9},
	}
	s, skipped := ScoreLenient(answers)
	if skipped != 2 {
		t.Fatalf("expected 2 skipped answers, got %d", skipped)
	}
	if got := s.Traits[TraitNeuroticism]; got != 4 {
		t.Fatalf("expected trait sum 4 from the valid answer, got %d", got)
	}
}

func TestScoreMapsUseCanonicalKeys(t *testing.T) {
	s, err := Score(constantAnswers(3))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	traitMap := s.TraitMap()
	if len(traitMap) != 5 {
		t.Fatalf("expected 5 trait keys, got %d", len(traitMap))
	}
	if _, ok := traitMap["neuroticism"]; !ok {
		t.Fatalf("expected canonical key neuroticism, got %v", traitMap)
	}
	facetMap := s.FacetMap()
	if _, ok := facetMap["neuroticism"]["N1"]; !ok {
		t.Fatalf("expected facet key N1 under neuroticism, got %v", facetMap)
	}
}
