package bigfive

import (
	"errors"
	"fmt"

	"bigfive-api/internal/domain"
)

var (
	ErrUnknownQuestion  = errors.New("unknown question id")
	ErrAnswerOutOfRange = errors.New("answer out of range")
)

// Scores acumula las sumas de valores efectivos por rasgo y por faceta.
// Con un set de respuestas parcial las sumas son parciales: la completitud
// la verifica el llamador antes de tratar los totales como definitivos.
type Scores struct {
	Traits map[Trait]int
	Facets map[Trait]map[Facet]int
}

func newScores() Scores {
	s := Scores{
		Traits: make(map[Trait]int, len(traitOrder)),
		Facets: make(map[Trait]map[Facet]int, len(traitOrder)),
	}
	for _, t := range traitOrder {
		s.Traits[t] = 0
		facets := make(map[Facet]int, len(facetsByTr[t]))
		for _, f := range facetsByTr[t] {
			facets[f] = 0
		}
		s.Facets[t] = facets
	}
	return s
}

// Score calcula las sumas de rasgos y facetas de forma pura y deterministica.
// Una respuesta con pregunta desconocida o valor fuera de [1,5] corta el
// calculo con error; la variante tolerante queda para tooling de auditoria.
func Score(answers []domain.Answer) (Scores, error) {
	s := newScores()
	for _, a := range answers {
		q, ok := byID[a.QuestionID]
		if !ok {
			return Scores{}, fmt.Errorf("%w: %q", ErrUnknownQuestion, a.QuestionID)
		}
		if a.Score < MinAnswer || a.Score > MaxAnswer {
			return Scores{}, fmt.Errorf("%w: question %q score %d", ErrAnswerOutOfRange, a.QuestionID, a.Score)
		}
		s.accumulate(q, a.Score)
	}
	return s, nil
}

// ScoreLenient calcula ignorando respuestas invalidas y devuelve cuantas
// descarto. Pensado para auditoria y para recalcular registros historicos
// que pueden referenciar versiones viejas del banco.
func ScoreLenient(answers []domain.Answer) (Scores, int) {
	s := newScores()
	skipped := 0
	for _, a := range answers {
		q, ok := byID[a.QuestionID]
		if !ok || a.Score < MinAnswer || a.Score > MaxAnswer {
			skipped++
			continue
		}
		s.accumulate(q, a.Score)
	}
	return s, skipped
}

func (s Scores) accumulate(q Question, raw int) {
	effective := raw
	if q.Keyed == KeyedReverse {
		effective = likertMirrorBase - raw
	}
	s.Traits[q.Trait] += effective
	s.Facets[q.Trait][q.Facet] += effective
}

// TraitMap devuelve las sumas por rasgo con claves canonicas en string,
// la forma en que se persisten.
func (s Scores) TraitMap() map[string]int {
	out := make(map[string]int, len(s.Traits))
	for t, v := range s.Traits {
		out[string(t)] = v
	}
	return out
}

// FacetMap devuelve las sumas por faceta agrupadas por rasgo, con claves
// canonicas en string.
func (s Scores) FacetMap() map[string]map[string]int {
	out := make(map[string]map[string]int, len(s.Facets))
	for t, facets := range s.Facets {
		inner := make(map[string]int, len(facets))
		for f, v := range facets {
			inner[string(f)] = v
		}
		out[string(t)] = inner
	}
	return out
}

// MissingQuestionIDs devuelve, en orden canonico, los IDs del banco que no
// aparecen en el set de respuestas. Es el insumo de la reconciliacion antes
// de cerrar una sesion.
func MissingQuestionIDs(answers []domain.Answer) []string {
	answered := make(map[string]struct{}, len(answers))
	for _, a := range answers {
		answered[a.QuestionID] = struct{}{}
	}
	var missing []string
	for _, q := range bank {
		if _, ok := answered[q.ID]; !ok {
			missing = append(missing, q.ID)
		}
	}
	return missing
}

// Complete indica si el set cubre el banco entero.
func Complete(answers []domain.Answer) bool {
	return len(MissingQuestionIDs(answers)) == 0
}
