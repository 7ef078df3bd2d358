package bigfive

import "fmt"

// Trait es la clave canonica de un rasgo Big Five. Los mapas persistidos y
// las respuestas HTTP usan siempre estas claves; los nombres visibles se
// resuelven en la capa de presentacion.
type Trait string

const (
	TraitNeuroticism       Trait = "neuroticism"
	TraitExtraversion      Trait = "extraversion"
	TraitOpenness          Trait = "openness"
	TraitAgreeableness     Trait = "agreeableness"
	TraitConscientiousness Trait = "conscientiousness"
)

// Facet es el codigo corto de una subdimension, prefijado por la inicial del
// rasgo (N1..N6, E1..E6, O1..O6, A1..A6, C1..C6).
type Facet string

// Keyed indica la direccion de puntuacion de una pregunta.
type Keyed string

const (
	KeyedDirect  Keyed = "direct"
	KeyedReverse Keyed = "reverse"
)

type Question struct {
	ID    string `json:"id"`
	Trait Trait  `json:"trait"`
	Facet Facet  `json:"facet"`
	Keyed Keyed  `json:"keyed"`
	Text  string `json:"text"`
}

const (
	// Dimensiones del banco canonico: 5 rasgos x 6 facetas x 10 preguntas.
	QuestionCount      = 300
	TraitQuestionCount = 60
	FacetQuestionCount = 10

	MinAnswer = 1
	MaxAnswer = 5

	// El espejo de una pregunta invertida en escala 1..5 es (1+5)-x.
	likertMirrorBase = MinAnswer + MaxAnswer
)

var traitOrder = []Trait{
	TraitNeuroticism,
	TraitExtraversion,
	TraitOpenness,
	TraitAgreeableness,
	TraitConscientiousness,
}

var (
	bank        []Question
	byID        map[string]Question
	byFacet     map[Facet][]Question
	facetNames  map[Facet]string
	facetsByTr  map[Trait][]Facet
)

// Traits devuelve los rasgos en el orden canonico.
func Traits() []Trait {
	out := make([]Trait, len(traitOrder))
	copy(out, traitOrder)
	return out
}

// FacetsOf devuelve los codigos de faceta de un rasgo en orden canonico.
func FacetsOf(t Trait) []Facet {
	src := facetsByTr[t]
	out := make([]Facet, len(src))
	copy(out, src)
	return out
}

// Questions devuelve el catalogo completo en orden canonico y estable.
func Questions() []Question {
	out := make([]Question, len(bank))
	copy(out, bank)
	return out
}

// QuestionsForFacet devuelve las preguntas de una faceta en orden canonico.
func QuestionsForFacet(f Facet) []Question {
	src := byFacet[f]
	out := make([]Question, len(src))
	copy(out, src)
	return out
}

// QuestionByID busca una pregunta por su identificador estable.
func QuestionByID(id string) (Question, bool) {
	q, ok := byID[id]
	return q, ok
}

// FacetName devuelve el nombre visible de una faceta.
func FacetName(f Facet) string {
	return facetNames[f]
}

// Verify valida la estructura del banco: tamano total, conteos por rasgo y
// por faceta, y balance exacto entre preguntas directas e invertidas. Un
// error aqui es un defecto de construccion del catalogo, nunca una condicion
// de runtime esperada.
func Verify() error {
	if len(bank) != QuestionCount {
		return fmt.Errorf("question bank has %d questions, want %d", len(bank), QuestionCount)
	}

	traitTotals := make(map[Trait]int)
	traitDirect := make(map[Trait]int)
	facetTotals := make(map[Facet]int)
	facetDirect := make(map[Facet]int)
	seen := make(map[string]struct{}, len(bank))

	for _, q := range bank {
		if _, dup := seen[q.ID]; dup {
			return fmt.Errorf("duplicated question id %q", q.ID)
		}
		seen[q.ID] = struct{}{}

		traitTotals[q.Trait]++
		facetTotals[q.Facet]++
		if q.Keyed == KeyedDirect {
			traitDirect[q.Trait]++
			facetDirect[q.Facet]++
		}
	}

	for _, t := range traitOrder {
		if traitTotals[t] != TraitQuestionCount {
			return fmt.Errorf("trait %s has %d questions, want %d", t, traitTotals[t], TraitQuestionCount)
		}
		if traitDirect[t]*2 != TraitQuestionCount {
			return fmt.Errorf("trait %s keying unbalanced: %d direct of %d", t, traitDirect[t], TraitQuestionCount)
		}
		for _, f := range facetsByTr[t] {
			if facetTotals[f] != FacetQuestionCount {
				return fmt.Errorf("facet %s has %d questions, want %d", f, facetTotals[f], FacetQuestionCount)
			}
			if facetDirect[f]*2 != FacetQuestionCount {
				return fmt.Errorf("facet %s keying unbalanced: %d direct of %d", f, facetDirect[f], FacetQuestionCount)
			}
		}
	}

	return nil
}
