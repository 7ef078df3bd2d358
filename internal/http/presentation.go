package http

import (
	"bigfive-api/internal/bigfive"
	"bigfive-api/internal/domain"
)

// Nombres visibles. Viven solo en esta capa: el modelo persistido y los
// contratos internos usan unicamente claves canonicas.
var traitDisplayNames = map[string]string{
	"neuroticism":       "Neuroticismo",
	"extraversion":      "Extraversion",
	"openness":          "Apertura",
	"agreeableness":     "Amabilidad",
	"conscientiousness": "Responsabilidad",
}

var bandDisplayNames = map[string]string{
	"very_low":  "Muy bajo",
	"low":       "Bajo",
	"medium":    "Medio",
	"high":      "Alto",
	"very_high": "Muy alto",
}

type facetView struct {
	Facet              string `json:"facet"`
	Name               string `json:"name"`
	Score              int    `json:"score"`
	Classification     string `json:"classification"`
	ClassificationName string `json:"classification_name"`
}

type traitView struct {
	Trait              string      `json:"trait"`
	Name               string      `json:"name"`
	Score              int         `json:"score"`
	Classification     string      `json:"classification"`
	ClassificationName string      `json:"classification_name"`
	Facets             []facetView `json:"facets"`
}

// presentResult arma la vista ordenada de un resultado. Las bandas se
// recalculan desde los puntajes crudos persistidos; la etiqueta guardada en
// el snapshot se ignora a proposito.
func presentResult(result domain.TestResult) []traitView {
	classifications := bigfive.RecomputeClassifications(result.TraitScores, result.FacetScores)

	views := make([]traitView, 0, len(bigfive.Traits()))
	for _, trait := range bigfive.Traits() {
		key := string(trait)
		score, ok := result.TraitScores[key]
		if !ok {
			continue
		}
		view := traitView{
			Trait:              key,
			Name:               traitDisplayNames[key],
			Score:              score,
			Classification:     classifications.Traits[key],
			ClassificationName: bandDisplayNames[classifications.Traits[key]],
		}
		for _, facet := range bigfive.FacetsOf(trait) {
			facetKey := string(facet)
			facetScore, ok := result.FacetScores[key][facetKey]
			if !ok {
				continue
			}
			view.Facets = append(view.Facets, facetView{
				Facet:              facetKey,
				Name:               bigfive.FacetName(facet),
				Score:              facetScore,
				Classification:     classifications.Facets[key][facetKey],
				ClassificationName: bandDisplayNames[classifications.Facets[key][facetKey]],
			})
		}
		views = append(views, view)
	}
	return views
}
