package bigfive

import "bigfive-api/internal/domain"

// Band es una de las cinco etiquetas cualitativas ordenadas. Las bandas se
// recalculan SIEMPRE desde el puntaje crudo al momento de leer: registros
// historicos pueden haber sido escritos bajo un esquema de bandas distinto,
// asi que una etiqueta persistida nunca es fuente de verdad.
type Band string

const (
	BandVeryLow  Band = "very_low"
	BandLow      Band = "low"
	BandMedium   Band = "medium"
	BandHigh     Band = "high"
	BandVeryHigh Band = "very_high"
)

// ClassifyTrait mapea una suma de rasgo (rango 60-300) a su banda.
func ClassifyTrait(score int) Band {
	switch {
	case score <= 108:
		return BandVeryLow
	case score <= 156:
		return BandLow
	case score <= 198:
		return BandMedium
	case score <= 246:
		return BandHigh
	default:
		return BandVeryHigh
	}
}

// ClassifyFacet mapea una suma de faceta (rango 10-50) a su banda.
func ClassifyFacet(score int) Band {
	switch {
	case score <= 18:
		return BandVeryLow
	case score <= 26:
		return BandLow
	case score <= 33:
		return BandMedium
	case score <= 41:
		return BandHigh
	default:
		return BandVeryHigh
	}
}

// Classify deriva las bandas de un calculo recien hecho.
func (s Scores) Classify() domain.Classifications {
	return RecomputeClassifications(s.TraitMap(), s.FacetMap())
}

// RecomputeClassifications deriva las bandas desde mapas de puntajes crudos,
// tal como quedaron persistidos. Es la unica via para obtener bandas.
func RecomputeClassifications(traitScores map[string]int, facetScores map[string]map[string]int) domain.Classifications {
	c := domain.Classifications{
		Traits: make(map[string]string, len(traitScores)),
		Facets: make(map[string]map[string]string, len(facetScores)),
	}
	for trait, score := range traitScores {
		c.Traits[trait] = string(ClassifyTrait(score))
	}
	for trait, facets := range facetScores {
		inner := make(map[string]string, len(facets))
		for facet, score := range facets {
			inner[facet] = string(ClassifyFacet(score))
		}
		c.Facets[trait] = inner
	}
	return c
}
