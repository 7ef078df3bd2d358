package main

import (
	"fmt"
	"log"
	"time"

	"bigfive-api/internal/bigfive"
	"bigfive-api/internal/domain"
)

const (
	colorGreen = "\033[32m"
	colorCyan  = "\033[36m"
	colorRed   = "\033[31m"
	colorReset = "\033[0m"
)

// Auditoria offline del banco de preguntas y del motor de calculo. Se corre
// antes de publicar cambios en el banco: cualquier item mal balanceado o
// cutoff corrido rompe aca, sin tocar base de datos ni red.
func main() {
	fmt.Printf("%s[banco]%s verificando estructura\n", colorCyan, colorReset)
	if err := bigfive.Verify(); err != nil {
		log.Fatalf("%sbanco invalido:%s %v", colorRed, colorReset, err)
	}
	fmt.Printf("%sOK%s %d preguntas, %d rasgos, 6 facetas por rasgo, keying balanceado\n",
		colorGreen, colorReset, bigfive.QuestionCount, len(bigfive.Traits()))

	// Con respuestas constantes cada par directo/inverso suma 6, asi que
	// toda faceta debe dar 30 y todo rasgo 180 sin importar el valor.
	fmt.Printf("%s[calculo]%s barrido de respuestas constantes\n", colorCyan, colorReset)
	for v := bigfive.MinAnswer; v <= bigfive.MaxAnswer; v++ {
		scores, err := bigfive.Score(constantAnswers(v))
		if err != nil {
			log.Fatalf("%sscore fallo con valor %d:%s %v", colorRed, v, colorReset, err)
		}
		for trait, sum := range scores.Traits {
			if sum != 180 {
				log.Fatalf("%sdesbalance:%s rasgo %s con valor constante %d sumo %d, esperaba 180", colorRed, colorReset, trait, v, sum)
			}
		}
		for trait, facets := range scores.Facets {
			for facet, sum := range facets {
				if sum != 30 {
					log.Fatalf("%sdesbalance:%s faceta %s/%s con valor constante %d sumo %d, esperaba 30", colorRed, colorReset, trait, facet, v, sum)
				}
			}
		}
		fmt.Printf("%sOK%s valor constante %d: rasgos 180, facetas 30\n", colorGreen, colorReset, v)
	}

	fmt.Printf("%s[bandas]%s cutoffs de clasificacion\n", colorCyan, colorReset)
	auditTraitCutoffs()
	auditFacetCutoffs()

	fmt.Printf("%s[legacy]%s tolerancia a IDs desconocidos\n", colorCyan, colorReset)
	answers := constantAnswers(3)
	answers = append(answers, domain.Answer{
		SessionID:  "audit",
		QuestionID: "OLD_1",
		Score:      4,
		AnsweredAt: time.Now().UTC(),
	})
	if _, err := bigfive.Score(answers); err == nil {
		log.Fatalf("%serror:%s el camino estricto acepto un ID desconocido", colorRed, colorReset)
	}
	scores, skipped := bigfive.ScoreLenient(answers)
	if skipped != 1 {
		log.Fatalf("%serror:%s lenient reporto %d saltadas, esperaba 1", colorRed, colorReset, skipped)
	}
	if scores.Traits[bigfive.TraitNeuroticism] != 180 {
		log.Fatalf("%serror:%s lenient altero las sumas validas", colorRed, colorReset)
	}
	fmt.Printf("%sOK%s estricto rechaza, lenient salta y conserva sumas\n", colorGreen, colorReset)

	fmt.Println("==== Auditoria completa sin errores ====")
}

func constantAnswers(value int) []domain.Answer {
	questions := bigfive.Questions()
	answers := make([]domain.Answer, 0, len(questions))
	now := time.Now().UTC()
	for _, q := range questions {
		answers = append(answers, domain.Answer{
			SessionID:  "audit",
			QuestionID: q.ID,
			Score:      value,
			AnsweredAt: now,
		})
	}
	return answers
}

func auditTraitCutoffs() {
	cases := []struct {
		score int
		want  bigfive.Band
	}{
		{60, bigfive.BandVeryLow},
		{108, bigfive.BandVeryLow},
		{109, bigfive.BandLow},
		{156, bigfive.BandLow},
		{157, bigfive.BandMedium},
		{198, bigfive.BandMedium},
		{199, bigfive.BandHigh},
		{246, bigfive.BandHigh},
		{247, bigfive.BandVeryHigh},
		{300, bigfive.BandVeryHigh},
	}
	for _, tc := range cases {
		if got := bigfive.ClassifyTrait(tc.score); got != tc.want {
			log.Fatalf("%scutoff corrido:%s rasgo %d clasifico %s, esperaba %s", colorRed, colorReset, tc.score, got, tc.want)
		}
	}
	fmt.Printf("%sOK%s cutoffs de rasgo en 108/156/198/246\n", colorGreen, colorReset)
}

func auditFacetCutoffs() {
	cases := []struct {
		score int
		want  bigfive.Band
	}{
		{10, bigfive.BandVeryLow},
		{18, bigfive.BandVeryLow},
		{19, bigfive.BandLow},
		{26, bigfive.BandLow},
		{27, bigfive.BandMedium},
		{33, bigfive.BandMedium},
		{34, bigfive.BandHigh},
		{41, bigfive.BandHigh},
		{42, bigfive.BandVeryHigh},
		{50, bigfive.BandVeryHigh},
	}
	for _, tc := range cases {
		if got := bigfive.ClassifyFacet(tc.score); got != tc.want {
			log.Fatalf("%scutoff corrido:%s faceta %d clasifico %s, esperaba %s", colorRed, colorReset, tc.score, got, tc.want)
		}
	}
	fmt.Printf("%sOK%s cutoffs de faceta en 18/26/33/41\n", colorGreen, colorReset)
}
