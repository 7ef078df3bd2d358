package bigfive

import "fmt"

// facetSpec agrupa las diez preguntas de una faceta: cinco directas y cinco
// invertidas. Los IDs estables se derivan del codigo de faceta y la posicion
// (N1_1..N1_5 directas, N1_6..N1_10 invertidas).
type facetSpec struct {
	facet    Facet
	trait    Trait
	name     string
	direct   [5]string
	reversed [5]string
}

var facetSpecs = []facetSpec{
	{
		facet: "N1", trait: TraitNeuroticism, name: "Ansiedad",
		direct: [5]string{
			"Me preocupo por las cosas",
			"Temo que pase lo peor",
			"Tengo miedo de muchas cosas",
			"Me estreso con facilidad",
			"Me pongo nervioso ante cualquier imprevisto",
		},
		reversed: [5]string{
			"Rara vez me siento ansioso",
			"No me preocupo por cosas que ya pasaron",
			"Me mantengo relajado la mayor parte del tiempo",
			"Enfrento lo desconocido sin temor",
			"Pocas cosas logran inquietarme",
		},
	},
	{
		facet: "N2", trait: TraitNeuroticism, name: "Ira",
		direct: [5]string{
			"Me enojo con facilidad",
			"Me irrito por pequeneces",
			"Pierdo la paciencia rapido",
			"Me molesto cuando las cosas no salen como quiero",
			"Guardo rencor despues de una discusion",
		},
		reversed: [5]string{
			"Rara vez me enojo",
			"Es dificil hacerme perder la calma",
			"Mantengo la compostura aun bajo provocacion",
			"Dejo pasar las ofensas sin darles vueltas",
			"Casi nunca levanto la voz",
		},
	},
	{
		facet: "N3", trait: TraitNeuroticism, name: "Depresion",
		direct: [5]string{
			"Con frecuencia me siento triste",
			"Me desanimo con facilidad",
			"Siento que mi vida carece de direccion",
			"Me cuesta encontrar motivacion para empezar el dia",
			"Tiendo a verlo todo en negativo",
		},
		reversed: [5]string{
			"Rara vez me siento decaido",
			"Me siento comodo conmigo mismo",
			"Suelo despertarme de buen animo",
			"Encuentro sentido en lo que hago",
			"Me recupero rapido de las desilusiones",
		},
	},
	{
		facet: "N4", trait: TraitNeuroticism, name: "Autoconciencia",
		direct: [5]string{
			"Me cuesta acercarme a los demas",
			"Temo llamar la atencion sobre mi",
			"Me da verguenza hablar frente a desconocidos",
			"Me siento incomodo cuando no conozco a nadie",
			"Me intimidan las personas con autoridad",
		},
		reversed: [5]string{
			"No me incomoda ser el centro de atencion",
			"Me desenvuelvo bien en situaciones sociales nuevas",
			"Me resulta facil hablar frente a un grupo",
			"Rara vez me preocupa lo que piensen de mi",
			"Me siento seguro al conocer gente nueva",
		},
	},
	{
		facet: "N5", trait: TraitNeuroticism, name: "Inmoderacion",
		direct: [5]string{
			"Como en exceso cuando estoy estresado",
			"Me cuesta resistir un antojo",
			"Hago cosas de las que despues me arrepiento",
			"Gasto mas de lo que deberia",
			"Actuo sin medir las consecuencias cuando algo me tienta",
		},
		reversed: [5]string{
			"Rara vez como de mas",
			"Controlo mis impulsos sin esfuerzo",
			"Se decir que no a un capricho",
			"Nunca gasto por encima de mis posibilidades",
			"Pienso dos veces antes de darme un gusto",
		},
	},
	{
		facet: "N6", trait: TraitNeuroticism, name: "Vulnerabilidad",
		direct: [5]string{
			"Me siento desbordado por los acontecimientos",
			"Entro en panico con facilidad",
			"Me bloqueo bajo presion",
			"Necesito ayuda de otros para manejar una crisis",
			"Las situaciones dificiles me superan",
		},
		reversed: [5]string{
			"Mantengo la calma bajo presion",
			"Resuelvo bien los problemas inesperados",
			"Me siento capaz de manejar lo que venga",
			"Pienso con claridad en medio de una emergencia",
			"Las crisis sacan lo mejor de mi",
		},
	},
	{
		facet: "E1", trait: TraitExtraversion, name: "Cordialidad",
		direct: [5]string{
			"Hago amigos con facilidad",
			"Me siento comodo rodeado de gente",
			"Entablo conversacion con cualquiera",
			"Recibo a los demas con calidez",
			"Me acerco a las personas sin que me lo pidan",
		},
		reversed: [5]string{
			"Me cuesta conocer gente nueva",
			"Suelo mantener distancia con los demas",
			"Evito el contacto con desconocidos",
			"Soy reservado incluso con conocidos",
			"Prefiero que otros den el primer paso",
		},
	},
	{
		facet: "E2", trait: TraitExtraversion, name: "Gregarismo",
		direct: [5]string{
			"Disfruto de las fiestas multitudinarias",
			"Busco estar rodeado de gente",
			"Me encanta participar en eventos sociales",
			"Cuanta mas gente haya, mejor me siento",
			"Organizo reuniones con frecuencia",
		},
		reversed: [5]string{
			"Prefiero estar solo",
			"Evito las multitudes",
			"Necesito pasar tiempo a solas para recargarme",
			"Las reuniones grandes me agotan",
			"Paso de largo los eventos sociales cuando puedo",
		},
	},
	{
		facet: "E3", trait: TraitExtraversion, name: "Asertividad",
		direct: [5]string{
			"Tomo la iniciativa en los grupos",
			"Intento influir en los demas",
			"Asumo el control de las situaciones",
			"Soy el primero en actuar cuando hay que decidir",
			"Expreso mi opinion aunque sea impopular",
		},
		reversed: [5]string{
			"Espero a que otros marquen el camino",
			"Me mantengo en segundo plano",
			"Guardo silencio en las discusiones de grupo",
			"Prefiero que otro tome las decisiones",
			"Me cuesta imponerme",
		},
	},
	{
		facet: "E4", trait: TraitExtraversion, name: "Nivel de actividad",
		direct: [5]string{
			"Siempre estoy ocupado",
			"Siempre estoy en movimiento",
			"Hago muchas cosas en mi tiempo libre",
			"Llevo un ritmo de vida acelerado",
			"Termino una tarea y empiezo otra de inmediato",
		},
		reversed: [5]string{
			"Me gusta tomarme las cosas con calma",
			"Me tomo mi tiempo para todo",
			"Disfruto de los dias sin planes",
			"Trabajo a un ritmo pausado",
			"Paso buena parte del dia sin hacer gran cosa",
		},
	},
	{
		facet: "E5", trait: TraitExtraversion, name: "Busqueda de emociones",
		direct: [5]string{
			"Busco la aventura",
			"Me atraen las emociones fuertes",
			"Disfruto de la velocidad",
			"Hago locuras de vez en cuando",
			"Me apunto a cualquier plan arriesgado",
		},
		reversed: [5]string{
			"Evito los riesgos innecesarios",
			"Prefiero los planes tranquilos",
			"Nunca haria deportes extremos",
			"Me asustan las conductas temerarias",
			"Elijo siempre el camino seguro",
		},
	},
	{
		facet: "E6", trait: TraitExtraversion, name: "Alegria",
		direct: [5]string{
			"Irradio alegria",
			"Me rio con facilidad",
			"Me divierto con cualquier cosa",
			"Contagio mi entusiasmo a los demas",
			"Celebro hasta los pequenos logros",
		},
		reversed: [5]string{
			"Rara vez bromeo",
			"No suelo demostrar euforia",
			"Me cuesta dejarme llevar por la diversion",
			"Pocas cosas me entusiasman de verdad",
			"Mantengo un tono serio casi siempre",
		},
	},
	{
		facet: "O1", trait: TraitOpenness, name: "Imaginacion",
		direct: [5]string{
			"Tengo una imaginacion muy viva",
			"Disfruto fantaseando despierto",
			"Me pierdo en mis pensamientos",
			"Invento historias en mi cabeza",
			"Sueno con mundos que no existen",
		},
		reversed: [5]string{
			"Me interesa mas la realidad que la fantasia",
			"Rara vez sueno despierto",
			"Me cuesta imaginar escenarios hipoteticos",
			"Los juegos de imaginacion me aburren",
			"Dejo poco espacio para la fantasia en mi vida",
		},
	},
	{
		facet: "O2", trait: TraitOpenness, name: "Interes artistico",
		direct: [5]string{
			"Creo en la importancia del arte",
			"Disfruto de la belleza que otros pasan por alto",
			"Me conmueve una buena obra de arte",
			"Me encanta visitar museos y conciertos",
			"Encuentro poesia en lo cotidiano",
		},
		reversed: [5]string{
			"El arte me resulta indiferente",
			"No disfruto de las visitas a museos",
			"Rara vez me detengo a contemplar un paisaje",
			"La musica clasica me aburre",
			"No entiendo el entusiasmo por la poesia",
		},
	},
	{
		facet: "O3", trait: TraitOpenness, name: "Emocionalidad",
		direct: [5]string{
			"Experimento mis emociones con intensidad",
			"Percibo facilmente lo que siento",
			"Expreso abiertamente lo que me pasa",
			"Mis estados de animo guian muchas de mis decisiones",
			"Me emociono con facilidad ante una historia conmovedora",
		},
		reversed: [5]string{
			"Rara vez me dejo llevar por las emociones",
			"Me cuesta ponerle nombre a lo que siento",
			"No acostumbro mostrar lo que me pasa por dentro",
			"Las despedidas no me afectan demasiado",
			"Analizo la situacion antes de permitirme sentirla",
		},
	},
	{
		facet: "O4", trait: TraitOpenness, name: "Aventurerismo",
		direct: [5]string{
			"Me gusta probar cosas nuevas",
			"Prefiero la variedad a la rutina",
			"Disfruto conociendo lugares desconocidos",
			"Cambio de planes solo por experimentar algo distinto",
			"Pido platos que nunca he probado",
		},
		reversed: [5]string{
			"Me aferro a lo conocido",
			"Me incomodan los cambios",
			"Sigo siempre el mismo camino",
			"Soy una persona de costumbres fijas",
			"Vacaciono siempre en el mismo lugar",
		},
	},
	{
		facet: "O5", trait: TraitOpenness, name: "Intelecto",
		direct: [5]string{
			"Disfruto resolviendo problemas complejos",
			"Me encantan las ideas abstractas",
			"Leo textos exigentes con gusto",
			"Me atraen los debates filosoficos",
			"Busco explicaciones de fondo para todo",
		},
		reversed: [5]string{
			"Evito las discusiones teoricas",
			"Me cuestan las ideas abstractas",
			"Los temas filosoficos me aburren",
			"Prefiero no profundizar demasiado en nada",
			"Las lecturas densas no son para mi",
		},
	},
	{
		facet: "O6", trait: TraitOpenness, name: "Liberalismo",
		direct: [5]string{
			"Creo que no existe una unica verdad",
			"Me gusta cuestionar a la autoridad",
			"Estoy abierto a revisar mis valores",
			"Creo que las normas estan para adaptarse",
			"Voto por cambiar antes que por conservar",
		},
		reversed: [5]string{
			"Creo en la importancia de la tradicion",
			"Prefiero las reglas claras y estables",
			"Me gusta que las cosas se hagan como siempre",
			"Desconfio de los cambios sociales bruscos",
			"Sigo los preceptos con los que me criaron",
		},
	},
	{
		facet: "A1", trait: TraitAgreeableness, name: "Confianza",
		direct: [5]string{
			"Confio en lo que dicen los demas",
			"Creo que la gente tiene buenas intenciones",
			"Doy a todos el beneficio de la duda",
			"Pienso que la mayoria actua de buena fe",
			"Me resulta natural confiar en un desconocido",
		},
		reversed: [5]string{
			"Desconfio de las promesas ajenas",
			"Sospecho de las intenciones ocultas de la gente",
			"Creo que muchos buscan aprovecharse",
			"Me cuido de quien apenas conozco",
			"Pienso que la confianza hay que ganarsela con creces",
		},
	},
	{
		facet: "A2", trait: TraitAgreeableness, name: "Moralidad",
		direct: [5]string{
			"Cumplo mis promesas cueste lo que cueste",
			"Digo la verdad aunque me perjudique",
			"Juego limpio incluso cuando nadie mira",
			"Trato a todos con la misma vara",
			"Devuelvo hasta el ultimo centavo que me prestan",
		},
		reversed: [5]string{
			"Exagero para salirme con la mia",
			"Uso atajos que otros considerarian dudosos",
			"Adorno la verdad cuando me conviene",
			"Presiono a los demas para conseguir lo que quiero",
			"Me guardo informacion si eso me da ventaja",
		},
	},
	{
		facet: "A3", trait: TraitAgreeableness, name: "Altruismo",
		direct: [5]string{
			"Hago tiempo para los demas",
			"Disfruto ayudando sin esperar nada a cambio",
			"Me preocupo por el bienestar de los otros",
			"Presto lo mio sin pensarlo dos veces",
			"Colaboro con causas solidarias",
		},
		reversed: [5]string{
			"Ayudo solo si me lo piden",
			"Antepongo mis asuntos a los de los demas",
			"Me desentiendo de los problemas ajenos",
			"Rara vez dono tiempo o dinero",
			"Espero algo a cambio cuando hago un favor",
		},
	},
	{
		facet: "A4", trait: TraitAgreeableness, name: "Cooperacion",
		direct: [5]string{
			"Evito los enfrentamientos",
			"Cedo para mantener la paz",
			"Busco puntos en comun en una discusion",
			"Acepto sugerencias de buen grado",
			"Perdono con facilidad",
		},
		reversed: [5]string{
			"Me encanta una buena discusion",
			"Contradigo a los demas con frecuencia",
			"Insisto hasta que me dan la razon",
			"Respondo con dureza a las criticas",
			"Uso un tono cortante cuando me llevan la contraria",
		},
	},
	{
		facet: "A5", trait: TraitAgreeableness, name: "Modestia",
		direct: [5]string{
			"No me gusta hablar de mis logros",
			"Dejo que mi trabajo hable por mi",
			"Me incomodan los elogios",
			"Reconozco abiertamente mis limitaciones",
			"Prefiero pasar desapercibido",
		},
		reversed: [5]string{
			"Tengo una alta opinion de mi mismo",
			"Creo que soy mejor que la mayoria",
			"Me gusta destacar mis exitos",
			"Disfruto siendo admirado",
			"Considero que merezco un trato especial",
		},
	},
	{
		facet: "A6", trait: TraitAgreeableness, name: "Empatia",
		direct: [5]string{
			"Me conmueve la gente que lo pasa mal",
			"Siento las penas ajenas como propias",
			"Me solidarizo con los que tienen menos",
			"Trato con delicadeza a quien esta sufriendo",
			"Me afectan las injusticias que veo",
		},
		reversed: [5]string{
			"Me cuesta ponerme en el lugar del otro",
			"Las desgracias ajenas me resultan lejanas",
			"Creo que cada uno debe arreglarselas solo",
			"No me ablando con las suplicas",
			"Pienso con la cabeza fria antes que con el corazon",
		},
	},
	{
		facet: "C1", trait: TraitConscientiousness, name: "Autoeficacia",
		direct: [5]string{
			"Completo mis tareas con exito",
			"Sobresalgo en lo que hago",
			"Manejo los asuntos con soltura",
			"Se como resolver casi cualquier situacion",
			"Tomo decisiones acertadas",
		},
		reversed: [5]string{
			"Dudo de mis capacidades",
			"Me cuesta entender las cosas a la primera",
			"Evito las tareas dificiles",
			"Siento que los problemas me quedan grandes",
			"Necesito que me confirmen que lo hice bien",
		},
	},
	{
		facet: "C2", trait: TraitConscientiousness, name: "Orden",
		direct: [5]string{
			"Me gusta ordenar",
			"Sigo una rutina establecida",
			"Cada cosa tiene su lugar en mi casa",
			"Planifico mis tareas por escrito",
			"Mantengo mis archivos impecables",
		},
		reversed: [5]string{
			"Dejo mis cosas tiradas por ahi",
			"Mi escritorio es un caos",
			"Olvido donde dejo las cosas",
			"Hago las cosas sobre la marcha",
			"Acumulo desorden sin darme cuenta",
		},
	},
	{
		facet: "C3", trait: TraitConscientiousness, name: "Sentido del deber",
		direct: [5]string{
			"Cumplo con mis obligaciones sin demora",
			"Respeto las reglas aunque nadie vigile",
			"Pago mis cuentas a tiempo",
			"Asumo la responsabilidad cuando me equivoco",
			"Llego puntual a mis citas",
		},
		reversed: [5]string{
			"Rompo las reglas cuando me estorban",
			"Incumplo promesas menores sin remordimiento",
			"Dejo obligaciones a medias",
			"Encuentro excusas para no cumplir",
			"Llego tarde con frecuencia",
		},
	},
	{
		facet: "C4", trait: TraitConscientiousness, name: "Afan de logro",
		direct: [5]string{
			"Me exijo mas de lo que me piden",
			"Trabajo duro para superarme",
			"Me pongo metas ambiciosas",
			"Hago mas de lo que se espera de mi",
			"Empiezo el dia con objetivos claros",
		},
		reversed: [5]string{
			"Me conformo con hacer lo justo",
			"Invierto poco tiempo y esfuerzo en mi trabajo",
			"Las metas ambiciosas no me motivan",
			"Hago lo minimo indispensable",
			"Me da igual destacar o no",
		},
	},
	{
		facet: "C5", trait: TraitConscientiousness, name: "Autodisciplina",
		direct: [5]string{
			"Empiezo las tareas de inmediato",
			"Termino lo que empiezo",
			"Llevo mis planes hasta el final",
			"Me concentro sin distraerme",
			"Supero la pereza sin problema",
		},
		reversed: [5]string{
			"Me cuesta ponerme a trabajar",
			"Aplazo las decisiones dificiles",
			"Me distraigo con facilidad",
			"Abandono proyectos a mitad de camino",
			"Necesito un empujon para arrancar",
		},
	},
	{
		facet: "C6", trait: TraitConscientiousness, name: "Cautela",
		direct: [5]string{
			"Pienso antes de actuar",
			"Evito las decisiones apresuradas",
			"Sopeso los pros y los contras",
			"Elijo mis palabras con cuidado",
			"Reviso todo dos veces antes de enviarlo",
		},
		reversed: [5]string{
			"Actuo sin pensar",
			"Tomo decisiones a la ligera",
			"Digo lo primero que se me ocurre",
			"Me lanzo sin medir las consecuencias",
			"Improviso aunque haya mucho en juego",
		},
	},
}

func init() {
	byID = make(map[string]Question, QuestionCount)
	byFacet = make(map[Facet][]Question, len(facetSpecs))
	facetNames = make(map[Facet]string, len(facetSpecs))
	facetsByTr = make(map[Trait][]Facet, len(traitOrder))
	bank = make([]Question, 0, QuestionCount)

	for _, spec := range facetSpecs {
		facetNames[spec.facet] = spec.name
		facetsByTr[spec.trait] = append(facetsByTr[spec.trait], spec.facet)

		for i, text := range spec.direct {
			addQuestion(spec, i+1, KeyedDirect, text)
		}
		for i, text := range spec.reversed {
			addQuestion(spec, i+1+len(spec.direct), KeyedReverse, text)
		}
	}
}

func addQuestion(spec facetSpec, position int, keyed Keyed, text string) {
	q := Question{
		ID:    fmt.Sprintf("%s_%d", spec.facet, position),
		Trait: spec.trait,
		Facet: spec.facet,
		Keyed: keyed,
		Text:  text,
	}
	bank = append(bank, q)
	byID[q.ID] = q
	byFacet[q.Facet] = append(byFacet[q.Facet], q)
}
