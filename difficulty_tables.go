package quizextractor

import "regexp"

// The difficulty classifier is a fixed-weight scorer, not a learned model.
// Every table below is part of the classification contract: changing a
// keyword, pattern or weight changes labels on the reference corpus. The
// tables were tuned against LET (Licensure Examination for Teachers)
// General Education and Professional Education question sets.

// keywordEntry maps a tier of substring keywords to a point value. Within a
// dimension only the highest-valued matching tier counts, so repeating
// similar keywords cannot saturate a dimension.
type keywordEntry struct {
	name     string
	weight   int
	keywords []string
}

// patternEntry is the regexp-based counterpart of keywordEntry.
type patternEntry struct {
	name     string
	weight   int
	patterns []*regexp.Regexp
}

func compilePatterns(exprs ...string) []*regexp.Regexp {
	compiled := make([]*regexp.Regexp, len(exprs))
	for i, expr := range exprs {
		compiled[i] = regexp.MustCompile(expr)
	}
	return compiled
}

// Dimension 1: cognitive complexity of the question, recall through
// creation. Weights 1-6.
var cognitiveLevels = []keywordEntry{
	{
		name: "remember", weight: 1,
		keywords: []string{
			"what is", "who is", "when did", "where is", "define", "identify", "list", "name", "recall", "state", "recognize",
			"the date of", "the title", "the author of", "the capital of", "the largest", "the smallest",
			"known as", "called", "refers to", "means", "stands for", "acronym for",
			"which of the following is", "what does", "who developed", "what theory", "what law",
			"according to", "based on", "the term", "this refers to", "is defined as",
		},
	},
	{
		name: "understand", weight: 2,
		keywords: []string{
			"explain", "describe", "summarize", "interpret", "classify", "compare", "contrast", "illustrate", "translate",
			"the essence of", "the purpose of", "the meaning of", "demonstrates", "shows", "indicates",
			"example of", "characteristic of", "feature of", "belongs to",
			"what is meant by", "this means that", "the concept of", "understanding of",
			"the principle behind", "the idea that", "represents", "symbolizes",
		},
	},
	{
		name: "apply", weight: 3,
		keywords: []string{
			"calculate", "solve", "demonstrate", "use", "apply", "implement", "execute", "operate", "practice",
			"find the value", "compute", "determine", "obtain", "perform", "simplify",
			"what score must", "if the student has", "the simple interest on", "the total amount after",
			"what teaching strategy", "what method should", "how would you", "what approach",
			"in this situation", "the teacher should", "what would be the best", "how can the teacher",
		},
	},
	{
		name: "analyze", weight: 4,
		keywords: []string{
			"analyze", "examine", "investigate", "categorize", "differentiate", "distinguish", "organize", "deconstruct",
			"what kind of thinking", "what type of", "which approach", "what strategy",
			"based on information", "according to", "in relation to",
			"what factor", "what element", "what component", "break down", "dissect",
			"what causes", "what leads to", "relationship between", "connection between",
		},
	},
	{
		name: "evaluate", weight: 5,
		keywords: []string{
			"evaluate", "assess", "critique", "judge", "justify", "argue", "defend", "support", "validate", "rate",
			"most appropriate", "best", "most effective", "least", "cannot be considered",
			"which of the following can be", "what went wrong", "is the teacher right",
			"most suitable", "least appropriate", "not recommended", "should not",
			"priority should be", "first consideration", "primary concern", "main focus",
		},
	},
	{
		name: "create", weight: 6,
		keywords: []string{
			"create", "design", "develop", "construct", "formulate", "generate", "produce", "synthesize", "compose",
			"make research", "developing a system", "design the instructional", "plan ahead for",
			"establish", "build", "organize", "structure", "arrange", "set up",
			"plan a lesson", "design a curriculum", "develop a program", "create a strategy",
		},
	},
}

// Dimension 2: structural pattern of the question, simple factual through
// multi-part conditional/causal. Weights 1-4.
var structureIndicators = []patternEntry{
	{
		name: "simple_factual", weight: 1,
		patterns: compilePatterns(
			`what is the`, `who is`, `when did`, `where is`, `which of the following is`,
			`the name of`, `the largest`, `the smallest`, `the first`, `the last`,
			`how many`, `what type of`, `what kind of`, `which one`, `the capital of`,
			`the author of`, `the date of`, `the title of`,
		),
	},
	{
		name: "multiple_concepts", weight: 2,
		patterns: compilePatterns(
			`both.*and`, `either.*or`, `not only.*but also`, `as well as`, `in addition to`,
			`all of the following`, `none of the following`, `except for`, `with the exception of`,
			`along with`, `together with`,
		),
	},
	{
		name: "conditional_reasoning", weight: 3,
		patterns: compilePatterns(
			`if.*then`, `assuming that`, `given that`, `provided that`, `in case of`,
			`when.*will`, `unless.*otherwise`, `suppose that`, `what would happen if`,
			`under what conditions`,
		),
	},
	{
		name: "comparative_analysis", weight: 3,
		patterns: compilePatterns(
			`compare.*with`, `contrast.*and`, `difference between`, `similarity between`, `versus`,
			`most appropriate`, `best describes`, `most suitable`, `least likely`,
			`most effective`, `better than`, `worse than`, `unlike.*`, `whereas.*`,
			`on the other hand`, `in contrast to`,
		),
	},
	{
		name: "causal_relationships", weight: 4,
		patterns: compilePatterns(
			`because of`, `due to`, `as a result of`, `leads to`, `causes`, `effects of`,
			`results in`, `consequently`, `therefore`, `thus`, `hence`,
			`what factor`, `what causes`, `why does`, `the reason for`,
		),
	},
	{
		name: "application_scenarios", weight: 4,
		patterns: compilePatterns(
			`in the classroom`, `teaching strategy`, `learning activity`,
			`instructional approach`, `assessment method`, `what should.*do`,
			`how would you`, `the teacher should`, `students should`,
			`in this situation`, `given this scenario`, `what teaching strategy`,
			`what is meant by`, `what approach`,
		),
	},
}

// Dimension 3: domain-specific vocabulary density across escalating
// specificity tiers. Weights 1-7.
var domainComplexity = []keywordEntry{
	{
		name: "basic_facts", weight: 1,
		keywords: []string{
			"capital", "flag", "anthem", "hero", "date", "year", "name of", "title of",
			"archipelago", "blood compact", "ilustrados", "aetas", "balagtasan",
			"commensalism", "food web", "genus", "esters", "cube", "exponential form",
			"cell", "tissue", "organ", "system", "blood", "heart", "brain", "lung",
			"bone", "muscle", "skin", "eye", "ear", "nose", "mouth", "tooth", "teeth",
			"ribs", "sternum", "vertebral column", "cerebellum", "aorta", "ventricle",
		},
	},
	{
		name: "mathematical_operations", weight: 2,
		keywords: []string{
			"calculate", "compute", "solve for", "find the value", "equation", "formula", "percentage",
			"simplify", "greatest common", "least common", "average score", "simple interest",
			"consecutive even integers", "discount", "final average", "total amount",
		},
	},
	{
		name: "scientific_principles", weight: 3,
		keywords: []string{
			"principle", "law", "theory", "hypothesis", "experiment", "observation", "phenomenon",
			"citric acid cycle", "electron configuration", "carbon family", "organic compounds",
			"feeding connections", "life forms", "biochemical pathway",
			"mitosis", "meiosis", "dna", "rna", "protein", "enzyme", "hormone", "chromosome",
			"gene", "allele", "phenotype", "genotype", "mutation", "natural selection",
			"adaptation", "species", "taxonomy", "classification", "kingdom", "phylum",
			"photosynthesis", "respiration", "evolution", "genetics", "ecosystem", "biodiversity",
			"glucagon", "adrenalin", "insulin", "thyroxine", "leukocytes", "lymphocytes",
			"erythrocytes", "cellulose", "cotyledon", "hilum", "meristematic", "cambium",
			"epidermis", "tundra", "rain forest", "biome", "habitat",
		},
	},
	{
		name: "educational_theory", weight: 5,
		keywords: []string{
			"pedagogy", "curriculum", "assessment", "learning theory", "teaching method", "educational philosophy",
			"outcome-based education", "understanding by design", "problem-based", "cooperative learning",
			"affective domain", "cognitive domain", "psychomotor domain", "bloom's taxonomy",
			"convergent thinking", "divergent thinking", "reflective teaching", "action research",
			"curriculum development", "curriculum model", "curriculum approach", "delivery modes",
			"learning objectives", "competency", "learning materials", "instructional design",
			"educational approach", "teaching approach", "learning approach", "methodology",
			"classroom management", "discipline", "motivation", "reinforcement", "guidance process",
			"test reliability", "erikson stages", "maslow hierarchy", "course objective",
			"learning climate", "drta", "cultural heritage", "test norms", "professionalization",
			"correlation", "student motivation", "higher-order thinking", "vygotsky scaffolding",
			"real-world connections", "ict concerns", "pygmalion effect", "ripple effect",
		},
	},
	{
		name: "advanced_educational_concepts", weight: 6,
		keywords: []string{
			"multicultural perspective", "inclusive education", "alternative learning system",
			"intellectual disability", "direct instruction", "task analysis", "systematic feedback",
			"progressivism", "reconstructionism", "existentialism", "behaviorist learning theory",
			"media literacy", "digital literacy", "information literacy", "cyber literacy",
			"philosophical foundations", "educational philosophy", "constructivist", "behaviorist",
			"cognitive theory", "metacognitive", "scaffolding", "differentiation", "taxonomy",
			"reader-response theory", "modern taxonomy", "ancient taxonomy", "inclusivity",
			"enhanced basic education act", "madrasa curriculum", "chronological ages",
			"perennialism", "essentialism", "idealism", "pragmatism", "phenomenology",
			"phenomenologists", "idealists", "pragmatists", "plato philosophy",
			"freud psychoanalytic theory", "chomsky language learning", "bandura social learning",
			"thorndike law of effect", "bruner theory", "trust vs maturity", "autonomy vs self-doubt",
			"initiative vs guilt", "behavior modification", "pleasant consequences",
		},
	},
	{
		name: "research_methodology", weight: 7,
		keywords: []string{
			"research", "methodology", "statistical", "qualitative", "quantitative", "meta-analysis",
			"capstone", "developing a system", "negatively skewed", "score distribution",
			"philosophical foundations", "curriculum process", "delivery modes",
			"formulation", "effectiveness", "evaluation", "determining objectives", "model begins",
			"extent of poverty", "squatter area", "clusters of major", "sub-concepts", "interaction",
		},
	},
}

// Dimension 4 vocabulary: technical terms counted toward linguistic
// complexity (capped at 3 in the question) and answer-choice complexity
// (capped at 2 across options).
var technicalTerms = []string{
	"methodology", "paradigm", "epistemology", "ontology", "phenomenology",
	"pedagogy", "andragogy", "heutagogy", "constructivism", "behaviorism",
	"cognitivism", "metacognition", "scaffolding", "differentiation",
	"taxonomy", "synthesis", "analysis", "evaluation", "application",
	"outcome-based", "competency-based", "contextualized", "deductive", "inductive",
	"synchronous", "asynchronous", "blended learning", "modular approach",
	"progressivism", "reconstructionism", "existentialism", "idealism",
	"alternative learning system", "inclusive education", "multicultural",
	"classroom management", "instructional design", "curriculum development",
	"assessment method", "learning objectives", "competency-based",
	"erikson stages", "maslow hierarchy", "vygotsky scaffolding", "piaget theory",
	"freud psychoanalytic", "bandura social learning", "thorndike law",
	"bruner discovery learning", "bloom taxonomy", "gardner multiple intelligence",
	"perennialism", "essentialism", "pragmatism", "phenomenologists",
	"guidance process", "test reliability", "correlation coefficient",
	"professionalization", "pygmalion effect", "ripple effect",
	"mitochondria", "chloroplast", "ribosome", "endoplasmic reticulum",
	"golgi apparatus", "lysosome", "nucleus", "cytoplasm", "membrane",
	"photosynthesis", "cellular respiration", "mitosis", "meiosis",
	"dna replication", "transcription", "translation", "enzyme",
	"protein synthesis", "amino acid", "nucleotide", "chromosome",
	"allele", "genotype", "phenotype", "heredity", "mutation",
	"ecosystem", "biodiversity", "symbiosis", "parasitism", "mutualism",
	"commensalism", "predation", "competition", "succession",
	"homeostasis", "metabolism", "osmosis", "diffusion", "active transport",
	"cerebellum", "vertebral column", "sternum", "glucagon", "insulin",
	"thyroxine", "adrenalin", "leukocytes", "erythrocytes", "lymphocytes",
	"cellulose", "cotyledon", "hilum", "meristematic", "cambium", "epidermis",
	"tundra", "biome", "taxonomy", "classification", "binomial nomenclature",
	"pangatnig", "paglalapi", "pagbubuo", "pagkaltas", "dugtungan",
	"patotoo", "pagtanggi", "talumpati", "bugtungan",
}

// Dimension 4: sentence connectors that mark complex structures, +1 each.
var complexStructures = compilePatterns(
	`not only.*but also`, `although.*however`, `despite.*nevertheless`,
	`whereas.*while`, `in contrast to.*however`, `on the one hand.*on the other hand`,
)

// Dimension 5: numeric/formula shapes inside answer options.
var numericalPatterns = compilePatterns(
	`\d+\.\d+`, `\d+%`, `\d+/\d+`, `[a-z]\^\d+`, `√\d+`,
)

// optionLetterPattern strips the display letter before measuring options.
var optionLetterPattern = regexp.MustCompile(`^[A-D]\. `)

// Dimension 6: region-specific prior knowledge, +1 per hit.
var philippineContext = []string{
	"republic act", "ra ", "deped", "ched", "let", "licensure examination",
	"k-12", "mother tongue", "filipino", "tagalog", "cebuano", "ilokano",
	"philippine independence", "diosdado macapagal", "emilio aguinaldo", "apolinario mabini",
	"legaspi", "sikatuna", "blood compact", "galleon trade", "ilustrados",
	"antonio de morga", "sucesos de las islas filipinas", "spanish regime",
	"luzon", "pampanga", "tarlac", "zambales", "aetas", "igorots", "mangyans",
	"archipelago", "bohol", "pasig", "magallanes ave",
}

// Dimension 6: policy/law knowledge, +2 per hit. The combined dimension
// score is capped at 4.
var educationalLaw = []string{
	"ra 10533", "ra 7836", "ra 9155", "enhanced basic education act",
	"magna carta", "code of ethics", "professional standards",
	"code of ethics for professional teachers", "philippine education plan",
	"curriculum development", "educational landscape", "teaching-learning process",
	"school governance", "borderless global society", "multicultural perspective",
}

// Dimension 7: compound signatures of questions observed to be hard on the
// reference corpus. Only the single highest-weight matching signature
// counts. Weights 10-15.
var hardSignatures = []patternEntry{
	{
		name: "complex_teaching_strategies", weight: 12,
		patterns: compilePatterns(
			`what teaching strategy.*employ`,
			`i\. .*ii\. .*iii\. .*iv\.`,
			`socio-drama.*dilemma.*jury trial.*parliamentary`,
			`effectively analyze and evaluate evidence`,
			`critical thinking and problem solving`,
			`competency.*effectively analyze.*evaluate.*evidence.*arguments.*claims.*beliefs`,
		),
	},
	{
		name: "media_literacy_analysis", weight: 12,
		patterns: compilePatterns(
			`ability to access.*analyze.*evaluate.*create.*act`,
			`using all forms of communication`,
			`literacy.*21st century.*access.*analyze.*evaluate.*create.*act`,
			`analyze.*evaluate.*evidence.*arguments.*claims.*beliefs`,
			`media literacy.*information literacy.*digital literacy.*cyber literacy`,
			`literacy.*21st century.*refers to the ability`,
		),
	},
	{
		name: "complex_multiple_choice", weight: 10,
		patterns: compilePatterns(
			`i, ii, iii and iv`,
			`ii, iii and iv only`,
			`i and ii only`,
			`i, ii and iv only`,
			`which of the following.*except`,
			`all.*except one`,
			`only.*i\. .*ii\. .*iii\. .*iv\.`,
		),
	},
	{
		name: "advanced_educational_theory", weight: 11,
		patterns: compilePatterns(
			`philosophical foundations.*curriculum`,
			`progressivists.*john dewey`,
			`behaviorist learning theory`,
			`bronfenbrenner.*ecological theory`,
			`vygotsky.*zone of proximal development`,
			`curriculum development model.*begins.*determining.*objectives`,
			`reader-response theory`,
			`modern taxonomy.*carolus linnaeus.*ancient taxonomy`,
			`enhanced basic education act.*inclusivity`,
			`madrasa curriculum.*inclusive education`,
		),
	},
	{
		name: "curriculum_and_assessment_complexity", weight: 11,
		patterns: compilePatterns(
			`curriculum process.*delivery modes.*applied`,
			`extent of poverty.*squatter area`,
			`approach.*topics.*clusters.*major.*sub-concepts.*interaction`,
			`additional learning experiences.*learners.*gifts.*talents.*chronological ages`,
			`competency.*grade.*math.*interprets data.*bar graphs`,
			`diversity of learners.*competency.*teacher display`,
			`formulation.*basic education curriculum.*ra 10533.*inclusivity`,
			`test item analysis.*difficulty index.*discrimination index`,
			`guidance process.*counseling.*psychological testing`,
			`test reliability.*validity.*correlation coefficient`,
			`course objective.*assessment.*learning outcomes`,
			`positive learning climate.*classroom management`,
			`cultural heritage.*multicultural perspective`,
		),
	},
	{
		name: "biology_complexity", weight: 12,
		patterns: compilePatterns(
			`cellular respiration.*mitochondria.*atp production`,
			`photosynthesis.*chloroplast.*light reactions.*calvin cycle`,
			`dna replication.*transcription.*translation.*protein synthesis`,
			`mitosis.*meiosis.*chromosome.*genetic variation`,
			`ecosystem.*food chain.*energy flow.*nutrient cycling`,
			`homeostasis.*feedback mechanisms.*regulation`,
			`evolution.*natural selection.*adaptation.*speciation`,
			`genetics.*alleles.*genotype.*phenotype.*inheritance`,
			`anatomy.*physiology.*organ systems.*structure.*function`,
			`taxonomy.*classification.*binomial nomenclature.*phylogeny`,
		),
	},
	{
		name: "philosophical_education_complexity", weight: 13,
		patterns: compilePatterns(
			`existentialism.*perennialism.*progressivism.*essentialism`,
			`phenomenologists.*idealists.*pragmatists.*philosophy`,
			`plato.*aristotle.*socrates.*philosophical foundations`,
			`erikson.*stages.*trust.*autonomy.*initiative.*identity`,
			`freud.*psychoanalytic.*unconscious.*defense mechanisms`,
			`piaget.*cognitive development.*stages.*schema.*assimilation`,
			`vygotsky.*zone of proximal development.*scaffolding.*social learning`,
			`bandura.*social learning theory.*modeling.*observational learning`,
			`thorndike.*law of effect.*behaviorism.*conditioning`,
			`bruner.*discovery learning.*spiral curriculum.*cognitive theory`,
		),
	},
	{
		name: "specific_hard_indicators", weight: 15,
		patterns: compilePatterns(
			`refers to the ability to access, analyze, evaluate, create and act`,
			`intend my students to attain competency`,
			`teaching strategy will i need to employ`,
			`21st century.*ability.*access.*analyze.*evaluate.*create.*act`,
			`what competency must the teacher display`,
			`which learning materials are most appropriate.*master the competency`,
			`what does inclusivity mean`,
			`curriculum development model.*effectiveness`,
			`pygmalion effect.*teacher expectations.*student performance`,
			`ripple effect.*classroom discipline.*behavior management`,
			`maslow.*hierarchy.*needs.*motivation.*self-actualization`,
			`bloom.*taxonomy.*cognitive.*affective.*psychomotor.*domains`,
			`gardner.*multiple intelligence.*learning styles.*individual differences`,
			`structure.*function.*relationship.*biological systems`,
			`compare.*contrast.*biological processes.*mechanisms`,
			`analyze.*interpret.*experimental data.*scientific method`,
			`predict.*outcomes.*based on.*biological principles`,
		),
	},
}

// Per-dimension maxima. Their sum is the fixed normalization denominator.
const (
	maxCognitiveScore  = 6
	maxStructureScore  = 4
	maxDomainScore     = 7
	maxLinguisticScore = 6
	maxAnswerScore     = 4
	maxContextScore    = 4
	maxHardScore       = 15

	maxPossibleScore = maxCognitiveScore + maxStructureScore + maxDomainScore +
		maxLinguisticScore + maxAnswerScore + maxContextScore + maxHardScore
)
