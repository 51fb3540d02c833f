// Package grammar holds the built-in Russian grammar reference: noun,
// adjective and pronoun declension tables, adjective-noun word pairs and
// verb conjugations, loaded from embedded YAML.
package grammar

// Case identifies a Russian grammatical case.
type Case string

const (
	CaseNominative    Case = "nominative"
	CaseAccusative    Case = "accusative"
	CaseGenitive      Case = "genitive"
	CaseDative        Case = "dative"
	CaseInstrumental  Case = "instrumental"
	CasePrepositional Case = "prepositional"
)

// DeclensionCases lists the cases covered by the noun and adjective drills,
// in the order they are taught.
var DeclensionCases = []Case{
	CaseNominative,
	CaseAccusative,
	CaseGenitive,
	CaseDative,
	CasePrepositional,
}

// PronounCases additionally includes the instrumental, which the personal
// pronoun tables cover.
var PronounCases = []Case{
	CaseNominative,
	CaseAccusative,
	CaseGenitive,
	CaseDative,
	CaseInstrumental,
	CasePrepositional,
}

type Gender string

const (
	GenderMasculine Gender = "masculine"
	GenderFeminine  Gender = "feminine"
	GenderNeuter    Gender = "neuter"
)

type Declension string

const (
	DeclensionFirst  Declension = "first"
	DeclensionSecond Declension = "second"
	DeclensionThird  Declension = "third"
)

// Noun carries the singular and plural case forms of a noun.
type Noun struct {
	Singular   map[Case]string `yaml:"singular"`
	Plural     map[Case]string `yaml:"plural"`
	Declension Declension      `yaml:"declension"`
	Gender     Gender          `yaml:"gender"`
	Animacy    string          `yaml:"animacy,omitempty"`
}

// Animate reports whether the noun is animate. Animate masculine nouns take
// the genitive form in the accusative.
func (n Noun) Animate() bool {
	return n.Animacy == "animate"
}

// Adjective carries the singular case forms of an adjective per gender,
// keyed by the masculine nominative base form.
type Adjective struct {
	Masculine map[Case]string `yaml:"masculine"`
	Feminine  map[Case]string `yaml:"feminine"`
	Neuter    map[Case]string `yaml:"neuter"`
}

// Forms returns the case forms for the given gender.
func (a Adjective) Forms(gender Gender) map[Case]string {
	switch gender {
	case GenderFeminine:
		return a.Feminine
	case GenderNeuter:
		return a.Neuter
	default:
		return a.Masculine
	}
}

// Pronoun carries the six case forms of a personal pronoun. Third person
// forms keep the optional н- prefix notation used after prepositions,
// e.g. "(н)его́".
type Pronoun map[Case]string

// WordPair is an adjective-noun pair practiced with full case agreement.
// The adjective is stored in its base form (masculine nominative).
type WordPair struct {
	Adjective   string `yaml:"adjective"`
	Noun        string `yaml:"noun"`
	Gender      Gender `yaml:"gender"`
	Animacy     string `yaml:"animacy"`
	Translation string `yaml:"translation"`
	Category    string `yaml:"category"`
}

// Verb carries the present tense conjugation and past tense forms of a verb.
type Verb struct {
	Translation string            `yaml:"translation"`
	Aspect      string            `yaml:"aspect"`
	Conjugation string            `yaml:"conjugation"`
	Irregular   bool              `yaml:"irregular"`
	Present     map[string]string `yaml:"present"`
	Past        map[string]string `yaml:"past"`
}

// PresentPersons lists the personal pronouns of the present tense
// conjugation in teaching order.
var PresentPersons = []string{"я", "ты", "он", "мы", "вы", "они"}

// PastForms lists the past tense forms in teaching order.
var PastForms = []string{"masculine", "feminine", "neuter", "plural"}
