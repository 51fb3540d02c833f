package grammar

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tables, err := Load()
	require.NoError(t, err)

	assert.NotEmpty(t, tables.Nouns)
	assert.NotEmpty(t, tables.Adjectives)
	assert.NotEmpty(t, tables.Pronouns)
	assert.NotEmpty(t, tables.Pairs)
	assert.NotEmpty(t, tables.Verbs)
}

func TestTables_Noun(t *testing.T) {
	tables, err := Load()
	require.NoError(t, err)

	t.Run("second declension feminine", func(t *testing.T) {
		noun, ok := tables.Noun("книга")
		require.True(t, ok)
		assert.Equal(t, DeclensionSecond, noun.Declension)
		assert.Equal(t, GenderFeminine, noun.Gender)
		assert.Equal(t, "книгу", noun.Singular[CaseAccusative])
		assert.Equal(t, "книг", noun.Plural[CaseGenitive])
		assert.False(t, noun.Animate())
	})

	t.Run("animate masculine accusative equals genitive", func(t *testing.T) {
		noun, ok := tables.Noun("друг")
		require.True(t, ok)
		assert.True(t, noun.Animate())
		assert.Equal(t, noun.Singular[CaseGenitive], noun.Singular[CaseAccusative])
		assert.Equal(t, "друзья", noun.Plural[CaseNominative])
	})

	t.Run("unknown noun", func(t *testing.T) {
		_, ok := tables.Noun("телефон")
		assert.False(t, ok)
	})
}

func TestTables_NounWords(t *testing.T) {
	tables, err := Load()
	require.NoError(t, err)

	third := tables.NounWords(DeclensionThird)
	assert.Equal(t, []string{"дверь", "любовь", "ночь", "тетрадь"}, third)

	all := tables.NounWords("")
	assert.Len(t, all, len(tables.Nouns))
	assert.Greater(t, len(all), len(third))
}

func TestAdjective_Forms(t *testing.T) {
	tables, err := Load()
	require.NoError(t, err)

	adjective, ok := tables.Adjective("новый")
	require.True(t, ok)

	assert.Equal(t, "новую", adjective.Forms(GenderFeminine)[CaseAccusative])
	assert.Equal(t, "новое", adjective.Forms(GenderNeuter)[CaseNominative])
	assert.Equal(t, "нового", adjective.Forms(GenderMasculine)[CaseGenitive])
}

func TestTables_Pronoun(t *testing.T) {
	tables, err := Load()
	require.NoError(t, err)

	pronoun, ok := tables.Pronoun("он")
	require.True(t, ok)
	assert.Equal(t, "(н)его́", pronoun[CaseAccusative])
	assert.Equal(t, pronoun[CaseGenitive], pronoun[CaseAccusative])

	assert.Len(t, tables.PronounWords(), 7)
}

func TestTables_Pairs(t *testing.T) {
	tables, err := Load()
	require.NoError(t, err)

	pair, ok := tables.Pair("красивая книга")
	require.True(t, ok)
	assert.Equal(t, "красивый", pair.Adjective)
	assert.Equal(t, "книга", pair.Noun)
	assert.Equal(t, GenderFeminine, pair.Gender)

	// Every pair must reference words present in the declension tables.
	for phrase, pair := range tables.Pairs {
		_, ok := tables.Adjective(pair.Adjective)
		assert.True(t, ok, "pair %q references unknown adjective %q", phrase, pair.Adjective)
		_, ok = tables.Noun(pair.Noun)
		assert.True(t, ok, "pair %q references unknown noun %q", phrase, pair.Noun)
	}

	places := tables.PairPhrases("places")
	assert.Equal(t, []string{"большой город", "новый дом"}, places)
	assert.Contains(t, tables.PairCategories(), "people")
}

func TestTables_Verb(t *testing.T) {
	tables, err := Load()
	require.NoError(t, err)

	t.Run("regular conjugation I", func(t *testing.T) {
		verb, ok := tables.Verb("работать")
		require.True(t, ok)
		assert.Equal(t, "I", verb.Conjugation)
		assert.False(t, verb.Irregular)
		assert.Equal(t, "работаешь", verb.Present["ты"])
		assert.Equal(t, "работали", verb.Past["plural"])
	})

	t.Run("irregular mixed conjugation", func(t *testing.T) {
		verb, ok := tables.Verb("хотеть")
		require.True(t, ok)
		assert.True(t, verb.Irregular)
		assert.Equal(t, "хочу", verb.Present["я"])
		assert.Equal(t, "хотим", verb.Present["мы"])
	})

	t.Run("all persons filled", func(t *testing.T) {
		for infinitive, verb := range tables.Verbs {
			for _, person := range PresentPersons {
				assert.NotEmpty(t, verb.Present[person], "%s present %s", infinitive, person)
			}
			for _, form := range PastForms {
				assert.NotEmpty(t, verb.Past[form], "%s past %s", infinitive, form)
			}
		}
	})
}

func TestRules(t *testing.T) {
	assert.True(t, strings.Contains(NounDeclensionRules(), "3rd declension"))
	assert.True(t, strings.Contains(AdjectiveDeclensionRules(), "-ого/-его"))
	assert.True(t, strings.Contains(PronounDeclensionRules(), "у него́"))
	assert.True(t, strings.Contains(VerbConjugationRules(), "говор-ишь"))
}
