package grammar

import (
	"embed"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

//go:embed tables/*.yml
var tableFiles embed.FS

// Tables is the loaded grammar reference.
type Tables struct {
	Nouns      map[string]Noun
	Adjectives map[string]Adjective
	Pronouns   map[string]Pronoun
	Pairs      map[string]WordPair
	Verbs      map[string]Verb
}

// Load parses the embedded YAML tables.
func Load() (*Tables, error) {
	tables := &Tables{}
	if err := loadTable("tables/nouns.yml", &tables.Nouns); err != nil {
		return nil, err
	}
	if err := loadTable("tables/adjectives.yml", &tables.Adjectives); err != nil {
		return nil, err
	}
	if err := loadTable("tables/pronouns.yml", &tables.Pronouns); err != nil {
		return nil, err
	}
	if err := loadTable("tables/pairs.yml", &tables.Pairs); err != nil {
		return nil, err
	}
	if err := loadTable("tables/verbs.yml", &tables.Verbs); err != nil {
		return nil, err
	}
	return tables, nil
}

func loadTable(name string, out any) error {
	contents, err := tableFiles.ReadFile(name)
	if err != nil {
		return fmt.Errorf("tableFiles.ReadFile(%s) > %w", name, err)
	}
	if err := yaml.Unmarshal(contents, out); err != nil {
		return fmt.Errorf("yaml.Unmarshal(%s) > %w", name, err)
	}
	return nil
}

// Noun returns the declension table for a noun.
func (t *Tables) Noun(word string) (Noun, bool) {
	noun, ok := t.Nouns[word]
	return noun, ok
}

// Adjective returns the declension table for an adjective base form.
func (t *Tables) Adjective(word string) (Adjective, bool) {
	adjective, ok := t.Adjectives[word]
	return adjective, ok
}

// Pronoun returns the case forms of a personal pronoun.
func (t *Tables) Pronoun(word string) (Pronoun, bool) {
	pronoun, ok := t.Pronouns[word]
	return pronoun, ok
}

// Verb returns the conjugation of a verb infinitive.
func (t *Tables) Verb(infinitive string) (Verb, bool) {
	verb, ok := t.Verbs[infinitive]
	return verb, ok
}

// Pair returns an adjective-noun pair by its nominative phrase.
func (t *Tables) Pair(phrase string) (WordPair, bool) {
	pair, ok := t.Pairs[phrase]
	return pair, ok
}

// NounWords returns the noun keys in sorted order, optionally filtered by
// declension class. An empty declension matches everything.
func (t *Tables) NounWords(declension Declension) []string {
	words := make([]string, 0, len(t.Nouns))
	for word, noun := range t.Nouns {
		if declension != "" && noun.Declension != declension {
			continue
		}
		words = append(words, word)
	}
	sort.Strings(words)
	return words
}

// AdjectiveWords returns the adjective base forms in sorted order.
func (t *Tables) AdjectiveWords() []string {
	return sortedKeys(t.Adjectives)
}

// PronounWords returns the pronoun keys in sorted order.
func (t *Tables) PronounWords() []string {
	return sortedKeys(t.Pronouns)
}

// PairPhrases returns the word pair phrases in sorted order, optionally
// filtered by category. An empty category matches everything.
func (t *Tables) PairPhrases(category string) []string {
	phrases := make([]string, 0, len(t.Pairs))
	for phrase, pair := range t.Pairs {
		if category != "" && pair.Category != category {
			continue
		}
		phrases = append(phrases, phrase)
	}
	sort.Strings(phrases)
	return phrases
}

// VerbInfinitives returns the verb keys in sorted order.
func (t *Tables) VerbInfinitives() []string {
	return sortedKeys(t.Verbs)
}

// PairCategories returns the distinct word pair categories in sorted order.
func (t *Tables) PairCategories() []string {
	seen := map[string]struct{}{}
	for _, pair := range t.Pairs {
		seen[pair.Category] = struct{}{}
	}
	categories := make([]string, 0, len(seen))
	for category := range seen {
		categories = append(categories, category)
	}
	sort.Strings(categories)
	return categories
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
