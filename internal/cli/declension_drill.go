package cli

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/HVLhenrik/russian-tutor/internal/grammar"
)

// drillPrompt is a single question within a drill item, e.g. one case of
// a noun or one person of a verb conjugation.
type drillPrompt struct {
	label  string
	answer string
}

// drillItem groups the prompts for one word: all cases of a noun, all
// masculine forms of an adjective, a full conjugation.
type drillItem struct {
	kind    string
	title   string
	details []string
	prompts []drillPrompt
}

// DeclensionDrillCLI runs grammar drills over a shuffled list of items.
// Drill scores are shown per session and are not recorded in the
// practice ledger; the ledger tracks vocabulary practice only.
type DeclensionDrillCLI struct {
	*InteractiveCLI
	items []drillItem
	index int

	correctCount int
	totalCount   int
}

func newDeclensionDrillCLI(items []drillItem, rng *rand.Rand) *DeclensionDrillCLI {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	rng.Shuffle(len(items), func(i, j int) {
		items[i], items[j] = items[j], items[i]
	})
	return &DeclensionDrillCLI{
		InteractiveCLI: newInteractiveCLI(),
		items:          items,
	}
}

// NewNounDrill builds a drill over the noun tables, optionally filtered
// by declension class. With plurals set, plural forms are asked instead
// of singular ones.
func NewNounDrill(tables *grammar.Tables, declension grammar.Declension, plurals bool, rng *rand.Rand) (*DeclensionDrillCLI, error) {
	words := tables.NounWords(declension)
	if len(words) == 0 {
		return nil, fmt.Errorf("no nouns found for declension %q", declension)
	}

	items := make([]drillItem, 0, len(words))
	for _, word := range words {
		noun, _ := tables.Noun(word)

		forms := noun.Singular
		suffix := ""
		if plurals {
			forms = noun.Plural
			suffix = " (plural)"
		}

		prompts := make([]drillPrompt, 0, len(grammar.DeclensionCases))
		for _, grammarCase := range grammar.DeclensionCases {
			form, ok := forms[grammarCase]
			if !ok {
				continue
			}
			prompts = append(prompts, drillPrompt{
				label:  caseTitle(grammarCase) + suffix,
				answer: form,
			})
		}

		items = append(items, drillItem{
			kind:  "noun",
			title: word,
			details: []string{
				fmt.Sprintf("Gender: %s", noun.Gender),
				fmt.Sprintf("Declension: %s", noun.Declension),
			},
			prompts: prompts,
		})
	}
	return newDeclensionDrillCLI(items, rng), nil
}

// NewAdjectiveDrill builds a drill over the masculine forms of the
// adjective tables.
func NewAdjectiveDrill(tables *grammar.Tables, rng *rand.Rand) (*DeclensionDrillCLI, error) {
	words := tables.AdjectiveWords()
	if len(words) == 0 {
		return nil, fmt.Errorf("no adjectives found")
	}

	items := make([]drillItem, 0, len(words))
	for _, word := range words {
		adjective, _ := tables.Adjective(word)

		prompts := make([]drillPrompt, 0, len(grammar.DeclensionCases))
		for _, grammarCase := range grammar.DeclensionCases {
			form, ok := adjective.Masculine[grammarCase]
			if !ok {
				continue
			}
			prompts = append(prompts, drillPrompt{
				label:  caseTitle(grammarCase) + " (masculine)",
				answer: form,
			})
		}

		items = append(items, drillItem{
			kind:    "adjective",
			title:   word,
			details: []string{"Decline this adjective (masculine forms)"},
			prompts: prompts,
		})
	}
	return newDeclensionDrillCLI(items, rng), nil
}

// pronounExamCases are the cases asked in the pronoun drill. The
// nominative is the prompt itself and the instrumental is not part of
// the exam.
var pronounExamCases = []grammar.Case{
	grammar.CaseAccusative,
	grammar.CaseGenitive,
	grammar.CaseDative,
	grammar.CasePrepositional,
}

// NewPronounDrill builds a drill over the personal pronoun tables.
func NewPronounDrill(tables *grammar.Tables, rng *rand.Rand) (*DeclensionDrillCLI, error) {
	words := tables.PronounWords()
	if len(words) == 0 {
		return nil, fmt.Errorf("no pronouns found")
	}

	items := make([]drillItem, 0, len(words))
	for _, word := range words {
		pronoun, _ := tables.Pronoun(word)

		prompts := make([]drillPrompt, 0, len(pronounExamCases))
		for _, grammarCase := range pronounExamCases {
			form, ok := pronoun[grammarCase]
			if !ok {
				continue
			}
			prompts = append(prompts, drillPrompt{
				label:  caseTitle(grammarCase),
				answer: form,
			})
		}

		items = append(items, drillItem{
			kind:    "pronoun",
			title:   word,
			details: []string{"Decline this pronoun"},
			prompts: prompts,
		})
	}
	return newDeclensionDrillCLI(items, rng), nil
}

// NewPairDrill builds an agreement drill over adjective-noun pairs,
// optionally filtered by gender or category. Quick mode limits the drill
// to five pairs and three cases each.
func NewPairDrill(tables *grammar.Tables, gender grammar.Gender, category string, quick bool, rng *rand.Rand) (*DeclensionDrillCLI, error) {
	cases := grammar.DeclensionCases
	if quick {
		cases = []grammar.Case{grammar.CaseNominative, grammar.CaseAccusative, grammar.CaseGenitive}
	}

	items := make([]drillItem, 0, len(tables.Pairs))
	for _, phrase := range tables.PairPhrases(category) {
		pair, _ := tables.Pair(phrase)
		if gender != "" && pair.Gender != gender {
			continue
		}

		adjective, ok := tables.Adjective(pair.Adjective)
		if !ok {
			continue
		}
		noun, ok := tables.Noun(pair.Noun)
		if !ok {
			continue
		}
		adjectiveForms := adjective.Forms(pair.Gender)

		prompts := make([]drillPrompt, 0, len(cases))
		for _, grammarCase := range cases {
			adjectiveForm, ok := adjectiveForms[grammarCase]
			if !ok {
				continue
			}
			nounForm, ok := noun.Singular[grammarCase]
			if !ok {
				continue
			}
			prompts = append(prompts, drillPrompt{
				label:  caseTitle(grammarCase),
				answer: adjectiveForm + " " + nounForm,
			})
		}

		items = append(items, drillItem{
			kind:  "pair",
			title: phrase,
			details: []string{
				fmt.Sprintf("Gender: %s", pair.Gender),
				fmt.Sprintf("Translation: %s", pair.Translation),
				"Adjectives must agree with nouns in gender and case",
			},
			prompts: prompts,
		})
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("no word pairs found for this selection")
	}
	if quick && len(items) > 5 {
		items = items[:5]
	}
	return newDeclensionDrillCLI(items, rng), nil
}

// NewVerbDrill builds a conjugation drill over the verb tables: present
// tense per person, then the past tense forms.
func NewVerbDrill(tables *grammar.Tables, rng *rand.Rand) (*DeclensionDrillCLI, error) {
	infinitives := tables.VerbInfinitives()
	if len(infinitives) == 0 {
		return nil, fmt.Errorf("no verbs found")
	}

	items := make([]drillItem, 0, len(infinitives))
	for _, infinitive := range infinitives {
		verb, _ := tables.Verb(infinitive)

		prompts := make([]drillPrompt, 0, len(grammar.PresentPersons)+len(grammar.PastForms))
		for _, person := range grammar.PresentPersons {
			form, ok := verb.Present[person]
			if !ok {
				continue
			}
			prompts = append(prompts, drillPrompt{
				label:  fmt.Sprintf("Present, %s", person),
				answer: form,
			})
		}
		for _, pastForm := range grammar.PastForms {
			form, ok := verb.Past[pastForm]
			if !ok {
				continue
			}
			prompts = append(prompts, drillPrompt{
				label:  fmt.Sprintf("Past, %s", pastForm),
				answer: form,
			})
		}

		details := []string{
			fmt.Sprintf("Translation: %s", verb.Translation),
			fmt.Sprintf("Aspect: %s | Conjugation: %s", verb.Aspect, verb.Conjugation),
		}
		if verb.Irregular {
			details = append(details, "Irregular verb")
		}

		items = append(items, drillItem{
			kind:    "verb",
			title:   infinitive,
			details: details,
			prompts: prompts,
		})
	}
	return newDeclensionDrillCLI(items, rng), nil
}

// ItemCount returns the number of items left to drill.
func (r *DeclensionDrillCLI) ItemCount() int {
	return len(r.items) - r.index
}

func (r *DeclensionDrillCLI) Session(ctx context.Context) error {
	if r.index >= len(r.items) {
		r.displayResults(false)
		return errEnd
	}

	item := r.items[r.index]
	r.index++

	fmt.Fprintf(r.stdoutWriter, "\n%s\n", strings.Repeat("=", 40))
	fmt.Fprintf(r.stdoutWriter, "%s: %s\n", titleCase(item.kind), r.bold.Sprintf("%s", item.title))
	for _, detail := range item.details {
		fmt.Fprintln(r.stdoutWriter, detail)
	}
	fmt.Fprintf(r.stdoutWriter, "%s\n", strings.Repeat("=", 40))

	correctInRow := 0
	for _, prompt := range item.prompts {
		fmt.Fprintf(r.stdoutWriter, "\n%s:\n", prompt.label)
		userAnswer, err := r.readLine("Your answer: ")
		if err != nil {
			return err
		}
		if isQuit(userAnswer) {
			fmt.Fprintln(r.stdoutWriter, "\n⚠️  Practice session aborted by user")
			r.displayResults(true)
			return errEnd
		}

		r.totalCount++
		isCorrect := checkAnswer(userAnswer, prompt.answer)
		r.displayFeedback(isCorrect, prompt.answer)
		if isCorrect {
			r.correctCount++
			correctInRow++
			continue
		}
		correctInRow = 0

		aborted, err := r.practiceCorrectAnswer(prompt.answer)
		if err != nil {
			return err
		}
		if aborted {
			fmt.Fprintln(r.stdoutWriter, "\n⚠️  Practice session aborted by user")
			r.displayResults(true)
			return errEnd
		}
	}

	if correctInRow == len(item.prompts) {
		fmt.Fprintf(r.stdoutWriter, "\n🌟 Perfect! You got all forms of '%s' correct!\n", item.title)
	}

	if r.index < len(r.items) {
		keepGoing, err := r.askYesNo(fmt.Sprintf("\nContinue with next %s? (y/n): ", item.kind))
		if err != nil {
			return err
		}
		if !keepGoing {
			r.displayResults(false)
			return errEnd
		}
	}
	return nil
}

func (r *DeclensionDrillCLI) displayResults(aborted bool) {
	if r.totalCount == 0 {
		return
	}

	percentage := float64(r.correctCount) / float64(r.totalCount) * 100
	fmt.Fprintf(r.stdoutWriter, "\n%s\n", strings.Repeat("=", 50))
	if aborted {
		fmt.Fprintln(r.stdoutWriter, "⚠️  PRACTICE SESSION INCOMPLETE")
	} else {
		fmt.Fprintln(r.stdoutWriter, "✅ PRACTICE SESSION COMPLETE")
	}
	fmt.Fprintf(r.stdoutWriter, "%s\n", strings.Repeat("=", 50))
	fmt.Fprintf(r.stdoutWriter, "\nScore: %d/%d (%.1f%%)\n", r.correctCount, r.totalCount, percentage)

	switch {
	case percentage >= 90:
		fmt.Fprintln(r.stdoutWriter, "🌟 Excellent! You're mastering Russian declensions!")
	case percentage >= 75:
		fmt.Fprintln(r.stdoutWriter, "👍 Great work! Keep practicing!")
	case percentage >= 60:
		fmt.Fprintln(r.stdoutWriter, "📚 Good effort! Review the rules.")
	default:
		fmt.Fprintln(r.stdoutWriter, "💪 Keep studying! Practice makes perfect!")
	}
}

func caseTitle(grammarCase grammar.Case) string {
	return titleCase(string(grammarCase))
}

func titleCase(name string) string {
	if name == "" {
		return name
	}
	return strings.ToUpper(name[:1]) + name[1:]
}
