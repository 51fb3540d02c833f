package cli

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/HVLhenrik/russian-tutor/internal/grammar"
)

// examTableCases are the cases required in the written exam: everything
// except the nominative, which is given, and the instrumental, which is
// not part of the curriculum.
var examTableCases = []grammar.Case{
	grammar.CaseAccusative,
	grammar.CaseGenitive,
	grammar.CaseDative,
	grammar.CasePrepositional,
}

type fillInBlank struct {
	word        string
	explanation string
}

type fillInTemplate struct {
	text   string
	blanks []fillInBlank
}

// fillInTemplates are contextualized sentences requiring the correct
// case of nouns, adjectives and pronouns given in parentheses.
var fillInTemplates = []fillInTemplate{
	{
		text: "(Я) _____ зовут Иван. (Я) _____ 25 _____ (год).",
		blanks: []fillInBlank{
			{word: "меня", explanation: "Accusative of я (меня зовут pattern)"},
			{word: "мне", explanation: "Dative of я (age construction)"},
			{word: "лет", explanation: "Genitive plural of год (after 5+)"},
		},
	},
	{
		text: "Живу в _____ (Москва). Работаю в _____ (большой офис).",
		blanks: []fillInBlank{
			{word: "Москве", explanation: "Prepositional case after в (location)"},
			{word: "большом офисе", explanation: "Prepositional case of adjective + noun"},
		},
	},
	{
		text: "У _____ (я) есть _____ (хороший друг). Я _____ (он) часто звоню.",
		blanks: []fillInBlank{
			{word: "меня", explanation: "Genitive after у (possession)"},
			{word: "хороший друг", explanation: "Nominative (subject)"},
			{word: "ему", explanation: "Dative after звонить (to call someone)"},
		},
	},
	{
		text: "Моя мама любит _____ (вкусная еда). Она готовит для _____ (мы).",
		blanks: []fillInBlank{
			{word: "вкусную еду", explanation: "Accusative of adjective + noun (direct object)"},
			{word: "нас", explanation: "Genitive after для (for us)"},
		},
	},
	{
		text: "Мы живём в _____ (новый дом). Около _____ (наш дом) есть парк.",
		blanks: []fillInBlank{
			{word: "новом доме", explanation: "Prepositional case (location)"},
			{word: "нашего дома", explanation: "Genitive after около (near)"},
		},
	},
	{
		text: "Студенты идут к _____ (университет). Они говорят о _____ (экзамен).",
		blanks: []fillInBlank{
			{word: "университету", explanation: "Dative after к (toward)"},
			{word: "экзамене", explanation: "Prepositional after о (about)"},
		},
	},
	{
		text: "Я вижу _____ (красивая девушка). Хочу дать _____ (она) цветы.",
		blanks: []fillInBlank{
			{word: "красивую девушку", explanation: "Accusative (direct object - animate)"},
			{word: "ей", explanation: "Dative of она (to her)"},
		},
	},
}

// ExamPrepCLI runs a written-exam style practice: a full declension
// table for a random adjective-noun pair, then a fill-in-the-blank
// exercise. Scores are shown per exercise and are not tracked.
type ExamPrepCLI struct {
	*InteractiveCLI
	tables *grammar.Tables
	rng    *rand.Rand
	done   bool
}

func NewExamPrepCLI(tables *grammar.Tables, rng *rand.Rand) *ExamPrepCLI {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &ExamPrepCLI{
		InteractiveCLI: newInteractiveCLI(),
		tables:         tables,
		rng:            rng,
	}
}

func (r *ExamPrepCLI) Session(ctx context.Context) error {
	if r.done {
		return errEnd
	}
	r.done = true

	fmt.Fprintf(r.stdoutWriter, "\n%s\n", strings.Repeat("=", 80))
	fmt.Fprintln(r.stdoutWriter, "FULL EXAM PRACTICE SESSION")
	fmt.Fprintf(r.stdoutWriter, "%s\n", strings.Repeat("=", 80))
	fmt.Fprintln(r.stdoutWriter, "\nThis practice session mimics the written exam format:")
	fmt.Fprintln(r.stdoutWriter, "  1. Full declension tables")
	fmt.Fprintln(r.stdoutWriter, "  2. Fill-in-the-blank contextual exercises")

	correct1, total1, err := r.declensionTableExercise()
	if err != nil {
		return err
	}

	correct2, total2, err := r.fillInBlankExercise()
	if err != nil {
		return err
	}

	totalCorrect := correct1 + correct2
	totalQuestions := total1 + total2
	percentage := 0.0
	if totalQuestions > 0 {
		percentage = float64(totalCorrect) / float64(totalQuestions) * 100
	}

	fmt.Fprintf(r.stdoutWriter, "\n%s\n", strings.Repeat("=", 80))
	fmt.Fprintln(r.stdoutWriter, "FINAL EXAM PRACTICE RESULTS")
	fmt.Fprintf(r.stdoutWriter, "%s\n", strings.Repeat("=", 80))
	fmt.Fprintf(r.stdoutWriter, "\nExercise 1 (Declension Table): %d/%d\n", correct1, total1)
	fmt.Fprintf(r.stdoutWriter, "Exercise 2 (Fill in Blanks): %d/%d\n", correct2, total2)
	fmt.Fprintf(r.stdoutWriter, "\nTotal Score: %d/%d (%.1f%%)\n", totalCorrect, totalQuestions, percentage)

	switch {
	case percentage >= 90:
		fmt.Fprintln(r.stdoutWriter, "\n🌟 Excellent! You're well prepared for the exam!")
	case percentage >= 75:
		fmt.Fprintln(r.stdoutWriter, "\n👍 Good work! A bit more practice and you'll be ready!")
	case percentage >= 60:
		fmt.Fprintln(r.stdoutWriter, "\n📚 Keep practicing! Focus on the areas you struggled with.")
	default:
		fmt.Fprintln(r.stdoutWriter, "\n💪 You need more practice. Review the declension rules and try again!")
	}
	return nil
}

// declensionTableExercise asks for the declined adjective and noun of a
// random pair in every exam case. The nominative row is given.
func (r *ExamPrepCLI) declensionTableExercise() (int, int, error) {
	phrases := r.tables.PairPhrases("")
	if len(phrases) == 0 {
		return 0, 0, fmt.Errorf("no word pairs available")
	}
	phrase := phrases[r.rng.Intn(len(phrases))]
	pair, _ := r.tables.Pair(phrase)

	adjective, ok := r.tables.Adjective(pair.Adjective)
	if !ok {
		return 0, 0, fmt.Errorf("no declension table for adjective %q", pair.Adjective)
	}
	noun, ok := r.tables.Noun(pair.Noun)
	if !ok {
		return 0, 0, fmt.Errorf("no declension table for noun %q", pair.Noun)
	}
	adjectiveForms := adjective.Forms(pair.Gender)

	fmt.Fprintf(r.stdoutWriter, "\n%s\n", strings.Repeat("=", 80))
	fmt.Fprintln(r.stdoutWriter, "EXAM EXERCISE 1: FULL DECLENSION TABLE")
	fmt.Fprintf(r.stdoutWriter, "%s\n", strings.Repeat("=", 80))
	fmt.Fprintln(r.stdoutWriter, "\nDecline the following adjective and noun in accusative, genitive, dative, and prepositional.")

	adjectiveNom := adjectiveForms[grammar.CaseNominative]
	nounNom := noun.Singular[grammar.CaseNominative]
	fmt.Fprintf(r.stdoutWriter, "\n%s: %s %s (%s)\n",
		strings.ToUpper(string(pair.Gender)), adjectiveNom, nounNom, pair.Translation)
	fmt.Fprintf(r.stdoutWriter, "\n%-20s %-30s %s\n", "Case", "Adjective", "Noun")
	fmt.Fprintf(r.stdoutWriter, "%s\n", strings.Repeat("-", 80))
	fmt.Fprintf(r.stdoutWriter, "%-20s %-30s %s\n", "Nominative", adjectiveNom, nounNom)

	type caseAnswer struct {
		grammarCase   grammar.Case
		userAdjective string
		userNoun      string
	}
	userAnswers := make([]caseAnswer, 0, len(examTableCases))
	for _, grammarCase := range examTableCases {
		fmt.Fprintf(r.stdoutWriter, "\n%s:\n", strings.ToUpper(string(grammarCase)))
		userAdjective, err := r.readLine("  Adjective: ")
		if err != nil {
			return 0, 0, err
		}
		userNoun, err := r.readLine("  Noun: ")
		if err != nil {
			return 0, 0, err
		}
		userAnswers = append(userAnswers, caseAnswer{
			grammarCase:   grammarCase,
			userAdjective: userAdjective,
			userNoun:      userNoun,
		})
	}

	fmt.Fprintf(r.stdoutWriter, "\n%s\n", strings.Repeat("=", 80))
	fmt.Fprintln(r.stdoutWriter, "RESULTS:")
	fmt.Fprintf(r.stdoutWriter, "%s\n", strings.Repeat("=", 80))
	fmt.Fprintf(r.stdoutWriter, "\n%-20s %-35s %s\n", "Case", "Your Answer", "Correct Answer")
	fmt.Fprintf(r.stdoutWriter, "%s\n", strings.Repeat("-", 80))

	correctCount := 0
	totalCount := len(userAnswers) * 2
	for _, answer := range userAnswers {
		correctAdjective := adjectiveForms[answer.grammarCase]
		correctNoun := noun.Singular[answer.grammarCase]

		adjectiveCorrect := checkAnswer(answer.userAdjective, correctAdjective)
		nounCorrect := checkAnswer(answer.userNoun, correctNoun)
		if adjectiveCorrect {
			correctCount++
		}
		if nounCorrect {
			correctCount++
		}

		fmt.Fprintf(r.stdoutWriter, "%-20s %-35s %s\n",
			strings.ToUpper(string(answer.grammarCase)),
			fmt.Sprintf("%s %s | %s %s", statusMark(adjectiveCorrect), answer.userAdjective, statusMark(nounCorrect), answer.userNoun),
			fmt.Sprintf("%s %s", correctAdjective, correctNoun),
		)
	}

	percentage := float64(correctCount) / float64(totalCount) * 100
	fmt.Fprintf(r.stdoutWriter, "\nScore: %d/%d (%.1f%%)\n", correctCount, totalCount, percentage)
	return correctCount, totalCount, nil
}

// fillInBlankExercise presents a random template sentence and evaluates
// each blank with an explanation.
func (r *ExamPrepCLI) fillInBlankExercise() (int, int, error) {
	exercise := fillInTemplates[r.rng.Intn(len(fillInTemplates))]

	fmt.Fprintf(r.stdoutWriter, "\n%s\n", strings.Repeat("=", 80))
	fmt.Fprintln(r.stdoutWriter, "EXAM EXERCISE 2: FILL IN THE BLANKS")
	fmt.Fprintf(r.stdoutWriter, "%s\n", strings.Repeat("=", 80))
	fmt.Fprintln(r.stdoutWriter, "\nInsert the correct form of the nouns, adjectives and pronouns in parentheses.")
	fmt.Fprintf(r.stdoutWriter, "\n%s\n\n", exercise.text)

	userAnswers := make([]string, 0, len(exercise.blanks))
	for i := range exercise.blanks {
		answer, err := r.readLine(fmt.Sprintf("Blank %d: ", i+1))
		if err != nil {
			return 0, 0, err
		}
		userAnswers = append(userAnswers, answer)
	}

	fmt.Fprintf(r.stdoutWriter, "\n%s\n", strings.Repeat("=", 80))
	fmt.Fprintln(r.stdoutWriter, "RESULTS:")
	fmt.Fprintf(r.stdoutWriter, "%s\n\n", strings.Repeat("=", 80))

	correctCount := 0
	for i, blank := range exercise.blanks {
		isCorrect := checkAnswer(userAnswers[i], blank.word)
		if isCorrect {
			correctCount++
			fmt.Fprintf(r.stdoutWriter, "Blank %d: ✅ %s\n", i+1, userAnswers[i])
		} else {
			fmt.Fprintf(r.stdoutWriter, "Blank %d: ❌ %s\n", i+1, userAnswers[i])
			fmt.Fprintf(r.stdoutWriter, "         Correct: %s\n", blank.word)
		}
		fmt.Fprintf(r.stdoutWriter, "         Explanation: %s\n\n", blank.explanation)
	}

	percentage := float64(correctCount) / float64(len(exercise.blanks)) * 100
	fmt.Fprintf(r.stdoutWriter, "Score: %d/%d (%.1f%%)\n", correctCount, len(exercise.blanks), percentage)
	return correctCount, len(exercise.blanks), nil
}

func statusMark(isCorrect bool) string {
	if isCorrect {
		return "✅"
	}
	return "❌"
}
