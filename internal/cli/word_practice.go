package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/HVLhenrik/russian-tutor/internal/progress"
	"github.com/HVLhenrik/russian-tutor/internal/vocabulary"
)

// WordPracticeCLI manages the interactive vocabulary practice session.
// Questions show the translation and the user answers with the Russian
// word, which is always the tracking key regardless of language mode.
type WordPracticeCLI struct {
	*InteractiveCLI
	ledger    *progress.Ledger
	words     []vocabulary.Word
	norwegian bool

	sessionID        int
	index            int
	correctCount     int
	incorrectAnswers []incorrectAnswer
}

type incorrectAnswer struct {
	russian     string
	translation string
	userAnswer  string
}

// NewWordPracticeCLI selects the session words from the pool and starts a
// new tracked session.
func NewWordPracticeCLI(
	ledger *progress.Ledger,
	selector *progress.Selector,
	pool []vocabulary.Word,
	wordsPerSession int,
	norwegian bool,
) (*WordPracticeCLI, error) {
	words := selector.Select(pool, wordsPerSession)
	if len(words) == 0 {
		return nil, fmt.Errorf("no words available for practice")
	}

	sessionID, err := ledger.StartSession()
	if err != nil {
		return nil, fmt.Errorf("ledger.StartSession() > %w", err)
	}

	cli := &WordPracticeCLI{
		InteractiveCLI: newInteractiveCLI(),
		ledger:         ledger,
		words:          words,
		norwegian:      norwegian,
		sessionID:      sessionID,
	}
	return cli, nil
}

// WordCount returns the number of words selected for this session.
func (r *WordPracticeCLI) WordCount() int {
	return len(r.words)
}

func (r *WordPracticeCLI) Session(ctx context.Context) error {
	if r.index >= len(r.words) {
		if err := r.finish(false); err != nil {
			return err
		}
		return errEnd
	}

	word := r.words[r.index]
	r.index++

	translation := word.Translation(r.norwegian)
	if err := r.ledger.AddWordToSession(r.sessionID, word.Russian); err != nil {
		return fmt.Errorf("ledger.AddWordToSession() > %w", err)
	}

	r.displayQuestion(word, translation)

	userAnswer, err := r.readLine("\n   Your answer: ")
	if err != nil {
		return err
	}
	if isQuit(userAnswer) {
		fmt.Fprintln(r.stdoutWriter, "\n⚠️  Session aborted by user")
		// The word the quit was typed for was never answered.
		r.index--
		if err := r.finish(true); err != nil {
			return err
		}
		return errEnd
	}

	// The answer is always checked against the Russian word.
	isCorrect := checkAnswer(userAnswer, word.Russian)
	if err := r.ledger.RecordAttempt(word.Russian, translation, userAnswer, isCorrect); err != nil {
		return fmt.Errorf("ledger.RecordAttempt() > %w", err)
	}

	r.displayFeedback(isCorrect, word.Russian)
	if isCorrect {
		r.correctCount++
		return nil
	}

	r.incorrectAnswers = append(r.incorrectAnswers, incorrectAnswer{
		russian:     word.Russian,
		translation: translation,
		userAnswer:  userAnswer,
	})

	aborted, err := r.practiceCorrectAnswer(word.Russian)
	if err != nil {
		return err
	}
	if aborted {
		fmt.Fprintln(r.stdoutWriter, "\n⚠️  Session aborted by user")
		if err := r.finish(true); err != nil {
			return err
		}
		return errEnd
	}
	return nil
}

func (r *WordPracticeCLI) displayQuestion(word vocabulary.Word, translation string) {
	fmt.Fprintf(r.stdoutWriter, "\n%s\n", strings.Repeat("─", 60))
	fmt.Fprintf(r.stdoutWriter, "Word %d/%d\n", r.index, len(r.words))

	stats := r.ledger.WordStats(word.Russian)
	if stats.TotalAttempts > 0 {
		fmt.Fprintf(r.stdoutWriter, "Your history: %d/%d correct (%.0f%%) | %s\n",
			stats.Correct,
			stats.TotalAttempts,
			stats.Accuracy()*100,
			strings.Repeat("⭐", stats.MasteryLevel),
		)
	}
	fmt.Fprintf(r.stdoutWriter, "%s\n", strings.Repeat("─", 60))

	fmt.Fprintf(r.stdoutWriter, "\n📖 Translate to Russian: %s\n", r.bold.Sprintf("%s", translation))
	if r.norwegian {
		if strings.HasPrefix(translation, "å") {
			fmt.Fprintln(r.stdoutWriter, "   (Verb)")
		}
	} else if word.POS != "" {
		fmt.Fprintf(r.stdoutWriter, "   Part of speech: %s\n", word.POS)
	}
}

func (r *WordPracticeCLI) finish(aborted bool) error {
	wordsPracticed := r.index
	if !aborted {
		wordsPracticed = len(r.words)
	}

	incorrectCount := len(r.incorrectAnswers)
	if err := r.ledger.EndSession(r.sessionID, r.correctCount, incorrectCount); err != nil {
		return fmt.Errorf("ledger.EndSession() > %w", err)
	}

	r.displaySessionResults(wordsPracticed, aborted)
	return nil
}

func (r *WordPracticeCLI) displaySessionResults(wordsPracticed int, aborted bool) {
	fmt.Fprintf(r.stdoutWriter, "\n%s\n", strings.Repeat("=", 60))
	if aborted {
		fmt.Fprintln(r.stdoutWriter, "  📊 SESSION ABORTED (Partial Results)")
	} else {
		fmt.Fprintln(r.stdoutWriter, "  📊 SESSION COMPLETE")
	}
	fmt.Fprintf(r.stdoutWriter, "%s\n", strings.Repeat("=", 60))

	percentage := 0.0
	if wordsPracticed > 0 {
		percentage = float64(r.correctCount) / float64(wordsPracticed) * 100
	}
	fmt.Fprintf(r.stdoutWriter, "\n✅ Correct: %d/%d\n", r.correctCount, wordsPracticed)
	fmt.Fprintf(r.stdoutWriter, "❌ Incorrect: %d/%d\n", len(r.incorrectAnswers), wordsPracticed)
	fmt.Fprintf(r.stdoutWriter, "📈 Accuracy: %.1f%%\n", percentage)

	if aborted {
		fmt.Fprintln(r.stdoutWriter, "\n💡 Come back and finish your practice session when you're ready!")
	} else {
		switch {
		case percentage >= 90:
			fmt.Fprintln(r.stdoutWriter, "\n🌟 Excellent work! You're mastering Russian vocabulary!")
		case percentage >= 75:
			fmt.Fprintln(r.stdoutWriter, "\n👍 Good job! Keep practicing!")
		case percentage >= 60:
			fmt.Fprintln(r.stdoutWriter, "\n📚 Not bad! Review the words you missed.")
		default:
			fmt.Fprintln(r.stdoutWriter, "\n💪 Keep studying! Practice makes perfect!")
		}
	}

	if len(r.incorrectAnswers) > 0 {
		fmt.Fprintf(r.stdoutWriter, "\n%s\n", strings.Repeat("─", 60))
		fmt.Fprintln(r.stdoutWriter, "Words to review:")
		fmt.Fprintf(r.stdoutWriter, "%s\n", strings.Repeat("─", 60))
		for _, item := range r.incorrectAnswers {
			fmt.Fprintf(r.stdoutWriter, "\n  %s\n", item.translation)
			fmt.Fprintf(r.stdoutWriter, "  ❌ Your answer: %s\n", item.userAnswer)
			fmt.Fprintf(r.stdoutWriter, "  ✅ Correct: %s\n", item.russian)
		}
	}

	stats := r.ledger.Statistics()
	fmt.Fprintf(r.stdoutWriter, "\n%s\n", strings.Repeat("=", 60))
	fmt.Fprintln(r.stdoutWriter, "  📈 OVERALL STATISTICS")
	fmt.Fprintf(r.stdoutWriter, "%s\n", strings.Repeat("=", 60))
	fmt.Fprintf(r.stdoutWriter, "\nTotal words practiced: %d\n", stats.WordsPracticed)
	fmt.Fprintf(r.stdoutWriter, "Total attempts: %d\n", stats.TotalAttempts)
	fmt.Fprintf(r.stdoutWriter, "Overall accuracy: %.1f%%\n", stats.Accuracy)
	fmt.Fprintf(r.stdoutWriter, "Mastered words: %d\n", stats.MasteredWords)
	fmt.Fprintf(r.stdoutWriter, "Total sessions: %d\n", stats.TotalSessions)
}
