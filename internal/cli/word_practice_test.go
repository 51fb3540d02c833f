package cli

import (
	"bytes"
	"context"
	"errors"
	"math/rand"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HVLhenrik/russian-tutor/internal/progress"
	"github.com/HVLhenrik/russian-tutor/internal/vocabulary"
)

func newTestLedger(t *testing.T) *progress.Ledger {
	t.Helper()
	store := progress.NewFileStore(filepath.Join(t.TempDir(), "word_practice_data.json"))
	ledger, err := progress.NewLedger(store)
	require.NoError(t, err)
	return ledger
}

func newWordPracticeCLI(t *testing.T, ledger *progress.Ledger, words []vocabulary.Word, input string) (*WordPracticeCLI, *bytes.Buffer) {
	t.Helper()
	sessionID, err := ledger.StartSession()
	require.NoError(t, err)

	base, output := newTestCLI(input)
	return &WordPracticeCLI{
		InteractiveCLI: base,
		ledger:         ledger,
		words:          words,
		sessionID:      sessionID,
	}, output
}

func runUntilEnd(t *testing.T, session Session) {
	t.Helper()
	for i := 0; i < 100; i++ {
		err := session.Session(context.Background())
		if errors.Is(err, errEnd) {
			return
		}
		require.NoError(t, err)
	}
	t.Fatal("session did not end")
}

func TestWordPracticeCLI_Session(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	words := []vocabulary.Word{
		{Russian: "дом", English: "house", POS: "N"},
		{Russian: "говорить", English: "speak, talk", POS: "V"},
	}

	t.Run("all correct answers", func(t *testing.T) {
		ledger := newTestLedger(t)
		cli, output := newWordPracticeCLI(t, ledger, words, "дом\nговорить\n")

		runUntilEnd(t, cli)

		got := output.String()
		assert.Contains(t, got, "Word 1/2")
		assert.Contains(t, got, "Word 2/2")
		assert.Contains(t, got, "SESSION COMPLETE")
		assert.Contains(t, got, "✅ Correct: 2/2")
		assert.Contains(t, got, "Accuracy: 100.0%")
		assert.Contains(t, got, "Excellent work!")

		record := ledger.WordStats("дом")
		assert.Equal(t, 1, record.TotalAttempts)
		assert.Equal(t, 1, record.Correct)

		sessions := ledger.Sessions()
		require.Len(t, sessions, 1)
		assert.NotNil(t, sessions[0].EndTime)
		assert.Equal(t, 2, sessions[0].CorrectCount)
		assert.Equal(t, []string{"дом", "говорить"}, sessions[0].WordsPracticed)
	})

	t.Run("incorrect answer requires writing the correct one", func(t *testing.T) {
		ledger := newTestLedger(t)
		cli, output := newWordPracticeCLI(t, ledger, words[:1], "стол\nдом\n")

		runUntilEnd(t, cli)

		got := output.String()
		assert.Contains(t, got, "Incorrect! The correct answer is: дом")
		assert.Contains(t, got, "Please write the correct answer to continue: дом")
		assert.Contains(t, got, "Words to review:")
		assert.Contains(t, got, "❌ Your answer: стол")

		record := ledger.WordStats("дом")
		assert.Equal(t, 1, record.TotalAttempts)
		assert.Equal(t, 1, record.Incorrect)
		assert.Equal(t, -1, record.Streak)
	})

	t.Run("comma separated translation accepts either direction key", func(t *testing.T) {
		ledger := newTestLedger(t)
		cli, output := newWordPracticeCLI(t, ledger, words[1:], "говорить\n")

		runUntilEnd(t, cli)
		assert.Contains(t, output.String(), "✅ Correct: 1/1")
	})

	t.Run("quit aborts with partial results", func(t *testing.T) {
		ledger := newTestLedger(t)
		cli, output := newWordPracticeCLI(t, ledger, words, "дом\nquit\n")

		runUntilEnd(t, cli)

		got := output.String()
		assert.Contains(t, got, "Session aborted by user")
		assert.Contains(t, got, "SESSION ABORTED (Partial Results)")
		// The word the quit was typed for never got an answer, so the
		// partial results count only the first word.
		assert.Contains(t, got, "✅ Correct: 1/1")
		assert.Contains(t, got, "📈 Accuracy: 100.0%")

		// The aborted session is still closed with partial counts.
		sessions := ledger.Sessions()
		require.Len(t, sessions, 1)
		assert.NotNil(t, sessions[0].EndTime)
		assert.Equal(t, 1, sessions[0].CorrectCount)
	})

	t.Run("quit during the write loop still counts the answered word", func(t *testing.T) {
		ledger := newTestLedger(t)
		cli, output := newWordPracticeCLI(t, ledger, words, "стол\nquit\n")

		runUntilEnd(t, cli)

		got := output.String()
		assert.Contains(t, got, "SESSION ABORTED (Partial Results)")
		assert.Contains(t, got, "✅ Correct: 0/1")
		assert.Contains(t, got, "❌ Incorrect: 1/1")

		record := ledger.WordStats("дом")
		assert.Equal(t, 1, record.Incorrect)
	})

	t.Run("history line appears for practiced words", func(t *testing.T) {
		ledger := newTestLedger(t)
		require.NoError(t, ledger.RecordAttempt("дом", "house", "дом", true))

		cli, output := newWordPracticeCLI(t, ledger, words[:1], "дом\n")
		runUntilEnd(t, cli)

		assert.Contains(t, output.String(), "Your history: 1/1 correct (100%)")
	})

	t.Run("part of speech shown in english mode", func(t *testing.T) {
		ledger := newTestLedger(t)
		cli, output := newWordPracticeCLI(t, ledger, words[:1], "дом\n")
		runUntilEnd(t, cli)

		assert.Contains(t, output.String(), "Part of speech: N")
	})
}

func TestWordPracticeCLI_NorwegianMode(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	words := []vocabulary.Word{
		{Russian: "работать", English: "work", Norwegian: "å jobbe", POS: "V"},
	}

	ledger := newTestLedger(t)
	cli, output := newWordPracticeCLI(t, ledger, words, "работать\n")
	cli.norwegian = true

	runUntilEnd(t, cli)

	got := output.String()
	assert.Contains(t, got, "Translate to Russian: å jobbe")
	assert.Contains(t, got, "(Verb)")

	// Tracking still keys on the Russian word.
	record := ledger.WordStats("работать")
	assert.Equal(t, 1, record.Correct)
	assert.Equal(t, "å jobbe", record.Translation)
}

func TestNewWordPracticeCLI(t *testing.T) {
	ledger := newTestLedger(t)
	selector := progress.NewSelector(ledger, rand.New(rand.NewSource(1)))

	pool := []vocabulary.Word{
		{Russian: "дом", English: "house"},
		{Russian: "книга", English: "book"},
		{Russian: "окно", English: "window"},
	}

	cli, err := NewWordPracticeCLI(ledger, selector, pool, 2, false)
	require.NoError(t, err)
	assert.Equal(t, 2, cli.WordCount())
	require.Len(t, ledger.Sessions(), 1)

	t.Run("empty pool", func(t *testing.T) {
		_, err := NewWordPracticeCLI(ledger, selector, nil, 2, false)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no words available")
	})
}
