package progress

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLedger(t *testing.T) *Ledger {
	t.Helper()

	store := NewFileStore(filepath.Join(t.TempDir(), "word_practice.json"))
	ledger, err := NewLedger(store)
	require.NoError(t, err)
	return ledger
}

func TestLedgerRecordAttempt(t *testing.T) {
	t.Run("first attempt creates the record", func(t *testing.T) {
		ledger := newTestLedger(t)

		require.NoError(t, ledger.RecordAttempt("дом", "house", "house", true))

		record := ledger.WordStats("дом")
		assert.Equal(t, "дом", record.Russian)
		assert.Equal(t, "house", record.Translation)
		assert.Equal(t, 1, record.TotalAttempts)
		assert.Equal(t, 1, record.Correct)
		assert.Equal(t, 0, record.Incorrect)
		assert.Equal(t, 1, record.Streak)
		assert.NotNil(t, record.LastPracticed)
		assert.Len(t, record.History, 1)
	})

	t.Run("counts always balance", func(t *testing.T) {
		ledger := newTestLedger(t)

		outcomes := []bool{true, false, true, true, false, false, true}
		for _, correct := range outcomes {
			require.NoError(t, ledger.RecordAttempt("книга", "book", "x", correct))

			record := ledger.WordStats("книга")
			assert.Equal(t, record.TotalAttempts, record.Correct+record.Incorrect)
		}
	})

	t.Run("streak is the current unbroken run", func(t *testing.T) {
		ledger := newTestLedger(t)

		for i := 0; i < 3; i++ {
			require.NoError(t, ledger.RecordAttempt("стол", "table", "table", true))
		}
		assert.Equal(t, 3, ledger.WordStats("стол").Streak)

		require.NoError(t, ledger.RecordAttempt("стол", "table", "chair", false))
		assert.Equal(t, -1, ledger.WordStats("стол").Streak)

		require.NoError(t, ledger.RecordAttempt("стол", "table", "chair", false))
		assert.Equal(t, -2, ledger.WordStats("стол").Streak)

		// A correct answer after a negative streak starts over at 1.
		require.NoError(t, ledger.RecordAttempt("стол", "table", "table", true))
		assert.Equal(t, 1, ledger.WordStats("стол").Streak)
	})

	t.Run("history is capped at twenty and drops oldest first", func(t *testing.T) {
		ledger := newTestLedger(t)

		for i := 0; i < 25; i++ {
			answer := "right"
			if i == 5 {
				answer = "oldest-surviving"
			}
			require.NoError(t, ledger.RecordAttempt("город", "city", answer, true))
		}

		record := ledger.WordStats("город")
		require.Len(t, record.History, 20)
		assert.Equal(t, "oldest-surviving", record.History[0].UserAnswer)
	})

	t.Run("a fresh attempt clears the invalid timestamp flag", func(t *testing.T) {
		ledger := newTestLedger(t)
		ledger.data.Words["дом"] = &Record{
			Russian:              "дом",
			TotalAttempts:        3,
			Correct:              3,
			LastPracticedInvalid: true,
			History:              []Attempt{},
		}

		require.NoError(t, ledger.RecordAttempt("дом", "house", "дом", true))

		record := ledger.WordStats("дом")
		assert.False(t, record.LastPracticedInvalid)
		require.NotNil(t, record.LastPracticed)
	})

	t.Run("mastery level is recomputed after every attempt", func(t *testing.T) {
		ledger := newTestLedger(t)

		require.NoError(t, ledger.RecordAttempt("друг", "friend", "friend", true))
		// One attempt is not enough experience for a confident estimate.
		assert.Equal(t, 1, ledger.WordStats("друг").MasteryLevel)

		for i := 0; i < 9; i++ {
			require.NoError(t, ledger.RecordAttempt("друг", "friend", "friend", true))
		}
		assert.Equal(t, 5, ledger.WordStats("друг").MasteryLevel)
	})

	t.Run("every attempt is flushed to the file", func(t *testing.T) {
		dir := t.TempDir()
		store := NewFileStore(filepath.Join(dir, "word_practice.json"))
		ledger, err := NewLedger(store)
		require.NoError(t, err)

		require.NoError(t, ledger.RecordAttempt("дом", "house", "hus", false))

		reloaded, err := NewLedger(NewFileStore(store.Path()))
		require.NoError(t, err)
		record := reloaded.WordStats("дом")
		assert.Equal(t, 1, record.TotalAttempts)
		assert.Equal(t, -1, record.Streak)
		assert.Equal(t, "hus", record.History[0].UserAnswer)
	})
}

func TestLedgerWordStats(t *testing.T) {
	ledger := newTestLedger(t)

	record := ledger.WordStats("неизвестный")
	assert.Equal(t, "неизвестный", record.Russian)
	assert.Equal(t, 0, record.TotalAttempts)
	assert.Equal(t, 0, record.MasteryLevel)
	assert.Nil(t, record.LastPracticed)
}

func TestLedgerSessions(t *testing.T) {
	t.Run("ids are sequential from zero", func(t *testing.T) {
		ledger := newTestLedger(t)

		first, err := ledger.StartSession()
		require.NoError(t, err)
		second, err := ledger.StartSession()
		require.NoError(t, err)

		assert.Equal(t, 0, first)
		assert.Equal(t, 1, second)
	})

	t.Run("adding the same word twice is a no-op", func(t *testing.T) {
		ledger := newTestLedger(t)

		id, err := ledger.StartSession()
		require.NoError(t, err)

		require.NoError(t, ledger.AddWordToSession(id, "дом"))
		require.NoError(t, ledger.AddWordToSession(id, "дом"))
		require.NoError(t, ledger.AddWordToSession(id, "книга"))

		sessions := ledger.Sessions()
		require.Len(t, sessions, 1)
		assert.Equal(t, []string{"дом", "книга"}, sessions[0].WordsPracticed)
	})

	t.Run("out of range session ids are ignored", func(t *testing.T) {
		ledger := newTestLedger(t)

		assert.NoError(t, ledger.AddWordToSession(5, "дом"))
		assert.NoError(t, ledger.EndSession(5, 1, 2))
		assert.NoError(t, ledger.AddWordToSession(-1, "дом"))
	})

	t.Run("ending a session freezes its counts", func(t *testing.T) {
		ledger := newTestLedger(t)

		id, err := ledger.StartSession()
		require.NoError(t, err)

		require.NoError(t, ledger.EndSession(id, 7, 3))
		require.NoError(t, ledger.EndSession(id, 100, 100))

		sessions := ledger.Sessions()
		require.NotNil(t, sessions[0].EndTime)
		assert.Equal(t, 7, sessions[0].CorrectCount)
		assert.Equal(t, 3, sessions[0].IncorrectCount)
	})

	t.Run("history returns most recently started first", func(t *testing.T) {
		ledger := newTestLedger(t)
		current := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
		ledger.now = func() time.Time {
			current = current.Add(time.Hour)
			return current
		}

		for i := 0; i < 4; i++ {
			_, err := ledger.StartSession()
			require.NoError(t, err)
		}

		history := ledger.SessionHistory(2)
		require.Len(t, history, 2)
		assert.Equal(t, 3, history[0].ID)
		assert.Equal(t, 2, history[1].ID)
	})
}

func TestLedgerStatistics(t *testing.T) {
	ledger := newTestLedger(t)

	for i := 0; i < 10; i++ {
		require.NoError(t, ledger.RecordAttempt("дом", "house", "house", true))
	}
	require.NoError(t, ledger.RecordAttempt("книга", "book", "pen", false))

	id, err := ledger.StartSession()
	require.NoError(t, err)
	require.NoError(t, ledger.EndSession(id, 10, 1))

	stats := ledger.Statistics()
	assert.Equal(t, 2, stats.WordsPracticed)
	assert.Equal(t, 11, stats.TotalAttempts)
	assert.Equal(t, 10, stats.TotalCorrect)
	assert.Equal(t, 1, stats.TotalIncorrect)
	assert.Equal(t, 1, stats.MasteredWords)
	assert.Equal(t, 1, stats.NeedsReview)
	assert.Equal(t, 1, stats.TotalSessions)
	assert.InDelta(t, 90.9, stats.Accuracy, 0.1)
}

func TestLedgerReset(t *testing.T) {
	ledger := newTestLedger(t)

	require.NoError(t, ledger.RecordAttempt("дом", "house", "house", true))
	_, err := ledger.StartSession()
	require.NoError(t, err)

	require.NoError(t, ledger.Reset())

	assert.Empty(t, ledger.SessionHistory(10))
	assert.Equal(t, 0, ledger.WordStats("дом").TotalAttempts)
	assert.Equal(t, 0, ledger.Statistics().TotalSessions)
}
