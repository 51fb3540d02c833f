package progress

import (
	"fmt"
	"sort"
	"time"
)

// Ledger is the in-memory view of the progress file. It is the single writer
// and reader: every mutation recomputes derived fields and flushes the whole
// structure through the store before returning.
type Ledger struct {
	store *FileStore
	data  *Data
	now   func() time.Time
}

// NewLedger loads (or initializes) the progress data from the store.
func NewLedger(store *FileStore) (*Ledger, error) {
	data, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("store.Load() > %w", err)
	}
	return &Ledger{
		store: store,
		data:  data,
		now:   time.Now,
	}, nil
}

// RecordAttempt records one answer for a word, creating its record on first
// sight. Counts, streak, history and timestamps are updated, the mastery
// level is recomputed, and the progress file is flushed before returning.
func (l *Ledger) RecordAttempt(russian, translation, userAnswer string, correct bool) error {
	now := l.now()

	record, ok := l.data.Words[russian]
	if !ok {
		record = &Record{
			Russian:     russian,
			Translation: translation,
			FirstSeen:   now,
			History:     []Attempt{},
		}
		l.data.Words[russian] = record
	}

	record.TotalAttempts++
	if correct {
		record.Correct++
		// The streak is the current unbroken run: a correct answer after a
		// negative streak starts over at 1 instead of continuing the count.
		record.Streak = max(0, record.Streak) + 1
	} else {
		record.Incorrect++
		record.Streak = min(0, record.Streak) - 1
	}

	record.LastPracticed = &now
	record.LastPracticedInvalid = false
	record.History = append(record.History, Attempt{
		Date:       now,
		Correct:    correct,
		UserAnswer: userAnswer,
	})
	if len(record.History) > maxHistoryLength {
		record.History = record.History[len(record.History)-maxHistoryLength:]
	}

	record.MasteryLevel = MasteryLevel(*record, now)

	if err := l.store.Save(l.data); err != nil {
		return fmt.Errorf("store.Save() > %w", err)
	}
	return nil
}

// WordStats returns the record for a word, or a zero-state record if the word
// has never been practiced.
func (l *Ledger) WordStats(russian string) Record {
	if record, ok := l.data.Words[russian]; ok {
		return *record
	}
	return Record{Russian: russian}
}

// StartSession opens a new practice session and returns its id.
func (l *Ledger) StartSession() (int, error) {
	id := len(l.data.Sessions)
	l.data.Sessions = append(l.data.Sessions, Session{
		ID:             id,
		StartTime:      l.now(),
		WordsPracticed: []string{},
	})

	if err := l.store.Save(l.data); err != nil {
		return 0, fmt.Errorf("store.Save() > %w", err)
	}
	return id, nil
}

// AddWordToSession appends a word to a session's practiced list. Adding the
// same word twice is a no-op, as is an out-of-range session id.
func (l *Ledger) AddWordToSession(sessionID int, russian string) error {
	if sessionID < 0 || sessionID >= len(l.data.Sessions) {
		return nil
	}

	session := &l.data.Sessions[sessionID]
	for _, word := range session.WordsPracticed {
		if word == russian {
			return nil
		}
	}
	session.WordsPracticed = append(session.WordsPracticed, russian)

	if err := l.store.Save(l.data); err != nil {
		return fmt.Errorf("store.Save() > %w", err)
	}
	return nil
}

// EndSession seals a session with its final counts. Ending an unknown or
// already-ended session is a no-op because aborted sessions are expected.
func (l *Ledger) EndSession(sessionID, correctCount, incorrectCount int) error {
	if sessionID < 0 || sessionID >= len(l.data.Sessions) {
		return nil
	}
	session := &l.data.Sessions[sessionID]
	if session.EndTime != nil {
		return nil
	}

	now := l.now()
	session.EndTime = &now
	session.CorrectCount = correctCount
	session.IncorrectCount = incorrectCount

	if err := l.store.Save(l.data); err != nil {
		return fmt.Errorf("store.Save() > %w", err)
	}
	return nil
}

// SessionHistory returns up to limit sessions, most recently started first.
func (l *Ledger) SessionHistory(limit int) []Session {
	sessions := make([]Session, len(l.data.Sessions))
	copy(sessions, l.data.Sessions)
	sort.SliceStable(sessions, func(i, j int) bool {
		return sessions[i].StartTime.After(sessions[j].StartTime)
	})

	if limit >= 0 && limit < len(sessions) {
		sessions = sessions[:limit]
	}
	return sessions
}

// Sessions returns all sessions in insertion order.
func (l *Ledger) Sessions() []Session {
	sessions := make([]Session, len(l.data.Sessions))
	copy(sessions, l.data.Sessions)
	return sessions
}

// Records returns a copy of every word record keyed by the Russian word.
func (l *Ledger) Records() map[string]Record {
	records := make(map[string]Record, len(l.data.Words))
	for russian, record := range l.data.Words {
		records[russian] = *record
	}
	return records
}

// Reset destroys all recorded progress and starts from an empty structure.
func (l *Ledger) Reset() error {
	data, err := l.store.Reset()
	if err != nil {
		return fmt.Errorf("store.Reset() > %w", err)
	}
	l.data = data
	return nil
}

// Statistics summarizes overall practice performance.
type Statistics struct {
	WordsPracticed int
	TotalAttempts  int
	TotalCorrect   int
	TotalIncorrect int
	Accuracy       float64
	MasteredWords  int
	NeedsReview    int
	TotalSessions  int
}

// Statistics aggregates across all practiced words. Words that were selected
// but never answered do not count.
func (l *Ledger) Statistics() Statistics {
	stats := Statistics{
		TotalSessions: len(l.data.Sessions),
	}

	for _, record := range l.data.Words {
		if record.TotalAttempts == 0 {
			continue
		}

		stats.WordsPracticed++
		stats.TotalAttempts += record.TotalAttempts
		stats.TotalCorrect += record.Correct
		stats.TotalIncorrect += record.Incorrect

		accuracy := record.Accuracy()
		if record.MasteryLevel >= 4 && accuracy > 0.8 {
			stats.MasteredWords++
		}
		if accuracy < 0.7 || record.MasteryLevel < 2 {
			stats.NeedsReview++
		}
	}

	if stats.TotalAttempts > 0 {
		stats.Accuracy = float64(stats.TotalCorrect) / float64(stats.TotalAttempts) * 100
	}
	return stats
}
