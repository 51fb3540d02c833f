// Package progress tracks per-word practice performance and decides what to
// practice next. It owns the durable progress file, the mastery estimation and
// priority scoring math, and the session selection used by the practice CLIs.
package progress

import (
	"time"
)

// maxHistoryLength bounds the per-word attempt history, oldest entries drop first.
const maxHistoryLength = 20

// Attempt is a single recorded answer for a word.
type Attempt struct {
	Date       time.Time `json:"date"`
	Correct    bool      `json:"correct"`
	UserAnswer string    `json:"user_answer"`
}

// Record holds the practice statistics for a single Russian word.
// The Russian lemma is the identity: the same word practiced from different
// vocabulary lists or directions shares one record.
type Record struct {
	Russian       string     `json:"russian"`
	Translation   string     `json:"translation"`
	TotalAttempts int        `json:"total_attempts"`
	Correct       int        `json:"correct"`
	Incorrect     int        `json:"incorrect"`
	Streak        int        `json:"streak"`
	MasteryLevel  int        `json:"mastery_level"`
	FirstSeen     time.Time  `json:"first_seen"`
	LastPracticed *time.Time `json:"last_practiced"`
	History       []Attempt  `json:"attempts_history"`

	// LastPracticedInvalid marks a record whose stored timestamp could
	// not be parsed. Distinct from never practiced: the mastery estimate
	// applies a mild recency penalty instead of none.
	LastPracticedInvalid bool `json:"-"`
}

// Accuracy returns the fraction of correct attempts in [0, 1],
// or 0 for a never-practiced record.
func (r Record) Accuracy() float64 {
	if r.TotalAttempts == 0 {
		return 0
	}
	return float64(r.Correct) / float64(r.TotalAttempts)
}

// Session is the telemetry record of one practice session.
// Sessions are append-only: once EndTime is set the counts are frozen.
type Session struct {
	ID             int        `json:"id"`
	StartTime      time.Time  `json:"start_time"`
	EndTime        *time.Time `json:"end_time"`
	WordsPracticed []string   `json:"words_practiced"`
	CorrectCount   int        `json:"correct_count"`
	IncorrectCount int        `json:"incorrect_count"`
}

// Data is the full persisted progress structure.
type Data struct {
	Words    map[string]*Record `json:"words"`
	Sessions []Session          `json:"sessions"`
}

// NewData returns an empty progress structure.
func NewData() *Data {
	return &Data{
		Words:    map[string]*Record{},
		Sessions: []Session{},
	}
}
