package progress

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/avast/retry-go"
)

// FileStore persists the progress Data as a single JSON document.
// Every mutation is flushed in full: an interrupted session loses at most the
// answer in flight, never prior progress. Concurrent multi-process access is
// unsupported, the last writer wins.
type FileStore struct {
	path string
}

// NewFileStore creates a store backed by the given file path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the backing file path.
func (s *FileStore) Path() string {
	return s.path
}

// Load reads the progress file and migrates older record shapes in place.
// A missing or unreadable file is never fatal: the store starts empty.
func (s *FileStore) Load() (*Data, error) {
	content, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			slog.Warn("could not read progress file, starting with empty progress", "path", s.path, "error", err)
		}
		return NewData(), nil
	}

	var file dataFile
	if err := json.Unmarshal(content, &file); err != nil {
		slog.Warn("could not parse progress file, starting with empty progress", "path", s.path, "error", err)
		return NewData(), nil
	}

	return file.migrate(time.Now()), nil
}

// Save writes the full progress structure to the file. Transient write
// failures are retried because a lost attempt cannot be recovered.
func (s *FileStore) Save(data *Data) error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("os.MkdirAll(%s) > %w", dir, err)
		}
	}

	content, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("json.MarshalIndent() > %w", err)
	}

	if err := retry.Do(
		func() error {
			return os.WriteFile(s.path, content, 0o644)
		},
		retry.Attempts(3),
		retry.Delay(10*time.Millisecond),
	); err != nil {
		return fmt.Errorf("os.WriteFile(%s) > %w", s.path, err)
	}
	return nil
}

// Reset deletes the progress file and returns a fresh empty structure.
// This is irreversible; confirmation prompting belongs to the caller.
func (s *FileStore) Reset() (*Data, error) {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("os.Remove(%s) > %w", s.path, err)
	}

	data := NewData()
	if err := s.Save(data); err != nil {
		return nil, fmt.Errorf("store.Save() > %w", err)
	}
	return data, nil
}

// dataFile mirrors the persisted JSON document with every newer field
// optional, so files written by older versions still load. The migration to
// the typed Data happens once here; nothing downstream reads defensively.
type dataFile struct {
	Words    map[string]recordFile `json:"words"`
	Sessions []sessionFile         `json:"sessions"`
}

type recordFile struct {
	Russian       string        `json:"russian"`
	Translation   string        `json:"translation"`
	English       string        `json:"english"`
	TotalAttempts int           `json:"total_attempts"`
	Correct       int           `json:"correct"`
	Incorrect     int           `json:"incorrect"`
	Streak        *int          `json:"streak"`
	MasteryLevel  *int          `json:"mastery_level"`
	FirstSeen     *string       `json:"first_seen"`
	LastPracticed *string       `json:"last_practiced"`
	History       []attemptFile `json:"attempts_history"`
}

type attemptFile struct {
	Date       string `json:"date"`
	Correct    bool   `json:"correct"`
	UserAnswer string `json:"user_answer"`
}

type sessionFile struct {
	ID             int      `json:"id"`
	StartTime      string   `json:"start_time"`
	EndTime        *string  `json:"end_time"`
	WordsPracticed []string `json:"words_practiced"`
	CorrectCount   int      `json:"correct_count"`
	IncorrectCount int      `json:"incorrect_count"`
}

func (f dataFile) migrate(now time.Time) *Data {
	data := NewData()

	for key, record := range f.Words {
		data.Words[key] = record.migrate(key, now)
	}
	for _, session := range f.Sessions {
		data.Sessions = append(data.Sessions, session.migrate())
	}

	return data
}

func (f recordFile) migrate(key string, now time.Time) *Record {
	record := Record{
		Russian:       f.Russian,
		Translation:   f.Translation,
		TotalAttempts: f.TotalAttempts,
		Correct:       f.Correct,
		Incorrect:     f.Incorrect,
		History:       []Attempt{},
	}

	if record.Russian == "" {
		record.Russian = key
	}
	if record.Translation == "" {
		// Older files stored the gloss under "english" only.
		record.Translation = f.English
	}
	if f.Streak != nil {
		record.Streak = *f.Streak
	}
	if f.MasteryLevel != nil {
		record.MasteryLevel = *f.MasteryLevel
	}

	record.LastPracticed = parseOptionalTime(f.LastPracticed, key, "last_practiced")
	if record.LastPracticed == nil && f.LastPracticed != nil && *f.LastPracticed != "" {
		record.LastPracticedInvalid = true
	}
	if firstSeen := parseOptionalTime(f.FirstSeen, key, "first_seen"); firstSeen != nil {
		record.FirstSeen = *firstSeen
	} else if record.LastPracticed != nil {
		record.FirstSeen = *record.LastPracticed
	} else {
		record.FirstSeen = now
	}

	for _, attempt := range f.History {
		date := parseOptionalTime(&attempt.Date, key, "attempts_history.date")
		if date == nil {
			continue
		}
		record.History = append(record.History, Attempt{
			Date:       *date,
			Correct:    attempt.Correct,
			UserAnswer: attempt.UserAnswer,
		})
	}
	if len(record.History) > maxHistoryLength {
		record.History = record.History[len(record.History)-maxHistoryLength:]
	}

	return &record
}

func (f sessionFile) migrate() Session {
	session := Session{
		ID:             f.ID,
		WordsPracticed: f.WordsPracticed,
		CorrectCount:   f.CorrectCount,
		IncorrectCount: f.IncorrectCount,
	}
	if session.WordsPracticed == nil {
		session.WordsPracticed = []string{}
	}
	if startTime := parseOptionalTime(&f.StartTime, "", "start_time"); startTime != nil {
		session.StartTime = *startTime
	}
	session.EndTime = parseOptionalTime(f.EndTime, "", "end_time")
	return session
}

// parseOptionalTime parses an ISO-8601 timestamp, tolerating both RFC 3339
// and timestamps without an offset. An unparsable value is treated as absent
// rather than failing the load.
func parseOptionalTime(value *string, key, field string) *time.Time {
	if value == nil || *value == "" {
		return nil
	}
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05.999999999", "2006-01-02T15:04:05"} {
		if parsed, err := time.Parse(layout, *value); err == nil {
			return &parsed
		}
	}
	slog.Warn("ignoring unparsable timestamp in progress file", "word", key, "field", field, "value", *value)
	return nil
}
