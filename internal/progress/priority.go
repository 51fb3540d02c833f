package progress

import "time"

// NeverPracticedPriority is assigned to words without any recorded attempt.
// It exceeds every priority a practiced word can reach through adjustments.
const NeverPracticedPriority = 100

// optimalReviewIntervals holds the spaced repetition review interval in hours
// per mastery level. Higher mastery earns a longer interval.
var optimalReviewIntervals = map[int]float64{
	0: 4,
	1: 12,
	2: 24,
	3: 72,
	4: 168,
	5: 336,
}

// Priority scores how urgently a word should be practiced. The value is only
// meaningful relative to other words: new words rank first, then words with
// a fresh mistake, then words whose spaced repetition window has elapsed.
// Words drilled moments ago are suppressed so a session does not repeat them.
func Priority(record Record, now time.Time) float64 {
	if record.TotalAttempts == 0 {
		return NeverPracticedPriority
	}

	priority := 50.0

	switch accuracy := record.Accuracy(); {
	case accuracy < 0.5:
		priority += 40
	case accuracy < 0.7:
		priority += 25
	case accuracy < 0.85:
		priority += 10
	default:
		priority -= 15
	}

	priority += float64(MaxMasteryLevel-record.MasteryLevel) * 8

	// A streak of exactly zero means the last answer broke a run, i.e. a
	// mistake just happened.
	if record.Streak == 0 {
		priority += 30
	}

	if record.LastPracticed != nil {
		hoursAgo := now.Sub(*record.LastPracticed).Hours()
		optimal, ok := optimalReviewIntervals[record.MasteryLevel]
		if !ok {
			optimal = 24
		}

		switch {
		case hoursAgo >= optimal*1.2:
			priority += 25
		case hoursAgo >= optimal:
			priority += 15
		case hoursAgo >= optimal*0.8:
			priority += 5
		case hoursAgo < optimal*0.3:
			priority -= 30
		}
	}

	if priority < 0 {
		return 0
	}
	return priority
}
