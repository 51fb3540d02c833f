package progress

import (
	"testing"
	"time"
)

func TestMasteryLevel(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	daysAgo := func(days int) *time.Time {
		at := now.AddDate(0, 0, -days)
		return &at
	}

	tests := []struct {
		name     string
		record   Record
		expected int
	}{
		{
			name:     "never practiced",
			record:   Record{},
			expected: 0,
		},
		{
			name: "single correct attempt stays low on experience",
			record: Record{
				TotalAttempts: 1,
				Correct:       1,
				Streak:        1,
				LastPracticed: daysAgo(0),
			},
			// (5.0 + 0.2) * 0.4 * 1.0 = 2.08
			expected: 1,
		},
		{
			name: "true mastery requires accuracy, streak and experience",
			record: Record{
				TotalAttempts: 10,
				Correct:       9,
				Incorrect:     1,
				Streak:        5,
				LastPracticed: daysAgo(0),
			},
			// (5.0 + 1.0) * 1.0 * 1.0 = 6.0, all gates met
			expected: 5,
		},
		{
			name: "perfect short run capped by small sample",
			record: Record{
				TotalAttempts: 4,
				Correct:       4,
				Streak:        4,
				LastPracticed: daysAgo(0),
			},
			// (5.0 + 0.5) * 0.6 * 1.0 = 3.3
			expected: 2,
		},
		{
			name: "mastery decays without recent reinforcement",
			record: Record{
				TotalAttempts: 10,
				Correct:       9,
				Incorrect:     1,
				Streak:        5,
				LastPracticed: daysAgo(20),
			},
			// (5.0 + 1.0) * 1.0 * 0.7 = 4.2
			expected: 3,
		},
		{
			name: "struggling word",
			record: Record{
				TotalAttempts: 10,
				Correct:       1,
				Incorrect:     9,
				Streak:        -5,
				LastPracticed: daysAgo(0),
			},
			// (0.5 - 1.0) * 1.0 * 1.0 = -0.5
			expected: 0,
		},
		{
			name: "recent mistakes pull a decent word down",
			record: Record{
				TotalAttempts: 10,
				Correct:       6,
				Incorrect:     4,
				Streak:        -2,
				LastPracticed: daysAgo(0),
			},
			// (3.0 - 0.3) * 1.0 * 1.0 = 2.7
			expected: 2,
		},
		{
			name: "never practiced timestamp carries no decay",
			record: Record{
				TotalAttempts: 10,
				Correct:       8,
				Incorrect:     2,
				Streak:        3,
			},
			// (4.0 + 0.5) * 1.0 * 1.0 = 4.5
			expected: 4,
		},
		{
			name: "unparsable practice timestamp gets the mild penalty",
			record: Record{
				TotalAttempts:        10,
				Correct:              9,
				Incorrect:            1,
				Streak:               5,
				LastPracticedInvalid: true,
			},
			// (5.0 + 1.0) * 1.0 * 0.8 = 4.8, kept below full mastery
			expected: 4,
		},
		{
			name: "very old practice bottoms out at 0.6",
			record: Record{
				TotalAttempts: 10,
				Correct:       10,
				Streak:        10,
				LastPracticed: daysAgo(90),
			},
			// (5.0 + 1.0) * 1.0 * 0.6 = 3.6
			expected: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MasteryLevel(tt.record, now); got != tt.expected {
				t.Errorf("MasteryLevel() = %d, want %d", got, tt.expected)
			}
		})
	}
}

func TestMasteryLevelMonotonicInAccuracy(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	last := now.Add(-time.Hour)

	previous := 0
	for correct := 0; correct <= 10; correct++ {
		record := Record{
			TotalAttempts: 10,
			Correct:       correct,
			Incorrect:     10 - correct,
			LastPracticed: &last,
		}
		level := MasteryLevel(record, now)
		if level < previous {
			t.Fatalf("mastery level decreased from %d to %d when correct went to %d", previous, level, correct)
		}
		previous = level
	}
}
