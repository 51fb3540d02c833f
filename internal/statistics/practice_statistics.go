// Package statistics aggregates the practice ledger into per-period
// summaries and renders progress reports.
package statistics

import (
	"fmt"
	"sort"

	"github.com/HVLhenrik/russian-tutor/internal/progress"
)

// PeriodStatistics holds practice statistics for one month.
type PeriodStatistics struct {
	Period    string // "2025-01"
	Sessions  int
	Attempts  int
	Correct   int
	Incorrect int
	Accuracy  float64 // percent
	NewWords  int     // words first seen during this period
}

// Result holds the per-period breakdown together with overall totals.
type Result struct {
	Periods []PeriodStatistics
	Overall progress.Statistics
}

type periodData struct {
	sessions  int
	correct   int
	incorrect int
	newWords  int
}

// Calculate aggregates sessions and word records into monthly statistics.
// It accepts optional year and month filters (0 means no filter).
func Calculate(
	records map[string]progress.Record,
	sessions []progress.Session,
	overall progress.Statistics,
	year, month int,
) Result {
	stats := make(map[string]*periodData)

	for _, session := range sessions {
		logYear := session.StartTime.Year()
		logMonth := int(session.StartTime.Month())
		if !matchesFilter(logYear, logMonth, year, month) {
			continue
		}

		period := fmt.Sprintf("%d-%02d", logYear, logMonth)
		ensurePeriodExists(stats, period)
		stats[period].sessions++
		stats[period].correct += session.CorrectCount
		stats[period].incorrect += session.IncorrectCount
	}

	for _, record := range records {
		if record.FirstSeen.IsZero() || record.TotalAttempts == 0 {
			continue
		}
		logYear := record.FirstSeen.Year()
		logMonth := int(record.FirstSeen.Month())
		if !matchesFilter(logYear, logMonth, year, month) {
			continue
		}

		period := fmt.Sprintf("%d-%02d", logYear, logMonth)
		ensurePeriodExists(stats, period)
		stats[period].newWords++
	}

	return buildResult(stats, overall)
}

func matchesFilter(logYear, logMonth, filterYear, filterMonth int) bool {
	if filterYear != 0 && logYear != filterYear {
		return false
	}
	if filterMonth != 0 && logMonth != filterMonth {
		return false
	}
	return true
}

func ensurePeriodExists(stats map[string]*periodData, period string) {
	if _, ok := stats[period]; !ok {
		stats[period] = &periodData{}
	}
}

func buildResult(stats map[string]*periodData, overall progress.Statistics) Result {
	periods := make([]PeriodStatistics, 0, len(stats))
	for period, data := range stats {
		attempts := data.correct + data.incorrect
		accuracy := 0.0
		if attempts > 0 {
			accuracy = float64(data.correct) / float64(attempts) * 100
		}
		periods = append(periods, PeriodStatistics{
			Period:    period,
			Sessions:  data.sessions,
			Attempts:  attempts,
			Correct:   data.correct,
			Incorrect: data.incorrect,
			Accuracy:  accuracy,
			NewWords:  data.newWords,
		})
	}

	sort.Slice(periods, func(i, j int) bool {
		return periods[i].Period < periods[j].Period
	})

	return Result{
		Periods: periods,
		Overall: overall,
	}
}
