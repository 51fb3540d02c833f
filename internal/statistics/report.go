package statistics

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/HVLhenrik/russian-tutor/internal/progress"
)

// RenderMarkdownReport builds a progress report as markdown: overall
// totals, a monthly breakdown and the words that need review.
func RenderMarkdownReport(result Result, records map[string]progress.Record, now time.Time) string {
	var b strings.Builder

	b.WriteString("# Russian Practice Report\n\n")
	fmt.Fprintf(&b, "Generated: %s\n\n", now.Format("2006-01-02"))

	b.WriteString("## Overall\n\n")
	fmt.Fprintf(&b, "| Metric | Value |\n|---|---|\n")
	fmt.Fprintf(&b, "| Words practiced | %d |\n", result.Overall.WordsPracticed)
	fmt.Fprintf(&b, "| Total attempts | %d |\n", result.Overall.TotalAttempts)
	fmt.Fprintf(&b, "| Correct answers | %d |\n", result.Overall.TotalCorrect)
	fmt.Fprintf(&b, "| Incorrect answers | %d |\n", result.Overall.TotalIncorrect)
	fmt.Fprintf(&b, "| Accuracy | %.1f%% |\n", result.Overall.Accuracy)
	fmt.Fprintf(&b, "| Mastered words | %d |\n", result.Overall.MasteredWords)
	fmt.Fprintf(&b, "| Needs review | %d |\n", result.Overall.NeedsReview)
	fmt.Fprintf(&b, "| Sessions | %d |\n\n", result.Overall.TotalSessions)

	if len(result.Periods) > 0 {
		b.WriteString("## Monthly breakdown\n\n")
		b.WriteString("| Month | Sessions | Attempts | Correct | Accuracy | New words |\n")
		b.WriteString("|---|---|---|---|---|---|\n")
		for _, period := range result.Periods {
			fmt.Fprintf(&b, "| %s | %d | %d | %d | %.1f%% | %d |\n",
				period.Period, period.Sessions, period.Attempts, period.Correct, period.Accuracy, period.NewWords)
		}
		b.WriteString("\n")
	}

	needsReview := wordsNeedingReview(records)
	if len(needsReview) > 0 {
		b.WriteString("## Words to review\n\n")
		b.WriteString("| Word | Translation | Accuracy | Level |\n")
		b.WriteString("|---|---|---|---|\n")
		for _, record := range needsReview {
			fmt.Fprintf(&b, "| %s | %s | %.0f%% | %d |\n",
				record.Russian, record.Translation, record.Accuracy()*100, record.MasteryLevel)
		}
		b.WriteString("\n")
	}

	return b.String()
}

// wordsNeedingReview returns practiced words with low accuracy or low
// mastery, hardest first.
func wordsNeedingReview(records map[string]progress.Record) []progress.Record {
	var needsReview []progress.Record
	for _, record := range records {
		if record.TotalAttempts == 0 {
			continue
		}
		if record.Accuracy() < 0.7 || record.MasteryLevel < 2 {
			needsReview = append(needsReview, record)
		}
	}

	sort.Slice(needsReview, func(i, j int) bool {
		if needsReview[i].Accuracy() != needsReview[j].Accuracy() {
			return needsReview[i].Accuracy() < needsReview[j].Accuracy()
		}
		return needsReview[i].Russian < needsReview[j].Russian
	})
	return needsReview
}

// WriteReport writes the markdown report into the reports directory and
// returns the file path.
func WriteReport(directory string, markdown string, now time.Time) (string, error) {
	if err := os.MkdirAll(directory, 0o755); err != nil {
		return "", fmt.Errorf("os.MkdirAll(%s) > %w", directory, err)
	}

	path := filepath.Join(directory, fmt.Sprintf("practice-report-%s.md", now.Format("2006-01-02")))
	if err := os.WriteFile(path, []byte(markdown), 0o644); err != nil {
		return "", fmt.Errorf("os.WriteFile(%s) > %w", path, err)
	}
	return path, nil
}
