package progress

import (
	"math/rand"
	"sort"
	"time"

	"github.com/HVLhenrik/russian-tutor/internal/vocabulary"
)

// Selector builds the word batch for one practice session by combining the
// candidate pool with the ledger's priority scores. The randomness source is
// injected so tests can pin the final shuffle.
type Selector struct {
	ledger *Ledger
	rng    *rand.Rand
}

// NewSelector creates a selector over the given ledger.
func NewSelector(ledger *Ledger, rng *rand.Rand) *Selector {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Selector{ledger: ledger, rng: rng}
}

type scoredWord struct {
	word     vocabulary.Word
	priority float64
}

// Select picks up to targetCount words from the pool, mixing roughly half new
// words with half review words, each taken highest priority first. The
// returned batch is shuffled so the presentation order does not reveal the
// priority ranking. An empty pool yields an empty batch.
func (s *Selector) Select(pool []vocabulary.Word, targetCount int) []vocabulary.Word {
	if len(pool) == 0 || targetCount <= 0 {
		return []vocabulary.Word{}
	}
	if targetCount > len(pool) {
		targetCount = len(pool)
	}

	now := s.ledger.now()
	var unseen, seen []scoredWord
	for _, word := range pool {
		record := s.ledger.WordStats(word.Russian)
		scored := scoredWord{word: word, priority: Priority(record, now)}
		if record.TotalAttempts == 0 {
			unseen = append(unseen, scored)
		} else {
			seen = append(seen, scored)
		}
	}
	sortByPriority(unseen)
	sortByPriority(seen)

	targetNew := targetCount / 2
	targetReview := targetCount - targetNew

	newCount := min(len(unseen), targetNew)
	reviewCount := min(len(seen), targetReview)

	selected := make([]vocabulary.Word, 0, targetCount)
	for _, scored := range unseen[:newCount] {
		selected = append(selected, scored.word)
	}
	for _, scored := range seen[:reviewCount] {
		selected = append(selected, scored.word)
	}

	// When one bucket runs short, the remaining slots go to whatever is left,
	// highest priority first regardless of bucket.
	if remaining := targetCount - len(selected); remaining > 0 {
		leftover := append(append([]scoredWord{}, unseen[newCount:]...), seen[reviewCount:]...)
		sortByPriority(leftover)
		for _, scored := range leftover[:min(remaining, len(leftover))] {
			selected = append(selected, scored.word)
		}
	}

	s.rng.Shuffle(len(selected), func(i, j int) {
		selected[i], selected[j] = selected[j], selected[i]
	})
	return selected
}

func sortByPriority(words []scoredWord) {
	sort.SliceStable(words, func(i, j int) bool {
		return words[i].priority > words[j].priority
	})
}
