package cli

import (
	"bytes"
	"context"
	"math/rand"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HVLhenrik/russian-tutor/internal/grammar"
)

func loadTables(t *testing.T) *grammar.Tables {
	t.Helper()
	tables, err := grammar.Load()
	require.NoError(t, err)
	return tables
}

func TestNewNounDrill(t *testing.T) {
	tables := loadTables(t)

	t.Run("filter by declension", func(t *testing.T) {
		drill, err := NewNounDrill(tables, grammar.DeclensionThird, false, rand.New(rand.NewSource(1)))
		require.NoError(t, err)
		assert.Equal(t, 4, drill.ItemCount())
		for _, item := range drill.items {
			assert.Equal(t, "noun", item.kind)
			assert.Len(t, item.prompts, 5)
		}
	})

	t.Run("plural forms", func(t *testing.T) {
		drill, err := NewNounDrill(tables, "", true, rand.New(rand.NewSource(1)))
		require.NoError(t, err)
		for _, prompt := range drill.items[0].prompts {
			assert.Contains(t, prompt.label, "(plural)")
		}
	})

	t.Run("unknown declension", func(t *testing.T) {
		_, err := NewNounDrill(tables, grammar.Declension("fourth"), false, nil)
		require.Error(t, err)
	})
}

func TestNewAdjectiveDrill(t *testing.T) {
	tables := loadTables(t)

	drill, err := NewAdjectiveDrill(tables, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	assert.Equal(t, len(tables.Adjectives), drill.ItemCount())
	for _, item := range drill.items {
		for _, prompt := range item.prompts {
			assert.Contains(t, prompt.label, "(masculine)")
		}
	}
}

func TestNewPronounDrill(t *testing.T) {
	tables := loadTables(t)

	drill, err := NewPronounDrill(tables, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	assert.Equal(t, 7, drill.ItemCount())
	// The nominative is the question itself, not a prompt.
	for _, item := range drill.items {
		assert.Len(t, item.prompts, 4)
	}
}

func TestNewPairDrill(t *testing.T) {
	tables := loadTables(t)

	t.Run("filter by gender", func(t *testing.T) {
		drill, err := NewPairDrill(tables, grammar.GenderFeminine, "", false, rand.New(rand.NewSource(1)))
		require.NoError(t, err)
		assert.Equal(t, 1, drill.ItemCount())
		assert.Equal(t, "красивая книга", drill.items[0].title)
		// Agreement answers combine the declined adjective and noun.
		assert.Equal(t, "красивая книга", drill.items[0].prompts[0].answer)
		assert.Equal(t, "красивую книгу", drill.items[0].prompts[1].answer)
	})

	t.Run("quick mode limits cases", func(t *testing.T) {
		drill, err := NewPairDrill(tables, "", "", true, rand.New(rand.NewSource(1)))
		require.NoError(t, err)
		assert.LessOrEqual(t, drill.ItemCount(), 5)
		for _, item := range drill.items {
			assert.Len(t, item.prompts, 3)
		}
	})

	t.Run("unknown category", func(t *testing.T) {
		_, err := NewPairDrill(tables, "", "sports", false, nil)
		require.Error(t, err)
	})
}

func TestNewVerbDrill(t *testing.T) {
	tables := loadTables(t)

	drill, err := NewVerbDrill(tables, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	assert.Equal(t, len(tables.Verbs), drill.ItemCount())
	// Six present persons plus four past forms.
	for _, item := range drill.items {
		assert.Len(t, item.prompts, 10)
	}
}

func TestDeclensionDrillCLI_Session(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	newDrill := func(input string, items []drillItem) (*DeclensionDrillCLI, *bytes.Buffer) {
		base, output := newTestCLI(input)
		return &DeclensionDrillCLI{
			InteractiveCLI: base,
			items:          items,
		}, output
	}

	items := []drillItem{
		{
			kind:    "noun",
			title:   "дом",
			details: []string{"Gender: masculine"},
			prompts: []drillPrompt{
				{label: "Accusative", answer: "дом"},
				{label: "Genitive", answer: "дома"},
			},
		},
	}

	t.Run("all correct", func(t *testing.T) {
		drill, output := newDrill("дом\nдома\n", items)

		runUntilEnd(t, drill)

		got := output.String()
		assert.Contains(t, got, "Noun: дом")
		assert.Contains(t, got, "Perfect! You got all forms of 'дом' correct!")
		assert.Contains(t, got, "PRACTICE SESSION COMPLETE")
		assert.Contains(t, got, "Score: 2/2 (100.0%)")
		assert.Equal(t, 2, drill.correctCount)
	})

	t.Run("incorrect answer goes through practice loop", func(t *testing.T) {
		drill, output := newDrill("дом\nстола\nдома\n", items)

		runUntilEnd(t, drill)

		got := output.String()
		assert.Contains(t, got, "Incorrect! The correct answer is: дома")
		assert.Contains(t, got, "Score: 1/2 (50.0%)")
	})

	t.Run("quit aborts with partial score", func(t *testing.T) {
		drill, output := newDrill("дом\nquit\n", items)

		err := drill.Session(context.Background())
		assert.ErrorIs(t, err, errEnd)

		got := output.String()
		assert.Contains(t, got, "Practice session aborted by user")
		assert.Contains(t, got, "PRACTICE SESSION INCOMPLETE")
		assert.Contains(t, got, "Score: 1/1")
	})

	t.Run("decline next item", func(t *testing.T) {
		twoItems := append([]drillItem{}, items...)
		twoItems = append(twoItems, drillItem{
			kind:    "noun",
			title:   "книга",
			prompts: []drillPrompt{{label: "Accusative", answer: "книгу"}},
		})

		drill, output := newDrill("дом\nдома\nn\n", twoItems)

		err := drill.Session(context.Background())
		assert.ErrorIs(t, err, errEnd)
		assert.Contains(t, output.String(), "Continue with next noun? (y/n): ")
		assert.Contains(t, output.String(), "PRACTICE SESSION COMPLETE")
	})
}
