package main

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetupLogger(t *testing.T) {
	tests := []struct {
		name      string
		debugMode bool
		wantLevel slog.Level
	}{
		{
			name:      "debug mode enabled",
			debugMode: true,
			wantLevel: slog.LevelDebug,
		},
		{
			name:      "debug mode disabled",
			debugMode: false,
			wantLevel: slog.LevelInfo,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupLogger(tt.debugMode)
			logger := slog.Default()
			assert.NotNil(t, logger)
			assert.Equal(t, tt.wantLevel <= slog.LevelDebug, logger.Enabled(nil, slog.LevelDebug))
		})
	}
}

func TestDeclensionFlag_Set(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    declensionFlag
		wantErr bool
	}{
		{
			name:  "valid declension",
			value: "third",
			want:  "third",
		},
		{
			name:    "invalid declension",
			value:   "fourth",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var declension declensionFlag
			err := declension.Set(tt.value)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "invalid declension")
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, declension)
		})
	}
}

func TestDeclensionFlag_Type(t *testing.T) {
	var declension declensionFlag
	assert.Equal(t, "declension", declension.Type())
}

func TestNewGrammarCommand(t *testing.T) {
	cmd := newGrammarCommand()

	assert.Equal(t, "grammar", cmd.Use)
	assert.True(t, cmd.HasSubCommands())

	subcommands := make([]string, 0, len(cmd.Commands()))
	for _, subcommand := range cmd.Commands() {
		subcommands = append(subcommands, subcommand.Name())
	}
	assert.ElementsMatch(t, []string{"nouns", "adjectives", "pronouns", "pairs", "verbs", "rules"}, subcommands)
}

func TestNewPracticeCommand(t *testing.T) {
	cmd := newPracticeCommand()

	assert.Equal(t, "practice", cmd.Use)
	assert.NotNil(t, cmd.RunE)
	assert.NotNil(t, cmd.Flags().Lookup("norwegian"))
	assert.NotNil(t, cmd.Flags().Lookup("pos"))
	assert.NotNil(t, cmd.Flags().Lookup("words"))
}

func TestNewVocabCommand(t *testing.T) {
	cmd := newVocabCommand()

	assert.Equal(t, "vocab", cmd.Use)
	assert.True(t, cmd.HasSubCommands())
}

func TestNewStatsCommand(t *testing.T) {
	cmd := newStatsCommand()

	assert.Equal(t, "stats", cmd.Use)
	assert.NotNil(t, cmd.RunE)
	assert.True(t, cmd.HasSubCommands())
}

func TestNewExamPrepCommand(t *testing.T) {
	cmd := newExamPrepCommand()

	assert.Equal(t, "exam-prep", cmd.Use)
	assert.NotNil(t, cmd.RunE)
}
