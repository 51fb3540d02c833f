package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/HVLhenrik/russian-tutor/internal/cli"
	"github.com/HVLhenrik/russian-tutor/internal/config"
	"github.com/HVLhenrik/russian-tutor/internal/progress"
	"github.com/HVLhenrik/russian-tutor/internal/vocabulary"
)

// buildPracticePool queries the vocabulary subset to practice from.
func buildPracticePool(ctx context.Context, repository vocabulary.Repository, norwegianMode bool, posPrefix string) ([]vocabulary.Word, error) {
	switch {
	case norwegianMode:
		return repository.FindNorwegianVerbs(ctx)
	case posPrefix != "":
		return repository.FindByPOS(ctx, posPrefix)
	default:
		return repository.FindAll(ctx)
	}
}

// csvFallbackPool reads the configured CSV sources directly when the
// vocabulary database has not been imported yet.
func csvFallbackPool(cfg *config.Config, norwegianMode bool) ([]vocabulary.Word, error) {
	var pool []vocabulary.Word
	if cfg.Vocabulary.SMARToolCSV != "" && !norwegianMode {
		words, err := vocabulary.NewSMARToolReader(cfg.Vocabulary.SMARToolCSV).Read()
		if err != nil {
			return nil, err
		}
		pool = append(pool, words...)
	}
	if cfg.Vocabulary.NorwegianCSV != "" {
		words, err := vocabulary.NewNorwegianReader(cfg.Vocabulary.NorwegianCSV).Read()
		if err != nil {
			return nil, err
		}
		for _, word := range words {
			if norwegianMode && !word.IsNorwegianVerb() {
				continue
			}
			pool = append(pool, word)
		}
	}
	return pool, nil
}

func newPracticeCommand() *cobra.Command {
	var (
		norwegianMode bool
		posPrefix     string
		wordCount     int
	)

	command := &cobra.Command{
		Use:   "practice",
		Short: "Practice vocabulary words picked by your past performance",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			repository, err := vocabulary.OpenSQLiteRepository(cfg.Vocabulary.DatabasePath)
			if err != nil {
				return err
			}
			defer func() {
				_ = repository.Close()
			}()

			ctx := cmd.Context()
			pool, err := buildPracticePool(ctx, repository, norwegianMode, posPrefix)
			if err != nil {
				return err
			}
			if len(pool) == 0 && posPrefix == "" {
				pool, err = csvFallbackPool(cfg, norwegianMode)
				if err != nil {
					return err
				}
			}
			if len(pool) == 0 {
				fmt.Println("Nothing to practice. Import vocabulary with 'russian-tutor vocab import' first.")
				return nil
			}

			ledger, err := openLedger(cfg)
			if err != nil {
				return err
			}

			if wordCount <= 0 {
				wordCount = cfg.Practice.WordsPerSession
			}
			practiceCLI, err := cli.NewWordPracticeCLI(
				ledger,
				progress.NewSelector(ledger, nil),
				pool,
				wordCount,
				norwegianMode,
			)
			if err != nil {
				return err
			}

			fmt.Printf("Starting practice session with %d words\n\n", practiceCLI.WordCount())
			return practiceCLI.Run(ctx, practiceCLI)
		},
	}

	flags := command.Flags()
	flags.BoolVar(&norwegianMode, "norwegian", false, "Practice Norwegian verb translations")
	flags.StringVar(&posPrefix, "pos", "", "Only practice words with this part of speech (e.g. noun, verb)")
	flags.IntVar(&wordCount, "words", 0, "Words per session (defaults to the configured value)")

	return command
}
