package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/HVLhenrik/russian-tutor/internal/vocabulary"
)

func newVocabCommand() *cobra.Command {
	vocabCommand := &cobra.Command{
		Use:   "vocab",
		Short: "Manage the vocabulary database",
	}

	vocabCommand.AddCommand(
		newVocabImportCommand(),
		newVocabCountCommand(),
	)

	return vocabCommand
}

func newVocabImportCommand() *cobra.Command {
	var (
		smartoolCSV  string
		norwegianCSV string
	)

	command := &cobra.Command{
		Use:   "import",
		Short: "Import vocabulary from SMARTool and Norwegian CSV files",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			if smartoolCSV == "" {
				smartoolCSV = cfg.Vocabulary.SMARToolCSV
			}
			if norwegianCSV == "" {
				norwegianCSV = cfg.Vocabulary.NorwegianCSV
			}
			if smartoolCSV == "" && norwegianCSV == "" {
				return fmt.Errorf("no CSV files to import, pass --smartool or --norwegian or configure them")
			}

			var words []vocabulary.Word
			if smartoolCSV != "" {
				smartoolWords, err := vocabulary.NewSMARToolReader(smartoolCSV).Read()
				if err != nil {
					return err
				}
				fmt.Printf("Read %d words from %s\n", len(smartoolWords), smartoolCSV)
				words = append(words, smartoolWords...)
			}
			if norwegianCSV != "" {
				norwegianWords, err := vocabulary.NewNorwegianReader(norwegianCSV).Read()
				if err != nil {
					return err
				}
				fmt.Printf("Read %d words from %s\n", len(norwegianWords), norwegianCSV)
				words = append(words, norwegianWords...)
			}

			repository, err := vocabulary.OpenSQLiteRepository(cfg.Vocabulary.DatabasePath)
			if err != nil {
				return err
			}
			defer func() {
				_ = repository.Close()
			}()

			imported, err := repository.Import(cmd.Context(), words)
			if err != nil {
				return err
			}
			fmt.Printf("Imported %d words into %s\n", imported, cfg.Vocabulary.DatabasePath)
			return nil
		},
	}
	flags := command.Flags()
	flags.StringVar(&smartoolCSV, "smartool", "", "SMARTool CSV file to import")
	flags.StringVar(&norwegianCSV, "norwegian", "", "Norwegian verbs CSV file to import")

	return command
}

func newVocabCountCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "count",
		Short: "Show how many words the vocabulary database holds",
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

			count, err := repository.Count(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Printf("%d words in %s\n", count, cfg.Vocabulary.DatabasePath)
			return nil
		},
	}
}
