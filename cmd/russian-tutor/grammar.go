package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/HVLhenrik/russian-tutor/internal/cli"
	"github.com/HVLhenrik/russian-tutor/internal/grammar"
)

type declensionFlag grammar.Declension

func (d *declensionFlag) Set(val string) error {
	for _, declension := range allDeclensions {
		if val == string(declension) {
			*d = declensionFlag(declension)
			return nil
		}
	}
	return fmt.Errorf("invalid declension: %s", val)
}

func (d declensionFlag) String() string {
	return string(d)
}

func (d *declensionFlag) Type() string {
	return "declension"
}

var (
	_              pflag.Value = (*declensionFlag)(nil)
	allDeclensions             = []grammar.Declension{
		grammar.DeclensionFirst,
		grammar.DeclensionSecond,
		grammar.DeclensionThird,
	}
)

func newGrammarCommand() *cobra.Command {
	grammarCommand := &cobra.Command{
		Use:   "grammar",
		Short: "Grammar drills over the built-in declension and conjugation tables",
	}

	grammarCommand.AddCommand(
		newGrammarNounsCommand(),
		newGrammarAdjectivesCommand(),
		newGrammarPronounsCommand(),
		newGrammarPairsCommand(),
		newGrammarVerbsCommand(),
		newGrammarRulesCommand(),
	)

	return grammarCommand
}

func newGrammarNounsCommand() *cobra.Command {
	var (
		declension declensionFlag
		plurals    bool
	)

	command := &cobra.Command{
		Use:   "nouns",
		Short: "Drill noun declensions case by case",
		RunE: func(cmd *cobra.Command, args []string) error {
			tables, err := grammar.Load()
			if err != nil {
				return err
			}

			drill, err := cli.NewNounDrill(tables, grammar.Declension(declension), plurals, nil)
			if err != nil {
				return err
			}

			fmt.Printf("Noun declension drill with %d nouns\n\n", drill.ItemCount())
			return drill.Run(cmd.Context(), drill)
		},
	}
	flags := command.Flags()
	flags.Var(&declension, "declension", fmt.Sprintf("Limit to one declension. Possible values are %v", allDeclensions))
	flags.BoolVar(&plurals, "plural", false, "Drill plural forms instead of singular")

	return command
}

func newGrammarAdjectivesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "adjectives",
		Short: "Drill adjective declensions in the masculine forms",
		RunE: func(cmd *cobra.Command, args []string) error {
			tables, err := grammar.Load()
			if err != nil {
				return err
			}

			drill, err := cli.NewAdjectiveDrill(tables, nil)
			if err != nil {
				return err
			}

			fmt.Printf("Adjective declension drill with %d adjectives\n\n", drill.ItemCount())
			return drill.Run(cmd.Context(), drill)
		},
	}
}

func newGrammarPronounsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "pronouns",
		Short: "Drill personal pronouns in the exam cases",
		RunE: func(cmd *cobra.Command, args []string) error {
			tables, err := grammar.Load()
			if err != nil {
				return err
			}

			drill, err := cli.NewPronounDrill(tables, nil)
			if err != nil {
				return err
			}

			fmt.Printf("Pronoun declension drill with %d pronouns\n\n", drill.ItemCount())
			return drill.Run(cmd.Context(), drill)
		},
	}
}

func newGrammarPairsCommand() *cobra.Command {
	var (
		gender   string
		category string
		quick    bool
	)

	command := &cobra.Command{
		Use:   "pairs",
		Short: "Drill adjective and noun agreement with combined answers",
		RunE: func(cmd *cobra.Command, args []string) error {
			tables, err := grammar.Load()
			if err != nil {
				return err
			}

			drill, err := cli.NewPairDrill(tables, grammar.Gender(gender), category, quick, nil)
			if err != nil {
				return fmt.Errorf("%w (categories: %v)", err, tables.PairCategories())
			}

			fmt.Printf("Word pair agreement drill with %d pairs\n\n", drill.ItemCount())
			return drill.Run(cmd.Context(), drill)
		},
	}
	flags := command.Flags()
	flags.StringVar(&gender, "gender", "", "Limit to one gender (masculine, feminine or neuter)")
	flags.StringVar(&category, "category", "", "Limit to one pair category")
	flags.BoolVar(&quick, "quick", false, "Shorter drill with three cases and at most five pairs")

	return command
}

func newGrammarVerbsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "verbs",
		Short: "Drill verb conjugation in present and past tense",
		RunE: func(cmd *cobra.Command, args []string) error {
			tables, err := grammar.Load()
			if err != nil {
				return err
			}

			drill, err := cli.NewVerbDrill(tables, nil)
			if err != nil {
				return err
			}

			fmt.Printf("Verb conjugation drill with %d verbs\n\n", drill.ItemCount())
			return drill.Run(cmd.Context(), drill)
		},
	}
}

func newGrammarRulesCommand() *cobra.Command {
	rulesByTopic := map[string]func() string{
		"nouns":      grammar.NounDeclensionRules,
		"adjectives": grammar.AdjectiveDeclensionRules,
		"pronouns":   grammar.PronounDeclensionRules,
		"verbs":      grammar.VerbConjugationRules,
	}
	topics := []string{"nouns", "adjectives", "pronouns", "verbs"}

	return &cobra.Command{
		Use:       "rules [topic]",
		Short:     "Show declension and conjugation reference tables",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: topics,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				rules, ok := rulesByTopic[args[0]]
				if !ok {
					return fmt.Errorf("unknown topic %q, expected one of %v", args[0], topics)
				}
				fmt.Println(rules())
				return nil
			}

			for _, topic := range topics {
				fmt.Println(rulesByTopic[topic]())
			}
			return nil
		},
	}
}

func newExamPrepCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "exam-prep",
		Short: "Exam preparation with a declension table and fill-in-the-blank sentences",
		RunE: func(cmd *cobra.Command, args []string) error {
			tables, err := grammar.Load()
			if err != nil {
				return err
			}

			examCLI := cli.NewExamPrepCLI(tables, nil)
			return examCLI.Run(cmd.Context(), examCLI)
		},
	}
}
