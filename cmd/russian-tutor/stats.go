package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/HVLhenrik/russian-tutor/internal/pdf"
	"github.com/HVLhenrik/russian-tutor/internal/statistics"
)

func newStatsCommand() *cobra.Command {
	statsCommand := &cobra.Command{
		Use:   "stats",
		Short: "Show practice statistics and progress reports",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			ledger, err := openLedger(cfg)
			if err != nil {
				return err
			}

			overall := ledger.Statistics()
			fmt.Println("📊 OVERALL STATISTICS")
			fmt.Printf("Words practiced: %d\n", overall.WordsPracticed)
			fmt.Printf("Total attempts: %d\n", overall.TotalAttempts)
			fmt.Printf("Correct: %d, incorrect: %d\n", overall.TotalCorrect, overall.TotalIncorrect)
			fmt.Printf("Accuracy: %.1f%%\n", overall.Accuracy)
			fmt.Printf("Mastered words: %d\n", overall.MasteredWords)
			fmt.Printf("Needs review: %d\n", overall.NeedsReview)
			fmt.Printf("Sessions: %d\n", overall.TotalSessions)

			recentSessions := ledger.SessionHistory(5)
			if len(recentSessions) == 0 {
				return nil
			}
			fmt.Println("\nRecent sessions:")
			for _, session := range recentSessions {
				total := session.CorrectCount + session.IncorrectCount
				fmt.Printf("  %s: %d words, %d/%d correct\n",
					session.StartTime.Format("2006-01-02 15:04"),
					len(session.WordsPracticed), session.CorrectCount, total)
			}
			return nil
		},
	}

	statsCommand.AddCommand(
		newStatsReportCommand(),
		newStatsResetCommand(),
	)

	return statsCommand
}

func newStatsReportCommand() *cobra.Command {
	var (
		year      int
		month     int
		renderPDF bool
	)

	command := &cobra.Command{
		Use:   "report",
		Short: "Generate a markdown progress report",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			ledger, err := openLedger(cfg)
			if err != nil {
				return err
			}

			now := time.Now()
			result := statistics.Calculate(ledger.Records(), ledger.Sessions(), ledger.Statistics(), year, month)
			markdown := statistics.RenderMarkdownReport(result, ledger.Records(), now)

			reportPath, err := statistics.WriteReport(cfg.Reports.Directory, markdown, now)
			if err != nil {
				return err
			}
			fmt.Printf("Report written to %s\n", reportPath)

			if renderPDF {
				pdfPath, err := pdf.FromMarkdown(reportPath)
				if err != nil {
					return err
				}
				fmt.Printf("PDF written to %s\n", pdfPath)
			}
			return nil
		},
	}
	flags := command.Flags()
	flags.IntVar(&year, "year", 0, "Only include sessions from this year")
	flags.IntVar(&month, "month", 0, "Only include sessions from this month (1-12)")
	flags.BoolVar(&renderPDF, "pdf", false, "Also render the report as PDF")

	return command
}

func newStatsResetCommand() *cobra.Command {
	var force bool

	command := &cobra.Command{
		Use:   "reset",
		Short: "Reset all practice progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			if !force {
				fmt.Print("This deletes all practice history. Continue? (y/n): ")
				answer, err := bufio.NewReader(os.Stdin).ReadString('\n')
				if err != nil {
					return fmt.Errorf("bufio.Reader.ReadString() > %w", err)
				}
				if strings.TrimSpace(strings.ToLower(answer)) != "y" {
					fmt.Println("Aborted.")
					return nil
				}
			}

			ledger, err := openLedger(cfg)
			if err != nil {
				return err
			}
			if err := ledger.Reset(); err != nil {
				return err
			}
			fmt.Println("Progress reset.")
			return nil
		},
	}
	command.Flags().BoolVar(&force, "force", false, "Skip the confirmation prompt")

	return command
}
