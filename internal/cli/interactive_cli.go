// Package cli implements the interactive practice sessions: vocabulary
// word practice, declension drills and exam preparation exercises.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/fatih/color"
)

// InteractiveCLI contains shared logic for interactive practice CLIs
type InteractiveCLI struct {
	stdinReader  *bufio.Reader
	stdoutWriter io.Writer
	bold         *color.Color
	italic       *color.Color
	green        *color.Color
	red          *color.Color
}

// newInteractiveCLI creates the base CLI with shared initialization
func newInteractiveCLI() *InteractiveCLI {
	return &InteractiveCLI{
		stdinReader:  bufio.NewReader(os.Stdin),
		stdoutWriter: os.Stdout,
		bold:         color.New(color.Bold),
		italic:       color.New(color.Italic),
		green:        color.New(color.FgGreen),
		red:          color.New(color.FgRed),
	}
}

//go:generate mockgen -source=interactive_cli.go -destination=../mocks/cli/mock_session.go -package=mock_cli Session

type Session interface {
	Session(context context.Context) error
}

var errEnd = errors.New("end")

func (cli *InteractiveCLI) Run(ctx context.Context, session Session) error {
	ctx, cancel := signal.NotifyContext(
		ctx,
		os.Interrupt,
	)
	defer cancel()

	errCh := make(chan error)
	go func() {
		defer close(errCh)

	LOOP:
		for {
			select {
			case <-ctx.Done():
				break LOOP
			default:
			}

			if err := session.Session(ctx); err != nil {
				if errors.Is(err, errEnd) {
					break
				}
				errCh <- err
				break
			}
		}
	}()
	select {
	case <-ctx.Done():
		fmt.Fprintln(cli.stdoutWriter, "Received interrupt signal, exiting...")
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("error: %w", err)
		}
	}
	return nil
}

// readLine prints the prompt and returns the next trimmed input line.
func (cli *InteractiveCLI) readLine(prompt string) (string, error) {
	fmt.Fprint(cli.stdoutWriter, prompt)
	line, err := cli.stdinReader.ReadString('\n')
	if err != nil {
		// A final line without a trailing newline is still an answer.
		if errors.Is(err, io.EOF) && strings.TrimSpace(line) != "" {
			return strings.TrimSpace(line), nil
		}
		return "", fmt.Errorf("error reading input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// askYesNo keeps prompting until the user answers yes or no. Russian
// keyboard layout equivalents are accepted for users who forget to switch.
func (cli *InteractiveCLI) askYesNo(prompt string) (bool, error) {
	for {
		answer, err := cli.readLine(prompt)
		if err != nil {
			return false, err
		}
		switch strings.ToLower(answer) {
		case "y", "yes", "ы", "ыес":
			return true, nil
		case "n", "no", "н", "но":
			return false, nil
		}
		fmt.Fprintln(cli.stdoutWriter, "Please enter 'y' for yes or 'n' for no")
	}
}

// isQuit reports whether the input is a quit command, including the
// Russian keyboard layout equivalents of quit, q and exit.
func isQuit(input string) bool {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "quit", "q", "exit", "яуит", "я", "ехит":
		return true
	}
	return false
}

// normalizeAnswer lowercases and trims an answer for comparison.
func normalizeAnswer(answer string) string {
	return strings.ToLower(strings.TrimSpace(answer))
}

// checkAnswer compares a user answer against the correct one. When the
// correct answer lists comma separated alternatives ("do, make"), any
// single alternative is accepted.
func checkAnswer(userAnswer, correctAnswer string) bool {
	userNormalized := normalizeAnswer(userAnswer)
	if userNormalized == normalizeAnswer(correctAnswer) {
		return true
	}

	if strings.Contains(correctAnswer, ",") {
		for _, option := range strings.Split(correctAnswer, ",") {
			if userNormalized == normalizeAnswer(option) {
				return true
			}
		}
	}
	return false
}

const writeCorrectAnswerAttempts = 3

// practiceCorrectAnswer makes the user write the correct answer after a
// mistake, giving up after three attempts. It returns true when the user
// quits mid-practice.
func (cli *InteractiveCLI) practiceCorrectAnswer(correctAnswer string) (bool, error) {
	fmt.Fprintf(cli.stdoutWriter, "\n✍️  Please write the correct answer to continue: %s\n", correctAnswer)

	for attempt := 0; attempt < writeCorrectAnswerAttempts; attempt++ {
		answer, err := cli.readLine("   Type it here: ")
		if err != nil {
			return false, err
		}
		if isQuit(answer) {
			return true, nil
		}
		if checkAnswer(answer, correctAnswer) {
			fmt.Fprintln(cli.stdoutWriter, "   ✅ Correct! Moving on...")
			return false, nil
		}
		if attempt < writeCorrectAnswerAttempts-1 {
			fmt.Fprintf(cli.stdoutWriter, "   ❌ Not quite. Try again (%d/%d)\n", attempt+2, writeCorrectAnswerAttempts)
		} else {
			fmt.Fprintf(cli.stdoutWriter, "   ⚠️  The correct answer is: %s\n", correctAnswer)
			fmt.Fprintln(cli.stdoutWriter, "   Please practice this word!")
		}
	}
	return false, nil
}

// displayFeedback prints the correct/incorrect line for an answer.
func (cli *InteractiveCLI) displayFeedback(isCorrect bool, correctAnswer string) {
	if isCorrect {
		fmt.Fprint(cli.stdoutWriter, "✅ ")
		_, _ = cli.green.Fprintln(cli.stdoutWriter, "Correct!")
		return
	}
	fmt.Fprint(cli.stdoutWriter, "❌ ")
	_, _ = cli.red.Fprintf(cli.stdoutWriter, "Incorrect! The correct answer is: %s\n", cli.bold.Sprintf("%s", correctAnswer))
}
