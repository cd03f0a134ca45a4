package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/wordwave/internal/scoring"
	"github.com/abhisek/wordwave/internal/stagetest"
	"github.com/abhisek/wordwave/internal/store"
)

var takeCmd = &cobra.Command{
	Use:   "take <test-code>",
	Short: "Take a stage test by code",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		allowRestart, _ := cmd.Flags().GetBool("restart")

		client, err := scoring.NewHTTPClient(scoring.ConfigFromEnv())
		if err != nil {
			return err
		}

		opts := stagetest.Options{Logger: buildLogger()}

		// The local store is optional — a broken database never blocks a test.
		dbPath, err := resolveDBPath(cmd)
		if err == nil {
			if st, err := store.Open(dbPath); err == nil {
				defer st.Close()
				if repo, err := st.EventRepo(); err == nil {
					opts.Events = repo
				}
			} else {
				fmt.Fprintln(os.Stderr, "Local store unavailable:", err)
				fmt.Fprintln(os.Stderr, "Attempt history will not be recorded.")
			}
		}

		orch := stagetest.New(client, opts)
		if err := orch.Start(ctx, args[0], allowRestart); err != nil {
			return err
		}

		s := orch.Session()
		if s.StudentName != "" {
			fmt.Printf("Welcome, %s!\n", s.StudentName)
		}
		fmt.Printf("%d words to master. %d misses and a word is skipped. Good luck!\n\n",
			s.TotalWords, s.MaxFails)

		if err := runLoop(ctx, orch); err != nil {
			return err
		}

		printSummary(orch.Summary(), orch.Session())
		return nil
	},
}

func init() {
	takeCmd.Flags().Bool("restart", false, "Restart the test if already completed")
}

func runLoop(ctx context.Context, orch *stagetest.Orchestrator) error {
	answers := newAnswerReader(os.Stdin)

	for {
		q, err := orch.Current()
		switch {
		case err == nil:
			// Serve the question below.
		case errors.Is(err, stagetest.ErrCompleted):
			return nil
		case errors.Is(err, stagetest.ErrLoading):
			fmt.Println("Loading more questions...")
			if err := orch.WaitForQuestions(ctx); err != nil {
				return err
			}
			continue
		case errors.Is(err, stagetest.ErrNoQuestion):
			// Queue ran dry without an in-flight fetch; trigger one.
			if !orch.RequestQuestions(ctx) {
				return nil
			}
			continue
		default:
			// Fetch failure: surface it, let the student decide on a retry.
			fmt.Fprintln(os.Stderr, "Could not load questions:", err)
			fmt.Print("Press Enter to retry, or Ctrl+C to quit.\n")
			if _, ok := answers.Read(0); !ok {
				return nil
			}
			orch.RequestQuestions(ctx)
			continue
		}

		answer, elapsed := askQuestion(answers, q)

		result, err := orch.Submit(ctx, answer, elapsed)
		if err != nil {
			// Submission failure leaves the question in place for a retry.
			fmt.Fprintln(os.Stderr, "Could not submit answer:", err)
			continue
		}

		printFeedback(result)

		if result.Completed {
			return nil
		}
	}
}

// askQuestion displays a question and collects an answer within its timer
// budget. Timer expiry auto-submits an empty answer, graded as incorrect.
func askQuestion(answers *answerReader, q *scoring.Question) (string, time.Duration) {
	fmt.Printf("[stage %d] %s\n", q.Stage, q.Prompt)
	for i, c := range q.Choices {
		fmt.Printf("  %d) %s\n", i+1, c)
	}
	if q.TimerSeconds > 0 {
		fmt.Printf("(%ds) > ", q.TimerSeconds)
	} else {
		fmt.Print("> ")
	}

	start := time.Now()
	line, ok := answers.Read(time.Duration(q.TimerSeconds) * time.Second)
	elapsed := time.Since(start)
	if !ok {
		fmt.Println("\nTime's up!")
		return "", elapsed
	}

	// A bare number picks a choice.
	if n, err := strconv.Atoi(strings.TrimSpace(line)); err == nil && n >= 1 && n <= len(q.Choices) {
		return q.Choices[n-1], elapsed
	}
	return strings.TrimSpace(line), elapsed
}

func printFeedback(result *stagetest.AnswerResult) {
	v := result.Verdict
	switch {
	case v.IsCorrect:
		fmt.Println("Correct!")
	case v.AlmostCorrect:
		fmt.Printf("Almost! The exact answer is %q.\n", v.CorrectAnswer)
	default:
		fmt.Printf("Not quite. The answer is %q.\n", v.CorrectAnswer)
	}

	if t := result.Transition; t != nil {
		switch t.Trigger {
		case "word-mastered":
			fmt.Printf("★ Mastered %q!\n", result.Word.Text)
		case "fails-exhausted":
			fmt.Printf("✗ %q skipped — it will not come back this session.\n", result.Word.Text)
		}
	}
	for _, w := range result.Admitted {
		fmt.Printf("New word in play: %q\n", w.Text)
	}
	fmt.Println()
}

func printSummary(sum *stagetest.Summary, s *stagetest.Session) {
	if sum == nil {
		return
	}
	fmt.Println("--- Session complete ---")
	fmt.Printf("Words:     %d mastered, %d skipped of %d\n", sum.MasteredCount, sum.SkippedCount, sum.TotalWords)
	fmt.Printf("Answers:   %d correct of %d (%.0f%%)\n", sum.CorrectCount, sum.TotalAnswered, sum.Accuracy*100)
	fmt.Printf("Best run:  %d in a row\n", sum.BestCombo)
	fmt.Printf("Time:      %s\n", sum.Duration.Round(time.Second))
	if s.ReportErr != nil {
		fmt.Fprintln(os.Stderr, "Note: the result could not be reported to the server:", s.ReportErr)
	}
}

func buildLogger() *zap.Logger {
	if os.Getenv("WORDWAVE_DEBUG") == "" {
		return zap.NewNop()
	}
	log, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return log
}

// answerReader reads stdin lines on a background goroutine so a per-question
// timer can expire without blocking on the terminal.
type answerReader struct {
	lines chan string
}

func newAnswerReader(f *os.File) *answerReader {
	r := &answerReader{lines: make(chan string)}
	go func() {
		scanner := bufio.NewScanner(f)
		for scanner.Scan() {
			r.lines <- scanner.Text()
		}
		close(r.lines)
	}()
	return r
}

// Read returns the next line, or ok=false on timeout (timeout 0 waits
// forever) or closed input.
func (r *answerReader) Read(timeout time.Duration) (string, bool) {
	if timeout <= 0 {
		line, ok := <-r.lines
		return line, ok
	}
	select {
	case line, ok := <-r.lines:
		return line, ok
	case <-time.After(timeout):
		return "", false
	}
}
