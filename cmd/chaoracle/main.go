// Command chaoracle is the interactive console for the decision oracle.
// It owns the prompt loop, run-count modes, history persistence, and
// formatted output; the pipeline itself lives in the root package.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"

	"github.com/tkz/chaoracle"
	"github.com/tkz/chaoracle/internal/history"
)

// envConfig is the environment-driven configuration. Flags override it.
type envConfig struct {
	ChaosIterations int    `env:"CHAORACLE_CHAOS_ITERATIONS" envDefault:"100"`
	PrimeTerms      int    `env:"CHAORACLE_PRIME_TERMS" envDefault:"20"`
	ZetaTerms       int    `env:"CHAORACLE_ZETA_TERMS" envDefault:"50"`
	HistoryPath     string `env:"CHAORACLE_HISTORY_DB" envDefault:"chaoracle.db"`
	LogLevel        string `env:"CHAORACLE_LOG_LEVEL" envDefault:"info"`
}

var (
	times     int
	usePi     bool
	piDigits  int
	verbose   bool
	noHistory bool

	cfg envConfig
)

var (
	styleBanner = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99"))
	styleYes    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	styleNo     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203"))
	styleDetail = lipgloss.NewStyle().Faint(true)
)

var rootCmd = &cobra.Command{
	Use:   "chaoracle",
	Short: "Chaos-amplified yes/no oracle",
	Long: `chaoracle answers yes/no questions by mixing OS entropy through
chaotic maps, prime-table folds, and transcendental transforms.

Without flags it runs the interactive satisfaction loop; --times runs a
fixed batch, and --pi draws the run count from the decimals of π.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := env.Parse(&cfg); err != nil {
			return fmt.Errorf("parse environment: %w", err)
		}

		level := slog.LevelInfo
		if verbose || strings.EqualFold(cfg.LogLevel, "debug") {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(
			tint.NewHandler(os.Stderr, &tint.Options{Level: level}),
		))
		return nil
	},
	RunE: runOracle,
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Print the all-time yes/no tally",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := history.Open(cfg.HistoryPath)
		if err != nil {
			return err
		}
		defer store.Close()

		t, err := store.Tally("")
		if err != nil {
			return err
		}
		printSummary(t.Runs, t.Yes)
		return nil
	},
}

func init() {
	rootCmd.Flags().IntVarP(&times, "times", "t", 0, "run a fixed number of decisions instead of the interactive loop")
	rootCmd.Flags().BoolVar(&usePi, "pi", false, "draw the run count from a random window of the decimals of π")
	rootCmd.Flags().IntVar(&piDigits, "pi-digits", 5, "window width for --pi (1..9 digits)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging with per-stage traces")
	rootCmd.PersistentFlags().BoolVar(&noHistory, "no-history", false, "do not record decisions")
	rootCmd.AddCommand(historyCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			fmt.Println("\nBye!")
			return
		}
		os.Exit(1)
	}
}

func runOracle(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	oracle, err := chaoracle.New(chaoracle.Config{
		ChaosIterations: cfg.ChaosIterations,
		PrimeTerms:      cfg.PrimeTerms,
		ZetaTerms:       cfg.ZetaTerms,
	})
	if err != nil {
		return err
	}

	var store *history.Store
	if !noHistory && cfg.HistoryPath != "" {
		store, err = history.Open(cfg.HistoryPath)
		if err != nil {
			return err
		}
		defer store.Close()
	}

	session := uuid.NewString()
	fmt.Println(styleBanner.Render("chaoracle — game of chance, amplified"))

	switch {
	case usePi:
		n, err := chaoracle.PiRunCount(piDigits)
		if err != nil {
			return err
		}
		slog.Info("run count drawn from π", "digits", piDigits, "count", n)
		return runBatch(ctx, oracle, store, session, n)
	case times > 0:
		return runBatch(ctx, oracle, store, session, times)
	default:
		return runInteractive(ctx, oracle, store, session)
	}
}

// decideOnce asks the oracle, prints the verdict, and records it. A failed
// history write is logged, not fatal: the decision already happened.
func decideOnce(oracle *chaoracle.Oracle, store *history.Store, session string) (chaoracle.Result, error) {
	result, err := oracle.AskVerbose()
	if err != nil {
		return chaoracle.Result{}, err
	}

	printResult(result)

	if store != nil {
		if _, err := store.Record(session, result); err != nil {
			slog.Warn("could not record decision", "err", err)
		}
	}
	return result, nil
}

func printResult(r chaoracle.Result) {
	answer := styleNo.Render(r.Answer)
	if r.IsYes() {
		answer = styleYes.Render(r.Answer)
	}
	fmt.Println(answer)
	fmt.Println(styleDetail.Render(fmt.Sprintf(
		"raw value %.15f · %d chaos iterations", r.RawValue, r.ChaosIterations)))
}

func runBatch(ctx context.Context, oracle *chaoracle.Oracle, store *history.Store, session string, n int) error {
	yes := 0
	for i := 0; i < n; i++ {
		select {
		case <-ctx.Done():
			printSummary(i, yes)
			return ctx.Err()
		default:
		}

		r, err := decideOnce(oracle, store, session)
		if err != nil {
			return err
		}
		if r.IsYes() {
			yes++
		}
	}
	printSummary(n, yes)
	return nil
}

func runInteractive(ctx context.Context, oracle *chaoracle.Oracle, store *history.Store, session string) error {
	scanner := bufio.NewScanner(os.Stdin)

	fmt.Print("Are you ready to let me decide what's on your mind right now? (Y/n) ")
	if scanner.Scan() && strings.EqualFold(strings.TrimSpace(scanner.Text()), "n") {
		fmt.Println("Bye!")
		return nil
	}

	total, yes := 0, 0
	for {
		if ctx.Err() != nil {
			break
		}

		r, err := decideOnce(oracle, store, session)
		if err != nil {
			return err
		}
		total++
		if r.IsYes() {
			yes++
		}

		fmt.Print("Satisfied? (y/n) ")
		if !scanner.Scan() || strings.EqualFold(strings.TrimSpace(scanner.Text()), "y") {
			break
		}
	}

	printSummary(total, yes)
	return nil
}

func printSummary(total, yes int) {
	fmt.Println(styleDetail.Render(fmt.Sprintf(
		"Total runs: %d · Yes: %d · No: %d", total, yes, total-yes)))
	fmt.Println("Have a nice day! Goodbye.")
}
