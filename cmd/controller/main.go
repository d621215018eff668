package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/danielpatrickdp/synthai/go-core/internal/analysis"
	"github.com/danielpatrickdp/synthai/go-core/internal/astro"
	"github.com/danielpatrickdp/synthai/go-core/internal/config"
	"github.com/danielpatrickdp/synthai/go-core/internal/coordinate"
	"github.com/danielpatrickdp/synthai/go-core/internal/eval"
	"github.com/danielpatrickdp/synthai/go-core/internal/logging"
	"github.com/danielpatrickdp/synthai/go-core/internal/sentence"
	"github.com/danielpatrickdp/synthai/go-core/internal/session"
	"github.com/danielpatrickdp/synthai/go-core/internal/telemetry"
)

// #region main
var (
	configPath  string
	sessionFlag string
	positionArg string
)

func main() {
	root := &cobra.Command{
		Use:           "controller",
		Short:         "Interactive reading loop against the current Sun position",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}
	root.Flags().StringVar(&configPath, "config", "synthai.yaml", "path to YAML config")
	root.Flags().StringVar(&sessionFlag, "session", "", "session id to resume (overrides config)")
	root.Flags().StringVar(&positionArg, "position", "", `fixed position instead of the Sun, e.g. 3°1'52.5" Aries`)

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// #endregion main

// #region run
func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if sessionFlag != "" {
		cfg.Session = sessionFlag
	}

	logger, err := logging.NewLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	provider, err := providerFor(positionArg)
	if err != nil {
		return err
	}

	store, err := session.Open(cfg.Database)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer store.Close()

	sess, err := openSession(store, cfg.Session)
	if err != nil {
		return err
	}

	analyzer := analysis.NewAnalyzer(provider, cfg.Analysis())
	harness := eval.NewEvalHarness(eval.DefaultEvalConfig())
	recorder := telemetry.NewRecorder()

	count, _ := store.Count(sess.ID)
	fmt.Println("SynthAI controller ready.")
	fmt.Printf("  DB: %s | Session: %s (%d readings)\n", cfg.Database, sess.ID, count)
	fmt.Println("Type a note (or 'quit' to exit):")

	scanner := bufio.NewScanner(os.Stdin)
	turnNum := 0

	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		if text == "quit" || text == "exit" {
			break
		}

		turnNum++
		noteID := fmt.Sprintf("turn-%d", turnNum)

		previous, err := store.Previous(sess.ID)
		if err != nil {
			logger.Error("load previous vector", zap.Error(err))
			continue
		}

		reading, err := analyzer.Analyze(analysis.Input{
			Text:     text,
			NoteID:   noteID,
			At:       time.Now().UTC(),
			Previous: previous,
		})
		if err != nil {
			logger.Error("analyze", zap.String("note_id", noteID), zap.Error(err))
			continue
		}

		result := harness.Run(reading)
		recorder.Observe(reading, result)

		if _, err := store.Save(sess.ID, reading); err != nil {
			logger.Error("save reading", zap.String("reading_id", reading.ID), zap.Error(err))
			continue
		}
		entry := logging.NewEntry(reading, sess.ID, cfg.Trigger, result.Passed, result.Reason)
		if err := logging.LogAnalysis(store.DB(), entry); err != nil {
			logger.Error("log analysis", zap.Error(err))
		}
		if cfg.MetricsFile != "" {
			if err := recorder.WriteTextfile(cfg.MetricsFile); err != nil {
				logger.Warn("write metrics", zap.Error(err))
			}
		}

		logger.Debug("reading", logging.ReadingFields(reading)...)
		if !result.Passed {
			logger.Warn("eval failed", zap.String("reading_id", reading.ID), zap.String("reason", result.Reason))
		}

		fmt.Printf("\n%s\n", sentence.Render(reading.Description, reading.Sentences))
		fmt.Printf("[%s] %s detected=%s (%.2f) primary=%s coherence=%.3f stability=%.3f confidence=%.3f\n\n",
			noteID, reading.Description.Coordinate, reading.Detection.Dimension, reading.Detection.Confidence,
			reading.Primary, reading.Metrics.Coherence, reading.Metrics.Stability, reading.Metrics.Confidence)
	}
	return scanner.Err()
}

// #endregion run

// #region helpers
func providerFor(position string) (astro.Provider, error) {
	if position == "" {
		return astro.SunProvider{}, nil
	}
	coord, err := coordinate.Parse(position)
	if err != nil {
		return nil, fmt.Errorf("parse position: %w", err)
	}
	return astro.FixedProvider{At: astro.Position{
		Degrees: coord.Degrees,
		Minutes: coord.Minutes,
		Seconds: coord.Seconds,
		Sign:    coord.Sign,
	}}, nil
}

func openSession(store *session.Store, id string) (session.Session, error) {
	if id == "" {
		sess, err := store.CreateSession("repl")
		if err != nil {
			return session.Session{}, fmt.Errorf("create session: %w", err)
		}
		return sess, nil
	}
	sess, err := store.EnsureSession(id, "repl")
	if err != nil {
		return session.Session{}, fmt.Errorf("ensure session: %w", err)
	}
	return sess, nil
}

// #endregion helpers
