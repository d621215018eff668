package main

import (
	"errors"
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/danielpatrickdp/synthai/go-core/internal/logging"
	"github.com/danielpatrickdp/synthai/go-core/internal/replay"
	"github.com/danielpatrickdp/synthai/go-core/internal/telemetry"
)

// #region main
var (
	logLevel    string
	metricsFile string
)

func main() {
	root := &cobra.Command{
		Use:           "replay FIXTURE...",
		Short:         "Replay fixtures and compare against recorded expectations",
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}
	root.Flags().StringVar(&logLevel, "log-level", "warn", "debug|info|warn|error")
	root.Flags().StringVar(&metricsFile, "metrics-file", "", "write Prometheus textfile after the run")

	err := root.Execute()
	switch {
	case errors.Is(err, errDiverged):
		os.Exit(1)
	case err != nil:
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}
}

// #endregion main

// #region run
var errDiverged = errors.New("replay diverged from fixture")

func run(cmd *cobra.Command, args []string) error {
	logger, err := logging.NewLogger(logLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	recorder := telemetry.NewRecorder()

	// Fixtures are independent; replay them concurrently and report in
	// argument order.
	runs := make([]fixtureRun, len(args))
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, path := range args {
		g.Go(func() error {
			fr, err := replayFixture(path)
			if err != nil {
				return err
			}
			for _, r := range fr.results {
				recorder.Observe(r.Reading, r.EvalResult)
			}
			runs[i] = fr
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	diverged := false
	for _, fr := range runs {
		for _, r := range fr.results {
			logger.Debug("replayed", logging.ReadingFields(r.Reading)...)
		}
		fmt.Printf("== %s: %s\n", fr.path, fr.description)
		s := printComparison(fr.results)
		logger.Info("fixture replayed",
			zap.String("fixture", fr.path),
			zap.Int("total", s.TotalTurns),
			zap.Int("matches", s.Matches),
			zap.Int("eval_failures", s.EvalFailures))
		if s.Mismatches > 0 || s.EvalFailures > 0 {
			diverged = true
		}
	}

	if metricsFile != "" {
		if err := recorder.WriteTextfile(metricsFile); err != nil {
			return err
		}
	}
	if diverged {
		return errDiverged
	}
	return nil
}

type fixtureRun struct {
	path        string
	description string
	results     []replay.ReplayResult
}

func replayFixture(path string) (fixtureRun, error) {
	f, err := replay.LoadFixture(path)
	if err != nil {
		return fixtureRun{}, err
	}
	interactions, err := f.ToInteractions()
	if err != nil {
		return fixtureRun{}, fmt.Errorf("fixture %s: %w", path, err)
	}
	return fixtureRun{
		path:        path,
		description: f.Description,
		results:     replay.Replay(interactions, replay.DefaultReplayConfig()),
	}, nil
}

// #endregion run

// #region output

// printComparison outputs a comparison table and returns the summary.
func printComparison(results []replay.ReplayResult) replay.ReplaySummary {
	fmt.Printf("%-14s| %-12s| %-10s| %-10s| %-6s| %s\n", "Turn", "Coordinate", "Detected", "Primary", "Eval", "Match")
	fmt.Printf("%-14s+%-13s+%-11s+%-11s+%-7s+%s\n",
		"--------------", "-------------", "-----------", "-----------", "-------", "------")

	for _, r := range results {
		match := "OK"
		if !r.Match() {
			match = "DIFF"
		}
		evalMark := "pass"
		if !r.EvalResult.Passed {
			evalMark = "FAIL"
		}
		fmt.Printf("%-14s| %-12s| %-10s| %-10s| %-6s| %s\n",
			r.ID, r.Reading.Coordinate, r.Reading.Detection.Dimension, r.Reading.Primary, evalMark, match)
		for _, m := range r.Mismatches {
			fmt.Printf("    %s\n", m)
		}
	}

	s := replay.Summarize(results)
	fmt.Printf("\nSummary: %d total, %d match, %d diverge, %d eval failures\n\n",
		s.TotalTurns, s.Matches, s.Mismatches, s.EvalFailures)
	return s
}

// #endregion output
