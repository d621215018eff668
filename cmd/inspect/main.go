package main

import (
	"encoding/json"
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/danielpatrickdp/synthai/go-core/internal/analysis"
	"github.com/danielpatrickdp/synthai/go-core/internal/astro"
	"github.com/danielpatrickdp/synthai/go-core/internal/config"
	"github.com/danielpatrickdp/synthai/go-core/internal/coordinate"
	"github.com/danielpatrickdp/synthai/go-core/internal/eval"
	"github.com/danielpatrickdp/synthai/go-core/internal/replay"
	"github.com/danielpatrickdp/synthai/go-core/internal/sentence"
	"github.com/danielpatrickdp/synthai/go-core/internal/session"
	"github.com/danielpatrickdp/synthai/go-core/internal/zodiac"
)

// #region main
var (
	configPath string
	dbPath     string
	jsonOut    bool
)

func main() {
	root := &cobra.Command{
		Use:           "inspect",
		Short:         "Resolve coordinates and inspect stored readings",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "synthai.yaml", "path to YAML config")
	root.PersistentFlags().StringVar(&dbPath, "db", "", "database path (overrides config)")
	root.PersistentFlags().BoolVar(&jsonOut, "json", false, "output as JSON instead of text")

	root.AddCommand(resolveCmd(), parseCmd(), describeCmd(), sunCmd(), sessionsCmd(), readingsCmd(), exportCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// #endregion main

// #region one-shots
func resolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve DEG MIN SEC SIGN",
		Short: "Resolve a zodiac position to gate.line.color.tone.base",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			deg, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("degrees: %w", err)
			}
			mins, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("minutes: %w", err)
			}
			sec, err := strconv.ParseFloat(args[2], 64)
			if err != nil {
				return fmt.Errorf("seconds: %w", err)
			}
			sign, ok := zodiac.ParseSign(args[3])
			if !ok {
				return fmt.Errorf("unknown sign %q", args[3])
			}
			coord, err := coordinate.Resolve(deg, mins, sec, sign)
			if err != nil {
				return err
			}
			return printCoordinate(coord)
		},
	}
}

func parseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse TEXT",
		Short: `Parse a position such as 17°23'45.5" Leo and resolve it`,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			coord, err := coordinate.Parse(strings.Join(args, " "))
			if err != nil {
				return err
			}
			return printCoordinate(coord)
		},
	}
}

func describeCmd() *cobra.Command {
	var text string
	cmd := &cobra.Command{
		Use:   "describe POSITION",
		Short: "Describe a position, optionally analysing a note against it",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			coord, err := coordinate.Parse(strings.Join(args, " "))
			if err != nil {
				return err
			}
			if text == "" {
				desc, sentences := sentence.Generate(coord)
				if jsonOut {
					return printJSON(struct {
						Description any `json:"description"`
						Sentences   any `json:"sentences"`
					}{desc, sentences})
				}
				fmt.Print(sentence.Render(desc, sentences))
				return nil
			}
			reading := analysis.NewAnalyzer(nil, analysis.DefaultConfig()).AnalyzeCoordinate(coord, text, nil)
			result := eval.NewEvalHarness(eval.DefaultEvalConfig()).Run(reading)
			if jsonOut {
				return printJSON(struct {
					Reading analysis.Reading `json:"reading"`
					Eval    eval.EvalResult  `json:"eval"`
				}{reading, result})
			}
			fmt.Print(sentence.Render(reading.Description, reading.Sentences))
			printReading(reading)
			fmt.Printf("Eval: passed=%v %s\n", result.Passed, result.Reason)
			return nil
		},
	}
	cmd.Flags().StringVar(&text, "text", "", "note to analyse against the position")
	return cmd
}

func sunCmd() *cobra.Command {
	var at string
	cmd := &cobra.Command{
		Use:   "sun",
		Short: "Show the Sun's zodiac position and coordinate",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t := time.Now().UTC()
			if at != "" {
				parsed, err := time.Parse(time.RFC3339, at)
				if err != nil {
					return fmt.Errorf("parse --at: %w", err)
				}
				t = parsed
			}
			pos := astro.SunPosition(t)
			coord, err := coordinate.Resolve(pos.Degrees, pos.Minutes, pos.Seconds, pos.Sign)
			if err != nil {
				return err
			}
			fmt.Printf("Sun at %s (longitude %.6f°)\n", t.Format(time.RFC3339), astro.SunLongitude(t))
			return printCoordinate(coord)
		},
	}
	cmd.Flags().StringVar(&at, "at", "", "RFC3339 time (default now)")
	return cmd
}

// #endregion one-shots

// #region store-commands
func sessionsCmd() *cobra.Command {
	var last int
	cmd := &cobra.Command{
		Use:   "sessions",
		Short: "List sessions, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			sessions, err := store.ListSessions(last)
			if err != nil {
				return err
			}
			if jsonOut {
				return printJSON(sessions)
			}
			if len(sessions) == 0 {
				fmt.Fprintln(os.Stderr, "no sessions found")
				return nil
			}
			fmt.Printf("%-38s| %-12s| %-9s| %s\n", "Session", "Label", "Readings", "Created")
			for _, s := range sessions {
				n, err := store.Count(s.ID)
				if err != nil {
					return err
				}
				fmt.Printf("%-38s| %-12s| %-9s| %s\n", s.ID, s.Label, humanize.Comma(int64(n)), humanize.Time(s.CreatedAt))
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&last, "last", 20, "show N most recent sessions")
	return cmd
}

func readingsCmd() *cobra.Command {
	var (
		sessionID string
		last      int
	)
	cmd := &cobra.Command{
		Use:   "readings",
		Short: "List the readings of a session, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			records, err := store.List(sessionID, last)
			if err != nil {
				return err
			}
			if jsonOut {
				return printJSON(records)
			}
			if len(records) == 0 {
				fmt.Fprintln(os.Stderr, "no readings found")
				return nil
			}
			fmt.Printf("%-5s| %-12s| %-10s| %-10s| %-6s| %-6s| %-6s| %s\n",
				"Seq", "Coordinate", "Detected", "Primary", "Coh", "Stab", "Conf", "When")
			for _, r := range records {
				fmt.Printf("%-5d| %-12s| %-10s| %-10s| %-6s| %-6s| %-6s| %s\n",
					r.Seq, r.Coordinate, r.DetectedDimension, r.PrimaryDimension,
					percent(r.Coherence), percent(r.Stability), percent(r.Confidence),
					humanize.Time(r.CreatedAt))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&sessionID, "session", "", "session id")
	cmd.Flags().IntVar(&last, "last", 20, "show N most recent readings (0 for all)")
	_ = cmd.MarkFlagRequired("session")
	return cmd
}

func exportCmd() *cobra.Command {
	var (
		sessionID string
		out       string
	)
	cmd := &cobra.Command{
		Use:   "export-fixture",
		Short: "Export a session's readings as a replay fixture",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			records, err := store.List(sessionID, 0)
			if err != nil {
				return err
			}
			if len(records) == 0 {
				return fmt.Errorf("session %s has no readings", sessionID)
			}
			// Store returns newest first; fixtures replay in order.
			slices.Reverse(records)

			f := replay.FromRecords(fmt.Sprintf("Exported from session %s", sessionID), records)
			if err := replay.WriteFixture(out, f); err != nil {
				return err
			}
			fmt.Printf("Exported %d interactions to %s\n", len(f.Interactions), out)
			return nil
		},
	}
	cmd.Flags().StringVar(&sessionID, "session", "", "session id")
	cmd.Flags().StringVar(&out, "out", "fixture.json", "output fixture path")
	_ = cmd.MarkFlagRequired("session")
	return cmd
}

// #endregion store-commands

// #region output
func openStore() (*session.Store, error) {
	path := dbPath
	if path == "" {
		cfg, err := config.Load(configPath)
		if err != nil {
			return nil, err
		}
		path = cfg.Database
	}
	store, err := session.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	return store, nil
}

func printCoordinate(coord coordinate.Coordinate) error {
	if jsonOut {
		return printJSON(coord)
	}
	fmt.Printf("%s → %s\n", coord.Position(), coord)
	return nil
}

func printReading(r analysis.Reading) {
	fmt.Printf("Detected: %s (%s) themes=%v\n", r.Detection.Dimension, percent(r.Detection.Confidence), r.Themes)
	fmt.Printf("Primary: %s  Secondary: %s\n", r.Primary, r.Secondary)
	fmt.Printf("Coherence: %s  Stability: %s  Confidence: %s\n",
		percent(r.Metrics.Coherence), percent(r.Metrics.Stability), percent(r.Metrics.Confidence))
}

func percent(v float64) string {
	return humanize.FtoaWithDigits(v*100, 1) + "%"
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// #endregion output
