package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	hlog "github.com/cognicore/hebnorm/internal/log"
	"github.com/cognicore/hebnorm/pkg/hebnorm"
	"github.com/cognicore/hebnorm/pkg/hebnorm/analysis"
	"github.com/cognicore/hebnorm/pkg/hebnorm/config"
	"github.com/cognicore/hebnorm/pkg/hebnorm/metrics"
	"github.com/cognicore/hebnorm/pkg/hebnorm/store/sqlite"
)

type rootFlags struct {
	configPath string
	logLevel   string
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	root := &cobra.Command{
		Use:          "hebnorm",
		Short:        "Hebrew-aware token normalization",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&flags.configPath, "config", "", "YAML config file")
	root.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "log level (overrides config)")

	root.AddCommand(newAnalyzeCmd(flags), newIndexCmd(flags), newTopCmd(flags))
	return root
}

// setup loads configuration and the logger shared by every subcommand.
func setup(flags *rootFlags) (*config.Components, zerolog.Logger, error) {
	loader := config.Loader{ConfigPath: flags.configPath}
	comp, err := loader.Load()
	if err != nil {
		return nil, zerolog.Nop(), err
	}

	level := comp.Config.Log.Level
	if flags.logLevel != "" {
		level = flags.logLevel
	}
	hlog.Configure(hlog.Config{Level: level, Service: comp.Config.Log.Service})
	logger := hlog.WithComponent("cli")
	logger.Debug().
		Strs("filters", comp.Pipeline.Filters()).
		Str("config", flags.configPath).
		Msg("pipeline ready")
	return comp, logger, nil
}

func newAnalyzeCmd(flags *rootFlags) *cobra.Command {
	var (
		asHTML bool
		asJSON bool
	)
	cmd := &cobra.Command{
		Use:   "analyze [file]",
		Short: "Print the normalized tokens of a file or stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			comp, _, err := setup(flags)
			if err != nil {
				return err
			}
			_, body, err := readInput(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}

			engine, err := hebnorm.New(hebnorm.Options{Pipeline: comp.Pipeline})
			if err != nil {
				return err
			}
			var terms []analysis.Term
			if asHTML {
				terms, err = engine.AnalyzeHTML(strings.NewReader(body))
			} else {
				terms, err = engine.Analyze(body)
			}
			if err != nil {
				return err
			}
			return printTerms(cmd.OutOrStdout(), terms, asJSON)
		},
	}
	cmd.Flags().BoolVar(&asHTML, "html", false, "input is HTML")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON lines")
	return cmd
}

func newIndexCmd(flags *rootFlags) *cobra.Command {
	var (
		asHTML bool
		dbPath string
	)
	cmd := &cobra.Command{
		Use:   "index [file]...",
		Short: "Analyze files (or stdin) and store their terms in SQLite",
		RunE: func(cmd *cobra.Command, args []string) error {
			comp, logger, err := setup(flags)
			if err != nil {
				return err
			}
			if dbPath == "" {
				dbPath = comp.Config.Store.Path
			}

			ctx := cmd.Context()
			st, err := sqlite.OpenSQLite(ctx, dbPath)
			if err != nil {
				return fmt.Errorf("open %s: %w", dbPath, err)
			}

			reg := prometheus.NewRegistry()
			engine, err := hebnorm.New(hebnorm.Options{
				Store:    st,
				Pipeline: comp.Pipeline,
				Metrics:  metrics.NewCollector(reg),
				Logger:   &logger,
			})
			if err != nil {
				st.Close()
				return err
			}
			defer engine.Close()

			inputs := args
			if len(inputs) == 0 {
				inputs = []string{"-"}
			}
			for _, in := range inputs {
				source, body, err := readInput(cmd.InOrStdin(), []string{in})
				if err != nil {
					return err
				}
				id, err := engine.Index(ctx, hebnorm.IndexDoc{Source: source, Body: body, HTML: asHTML || isHTMLFile(source)})
				if err != nil {
					return err
				}
				logger.Info().Str("doc_id", id).Str("source", source).Msg("indexed")
				fmt.Fprintln(cmd.OutOrStdout(), id)
			}
			return reportTotals(cmd.ErrOrStderr(), reg, logger)
		},
	}
	cmd.Flags().BoolVar(&asHTML, "html", false, "inputs are HTML")
	cmd.Flags().StringVar(&dbPath, "db", "", "SQLite database path (overrides config)")
	return cmd
}

func newTopCmd(flags *rootFlags) *cobra.Command {
	var (
		dbPath string
		k      int
	)
	cmd := &cobra.Command{
		Use:   "top",
		Short: "List the most frequent indexed terms",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			comp, _, err := setup(flags)
			if err != nil {
				return err
			}
			if dbPath == "" {
				dbPath = comp.Config.Store.Path
			}

			st, err := sqlite.OpenSQLite(cmd.Context(), dbPath)
			if err != nil {
				return fmt.Errorf("open %s: %w", dbPath, err)
			}
			defer st.Close()

			top, err := st.TopTerms(cmd.Context(), k)
			if err != nil {
				return err
			}
			for _, tc := range top {
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\n", tc.Count, tc.Term)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&dbPath, "db", "", "SQLite database path (overrides config)")
	cmd.Flags().IntVarP(&k, "limit", "k", 20, "number of terms")
	return cmd
}

// reportTotals prints the counters collected during an index run.
func reportTotals(w io.Writer, g prometheus.Gatherer, logger zerolog.Logger) error {
	totals, err := metrics.Totals(g)
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	docs := int64(totals[metrics.DocumentsTotal])
	tokens := int64(totals[metrics.TokensTotal])
	empty := int64(totals[metrics.EmptyTokensTotal])

	logger.Info().
		Int64("documents", docs).
		Int64("tokens", tokens).
		Int64("empty_tokens", empty).
		Msg("index complete")
	_, err = fmt.Fprintf(w, "indexed %d documents, %d tokens (%d empty)\n", docs, tokens, empty)
	return err
}

// readInput returns the source label and contents of args[0], or of stdin
// when args is empty or "-".
func readInput(stdin io.Reader, args []string) (string, string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", "", fmt.Errorf("read stdin: %w", err)
		}
		return "stdin", string(data), nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", "", err
	}
	return args[0], string(data), nil
}

func isHTMLFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".html", ".htm":
		return true
	}
	return false
}

// jsonTerm is one line of `analyze --json` output.
type jsonTerm struct {
	analysis.Term
	Signature string `json:"signature"`
}

func printTerms(w io.Writer, terms []analysis.Term, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		for _, t := range terms {
			if err := enc.Encode(jsonTerm{Term: t, Signature: t.Type.Signature()}); err != nil {
				return err
			}
		}
		return nil
	}
	for _, t := range terms {
		if _, err := fmt.Fprintf(w, "%d\t%s\t%s\n", t.Position, t.Type, t.Text); err != nil {
			return err
		}
	}
	return nil
}
