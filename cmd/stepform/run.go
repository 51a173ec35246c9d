package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/mark3labs/stepform/internal/config"
	"github.com/mark3labs/stepform/internal/export"
	"github.com/mark3labs/stepform/internal/logger"
	"github.com/mark3labs/stepform/internal/multistep"
	"github.com/mark3labs/stepform/internal/navigation"
	"github.com/mark3labs/stepform/internal/tui/pages"
	"github.com/mark3labs/stepform/internal/tui/wizard"
	"github.com/spf13/cobra"
)

var runFlags struct {
	strategy string
	named    bool
	seed     string
	output   string
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the form wizard",
	Long: `Run the form wizard.

The wizard shows Form1, Form2 and a Summary of everything entered. Press
ctrl+s on the Summary to finish; the values are printed as JSON and, with
--output, written to a .json or .yaml file. A seed file (YAML or JSON, keyed
by step) pre-fills steps; without one Form2 starts with "value".`,
	RunE: runRun,
}

func init() {
	addRunFlags(runCmd)
}

func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&runFlags.strategy, "strategy", "s", config.StrategyHistory, "Step position strategy: history or memory")
	cmd.Flags().BoolVar(&runFlags.named, "named", false, "Key steps by name instead of index")
	cmd.Flags().StringVar(&runFlags.seed, "seed", "", "Seed file with initial step values")
	cmd.Flags().StringVarP(&runFlags.output, "output", "o", "", "Write the collected values to this .json or .yaml file")
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	if err := logger.Configure(cfg.LogLevel, cfg.LogFile); err != nil {
		return fmt.Errorf("failed to configure logger: %w", err)
	}

	seed, err := config.LoadSeed(cfg.SeedFile)
	if err != nil {
		return err
	}

	logger.Info("Starting wizard (strategy=%s, keys=%s)", cfg.Strategy, cfg.Keys)

	if cfg.Keys == config.KeysNamed {
		return runNamed(cmd.Context(), cmd.OutOrStdout(), cfg, seed)
	}
	return runIndexed(cmd.Context(), cmd.OutOrStdout(), cfg, seed)
}

// resolveConfig loads the config, applies the changed flags and validates
// the result.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	if !config.Exists() {
		logger.Debug("No config file found, using defaults")
	}
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// Flags win over every config source
	flags := cmd.Flags()
	if flags.Changed("strategy") {
		cfg.Strategy = runFlags.strategy
	}
	if flags.Changed("named") {
		cfg.Keys = config.KeysIndex
		if runFlags.named {
			cfg.Keys = config.KeysNamed
		}
	}
	if flags.Changed("seed") {
		cfg.SeedFile = runFlags.seed
	}
	if flags.Changed("output") {
		cfg.Output = runFlags.output
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Output != "" {
		if _, err := export.FormatFor(cfg.Output); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

func runIndexed(ctx context.Context, out io.Writer, cfg *config.Config, seed config.Seed) error {
	initial := pages.DefaultSeed()
	if seed != nil {
		indexed, err := seed.Indexed()
		if err != nil {
			return err
		}
		initial = toValues(indexed)
	}

	pos, history := position[int](cfg.Strategy)
	form, err := multistep.New(pages.Sequence(), 0,
		multistep.WithInitialValues(initial),
		multistep.WithPosition(pos),
		multistep.WithContext[int](ctx),
	)
	if err != nil {
		return fmt.Errorf("failed to create form: %w", err)
	}

	return complete(ctx, out, cfg.Output, form, history)
}

func runNamed(ctx context.Context, out io.Writer, cfg *config.Config, seed config.Seed) error {
	initial := pages.DefaultNamedSeed()
	if seed != nil {
		initial = toValues(seed)
	}

	steps, order := pages.Named()
	next, previous := pages.Walk(order)

	pos, history := position[string](cfg.Strategy)
	form, err := multistep.New(steps, order[0],
		multistep.WithInitialValues(initial),
		multistep.WithOnNext(next),
		multistep.WithOnPrevious(previous),
		multistep.WithOrder(order),
		multistep.WithPosition(pos),
		multistep.WithContext[string](ctx),
	)
	if err != nil {
		return fmt.Errorf("failed to create form: %w", err)
	}

	return complete(ctx, out, cfg.Output, form, history)
}

// position builds the configured strategy. The returned history is nil for
// the memory strategy.
func position[K multistep.Key](strategy string) (multistep.PositionFunc[K], wizard.History) {
	if strategy == config.StrategyMemory {
		return multistep.MemoryPosition[K], nil
	}

	h := navigation.NewHistory("/")
	h.Listen(func(loc navigation.Location) {
		logger.Debug("Navigation entry %s at %s (%d/%d)", loc.Key, loc.Path, h.Index()+1, h.Len())
	})
	return multistep.HistoryPosition[K](h), h
}

// complete runs the wizard, prints the merged values and exports them.
func complete[K multistep.Key](ctx context.Context, out io.Writer, output string, form *multistep.Form[K], history wizard.History) error {
	all, err := wizard.Run(ctx, form, history)
	if errors.Is(err, wizard.ErrCancelled) {
		logger.Info("Wizard cancelled")
		fmt.Fprintln(out, "Cancelled.")
		return nil
	}
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(pages.Merge(form.Keys(), all), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode values: %w", err)
	}
	fmt.Fprintln(out, string(data))

	if output == "" {
		return nil
	}
	if err := export.Save(output, all); err != nil {
		return fmt.Errorf("failed to export values: %w", err)
	}
	fmt.Fprintf(out, "\nValues written to: %s\n", output)
	return nil
}

func toValues[K multistep.Key](seed map[K]map[string]any) map[K]multistep.Values {
	out := make(map[K]multistep.Values, len(seed))
	for k, v := range seed {
		out[k] = v
	}
	return out
}
