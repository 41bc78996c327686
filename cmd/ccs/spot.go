package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"ccs/internal/complexity"
	"ccs/internal/config"
	"ccs/internal/engine"
	"ccs/internal/logging"
	"ccs/internal/render"
	"ccs/internal/treesitter"
	"ccs/internal/walker"
)

var (
	spotComplexities []string
	spotInclude      []string
	spotExclude      []string
	spotFormat       string
	spotOutput       string
	spotWrite        bool
	spotCompress     bool
	spotJobs         int
)

var spotCmd = &cobra.Command{
	Use:   "spot <path>",
	Short: "Spot complex code and extract it as snippets",
	Long: `Spot analyzes a source tree (or a single file), scores every function,
method, and closure, and extracts the units whose complexity exceeds the
configured thresholds.

Thresholds come from .ccs/config.json and can be overridden per metric with
--complexity metric or --complexity metric:threshold. A threshold of 0 flags
every unit and 100 is the maximum; both extremes are generally not
recommended.

Examples:
  ccs spot .
  ccs spot --complexity cognitive src/
  ccs spot --complexity cyclomatic:20 --complexity cognitive:25 .
  ccs spot --format html --output reports .
  ccs spot --exclude 'vendor/**' --exclude '*_test.go' .
  ccs spot internal/engine/runner.go`,
	Args: cobra.ExactArgs(1),
	RunE: runSpot,
}

func init() {
	spotCmd.Flags().StringArrayVarP(&spotComplexities, "complexity", "c", nil,
		"Metric to evaluate, as metric or metric:threshold (repeatable; default: all metrics)")
	spotCmd.Flags().StringArrayVarP(&spotInclude, "include", "I", nil, "Glob to include files")
	spotCmd.Flags().StringArrayVarP(&spotExclude, "exclude", "X", nil, "Glob to exclude files")
	spotCmd.Flags().StringVarP(&spotFormat, "format", "O", "", "Report format (markdown, html, json, all)")
	spotCmd.Flags().StringVarP(&spotOutput, "output", "o", "", "Report output directory")
	spotCmd.Flags().BoolVarP(&spotWrite, "write", "w", true, "Write report files")
	spotCmd.Flags().BoolVar(&spotCompress, "compress", false, "Gzip-compress report files")
	spotCmd.Flags().IntVarP(&spotJobs, "jobs", "j", 0, "Worker count (0 for one per CPU)")
	rootCmd.AddCommand(spotCmd)
}

func runSpot(cmd *cobra.Command, args []string) error {
	target, err := filepath.Abs(args[0])
	if err != nil {
		return err
	}
	info, err := os.Stat(target)
	if err != nil {
		return fmt.Errorf("cannot analyze %s: %w", args[0], err)
	}

	root := target
	if !info.IsDir() {
		root = filepath.Dir(target)
	}

	cfg, err := config.LoadConfig(root)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	applyFlagOverrides(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	format, err := render.ParseFormat(cfg.Output.Format)
	if err != nil {
		return err
	}

	logger := logging.NewLogger(logging.Config{
		Format: logging.Format(cfg.Logging.Format),
		Level:  logging.ParseLevel(cfg.Logging.Level),
	})

	metrics, overrides, err := parseComplexityFlag(spotComplexities)
	if err != nil {
		return err
	}
	thresholds := cfg.MetricThresholds()
	for m, v := range overrides {
		thresholds.Set(m, v)
	}

	if !treesitter.IsAvailable() {
		return fmt.Errorf("complexity analysis requires CGO (tree-sitter); this binary was built without it")
	}

	if cfg.Output.Write {
		if out, statErr := os.Stat(cfg.Output.Dir); statErr == nil && !out.IsDir() {
			return fmt.Errorf("output path %s must be a directory", cfg.Output.Dir)
		}
	}

	var files []string
	if info.IsDir() {
		files, err = walker.Files(root, walker.NewFilter(cfg.Include, cfg.Exclude))
		if err != nil {
			return err
		}
	} else {
		files = []string{filepath.Base(target)}
	}
	if len(files) == 0 {
		logger.Warn("No files matched", map[string]interface{}{"root": root})
		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	eng := engine.New(treesitter.NewParser(), thresholds, metrics, logger, cfg.Jobs)
	res, err := eng.Run(ctx, root, files)
	if err != nil {
		return err
	}

	for _, f := range res.Failures {
		logger.Warn("Skipped file", map[string]interface{}{
			"path":  f.Path,
			"error": f.Msg,
		})
	}

	if res.Clean() {
		fmt.Println("Congratulations! Your code is clean, it does not have any complexity!")
		return nil
	}

	fmt.Printf("Spotted %d complex snippets across %d files.\n", res.SnippetCount(), len(res.Files))

	if !cfg.Output.Write {
		for _, f := range res.Files {
			fmt.Printf("  %s (%d)\n", f.Path, len(f.Snippets))
		}
		return nil
	}

	opts := render.Options{
		Dir:      cfg.Output.Dir,
		Format:   format,
		Compress: cfg.Output.Compress,
		Logger:   logger,
	}
	if err := render.Write(opts, res.Files); err != nil {
		return fmt.Errorf("failed to write reports: %w", err)
	}
	fmt.Printf("Reports written to %s\n", cfg.Output.Dir)
	return nil
}

// applyFlagOverrides lets explicitly set flags win over the config file.
func applyFlagOverrides(cmd *cobra.Command, cfg *config.Config) {
	fl := cmd.Flags()
	if fl.Changed("format") {
		cfg.Output.Format = spotFormat
	}
	if fl.Changed("output") {
		cfg.Output.Dir = spotOutput
	}
	if fl.Changed("write") {
		cfg.Output.Write = spotWrite
	}
	if fl.Changed("compress") {
		cfg.Output.Compress = spotCompress
	}
	if fl.Changed("jobs") {
		cfg.Jobs = spotJobs
	}
	if fl.Changed("include") {
		cfg.Include = spotInclude
	}
	if fl.Changed("exclude") {
		cfg.Exclude = spotExclude
	}
}

// parseComplexityFlag interprets repeated --complexity values. Naming a
// metric restricts the run to the named metrics; an attached :threshold
// overrides the configured one, with later repetitions winning.
func parseComplexityFlag(specs []string) ([]complexity.Metric, map[complexity.Metric]int, error) {
	var metrics []complexity.Metric
	overrides := make(map[complexity.Metric]int)
	seen := make(map[complexity.Metric]bool)

	for _, spec := range specs {
		name, value, hasValue := strings.Cut(spec, ":")
		m, err := complexity.ParseMetric(name)
		if err != nil {
			return nil, nil, err
		}
		if hasValue {
			v, err := strconv.Atoi(strings.TrimSpace(value))
			if err != nil {
				return nil, nil, fmt.Errorf("invalid threshold in %q: expected metric:threshold", spec)
			}
			if v < 0 {
				return nil, nil, fmt.Errorf("threshold for %s must not be negative, got %d", m, v)
			}
			overrides[m] = v
		}
		if !seen[m] {
			seen[m] = true
			metrics = append(metrics, m)
		}
	}
	return metrics, overrides, nil
}
