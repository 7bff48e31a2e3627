package analyze

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/dtnitsch/textstats/models"
	"github.com/dtnitsch/textstats/pkg/analytics"
	"github.com/dtnitsch/textstats/pkg/report"
	"github.com/dtnitsch/textstats/pkg/source"
	"github.com/dtnitsch/textstats/pkg/storage"
)

// Exit codes returned by the actions.
const (
	ExitInputUnavailable = 1
	ExitConfigError      = 2
	ExitOutputError      = 3
	ExitCanceled         = 130
)

func AnalyzeAction(c *cli.Context) error {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	logger := slog.New(slog.NewJSONHandler(c.App.ErrWriter, &slog.HandlerOptions{Level: logLevel}))

	cfg, err := resolveConfig(c)
	if err != nil {
		return cli.Exit(err.Error(), ExitConfigError)
	}
	format, err := report.ParseFormat(cfg.Format)
	if err != nil {
		return cli.Exit(err.Error(), ExitConfigError)
	}

	analyzer := analytics.New(
		analytics.WithStopWords(analytics.NewStopWords(cfg.StopWords...)),
		analytics.WithStemming(cfg.Stem),
	)
	logger.Info("Starting analysis",
		"input", cfg.Input,
		"stop_words", analyzer.StopWords().Len(),
		"stem", cfg.Stem,
		"top_n", cfg.TopN,
		"unique_limit", cfg.UniqueLimit,
	)

	s := &storage.Storage{}
	if stats, err := s.GetFileStats(cfg.Input); err == nil {
		logger.Info("Input file",
			"path", cfg.Input,
			"size_bytes", stats.SizeBytes,
			"mod_time", stats.ModTime.Format(time.RFC3339),
		)
	}

	ctx := c.Context
	startTime := time.Now()
	src, err := source.Open(ctx, cfg.Input)
	if err != nil {
		logger.Error("Failed to open input", "input", cfg.Input, "error", err)
		return inputError(err)
	}
	defer src.Close()

	counts, err := analyzer.Analyze(ctx, src.Lines())
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			logger.Error("Analysis canceled", "input", src.Name(), "error", err)
			return cli.Exit(fmt.Sprintf("analysis canceled: %v", err), ExitCanceled)
		}
		logger.Error("Failed to read input", "input", src.Name(), "error", err)
		return inputError(err)
	}

	r := report.Build(src.Name(), counts, cfg.TopN, cfg.UniqueLimit)
	r.SetElapsed(time.Since(startTime))
	logger.Info("Analysis finished",
		"input", src.Name(),
		"total", r.TotalCount,
		"distinct", r.DistinctCount,
		"elapsed_ms", r.ProcessingMS,
	)

	data, err := report.Render(r, format)
	if err != nil {
		return cli.Exit(err.Error(), ExitOutputError)
	}

	if cfg.Output != "" {
		if err := s.SaveFile(cfg.Output, data); err != nil {
			logger.Error("Failed to write report", "output", cfg.Output, "error", err)
			return cli.Exit(fmt.Sprintf("failed to write report: %v", err), ExitOutputError)
		}
		logger.Info("Report written", "output", cfg.Output, "format", string(format))
		return nil
	}

	if _, err := c.App.Writer.Write(data); err != nil {
		return cli.Exit(fmt.Sprintf("failed to write report: %v", err), ExitOutputError)
	}
	return nil
}

// StopWordsAction prints the effective stop-word list, one word per line.
func StopWordsAction(c *cli.Context) error {
	cfg, err := resolveConfig(c)
	if err != nil {
		return cli.Exit(err.Error(), ExitConfigError)
	}

	for _, w := range analytics.NewStopWords(cfg.StopWords...).Words() {
		fmt.Fprintln(c.App.Writer, w)
	}
	return nil
}

func inputError(err error) error {
	return cli.Exit(fmt.Sprintf("Error reading the file: %v", err), ExitInputUnavailable)
}

// resolveConfig layers defaults, the --config file, a positional input
// argument and explicitly set flags, in that order.
func resolveConfig(c *cli.Context) (*models.Config, error) {
	cfg := models.DefaultConfig()
	if path := c.String("config"); path != "" {
		loaded, err := models.LoadConfig(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if c.Args().Present() {
		cfg.Input = c.Args().First()
	}
	if c.IsSet("input") {
		cfg.Input = c.String("input")
	}
	if c.IsSet("top") {
		cfg.TopN = c.Int("top")
	}
	if c.IsSet("unique") {
		cfg.UniqueLimit = c.Int("unique")
	}
	if c.IsSet("stem") {
		cfg.Stem = c.Bool("stem")
	}
	if c.IsSet("format") {
		cfg.Format = c.String("format")
	}
	if c.IsSet("output") {
		cfg.Output = c.String("output")
	}
	if c.IsSet("stopwords") {
		cfg.StopWords = splitList(c.String("stopwords"))
	}
	if c.Bool("no-stopwords") {
		cfg.StopWords = nil
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
