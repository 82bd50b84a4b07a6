// Package count implements the word-count command: obtain text, run the
// map/reduce pipeline, report the top words, chart them, record the run.
package count

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/nata87/goit-algo2-hw-06/internal/common"
	"github.com/nata87/goit-algo2-hw-06/models"
	"github.com/nata87/goit-algo2-hw-06/pkg/caching"
	"github.com/nata87/goit-algo2-hw-06/pkg/chart"
	"github.com/nata87/goit-algo2-hw-06/pkg/db"
	"github.com/nata87/goit-algo2-hw-06/pkg/detector"
	"github.com/nata87/goit-algo2-hw-06/pkg/mapreduce"
	"github.com/nata87/goit-algo2-hw-06/pkg/textsource"
)

// Action runs the full count flow. It exits 1 when the text source cannot
// be retrieved or is empty; everything after a successful fetch degrades
// gracefully (empty tokenization, chart failures, history failures).
func Action(c *cli.Context) error {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
	startTime := time.Now()

	config, err := resolveConfig(c)
	if err != nil {
		logger.Error("invalid configuration", "error", err)
		return cli.Exit("", 2)
	}

	source := common.SanitizeSource(config.Source)
	logger.Info("Starting run", "source", source, "workers", config.Workers, "top", config.TopN)

	cacheTTL := config.CacheTTL
	if c.Bool("force-fetch") {
		cacheTTL = 0
	}
	cache, err := caching.NewCache(config.CacheDir, cacheTTL)
	if err != nil {
		logger.Warn("Cache unavailable, fetching without it", "error", err)
		cache = nil
	}

	src := textsource.New(config.Timeout, cache)
	text, err := src.Get(source)
	if err != nil {
		logger.Error("Failed to obtain text", "source", source, "error", err)
		return cli.Exit(fmt.Sprintf("Error: could not retrieve text from %s", source), 1)
	}
	if text == "" {
		logger.Error("Source returned empty text", "source", source)
		return cli.Exit(fmt.Sprintf("Error: source %s is empty", source), 1)
	}

	pipeline := mapreduce.NewPipeline(config.Workers)
	counts := pipeline.Run(text)
	logger.Info("MapReduce complete", "distinct_words", len(counts), "duration", time.Since(startTime).String())

	entries := mapreduce.TopN(counts, config.TopN)
	if len(entries) == 0 {
		fmt.Println("No words found in source, nothing to report.")
	} else {
		fmt.Printf("Top %d words for %s:\n", len(entries), source)
		mapreduce.PrintTop(os.Stdout, entries)
	}

	lang := detector.New().Detect(text)
	logger.Info("Language detected", "language", lang.Language, "confidence", lang.Confidence)

	// The console report is already out; chart problems must not fail the run.
	if !config.NoChart {
		rendered, chartErr := chart.Render(config.ChartPath, fmt.Sprintf("Top %d words", len(entries)), entries)
		switch {
		case chartErr != nil:
			logger.Warn("Chart rendering failed", "path", config.ChartPath, "error", chartErr)
		case !rendered:
			fmt.Println("No data to visualize, chart skipped.")
		default:
			fmt.Printf("Chart written to %s\n", config.ChartPath)
		}
	}

	recordRun(logger, config, source, text, counts, entries, lang, time.Since(startTime))
	return nil
}

// resolveConfig loads config.yaml (when present) and overlays CLI flags.
func resolveConfig(c *cli.Context) (*models.Config, error) {
	config, err := models.LoadConfig(c.String("config"))
	if err != nil {
		return nil, err
	}

	if c.IsSet("source") {
		config.Source = c.String("source")
	}
	if c.IsSet("workers") {
		config.Workers = c.Int("workers")
	}
	if c.IsSet("top") {
		config.TopN = c.Int("top")
	}
	if c.IsSet("timeout") {
		config.Timeout = c.Duration("timeout")
	}
	if c.IsSet("chart-out") {
		config.ChartPath = c.String("chart-out")
	}
	if c.Bool("no-chart") {
		config.NoChart = true
	}

	return config, nil
}

// recordRun stores the run in the history database. History is auxiliary:
// failures are logged, never propagated.
func recordRun(logger *slog.Logger, config *models.Config, source, text string, counts map[string]int, entries []mapreduce.Entry, lang detector.Result, duration time.Duration) {
	database, err := db.Open()
	if err != nil {
		logger.Warn("History database unavailable, run not recorded", "error", err)
		return
	}
	defer database.Close()

	tokenCount := 0
	for _, count := range counts {
		tokenCount += count
	}

	runID, err := database.InsertRun(db.Run{
		Source:             source,
		ContentHash:        common.ContentHash([]byte(text)),
		TokenCount:         tokenCount,
		DistinctWords:      len(counts),
		Workers:            config.Workers,
		TopWords:           formatTopWords(entries),
		Language:           lang.Language,
		LanguageConfidence: lang.Confidence,
		Duration:           duration,
	})
	if err != nil {
		logger.Warn("Failed to record run", "error", err)
		return
	}
	logger.Info("Run recorded", "run_id", runID, "db", database.Path())
}

// formatTopWords renders ranked entries as "word:count" strings for storage.
func formatTopWords(entries []mapreduce.Entry) []string {
	words := make([]string, len(entries))
	for i, e := range entries {
		words[i] = fmt.Sprintf("%s:%d", e.Word, e.Count)
	}
	return words
}
